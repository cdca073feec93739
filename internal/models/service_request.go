package models

import "time"

type RequestStatus string

const (
	RequestStatusOpen      RequestStatus = "OPEN"      // waiting for quotations
	RequestStatusQuoted    RequestStatus = "QUOTED"    // at least one quotation received
	RequestStatusBooked    RequestStatus = "BOOKED"    // a quotation was accepted
	RequestStatusCompleted RequestStatus = "COMPLETED" // job finished
	RequestStatusCanceled  RequestStatus = "CANCELED"  // closed administratively
)

// Terminal reports whether the request accepts no further quotations.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusCompleted || s == RequestStatusCanceled
}

// ValidRequestStatus reports whether s is a known request status.
func ValidRequestStatus(s RequestStatus) bool {
	switch s {
	case RequestStatusOpen, RequestStatusQuoted, RequestStatusBooked,
		RequestStatusCompleted, RequestStatusCanceled:
		return true
	}
	return false
}

type ServiceRequest struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	CustomerID  uint          `gorm:"index;not null" json:"customer_id"`
	ServiceID   uint          `gorm:"index;not null" json:"service_id"`
	Title       string        `gorm:"type:varchar(120);not null" json:"title"`
	Description string        `gorm:"type:text" json:"description"`
	Lat         float64       `json:"lat"`
	Lng         float64       `json:"lng"`
	Status      RequestStatus `gorm:"type:varchar(20);not null;default:'OPEN';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Customer *User    `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Service  *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}
