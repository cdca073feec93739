package models

import "time"

type QuotationStatus string

const (
	QuotationStatusPending  QuotationStatus = "PENDING"
	QuotationStatusAccepted QuotationStatus = "ACCEPTED"
	QuotationStatusRejected QuotationStatus = "REJECTED"
)

type Quotation struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	RequestID    uint            `gorm:"index;not null" json:"request_id"`
	TechnicianID uint            `gorm:"index;not null" json:"technician_id"`
	Price        float64         `gorm:"not null" json:"price"`
	Note         string          `gorm:"type:text" json:"note"`
	Status       QuotationStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Request    *ServiceRequest `gorm:"foreignKey:RequestID" json:"request,omitempty"`
	Technician *Technician     `gorm:"foreignKey:TechnicianID" json:"technician,omitempty"`
}
