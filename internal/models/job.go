package models

import (
	"math/rand"
	"time"
)

type JobStatus string

const (
	JobStatusBooked    JobStatus = "BOOKED"
	JobStatusCompleted JobStatus = "COMPLETED"
)

// ValidJobStatus reports whether s is a known job status.
func ValidJobStatus(s JobStatus) bool {
	return s == JobStatusBooked || s == JobStatusCompleted
}

type Job struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RequestID    uint      `gorm:"uniqueIndex;not null" json:"request_id"`
	CustomerID   uint      `gorm:"index;not null" json:"customer_id"`
	TechnicianID uint      `gorm:"index;not null" json:"technician_id"`
	QuotationID  uint      `gorm:"index;not null" json:"quotation_id"`
	Reference    string    `gorm:"type:varchar(10);unique" json:"reference"` // e.g. K4QRZT8N
	Status       JobStatus `gorm:"type:varchar(20);not null;default:'BOOKED'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Request    *ServiceRequest `gorm:"foreignKey:RequestID" json:"request,omitempty"`
	Customer   *User           `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Technician *Technician     `gorm:"foreignKey:TechnicianID" json:"technician,omitempty"`
	Quotation  *Quotation      `gorm:"foreignKey:QuotationID" json:"quotation,omitempty"`
}

// GenerateJobReference generates a random alphanumeric booking code.
func GenerateJobReference() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, 8)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
