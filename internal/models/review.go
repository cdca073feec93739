package models

import "time"

type Review struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	JobID        uint   `gorm:"uniqueIndex;not null" json:"job_id"`
	CustomerID   uint   `gorm:"index;not null" json:"customer_id"`
	TechnicianID uint   `gorm:"index;not null" json:"technician_id"`
	Rating       int    `gorm:"not null" json:"rating"` // 1-5
	Comment      string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Job        *Job        `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Customer   *User       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Technician *Technician `gorm:"foreignKey:TechnicianID" json:"technician,omitempty"`
}
