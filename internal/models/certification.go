package models

import "time"

type Certification struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	TechnicianID uint   `gorm:"index;not null" json:"technician_id"`
	Title        string `gorm:"type:varchar(120);not null" json:"title"`
	Issuer       string `gorm:"type:varchar(120)" json:"issuer"`
	Year         int    `json:"year"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
