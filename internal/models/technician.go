package models

import "time"

type Technician struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	UserID      uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	DisplayName string  `gorm:"type:varchar(120);not null" json:"display_name"`
	Bio         string  `gorm:"type:text" json:"bio"`
	ServiceID   uint    `gorm:"index;not null" json:"service_id"`
	Lat         float64 `gorm:"default:0" json:"lat"`
	Lng         float64 `gorm:"default:0" json:"lng"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User           *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Service        *Service        `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Certifications []Certification `gorm:"foreignKey:TechnicianID" json:"certifications,omitempty"`
}
