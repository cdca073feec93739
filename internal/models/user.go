package models

import "time"

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleTechnician Role = "technician"
	RoleAdmin      Role = "admin"
)

// CanOwnTechnicianProfile reports whether a user with this role may
// have a technician profile created for it.
func (r Role) CanOwnTechnicianProfile() bool {
	return r == RoleTechnician || r == RoleAdmin
}

type User struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`
	Role Role   `gorm:"type:varchar(20);not null;default:'customer';index" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TechnicianProfile *Technician `gorm:"foreignKey:UserID;references:ID" json:"technician_profile,omitempty"`
}
