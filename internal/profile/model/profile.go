// Package model provides domain models, DTOs and errors for the profile module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// Profile represents a row of the profiles table.
type Profile struct {
	UserID    string    `gorm:"primaryKey;column:user_id" json:"user_id"`
	Email     string    `gorm:"column:email"              json:"email"`
	FullName  string    `gorm:"column:full_name"          json:"full_name"`
	RiotID    string    `gorm:"column:riot_id"            json:"riot_id"`
	CreatedAt time.Time `gorm:"column:created_at"         json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at"         json:"-"`
}

// TableName specifies the table name for GORM.
func (Profile) TableName() string {
	return "profiles"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (p *Profile) BeforeUpdate(_ *gorm.DB) error {
	p.UpdatedAt = time.Now().UTC()
	return nil
}
