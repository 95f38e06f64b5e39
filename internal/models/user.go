// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered user. Spots reference their creator through
// OwnerID; reviews reference their author through UserID.
//
// Timestamps and credentials are never part of the public payload: a user
// embedded in a spot or review response marshals as {id, firstName, lastName}.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	FirstName string         `gorm:"not null" json:"firstName"`
	LastName  string         `gorm:"not null" json:"lastName"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email,omitempty"`
	Password  string         `gorm:"not null" json:"-"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Spots     []Spot         `gorm:"foreignKey:OwnerID" json:"spots,omitempty"`
}
