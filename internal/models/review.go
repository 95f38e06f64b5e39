// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Review is a user's rating of a spot.
// The combination of UserID and SpotID must be unique: a user reviews a
// given spot at most once, enforced at the datastore level.
type Review struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	SpotID       uint           `gorm:"not null;uniqueIndex:idx_review_user_spot" json:"spotId"`
	UserID       uint           `gorm:"not null;uniqueIndex:idx_review_user_spot" json:"userId"`
	User         *User          `gorm:"foreignKey:UserID" json:"User,omitempty"`
	Review       string         `gorm:"type:text;not null" json:"review"`
	Stars        int            `gorm:"not null" json:"stars"`
	ReviewImages []ReviewImage  `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE" json:"ReviewImages,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// ReviewImage is an image attached to a review.
type ReviewImage struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ReviewID  uint           `gorm:"not null;index" json:"-"`
	URL       string         `gorm:"not null" json:"url"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
