// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Spot represents a rentable property listing.
type Spot struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OwnerID     uint    `gorm:"not null;index" json:"ownerId"`
	Owner       *User   `gorm:"foreignKey:OwnerID" json:"Owner,omitempty"`
	Address     string  `gorm:"not null" json:"address"`
	City        string  `gorm:"not null" json:"city"`
	State       string  `gorm:"not null" json:"state"`
	Country     string  `gorm:"not null" json:"country"`
	Lat         float64 `gorm:"not null" json:"lat"`
	Lng         float64 `gorm:"not null" json:"lng"`
	Name        string  `gorm:"size:50;not null" json:"name"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	// AvgRating is not persisted; computed at query time from review stars.
	// nil when the spot has no reviews.
	AvgRating *float64 `gorm:"->;-:migration" json:"avgRating"`
	// PreviewImage is not persisted; the URL of the first preview-flagged
	// image, computed at query time. nil when no image is flagged.
	PreviewImage *string        `gorm:"->;-:migration" json:"previewImage"`
	SpotImages   []SpotImage    `gorm:"foreignKey:SpotID;constraint:OnDelete:CASCADE" json:"SpotImages,omitempty"`
	Reviews      []Review       `gorm:"foreignKey:SpotID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// SpotImage is an image attached to a spot. At most one image per spot is
// expected to carry the preview flag for list views; when several do, the
// lowest-id one wins.
type SpotImage struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	SpotID    uint           `gorm:"not null;index" json:"-"`
	URL       string         `gorm:"not null" json:"url"`
	Preview   bool           `gorm:"not null;default:false" json:"preview"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
