package repository

import (
	"context"
	"errors"

	"hearth/internal/cache"
	"hearth/internal/models"

	"gorm.io/gorm"
)

// SpotFilter narrows List results. Nil fields are ignored.
type SpotFilter struct {
	OwnerID  uint
	Page     int
	Size     int
	City     *string
	State    *string
	MinLat   *float64
	MaxLat   *float64
	MinLng   *float64
	MaxLng   *float64
	MinPrice *float64
	MaxPrice *float64
}

// Filtered reports whether any optional filter is set.
func (f SpotFilter) Filtered() bool {
	return f.OwnerID != 0 || f.City != nil || f.State != nil ||
		f.MinLat != nil || f.MaxLat != nil ||
		f.MinLng != nil || f.MaxLng != nil ||
		f.MinPrice != nil || f.MaxPrice != nil
}

// SpotRepository defines the interface for spot data operations
type SpotRepository interface {
	Create(ctx context.Context, spot *models.Spot) error
	GetByID(ctx context.Context, id uint) (*models.Spot, error)
	GetOwnerID(ctx context.Context, id uint) (uint, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, filter SpotFilter) ([]*models.Spot, error)
	Update(ctx context.Context, spot *models.Spot) error
	Delete(ctx context.Context, id uint) error
	AddImage(ctx context.Context, image *models.SpotImage) error
}

type spotRepository struct {
	db *gorm.DB
}

// NewSpotRepository creates a new spot repository
func NewSpotRepository(db *gorm.DB) SpotRepository {
	return &spotRepository{db: db}
}

// applySpotAggregates adds subqueries computing the average review rating and
// the preview image URL in the same query, aliased to the read-only model fields.
func (r *spotRepository) applySpotAggregates(db *gorm.DB) *gorm.DB {
	return db.Select("spots.*, " +
		"(SELECT AVG(reviews.stars) FROM reviews WHERE reviews.spot_id = spots.id AND reviews.deleted_at IS NULL) AS avg_rating, " +
		"(SELECT images.url FROM spot_images images WHERE images.spot_id = spots.id AND images.preview = true AND images.deleted_at IS NULL ORDER BY images.id LIMIT 1) AS preview_image")
}

func (r *spotRepository) Create(ctx context.Context, spot *models.Spot) error {
	err := r.db.WithContext(ctx).Create(spot).Error
	if err == nil {
		cache.InvalidateSpotLists(ctx)
	}
	return err
}

func (r *spotRepository) GetByID(ctx context.Context, id uint) (*models.Spot, error) {
	var spot models.Spot
	err := r.applySpotAggregates(r.db.WithContext(ctx)).
		Preload("Owner", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "first_name", "last_name")
		}).
		Preload("SpotImages").
		First(&spot, id).Error
	if err != nil {
		return nil, err
	}
	return &spot, nil
}

func (r *spotRepository) GetOwnerID(ctx context.Context, id uint) (uint, error) {
	var ownerIDs []uint
	err := r.db.WithContext(ctx).
		Model(&models.Spot{}).
		Where("id = ?", id).
		Limit(1).
		Pluck("owner_id", &ownerIDs).Error
	if err != nil {
		return 0, err
	}
	if len(ownerIDs) == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return ownerIDs[0], nil
}

func (r *spotRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Spot{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *spotRepository) List(ctx context.Context, filter SpotFilter) ([]*models.Spot, error) {
	var spots []*models.Spot

	q := r.applySpotAggregates(r.db.WithContext(ctx))
	if filter.OwnerID != 0 {
		q = q.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.City != nil {
		q = q.Where("city = ?", *filter.City)
	}
	if filter.State != nil {
		q = q.Where("state = ?", *filter.State)
	}
	if filter.MinLat != nil {
		q = q.Where("lat >= ?", *filter.MinLat)
	}
	if filter.MaxLat != nil {
		q = q.Where("lat <= ?", *filter.MaxLat)
	}
	if filter.MinLng != nil {
		q = q.Where("lng >= ?", *filter.MinLng)
	}
	if filter.MaxLng != nil {
		q = q.Where("lng <= ?", *filter.MaxLng)
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}

	err := q.Order("spots.id ASC").
		Limit(filter.Size).
		Offset((filter.Page - 1) * filter.Size).
		Find(&spots).Error
	if err != nil {
		return nil, err
	}
	return spots, nil
}

func (r *spotRepository) Update(ctx context.Context, spot *models.Spot) error {
	if err := r.db.WithContext(ctx).Save(spot).Error; err != nil {
		return err
	}
	cache.Invalidate(ctx, cache.SpotKey(spot.ID))
	cache.InvalidateSpotLists(ctx)
	return nil
}

func (r *spotRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Spot{}, id).Error; err != nil {
		return err
	}
	cache.Invalidate(ctx, cache.SpotKey(id))
	cache.InvalidateSpotLists(ctx)
	return nil
}

func (r *spotRepository) AddImage(ctx context.Context, image *models.SpotImage) error {
	if err := r.db.WithContext(ctx).Create(image).Error; err != nil {
		return err
	}
	cache.Invalidate(ctx, cache.SpotKey(image.SpotID))
	cache.InvalidateSpotLists(ctx)
	return nil
}

// IsNotFound reports whether err is the ORM's record-not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
