// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"hearth/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoPassword is the plaintext password shared by all seeded users.
const DemoPassword = "password123"

// Seeder populates the database with generated users, spots and reviews.
type Seeder struct {
	db  *gorm.DB
	rnd *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:  db,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes every seeded row. Hard deletes so reruns start clean.
func (s *Seeder) ClearAll() error {
	tables := []any{
		&models.ReviewImage{},
		&models.Review{},
		&models.SpotImage{},
		&models.Spot{},
		&models.User{},
	}
	for _, t := range tables {
		if err := s.db.Unscoped().Where("1 = 1").Delete(t).Error; err != nil {
			return fmt.Errorf("clearing %T: %w", t, err)
		}
	}
	return nil
}

// Run seeds numUsers users and numSpots spots, each spot with images and a
// few reviews from non-owner users.
func (s *Seeder) Run(numUsers, numSpots int) error {
	users, err := s.seedUsers(numUsers)
	if err != nil {
		return err
	}
	spots, err := s.seedSpots(users, numSpots)
	if err != nil {
		return err
	}
	if err := s.seedReviews(users, spots); err != nil {
		return err
	}
	slog.Info("seeding complete",
		slog.Int("users", len(users)),
		slog.Int("spots", len(spots)))
	return nil
}

func (s *Seeder) seedUsers(n int) ([]*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			FirstName: gofakeit.FirstName(),
			LastName:  gofakeit.LastName(),
			Email:     fmt.Sprintf("user%d@%s", i+1, gofakeit.DomainName()),
			Password:  string(hash),
		}
		if err := s.db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("creating user: %w", err)
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) seedSpots(users []*models.User, n int) ([]*models.Spot, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to own spots")
	}

	spots := make([]*models.Spot, 0, n)
	for i := 0; i < n; i++ {
		owner := users[s.rnd.Intn(len(users))]
		addr := gofakeit.Address()

		name := gofakeit.Company()
		if len(name) > 50 {
			name = name[:50]
		}

		spot := &models.Spot{
			OwnerID:     owner.ID,
			Address:     addr.Street,
			City:        addr.City,
			State:       addr.State,
			Country:     "United States of America",
			Lat:         addr.Latitude,
			Lng:         addr.Longitude,
			Name:        name,
			Description: gofakeit.Paragraph(1, 3, 10, " "),
			Price:       float64(s.rnd.Intn(45000)+5000) / 100,
		}
		if err := s.db.Create(spot).Error; err != nil {
			return nil, fmt.Errorf("creating spot: %w", err)
		}

		// One preview image plus a couple of extras.
		images := []models.SpotImage{
			{SpotID: spot.ID, URL: fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()), Preview: true},
		}
		for j := 0; j < s.rnd.Intn(3); j++ {
			images = append(images, models.SpotImage{
				SpotID: spot.ID,
				URL:    fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
			})
		}
		if err := s.db.Create(&images).Error; err != nil {
			return nil, fmt.Errorf("creating spot images: %w", err)
		}

		spots = append(spots, spot)
	}
	return spots, nil
}

func (s *Seeder) seedReviews(users []*models.User, spots []*models.Spot) error {
	for _, spot := range spots {
		// Reviewers are drawn without repeats so the one-review-per-user
		// constraint holds.
		perm := s.rnd.Perm(len(users))
		count := 0
		want := s.rnd.Intn(4)
		for _, idx := range perm {
			if count >= want {
				break
			}
			reviewer := users[idx]
			if reviewer.ID == spot.OwnerID {
				continue
			}
			review := &models.Review{
				SpotID: spot.ID,
				UserID: reviewer.ID,
				Review: gofakeit.Sentence(12),
				Stars:  s.rnd.Intn(5) + 1,
			}
			if err := s.db.Create(review).Error; err != nil {
				return fmt.Errorf("creating review: %w", err)
			}
			if s.rnd.Intn(2) == 0 {
				img := &models.ReviewImage{
					ReviewID: review.ID,
					URL:      fmt.Sprintf("https://picsum.photos/seed/%s/640/480", gofakeit.UUID()),
				}
				if err := s.db.Create(img).Error; err != nil {
					return fmt.Errorf("creating review image: %w", err)
				}
			}
			count++
		}
	}
	return nil
}
