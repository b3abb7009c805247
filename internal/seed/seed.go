// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"

	"gotolinks/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options configuration for the seeder
type Options struct {
	// NumCreators is how many random creators to generate on top of the
	// demo account.
	NumCreators int
	ShouldClean bool
}

// DemoEmail is the login for the seeded demo account.
const DemoEmail = "demo@example.com"

// DemoHandle is the public handle of the seeded demo profile.
const DemoHandle = "demo-creator"

// Seed populates the database with the demo creator plus random accounts.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding database with demo creator and %d random creators...", opts.NumCreators)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	if err := SeedDemo(db); err != nil {
		return fmt.Errorf("failed to seed demo creator: %w", err)
	}
	log.Println("Demo creator ready (demo@example.com / demo-creator)")

	f := NewFactory(db)
	for i := 0; i < opts.NumCreators; i++ {
		if _, _, err := f.CreateCreator(); err != nil {
			return fmt.Errorf("failed to create random creator: %w", err)
		}
	}
	if opts.NumCreators > 0 {
		log.Printf("%d random creators created", opts.NumCreators)
	}

	return nil
}

// SeedDemo inserts the Sarah Moon demo account: a populated profile and
// per-period stats. Running it twice is safe; existing demo data is kept.
func SeedDemo(db *gorm.DB) error {
	var existing models.User
	err := db.Where("email = ?", DemoEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Email:     DemoEmail,
		FirstName: "Sarah",
		LastName:  "Moon",
		Handle:    DemoHandle,
		Plan:      models.PlanFree,
	}
	if err := db.Create(user).Error; err != nil {
		return err
	}

	profile := &models.Profile{
		ID:       uuid.New().String(),
		UserID:   user.ID,
		Name:     "Sarah Moon",
		Headline: "Retreat Leader & Sacred Space Holder",
		Bio:      "Creating transformative experiences in nature. Join me for healing retreats, meditation circles, and soulful gatherings.",
		PhotoURL: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400&h=400&fit=crop",
		Location: "Bali, Indonesia",
		Theme:    "mystic-teal-gold",
		Blocks: []models.ProfileBlock{
			{
				ID:       uuid.New().String(),
				Type:     models.BlockTypeRetreat,
				Position: 0,
				Data: models.BlockData{
					Title:     "Sacred Silence Retreat",
					DateRange: "March 15-20, 2024",
					Location:  "Ubud, Bali",
					URL:       "https://example.com/retreat1",
				},
			},
			{
				ID:       uuid.New().String(),
				Type:     models.BlockTypeLink,
				Position: 1,
				Data: models.BlockData{
					Title: "My Wellness Blog",
					URL:   "https://example.com/blog",
				},
			},
			{
				ID:       uuid.New().String(),
				Type:     models.BlockTypeBookCall,
				Position: 2,
				Data: models.BlockData{
					Title: "Book a Discovery Call",
					URL:   "https://calendly.com/sarah-moon",
				},
			},
			{
				ID:       uuid.New().String(),
				Type:     models.BlockTypeTestimonial,
				Position: 3,
				Data: models.BlockData{
					Name:  "Emma K.",
					Quote: "Sarah's retreats changed my life. The space she creates is truly magical.",
				},
			},
		},
	}
	if err := db.Create(profile).Error; err != nil {
		return err
	}

	for _, stats := range demoStats(user.ID) {
		stats := stats
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "period"}},
			UpdateAll: true,
		}).Create(&stats).Error; err != nil {
			return err
		}
	}

	return nil
}

// demoStats returns plausible aggregates for every period, anchored on the
// 7-day numbers the dashboard ships with.
func demoStats(userID string) []models.Stats {
	return []models.Stats{
		{
			UserID:        userID,
			Period:        models.StatsPeriod7d,
			ProfileViews:  342,
			LinkClicks:    128,
			TopLinkTitle:  "Sacred Silence Retreat",
			TopLinkClicks: 45,
		},
		{
			UserID:        userID,
			Period:        models.StatsPeriod30d,
			ProfileViews:  1289,
			LinkClicks:    511,
			TopLinkTitle:  "Sacred Silence Retreat",
			TopLinkClicks: 172,
		},
		{
			UserID:        userID,
			Period:        models.StatsPeriodAll,
			ProfileViews:  5840,
			LinkClicks:    2304,
			TopLinkTitle:  "My Wellness Blog",
			TopLinkClicks: 803,
		},
	}
}

// clearData removes all seeded rows. Order matters: blocks and stats hang off
// profiles and users.
func clearData(db *gorm.DB) error {
	for _, stmt := range []string{
		"DELETE FROM profile_blocks",
		"DELETE FROM stats",
		"DELETE FROM profiles",
		"DELETE FROM users",
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
