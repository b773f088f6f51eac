package store

import (
	"fmt"
	"time"

	"appointment-booking-api/internal/auth"
	"appointment-booking-api/internal/model"
)

// Demo credentials, deliberately fixed: tests and the demo UI depend on them.
const (
	SeedAdminID       = "admin-1"
	SeedAdminName     = "Dr. Priya Sharma"
	SeedAdminEmail    = "admin@clinic.com"
	SeedAdminPassword = "admin123"

	SeedUserID       = "user-1"
	SeedUserName     = "Ravi Kumar"
	SeedUserEmail    = "user@example.com"
	SeedUserPassword = "user123"
)

// seedHours are the bookable hours published per day.
var seedHours = []int{9, 10, 11, 14, 15, 16}

// Seed populates the dataset with one admin, one regular user and a week of
// open slots (6 per day for 7 days starting today). Safe to call once, at
// process start.
func (s *Store) Seed() error {
	adminHash, err := auth.HashPassword(SeedAdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	userHash, err := auth.HashPassword(SeedUserPassword)
	if err != nil {
		return fmt.Errorf("hash user password: %w", err)
	}

	return s.Update(func(d *Data) error {
		d.InsertUser(&model.User{
			ID:           SeedAdminID,
			Name:         SeedAdminName,
			Email:        SeedAdminEmail,
			PasswordHash: adminHash,
			Role:         model.RoleAdmin,
		})
		d.InsertUser(&model.User{
			ID:           SeedUserID,
			Name:         SeedUserName,
			Email:        SeedUserEmail,
			PasswordHash: userHash,
			Role:         model.RoleUser,
		})

		now := time.Now()
		n := 0
		for dayOffset := 0; dayOffset < 7; dayOffset++ {
			day := now.AddDate(0, 0, dayOffset)
			for _, hour := range seedHours {
				start := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
				n++
				d.InsertSlot(&model.AppointmentSlot{
					ID:           fmt.Sprintf("slot-%d", n),
					ProviderID:   SeedAdminID,
					ProviderName: SeedAdminName,
					StartTime:    start,
					EndTime:      start.Add(time.Hour),
					IsAvailable:  true,
				})
			}
		}
		return nil
	})
}
