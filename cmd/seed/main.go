package main

import (
	"fmt"
	"log"
	"time"

	"groomglow/internal/bookings"
	"groomglow/internal/catalog"
	"groomglow/internal/shared/config"
	"groomglow/internal/shared/database"
	"groomglow/internal/users"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting GroomGlow Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"bookings",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit().Error
}

// SeedAll seeds demo users and a spread of bookings around them
func (s *Seeder) SeedAll() error {
	userIDs, err := s.SeedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	if err := s.SeedBookings(userIDs); err != nil {
		return fmt.Errorf("failed to seed bookings: %w", err)
	}

	return nil
}

// SeedUsers creates demo accounts (password for all: "password123")
func (s *Seeder) SeedUsers() (map[string]users.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	demo := []users.User{
		{ID: uuid.New(), Name: "Arjun Mehta", Email: "arjun@example.com", Password: string(hashed)},
		{ID: uuid.New(), Name: "Priya Sharma", Email: "priya@example.com", Password: string(hashed)},
	}

	out := make(map[string]users.User, len(demo))
	for _, u := range demo {
		if err := s.db.PostgreSQL.Create(&u).Error; err != nil {
			return nil, err
		}
		fmt.Printf("  Created user: %s (%s)\n", u.Name, u.Email)
		out[u.Email] = u
	}
	return out, nil
}

// SeedBookings creates a mix of future and past appointments so the
// upcoming list has something to filter.
func (s *Seeder) SeedBookings(byEmail map[string]users.User) error {
	arjun := byEmail["arjun@example.com"]
	priya := byEmail["priya@example.com"]

	now := time.Now().UTC().Truncate(time.Minute)

	rows := []struct {
		owner      users.User
		startsAt   time.Time
		serviceIDs []string
	}{
		{arjun, now.Add(48 * time.Hour).Truncate(time.Hour), []string{"1", "2"}},
		{arjun, now.Add(7 * 24 * time.Hour).Truncate(time.Hour), []string{"3"}},
		{arjun, now.Add(-72 * time.Hour).Truncate(time.Hour), []string{"1"}},
		{priya, now.Add(24 * time.Hour).Truncate(time.Hour), []string{"4", "5"}},
	}

	for _, row := range rows {
		selected := make(map[string]bool, len(row.serviceIDs))
		for _, id := range row.serviceIDs {
			selected[id] = true
		}
		startsAt := row.startsAt

		booking := bookings.Booking{
			ID:           uuid.New(),
			UserID:       row.owner.ID,
			UserEmail:    row.owner.Email,
			ServiceNames: datatypes.NewJSONSlice(catalog.ResolveNames(selected)),
			Date:         startsAt.Format(bookings.DateLayout),
			Time:         startsAt.Format(bookings.TimeLayout),
			TotalPrice:   catalog.TotalPrice(selected),
			Status:       bookings.StatusPending,
			StartsAt:     &startsAt,
			CreatedAt:    now,
		}
		if err := s.db.PostgreSQL.Create(&booking).Error; err != nil {
			return err
		}
		fmt.Printf("  Created booking: %s %s for %s (₹%d)\n",
			booking.Date, booking.Time, row.owner.Name, booking.TotalPrice)
	}

	return nil
}
