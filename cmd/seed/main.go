package main

import (
	"context"
	"log"
	"os"
	"time"

	"artistbook/internal/database"
	"artistbook/internal/domain"
	jwtsvc "artistbook/internal/pkg/jwt"
	"artistbook/internal/repository"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "artistbook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data (bookings reference users, so they go first)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM availability_rules")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	rules := repository.NewAvailabilityRuleRepository(db)
	bookings := repository.NewBookingRepository(db)

	// ================== ARTISTS ==================
	log.Println("Creating artists...")
	mara := domain.User{Role: domain.RoleArtist, Name: "Mara Linden", Bio: "Portrait and editorial photographer", Location: "Berlin"}
	joel := domain.User{Role: domain.RoleArtist, Name: "Joel Okafor", Bio: "Session guitarist and producer", Location: "London"}
	for _, u := range []*domain.User{&mara, &joel} {
		if err := users.Create(ctx, u); err != nil {
			log.Fatal("seed artist failed:", err)
		}
	}

	// ================== CLIENTS ==================
	log.Println("Creating clients...")
	ana := domain.User{Role: domain.RoleClient, Name: "Ana Petrova"}
	kofi := domain.User{Role: domain.RoleClient, Name: "Kofi Mensah"}
	for _, u := range []*domain.User{&ana, &kofi} {
		if err := users.Create(ctx, u); err != nil {
			log.Fatal("seed client failed:", err)
		}
	}

	// ================== AVAILABILITY ==================
	log.Println("Creating availability rules...")
	weekly := domain.AvailabilityRule{
		ArtistID:        mara.ID,
		ServiceType:     "Portrait Session",
		DurationMinutes: 60,
		Price:           100,
		Currency:        "EUR",
		RecurringDays:   []int{1, 3}, // Mondays and Wednesdays
		StartTime:       "09:00",
		EndTime:         "12:00",
	}
	if err := rules.Create(ctx, &weekly); err != nil {
		log.Fatal("seed rule failed:", err)
	}

	oneOffDate := domain.DateOnly(time.Now().UTC().AddDate(0, 0, 10))
	oneOff := domain.AvailabilityRule{
		ArtistID:        joel.ID,
		ServiceType:     "Studio Recording",
		DurationMinutes: 120,
		Price:           250,
		Currency:        "GBP",
		Date:            &oneOffDate,
		StartTime:       "14:00",
		EndTime:         "18:00",
	}
	if err := rules.Create(ctx, &oneOff); err != nil {
		log.Fatal("seed rule failed:", err)
	}

	// ================== A DEMO BOOKING ==================
	log.Println("Creating a demo booking...")
	now := time.Now().UTC()
	demo := domain.Booking{
		ArtistID:        joel.ID,
		ClientID:        ana.ID,
		ServiceType:     "Studio Recording",
		Date:            oneOffDate,
		StartTime:       "14:00",
		DurationMinutes: 120,
		Price:           250,
		Currency:        "GBP",
		Notes:           "Acoustic EP, three tracks",
		Status:          domain.BookingRequested,
		StatusHistory: []domain.StatusChange{
			{Status: domain.BookingRequested, Timestamp: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := bookings.Create(ctx, &demo); err != nil {
		log.Fatal("seed booking failed:", err)
	}

	// ================== DEMO TOKENS ==================
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		j := jwtsvc.New(secret, 7*24*time.Hour)
		for _, u := range []domain.User{mara, joel, ana, kofi} {
			token, err := j.GenerateToken(u.ID, string(u.Role))
			if err != nil {
				log.Fatal("token generation failed:", err)
			}
			log.Printf("%s (%s, id=%d): %s", u.Name, u.Role, u.ID, token)
		}
	} else {
		log.Println("JWT_SECRET not set, skipping demo tokens")
	}

	log.Println("Seed completed")
}
