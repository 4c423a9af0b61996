package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"artistbook/internal/database"
	"artistbook/internal/modules/booking"
	"artistbook/internal/repository"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// The sweeper is the external batch job that settles overdue bookings:
// confirmed bookings whose session date has passed are completed. The API
// itself never runs background work.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}
	schedule := os.Getenv("SWEEP_SCHEDULE")
	if schedule == "" {
		schedule = "@every 15m"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	svc := booking.NewService(repository.NewBookingRepository(db))

	sweep := func() {
		n, err := svc.CompleteOverdue(context.Background())
		if err != nil {
			log.Printf("sweep failed after %d completions: %v", n, err)
			return
		}
		log.Printf("sweep completed: bookings_completed=%d", n)
	}

	// One pass at startup, then on schedule.
	sweep()

	c := cron.New()
	if _, err := c.AddFunc(schedule, sweep); err != nil {
		log.Fatalf("invalid SWEEP_SCHEDULE %q: %v", schedule, err)
	}
	c.Start()
	log.Printf("sweeper running, schedule=%q", schedule)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	<-c.Stop().Done()
	log.Println("sweeper stopped")
}
