package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"artistbook/internal/database"
	"artistbook/internal/middleware"
	"artistbook/internal/modules/artists"
	"artistbook/internal/modules/availability"
	"artistbook/internal/modules/booking"
	"artistbook/internal/modules/slots"
	jwtsvc "artistbook/internal/pkg/jwt"
	"artistbook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	ruleRepo := repository.NewAvailabilityRuleRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	artistsHandler := artists.NewHandler(artists.NewService(userRepo, ruleRepo))
	availabilityHandler := availability.NewHandler(availability.NewService(ruleRepo))
	slotsHandler := slots.NewHandler(slots.NewService(scheduleRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo))

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		artistsHandler.RegisterRoutes(v1)
		availabilityHandler.RegisterPublicRoutes(v1)
		slotsHandler.RegisterRoutes(v1)

		// authenticated
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			bookingHandler.RegisterRoutes(protected)

			artistOnly := protected.Group("/")
			artistOnly.Use(middleware.ArtistOnly())
			availabilityHandler.RegisterRoutes(artistOnly)
		}
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
