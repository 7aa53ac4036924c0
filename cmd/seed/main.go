package main

import (
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/copool/chat-service/config"
	"github.com/copool/chat-service/internal/models"
	"github.com/copool/chat-service/pkg/database"
	"github.com/google/uuid"
)

// Seeds the mirror tables with platform-shaped data plus a few chats, so the
// service can be exercised without the rest of the platform running.
func main() {
	gofakeit.Seed(time.Now().UnixNano())

	cfg := config.Load()
	db := database.NewPostgresDB(cfg.DSN())

	users := make([]models.User, 0, 12)
	for i := 0; i < 12; i++ {
		u := models.User{
			ID:    uuid.NewString(),
			Name:  gofakeit.Name(),
			Email: gofakeit.Email(),
		}
		if i%5 == 4 {
			u.Name = "" // profile not filled in yet
		}
		users = append(users, u)
	}
	if err := db.Create(&users).Error; err != nil {
		log.Fatalf("seed users: %v", err)
	}

	statuses := []models.RideStatus{
		models.RideStatusPending,
		models.RideStatusConfirmed,
		models.RideStatusStarted,
		models.RideStatusCompleted,
		models.RideStatusCancelled,
	}

	var rides []models.Ride
	var bookings []models.Booking
	var messages []models.ChatMessage

	for i := 0; i < 6; i++ {
		driver := users[i]
		ride := models.Ride{
			ID:       uuid.NewString(),
			DriverID: driver.ID,
			Status:   statuses[gofakeit.Number(0, len(statuses)-1)],
		}
		rides = append(rides, ride)

		riders := users[6:]
		n := gofakeit.Number(1, 3)
		for j := 0; j < n && j < len(riders); j++ {
			rider := riders[(i+j)%len(riders)]
			status := models.BookingStatusConfirmed
			if j > 0 && gofakeit.Bool() {
				status = models.BookingStatusCancelledUser
			}
			bookings = append(bookings, models.Booking{
				ID:     uuid.NewString(),
				RideID: ride.ID,
				UserID: rider.ID,
				Status: status,
			})
			messages = append(messages,
				models.ChatMessage{RideID: ride.ID, SenderID: rider.ID, Content: gofakeit.Sentence(8)},
				models.ChatMessage{RideID: ride.ID, SenderID: driver.ID, Content: gofakeit.Sentence(6)},
			)
		}
	}

	if err := db.Create(&rides).Error; err != nil {
		log.Fatalf("seed rides: %v", err)
	}
	if err := db.Create(&bookings).Error; err != nil {
		log.Fatalf("seed bookings: %v", err)
	}
	if err := db.Create(&messages).Error; err != nil {
		log.Fatalf("seed messages: %v", err)
	}

	log.Printf("seeded %d users, %d rides, %d bookings, %d messages",
		len(users), len(rides), len(bookings), len(messages))
}
