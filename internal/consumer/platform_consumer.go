package consumer

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/copool/chat-service/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlatformConsumer struct {
	db *gorm.DB
}

func NewPlatformConsumer(db *gorm.DB) *PlatformConsumer {
	return &PlatformConsumer{db: db}
}

// Start listens for platform events and mirrors rides, bookings and users
// into the local chat DB.
func (pc *PlatformConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			pc.handleMessage(msg)
		}
		log.Println("[PlatformConsumer] channel closed, stopping consumer")
	}()
}

func (pc *PlatformConsumer) handleMessage(msg amqp.Delivery) {
	entity, _, _ := strings.Cut(msg.RoutingKey, ".")
	switch entity {
	case "ride":
		pc.syncRide(msg)
	case "booking":
		pc.syncBooking(msg)
	case "user":
		pc.syncUser(msg)
	default:
		log.Printf("[PlatformConsumer] unexpected routing key: %s", msg.RoutingKey)
		msg.Nack(false, false)
	}
}

func (pc *PlatformConsumer) syncRide(msg amqp.Delivery) {
	var ride models.Ride
	if err := json.Unmarshal(msg.Body, &ride); err != nil || ride.ID == "" {
		log.Printf("[PlatformConsumer] malformed ride payload: %v", err)
		msg.Nack(false, false)
		return
	}

	result := pc.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"driver_id", "status", "updated_at"}),
	}).Create(&ride)

	if result.Error != nil {
		log.Printf("[PlatformConsumer] failed to upsert ride %s: %v", ride.ID, result.Error)
		msg.Nack(false, true) // requeue
		return
	}

	log.Printf("[PlatformConsumer] synced ride %s (%s)", ride.ID, ride.Status)
	msg.Ack(false)
}

func (pc *PlatformConsumer) syncBooking(msg amqp.Delivery) {
	var booking models.Booking
	if err := json.Unmarshal(msg.Body, &booking); err != nil || booking.ID == "" {
		log.Printf("[PlatformConsumer] malformed booking payload: %v", err)
		msg.Nack(false, false)
		return
	}

	result := pc.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(&booking)

	if result.Error != nil {
		log.Printf("[PlatformConsumer] failed to upsert booking %s: %v", booking.ID, result.Error)
		msg.Nack(false, true) // requeue
		return
	}

	log.Printf("[PlatformConsumer] synced booking %s (%s)", booking.ID, booking.Status)
	msg.Ack(false)
}

func (pc *PlatformConsumer) syncUser(msg amqp.Delivery) {
	var user models.User
	if err := json.Unmarshal(msg.Body, &user); err != nil || user.ID == "" {
		log.Printf("[PlatformConsumer] malformed user payload: %v", err)
		msg.Nack(false, false)
		return
	}

	result := pc.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "updated_at"}),
	}).Create(&user)

	if result.Error != nil {
		log.Printf("[PlatformConsumer] failed to upsert user %s: %v", user.ID, result.Error)
		msg.Nack(false, true) // requeue
		return
	}

	log.Printf("[PlatformConsumer] synced user %s", user.ID)
	msg.Ack(false)
}
