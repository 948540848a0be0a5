package models

import "time"

// Booking statuses. Cancelled and no-show bookings release their slot.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
	BookingStatusNoShow    = "no_show"
)

// Booking represents a confirmed appointment record.
type Booking struct {
	ID             string    `bson:"id" json:"id"`                           // Unique booking identifier (UUID)
	ProfessionalID string    `bson:"professional_id" json:"professionalId"`  // Professional who was booked
	ClientID       string    `bson:"client_id" json:"clientId"`              // Client who made the booking
	Date           string    `bson:"date" json:"date"`                       // Booking date in "YYYY-MM-DD" format
	Start          int       `bson:"start" json:"start"`                     // Start time (minutes from midnight)
	End            int       `bson:"end" json:"end"`                         // End time (minutes from midnight)
	Service        string    `bson:"service" json:"service"`                 // Booked service label (e.g., "Massage 50min")
	Status         string    `bson:"status" json:"status"`                   // One of the BookingStatus* constants
	DepositCents   int64     `bson:"deposit_cents" json:"depositCents"`      // Deposit charged at confirmation, 0 for none
	PaymentIntent  string    `bson:"payment_intent,omitempty" json:"paymentIntent,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
}

// Active reports whether the booking still occupies its slot.
func (b Booking) Active() bool {
	return b.Status != BookingStatusCancelled && b.Status != BookingStatusNoShow
}
