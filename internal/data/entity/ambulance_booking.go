package entity

import "time"

type BookingStatus string

const (
	BookingStatusBooked BookingStatus = "BOOKED"
)

// AmbulanceBooking is immutable after creation; no cancel or update exists.
// UserPhone may be empty: bookings are accepted for unregistered phones too.
type AmbulanceBooking struct {
	ID             int64         `db:"id"`
	UserPhone      string        `db:"user_phone"`
	PickupLocation string        `db:"pickup_location"`
	Destination    string        `db:"destination"`
	Status         BookingStatus `db:"status"`
	CreatedAt      time.Time     `db:"created_at"`
}
