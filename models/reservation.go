package models

import (
	"strconv"
	"strings"
	"time"
)

// startAtLayouts are tried in order by ParseStartAt.
var startAtLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Reservation is a party booked by a customer. Its fields can only be changed
// through the setters, which reject invalid values without modifying the
// reservation.
type Reservation struct {
	id         uint
	customerID uint
	numGuests  int
	startAt    time.Time
	notes      string
}

// maxStartYear is the last year a timestamp can be stored in and encoded from.
const maxStartYear = 9999

// NewReservation builds a reservation for a customer, validating every field.
func NewReservation(customerID uint, numGuests int, startAt time.Time, notes string) (*Reservation, error) {
	r := &Reservation{notes: notes}
	if err := r.SetCustomerID(customerID); err != nil {
		return nil, err
	}
	if err := r.SetNumGuests(numGuests); err != nil {
		return nil, err
	}
	if err := r.SetStartAt(startAt); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Reservation) ID() uint           { return r.id }
func (r *Reservation) CustomerID() uint   { return r.customerID }
func (r *Reservation) NumGuests() int     { return r.numGuests }
func (r *Reservation) StartAt() time.Time { return r.startAt }
func (r *Reservation) Notes() string      { return r.notes }

func (r *Reservation) SetNumGuests(n int) error {
	if n < 1 {
		return &ValidationError{Field: "num_guests", Message: "reservation value must be 1 or greater"}
	}
	r.numGuests = n
	return nil
}

func (r *Reservation) SetStartAt(t time.Time) error {
	if !validStartAt(t) {
		return &ValidationError{Field: "start_at", Message: "start value must be a valid date and time"}
	}
	r.startAt = t
	return nil
}

// SetCustomerID assigns the owning customer. The id can be set only once.
func (r *Reservation) SetCustomerID(id uint) error {
	if r.customerID != 0 {
		return &ValidationError{Field: "customer_id", Message: "customer id cannot be assigned to a new value"}
	}
	if id == 0 {
		return &ValidationError{Field: "customer_id", Message: "customer id is required"}
	}
	r.customerID = id
	return nil
}

func (r *Reservation) SetNotes(notes string) {
	r.notes = notes
}

// RestoreReservation rebuilds a reservation read back from storage. The row is
// taken as stored; it is not validated again.
func RestoreReservation(id, customerID uint, numGuests int, startAt time.Time, notes string) *Reservation {
	return &Reservation{
		id:         id,
		customerID: customerID,
		numGuests:  numGuests,
		startAt:    startAt,
		notes:      notes,
	}
}

// SetID records the key generated by the store on insert.
func (r *Reservation) SetID(id uint) {
	r.id = id
}

// Valid reports whether every required field has been assigned.
func (r *Reservation) Valid() bool {
	return r.customerID != 0 && r.numGuests >= 1 && validStartAt(r.startAt)
}

func (r *Reservation) Persisted() bool {
	return r.id != 0
}

// ParseStartAt reads a start time from user input. Besides the layouts in
// startAtLayouts it accepts a positive number of milliseconds since the epoch.
func ParseStartAt(value string) (time.Time, error) {
	invalid := &ValidationError{Field: "start_at", Message: "start value must be a valid date and time"}

	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, invalid
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		t := time.UnixMilli(ms)
		if !validStartAt(t) {
			return time.Time{}, invalid
		}
		return t, nil
	}
	for _, layout := range startAtLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil && validStartAt(t) {
			return t, nil
		}
	}
	return time.Time{}, invalid
}

// validStartAt accepts instants after the Unix epoch up to the end of year
// 9999, the range RFC 3339 and the SQL date types can represent.
func validStartAt(t time.Time) bool {
	return !t.IsZero() && t.UnixMilli() > 0 && t.UTC().Year() <= maxStartYear
}
