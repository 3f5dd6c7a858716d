package store

import (
	"time"

	"github.com/yeremiapane/lunchly/models"
)

// CustomerRow mirrors one row of the customers table.
type CustomerRow struct {
	ID        uint    `gorm:"primaryKey"`
	FirstName string  `gorm:"type:varchar(255);not null"`
	LastName  string  `gorm:"type:varchar(255);not null"`
	Phone     *string `gorm:"type:varchar(64)"`
	Notes     *string `gorm:"type:text"`
}

func (CustomerRow) TableName() string { return "customers" }

// ReservationRow mirrors one row of the reservations table.
type ReservationRow struct {
	ID         uint      `gorm:"primaryKey"`
	CustomerID uint      `gorm:"not null;index"`
	NumGuests  int       `gorm:"not null"`
	StartAt    time.Time `gorm:"not null"`
	Notes      *string   `gorm:"type:text"`
}

func (ReservationRow) TableName() string { return "reservations" }

// rankedCustomerRow is the projection returned by the top customers query.
type rankedCustomerRow struct {
	ID               uint
	FirstName        string
	LastName         string
	ReservationCount int64
}

func customerFromRow(row CustomerRow) *models.Customer {
	c := models.NewCustomer(row.FirstName, row.LastName, deref(row.Phone), deref(row.Notes))
	c.ID = row.ID
	return c
}

func customerToRow(c *models.Customer) CustomerRow {
	notes := c.Notes()
	return CustomerRow{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     nullable(c.Phone),
		Notes:     &notes,
	}
}

func reservationFromRow(row ReservationRow) *models.Reservation {
	return models.RestoreReservation(row.ID, row.CustomerID, row.NumGuests, row.StartAt, deref(row.Notes))
}

func reservationToRow(r *models.Reservation) ReservationRow {
	return ReservationRow{
		ID:         r.ID(),
		CustomerID: r.CustomerID(),
		NumGuests:  r.NumGuests(),
		StartAt:    r.StartAt(),
		Notes:      nullable(r.Notes()),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
