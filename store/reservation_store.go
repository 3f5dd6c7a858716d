package store

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/yeremiapane/lunchly/models"
	"github.com/yeremiapane/lunchly/utils"
)

const reservationsForCustomerSQL = `
SELECT id, customer_id, num_guests, start_at, notes
FROM reservations
WHERE customer_id = ?`

type ReservationStore struct {
	DB *gorm.DB
}

func NewReservationStore(db *gorm.DB) *ReservationStore {
	return &ReservationStore{DB: db}
}

// ForCustomer returns the customer's reservations in the order the database
// yields them. A customer without reservations gets an empty slice.
func (s *ReservationStore) ForCustomer(ctx context.Context, customerID uint) ([]*models.Reservation, error) {
	var rows []ReservationRow
	if err := s.DB.WithContext(ctx).Raw(reservationsForCustomerSQL, customerID).Scan(&rows).Error; err != nil {
		return nil, err
	}

	reservations := make([]*models.Reservation, 0, len(rows))
	for _, row := range rows {
		reservations = append(reservations, reservationFromRow(row))
	}
	return reservations, nil
}

// Save inserts the reservation and records its generated id. Reservations are
// never updated, so saving one that already has an id is refused.
func (s *ReservationStore) Save(ctx context.Context, r *models.Reservation) error {
	if r.Persisted() {
		return &models.ValidationError{Field: "id", Message: "reservation has already been saved"}
	}
	if !r.Valid() {
		return &models.ValidationError{Field: "reservation", Message: "customer, number of guests and start time are required"}
	}

	row := reservationToRow(r)
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	r.SetID(row.ID)

	utils.InfoLogger.WithFields(logrus.Fields{
		"reservation_id": row.ID,
		"customer_id":    row.CustomerID,
	}).Info("Reservation created")
	return nil
}

// FormatStartAt renders the start time for display.
func (s *ReservationStore) FormatStartAt(r *models.Reservation) string {
	return utils.FormatDateTime(r.StartAt())
}
