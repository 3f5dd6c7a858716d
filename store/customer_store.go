package store

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/yeremiapane/lunchly/models"
	"github.com/yeremiapane/lunchly/utils"
)

// DefaultTopLimit is used by TopByReservationCount when no positive limit is given.
const DefaultTopLimit = 10

const (
	listCustomersSQL = `
SELECT id, first_name, last_name, phone, notes
FROM customers
ORDER BY last_name, first_name`

	getCustomerSQL = `
SELECT id, first_name, last_name, phone, notes
FROM customers
WHERE id = ?`

	searchCustomersSQL = `
SELECT id, first_name, last_name
FROM customers
WHERE LOWER(first_name) LIKE LOWER(?) ESCAPE '!'
   OR LOWER(last_name) LIKE LOWER(?) ESCAPE '!'
ORDER BY last_name, first_name`

	// Inner join: customers without reservations are not ranked.
	topCustomersSQL = `
SELECT c.id, c.first_name, c.last_name, COUNT(r.id) AS reservation_count
FROM customers c
JOIN reservations r ON c.id = r.customer_id
GROUP BY c.id, c.first_name, c.last_name
ORDER BY COUNT(r.id) DESC, c.last_name, c.first_name
LIMIT ?`

	updateCustomerSQL = `
UPDATE customers SET first_name = ?, last_name = ?, phone = ?, notes = ?
WHERE id = ?`
)

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

type CustomerStore struct {
	DB               *gorm.DB
	ReservationStore *ReservationStore
}

func NewCustomerStore(db *gorm.DB) *CustomerStore {
	return &CustomerStore{DB: db, ReservationStore: NewReservationStore(db)}
}

// ListAll returns every customer ordered by last name, then first name.
func (s *CustomerStore) ListAll(ctx context.Context) ([]*models.Customer, error) {
	var rows []CustomerRow
	if err := s.DB.WithContext(ctx).Raw(listCustomersSQL).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return customersFromRows(rows), nil
}

// GetByID returns *models.NotFoundError when no customer has the given id.
func (s *CustomerStore) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	var rows []CustomerRow
	if err := s.DB.WithContext(ctx).Raw(getCustomerSQL, id).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &models.NotFoundError{Entity: "customer", ID: id}
	}
	return customerFromRow(rows[0]), nil
}

// Search matches name as a case-insensitive substring of the first or last
// name. Only id and names are filled in on the results.
func (s *CustomerStore) Search(ctx context.Context, name string) ([]*models.Customer, error) {
	pattern := "%" + likeEscaper.Replace(name) + "%"

	var rows []CustomerRow
	if err := s.DB.WithContext(ctx).Raw(searchCustomersSQL, pattern, pattern).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return customersFromRows(rows), nil
}

// TopByReservationCount ranks customers by how many reservations they hold.
// Results carry id, names and ReservationCount only.
func (s *CustomerStore) TopByReservationCount(ctx context.Context, limit int) ([]*models.Customer, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	var rows []rankedCustomerRow
	if err := s.DB.WithContext(ctx).Raw(topCustomersSQL, limit).Scan(&rows).Error; err != nil {
		return nil, err
	}

	customers := make([]*models.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, &models.Customer{
			ID:               row.ID,
			FirstName:        row.FirstName,
			LastName:         row.LastName,
			ReservationCount: row.ReservationCount,
		})
	}
	return customers, nil
}

// Reservations loads the customer's reservations; the customer is not modified.
func (s *CustomerStore) Reservations(ctx context.Context, c *models.Customer) ([]*models.Reservation, error) {
	return s.ReservationStore.ForCustomer(ctx, c.ID)
}

// Save inserts a customer without an id and stores the generated key on it.
// A customer with an id has all its fields overwritten.
func (s *CustomerStore) Save(ctx context.Context, c *models.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	row := customerToRow(c)
	if c.ID == 0 {
		if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
		c.ID = row.ID
		utils.InfoLogger.WithFields(logrus.Fields{"customer_id": c.ID}).Info("Customer created")
		return nil
	}

	err := s.DB.WithContext(ctx).
		Exec(updateCustomerSQL, row.FirstName, row.LastName, row.Phone, row.Notes, row.ID).
		Error
	if err != nil {
		return err
	}
	utils.InfoLogger.WithFields(logrus.Fields{"customer_id": c.ID}).Info("Customer updated")
	return nil
}

func customersFromRows(rows []CustomerRow) []*models.Customer {
	customers := make([]*models.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, customerFromRow(row))
	}
	return customers
}
