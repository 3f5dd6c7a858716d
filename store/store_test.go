package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeremiapane/lunchly/models"
)

// setupTestDB opens a private in-memory SQLite database with both tables.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&CustomerRow{}, &ReservationRow{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, first, last string) *models.Customer {
	t.Helper()
	c := models.NewCustomer(first, last, "", "")
	require.NoError(t, NewCustomerStore(db).Save(context.Background(), c))
	return c
}

func seedReservations(t *testing.T, db *gorm.DB, c *models.Customer, n int) {
	t.Helper()
	rs := NewReservationStore(db)
	start := time.Date(2024, time.April, 4, 14, 30, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		r, err := models.NewReservation(c.ID, 2, start.Add(time.Duration(i)*24*time.Hour), "")
		require.NoError(t, err)
		require.NoError(t, rs.Save(context.Background(), r))
	}
}
