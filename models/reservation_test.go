package models

import (
	"errors"
	"math"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validStart = time.Date(2024, time.April, 4, 14, 30, 0, 0, time.UTC)

func requireValidationError(t *testing.T, err error, field string) {
	t.Helper()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
	assert.Equal(t, field, ve.Field)
	assert.Equal(t, http.StatusUnprocessableEntity, ve.StatusCode())
}

func TestReservation_SetNumGuests(t *testing.T) {
	r := &Reservation{}

	for _, n := range []int{0, -1, math.MinInt} {
		requireValidationError(t, r.SetNumGuests(n), "num_guests")
		assert.Zero(t, r.NumGuests())
	}

	for _, n := range []int{1, 2, 12, math.MaxInt32} {
		require.NoError(t, r.SetNumGuests(n))
		assert.Equal(t, n, r.NumGuests())
	}

	requireValidationError(t, r.SetNumGuests(0), "num_guests")
	assert.Equal(t, math.MaxInt32, r.NumGuests())
}

func TestReservation_SetStartAt(t *testing.T) {
	r := &Reservation{}

	requireValidationError(t, r.SetStartAt(time.Time{}), "start_at")
	requireValidationError(t, r.SetStartAt(time.UnixMilli(0)), "start_at")
	requireValidationError(t, r.SetStartAt(time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC)), "start_at")
	requireValidationError(t, r.SetStartAt(time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)), "start_at")
	requireValidationError(t, r.SetStartAt(time.UnixMilli(9000000000000000)), "start_at")
	assert.True(t, r.StartAt().IsZero())

	require.NoError(t, r.SetStartAt(time.UnixMilli(1)))
	lastInstant := time.Date(9999, 12, 31, 23, 59, 59, 999000000, time.UTC)
	require.NoError(t, r.SetStartAt(lastInstant))
	assert.True(t, lastInstant.Equal(r.StartAt()))

	require.NoError(t, r.SetStartAt(validStart))
	assert.True(t, validStart.Equal(r.StartAt()))
}

func TestRestoreReservation(t *testing.T) {
	r := RestoreReservation(7, 3, 0, validStart, "")
	assert.Equal(t, uint(7), r.ID())
	assert.Equal(t, uint(3), r.CustomerID())
	assert.Equal(t, 0, r.NumGuests())
	assert.True(t, r.Persisted())
	assert.False(t, r.Valid())

	requireValidationError(t, r.SetCustomerID(4), "customer_id")
}

func TestReservation_CustomerIDIsWriteOnce(t *testing.T) {
	r := &Reservation{}

	requireValidationError(t, r.SetCustomerID(0), "customer_id")
	require.NoError(t, r.SetCustomerID(5))
	assert.Equal(t, uint(5), r.CustomerID())

	requireValidationError(t, r.SetCustomerID(5), "customer_id")
	requireValidationError(t, r.SetCustomerID(6), "customer_id")
	assert.Equal(t, uint(5), r.CustomerID())
}

func TestNewReservation(t *testing.T) {
	r, err := NewReservation(3, 4, validStart, "birthday")
	require.NoError(t, err)
	assert.True(t, r.Valid())
	assert.False(t, r.Persisted())
	assert.Equal(t, "birthday", r.Notes())

	r.SetID(10)
	assert.True(t, r.Persisted())

	_, err = NewReservation(3, 0, validStart, "")
	requireValidationError(t, err, "num_guests")

	_, err = NewReservation(0, 2, validStart, "")
	requireValidationError(t, err, "customer_id")

	_, err = NewReservation(3, 2, time.Time{}, "")
	requireValidationError(t, err, "start_at")
}

func TestReservation_Valid(t *testing.T) {
	r := &Reservation{}
	assert.False(t, r.Valid())

	require.NoError(t, r.SetCustomerID(1))
	require.NoError(t, r.SetNumGuests(2))
	assert.False(t, r.Valid())

	require.NoError(t, r.SetStartAt(validStart))
	assert.True(t, r.Valid())
}

func TestParseStartAt(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{name: "rfc3339", value: "2024-04-04T14:30:00Z", want: validStart},
		{name: "epoch millis", value: "1712241000000", want: time.UnixMilli(1712241000000)},
		{name: "date and time", value: "2024-04-04 14:30", want: time.Date(2024, 4, 4, 14, 30, 0, 0, time.Local)},
		{name: "html datetime-local", value: "2024-04-04T14:30", want: time.Date(2024, 4, 4, 14, 30, 0, 0, time.Local)},
		{name: "not a date", value: "not-a-date", wantErr: true},
		{name: "NaN", value: "NaN", wantErr: true},
		{name: "zero", value: "0", wantErr: true},
		{name: "negative", value: "-5", wantErr: true},
		{name: "first millisecond", value: "1", want: time.UnixMilli(1)},
		{name: "last millisecond of 9999", value: "253402300799999", want: time.UnixMilli(253402300799999)},
		{name: "past year 9999", value: "253402300800000", wantErr: true},
		{name: "far future millis", value: "9000000000000000", wantErr: true},
		{name: "year 10000 text", value: "10000-01-01T00:00:00Z", wantErr: true},
		{name: "empty", value: "", wantErr: true},
		{name: "impossible date", value: "2024-02-30 10:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStartAt(tt.value)
			if tt.wantErr {
				requireValidationError(t, err, "start_at")
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v want %v", got, tt.want)
		})
	}
}
