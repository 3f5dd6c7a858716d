package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomer_NotesNeverEmpty(t *testing.T) {
	c := NewCustomer("Jane", "Doe", "", "")
	assert.Equal(t, NotesPlaceholder, c.Notes())

	c.SetNotes("VIP")
	assert.Equal(t, "VIP", c.Notes())

	c.SetNotes("")
	assert.Equal(t, " ", c.Notes())

	var zero Customer
	assert.NotEmpty(t, zero.Notes())
}

func TestCustomer_FullName(t *testing.T) {
	assert.Equal(t, "Jane Doe", NewCustomer("Jane", "Doe", "", "").FullName())
}

func TestCustomer_Validate(t *testing.T) {
	assert.NoError(t, NewCustomer("Jane", "Doe", "", "").Validate())

	var ve *ValidationError
	err := NewCustomer("Jane", "  ", "", "").Validate()
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "last_name", ve.Field)
	assert.Equal(t, 422, ve.StatusCode())
}

func TestCustomer_MarshalJSON(t *testing.T) {
	c := NewCustomer("Jane", "Doe", "555-1234", "")
	c.ID = 7

	b, err := json.Marshal(c)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, float64(7), got["id"])
	assert.Equal(t, "Jane Doe", got["full_name"])
	assert.Equal(t, " ", got["notes"])
	assert.NotContains(t, got, "reservation_count")
}
