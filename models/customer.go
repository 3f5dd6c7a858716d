package models

import (
	"encoding/json"
	"strings"
)

// NotesPlaceholder is what Notes returns for a customer without notes.
const NotesPlaceholder = " "

type Customer struct {
	ID               uint
	FirstName        string
	LastName         string
	Phone            string
	ReservationCount int64
	notes            string
}

func NewCustomer(firstName, lastName, phone, notes string) *Customer {
	return &Customer{
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
		notes:     notes,
	}
}

// FullName joins first and last name. It is never stored.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Notes never returns an empty string; unset notes read as NotesPlaceholder.
func (c *Customer) Notes() string {
	if c.notes == "" {
		return NotesPlaceholder
	}
	return c.notes
}

func (c *Customer) SetNotes(notes string) {
	c.notes = notes
}

// Validate checks the fields the customers table requires.
func (c *Customer) Validate() error {
	if strings.TrimSpace(c.FirstName) == "" {
		return &ValidationError{Field: "first_name", Message: "first name is required"}
	}
	if strings.TrimSpace(c.LastName) == "" {
		return &ValidationError{Field: "last_name", Message: "last name is required"}
	}
	return nil
}

func (c *Customer) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID               uint   `json:"id"`
		FirstName        string `json:"first_name"`
		LastName         string `json:"last_name"`
		FullName         string `json:"full_name"`
		Phone            string `json:"phone"`
		Notes            string `json:"notes"`
		ReservationCount int64  `json:"reservation_count,omitempty"`
	}{
		ID:               c.ID,
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		FullName:         c.FullName(),
		Phone:            c.Phone,
		Notes:            c.Notes(),
		ReservationCount: c.ReservationCount,
	})
}
