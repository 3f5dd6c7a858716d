package models

import (
	"fmt"
	"net/http"
)

// ValidationError is returned when a value is rejected before it reaches an entity.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "Invalid data: " + e.Message
}

func (e *ValidationError) StatusCode() int {
	return http.StatusUnprocessableEntity
}

// NotFoundError reports a lookup by id that matched no row.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No such %s: %d", e.Entity, e.ID)
}

func (e *NotFoundError) StatusCode() int {
	return http.StatusNotFound
}
