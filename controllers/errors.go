package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

var (
	ErrInvalidID    = &CustomError{"Invalid id"}
	ErrInvalidLimit = &CustomError{"limit must be a positive integer"}
)

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

// paramID reads a positive numeric path parameter.
func paramID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}
