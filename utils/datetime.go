package utils

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatDateTime renders t like "April 4th 2024, 2:30 pm".
func FormatDateTime(t time.Time) string {
	return t.Format("January ") +
		humanize.Ordinal(t.Day()) +
		t.Format(" 2006, 3:04 ") +
		strings.ToLower(t.Format("PM"))
}
