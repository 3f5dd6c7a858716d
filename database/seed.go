package database

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gorm.io/gorm"

	"github.com/yeremiapane/lunchly/utils"
)

// ExecuteScript runs every statement of the SQL file at path, in order. It
// stops at the first failing statement and returns its error.
func ExecuteScript(ctx context.Context, db *gorm.DB, path string) error {
	script, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	statements := SplitStatements(string(script))
	for i, stmt := range statements {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			utils.ErrorLogger.Printf("Error executing statement %d of %s: %v", i+1, path, err)
			return fmt.Errorf("%s: statement %d: %w", path, i+1, err)
		}
	}

	utils.InfoLogger.Printf("Executed %d statements from %s", len(statements), path)
	return nil
}

// SplitStatements splits a script on semicolons that are not inside a quoted
// string. "--" comments outside quotes are dropped up to the end of the line.
func SplitStatements(script string) []string {
	var (
		statements []string
		current    strings.Builder
		inQuote    bool
	)

	flush := func() {
		if stmt := strings.TrimSpace(current.String()); stmt != "" {
			statements = append(statements, stmt)
		}
		current.Reset()
	}

	for i := 0; i < len(script); i++ {
		ch := script[i]
		switch {
		case ch == '\'':
			inQuote = !inQuote
			current.WriteByte(ch)
		case inQuote:
			current.WriteByte(ch)
		case ch == '-' && strings.HasPrefix(script[i:], "--"):
			end := strings.IndexByte(script[i:], '\n')
			if end < 0 {
				i = len(script)
				continue
			}
			i += end - 1
		case ch == ';':
			flush()
		default:
			current.WriteByte(ch)
		}
	}
	flush()
	return statements
}
