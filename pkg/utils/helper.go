package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// GenerateTabToken creates the opaque token a browser tab presents on every request.
func GenerateTabToken() uuid.UUID {
	return uuid.New()
}

func ParseTabToken(token string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(token))
}

// UserNameFromEmail returns the local part of an email address.
func UserNameFromEmail(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found {
		return email
	}
	return local
}

// Today formats the current date as YYYY-MM-DD.
func Today(now time.Time) string {
	return now.Format("2006-01-02")
}
