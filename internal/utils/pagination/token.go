package pagination

import (
	"encoding/base64"
	"fmt"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeToken creates a base64 encoded pagination token from a creation timestamp.
// Listings ordered by created_at DESC resume strictly before the encoded instant.
func EncodeToken(createdAt time.Time) string {
	return base64.StdEncoding.EncodeToString([]byte(createdAt.Format(timeFormat)))
}

// DecodeToken parses a base64 encoded pagination token back into a creation timestamp.
func DecodeToken(token string) (time.Time, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	createdAt, err := time.Parse(timeFormat, string(decodedBytes))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return createdAt, nil
}
