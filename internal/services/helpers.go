package services

import (
	"fmt"
	"strings"

	"vivuconnect/pkg/utils"
)

const maxIDLength = 200

func dbError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, utils.ErrDatabaseError, err)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", utils.ErrInvalidInput, fmt.Sprintf(format, args...))
}

// requireID rejects empty, padded or oversized identifiers. Ids feed the
// deterministic record keys, so they are never rewritten.
func requireID(name, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", invalid("%s is required", name)
	}
	if strings.TrimSpace(value) != value {
		return "", invalid("%s must not have surrounding whitespace", name)
	}
	if len(value) > maxIDLength {
		return "", invalid("%s is too long", name)
	}
	return value, nil
}

// normalizeRegion treats a blank region as no filter.
func normalizeRegion(region *string) *string {
	if region == nil {
		return nil
	}
	r := strings.TrimSpace(*region)
	if r == "" {
		return nil
	}
	return &r
}

func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
