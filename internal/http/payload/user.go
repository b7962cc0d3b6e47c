package payload

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jellydator/validation"
)

var ErrInvalidUserID error = errors.New("invalid user id")

// UserRequest is the body accepted by the create and update endpoints.
// The username is stored as given.
type UserRequest struct {
	Username string `json:"username"`
}

// ParseUserID parses a path id that must be a positive integer.
func ParseUserID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidUserID, raw)
	}

	err = validation.Validate(id,
		validation.Required,
		validation.Min(int64(1)),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidUserID, err)
	}

	return id, nil
}

// UserIDOrZero reads the integer at the start of raw, ignoring leading
// spaces and anything after the digits ("5abc" is 5). When raw does not
// start with a number the result is 0, which no stored user has.
func UserIDOrZero(raw string) int64 {
	s := strings.TrimLeft(raw, " \t\n\r")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	id, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return id
}
