// Package pairs computes and caches the movies shared by two actors.
package pairs

import (
	"errors"
	"fmt"
)

// ErrInvalidID is returned when a pair key cannot be derived.
var ErrInvalidID = errors.New("invalid actor id")

// Key identifies an unordered actor pair: "{min}_{max}".
type Key string

// DeriveKey returns the order-independent key for two actor ids.
func DeriveKey(a, b int64) (Key, error) {
	if a <= 0 || b <= 0 {
		return "", fmt.Errorf("%w: %d, %d", ErrInvalidID, a, b)
	}
	if a > b {
		a, b = b, a
	}
	return Key(fmt.Sprintf("%d_%d", a, b)), nil
}
