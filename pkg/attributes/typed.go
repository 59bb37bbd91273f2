package attributes

import (
	"fmt"
	"unicode/utf8"

	"github.com/visa-protocol/visa-go/pkg/constants"
)

// BooleanAttribute exposes a raw sentinel-encoded flag as a bool.
// The domain is closed over two values, so no validation is needed.
type BooleanAttribute struct {
	Attribute
}

// Get decodes the raw sentinel: constants.True means true, anything else
// means false.
func (a *BooleanAttribute) Get(host RawHost) (bool, error) {
	raw, err := a.Attribute.Get(host)
	if err != nil {
		return false, err
	}
	n, ok := toInt64(raw)
	return ok && n == int64(constants.True), nil
}

// Set stores the true/false sentinel for the value.
func (a *BooleanAttribute) Set(host RawHost, value bool) error {
	raw := constants.False
	if value {
		raw = constants.True
	}
	return a.Attribute.Set(host, raw)
}

// CharAttribute exposes a raw numeric code point as a single character.
type CharAttribute struct {
	Attribute
}

// Get decodes the raw code point. Fails with ErrInvalidValue when the raw
// value is not a valid Unicode code point.
func (a *CharAttribute) Get(host RawHost) (rune, error) {
	raw, err := a.Attribute.Get(host)
	if err != nil {
		return 0, err
	}
	n, ok := toInt64(raw)
	if !ok || n < 0 || n > utf8.MaxRune || !utf8.ValidRune(rune(n)) {
		return 0, fmt.Errorf("%v is an %w for attribute %s, expected a code point", raw, ErrInvalidValue, a.Name)
	}
	return rune(n), nil
}

// Set stores the character's code point.
func (a *CharAttribute) Set(host RawHost, value rune) error {
	if !utf8.ValidRune(value) {
		return fmt.Errorf("%q is an %w for attribute %s, expected a code point", value, ErrInvalidValue, a.Name)
	}
	return a.Attribute.Set(host, int64(value))
}

// IntAttribute exposes a raw value as an integer. The raw side may be any
// integer width or a textual representation; no range restriction applies
// at this level.
type IntAttribute struct {
	Attribute
}

// Get decodes the raw value using standard integer parsing.
func (a *IntAttribute) Get(host RawHost) (int64, error) {
	raw, err := a.Attribute.Get(host)
	if err != nil {
		return 0, err
	}
	return coerceInt(raw, a.Name)
}

// Set passes the integer through to the host unchanged.
func (a *IntAttribute) Set(host RawHost, value int64) error {
	return a.Attribute.Set(host, value)
}
