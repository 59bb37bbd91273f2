package attributes

import (
	"fmt"
)

// RangeAttribute exposes an integer attribute restricted to [Min, Max],
// optionally extended by an explicit allow-list of discrete values
// outside the interval (e.g. an infinite-timeout sentinel).
//
// Get performs no decoding: the raw value is returned as stored, range
// validation having already been applied at set time.
type RangeAttribute struct {
	Attribute

	// Min is the smallest admissible value.
	Min int64

	// Max is the largest admissible value.
	Max int64

	// Values is an extra allow-list of admissible values outside
	// [Min, Max]. Order is preserved in error messages.
	Values []int64
}

// Set validates the value against the range and allow-list before
// storing it unchanged.
//
// The error wording is a compatibility contract: without an allow-list
// the message names only the range and never contains " or "; with an
// allow-list the alternatives are joined with " or ".
func (a *RangeAttribute) Set(host RawHost, value int64) error {
	if value >= a.Min && value <= a.Max {
		return a.Attribute.Set(host, value)
	}
	for _, allowed := range a.Values {
		if value == allowed {
			return a.Attribute.Set(host, value)
		}
	}
	if len(a.Values) == 0 {
		return fmt.Errorf("%d is an %w for attribute %s, should be between %d and %d",
			value, ErrInvalidValue, a.Name, a.Min, a.Max)
	}
	return fmt.Errorf("%d is an %w for attribute %s, should be between %d and %d or one of %v",
		value, ErrInvalidValue, a.Name, a.Min, a.Max, a.Values)
}

// ValuesAttribute exposes an attribute restricted to a finite allow-list
// of admissible raw values. Get returns the raw value as stored.
type ValuesAttribute struct {
	Attribute

	// Values is the closed set of admissible values. Order is preserved
	// in error messages.
	Values []int64
}

// Set validates membership before storing the value unchanged.
func (a *ValuesAttribute) Set(host RawHost, value int64) error {
	for _, allowed := range a.Values {
		if value == allowed {
			return a.Attribute.Set(host, value)
		}
	}
	return fmt.Errorf("%d is an %w for attribute %s, should be one of %v",
		value, ErrInvalidValue, a.Name, a.Values)
}
