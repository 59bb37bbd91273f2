package attributes

import (
	"fmt"
)

// EnumMember constrains the value types usable with EnumAttribute:
// any named integer type whose constants form a closed enumeration.
type EnumMember interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// EnumAttribute exposes a raw numeric value as a member of a closed
// enumeration. The raw value stored in the host is always the member's
// numeric representation.
type EnumAttribute[E EnumMember] struct {
	Attribute

	// Members is the closed set of admissible enumeration members.
	Members []E
}

// Get decodes the raw value into the matching enumeration member. Fails
// with ErrInvalidValue when no member matches.
func (a *EnumAttribute[E]) Get(host RawHost) (E, error) {
	var zero E
	raw, err := a.Attribute.Get(host)
	if err != nil {
		return zero, err
	}
	n, ok := toInt64(raw)
	if !ok {
		return zero, fmt.Errorf("%v is an %w for attribute %s, should be one of %v", raw, ErrInvalidValue, a.Name, a.Members)
	}
	for _, m := range a.Members {
		if int64(m) == n {
			return m, nil
		}
	}
	return zero, fmt.Errorf("%v is an %w for attribute %s, should be one of %v", raw, ErrInvalidValue, a.Name, a.Members)
}

// Set validates membership and stores the member's numeric value.
func (a *EnumAttribute[E]) Set(host RawHost, value E) error {
	for _, m := range a.Members {
		if m == value {
			return a.Attribute.Set(host, int64(value))
		}
	}
	return fmt.Errorf("%v is an %w for attribute %s, should be one of %v", value, ErrInvalidValue, a.Name, a.Members)
}
