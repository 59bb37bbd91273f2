package attributes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/visa-protocol/visa-go/pkg/constants"
)

// Attribute errors.
var (
	// ErrNotReadable reports a get on an attribute without read access.
	ErrNotReadable = errors.New("attribute is not readable")

	// ErrNotWritable reports a set on an attribute without write access.
	ErrNotWritable = errors.New("attribute is not writable")

	// ErrInvalidValue reports a value that cannot be decoded, encoded, or
	// that fails validation. Messages produced by typed attributes embed
	// this sentinel, so errors.Is works on the wrapped errors.
	ErrInvalidValue = errors.New("invalid value")
)

// RawHost is the primitive get/set surface an attribute delegates to.
// It is the only contract the descriptor layer requires of a resource;
// session handling and transport live behind it and are opaque here.
//
// Errors returned by a host pass through the descriptor layer unchanged.
type RawHost interface {
	// GetRaw returns the raw value stored for the attribute id.
	GetRaw(id constants.AttributeID) (any, error)

	// SetRaw stores the raw value for the attribute id.
	SetRaw(id constants.AttributeID, value any) error
}

// ResourceDescriptor statically classifies a resource by interface type
// and resource class (e.g. ASRL + "INSTR"). The zero value describes an
// unclassified resource. It is usable before any session exists.
type ResourceDescriptor struct {
	InterfaceType constants.InterfaceType
	ResourceClass string
}

// String returns the classification in resource-string style.
func (rd ResourceDescriptor) String() string {
	if rd.InterfaceType == constants.InterfaceUnknown && rd.ResourceClass == "" {
		return "UNCLASSIFIED"
	}
	return fmt.Sprintf("%s::%s", rd.InterfaceType, rd.ResourceClass)
}

// Access flags for attributes.
type Access uint8

const (
	// AccessRead allows reading the attribute.
	AccessRead Access = 1 << iota

	// AccessWrite allows writing the attribute.
	AccessWrite

	// AccessReadWrite allows both.
	AccessReadWrite = AccessRead | AccessWrite
)

// CanRead returns true if reading is allowed.
func (a Access) CanRead() bool { return a&AccessRead != 0 }

// CanWrite returns true if writing is allowed.
func (a Access) CanWrite() bool { return a&AccessWrite != 0 }

// String returns the access flags as a string.
func (a Access) String() string {
	var s string
	if a.CanRead() {
		s += "R"
	}
	if a.CanWrite() {
		s += "W"
	}
	if s == "" {
		return "-"
	}
	return s
}

// Attribute is the generic descriptor: a named attribute id with access
// flags and a static applicability list. It mediates between a caller and
// a RawHost without owning any value state, so a single descriptor is
// safely shared by any number of resources.
//
// Typed descriptors embed Attribute and narrow Get/Set with a decode and
// an encode+validate step.
type Attribute struct {
	// ID is the attribute identifier passed to the host primitives.
	ID constants.AttributeID

	// Name is the VISA attribute name, used in error messages.
	Name string

	// Access defines the allowed operations.
	Access Access

	// Resources lists the resource classifications this attribute applies
	// to. Empty means the attribute applies to every resource. An entry
	// with an empty ResourceClass matches its whole interface type.
	Resources []ResourceDescriptor
}

// AttrID returns the attribute id.
func (a *Attribute) AttrID() constants.AttributeID { return a.ID }

// AttrName returns the VISA attribute name.
func (a *Attribute) AttrName() string { return a.Name }

// AttrAccess returns the access flags.
func (a *Attribute) AttrAccess() Access { return a.Access }

// InResource reports whether the attribute is meaningful for a resource
// with the given classification. It is a pure function of the static
// applicability list and needs no host instance.
func (a *Attribute) InResource(rd ResourceDescriptor) bool {
	if len(a.Resources) == 0 {
		return true
	}
	for _, r := range a.Resources {
		if r.InterfaceType != rd.InterfaceType {
			continue
		}
		if r.ResourceClass == "" || r.ResourceClass == rd.ResourceClass {
			return true
		}
	}
	return false
}

// Get reads the raw value from the host. Fails with ErrNotReadable before
// touching the host when read access is missing; host errors propagate
// unchanged.
func (a *Attribute) Get(host RawHost) (any, error) {
	if !a.Access.CanRead() {
		return nil, fmt.Errorf("%w: %s", ErrNotReadable, a.Name)
	}
	return host.GetRaw(a.ID)
}

// Set writes the raw value to the host. Fails with ErrNotWritable before
// touching the host when write access is missing; host errors propagate
// unchanged.
func (a *Attribute) Set(host RawHost, value any) error {
	if !a.Access.CanWrite() {
		return fmt.Errorf("%w: %s", ErrNotWritable, a.Name)
	}
	return host.SetRaw(a.ID, value)
}

// toInt64 converts any raw integer representation to int64.
// Hosts are free to store any Go integer width.
func toInt64(raw any) (int64, bool) {
	switch n := raw.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	default:
		return 0, false
	}
}

// coerceInt converts a raw value to int64, additionally accepting textual
// raws the way hosts backed by string registers store them.
func coerceInt(raw any, name string) (int64, error) {
	if n, ok := toInt64(raw); ok {
		return n, nil
	}
	if s, ok := raw.(string); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err == nil {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%v is an %w for attribute %s, expected an integer", raw, ErrInvalidValue, name)
}
