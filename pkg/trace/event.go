package trace

import (
	"time"

	"github.com/visa-protocol/visa-go/pkg/constants"
)

// Event records a single raw attribute access on a host resource.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the access happened (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the host resource session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Operation is the raw primitive that was invoked.
	Operation Operation `cbor:"3,keyasint"`

	// AttributeID is the accessed attribute id.
	AttributeID constants.AttributeID `cbor:"4,keyasint"`

	// AttributeName is the VISA name, when the id is registered.
	AttributeName string `cbor:"5,keyasint,omitempty"`

	// Value is the raw value read or written. Unset for failed gets.
	Value any `cbor:"6,keyasint,omitempty"`

	// Error is the host error text, when the access failed.
	Error string `cbor:"7,keyasint,omitempty"`
}

// Operation identifies a raw access primitive.
type Operation uint8

const (
	// OpGet is a raw attribute read.
	OpGet Operation = 0

	// OpSet is a raw attribute write.
	OpSet Operation = 1
)

// String returns the operation name.
func (o Operation) String() string {
	switch o {
	case OpGet:
		return "GET"
	case OpSet:
		return "SET"
	default:
		return "UNKNOWN"
	}
}
