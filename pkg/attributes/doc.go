// Package attributes implements the typed VISA attribute descriptor layer.
//
// # Descriptors
//
// A descriptor binds a numeric attribute id to access flags, a static
// applicability list, and a typed decode/encode discipline. Descriptors
// own no value state: every Get/Set delegates to the two primitives of a
// RawHost, which keeps the raw (vendor-opaque) storage. A descriptor is
// therefore an immutable, process-wide constant shared by all resources.
//
//	caller ── Get/Set ──> descriptor ── GetRaw/SetRaw ──> host
//	                        │
//	                        ├─ access check (read/write flags)
//	                        └─ decode / encode+validate
//
// # Typed variants
//
//	Attribute        raw passthrough (base mediator)
//	BooleanAttribute sentinel <-> bool
//	CharAttribute    code point <-> rune
//	EnumAttribute    numeric <-> closed enumeration member
//	IntAttribute     numeric or text raw <-> int64
//	RangeAttribute   int64 restricted to [Min, Max] (+ allow-list)
//	ValuesAttribute  int64 restricted to an allow-list
//
// # Errors
//
// Access violations fail with ErrNotReadable/ErrNotWritable before the
// host is touched. Decode, encode, and validation failures wrap
// ErrInvalidValue. Errors raised by the host primitives pass through
// unchanged; this layer never translates, retries, or swallows them.
//
// # Registry
//
// Known descriptors register themselves by id at init time. The registry
// backs name/id lookup and the static InResource applicability check,
// both usable before any instrument session exists.
package attributes
