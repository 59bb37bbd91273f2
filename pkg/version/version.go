// Package version provides parsing, comparison, and encoding of VISA
// specification versions.
//
// VISA reports versions through VI_ATTR_RSRC_SPEC_VERSION and
// VI_ATTR_RSRC_IMPL_VERSION as packed 32-bit words: bits 31-20 hold the
// major version, bits 19-8 the minor version, and bits 7-0 the
// sub-minor version.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Current is the VISA specification version implemented by this library.
const Current = "5.8"

// SpecVersion represents a parsed VISA version.
type SpecVersion struct {
	Major    uint16
	Minor    uint16
	SubMinor uint8
}

// Parse parses a "major.minor" or "major.minor.subminor" version string.
func Parse(s string) (SpecVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 && len(parts) != 3 {
		return SpecVersion{}, fmt.Errorf("invalid version %q: expected major.minor[.subminor]", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 12)
	if err != nil || parts[0] == "" {
		return SpecVersion{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 12)
	if err != nil || parts[1] == "" {
		return SpecVersion{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	v := SpecVersion{Major: uint16(major), Minor: uint16(minor)}
	if len(parts) == 3 {
		sub, err := strconv.ParseUint(parts[2], 10, 8)
		if err != nil || parts[2] == "" {
			return SpecVersion{}, fmt.Errorf("invalid version %q: bad subminor component", s)
		}
		v.SubMinor = uint8(sub)
	}
	return v, nil
}

// String returns the version as "major.minor" or "major.minor.subminor".
func (v SpecVersion) String() string {
	if v.SubMinor == 0 {
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.SubMinor)
}

// Compatible returns true if the other version has the same major version.
func (v SpecVersion) Compatible(other SpecVersion) bool {
	return v.Major == other.Major
}

// Word returns the version packed into the ViVersion wire format.
func (v SpecVersion) Word() uint32 {
	return uint32(v.Major&0xFFF)<<20 | uint32(v.Minor&0xFFF)<<8 | uint32(v.SubMinor)
}

// FromWord unpacks a ViVersion word.
func FromWord(w uint32) SpecVersion {
	return SpecVersion{
		Major:    uint16(w >> 20 & 0xFFF),
		Minor:    uint16(w >> 8 & 0xFFF),
		SubMinor: uint8(w & 0xFF),
	}
}

// CurrentWord returns the ViVersion word for Current.
func CurrentWord() uint32 {
	v, _ := Parse(Current)
	return v.Word()
}
