package main

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/visa-protocol/visa-go/pkg/attributes"
	"github.com/visa-protocol/visa-go/pkg/constants"
	"github.com/visa-protocol/visa-go/pkg/version"
)

// getTyped reads through the descriptor's typed Get so decode rules apply.
func getTyped(d attributes.Descriptor, host attributes.RawHost) (any, error) {
	switch a := d.(type) {
	case *attributes.BooleanAttribute:
		return a.Get(host)
	case *attributes.CharAttribute:
		c, err := a.Get(host)
		if err != nil {
			return nil, err
		}
		return fmt.Sprintf("%q (%d)", c, c), nil
	case *attributes.IntAttribute:
		v, err := a.Get(host)
		if err != nil {
			return nil, err
		}
		switch a.ID {
		case constants.AttrIDRsrcSpecVersion, constants.AttrIDRsrcImplVersion:
			return fmt.Sprintf("%s (0x%08X)", version.FromWord(uint32(v)), v), nil
		}
		return v, nil
	case *attributes.EnumAttribute[constants.InterfaceType]:
		return a.Get(host)
	case *attributes.EnumAttribute[constants.Parity]:
		return a.Get(host)
	case *attributes.EnumAttribute[constants.StopBits]:
		return a.Get(host)
	case *attributes.RangeAttribute:
		return a.Get(host)
	case *attributes.ValuesAttribute:
		return a.Get(host)
	case *attributes.Attribute:
		return a.Get(host)
	default:
		return nil, fmt.Errorf("no typed accessor for %s", d.AttrName())
	}
}

// setTyped parses the textual value for the descriptor's domain and
// writes through the typed Set so encode/validation rules apply.
func setTyped(d attributes.Descriptor, host attributes.RawHost, value string) error {
	switch a := d.(type) {
	case *attributes.BooleanAttribute:
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		return a.Set(host, b)
	case *attributes.CharAttribute:
		c, err := parseChar(value)
		if err != nil {
			return err
		}
		return a.Set(host, c)
	case *attributes.IntAttribute:
		n, err := strconv.ParseInt(value, 0, 64)
		if err != nil {
			return err
		}
		return a.Set(host, n)
	case *attributes.EnumAttribute[constants.InterfaceType]:
		n, err := strconv.ParseInt(value, 0, 64)
		if err != nil {
			return err
		}
		return a.Set(host, constants.InterfaceType(n))
	case *attributes.EnumAttribute[constants.Parity]:
		n, err := strconv.ParseInt(value, 0, 64)
		if err != nil {
			return err
		}
		return a.Set(host, constants.Parity(n))
	case *attributes.EnumAttribute[constants.StopBits]:
		n, err := strconv.ParseInt(value, 0, 64)
		if err != nil {
			return err
		}
		return a.Set(host, constants.StopBits(n))
	case *attributes.RangeAttribute:
		n, err := strconv.ParseInt(value, 0, 64)
		if err != nil {
			return err
		}
		return a.Set(host, n)
	case *attributes.ValuesAttribute:
		n, err := strconv.ParseInt(value, 0, 64)
		if err != nil {
			return err
		}
		return a.Set(host, n)
	case *attributes.Attribute:
		return a.Set(host, value)
	default:
		return fmt.Errorf("no typed accessor for %s", d.AttrName())
	}
}

func parseBool(s string) (bool, error) {
	switch s {
	case "true", "on", "1":
		return true, nil
	case "false", "off", "0":
		return false, nil
	default:
		return false, fmt.Errorf("expected true/false, got %q", s)
	}
}

// parseChar accepts a single character or a numeric code point.
func parseChar(s string) (rune, error) {
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return r, nil
	}
	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("expected a character or code point, got %q", s)
	}
	return rune(n), nil
}
