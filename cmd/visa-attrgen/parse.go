package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Table is the YAML attribute table driving generation.
type Table struct {
	Attributes []RawAttribute `yaml:"attributes"`
}

// RawAttribute is one attribute row in the table.
type RawAttribute struct {
	// Name is the VISA attribute name, e.g. "VI_ATTR_ASRL_BAUD".
	Name string `yaml:"name"`

	// ID is the attribute id in hex, e.g. "0x3FFF0021".
	ID string `yaml:"id"`

	// Type selects the descriptor variant:
	// plain, bool, char, int, enum, range, values.
	Type string `yaml:"type"`

	// Access is "r", "w", or "rw".
	Access string `yaml:"access"`

	// Interface restricts applicability to one interface type (optional).
	Interface string `yaml:"interface,omitempty"`

	// ResourceClass restricts applicability to one class (optional,
	// only meaningful together with Interface).
	ResourceClass string `yaml:"resource_class,omitempty"`

	// Min and Max bound range attributes.
	Min *int64 `yaml:"min,omitempty"`
	Max *int64 `yaml:"max,omitempty"`

	// Values is the allow-list for range and values attributes.
	Values []int64 `yaml:"values,omitempty"`

	// EnumType is the Go member type for enum attributes, e.g.
	// "constants.Parity".
	EnumType string `yaml:"enum_type,omitempty"`

	// Members are Go expressions for the enum members, e.g.
	// "constants.ParityNone".
	Members []string `yaml:"members,omitempty"`
}

// ParseTable parses an attribute table from YAML bytes and validates it.
func ParseTable(data []byte) (*Table, error) {
	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parsing attribute table: %w", err)
	}
	for i := range table.Attributes {
		if err := table.Attributes[i].validate(); err != nil {
			return nil, fmt.Errorf("attribute %d: %w", i, err)
		}
	}
	return &table, nil
}

// LoadTable loads and parses an attribute table from a file.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseTable(data)
}

func (a *RawAttribute) validate() error {
	if a.Name == "" {
		return fmt.Errorf("missing name")
	}
	if !strings.HasPrefix(a.Name, "VI_ATTR_") {
		return fmt.Errorf("%s: name must start with VI_ATTR_", a.Name)
	}
	if !strings.HasPrefix(strings.ToLower(a.ID), "0x") {
		return fmt.Errorf("%s: id must be hex, got %q", a.Name, a.ID)
	}

	switch a.Access {
	case "r", "w", "rw":
	default:
		return fmt.Errorf("%s: access must be r, w, or rw, got %q", a.Name, a.Access)
	}

	switch a.Type {
	case "plain", "bool", "char", "int":
	case "range":
		if a.Min == nil || a.Max == nil {
			return fmt.Errorf("%s: range attributes need min and max", a.Name)
		}
	case "values":
		if len(a.Values) == 0 {
			return fmt.Errorf("%s: values attributes need a non-empty allow-list", a.Name)
		}
	case "enum":
		if a.EnumType == "" || len(a.Members) == 0 {
			return fmt.Errorf("%s: enum attributes need enum_type and members", a.Name)
		}
	default:
		return fmt.Errorf("%s: unknown type %q", a.Name, a.Type)
	}

	if a.ResourceClass != "" && a.Interface == "" {
		return fmt.Errorf("%s: resource_class needs an interface", a.Name)
	}
	return nil
}
