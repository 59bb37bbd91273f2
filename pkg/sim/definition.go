package sim

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/visa-protocol/visa-go/pkg/attributes"
	"github.com/visa-protocol/visa-go/pkg/constants"
)

// Definition describes a simulated resource loaded from YAML.
type Definition struct {
	// ResourceClass is the VISA resource class, e.g. "INSTR".
	ResourceClass string `yaml:"resource_class"`

	// InterfaceType is the interface name, e.g. "ASRL" or "TCPIP".
	// Empty means the resource is unclassified.
	InterfaceType string `yaml:"interface_type"`

	// Attributes are the initial raw attribute values.
	Attributes []AttributeValue `yaml:"attributes"`
}

// AttributeValue is one initial attribute value in a definition.
// The attribute is referenced either by VISA name or by hex id.
type AttributeValue struct {
	// Name is the VISA attribute name, e.g. "VI_ATTR_ASRL_BAUD".
	Name string `yaml:"name,omitempty"`

	// ID is the attribute id in hex, e.g. "0x3FFF0021". Used when the
	// attribute is vendor-specific and not in the registry.
	ID string `yaml:"id,omitempty"`

	// Value is the raw value as stored by the host.
	Value any `yaml:"value"`
}

// ParseDefinition parses a resource definition from YAML bytes.
func ParseDefinition(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing resource definition: %w", err)
	}
	return &def, nil
}

// LoadDefinition loads and parses a resource definition from a file.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseDefinition(data)
}

// descriptor returns the resource classification the definition declares.
func (d *Definition) descriptor() (attributes.ResourceDescriptor, error) {
	rd := attributes.ResourceDescriptor{ResourceClass: d.ResourceClass}
	if d.InterfaceType != "" {
		it, err := constants.ParseInterfaceType(d.InterfaceType)
		if err != nil {
			return attributes.ResourceDescriptor{}, err
		}
		rd.InterfaceType = it
	}
	return rd, nil
}

// resolve returns the attribute id an AttributeValue refers to, looking
// registered names up in the registry and parsing hex ids directly.
func (av AttributeValue) resolve() (constants.AttributeID, error) {
	switch {
	case av.Name != "":
		d, ok := attributes.LookupName(av.Name)
		if !ok {
			return 0, fmt.Errorf("unknown attribute name %q", av.Name)
		}
		return d.AttrID(), nil
	case av.ID != "":
		s := strings.TrimPrefix(strings.ToLower(av.ID), "0x")
		n, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid attribute id %q: %w", av.ID, err)
		}
		return constants.AttributeID(n), nil
	default:
		return 0, fmt.Errorf("attribute value needs a name or an id")
	}
}

// normalizeRaw widens YAML integers to int64 so stored raws have a
// uniform representation regardless of how the value was written.
func normalizeRaw(v any) any {
	switch n := v.(type) {
	case int:
		return int64(n)
	case uint:
		return int64(n)
	case uint64:
		return int64(n)
	default:
		return v
	}
}
