package attributes

import (
	"fmt"
	"sort"
	"sync"

	"github.com/visa-protocol/visa-go/pkg/constants"
)

// Descriptor is the registry view of an attribute: identity plus the
// static applicability check. Every typed attribute implements it via
// the embedded Attribute base.
type Descriptor interface {
	// AttrID returns the attribute id.
	AttrID() constants.AttributeID

	// AttrName returns the VISA attribute name.
	AttrName() string

	// AttrAccess returns the access flags.
	AttrAccess() Access

	// InResource reports static applicability for a resource classification.
	InResource(rd ResourceDescriptor) bool
}

var (
	registryMu sync.RWMutex
	registry   = make(map[constants.AttributeID]Descriptor)
)

// Register adds a descriptor to the global id registry. Descriptors are
// registered once at init time; a conflicting re-registration panics.
func Register(d Descriptor) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if existing, ok := registry[d.AttrID()]; ok && existing != d {
		panic(fmt.Sprintf("attributes: duplicate registration for %s (%s)", d.AttrID(), d.AttrName()))
	}
	registry[d.AttrID()] = d
}

// Lookup returns the descriptor registered for the id.
func Lookup(id constants.AttributeID) (Descriptor, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	d, ok := registry[id]
	return d, ok
}

// LookupName returns the descriptor registered under the VISA name.
func LookupName(name string) (Descriptor, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, d := range registry {
		if d.AttrName() == name {
			return d, true
		}
	}
	return nil, false
}

// All returns every registered descriptor, sorted by id.
func All() []Descriptor {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]Descriptor, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AttrID() < out[j].AttrID() })
	return out
}

// ForResource returns the registered descriptors applicable to the given
// resource classification, sorted by id.
func ForResource(rd ResourceDescriptor) []Descriptor {
	var out []Descriptor
	for _, d := range All() {
		if d.InResource(rd) {
			out = append(out, d)
		}
	}
	return out
}
