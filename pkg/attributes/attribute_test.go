package attributes

import (
	"errors"
	"testing"

	"github.com/visa-protocol/visa-go/pkg/constants"
)

// errUnsupported is the host-side failure for unknown ids. The descriptor
// layer must hand it to callers untranslated.
var errUnsupported = errors.New("unsupported attribute id")

// fakeHost stores a single raw value under a single id, failing on any
// other id.
type fakeHost struct {
	id    constants.AttributeID
	value any
}

func (h *fakeHost) GetRaw(id constants.AttributeID) (any, error) {
	if id != h.id {
		return nil, errUnsupported
	}
	return h.value, nil
}

func (h *fakeHost) SetRaw(id constants.AttributeID, value any) error {
	if id != h.id {
		return errUnsupported
	}
	h.value = value
	return nil
}

func TestAttributeGetSet(t *testing.T) {
	attr := &Attribute{ID: 0x42, Name: "VI_ATTR_TEST", Access: AccessReadWrite}
	host := &fakeHost{id: 0x42, value: 1}

	v, err := attr.Get(host)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if v != 1 {
		t.Errorf("expected 1, got %v", v)
	}

	if err := attr.Set(host, 2); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if host.value != 2 {
		t.Errorf("expected stored 2, got %v", host.value)
	}
}

func TestAttributeHostErrorPassthrough(t *testing.T) {
	// The descriptor uses the id it was declared with; a host that does
	// not support it fails, and the host error must come back unchanged.
	attr := &Attribute{ID: 0x42, Name: "VI_ATTR_TEST", Access: AccessReadWrite}
	host := &fakeHost{id: 0x99, value: 1}

	_, err := attr.Get(host)
	if !errors.Is(err, errUnsupported) {
		t.Errorf("expected host error unchanged, got %v", err)
	}

	err = attr.Set(host, 2)
	if !errors.Is(err, errUnsupported) {
		t.Errorf("expected host error unchanged, got %v", err)
	}
}

func TestAttributeNotReadable(t *testing.T) {
	attr := &Attribute{ID: 0x42, Name: "VI_ATTR_TEST", Access: AccessWrite}
	host := &fakeHost{id: 0x42, value: 1}

	_, err := attr.Get(host)
	if !errors.Is(err, ErrNotReadable) {
		t.Errorf("expected ErrNotReadable, got %v", err)
	}

	// The capability check fires before the host is touched.
	_, err = attr.Get(&fakeHost{id: 0x99})
	if !errors.Is(err, ErrNotReadable) {
		t.Errorf("expected ErrNotReadable regardless of host state, got %v", err)
	}
}

func TestAttributeNotWritable(t *testing.T) {
	attr := &Attribute{ID: 0x42, Name: "VI_ATTR_TEST", Access: AccessRead}
	host := &fakeHost{id: 0x42, value: 1}

	err := attr.Set(host, 2)
	if !errors.Is(err, ErrNotWritable) {
		t.Errorf("expected ErrNotWritable, got %v", err)
	}
	if host.value != 1 {
		t.Errorf("host value changed despite capability error: %v", host.value)
	}
}

func TestInResource(t *testing.T) {
	t.Run("UnrestrictedAppliesEverywhere", func(t *testing.T) {
		if !AttrIntfInstName.InResource(ResourceDescriptor{}) {
			t.Error("expected unrestricted attribute to apply to an unclassified resource")
		}
		if !AttrIntfInstName.InResource(ResourceDescriptor{InterfaceType: constants.InterfaceTCPIP, ResourceClass: "INSTR"}) {
			t.Error("expected unrestricted attribute to apply to TCPIP::INSTR")
		}
	})

	t.Run("SerialOnly", func(t *testing.T) {
		if !AttrAsrlBaud.InResource(ResourceDescriptor{InterfaceType: constants.InterfaceASRL, ResourceClass: "INSTR"}) {
			t.Error("expected baud rate to apply to ASRL::INSTR")
		}
		if AttrAsrlBaud.InResource(ResourceDescriptor{}) {
			t.Error("expected baud rate not to apply to an unclassified resource")
		}
		if AttrAsrlBaud.InResource(ResourceDescriptor{InterfaceType: constants.InterfaceTCPIP, ResourceClass: "INSTR"}) {
			t.Error("expected baud rate not to apply to TCPIP::INSTR")
		}
	})

	t.Run("InterfaceWideEntry", func(t *testing.T) {
		attr := &Attribute{
			ID:        0x42,
			Name:      "VI_ATTR_TEST",
			Access:    AccessRead,
			Resources: []ResourceDescriptor{{InterfaceType: constants.InterfaceASRL}},
		}
		if !attr.InResource(ResourceDescriptor{InterfaceType: constants.InterfaceASRL, ResourceClass: "INSTR"}) {
			t.Error("expected an interface-wide entry to match any resource class")
		}
		if attr.InResource(ResourceDescriptor{InterfaceType: constants.InterfaceGPIB, ResourceClass: "INSTR"}) {
			t.Error("expected no match for a different interface type")
		}
	})
}

func TestAccessString(t *testing.T) {
	tests := []struct {
		access Access
		want   string
	}{
		{AccessRead, "R"},
		{AccessWrite, "W"},
		{AccessReadWrite, "RW"},
		{0, "-"},
	}
	for _, tt := range tests {
		if got := tt.access.String(); got != tt.want {
			t.Errorf("Access(%d).String() = %q, want %q", tt.access, got, tt.want)
		}
	}
}
