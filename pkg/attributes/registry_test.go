package attributes

import (
	"testing"

	"github.com/visa-protocol/visa-go/pkg/constants"
)

func TestRegistryLookup(t *testing.T) {
	d, ok := Lookup(constants.AttrIDAsrlBaud)
	if !ok {
		t.Fatal("expected VI_ATTR_ASRL_BAUD to be registered")
	}
	if d != Descriptor(AttrAsrlBaud) {
		t.Errorf("expected the canonical baud descriptor, got %v", d)
	}

	if _, ok := Lookup(0xDEADBEEF); ok {
		t.Error("expected no descriptor for an unknown id")
	}
}

func TestRegistryLookupName(t *testing.T) {
	d, ok := LookupName("VI_ATTR_TMO_VALUE")
	if !ok {
		t.Fatal("expected VI_ATTR_TMO_VALUE to be registered")
	}
	if d.AttrID() != constants.AttrIDTmoValue {
		t.Errorf("expected id %s, got %s", constants.AttrIDTmoValue, d.AttrID())
	}

	if _, ok := LookupName("VI_ATTR_NO_SUCH"); ok {
		t.Error("expected no descriptor for an unknown name")
	}
}

func TestRegistryAllSorted(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("expected registered descriptors")
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].AttrID() >= all[i].AttrID() {
			t.Fatalf("descriptors not sorted by id: %s before %s", all[i-1].AttrID(), all[i].AttrID())
		}
	}
}

func TestRegistryForResource(t *testing.T) {
	serial := ResourceDescriptor{InterfaceType: constants.InterfaceASRL, ResourceClass: "INSTR"}
	unclassified := ResourceDescriptor{}

	contains := func(ds []Descriptor, want Descriptor) bool {
		for _, d := range ds {
			if d == want {
				return true
			}
		}
		return false
	}

	forSerial := ForResource(serial)
	if !contains(forSerial, AttrAsrlBaud) {
		t.Error("expected baud rate for a serial resource")
	}
	if !contains(forSerial, AttrIntfInstName) {
		t.Error("expected unrestricted attributes for a serial resource")
	}

	forUnclassified := ForResource(unclassified)
	if contains(forUnclassified, AttrAsrlBaud) {
		t.Error("did not expect baud rate for an unclassified resource")
	}
	if !contains(forUnclassified, AttrIntfInstName) {
		t.Error("expected unrestricted attributes for an unclassified resource")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on conflicting re-registration")
		}
	}()

	dup := &Attribute{ID: constants.AttrIDAsrlBaud, Name: "VI_ATTR_DUP", Access: AccessRead}
	Register(dup)
}

func TestRegisterIdempotent(t *testing.T) {
	// Re-registering the same descriptor is allowed.
	Register(AttrAsrlBaud)
}
