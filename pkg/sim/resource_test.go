package sim

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visa-protocol/visa-go/pkg/attributes"
	"github.com/visa-protocol/visa-go/pkg/constants"
	"github.com/visa-protocol/visa-go/pkg/trace"
	"github.com/visa-protocol/visa-go/pkg/version"
)

// captureLogger records trace events for assertions.
type captureLogger struct {
	mu     sync.Mutex
	events []trace.Event
}

func (c *captureLogger) Log(event trace.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func (c *captureLogger) all() []trace.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]trace.Event(nil), c.events...)
}

func newSerialResource(t *testing.T) *Resource {
	t.Helper()

	def, err := ParseDefinition([]byte(serialDefinition))
	require.NoError(t, err)
	r, err := NewResource(def)
	require.NoError(t, err)
	return r
}

func TestNewResource(t *testing.T) {
	r := newSerialResource(t)

	assert.NotEmpty(t, r.SessionID())
	assert.Equal(t, attributes.ResourceDescriptor{
		InterfaceType: constants.InterfaceASRL,
		ResourceClass: "INSTR",
	}, r.Descriptor())

	// Identity attributes come from the classification.
	v, err := r.GetRaw(constants.AttrIDRsrcClass)
	require.NoError(t, err)
	assert.Equal(t, "INSTR", v)

	v, err = r.GetRaw(constants.AttrIDIntfType)
	require.NoError(t, err)
	assert.Equal(t, int64(constants.InterfaceASRL), v)

	v, err = r.GetRaw(constants.AttrIDRsrcSpecVersion)
	require.NoError(t, err)
	assert.Equal(t, int64(version.CurrentWord()), v)

	// Session ids are unique per resource.
	other := newSerialResource(t)
	assert.NotEqual(t, r.SessionID(), other.SessionID())
}

func TestNewResourceRejectsInapplicableAttribute(t *testing.T) {
	def := &Definition{
		ResourceClass: "INSTR",
		InterfaceType: "TCPIP",
		Attributes:    []AttributeValue{{Name: "VI_ATTR_ASRL_BAUD", Value: 9600}},
	}
	_, err := NewResource(def)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not apply")
}

func TestNewResourceRejectsUnknownInterface(t *testing.T) {
	def := &Definition{ResourceClass: "INSTR", InterfaceType: "WARP"}
	_, err := NewResource(def)
	assert.Error(t, err)
}

func TestResourceRawAccess(t *testing.T) {
	r := newSerialResource(t)

	v, err := r.GetRaw(constants.AttrIDAsrlBaud)
	require.NoError(t, err)
	assert.Equal(t, int64(9600), v)

	require.NoError(t, r.SetRaw(constants.AttrIDAsrlBaud, int64(115200)))
	v, err = r.GetRaw(constants.AttrIDAsrlBaud)
	require.NoError(t, err)
	assert.Equal(t, int64(115200), v)

	_, err = r.GetRaw(0xDEADBEEF)
	assert.ErrorIs(t, err, ErrUnknownAttribute)
	assert.ErrorIs(t, r.SetRaw(0xDEADBEEF, 1), ErrUnknownAttribute)
}

func TestResourceThroughDescriptors(t *testing.T) {
	r := newSerialResource(t)

	// The typed descriptor layer drives the simulated host end to end.
	require.NoError(t, attributes.AttrAsrlBaud.Set(r, 19200))
	v, err := attributes.AttrAsrlBaud.Get(r)
	require.NoError(t, err)
	assert.Equal(t, int64(19200), v)

	// Validation failures never reach the host.
	err = attributes.AttrAsrlBaud.Set(r, 0)
	assert.ErrorIs(t, err, attributes.ErrInvalidValue)
	v, err = attributes.AttrAsrlBaud.Get(r)
	require.NoError(t, err)
	assert.Equal(t, int64(19200), v)

	// Host errors surface unchanged through the descriptor.
	_, err = attributes.AttrTmoValue.Get(r)
	assert.ErrorIs(t, err, ErrUnknownAttribute)
}

func TestResourceTraceEvents(t *testing.T) {
	r := newSerialResource(t)
	capture := &captureLogger{}
	r.SetTraceLogger(capture)

	require.NoError(t, attributes.AttrAsrlBaud.Set(r, 38400))
	_, err := r.GetRaw(0xDEADBEEF)
	require.Error(t, err)

	events := capture.all()
	require.Len(t, events, 2)

	assert.Equal(t, trace.OpSet, events[0].Operation)
	assert.Equal(t, constants.AttrIDAsrlBaud, events[0].AttributeID)
	assert.Equal(t, "VI_ATTR_ASRL_BAUD", events[0].AttributeName)
	assert.Equal(t, r.SessionID(), events[0].SessionID)
	assert.Empty(t, events[0].Error)

	assert.Equal(t, trace.OpGet, events[1].Operation)
	assert.NotEmpty(t, events[1].Error)

	// Disabling tracing stops emission.
	r.SetTraceLogger(nil)
	_, _ = r.GetRaw(constants.AttrIDAsrlBaud)
	assert.Len(t, capture.all(), 2)
}
