package sim

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/visa-protocol/visa-go/pkg/attributes"
	"github.com/visa-protocol/visa-go/pkg/constants"
	"github.com/visa-protocol/visa-go/pkg/trace"
	"github.com/visa-protocol/visa-go/pkg/version"
)

// Resource errors.
var (
	// ErrUnknownAttribute reports an access to an id the resource does not
	// store. The descriptor layer hands it to callers unchanged.
	ErrUnknownAttribute = errors.New("unknown attribute id")
)

// Resource is a simulated instrument resource: an in-memory raw attribute
// store behind the RawHost primitives, with a static classification and a
// UUID session id. It serializes its own access and is safe for
// concurrent use.
type Resource struct {
	mu         sync.RWMutex
	sessionID  string
	descriptor attributes.ResourceDescriptor
	values     map[constants.AttributeID]any
	logger     trace.Logger
}

// NewResource creates a simulated resource from a definition. Every
// attribute the definition names must be applicable to the declared
// classification. The identity attributes (resource class, interface
// type, specification version) are populated from the classification
// unless the definition overrides them.
func NewResource(def *Definition) (*Resource, error) {
	rd, err := def.descriptor()
	if err != nil {
		return nil, err
	}

	r := &Resource{
		sessionID:  uuid.NewString(),
		descriptor: rd,
		values:     make(map[constants.AttributeID]any),
		logger:     trace.NoopLogger{},
	}

	if rd.ResourceClass != "" {
		r.values[constants.AttrIDRsrcClass] = rd.ResourceClass
	}
	if rd.InterfaceType != constants.InterfaceUnknown {
		r.values[constants.AttrIDIntfType] = int64(rd.InterfaceType)
	}
	r.values[constants.AttrIDRsrcSpecVersion] = int64(version.CurrentWord())

	for _, av := range def.Attributes {
		id, err := av.resolve()
		if err != nil {
			return nil, err
		}
		if d, ok := attributes.Lookup(id); ok && !d.InResource(rd) {
			return nil, fmt.Errorf("attribute %s does not apply to %s", d.AttrName(), rd)
		}
		r.values[id] = normalizeRaw(av.Value)
	}

	return r, nil
}

// SessionID returns the resource's session id.
func (r *Resource) SessionID() string {
	return r.sessionID
}

// Descriptor returns the resource classification.
func (r *Resource) Descriptor() attributes.ResourceDescriptor {
	return r.descriptor
}

// SetTraceLogger installs a logger receiving one event per raw access.
// Pass nil to disable tracing.
func (r *Resource) SetTraceLogger(l trace.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l == nil {
		l = trace.NoopLogger{}
	}
	r.logger = l
}

// GetRaw returns the stored raw value for the id.
func (r *Resource) GetRaw(id constants.AttributeID) (any, error) {
	r.mu.RLock()
	v, ok := r.values[id]
	logger := r.logger
	r.mu.RUnlock()

	if !ok {
		err := fmt.Errorf("%w: %s", ErrUnknownAttribute, id)
		logger.Log(r.event(trace.OpGet, id, nil, err))
		return nil, err
	}
	logger.Log(r.event(trace.OpGet, id, v, nil))
	return v, nil
}

// SetRaw stores the raw value for ids the resource already carries.
// Unknown ids fail, mirroring an instrument rejecting an unsupported
// attribute.
func (r *Resource) SetRaw(id constants.AttributeID, value any) error {
	r.mu.Lock()
	_, ok := r.values[id]
	if ok {
		r.values[id] = value
	}
	logger := r.logger
	r.mu.Unlock()

	if !ok {
		err := fmt.Errorf("%w: %s", ErrUnknownAttribute, id)
		logger.Log(r.event(trace.OpSet, id, value, err))
		return err
	}
	logger.Log(r.event(trace.OpSet, id, value, nil))
	return nil
}

// event builds a trace event for an access.
func (r *Resource) event(op trace.Operation, id constants.AttributeID, value any, err error) trace.Event {
	e := trace.Event{
		Timestamp:   time.Now().UTC(),
		SessionID:   r.sessionID,
		Operation:   op,
		AttributeID: id,
		Value:       value,
	}
	if d, ok := attributes.Lookup(id); ok {
		e.AttributeName = d.AttrName()
	}
	if err != nil {
		e.Error = err.Error()
	}
	return e
}

// Compile-time interface satisfaction check.
var _ attributes.RawHost = (*Resource)(nil)
