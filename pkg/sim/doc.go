// Package sim provides a simulated instrument resource for exercising
// the attribute descriptor layer without hardware.
//
// A Resource is defined in YAML (classification plus initial raw
// attribute values), implements the attributes.RawHost primitives over an
// in-memory store, and optionally emits a trace.Event per raw access:
//
//	resource_class: INSTR
//	interface_type: ASRL
//	attributes:
//	  - name: VI_ATTR_ASRL_BAUD
//	    value: 9600
//	  - name: VI_ATTR_TERMCHAR
//	    value: 10
//
// Vendor-specific attributes outside the registry are referenced by hex
// id instead of name.
package sim
