// Package constants defines the frozen VISA vocabulary consumed by the
// attribute layer: attribute identifiers, boolean and timeout sentinels,
// and the enumerations used by typed attributes.
//
// The numeric values mirror the VISA specification (visa.h) and must not
// change; instruments and control libraries treat them as wire constants.
package constants

import (
	"fmt"
	"strings"
)

// AttributeID identifies an attribute in the VISA attribute id space.
type AttributeID uint32

// String returns the id in the conventional hex form.
func (id AttributeID) String() string {
	return fmt.Sprintf("0x%08X", uint32(id))
}

// Boolean sentinels (ViBoolean).
const (
	// True is the raw representation of a true boolean attribute (VI_TRUE).
	True uint16 = 1

	// False is the raw representation of a false boolean attribute (VI_FALSE).
	False uint16 = 0
)

// Timeout sentinels (VI_ATTR_TMO_VALUE).
const (
	// TimeoutImmediate disables the timeout (VI_TMO_IMMEDIATE).
	TimeoutImmediate int64 = 0

	// TimeoutInfinite waits forever (VI_TMO_INFINITE). It lies outside the
	// regular timeout range and is allowed as a discrete extra value.
	TimeoutInfinite int64 = 0xFFFFFFFF
)

// InterfaceType classifies the hardware interface of a resource.
type InterfaceType uint16

const (
	// InterfaceUnknown means the resource carries no interface classification.
	InterfaceUnknown InterfaceType = 0

	// InterfaceGPIB is an IEEE 488 bus interface (VI_INTF_GPIB).
	InterfaceGPIB InterfaceType = 1

	// InterfaceVXI is a VXI mainframe interface (VI_INTF_VXI).
	InterfaceVXI InterfaceType = 2

	// InterfaceGPIBVXI is a GPIB-VXI command module (VI_INTF_GPIB_VXI).
	InterfaceGPIBVXI InterfaceType = 3

	// InterfaceASRL is an asynchronous serial line (VI_INTF_ASRL).
	InterfaceASRL InterfaceType = 4

	// InterfacePXI is a PXI backplane interface (VI_INTF_PXI).
	InterfacePXI InterfaceType = 5

	// InterfaceTCPIP is a TCP/IP network interface (VI_INTF_TCPIP).
	InterfaceTCPIP InterfaceType = 6

	// InterfaceUSB is a USB interface (VI_INTF_USB).
	InterfaceUSB InterfaceType = 7
)

// String returns the interface type name.
func (t InterfaceType) String() string {
	switch t {
	case InterfaceGPIB:
		return "GPIB"
	case InterfaceVXI:
		return "VXI"
	case InterfaceGPIBVXI:
		return "GPIB-VXI"
	case InterfaceASRL:
		return "ASRL"
	case InterfacePXI:
		return "PXI"
	case InterfaceTCPIP:
		return "TCPIP"
	case InterfaceUSB:
		return "USB"
	default:
		return "UNKNOWN"
	}
}

// ParseInterfaceType converts an interface name (as used in resource
// strings and definition files) into an InterfaceType.
func ParseInterfaceType(s string) (InterfaceType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "GPIB":
		return InterfaceGPIB, nil
	case "VXI":
		return InterfaceVXI, nil
	case "GPIB-VXI", "GPIB_VXI":
		return InterfaceGPIBVXI, nil
	case "ASRL":
		return InterfaceASRL, nil
	case "PXI":
		return InterfacePXI, nil
	case "TCPIP":
		return InterfaceTCPIP, nil
	case "USB":
		return InterfaceUSB, nil
	default:
		return InterfaceUnknown, fmt.Errorf("unknown interface type %q", s)
	}
}

// Parity is the serial line parity setting (VI_ATTR_ASRL_PARITY).
type Parity uint16

const (
	ParityNone  Parity = 0
	ParityOdd   Parity = 1
	ParityEven  Parity = 2
	ParityMark  Parity = 3
	ParitySpace Parity = 4
)

// String returns the parity name.
func (p Parity) String() string {
	switch p {
	case ParityNone:
		return "NONE"
	case ParityOdd:
		return "ODD"
	case ParityEven:
		return "EVEN"
	case ParityMark:
		return "MARK"
	case ParitySpace:
		return "SPACE"
	default:
		return "UNKNOWN"
	}
}

// StopBits is the serial line stop bit setting (VI_ATTR_ASRL_STOP_BITS).
// The raw values are tenths of a bit, per the VISA specification.
type StopBits uint16

const (
	StopBitsOne        StopBits = 10
	StopBitsOneAndHalf StopBits = 15
	StopBitsTwo        StopBits = 20
)

// String returns the stop bits name.
func (s StopBits) String() string {
	switch s {
	case StopBitsOne:
		return "ONE"
	case StopBitsOneAndHalf:
		return "ONE_5"
	case StopBitsTwo:
		return "TWO"
	default:
		return "UNKNOWN"
	}
}

// Serial flow control raw values (VI_ATTR_ASRL_FLOW_CNTRL).
const (
	FlowControlNone    int64 = 0
	FlowControlXonXoff int64 = 1
	FlowControlRtsCts  int64 = 2
	FlowControlDtrDsr  int64 = 4
)

// Attribute ids, mirroring visa.h.
const (
	// AttrIDRsrcClass is the resource class name, e.g. "INSTR" (VI_ATTR_RSRC_CLASS).
	AttrIDRsrcClass AttributeID = 0xBFFF0001

	// AttrIDRsrcName is the canonical resource string (VI_ATTR_RSRC_NAME).
	AttrIDRsrcName AttributeID = 0xBFFF0002

	// AttrIDRsrcImplVersion is the implementation version word (VI_ATTR_RSRC_IMPL_VERSION).
	AttrIDRsrcImplVersion AttributeID = 0x3FFF0003

	// AttrIDRsrcSpecVersion is the VISA specification version word (VI_ATTR_RSRC_SPEC_VERSION).
	AttrIDRsrcSpecVersion AttributeID = 0x3FFF018D

	// AttrIDSendEndEn controls END indicator on writes (VI_ATTR_SEND_END_EN).
	AttrIDSendEndEn AttributeID = 0x3FFF0016

	// AttrIDTermchar is the read termination character (VI_ATTR_TERMCHAR).
	AttrIDTermchar AttributeID = 0x3FFF0018

	// AttrIDTmoValue is the I/O timeout in milliseconds (VI_ATTR_TMO_VALUE).
	AttrIDTmoValue AttributeID = 0x3FFF001A

	// AttrIDAsrlBaud is the serial baud rate (VI_ATTR_ASRL_BAUD).
	AttrIDAsrlBaud AttributeID = 0x3FFF0021

	// AttrIDAsrlDataBits is the number of serial data bits (VI_ATTR_ASRL_DATA_BITS).
	AttrIDAsrlDataBits AttributeID = 0x3FFF0022

	// AttrIDAsrlParity is the serial parity (VI_ATTR_ASRL_PARITY).
	AttrIDAsrlParity AttributeID = 0x3FFF0023

	// AttrIDAsrlStopBits is the serial stop bits (VI_ATTR_ASRL_STOP_BITS).
	AttrIDAsrlStopBits AttributeID = 0x3FFF0024

	// AttrIDAsrlFlowCntrl is the serial flow control mode (VI_ATTR_ASRL_FLOW_CNTRL).
	AttrIDAsrlFlowCntrl AttributeID = 0x3FFF0025

	// AttrIDTermcharEn enables the read termination character (VI_ATTR_TERMCHAR_EN).
	AttrIDTermcharEn AttributeID = 0x3FFF0038

	// AttrIDAsrlXonChar is the XON character (VI_ATTR_ASRL_XON_CHAR).
	AttrIDAsrlXonChar AttributeID = 0x3FFF003F

	// AttrIDAsrlXoffChar is the XOFF character (VI_ATTR_ASRL_XOFF_CHAR).
	AttrIDAsrlXoffChar AttributeID = 0x3FFF0040

	// AttrIDIntfType is the interface type of the resource (VI_ATTR_INTF_TYPE).
	AttrIDIntfType AttributeID = 0x3FFF00B3

	// AttrIDIntfNum is the board number of the interface (VI_ATTR_INTF_NUM).
	AttrIDIntfNum AttributeID = 0x3FFF0176

	// AttrIDIntfInstName is the human-readable interface name (VI_ATTR_INTF_INST_NAME).
	AttrIDIntfInstName AttributeID = 0xBFFF00E9
)
