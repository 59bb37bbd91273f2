package attributes

import (
	"github.com/visa-protocol/visa-go/pkg/constants"
)

// asrlInstr restricts an attribute to serial instrument resources.
var asrlInstr = []ResourceDescriptor{
	{InterfaceType: constants.InterfaceASRL, ResourceClass: "INSTR"},
}

// Canonical descriptors for the standard VISA attributes this layer
// covers. Each is a process-wide constant shared by every resource.
var (
	// AttrRsrcClass is the resource class name, e.g. "INSTR".
	AttrRsrcClass = &Attribute{
		ID:     constants.AttrIDRsrcClass,
		Name:   "VI_ATTR_RSRC_CLASS",
		Access: AccessRead,
	}

	// AttrRsrcName is the canonical resource string.
	AttrRsrcName = &Attribute{
		ID:     constants.AttrIDRsrcName,
		Name:   "VI_ATTR_RSRC_NAME",
		Access: AccessRead,
	}

	// AttrRsrcSpecVersion is the VISA specification version word the
	// resource conforms to.
	AttrRsrcSpecVersion = &IntAttribute{
		Attribute: Attribute{
			ID:     constants.AttrIDRsrcSpecVersion,
			Name:   "VI_ATTR_RSRC_SPEC_VERSION",
			Access: AccessRead,
		},
	}

	// AttrRsrcImplVersion is the implementation version word of the
	// library serving the resource.
	AttrRsrcImplVersion = &IntAttribute{
		Attribute: Attribute{
			ID:     constants.AttrIDRsrcImplVersion,
			Name:   "VI_ATTR_RSRC_IMPL_VERSION",
			Access: AccessRead,
		},
	}

	// AttrIntfInstName is the human-readable interface name. Applicable
	// to every resource.
	AttrIntfInstName = &Attribute{
		ID:     constants.AttrIDIntfInstName,
		Name:   "VI_ATTR_INTF_INST_NAME",
		Access: AccessRead,
	}

	// AttrIntfType is the interface type of the resource.
	AttrIntfType = &EnumAttribute[constants.InterfaceType]{
		Attribute: Attribute{
			ID:     constants.AttrIDIntfType,
			Name:   "VI_ATTR_INTF_TYPE",
			Access: AccessRead,
		},
		Members: []constants.InterfaceType{
			constants.InterfaceGPIB,
			constants.InterfaceVXI,
			constants.InterfaceGPIBVXI,
			constants.InterfaceASRL,
			constants.InterfacePXI,
			constants.InterfaceTCPIP,
			constants.InterfaceUSB,
		},
	}

	// AttrIntfNum is the board number of the interface.
	AttrIntfNum = &RangeAttribute{
		Attribute: Attribute{
			ID:     constants.AttrIDIntfNum,
			Name:   "VI_ATTR_INTF_NUM",
			Access: AccessRead,
		},
		Min: 0,
		Max: 0xFFFF,
	}

	// AttrTmoValue is the I/O timeout in milliseconds. The infinite
	// timeout sentinel lies outside the range and is explicitly allowed.
	AttrTmoValue = &RangeAttribute{
		Attribute: Attribute{
			ID:     constants.AttrIDTmoValue,
			Name:   "VI_ATTR_TMO_VALUE",
			Access: AccessReadWrite,
		},
		Min:    constants.TimeoutImmediate,
		Max:    0xFFFFFFFE,
		Values: []int64{constants.TimeoutInfinite},
	}

	// AttrSendEndEn controls the END indicator on writes.
	AttrSendEndEn = &BooleanAttribute{
		Attribute: Attribute{
			ID:     constants.AttrIDSendEndEn,
			Name:   "VI_ATTR_SEND_END_EN",
			Access: AccessReadWrite,
		},
	}

	// AttrTermchar is the read termination character.
	AttrTermchar = &RangeAttribute{
		Attribute: Attribute{
			ID:     constants.AttrIDTermchar,
			Name:   "VI_ATTR_TERMCHAR",
			Access: AccessReadWrite,
		},
		Min: 0,
		Max: 0xFF,
	}

	// AttrTermcharEn enables the read termination character.
	AttrTermcharEn = &BooleanAttribute{
		Attribute: Attribute{
			ID:     constants.AttrIDTermcharEn,
			Name:   "VI_ATTR_TERMCHAR_EN",
			Access: AccessReadWrite,
		},
	}

	// AttrAsrlBaud is the serial baud rate. Serial resources only.
	AttrAsrlBaud = &RangeAttribute{
		Attribute: Attribute{
			ID:        constants.AttrIDAsrlBaud,
			Name:      "VI_ATTR_ASRL_BAUD",
			Access:    AccessReadWrite,
			Resources: asrlInstr,
		},
		Min: 1,
		Max: 0xFFFFFFFF,
	}

	// AttrAsrlDataBits is the number of serial data bits.
	AttrAsrlDataBits = &RangeAttribute{
		Attribute: Attribute{
			ID:        constants.AttrIDAsrlDataBits,
			Name:      "VI_ATTR_ASRL_DATA_BITS",
			Access:    AccessReadWrite,
			Resources: asrlInstr,
		},
		Min: 5,
		Max: 8,
	}

	// AttrAsrlParity is the serial parity.
	AttrAsrlParity = &EnumAttribute[constants.Parity]{
		Attribute: Attribute{
			ID:        constants.AttrIDAsrlParity,
			Name:      "VI_ATTR_ASRL_PARITY",
			Access:    AccessReadWrite,
			Resources: asrlInstr,
		},
		Members: []constants.Parity{
			constants.ParityNone,
			constants.ParityOdd,
			constants.ParityEven,
			constants.ParityMark,
			constants.ParitySpace,
		},
	}

	// AttrAsrlStopBits is the serial stop bit setting.
	AttrAsrlStopBits = &EnumAttribute[constants.StopBits]{
		Attribute: Attribute{
			ID:        constants.AttrIDAsrlStopBits,
			Name:      "VI_ATTR_ASRL_STOP_BITS",
			Access:    AccessReadWrite,
			Resources: asrlInstr,
		},
		Members: []constants.StopBits{
			constants.StopBitsOne,
			constants.StopBitsOneAndHalf,
			constants.StopBitsTwo,
		},
	}

	// AttrAsrlFlowCntrl is the serial flow control mode.
	AttrAsrlFlowCntrl = &ValuesAttribute{
		Attribute: Attribute{
			ID:        constants.AttrIDAsrlFlowCntrl,
			Name:      "VI_ATTR_ASRL_FLOW_CNTRL",
			Access:    AccessReadWrite,
			Resources: asrlInstr,
		},
		Values: []int64{
			constants.FlowControlNone,
			constants.FlowControlXonXoff,
			constants.FlowControlRtsCts,
			constants.FlowControlDtrDsr,
		},
	}

	// AttrAsrlXonChar is the XON character used with XON/XOFF flow control.
	AttrAsrlXonChar = &CharAttribute{
		Attribute: Attribute{
			ID:        constants.AttrIDAsrlXonChar,
			Name:      "VI_ATTR_ASRL_XON_CHAR",
			Access:    AccessReadWrite,
			Resources: asrlInstr,
		},
	}

	// AttrAsrlXoffChar is the XOFF character used with XON/XOFF flow control.
	AttrAsrlXoffChar = &CharAttribute{
		Attribute: Attribute{
			ID:        constants.AttrIDAsrlXoffChar,
			Name:      "VI_ATTR_ASRL_XOFF_CHAR",
			Access:    AccessReadWrite,
			Resources: asrlInstr,
		},
	}
)

func init() {
	for _, d := range []Descriptor{
		AttrRsrcClass,
		AttrRsrcName,
		AttrRsrcSpecVersion,
		AttrRsrcImplVersion,
		AttrIntfInstName,
		AttrIntfType,
		AttrIntfNum,
		AttrTmoValue,
		AttrSendEndEn,
		AttrTermchar,
		AttrTermcharEn,
		AttrAsrlBaud,
		AttrAsrlDataBits,
		AttrAsrlParity,
		AttrAsrlStopBits,
		AttrAsrlFlowCntrl,
		AttrAsrlXonChar,
		AttrAsrlXoffChar,
	} {
		Register(d)
	}
}
