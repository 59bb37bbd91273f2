package main

import (
	"strings"
	"testing"
)

const sampleTable = `
attributes:
  - name: VI_ATTR_ASRL_BAUD
    id: "0x3FFF0021"
    type: range
    access: rw
    interface: ASRL
    resource_class: INSTR
    min: 1
    max: 4294967295
  - name: VI_ATTR_TERMCHAR_EN
    id: "0x3FFF0038"
    type: bool
    access: rw
  - name: VI_ATTR_ASRL_PARITY
    id: "0x3FFF0023"
    type: enum
    access: rw
    interface: ASRL
    resource_class: INSTR
    enum_type: constants.Parity
    members:
      - constants.ParityNone
      - constants.ParityOdd
      - constants.ParityEven
`

func TestParseTable(t *testing.T) {
	table, err := ParseTable([]byte(sampleTable))
	if err != nil {
		t.Fatalf("ParseTable failed: %v", err)
	}
	if len(table.Attributes) != 3 {
		t.Fatalf("expected 3 attributes, got %d", len(table.Attributes))
	}

	baud := table.Attributes[0]
	if baud.Name != "VI_ATTR_ASRL_BAUD" || baud.Type != "range" {
		t.Errorf("unexpected first attribute: %+v", baud)
	}
	if baud.Min == nil || *baud.Min != 1 || baud.Max == nil || *baud.Max != 4294967295 {
		t.Errorf("unexpected range bounds: %+v", baud)
	}
}

func TestParseTableValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing name",
			yaml:    "attributes:\n  - id: \"0x1\"\n    type: bool\n    access: rw\n",
			wantErr: "missing name",
		},
		{
			name:    "bad prefix",
			yaml:    "attributes:\n  - name: ASRL_BAUD\n    id: \"0x1\"\n    type: bool\n    access: rw\n",
			wantErr: "must start with VI_ATTR_",
		},
		{
			name:    "non-hex id",
			yaml:    "attributes:\n  - name: VI_ATTR_X\n    id: \"33\"\n    type: bool\n    access: rw\n",
			wantErr: "must be hex",
		},
		{
			name:    "bad access",
			yaml:    "attributes:\n  - name: VI_ATTR_X\n    id: \"0x1\"\n    type: bool\n    access: rwx\n",
			wantErr: "access must be",
		},
		{
			name:    "range without bounds",
			yaml:    "attributes:\n  - name: VI_ATTR_X\n    id: \"0x1\"\n    type: range\n    access: rw\n",
			wantErr: "need min and max",
		},
		{
			name:    "values without list",
			yaml:    "attributes:\n  - name: VI_ATTR_X\n    id: \"0x1\"\n    type: values\n    access: rw\n",
			wantErr: "non-empty allow-list",
		},
		{
			name:    "enum without members",
			yaml:    "attributes:\n  - name: VI_ATTR_X\n    id: \"0x1\"\n    type: enum\n    access: rw\n",
			wantErr: "enum_type and members",
		},
		{
			name:    "unknown type",
			yaml:    "attributes:\n  - name: VI_ATTR_X\n    id: \"0x1\"\n    type: blob\n    access: rw\n",
			wantErr: "unknown type",
		},
		{
			name:    "class without interface",
			yaml:    "attributes:\n  - name: VI_ATTR_X\n    id: \"0x1\"\n    type: bool\n    access: rw\n    resource_class: INSTR\n",
			wantErr: "needs an interface",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTable([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}
