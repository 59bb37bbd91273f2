package main

import (
	"fmt"
	"strings"
	"text/template"
)

const descriptorsTmpl = `// Code generated by visa-attrgen. DO NOT EDIT.

package {{ .Package }}

// Generated descriptors, registered at init time.
var (
{{- range .Attributes }}
	// {{ goName .Name }} is {{ .Name }}.
	{{ goName .Name }} = {{ template "descriptor" wrap $ . }}
{{- end }}
)

func init() {
	for _, d := range []{{ .Qual }}Descriptor{
{{- range .Attributes }}
		{{ goName .Name }},
{{- end }}
	} {
		{{ .Qual }}Register(d)
	}
}

{{ define "base" -}}
{{ .Q.Qual }}Attribute{
		ID:     constants.AttributeID({{ .A.ID }}),
		Name:   "{{ .A.Name }}",
		Access: {{ accessConst .Q.Qual .A.Access }},
{{- if .A.Interface }}
		Resources: []{{ .Q.Qual }}ResourceDescriptor{{"{{"}}InterfaceType: {{ interfaceConst .A.Interface }}, ResourceClass: "{{ .A.ResourceClass }}"{{"}}"}},
{{- end }}
	}
{{- end }}

{{ define "descriptor" -}}
{{- if eq .A.Type "plain" -}}
&{{ template "base" . }}
{{- else if eq .A.Type "bool" -}}
&{{ .Q.Qual }}BooleanAttribute{Attribute: {{ template "base" . }}}
{{- else if eq .A.Type "char" -}}
&{{ .Q.Qual }}CharAttribute{Attribute: {{ template "base" . }}}
{{- else if eq .A.Type "int" -}}
&{{ .Q.Qual }}IntAttribute{Attribute: {{ template "base" . }}}
{{- else if eq .A.Type "enum" -}}
&{{ .Q.Qual }}EnumAttribute[{{ .A.EnumType }}]{
		Attribute: {{ template "base" . }},
		Members:   []{{ .A.EnumType }}{ {{- join .A.Members ", " -}} },
	}
{{- else if eq .A.Type "range" -}}
&{{ .Q.Qual }}RangeAttribute{
		Attribute: {{ template "base" . }},
		Min:       {{ deref .A.Min }},
		Max:       {{ deref .A.Max }},
{{- if .A.Values }}
		Values:    []int64{ {{- joinInt .A.Values ", " -}} },
{{- end }}
	}
{{- else if eq .A.Type "values" -}}
&{{ .Q.Qual }}ValuesAttribute{
		Attribute: {{ template "base" . }},
		Values:    []int64{ {{- joinInt .A.Values ", " -}} },
	}
{{- end -}}
{{ end }}
`

// templateData is the root template payload.
type templateData struct {
	Package    string
	Qual       string // "" inside package attributes, "attributes." elsewhere
	Attributes []RawAttribute
}

// wrapped pairs the root data with one attribute for nested templates.
type wrapped struct {
	Q *templateData
	A RawAttribute
}

var templates = template.Must(template.New("descriptors").Funcs(template.FuncMap{
	"goName":         goName,
	"accessConst":    accessConst,
	"interfaceConst": interfaceConst,
	"joinInt":        joinInt,
	"join":           func(ss []string, sep string) string { return strings.Join(ss, sep) },
	"deref":          func(p *int64) int64 { return *p },
	"wrap":           func(q *templateData, a RawAttribute) wrapped { return wrapped{Q: q, A: a} },
}).Parse(descriptorsTmpl))

// Generate renders the descriptor declarations for the table.
func Generate(pkg string, table *Table) (string, error) {
	data := &templateData{
		Package:    pkg,
		Attributes: table.Attributes,
	}
	if pkg != "attributes" {
		data.Qual = "attributes."
	}

	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, "descriptors", data); err != nil {
		return "", fmt.Errorf("rendering descriptors: %w", err)
	}
	return b.String(), nil
}

// goName converts "VI_ATTR_ASRL_BAUD" to "AttrAsrlBaud".
func goName(visaName string) string {
	var b strings.Builder
	b.WriteString("Attr")
	for _, part := range strings.Split(strings.TrimPrefix(visaName, "VI_ATTR_"), "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(strings.ToLower(part[1:]))
	}
	return b.String()
}

// accessConst maps an access string to the Access constant expression.
func accessConst(qual, access string) string {
	switch access {
	case "r":
		return qual + "AccessRead"
	case "w":
		return qual + "AccessWrite"
	default:
		return qual + "AccessReadWrite"
	}
}

// interfaceConst maps an interface name to the constants expression.
func interfaceConst(name string) string {
	switch strings.ToUpper(name) {
	case "GPIB":
		return "constants.InterfaceGPIB"
	case "VXI":
		return "constants.InterfaceVXI"
	case "GPIB-VXI", "GPIB_VXI":
		return "constants.InterfaceGPIBVXI"
	case "ASRL":
		return "constants.InterfaceASRL"
	case "PXI":
		return "constants.InterfacePXI"
	case "TCPIP":
		return "constants.InterfaceTCPIP"
	case "USB":
		return "constants.InterfaceUSB"
	default:
		return "constants.InterfaceUnknown"
	}
}

func joinInt(vs []int64, sep string) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, sep)
}
