package gen

import (
	"text/template"

	"placeholder-expander/internal/common"
)

// templateData holds all data needed for one generated file.
type templateData struct {
	PackageName      string
	Filename         string
	Imports          []importSpec
	GenerateComments bool
	// Provider and Format are the names the provider and format packages
	// are imported as.
	Provider    string
	Format      string
	Constructor string
	Receiver    string
	SchemaVar   string
	TypeName    string
	SourceType  typeRef
	// FieldNames and ComputedNames are comma separated Go string literals.
	FieldNames    string
	Fields        []fieldCase
	ComputedNames string
	Relations     []relationDecl
	Ones          []relationCase
	Manys         []relationCase
	FormatsFields bool
}

// importSpec is one line of the import block.
type importSpec struct {
	Alias string
	Path  string
}

func (s importSpec) name() string {
	if s.Alias != "" {
		return s.Alias
	}

	return common.PkgAlias(s.Path)
}

// typeRef is a reference to a type with optional package qualifier.
type typeRef struct {
	Package string
	Name    string
}

// String returns the qualified type name (e.g., "billing.Invoice").
func (t typeRef) String() string {
	if t.Package == "" {
		return t.Name
	}

	return t.Package + "." + t.Name
}

// fieldCase reads a tagged struct field.
type fieldCase struct {
	Name   string
	GoName string
}

// relationDecl is one relation of the generated schema.
type relationDecl struct {
	Method string // One or Many
	Name   string
	Target string
}

// relationCase is the body of a One or Many switch case.
type relationCase struct {
	Name string
	Body string
}

var providerTemplate = template.Must(template.New("provider").Parse(Header + `

package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})

var {{.SchemaVar}} = {{.Provider}}.NewSchema({{printf "%q" .TypeName}}).
{{- if .FieldNames}}
	Field({{.FieldNames}}).
{{- end}}
{{- range .Relations}}
	{{.Method}}({{printf "%q" .Name}}, {{printf "%q" .Target}}).
{{- end}}
	MustBuild()

{{if .GenerateComments}}// {{.Constructor}} adapts v to {{.Provider}}.Provider. It returns nil for a nil v.
{{end}}func {{.Constructor}}(v *{{.SourceType}}) {{.Provider}}.Provider {
	if v == nil {
		return nil
	}

	return {{.Receiver}}{v: v}
}

type {{.Receiver}} struct {
	v *{{.SourceType}}
}

func ({{.Receiver}}) TypeName() string {
	return {{printf "%q" .TypeName}}
}

func ({{.Receiver}}) Schema() *{{.Provider}}.Schema {
	return {{.SchemaVar}}
}
{{if .FieldNames}}
func (p {{.Receiver}}) Field(name string) (any, bool) {
	switch name {
{{- range .Fields}}
	case {{printf "%q" .Name}}:
		return p.v.{{.GoName}}, true
{{- end}}
{{- if .ComputedNames}}
	case {{.ComputedNames}}:
		return p.v.ComputedField(name)
{{- end}}
	default:
		return nil, false
	}
}
{{else}}
func ({{.Receiver}}) Field(string) (any, bool) {
	return nil, false
}
{{end}}
{{- if .Ones}}
func (p {{.Receiver}}) One(name string) ({{.Provider}}.Provider, bool) {
	switch name {
{{- range .Ones}}
	case {{printf "%q" .Name}}:
		{{.Body}}
{{- end}}
	default:
		return nil, false
	}
}
{{else}}
func ({{.Receiver}}) One(string) ({{.Provider}}.Provider, bool) {
	return nil, false
}
{{end}}
{{- if .Manys}}
func (p {{.Receiver}}) Many(name string) []{{.Provider}}.Provider {
	switch name {
{{- range .Manys}}
	case {{printf "%q" .Name}}:
		{{.Body}}
{{- end}}
	default:
		return nil
	}
}
{{else}}
func ({{.Receiver}}) Many(string) []{{.Provider}}.Provider {
	return nil
}
{{end}}
{{- if .FormatsFields}}
func (p {{.Receiver}}) FormatField(name string, cfg {{.Format}}.Config) (string, bool) {
	return p.v.FormatField(name, cfg)
}
{{end}}`))
