package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	gotoken "go/token"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"

	"placeholder-expander/internal/analyze"
	"placeholder-expander/internal/common"
	placeholderformat "placeholder-expander/format"
	"placeholder-expander/provider"
)

// Header starts every generated file.
const Header = "// Code generated by placeholder gen. DO NOT EDIT."

// FileSuffix ends the name of every generated file.
const FileSuffix = "_gen.go"

var (
	providerPkgPath = reflect.TypeOf((*provider.Provider)(nil)).Elem().PkgPath()
	formatPkgPath   = reflect.TypeOf(placeholderformat.Config{}).PkgPath()
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// GenerateComments enables doc comments on generated constructors.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "placeholders",
		OutputDir:        "./placeholders",
		GenerateComments: true,
	}
}

// Generator generates provider adapters from analyzed schemas.
type Generator struct {
	config GeneratorConfig
	byID   map[analyze.TypeID]*analyze.SchemaInfo
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "line_item_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate generates one file per schema, in input order.
func (g *Generator) Generate(schemas []*analyze.SchemaInfo) ([]GeneratedFile, error) {
	if !gotoken.IsIdentifier(g.config.PackageName) {
		return nil, fmt.Errorf("invalid package name %q", g.config.PackageName)
	}

	g.byID = make(map[analyze.TypeID]*analyze.SchemaInfo, len(schemas))
	byName := make(map[string]analyze.TypeID, len(schemas))

	for _, s := range schemas {
		if prev, dup := byName[s.ID.Name]; dup {
			return nil, fmt.Errorf("types %s and %s would share the constructor %s", prev, s.ID, s.ID.Name)
		}

		byName[s.ID.Name] = s.ID
		g.byID[s.ID] = s
	}

	files := make([]GeneratedFile, 0, len(schemas))

	for _, s := range schemas {
		file, err := g.generateSchema(s)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", s.ID, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

func (g *Generator) generateSchema(s *analyze.SchemaInfo) (*GeneratedFile, error) {
	data, err := g.buildTemplateData(s)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := providerTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

func (g *Generator) buildTemplateData(s *analyze.SchemaInfo) (*templateData, error) {
	imports := newImportSet(g.config.PackageName)
	prov := imports.add(providerPkgPath, "provider")

	lower := strcase.ToLowerCamel(s.ID.Name)

	data := &templateData{
		PackageName:      g.config.PackageName,
		Filename:         strcase.ToSnake(s.ID.Name) + FileSuffix,
		GenerateComments: g.config.GenerateComments,
		Provider:         prov,
		Constructor:      s.ID.Name,
		Receiver:         lower + "Provider",
		SchemaVar:        lower + "Schema",
		TypeName:         s.TypeName,
		SourceType: typeRef{
			Package: imports.add(s.ID.PkgPath, s.PkgName),
			Name:    s.ID.Name,
		},
		FieldNames:    quoteList(s.FieldNames()),
		FormatsFields: s.FormatsFields,
	}

	if s.FormatsFields {
		data.Format = imports.add(formatPkgPath, "format")
	}

	var computed []string

	for _, f := range s.Fields {
		if f.Computed {
			computed = append(computed, f.Name)
			continue
		}

		data.Fields = append(data.Fields, fieldCase{Name: f.Name, GoName: f.GoName})
	}

	data.ComputedNames = quoteList(computed)

	for _, rel := range s.Relations {
		ctor, target, err := g.relationTarget(rel)
		if err != nil {
			return nil, fmt.Errorf("relation %q: %w", rel.Name, err)
		}

		decl := relationDecl{Name: rel.Name, Target: target}

		if rel.Kind == provider.RelationOne {
			decl.Method = "One"
			data.Ones = append(data.Ones, relationCase{Name: rel.Name, Body: oneBody(rel, ctor, prov)})
		} else {
			decl.Method = "Many"
			data.Manys = append(data.Manys, relationCase{Name: rel.Name, Body: manyBody(rel, ctor, prov)})
		}

		data.Relations = append(data.Relations, decl)
	}

	data.Imports = imports.sorted()

	return data, nil
}

// relationTarget returns the constructor and placeholder type name of the
// related type. Both are empty for interface relations.
func (g *Generator) relationTarget(rel analyze.RelationInfo) (string, string, error) {
	if rel.Elem == analyze.ElemInterface {
		if rel.Pointers > 0 {
			return "", "", errors.New("pointer to interface is not supported")
		}

		return "", "", nil
	}

	if rel.Pointers > 1 {
		return "", "", fmt.Errorf("%s has %d levels of pointers", rel.GoType, rel.Pointers)
	}

	if rel.Target.IsZero() {
		return "", "", fmt.Errorf("%s is not a named struct", rel.GoType)
	}

	target, ok := g.byID[rel.Target]
	if !ok {
		return "", "", fmt.Errorf("target %s is not among the generated types", rel.Target)
	}

	return target.ID.Name, target.TypeName, nil
}

func oneBody(rel analyze.RelationInfo, ctor, prov string) string {
	field := "p.v." + rel.GoName

	switch rel.Elem {
	case analyze.ElemInterface:
		return fmt.Sprintf("related, ok := %s.(%s.Provider)\nreturn related, ok", field, prov)
	case analyze.ElemValue:
		return fmt.Sprintf("return %s(&%s), true", ctor, field)
	default:
		return fmt.Sprintf("if %[1]s == nil {\nreturn nil, false\n}\n\nreturn %[2]s(%[1]s), true", field, ctor)
	}
}

func manyBody(rel analyze.RelationInfo, ctor, prov string) string {
	field := "p.v." + rel.GoName

	var sb strings.Builder

	if rel.Slice {
		fmt.Fprintf(&sb, "if %s == nil {\nreturn nil\n}\n\n", field)
	}

	fmt.Fprintf(&sb, "items := make([]%s.Provider, len(%s))\nfor i := range %s {\n", prov, field, field)

	switch rel.Elem {
	case analyze.ElemInterface:
		fmt.Fprintf(&sb, "items[i], _ = %s[i].(%s.Provider)\n", field, prov)
	case analyze.ElemValue:
		fmt.Fprintf(&sb, "items[i] = %s(&%s[i])\n", ctor, field)
	default:
		fmt.Fprintf(&sb, "items[i] = %s(%s[i])\n", ctor, field)
	}

	sb.WriteString("}\n\nreturn items")

	return sb.String()
}

func quoteList(names []string) string {
	quoted := make([]string, 0, len(names))
	for _, n := range names {
		quoted = append(quoted, strconv.Quote(n))
	}

	return strings.Join(quoted, ", ")
}

// importSet assigns each imported package a name unique within one file.
type importSet struct {
	byPath map[string]importSpec
	taken  map[string]bool
}

func newImportSet(pkgName string) *importSet {
	return &importSet{
		byPath: make(map[string]importSpec),
		taken:  map[string]bool{pkgName: true},
	}
}

// add imports pkgPath and returns the name it is referred to by. name is
// the package clause name; an empty name falls back to the last path
// element.
func (s *importSet) add(pkgPath, name string) string {
	if spec, ok := s.byPath[pkgPath]; ok {
		return spec.name()
	}

	if name == "" {
		name = common.PkgAlias(pkgPath)
	}

	use := name
	for i := 2; s.taken[use]; i++ {
		use = name + strconv.Itoa(i)
	}

	spec := importSpec{Path: pkgPath}
	if use != common.PkgAlias(pkgPath) {
		spec.Alias = use
	}

	s.taken[use] = true
	s.byPath[pkgPath] = spec

	return use
}

func (s *importSet) sorted() []importSpec {
	out := make([]importSpec, 0, len(s.byPath))
	for _, spec := range s.byPath {
		out = append(out, spec)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})

	return out
}
