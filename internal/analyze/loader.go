package analyze

import (
	"fmt"
	"go/ast"
	"go/types"
	"reflect"
	"strconv"

	"golang.org/x/tools/go/packages"

	"placeholder-expander/provider"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Method names read from source.
const (
	typeNameMethod       = "PlaceholderTypeName"
	computedFieldsMethod = "ComputedFields"
	formatFieldMethod    = "FormatField"
)

// Analyzer loads Go packages and collects placeholder schemas.
type Analyzer struct {
	schemas map[TypeID]*SchemaInfo
	order   []TypeID
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		schemas: make(map[TypeID]*SchemaInfo),
	}
}

// LoadPackages loads the specified packages and returns the schemas found so
// far, in load order. Patterns are standard Go package patterns (e.g.,
// "./billing", "placeholder-expander/billing").
func (a *Analyzer) LoadPackages(patterns ...string) ([]*SchemaInfo, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return a.Schemas(), nil
}

// Schemas returns every schema found, in load order.
func (a *Analyzer) Schemas() []*SchemaInfo {
	out := make([]*SchemaInfo, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.schemas[id])
	}

	return out
}

// Schema returns the schema of a type by id.
func (a *Analyzer) Schema(id TypeID) (*SchemaInfo, error) {
	s, ok := a.schemas[id]
	if !ok {
		return nil, fmt.Errorf("type %s has no placeholder schema", id)
	}

	return s, nil
}

// processPackage extracts schemas from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	methods := methodDecls(pkg.Syntax)

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		st, ok := typeName.Type().Underlying().(*types.Struct)
		if !ok {
			continue
		}

		id := TypeID{PkgPath: pkg.PkgPath, Name: name}
		if _, seen := a.schemas[id]; seen {
			continue
		}

		info, err := a.analyzeStruct(id, st, methods[name])
		if err != nil {
			return err
		}

		if info == nil {
			continue
		}

		ptrMethods := types.NewMethodSet(types.NewPointer(typeName.Type()))
		info.FormatsFields = ptrMethods.Lookup(pkg.Types, formatFieldMethod) != nil

		info.PkgName = pkg.Name
		info.Pos = pkg.Fset.Position(typeName.Pos())
		a.schemas[id] = info
		a.order = append(a.order, id)
	}

	return nil
}

// analyzeStruct reads the placeholder tags of st. It returns nil for
// structs that expose nothing.
func (a *Analyzer) analyzeStruct(id TypeID, st *types.Struct, methods map[string]*ast.FuncDecl) (*SchemaInfo, error) {
	info := &SchemaInfo{ID: id, TypeName: id.Name}

	for i := range st.NumFields() {
		field := st.Field(i)

		raw, tagged := reflect.StructTag(st.Tag(i)).Lookup(provider.TagKey)
		if !tagged || field.Embedded() {
			continue
		}

		if !field.Exported() {
			return nil, fmt.Errorf("%s: unexported field %s is tagged", id, field.Name())
		}

		tag, ok, err := provider.ParseTag(field.Name(), raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", id, err)
		}

		if !ok {
			continue
		}

		if tag.Kind == provider.RelationNone {
			info.Fields = append(info.Fields, FieldInfo{
				Name:   tag.Name,
				GoName: field.Name(),
				GoType: types.TypeString(field.Type(), shortQualifier),
			})

			continue
		}

		rel, err := relationTarget(field.Type(), tag.Kind)
		if err != nil {
			return nil, fmt.Errorf("%s: field %s: %w", id, field.Name(), err)
		}

		rel.Name = tag.Name
		rel.GoName = field.Name()
		rel.GoType = types.TypeString(field.Type(), shortQualifier)
		info.Relations = append(info.Relations, rel)
	}

	if fn, ok := methods[typeNameMethod]; ok {
		if names, ok := returnedStrings(fn); ok && len(names) == 1 && names[0] != "" {
			info.TypeName = names[0]
		}
	}

	if fn, ok := methods[computedFieldsMethod]; ok {
		names, _ := returnedStrings(fn)
		for _, name := range names {
			info.Fields = append(info.Fields, FieldInfo{Name: name, Computed: true})
		}
	}

	if len(info.Fields) == 0 && len(info.Relations) == 0 {
		return nil, nil
	}

	return info, nil
}

// relationTarget returns the struct type a relation field points at and
// how the field holds it.
func relationTarget(t types.Type, kind provider.RelationKind) (RelationInfo, error) {
	rel := RelationInfo{Kind: kind, Elem: ElemValue}

	if kind == provider.RelationMany {
		switch tt := t.Underlying().(type) {
		case *types.Slice:
			t = tt.Elem()
			rel.Slice = true
		case *types.Array:
			t = tt.Elem()
		default:
			return rel, fmt.Errorf("many relation needs a slice or array, got %s", t)
		}
	}

	for {
		ptr, ok := t.Underlying().(*types.Pointer)
		if !ok {
			break
		}

		t = ptr.Elem()
		rel.Pointers++
	}

	if rel.Pointers > 0 {
		rel.Elem = ElemPointer
	}

	switch t.Underlying().(type) {
	case *types.Interface:
		rel.Elem = ElemInterface

		return rel, nil
	case *types.Struct:
		named, ok := t.(*types.Named)
		if !ok || named.Obj().Pkg() == nil {
			return rel, nil
		}

		rel.Target = TypeID{PkgPath: named.Obj().Pkg().Path(), Name: named.Obj().Name()}

		return rel, nil
	default:
		return rel, fmt.Errorf("%s relation needs a struct, pointer or interface, got %s", kind, t)
	}
}

// methodDecls indexes method declarations by receiver type and method name.
func methodDecls(files []*ast.File) map[string]map[string]*ast.FuncDecl {
	out := make(map[string]map[string]*ast.FuncDecl)

	for _, file := range files {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv == nil || len(fn.Recv.List) != 1 {
				continue
			}

			recv := receiverName(fn.Recv.List[0].Type)
			if recv == "" {
				continue
			}

			if out[recv] == nil {
				out[recv] = make(map[string]*ast.FuncDecl)
			}

			out[recv][fn.Name.Name] = fn
		}
	}

	return out
}

func receiverName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.StarExpr:
		return receiverName(e.X)
	case *ast.Ident:
		return e.Name
	case *ast.IndexExpr:
		return receiverName(e.X)
	case *ast.IndexListExpr:
		return receiverName(e.X)
	default:
		return ""
	}
}

// returnedStrings reads string literals from a method whose body is a single
// return of a string literal or a []string literal.
func returnedStrings(fn *ast.FuncDecl) ([]string, bool) {
	if fn.Body == nil || len(fn.Body.List) != 1 {
		return nil, false
	}

	ret, ok := fn.Body.List[0].(*ast.ReturnStmt)
	if !ok || len(ret.Results) != 1 {
		return nil, false
	}

	switch res := ret.Results[0].(type) {
	case *ast.BasicLit:
		s, ok := stringLit(res)
		if !ok {
			return nil, false
		}

		return []string{s}, true

	case *ast.CompositeLit:
		out := make([]string, 0, len(res.Elts))
		for _, elt := range res.Elts {
			lit, ok := elt.(*ast.BasicLit)
			if !ok {
				return nil, false
			}

			s, ok := stringLit(lit)
			if !ok {
				return nil, false
			}

			out = append(out, s)
		}

		return out, true
	}

	return nil, false
}

func stringLit(lit *ast.BasicLit) (string, bool) {
	s, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", false
	}

	return s, true
}

// shortQualifier writes package names instead of import paths.
func shortQualifier(pkg *types.Package) string {
	return pkg.Name()
}
