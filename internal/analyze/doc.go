// Package analyze extracts placeholder schemas from Go source without
// running it.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find
// structs carrying placeholder tags and reads them with the same tag parser
// the provider.Registry uses at run time.
//
// Key types:
//   - TypeID: package import path + type name
//   - SchemaInfo: placeholder type name, fields and relations of one struct
//   - FieldInfo / RelationInfo: one exposed name and the Go field behind it
package analyze
