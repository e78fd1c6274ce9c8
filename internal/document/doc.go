// Package document reads object graphs from YAML so that templates can be
// rendered without Go types.
//
//	root: inv-1
//	objects:
//	  - id: inv-1
//	    type: Invoice
//	    fields: {number: "2024-001", total: 12.5}
//	    one:    {client: cl-1}
//	    many:   {items: [it-1, it-2]}
//	  - id: cl-1
//	    type: Client
//	    fields: {number: 1001}
//
// All objects of one type share a schema: the union of the names they use,
// in order of first appearance. A name used as a field by one object and as
// a relation by another, or as a single relation and a collection, is a
// load error, as is a reference to an unknown id. Cycles are allowed.
package document
