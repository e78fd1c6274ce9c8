// Package token finds placeholder tokens in template text.
//
// A token is an opening bracket, one or more word characters or dots, and a
// closing bracket: "[number]", "[company.name]", "[items.2.price]".
// Empty brackets "[]" and anything containing other characters are plain
// text. A group is closed by "[/name]", which is never itself a token.
package token
