// Package placeholders adapts the billing types to provider.Provider
// without reflection. The *_gen.go files are written by placeholder gen.
package placeholders
