// Package expand substitutes bracketed placeholders in templates with
// values read from a provider.Provider.
//
// A template is scanned once from left to right:
//
//	[number]                    field of the provider
//	[company.user.email]        path through single relations
//	[clients.2.number]          1-based index into a collection
//	[clients]...[/clients]      body repeated once per collection item
//	[client.number]             a leading segment naming the provider's own
//	                            type is dropped
//
// Unresolvable placeholders never fail the call. They are replaced inline
// with "UNKNOWN for <TypeName>: <path>", an unclosed group with
// "END MISSING FOR <name>", and absent relations with the empty string.
// The only error returned is ErrDepthExceeded, when relation traversal
// nests deeper than the configured limit (see WithMaxDepth).
//
// Values substituted into the output are not scanned again.
package expand
