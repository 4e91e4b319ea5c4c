package port

import "context"

// ResourceStore is the external resource-database tooling the plugin
// persists font settings through.
//
// LoadBase and RederiveBase are best-effort bookends around Merge; Merge is
// the write that must not fail silently.
type ResourceStore interface {
	// LoadBase reloads the live database from the configured base file.
	LoadBase(ctx context.Context) error

	// Merge streams "name: value" lines into the live database. Any open,
	// write, or close failure is returned and must be treated as fatal by
	// the caller.
	Merge(ctx context.Context, lines []string) error

	// RederiveBase rewrites the base file from the live database.
	RederiveBase(ctx context.Context) error
}
