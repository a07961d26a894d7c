package mixin

// SortKeyFunc yields a plugin's ordering preference for a call context.
//
// The return value must be nil (no preference for this context) or an
// integer rank; the call-order resolver rejects anything else. Lower ranks
// sort earlier. A SortKeyFunc must be pure with respect to its argument:
// repeated calls with the same context return the same value within one
// resolution.
type SortKeyFunc func(callContext string) any

// SortKeyProvider is the optional capability an implementation satisfies to
// supply sort keys. RecordOf binds it into the Record; the resolver itself
// never inspects implementations.
type SortKeyProvider interface {
	// SortKey returns nil or an integer rank for the given call context.
	SortKey(callContext string) any
}

// Record is the per-plugin metadata the registry, resolver, and dispatcher
// operate on. One Record exists per implementation eligible for a
// capability.
//
// Records are plain values: the resolver copies them freely and never
// mutates or retains the slice it is handed.
type Record struct {
	// Identifier is the unique key for the plugin. Uniqueness across the
	// set being ordered is an input invariant; the resolver fails on
	// duplicates rather than guessing.
	Identifier string

	// Version is the plugin's semantic version. Informational; it plays no
	// part in call ordering.
	Version string

	// Bundled is true for plugins that ship with the host itself rather
	// than being installed by a user. Bundled plugins win ties against
	// third-party plugins with the same rank.
	Bundled bool

	// Implementation is the plugin instance the dispatcher invokes hooks
	// on. The resolver treats it as opaque cargo.
	Implementation any

	// SortKey is the plugin's ordering preference, or nil if the plugin
	// has none. Modeled as an optional function value rather than a
	// runtime probe of Implementation.
	SortKey SortKeyFunc
}

// HasSortKey reports whether the record carries a sort key provider.
func (r Record) HasSortKey() bool {
	return r.SortKey != nil
}

// RecordOf builds a Record for an implementation. If impl satisfies
// SortKeyProvider its SortKey method is bound into the record; otherwise the
// record has no ordering preference.
func RecordOf(identifier, version string, bundled bool, impl any) Record {
	rec := Record{
		Identifier:     identifier,
		Version:        version,
		Bundled:        bundled,
		Implementation: impl,
	}
	if p, ok := impl.(SortKeyProvider); ok {
		rec.SortKey = p.SortKey
	}
	return rec
}

// StaticSortKey returns a SortKeyFunc backed by a fixed context-to-rank
// table, as declared in a plugin manifest. Contexts missing from the table
// yield no preference.
func StaticSortKey(ranks map[string]int) SortKeyFunc {
	if len(ranks) == 0 {
		return nil
	}
	// Copy so later mutation of the caller's map cannot change ordering.
	table := make(map[string]int, len(ranks))
	for ctx, rank := range ranks {
		table[ctx] = rank
	}
	return func(callContext string) any {
		if rank, ok := table[callContext]; ok {
			return rank
		}
		return nil
	}
}
