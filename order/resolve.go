package order

import (
	"math"
	"sort"

	"github.com/printhive/sdk/mixin"
)

// rankedRecord pairs a record with its evaluated sort key for one
// resolution. Providers are consulted exactly once per record.
type rankedRecord struct {
	rec    mixin.Record
	rank   int64
	ranked bool
}

// Resolve computes the invocation order for one hook dispatch.
//
// records is the set of plugins registered for the capability being
// dispatched; callContext names the call site (see mixin.CallContext) and is
// passed verbatim to each record's sort key provider.
//
// The returned slice is freshly allocated; records is never mutated. On any
// invalid record the resolution aborts with a *DuplicateIdentifierError or
// *InvalidRankError and no partial order is returned.
func Resolve(records []mixin.Record, callContext string) ([]mixin.Record, error) {
	seen := make(map[string]struct{}, len(records))
	ranked := make([]rankedRecord, 0, len(records))

	for _, rec := range records {
		if _, dup := seen[rec.Identifier]; dup {
			return nil, &DuplicateIdentifierError{Identifier: rec.Identifier}
		}
		seen[rec.Identifier] = struct{}{}

		rr := rankedRecord{rec: rec}
		if rec.SortKey != nil {
			if v := rec.SortKey(callContext); v != nil {
				n, ok := asRank(v)
				if !ok {
					return nil, &InvalidRankError{
						Identifier:  rec.Identifier,
						CallContext: callContext,
						Value:       v,
					}
				}
				rr.rank = n
				rr.ranked = true
			}
		}
		ranked = append(ranked, rr)
	}

	// Plain Slice rather than SliceStable: identifier uniqueness makes the
	// comparator a strict total order, so stability is irrelevant.
	sort.Slice(ranked, func(i, j int) bool {
		return rankedLess(ranked[i], ranked[j])
	})

	out := make([]mixin.Record, len(ranked))
	for i, rr := range ranked {
		out[i] = rr.rec
	}
	return out, nil
}

// rankedLess is the full comparison chain: ranked before unranked, then
// ascending rank, then bundled before third-party, then identifier.
func rankedLess(a, b rankedRecord) bool {
	if a.ranked != b.ranked {
		return a.ranked
	}
	if a.ranked && a.rank != b.rank {
		return a.rank < b.rank
	}
	if a.rec.Bundled != b.rec.Bundled {
		return a.rec.Bundled
	}
	return a.rec.Identifier < b.rec.Identifier
}

// asRank normalizes an integer of any Go kind to int64. Values that are not
// integers, or unsigned values that overflow int64, are rejected.
func asRank(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}
