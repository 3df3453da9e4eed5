// Package registry implements the durable, queryable catalog of agents and
// chains: the single source of truth for what execution steps exist.
//
// The catalog is an in-memory insertion-ordered store backed by a
// core.SnapshotStore. Every mutation persists the entire current snapshot;
// persistence is best-effort durable, never transactional: a failed write
// leaves the in-memory state correct and the on-disk state stale until the
// next successful persist.
//
// Bootstrap merges three sources under three distinct policies:
//
//   - built-in presets: add-if-absent (defaults never clobber)
//   - persisted snapshot: overwrite (user state wins over defaults)
//   - preset manifest: add-if-absent (imports never clobber)
//
// This asymmetry is deliberate; preserve it when adding sources.
package registry
