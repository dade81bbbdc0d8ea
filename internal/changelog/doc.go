// Package changelog derives semantic versions from a structured record of
// dated changes and releases.
//
// This package implements:
//   - changelog document parsing and validation (JSON or YAML)
//   - chronological partitioning of changes into release-bounded groups
//   - severity-driven version derivation per group
//   - line-oriented rendering for terminal display
//   - initial document scaffolding for the init command
//
// The document is the single source of truth: the full version history is
// recomputed from it on every run, and no derived state is ever persisted.
package changelog
