// Package types defines the shared data model for gpokit: registry value
// types and policy entries as they appear in registry-policy (.pol) files,
// and the catalog model produced by parsing ADMX policy definitions.
//
// # Policy Entries
//
// A PolicyEntry is one record of a registry-policy file: a registry key
// path, a value name, a RegType discriminant, and a PolicyValue holding the
// decoded payload. PolicyValue is a closed variant: its Kind is fully
// determined by the entry's RegType, so codec paths can match exhaustively
// instead of sniffing an untyped payload.
//
// # Catalog Model
//
// PolicyCatalog is the aggregate produced by the admx parser: all categories
// and policy definitions merged across a template set, plus summary counts
// and the diagnostics collected for files that were skipped or degraded.
// Catalogs are built once and read-only thereafter.
//
// # Errors and Diagnostics
//
// Fatal conditions use the typed Error with an ErrKind category so callers
// can branch on intent rather than message text. Recoverable, per-file
// conditions are reported as Diagnostic values on the catalog or decoder
// instead of aborting the operation in progress.
package types
