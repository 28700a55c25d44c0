// Package admx parses Windows Group Policy administrative templates (ADMX
// policy definition files and their ADML localized-resource companions)
// into one consolidated, read-only PolicyCatalog.
//
// # Build Order
//
// A catalog build scans the input root recursively, ingests every resource
// file into the localized string table, then parses every definition file
// against that completed table:
//
//	catalog, err := admx.NewParser(admx.Options{}).Build("/path/to/PolicyDefinitions")
//
// Definition files reference display text as $(string.ID) tokens resolved
// against the table, scoped by the defining file's base name. A reference
// with no match degrades to the literal ID; it never fails the build.
//
// # Cross-File Categories
//
// Category identifiers are scoped per source file by prefixing the file's
// base name. A parent reference written as "targetFile:categoryName"
// resolves against the target file's namespace instead of the referencing
// file's. Category paths are resolved iteratively with cycle detection;
// a dangling reference terminates the path with the raw ID rather than
// failing.
//
// # Failure Isolation
//
// Template sets in the wild ship malformed files. A resource or definition
// file that fails to parse is skipped and reported as a Diagnostic on the
// catalog; one bad file never prevents the rest of the set from being
// ingested. Callers receive the best-effort catalog plus the full list of
// diagnostics.
package admx
