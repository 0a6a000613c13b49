// Package changelog parses and validates markdown changelogs of the form:
//
//	# Changelog
//
//	## 2.0.0 - 2024-06-01
//	Breaking change.
//
//	## 1.0.0 - 2024-01-01
//	Initial release.
//
// This package implements:
//   - Release heading extraction via the canonical heading pattern
//   - Structural validation (title line, uniqueness, dates, strict descent)
//   - Release notes extraction for a single version
//   - Remote changelog fetching over HTTP
//
// The newest release must appear first, versions must be unique and strictly
// descending as numeric triples, and every date must be a real calendar date.
// Validation short-circuits on the first failure so a diagnostic always points
// at the topmost offending heading.
package changelog
