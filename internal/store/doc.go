// Package store persists the agency's collections as delimited text
// files, one file per entity kind, one record per line.
//
// Loading is best-effort: a malformed line is skipped and loading
// continues, so hand-edited or partially corrupt files degrade gracefully
// instead of aborting. Records that parse are rebuilt through the domain
// restore constructors, which re-apply entity validation.
package store
