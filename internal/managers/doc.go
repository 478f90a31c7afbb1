// Package managers holds the in-memory collections of the agency: one
// manager per entity kind. Managers enforce id uniqueness, offer linear
// lookup and filtering, and expose bulk replacement for the persistence
// layer. Lookups scan linearly; the data sets are small enough that an
// index would buy nothing.
package managers
