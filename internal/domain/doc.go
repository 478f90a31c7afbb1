// Package domain defines the agency's entity types: the property variants
// (apartment, house, commercial), clients, transactions, auctions and bids.
//
// Every entity is built through a validating constructor; a value that
// fails validation is never created. Entities render themselves as single
// delimited file records; parsing lives in internal/store.
package domain
