// Package commands defines the estate CLI and wires the agency for
// subcommands.
//
// # Command families
//
//   - property     Add, list, search and remove property listings
//   - client       Register, list and remove clients
//   - transaction  Record deals and track their status
//   - auction      Run auctions and place bids
//
// # Implementation
//
// The root command builds the agency from the environment and loads all
// data files before any subcommand runs; after the subcommand finishes,
// the agency is closed, which saves all four collections back to disk.
// Subcommands hold no business logic of their own.
package commands
