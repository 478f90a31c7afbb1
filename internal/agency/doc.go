// Package agency composes the four entity managers and the file store
// into a single application facade. The agency is an explicitly
// constructed object with process lifetime: build it once at startup,
// pass it down, and Close it once at shutdown, which persists all state.
package agency
