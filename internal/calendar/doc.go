// Package calendar implements the event store: the single owner of the
// event collection and the only component that touches persisted state.
//
// OWNERSHIP:
//
// A Calendar is constructed explicitly and holds no package-level state,
// so multiple instances (production, tests) never interfere. Queries
// return copies; callers cannot reach the owned collection.
//
// DETERMINISM:
//
// The collection is kept sorted by (start, end, title). Every query
// returns events in that order, and the conflict scan reports the
// chronologically first overlapping event, so error messages and golden
// output are stable run to run. Wall-clock time and event identifiers
// enter only through the injected clock and IDSource.
//
// CONSISTENCY:
//
// All operations are synchronous and the calling model is single-
// threaded: one external caller issues one operation at a time. Mutating
// operations persist before returning and roll back the in-memory change
// when persistence fails, so memory and file never diverge and every
// mutation is all-or-nothing.
//
// Conflict detection is a linear scan over the sorted collection rather
// than an interval index; the store is sized for personal calendars
// (tens to low thousands of events).
package calendar
