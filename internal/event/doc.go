// Package event defines the Event value type and its wire codec.
//
// An Event is immutable after construction: fields are unexported and
// reachable only through accessors, so invariants checked by New hold for
// the lifetime of the value. The invariants are a non-blank title and
// start < end at second precision.
//
// Intervals are half-open [start, end). The overlap predicate treats
// touching endpoints as non-overlapping, which is what allows back-to-back
// events on a calendar.
//
// Titles are NFC-normalized at the construction boundary so that equal-
// looking titles compare and sort identically regardless of how the input
// was composed.
package event
