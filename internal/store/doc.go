// Package store provides the file-backed durable storage for the
// calendar.
//
// The persisted format is deliberately plain: a JSON array of
// {title, start, end} records, two-space indented, no envelope and no
// version field. The file is rewritten in full on every save.
//
// Writes are atomic: the new contents go to a temp file in the target
// directory, are fsynced, and then renamed over the previous file. A
// crash mid-save leaves either the old complete file or the new one,
// never a torn mix.
//
// An absent file is an empty calendar, not an error. Decode failures are
// reported to the caller; the store never discards data it cannot read.
package store
