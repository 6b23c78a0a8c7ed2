// Package syslog converts RFC 5424 syslog lines into normalized structured
// records.
//
// Input is consumed one line at a time through a parse.LineSource and records
// are produced lazily through a pull-based Stream: no work happens ahead of
// what the consumer has requested, and at most one line's intermediate state
// is live at a time.
//
// A line that does not match the expected layout is never an error; it
// surfaces as a record whose Unparsable field holds the original line, plus
// one advisory warning on the diagnostics writer. Malformed-but-plausible
// lines are matched best-effort; this package does not validate strict RFC
// 5424 conformance.
//
// The TimestampEpoch field is naive: it interprets the timestamp's wall
// clock against the configured location (the local system clock by default).
// TimestampEpochUTC is timezone-aware and populated only when the line's
// offset is literally Z or +00:00.
package syslog
