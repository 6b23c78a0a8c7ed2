package syslog

import "github.com/treeline-io/sluice/pkg/parse"

// RawRecord holds the named captures of one tokenized line with placeholder
// (`-`) fields normalized to nil. Priority is stored without its angle
// brackets. A line that did not match the layout has only Unparsable set;
// all records are constructed fresh per line and never mutated afterwards.
type RawRecord struct {
	Priority       *string `json:"priority"`
	Version        *string `json:"version"`
	Timestamp      *string `json:"timestamp"`
	Hostname       *string `json:"hostname"`
	Appname        *string `json:"appname"`
	ProcID         *string `json:"proc_id"`
	MsgID          *string `json:"msg_id"`
	StructuredData *string `json:"structured_data"`
	Message        *string `json:"message"`
	Unparsable     *string `json:"unparsable,omitempty"`
}

// StructuredEntry is one bracket-delimited block of the structured-data
// section. Identity is nil when the block carries no identity token.
// Duplicate parameter keys within one block are last-write-wins.
type StructuredEntry struct {
	Identity   *string           `json:"identity"`
	Parameters map[string]string `json:"parameters"`
}

// Record is the normalized output schema. Integer fields are nil, never
// zero, when absent or non-numeric: a sentinel zero would be
// indistinguishable from an explicit priority of 0. A record has either the
// parsed field set or only Unparsable, never both.
type Record struct {
	Priority          *int              `json:"priority"`
	Version           *int              `json:"version"`
	Timestamp         *string           `json:"timestamp"`
	TimestampEpoch    *int64            `json:"timestamp_epoch"`
	TimestampEpochUTC *int64            `json:"timestamp_epoch_utc"`
	Hostname          *string           `json:"hostname"`
	Appname           *string           `json:"appname"`
	ProcID            *int              `json:"proc_id"`
	MsgID             *string           `json:"msg_id"`
	StructuredData    []StructuredEntry `json:"structured_data"`
	Message           *string           `json:"message"`
	Unparsable        *string           `json:"unparsable,omitempty"`
}

// Result is one emitted stream item: the raw or normalized record depending
// on the stream's output mode, plus the outcome envelope in tolerant mode.
// A tolerant-mode failure carries only Meta.
type Result struct {
	Raw    *RawRecord  `json:"raw,omitempty"`
	Record *Record     `json:"record,omitempty"`
	Meta   *parse.Meta `json:"_meta,omitempty"`
}
