package syslog

import "regexp"

// Tokenizer splits one raw line into named syslog fields, or reports
// no-match. No-match is a signal, never an error: the stream driver decides
// whether it matters. The interface exists so an alternate engine (e.g. a
// hand-rolled scanner) can be substituted without touching the rest of the
// pipeline.
type Tokenizer interface {
	Tokenize(line string) (*RawRecord, bool)
}

// Pattern fragments for one RFC 5424 line, in token-layout order. Go's
// regexp has no verbose mode, so the pattern is composed here instead.
// All quantifiers are bounded; there is no backtracking pathology to hit.
const (
	// PRI is 0..191, angle brackets stripped by capturing only the digits.
	priorityPart = `(?:<(?P<priority>\d{1,2}|1[0-8]\d|19[01])>)?`

	versionPart = `(?P<version>\d{1,2})?\s*`

	// The placeholder, or a full date-time with optional fractional seconds
	// (1-6 digits) and a Z or ±HH:MM offset. Second 60 is a leap second.
	timestampPart = `(?P<timestamp>-|[12]\d{3}-(?:0\d|1[012])-(?:[012]\d|3[01])` +
		`T(?:[01]\d|2[0-4]):[0-5]\d:(?:[0-5]\d|60)(?:\.\d{1,6})?` +
		`(?:Z|[+-]\d{2}:\d{2}))\s`

	hostnamePart = `(?P<hostname>\S{1,255})\s`
	appnamePart  = `(?P<appname>\S{1,48})\s`
	procidPart   = `(?P<procid>\S{1,128})\s`
	msgidPart    = `(?P<msgid>\S{1,32})\s`

	// One or more bracket blocks; an escaped character inside a block never
	// terminates it, which permits \] inside quoted parameter values.
	structuredPart = `(?P<structureddata>-|(?:\[(?:\\.|[^\\\]])+\])+)`

	messagePart = `(?:\s(?P<msg>.+))?`
)

var linePattern = regexp.MustCompile(`^` + priorityPart + versionPart +
	timestampPart + hostnamePart + appnamePart + procidPart + msgidPart +
	structuredPart + messagePart)

// regexTokenizer is the default single-pattern engine.
type regexTokenizer struct {
	re *regexp.Regexp
}

// NewTokenizer returns the default regex-based tokenizer.
func NewTokenizer() Tokenizer {
	return &regexTokenizer{re: linePattern}
}

// Tokenize matches one line against the layout. Captured groups whose text
// is the `-` placeholder come back nil.
func (t *regexTokenizer) Tokenize(line string) (*RawRecord, bool) {
	m := t.re.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}

	groups := make(map[string]string, 9)
	for i, name := range t.re.SubexpNames() {
		if name != "" {
			groups[name] = m[i]
		}
	}

	return &RawRecord{
		Priority:       group(groups, "priority"),
		Version:        group(groups, "version"),
		Timestamp:      group(groups, "timestamp"),
		Hostname:       group(groups, "hostname"),
		Appname:        group(groups, "appname"),
		ProcID:         group(groups, "procid"),
		MsgID:          group(groups, "msgid"),
		StructuredData: group(groups, "structureddata"),
		Message:        group(groups, "msg"),
	}, true
}

// group normalizes an absent capture or the wire-format placeholder to nil.
func group(groups map[string]string, name string) *string {
	v := groups[name]
	if v == "" || v == "-" {
		return nil
	}
	return &v
}
