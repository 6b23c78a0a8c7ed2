package syslog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_When_FullLineWithStructuredData(t *testing.T) {
	t.Parallel()

	tok := NewTokenizer()
	line := `<165>1 2003-10-11T22:14:15.003Z mymachine.example.com evntslog - ID47 ` +
		`[exampleSDID@32473 iut="3" eventSource="Application" eventID="1011"] An application event log entry`

	raw, ok := tok.Tokenize(line)
	require.True(t, ok)

	assert.Equal(t, sp("165"), raw.Priority)
	assert.Equal(t, sp("1"), raw.Version)
	assert.Equal(t, sp("2003-10-11T22:14:15.003Z"), raw.Timestamp)
	assert.Equal(t, sp("mymachine.example.com"), raw.Hostname)
	assert.Equal(t, sp("evntslog"), raw.Appname)
	assert.Nil(t, raw.ProcID)
	assert.Equal(t, sp("ID47"), raw.MsgID)
	assert.Equal(t, sp(`[exampleSDID@32473 iut="3" eventSource="Application" eventID="1011"]`), raw.StructuredData)
	assert.Equal(t, sp("An application event log entry"), raw.Message)
	assert.Nil(t, raw.Unparsable)
}

func TestTokenize_When_PlaceholderFields(t *testing.T) {
	t.Parallel()

	tok := NewTokenizer()
	line := `<165>1 2003-08-24T05:14:15.000003-07:00 192.0.2.1 myproc 8710 - - %% It's time to make the do-nuts.`

	raw, ok := tok.Tokenize(line)
	require.True(t, ok)

	assert.Equal(t, sp("8710"), raw.ProcID)
	assert.Nil(t, raw.MsgID)
	assert.Nil(t, raw.StructuredData)
	assert.Equal(t, sp("%% It's time to make the do-nuts."), raw.Message)
}

func TestTokenize_When_TimestampIsPlaceholder(t *testing.T) {
	t.Parallel()

	tok := NewTokenizer()
	raw, ok := tok.Tokenize(`- host01 app 123 ID7 -`)
	require.True(t, ok)

	assert.Nil(t, raw.Priority)
	assert.Nil(t, raw.Version)
	assert.Nil(t, raw.Timestamp)
	assert.Equal(t, sp("host01"), raw.Hostname)
	assert.Equal(t, sp("app"), raw.Appname)
	assert.Equal(t, sp("123"), raw.ProcID)
	assert.Equal(t, sp("ID7"), raw.MsgID)
	assert.Nil(t, raw.StructuredData)
	assert.Nil(t, raw.Message)
}

func TestTokenize_When_MessageIsPlaceholder(t *testing.T) {
	t.Parallel()

	tok := NewTokenizer()
	raw, ok := tok.Tokenize(`<34>1 2003-10-11T22:14:15.003Z host su - ID47 - -`)
	require.True(t, ok)
	assert.Nil(t, raw.Message)
}

func TestTokenize_When_LineDoesNotMatchLayout(t *testing.T) {
	t.Parallel()

	tok := NewTokenizer()
	tests := []struct {
		name string
		line string
	}{
		{"garbage", "garbage line with no structure"},
		{"priority_out_of_range", `<192>1 2003-08-24T05:14:15.000003Z host app - - -`},
		{"timestamp_missing_offset", `<165>1 2003-08-24T05:14:15 host app - - -`},
		{"too_many_fractional_digits", `<165>1 2003-08-24T05:14:15.0000031Z host app - - -`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			raw, ok := tok.Tokenize(tt.line)
			assert.False(t, ok)
			assert.Nil(t, raw)
		})
	}
}

func TestTokenize_When_PriorityAtRangeBounds(t *testing.T) {
	t.Parallel()

	tok := NewTokenizer()

	raw, ok := tok.Tokenize(`<0>1 - host app - - -`)
	require.True(t, ok)
	assert.Equal(t, sp("0"), raw.Priority)

	raw, ok = tok.Tokenize(`<191>1 - host app - - -`)
	require.True(t, ok)
	assert.Equal(t, sp("191"), raw.Priority)
}

func TestTokenize_When_EscapedBracketInsideQuotedValue(t *testing.T) {
	t.Parallel()

	tok := NewTokenizer()
	line := `<165>1 - host app 123 ID1 [id@1 msg="a\]b"] trailing message`

	raw, ok := tok.Tokenize(line)
	require.True(t, ok)

	// The escaped bracket must not end the structured-data field early.
	assert.Equal(t, sp(`[id@1 msg="a\]b"]`), raw.StructuredData)
	assert.Equal(t, sp("trailing message"), raw.Message)
}

func TestTokenize_When_MultipleStructuredDataBlocks(t *testing.T) {
	t.Parallel()

	tok := NewTokenizer()
	line := `<165>1 - host app - - [one@1 a="1"][two@2 b="2"] msg`

	raw, ok := tok.Tokenize(line)
	require.True(t, ok)
	assert.Equal(t, sp(`[one@1 a="1"][two@2 b="2"]`), raw.StructuredData)
}

func TestTokenize_When_HostnameAtMaxLength(t *testing.T) {
	t.Parallel()

	tok := NewTokenizer()
	host := strings.Repeat("h", 255)

	raw, ok := tok.Tokenize(`<165>1 - ` + host + ` app - - -`)
	require.True(t, ok)
	assert.Equal(t, sp(host), raw.Hostname)
}
