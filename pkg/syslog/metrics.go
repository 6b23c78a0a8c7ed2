package syslog

import "github.com/VictoriaMetrics/metrics"

// Stream counters, exposed through the default metrics set so host
// applications that already scrape VictoriaMetrics metrics pick them up.
var (
	linesReadTotal       = metrics.NewCounter(`sluice_lines_read_total{format="syslog"}`)
	linesBlankTotal      = metrics.NewCounter(`sluice_lines_blank_total{format="syslog"}`)
	linesUnparsableTotal = metrics.NewCounter(`sluice_lines_unparsable_total{format="syslog"}`)
	lineErrorsTotal      = metrics.NewCounter(`sluice_line_errors_total{format="syslog"}`)
)
