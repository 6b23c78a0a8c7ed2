package syslog

func sp(s string) *string { return &s }

func ip(n int) *int { return &n }

func i64p(n int64) *int64 { return &n }
