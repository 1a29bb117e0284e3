// Package timeutil computes worked-time text from stored clock values.
package timeutil

import (
	"fmt"
	"time"
)

const clockLayout = "15:04:05"

// WorkedDuration returns the elapsed time between two HH:MM:SS clock
// values as "H:MM:SS" text. It is a pure result-or-absent function: a
// value that does not parse (the NO_CHECKOUT sentinel included) or an
// exit earlier than the entry reports ok=false, never an error or a
// panic. Cross-midnight sessions have no defined semantics here, so a
// negative span counts as a calculation failure.
func WorkedDuration(clockIn, clockOut string) (string, bool) {
	in, err := time.Parse(clockLayout, clockIn)
	if err != nil {
		return "", false
	}
	out, err := time.Parse(clockLayout, clockOut)
	if err != nil {
		return "", false
	}

	d := out.Sub(in)
	if d < 0 {
		return "", false
	}

	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", h, m, s), true
}
