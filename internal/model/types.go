// Package model defines shared data structures.
package model

// Counter is the success/fail tally recorded for one calendar day.
type Counter struct {
	Success int
	Fail    int
}

// Net returns success minus fail.
func (c Counter) Net() int {
	return c.Success - c.Fail
}

// IsZero reports whether no outcome has been recorded.
func (c Counter) IsZero() bool {
	return c.Success == 0 && c.Fail == 0
}
