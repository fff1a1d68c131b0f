package interfaces

import (
	"fmt"
	"io"
)

// ── Notify — dynamic dispatch ─────────────────────────────────────────────────
// item is an interface value: the concrete Summarize is looked up at run time
// through the interface's method table.

// Notify writes "Breaking news! <summary>" as one line to w. The only error is
// the one w itself reports.
func Notify(w io.Writer, item Summary) error {
	_, err := fmt.Fprintf(w, "Breaking news! %s\n", item.Summarize())
	return err
}

// ── NotifyAll[S Summary] — static dispatch ────────────────────────────────────
// S is a type parameter constrained by Summary, so []Tweet can be passed as is
// without first converting it to []Summary. The output is the same as calling
// Notify for each item.

// NotifyAll calls Notify for each item in order and stops at the first error.
func NotifyAll[S Summary](w io.Writer, items []S) error {
	for _, item := range items {
		if err := Notify(w, item); err != nil {
			return fmt.Errorf("notify %q: %w", item.Summarize(), err)
		}
	}
	return nil
}
