package importer

import (
	"fmt"
	"strings"
)

// maxFirstErrors bounds the error digest carried in a report. Failed
// always reflects the true total even when messages are dropped.
const maxFirstErrors = 5

// RowStatus classifies one scanned data row. Exactly one status applies
// per row.
type RowStatus string

const (
	StatusAccepted  RowStatus = "accepted"
	StatusDuplicate RowStatus = "duplicate"
	StatusFailed    RowStatus = "failed"
)

// Record is a normalized candidate ledger row produced from one input line.
type Record struct {
	AccountID   int64
	OccurredOn  string // canonical YYYY-MM-DD
	AmountCents int64
	Description string
}

// RowOutcome is the per-row result of a scan. Record is populated for
// accepted and duplicate rows, Err for failed ones.
type RowOutcome struct {
	Line   int // file line number; the header is line 1
	Status RowStatus
	Record Record
	Err    string
}

// Report summarizes a single scan pass. It is built fresh per scan and
// never merges outcomes across invocations.
type Report struct {
	Accepted    int
	Duplicates  int
	Failed      int
	FirstErrors []string     // at most maxFirstErrors messages, in row order
	Outcomes    []RowOutcome // in input-row order
}

func buildReport(outcomes []RowOutcome) *Report {
	r := &Report{Outcomes: outcomes}
	for _, o := range outcomes {
		switch o.Status {
		case StatusAccepted:
			r.Accepted++
		case StatusDuplicate:
			r.Duplicates++
		case StatusFailed:
			r.Failed++
			if len(r.FirstErrors) < maxFirstErrors {
				r.FirstErrors = append(r.FirstErrors, o.Err)
			}
		}
	}
	return r
}

// Summary renders the one-line digest shown after a scan.
func (r *Report) Summary() string {
	msg := fmt.Sprintf("%d accepted, %d duplicates, %d failed", r.Accepted, r.Duplicates, r.Failed)
	if len(r.FirstErrors) > 0 {
		msg += "; first errors: " + strings.Join(r.FirstErrors, " | ")
	}
	return msg
}
