// Package auditlog keeps an append-only history of import runs next to
// the ledger database.
package auditlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in the import log.
type Entry struct {
	Timestamp  time.Time
	File       string
	AccountID  int64
	Mode       string
	Accepted   int
	Duplicates int
	Failed     int
}

// Header is the CSV header for import-log.csv.
const Header = "timestamp,file,account_id,mode,accepted,duplicates,failed"

const (
	numFields     = 7
	logFile       = "import-log.csv"
	colTimestamp  = 0
	colFile       = 1
	colAccountID  = 2
	colMode       = 3
	colAccepted   = 4
	colDuplicates = 5
	colFailed     = 6
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colFile] = e.File
	row[colAccountID] = strconv.FormatInt(e.AccountID, 10)
	row[colMode] = e.Mode
	row[colAccepted] = strconv.Itoa(e.Accepted)
	row[colDuplicates] = strconv.Itoa(e.Duplicates)
	row[colFailed] = strconv.Itoa(e.Failed)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	accountID, err := strconv.ParseInt(record[colAccountID], 10, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing account_id %q: %w", record[colAccountID], err)
	}

	counts := make([]int, 3)
	for i, col := range []int{colAccepted, colDuplicates, colFailed} {
		n, err := strconv.Atoi(record[col])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing count %q: %w", record[col], err)
		}
		counts[i] = n
	}

	return Entry{
		Timestamp:  ts,
		File:       record[colFile],
		AccountID:  accountID,
		Mode:       record[colMode],
		Accepted:   counts[0],
		Duplicates: counts[1],
		Failed:     counts[2],
	}, nil
}

// Append writes entries to <dir>/import-log.csv, creating the file and
// header if needed.
func Append(dir string, entries []Entry) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating log dir: %w", err)
	}

	path := filepath.Join(dir, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <dir>/import-log.csv. Returns nil if the
// file does not exist.
func Read(dir string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(dir, logFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading import log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
