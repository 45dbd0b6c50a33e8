package auditlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntry() Entry {
	return Entry{
		Timestamp:  time.Date(2025, 1, 22, 9, 30, 0, 0, time.UTC),
		File:       "statement.csv",
		AccountID:  1,
		Mode:       "commit",
		Accepted:   4,
		Duplicates: 1,
		Failed:     0,
	}
}

func TestAppend_CreatesFileWithHeader(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{sampleEntry()}))

	data, err := os.ReadFile(filepath.Join(dir, "import-log.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, Header, lines[0])
}

func TestAppend_DoesNotRepeatHeader(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{sampleEntry()}))
	require.NoError(t, Append(dir, []Entry{sampleEntry()}))

	data, err := os.ReadFile(filepath.Join(dir, "import-log.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 3)
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := sampleEntry()
	require.NoError(t, Append(dir, []Entry{want}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, want, entries[0])
}

func TestRead_MissingFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestUnmarshalEntry_WrongFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"only", "four", "fields", "here"})
	assert.Error(t, err)
}

func TestUnmarshalEntry_BadTimestamp(t *testing.T) {
	row := MarshalEntry(sampleEntry())
	row[0] = "yesterday"
	_, err := UnmarshalEntry(row)
	assert.Error(t, err)
}
