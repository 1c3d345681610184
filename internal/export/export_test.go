package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/journaltrace/journaltrace/internal/ntfs"
)

func TestWriteRoundTripsHeaderAndRows(t *testing.T) {
	timestamp := "2024-01-15T00:00:00"
	result := ntfs.ScanResult{
		Entries: []ntfs.ChangeEntry{
			{
				USN: 42, Name: "a.txt", Path: `C:\dir\a.txt`, Timestamp: &timestamp,
				Reason: "FILE_CREATE", IsDirectory: false, Attributes: "ARCHIVE",
				OriginalName: "a.txt", IsRename: false, RenameType: ntfs.RenameTypeNone,
				FileReference: 200, ParentFileReference: 100, Details: "",
			},
		},
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	outcome := Write(result, path)
	if !outcome.Success {
		t.Fatalf("Write failed: %s", outcome.Error)
	}
	if outcome.Filename != path {
		t.Fatalf("Filename = %q, want %q", outcome.Filename, path)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("unable to reopen export: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("unable to parse CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2 (header + one row)", len(records))
	}

	wantHeader := []string{
		"USN", "Name", "Path", "Timestamp", "Reason", "IsDirectory", "Attributes",
		"OriginalName", "IsRename", "RenameType", "FileReference", "ParentFileReference", "Details",
	}
	if len(records[0]) != len(wantHeader) {
		t.Fatalf("header has %d columns, want %d", len(records[0]), len(wantHeader))
	}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Fatalf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}

	row := records[1]
	wantRow := []string{"42", "a.txt", `C:\dir\a.txt`, timestamp, "FILE_CREATE", "false", "ARCHIVE", "a.txt", "false", "none", "200", "100", ""}
	for i, want := range wantRow {
		if row[i] != want {
			t.Fatalf("row[%d] = %q, want %q", i, row[i], want)
		}
	}
}

func TestWriteEmptyResultProducesHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	outcome := Write(ntfs.ScanResult{}, path)
	if !outcome.Success {
		t.Fatalf("Write failed: %s", outcome.Error)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unable to read export: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("unable to parse CSV: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1 (header only)", len(records))
	}
}

func TestDefaultFilenameFormat(t *testing.T) {
	got := DefaultFilename("20240115_120000")
	want := "journal_trace_20240115_120000.csv"
	if got != want {
		t.Fatalf("DefaultFilename = %q, want %q", got, want)
	}
}

func TestWriteFailsOnUnwritablePath(t *testing.T) {
	outcome := Write(ntfs.ScanResult{}, filepath.Join(t.TempDir(), "missing-dir", "out.csv"))
	if outcome.Success {
		t.Fatal("expected failure writing to a nonexistent directory")
	}
	if outcome.Error == "" {
		t.Fatal("expected a non-empty error message")
	}
}
