package main

import (
	"testing"

	"github.com/journaltrace/journaltrace/internal/ntfs"
)

func TestFilterEntriesNoPatternsReturnsAllUnmodified(t *testing.T) {
	entries := []ntfs.ChangeEntry{{Path: `C:\a.txt`}, {Path: `C:\b.txt`}}
	got, err := filterEntries(entries, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
}

func TestFilterEntriesExcludesGlobMatches(t *testing.T) {
	entries := []ntfs.ChangeEntry{
		{Path: `C:\Windows\Temp\a.log`},
		{Path: `C:\Users\me\doc.txt`},
		{Path: `C:\Windows\System32\b.dll`},
	}
	got, err := filterEntries(entries, []string{`C:\Windows\**`})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Path != `C:\Users\me\doc.txt` {
		t.Fatalf("got %+v, want only the Users entry", got)
	}
}

func TestFilterEntriesMultiplePatternsAreOred(t *testing.T) {
	entries := []ntfs.ChangeEntry{
		{Path: `C:\a\1.tmp`},
		{Path: `C:\b\2.log`},
		{Path: `C:\c\3.txt`},
	}
	got, err := filterEntries(entries, []string{`C:\a\**`, `C:\b\**`})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Path != `C:\c\3.txt` {
		t.Fatalf("got %+v, want only the c entry", got)
	}
}

func TestFilterEntriesInvalidPatternReturnsError(t *testing.T) {
	entries := []ntfs.ChangeEntry{{Path: `C:\a.txt`}}
	if _, err := filterEntries(entries, []string{"["}); err == nil {
		t.Fatal("expected an error for a malformed glob pattern")
	}
}
