package scan

import (
	"testing"

	"github.com/journaltrace/journaltrace/internal/ntfs"
)

func TestSessionTryStartRejectsConcurrentScan(t *testing.T) {
	session := NewSession()
	if !session.TryStart() {
		t.Fatal("first TryStart should succeed")
	}
	if session.TryStart() {
		t.Fatal("second TryStart should fail while a scan is in flight")
	}
	session.finish()
	if !session.TryStart() {
		t.Fatal("TryStart should succeed again once the session is idle")
	}
}

func TestSessionStopIsAlwaysSafe(t *testing.T) {
	session := NewSession()
	session.Stop() // no scan in flight; must not panic
	if session.Active() {
		t.Fatal("Active should be false before any scan starts")
	}

	session.TryStart()
	if !session.Active() {
		t.Fatal("Active should be true immediately after TryStart")
	}
	session.Stop()
	if session.Active() {
		t.Fatal("Active should be false after Stop")
	}
}

func TestSessionResultSnapshotIsIndependentCopy(t *testing.T) {
	session := NewSession()
	session.TryStart()
	session.append(ntfs.ChangeEntry{Name: "a.txt"})

	snapshot := session.Result()
	session.append(ntfs.ChangeEntry{Name: "b.txt"})

	if len(snapshot.Entries) != 1 {
		t.Fatalf("snapshot mutated after later append: len = %d, want 1", len(snapshot.Entries))
	}
	if session.EntryCount() != 2 {
		t.Fatalf("EntryCount() = %d, want 2", session.EntryCount())
	}
}

func TestSessionClearEmptiesResultBuffer(t *testing.T) {
	session := NewSession()
	session.TryStart()
	session.append(ntfs.ChangeEntry{Name: "a.txt"})
	session.addVolumeSummary(ntfs.VolumeSummary{Drive: "C:"})

	session.Clear()

	result := session.Result()
	if len(result.Entries) != 0 || len(result.Volumes) != 0 {
		t.Fatalf("Clear left data behind: %+v", result)
	}
}

func TestSessionTryStartResetsPriorResults(t *testing.T) {
	session := NewSession()
	session.TryStart()
	session.append(ntfs.ChangeEntry{Name: "stale.txt"})
	session.finish()

	session.TryStart()
	if session.EntryCount() != 0 {
		t.Fatalf("EntryCount() = %d after restart, want 0 (stale results must not carry over)", session.EntryCount())
	}
}
