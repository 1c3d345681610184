package scan

import (
	"sync"
	"sync/atomic"

	"github.com/journaltrace/journaltrace/internal/ntfs"
)

// Session holds the state scans run against: a volume handle registry, the
// accumulating result buffer, and a single cancellation flag. Path caches
// are not kept here; the orchestrator builds one per volume and drops it
// when that volume is done. One Session can serve many runs in turn:
// TryStart clears the previous run's results, and finish releases handles.
// Only the orchestrator's worker goroutine appends results; Stop, Result,
// Clear and TryStart may be called from any goroutine.
type Session struct {
	handles *ntfs.VolumeHandleRegistry

	mu      sync.Mutex
	running bool
	entries []ntfs.ChangeEntry
	volumes []ntfs.VolumeSummary

	active int32 // atomic: 1 while a scan is in flight and not cancelled
}

// NewSession creates an idle session ready to run one scan.
func NewSession() *Session {
	return &Session{handles: ntfs.NewVolumeHandleRegistry()}
}

// TryStart marks the session running, returning false if a scan is already
// in flight.
func (s *Session) TryStart() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return false
	}
	s.running = true
	s.entries = nil
	s.volumes = nil
	atomic.StoreInt32(&s.active, 1)
	return true
}

// Stop requests cancellation of any in-flight scan. Safe to call from any
// goroutine at any time, and always succeeds.
func (s *Session) Stop() {
	atomic.StoreInt32(&s.active, 0)
}

// Active reports whether the scan should keep running; it is polled at
// every enumeration/journal-read loop iteration and volume boundary.
func (s *Session) Active() bool {
	return atomic.LoadInt32(&s.active) == 1
}

// finish marks the session idle again; called on every exit path (success,
// error, cancellation) alongside releasing handles.
func (s *Session) finish() {
	s.handles.CloseAll()
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
	atomic.StoreInt32(&s.active, 0)
}

// append adds one enriched entry to the result buffer. Only the
// orchestrator's worker goroutine calls this.
func (s *Session) append(entry ntfs.ChangeEntry) {
	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()
}

// addVolumeSummary records one volume's final summary.
func (s *Session) addVolumeSummary(summary ntfs.VolumeSummary) {
	s.mu.Lock()
	s.volumes = append(s.volumes, summary)
	s.mu.Unlock()
}

// Result returns a snapshot of the current result buffer.
func (s *Session) Result() ntfs.ScanResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]ntfs.ChangeEntry, len(s.entries))
	copy(entries, s.entries)
	volumes := make([]ntfs.VolumeSummary, len(s.volumes))
	copy(volumes, s.volumes)
	return ntfs.ScanResult{Entries: entries, Volumes: volumes}
}

// Clear empties the result buffer.
func (s *Session) Clear() {
	s.mu.Lock()
	s.entries = nil
	s.volumes = nil
	s.mu.Unlock()
}

// EntryCount reports the current size of the result buffer without copying
// it, for cheap progress reporting.
func (s *Session) EntryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
