// Package daemonrpc exposes the daemon's control API (getAvailableDrives,
// startScan, stopScan, getResults, clearResults, exportResults) as a
// net/rpc service riding the daemon's named pipe listener, plus a narrow
// GetStatus addition that lets the CLI poll progress in place of a live
// push channel.
package daemonrpc

import (
	"sync"
	"time"

	"github.com/journaltrace/journaltrace/internal/config"
	"github.com/journaltrace/journaltrace/internal/export"
	"github.com/journaltrace/journaltrace/internal/logging"
	"github.com/journaltrace/journaltrace/internal/ntfs"
	"github.com/journaltrace/journaltrace/internal/scan"
)

// maxStatusEvents bounds the in-memory status ring so a long scan against a
// busy volume can't grow it without limit; the oldest events are dropped.
const maxStatusEvents = 4096

// StatusEvent is one recorded Sink callback, numbered by its position in
// the daemon's lifetime so CLI pollers can ask for only what's new.
type StatusEvent struct {
	Sequence      int
	Message       string
	Percent       int
	EntryCount    int
	Secondary     string
	FilesOverDirs string
	IsError       bool
	Complete      bool
}

// daemonSink adapts scan.Sink onto the status-event ring plus the daemon's
// own log, standing in for a live progress UI.
type daemonSink struct {
	log    *logging.Logger
	mu     sync.Mutex
	events []StatusEvent
	next   int
}

func newDaemonSink(log *logging.Logger) *daemonSink {
	return &daemonSink{log: log}
}

func (s *daemonSink) record(event StatusEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	event.Sequence = s.next
	s.next++
	s.events = append(s.events, event)
	if len(s.events) > maxStatusEvents {
		s.events = s.events[len(s.events)-maxStatusEvents:]
	}
}

func (s *daemonSink) since(sequence int) []StatusEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []StatusEvent
	for _, event := range s.events {
		if event.Sequence >= sequence {
			out = append(out, event)
		}
	}
	return out
}

func (s *daemonSink) ClearAllResults() {
	s.log.Debugf("clearAllResults")
	s.record(StatusEvent{Message: "cleared"})
}

func (s *daemonSink) UpdateStatus(message string, percent, entryCount int, secondary, filesOverDirs string) {
	s.log.Debugf("%s (%d%%, %d entries)", message, percent, entryCount)
	s.record(StatusEvent{
		Message:       message,
		Percent:       percent,
		EntryCount:    entryCount,
		Secondary:     secondary,
		FilesOverDirs: filesOverDirs,
	})
}

func (s *daemonSink) ShowError(message string) {
	s.log.Warnf("%s", message)
	s.record(StatusEvent{Message: message, IsError: true})
}

func (s *daemonSink) LoadAllEntries(entriesJSON string) {
	s.log.Debugf("loadAllEntries (%d bytes)", len(entriesJSON))
}

func (s *daemonSink) ScanComplete() {
	s.log.Debugf("scanComplete")
	s.record(StatusEvent{Message: "scan complete", Complete: true})
}

// Service is the net/rpc receiver registered against the daemon's named
// pipe listener. One Service holds exactly one scan Session.
type Service struct {
	session        *scan.Session
	sink           *daemonSink
	log            *logging.Logger
	cfg            config.Config
	discoverDrives func() ([]ntfs.DriveInfo, error)

	// Termination is closed when a client calls Terminate, signaling the
	// daemon's run loop to shut down.
	Termination chan struct{}
}

// NewService creates a daemon RPC service around a fresh scan session. cfg
// supplies the buffer sizes and path-resolution depth guard every scan run
// through this service uses.
func NewService(log *logging.Logger, cfg config.Config) *Service {
	return &Service{
		session:        scan.NewSession(),
		sink:           newDaemonSink(log.Sublogger("sink")),
		log:            log,
		cfg:            cfg,
		discoverDrives: ntfs.AvailableDrives,
		Termination:    make(chan struct{}),
	}
}

// Terminate requests that the daemon process exit, used by
// `journaltrace daemon stop`.
func (s *Service) Terminate(_ *struct{}, reply *bool) error {
	select {
	case <-s.Termination:
	default:
		close(s.Termination)
	}
	*reply = true
	return nil
}

// GetAvailableDrives lists the eligible NTFS fixed volumes discovered on
// this machine.
func (s *Service) GetAvailableDrives(_ *struct{}, reply *[]ntfs.DriveInfo) error {
	drives, err := s.discoverDrives()
	if err != nil {
		return err
	}
	*reply = drives
	return nil
}

// StartScan begins a scan in the background, returning false if one is
// already in flight.
func (s *Service) StartScan(_ *struct{}, reply *bool) error {
	if !s.session.TryStart() {
		*reply = false
		return nil
	}

	go func() {
		drives, err := s.discoverDrives()
		if err != nil {
			s.log.Warnf("drive discovery failed: %v", err)
			drives = nil
		}
		scan.Run(s.session, s.sink, drives, s.cfg)
	}()
	*reply = true
	return nil
}

// StopScan cancels any in-flight scan.
func (s *Service) StopScan(_ *struct{}, reply *bool) error {
	s.session.Stop()
	*reply = true
	return nil
}

// GetResults returns a snapshot of the current result buffer.
func (s *Service) GetResults(_ *struct{}, reply *ntfs.ScanResult) error {
	*reply = s.session.Result()
	return nil
}

// ClearResults empties the result buffer.
func (s *Service) ClearResults(_ *struct{}, reply *bool) error {
	s.session.Clear()
	*reply = true
	return nil
}

// ExportArgs carries the optional explicit output path for ExportResults;
// an empty Path means "use the default timestamped filename".
type ExportArgs struct {
	Path string
}

// ExportResults writes the current result buffer to a CSV file.
func (s *Service) ExportResults(args *ExportArgs, reply *export.Result) error {
	path := args.Path
	if path == "" {
		path = export.DefaultFilename(time.Now().Format("20060102_150405"))
	}
	*reply = export.Write(s.session.Result(), path)
	return nil
}

// StatusArgs requests every retained status event whose Sequence is at
// least Since. Pollers pass the last Sequence they saw plus one, so events
// already delivered are not repeated.
type StatusArgs struct {
	Since int
}

// StatusReply carries the requested events.
type StatusReply struct {
	Events []StatusEvent
}

// GetStatus lets the CLI poll scan progress, standing in for a live
// callback stream that has no RPC equivalent without a bidirectional
// channel.
func (s *Service) GetStatus(args *StatusArgs, reply *StatusReply) error {
	reply.Events = s.sink.since(args.Since)
	return nil
}

// ServiceName is the name net/rpc registers this service under, used by
// both the daemon (rpc.RegisterName) and CLI (client.Call("<name>.Method",
// ...)) to agree on the same string without hardcoding it twice.
const ServiceName = "JournalTrace"
