package scan

import (
	"encoding/json"
	"fmt"

	"github.com/journaltrace/journaltrace/internal/config"
	"github.com/journaltrace/journaltrace/internal/logging"
	"github.com/journaltrace/journaltrace/internal/ntfs"
	"github.com/pkg/errors"
)

var log = logging.RootLogger.Sublogger("scan")

// Run drives one complete scan across drives and reports progress and
// results through sink. It never returns until the run is complete
// (successfully, with per-volume errors, or cancelled via session.Stop);
// callers that want async behavior run it in its own goroutine. cfg supplies
// the MFT/journal buffer sizes and the path-resolution depth guard for every
// volume scanned.
func Run(session *Session, sink Sink, drives []ntfs.DriveInfo, cfg config.Config) {
	defer session.finish()

	sink.ClearAllResults()
	log.Debugf("scan starting across %d drive(s)", len(drives))

	if len(drives) == 0 {
		sink.ShowError(ntfs.ErrNoNtfsVolumes.Error())
		sink.ScanComplete()
		return
	}

	for _, drive := range drives {
		if !session.Active() {
			log.Debugf("scan cancelled before drive %s", drive.Name)
			break
		}
		scanVolume(session, sink, drive, cfg)
	}

	result := session.Result()
	payload, err := json.Marshal(result.Entries)
	if err != nil {
		sink.ShowError(errors.Wrap(err, "unable to serialize scan results").Error())
	} else {
		sink.LoadAllEntries(string(payload))
	}

	sink.UpdateStatus(summaryMessage(result.Entries), 100, len(result.Entries), "", "")
	sink.ScanComplete()
}

func scanVolume(session *Session, sink Sink, drive ntfs.DriveInfo, cfg config.Config) {
	letter := drive.Letter[0]
	drivePrefix := fmt.Sprintf("%c:\\", letter)

	handle, err := session.handles.Open(letter)
	if err != nil {
		if errors.Is(err, ntfs.ErrNotElevated) {
			sink.ShowError(err.Error())
			session.Stop()
			return
		}
		sink.ShowError(fmt.Sprintf("%c: %v", letter, err))
		return
	}

	header, err := ntfs.QueryJournal(handle)
	if err != nil {
		if errors.Is(err, ntfs.ErrJournalInactive) {
			sink.ShowError(fmt.Sprintf("%c: journal is not active, skipping", letter))
			return
		}
		sink.ShowError(fmt.Sprintf("%c: %v", letter, err))
		return
	}

	sink.UpdateStatus(fmt.Sprintf("Indexing %c:", letter), 10, session.EntryCount(), "", "")
	cache := ntfs.NewPathCache(letter, cfg.MaxResolutionDepth)
	if err := ntfs.EnumerateMFT(handle, header, cache, session.Active, int(cfg.MFTBufferSize)); err != nil {
		sink.ShowError(fmt.Sprintf("%c: %v", letter, err))
		return
	}
	cache.ResolveAll()
	sink.UpdateStatus(fmt.Sprintf("Indexing %c:", letter), 50, session.EntryCount(), "", "")

	if !session.Active() {
		return
	}

	sink.UpdateStatus(fmt.Sprintf("Reading %c:", letter), 50, session.EntryCount(), "", "")
	entriesBefore := session.EntryCount()
	err = ntfs.ReadJournal(handle, header, drivePrefix, cache, 0, session.Active, func(entry ntfs.ChangeEntry) {
		session.append(entry)
	}, int(cfg.JournalBufferSize))
	if err != nil {
		sink.ShowError(fmt.Sprintf("%c: %v", letter, err))
	}
	sink.UpdateStatus(fmt.Sprintf("Reading %c:", letter), 90, session.EntryCount(), "", "")

	session.addVolumeSummary(ntfs.VolumeSummary{
		Drive:       drive.Name,
		FirstUsn:    header.FirstUsn,
		NextUsn:     header.NextUsn,
		MaxUsn:      header.MaxUsn,
		JournalSize: header.MaxSize,
		EntryCount:  session.EntryCount() - entriesBefore,
	})
}

// summaryMessage builds the terminal status message: the earliest
// timestamp across all entries (as YYYY-MM-DD) and unique file/directory
// counts.
func summaryMessage(entries []ntfs.ChangeEntry) string {
	if len(entries) == 0 {
		return "Scan complete: 0 entries"
	}

	var earliest *string
	files := make(map[uint64]struct{})
	dirs := make(map[uint64]struct{})

	for _, entry := range entries {
		if entry.Timestamp != nil && (earliest == nil || *entry.Timestamp < *earliest) {
			earliest = entry.Timestamp
		}
		if entry.IsDirectory {
			dirs[entry.FileReference] = struct{}{}
		} else {
			files[entry.FileReference] = struct{}{}
		}
	}

	earliestDate := "unknown"
	if earliest != nil && len(*earliest) >= 10 {
		earliestDate = (*earliest)[:10]
	}

	return fmt.Sprintf("Scan complete: %d entries, %d files, %d directories, earliest change %s",
		len(entries), len(files), len(dirs), earliestDate)
}
