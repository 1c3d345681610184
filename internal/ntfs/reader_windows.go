//go:build windows

package ntfs

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// defaultJournalReadBufferSize is the FSCTL_READ_USN_JOURNAL output buffer
// size used when no explicit size is configured: 8 MiB per call, a tuning
// parameter rather than a hard contract.
const defaultJournalReadBufferSize = 8 * 1024 * 1024

// ReadJournal streams every version-2 USN record from startUsn through the
// journal's current end, enriching each one via Enrich and invoking emit.
// startUsn is clamped to header.FirstUsn: a caller-supplied USN older than
// the journal's retained window would otherwise make the first read call
// fail outright rather than simply starting from the oldest record still
// available (see DESIGN.md's Open Question resolutions).
//
// active is polled before each control call so a scan can be cancelled
// cooperatively; it returns true to continue. bufferSize sets the
// FSCTL_READ_USN_JOURNAL output buffer size in bytes; a value <= 0 uses
// defaultJournalReadBufferSize.
func ReadJournal(handle VolumeHandle, header JournalHeader, drivePrefix string, cache *PathCache, startUsn int64, active func() bool, emit func(ChangeEntry), bufferSize int) error {
	if startUsn < header.FirstUsn {
		startUsn = header.FirstUsn
	}
	if bufferSize <= 0 {
		bufferSize = defaultJournalReadBufferSize
	}

	output := make([]byte, bufferSize)
	previousStart := int64(-1)

	for active() {
		input := make([]byte, 40)
		binary.LittleEndian.PutUint64(input[0:8], uint64(startUsn))
		binary.LittleEndian.PutUint32(input[8:12], 0xFFFFFFFF) // ReasonMask: all reasons
		binary.LittleEndian.PutUint32(input[12:16], 0)         // ReturnOnlyOnClose
		binary.LittleEndian.PutUint64(input[16:24], 0)         // Timeout
		binary.LittleEndian.PutUint64(input[24:32], 0)         // BytesToWaitFor
		binary.LittleEndian.PutUint64(input[32:40], header.JournalID)

		var bytesReturned uint32
		err := windows.DeviceIoControl(
			handle, fsctlReadUSNJournal,
			&input[0], uint32(len(input)),
			&output[0], uint32(len(output)),
			&bytesReturned, nil,
		)
		if err != nil {
			if errors.Is(err, errNoMoreData) {
				break
			}
			break
		}

		if bytesReturned <= 8 {
			break
		}

		payload := output[:bytesReturned]
		nextUsn := int64(binary.LittleEndian.Uint64(payload[0:8]))

		ParseJournalRecords(payload[8:], func(raw RawJournalRecord) {
			emit(Enrich(raw, drivePrefix, cache))
		})

		if nextUsn == 0 || nextUsn == previousStart {
			break
		}
		previousStart = startUsn
		startUsn = nextUsn
	}

	return nil
}
