//go:build windows

package ntfs

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// FSCTL device control codes used throughout this package.
const (
	fsctlQueryUSNJournal = 0x000900f4
	fsctlReadUSNJournal  = 0x000900bb
	fsctlEnumUSNData     = 0x000900b3
)

// VolumeHandle is an open raw-device handle to an NTFS volume.
type VolumeHandle = windows.Handle

// VolumeHandleRegistry opens NTFS volumes as raw devices and caches one
// handle per drive letter for the lifetime of a scan session. It is not
// safe for concurrent use from multiple goroutines without external
// synchronization, matching the orchestrator's single-worker-thread model.
type VolumeHandleRegistry struct {
	handles map[byte]VolumeHandle
}

// NewVolumeHandleRegistry creates an empty, scan-local handle registry.
func NewVolumeHandleRegistry() *VolumeHandleRegistry {
	return &VolumeHandleRegistry{handles: make(map[byte]VolumeHandle)}
}

// Open returns the cached handle for driveLetter, opening the volume as a
// raw, read-only, share-all device if it hasn't been opened yet in this
// registry's lifetime.
func (r *VolumeHandleRegistry) Open(driveLetter byte) (VolumeHandle, error) {
	if handle, ok := r.handles[driveLetter]; ok {
		return handle, nil
	}

	path, err := windows.UTF16PtrFromString(fmt.Sprintf(`\\.\%c:`, driveLetter))
	if err != nil {
		return 0, errors.Wrap(err, "unable to encode volume path")
	}

	handle, err := windows.CreateFile(
		path,
		windows.GENERIC_READ,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil,
		windows.OPEN_EXISTING,
		0,
		0,
	)
	if err != nil {
		if errors.Is(err, windows.ERROR_ACCESS_DENIED) {
			return 0, ErrNotElevated
		}
		return 0, errors.Wrapf(ErrVolumeOpenFailed, "drive %c: (%v)", driveLetter, err)
	}

	r.handles[driveLetter] = handle
	return handle, nil
}

// CloseAll releases every handle currently held by the registry. It is
// idempotent and safe to call even if some handles failed to open; it must
// be invoked on every scan exit path (success, error, or cancellation).
func (r *VolumeHandleRegistry) CloseAll() {
	for letter, handle := range r.handles {
		windows.CloseHandle(handle)
		delete(r.handles, letter)
	}
}

// QueryJournal issues FSCTL_QUERY_USN_JOURNAL against an already-open
// volume handle and parses the resulting 56-byte structure. It is
// idempotent and side-effect-free.
func QueryJournal(handle VolumeHandle) (JournalHeader, error) {
	var output [journalHeaderSize]byte
	var bytesReturned uint32

	err := windows.DeviceIoControl(
		handle, fsctlQueryUSNJournal,
		nil, 0,
		&output[0], uint32(len(output)),
		&bytesReturned, nil,
	)
	if err != nil {
		if errors.Is(err, windows.Errno(1179)) { // ERROR_JOURNAL_NOT_ACTIVE
			return JournalHeader{}, ErrJournalInactive
		}
		if errors.Is(err, windows.ERROR_ACCESS_DENIED) {
			return JournalHeader{}, ErrNotElevated
		}
		return JournalHeader{}, errors.Wrap(err, "unable to query USN journal")
	}

	return parseJournalHeader(output[:bytesReturned])
}
