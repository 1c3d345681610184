package ntfs

import "github.com/pkg/errors"

// Sentinel errors covering every failure mode the scan pipeline
// distinguishes. They are wrapped with volume-specific context as they
// propagate, but remain distinguishable via errors.Is.
var (
	// ErrNotElevated indicates a volume open failed with access denied,
	// which on Windows means the process isn't running elevated. This is
	// fatal to the whole run.
	ErrNotElevated = errors.New("access denied: journaltrace must be run as Administrator")

	// ErrJournalInactive indicates the USN journal query returned the
	// "journal not active" status for a volume. That volume is skipped,
	// not the whole run.
	ErrJournalInactive = errors.New("USN journal is not active on this volume")

	// ErrVolumeOpenFailed wraps any other volume-open failure; the call
	// site includes the underlying OS error in the message text (it is not
	// itself wrapped, so errors.Is matches only ErrVolumeOpenFailed).
	ErrVolumeOpenFailed = errors.New("unable to open volume")

	// errShortJournalHeader indicates a FSCTL_QUERY_USN_JOURNAL response
	// shorter than the fixed 56-byte structure; treated as a generic I/O
	// failure since it cannot occur against a real NTFS volume.
	errShortJournalHeader = errors.New("USN journal header response too short")

	// ErrNoNtfsVolumes indicates drive discovery found no eligible NTFS
	// fixed volumes at all. Fatal to the run.
	ErrNoNtfsVolumes = errors.New("No NTFS drives found!")
)
