//go:build !windows

package ntfs

// ReadJournal always fails on non-Windows builds; FSCTL_READ_USN_JOURNAL has
// no equivalent outside Windows.
func ReadJournal(handle VolumeHandle, header JournalHeader, drivePrefix string, cache *PathCache, startUsn int64, active func() bool, emit func(ChangeEntry), bufferSize int) error {
	return errUnsupportedPlatform
}
