//go:build !windows

package ntfs

// EnumerateMFT always fails on non-Windows builds; FSCTL_ENUM_USN_DATA has
// no equivalent outside Windows.
func EnumerateMFT(handle VolumeHandle, header JournalHeader, cache *PathCache, active func() bool, bufferSize int) error {
	return errUnsupportedPlatform
}
