//go:build !windows

package ntfs

// AvailableDrives always fails on non-Windows builds; there is no NTFS
// volume concept to enumerate outside Windows.
func AvailableDrives() ([]DriveInfo, error) {
	return nil, errUnsupportedPlatform
}
