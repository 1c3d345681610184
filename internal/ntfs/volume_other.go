//go:build !windows

package ntfs

import "github.com/pkg/errors"

// errUnsupportedPlatform is returned by every device-control entry point on
// non-Windows builds. The MFT enumerator, journal reader, and raw volume
// handles it backs are all Windows-only NTFS mechanisms; there is no
// meaningful fallback on other platforms.
var errUnsupportedPlatform = errors.New("journaltrace: NTFS journal access requires Windows")

// VolumeHandle is an opaque placeholder on non-Windows builds; no value of
// this type is ever produced.
type VolumeHandle uintptr

// VolumeHandleRegistry mirrors the Windows registry's shape so that callers
// outside this package can compile unconditionally.
type VolumeHandleRegistry struct{}

// NewVolumeHandleRegistry returns a registry whose Open always fails.
func NewVolumeHandleRegistry() *VolumeHandleRegistry {
	return &VolumeHandleRegistry{}
}

// Open always fails on non-Windows builds.
func (r *VolumeHandleRegistry) Open(driveLetter byte) (VolumeHandle, error) {
	return 0, errUnsupportedPlatform
}

// CloseAll is a no-op on non-Windows builds.
func (r *VolumeHandleRegistry) CloseAll() {}

// QueryJournal always fails on non-Windows builds.
func QueryJournal(handle VolumeHandle) (JournalHeader, error) {
	return JournalHeader{}, errUnsupportedPlatform
}
