//go:build windows

package ntfs

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"golang.org/x/sys/windows"
)

const driveTypeFixed = 3 // DRIVE_FIXED

// AvailableDrives enumerates local fixed drives and returns the NTFS ones.
// Non-NTFS and non-fixed volumes (removable, network, CD-ROM, RAM disk) are
// silently excluded rather than reported with isReady=false.
func AvailableDrives() ([]DriveInfo, error) {
	mask, err := windows.GetLogicalDrives()
	if err != nil {
		return nil, err
	}

	var drives []DriveInfo
	for i := 0; i < 26; i++ {
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		letter := byte('A' + i)
		info, ok := inspectDrive(letter)
		if ok {
			drives = append(drives, info)
		}
	}
	return drives, nil
}

func inspectDrive(letter byte) (DriveInfo, bool) {
	root := fmt.Sprintf(`%c:\`, letter)
	rootPtr, err := windows.UTF16PtrFromString(root)
	if err != nil {
		return DriveInfo{}, false
	}

	if windows.GetDriveType(rootPtr) != driveTypeFixed {
		return DriveInfo{}, false
	}

	var volumeName [windows.MAX_PATH + 1]uint16
	var fileSystemName [windows.MAX_PATH + 1]uint16
	var serialNumber, maxComponentLength, fileSystemFlags uint32

	err = windows.GetVolumeInformation(
		rootPtr,
		&volumeName[0], uint32(len(volumeName)),
		&serialNumber,
		&maxComponentLength,
		&fileSystemFlags,
		&fileSystemName[0], uint32(len(fileSystemName)),
	)
	if err != nil {
		return DriveInfo{}, false
	}

	fileSystem := windows.UTF16ToString(fileSystemName[:])
	if fileSystem != "NTFS" {
		return DriveInfo{}, false
	}
	label := windows.UTF16ToString(volumeName[:])
	if label == "" {
		label = fmt.Sprintf("Local Disk (%c:)", letter)
	}

	var freeBytesAvailable, totalBytes, totalFreeBytes uint64
	if err := windows.GetDiskFreeSpaceEx(rootPtr, &freeBytesAvailable, &totalBytes, &totalFreeBytes); err != nil {
		return DriveInfo{}, false
	}

	return DriveInfo{
		Letter:    string(letter),
		Name:      fmt.Sprintf("%c:", letter),
		Label:     label,
		Format:    "NTFS",
		Root:      root,
		TotalFree: humanize.IBytes(totalFreeBytes),
		TotalSize: humanize.IBytes(totalBytes),
		Type:      "Fixed",
		IsReady:   true,
	}, true
}
