//go:build windows

package ntfs

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// defaultMFTEnumBufferSize is the FSCTL_ENUM_USN_DATA output buffer size
// used when no explicit size is configured: 4 MiB per call, a tuning
// parameter rather than a hard contract.
const defaultMFTEnumBufferSize = 4 * 1024 * 1024

// errNoMoreData is ERROR_HANDLE_EOF (38): the normal, successful end of an
// FSCTL_ENUM_USN_DATA/FSCTL_READ_USN_JOURNAL stream, not a failure.
const errNoMoreData = windows.Errno(38)

// EnumerateMFT streams every in-use MFT record on the volume behind handle
// into cache's parent map. active is polled before each control call so a
// scan can be cancelled cooperatively; it returns true to continue.
// bufferSize sets the FSCTL_ENUM_USN_DATA output buffer size in bytes; a
// value <= 0 uses defaultMFTEnumBufferSize.
func EnumerateMFT(handle VolumeHandle, header JournalHeader, cache *PathCache, active func() bool, bufferSize int) error {
	if bufferSize <= 0 {
		bufferSize = defaultMFTEnumBufferSize
	}
	output := make([]byte, bufferSize)
	startIndex := uint64(0)

	for active() {
		input := make([]byte, 24)
		binary.LittleEndian.PutUint64(input[0:8], startIndex)
		binary.LittleEndian.PutUint64(input[8:16], 0) // LowUsn
		binary.LittleEndian.PutUint64(input[16:24], uint64(header.NextUsn))

		var bytesReturned uint32
		err := windows.DeviceIoControl(
			handle, fsctlEnumUSNData,
			&input[0], uint32(len(input)),
			&output[0], uint32(len(output)),
			&bytesReturned, nil,
		)
		if err != nil {
			if errors.Is(err, errNoMoreData) {
				break
			}
			// Any other non-success is treated as end-of-stream for this
			// phase; partial results are kept.
			break
		}

		if bytesReturned <= 8 {
			break
		}

		payload := output[:bytesReturned]
		nextIndex := binary.LittleEndian.Uint64(payload[0:8])
		ParseMFTRecords(payload[8:], cache)

		if nextIndex == 0 {
			break
		}
		startIndex = nextIndex
	}

	return nil
}
