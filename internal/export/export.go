// Package export projects a scan result to CSV, the only export format the
// scanner supports.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/journaltrace/journaltrace/internal/logging"
	"github.com/journaltrace/journaltrace/internal/ntfs"
)

var log = logging.RootLogger.Sublogger("export")

// columns is the exact CSV header row, in order. Changing this slice
// changes the on-disk contract; it must never be reordered.
var columns = []string{
	"USN", "Name", "Path", "Timestamp", "Reason", "IsDirectory", "Attributes",
	"OriginalName", "IsRename", "RenameType", "FileReference", "ParentFileReference", "Details",
}

// Result reports the outcome of an export attempt.
type Result struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename,omitempty"`
	Error    string `json:"error,omitempty"`
}

// DefaultFilename returns the default export name for the given timestamp:
// "journal_trace_YYYYMMDD_HHMMSS.csv".
func DefaultFilename(stamp string) string {
	return fmt.Sprintf("journal_trace_%s.csv", stamp)
}

// Write renders result as CSV to path, then restricts the file's ACL to the
// current user — forensic-evidence hardening against other local accounts
// reading an export.
func Write(result ntfs.ScanResult, path string) Result {
	file, err := os.Create(path)
	if err != nil {
		return Result{Success: false, Error: errors.Wrap(err, "unable to create export file").Error()}
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Warnf("unable to close export file: %v", closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	if err := writer.Write(columns); err != nil {
		return Result{Success: false, Error: errors.Wrap(err, "unable to write CSV header").Error()}
	}
	for _, entry := range result.Entries {
		if err := writer.Write(row(entry)); err != nil {
			return Result{Success: false, Error: errors.Wrap(err, "unable to write CSV row").Error()}
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return Result{Success: false, Error: errors.Wrap(err, "unable to flush CSV writer").Error()}
	}

	if err := restrictToCurrentUser(path); err != nil {
		log.Warnf("unable to restrict permissions on %s: %v", path, err)
	}

	return Result{Success: true, Filename: path}
}

func row(entry ntfs.ChangeEntry) []string {
	timestamp := ""
	if entry.Timestamp != nil {
		timestamp = *entry.Timestamp
	}
	return []string{
		strconv.FormatInt(entry.USN, 10),
		entry.Name,
		entry.Path,
		timestamp,
		entry.Reason,
		strconv.FormatBool(entry.IsDirectory),
		entry.Attributes,
		entry.OriginalName,
		strconv.FormatBool(entry.IsRename),
		string(entry.RenameType),
		strconv.FormatUint(entry.FileReference, 10),
		strconv.FormatUint(entry.ParentFileReference, 10),
		entry.Details,
	}
}
