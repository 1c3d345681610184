//go:build windows

package export

import (
	"os"

	"github.com/hectane/go-acl"
)

// restrictToCurrentUser rewrites path's ACL to grant access only to its
// owner. CSV exports are forensic evidence and should not be left
// world-readable.
func restrictToCurrentUser(path string) error {
	return acl.Chmod(path, os.FileMode(0600))
}
