//go:build !windows

package export

import "os"

// restrictToCurrentUser falls back to a plain POSIX chmod; Windows ACLs
// have no equivalent outside Windows.
func restrictToCurrentUser(path string) error {
	return os.Chmod(path, 0600)
}
