//go:build !windows

package ipc

import (
	"context"
	"net"

	"github.com/pkg/errors"

	"github.com/journaltrace/journaltrace/internal/logging"
)

var errUnsupportedPlatform = errors.New("journaltrace: the daemon IPC transport requires Windows named pipes")

// DialContext always fails on non-Windows builds.
func DialContext(ctx context.Context, path string) (net.Conn, error) {
	return nil, errUnsupportedPlatform
}

// NewListener always fails on non-Windows builds.
func NewListener(path string, logger *logging.Logger) (net.Listener, error) {
	return nil, errUnsupportedPlatform
}
