//go:build windows

// Package ipc provides the named-pipe transport used between the
// journaltrace daemon and its CLI client.
package ipc

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/user"

	"github.com/Microsoft/go-winio"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/journaltrace/journaltrace/internal/logging"
)

// DialContext connects to the daemon's named pipe, whose name is recorded
// in the file at path by NewListener.
func DialContext(ctx context.Context, path string) (net.Conn, error) {
	pipeNameBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read pipe name")
	}
	return winio.DialPipeContext(ctx, string(pipeNameBytes))
}

// listener wraps a named pipe listener, additionally removing the pipe name
// record file on Close.
type listener struct {
	net.Listener
	path   string
	logger *logging.Logger
}

func (l *listener) Close() error {
	if err := os.Remove(l.path); err != nil {
		if closeErr := l.Listener.Close(); closeErr != nil {
			l.logger.Warnf("unable to close listener: %v", closeErr)
		}
		return errors.Wrap(err, "unable to remove pipe name record")
	}
	return l.Listener.Close()
}

// NewListener creates a named pipe scoped to the current user (via an SDDL
// security descriptor naming their SID) and records its randomly generated
// name in the file at path, so a CLI process can discover it later.
func NewListener(path string, logger *logging.Logger) (net.Listener, error) {
	randomUUID, err := uuid.NewRandom()
	if err != nil {
		return nil, errors.Wrap(err, "unable to generate UUID for named pipe")
	}
	pipeName := fmt.Sprintf(`\\.\pipe\journaltrace-%s`, randomUUID.String())

	currentUser, err := user.Current()
	if err != nil {
		return nil, errors.Wrap(err, "unable to look up current user")
	}

	// D:P(A;;GA;;;<sid>) — no inherited permissions, Generic All for the
	// current user's SID only.
	securityDescriptor := fmt.Sprintf("D:P(A;;GA;;;%s)", currentUser.Uid)
	configuration := &winio.PipeConfig{SecurityDescriptor: securityDescriptor}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if os.IsExist(err) {
			return nil, errors.Wrap(err, "daemon already running (pipe name record exists)")
		}
		return nil, errors.Wrap(err, "unable to create pipe name record")
	}

	var successful bool
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logger.Warnf("unable to close pipe name record file: %v", closeErr)
		}
		if !successful {
			if removeErr := os.Remove(path); removeErr != nil {
				logger.Warnf("unable to remove pipe name record: %v", removeErr)
			}
		}
	}()

	rawListener, err := winio.ListenPipe(pipeName, configuration)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create named pipe")
	}

	if _, err := file.Write([]byte(pipeName)); err != nil {
		return nil, errors.Wrap(err, "unable to write pipe name")
	}

	successful = true
	return &listener{Listener: rawListener, path: path, logger: logger}, nil
}
