package main

import (
	"context"
	"net/rpc"
	"time"

	"github.com/pkg/errors"

	"github.com/journaltrace/journaltrace/internal/ipc"
)

// dialDaemon connects to the running daemon's named pipe and wraps it as a
// net/rpc client using the gob codec (net/rpc's default); see DESIGN.md
// for why this rides net/rpc rather than a protobuf/gRPC transport.
func dialDaemon() (*rpc.Client, error) {
	path, err := pipeRecordPath()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := ipc.DialContext(ctx, path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect to journaltrace daemon (is it running? try `journaltrace daemon start`)")
	}
	return rpc.NewClient(conn), nil
}
