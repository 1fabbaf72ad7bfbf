package netutil

import (
	"context"
	"net"
	"time"
)

// Dialer is satisfied by *net.Dialer.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Probe makes a single TCP connection attempt to address. The connection is
// closed again before Probe returns.
func Probe(ctx context.Context, dialer Dialer, address string, timeout time.Duration) error {
	if dialer == nil {
		dialer = &net.Dialer{}
	}
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	conn, err := dialer.DialContext(attemptCtx, "tcp", address)
	if err != nil {
		return err
	}
	_ = conn.Close()
	return nil
}
