// Package wait blocks until TCP endpoints accept connections.
package wait

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/christophwitzko/waitfor/pkg/endpoint"
	"github.com/christophwitzko/waitfor/pkg/logger"
	"github.com/christophwitzko/waitfor/pkg/netutil"
	"github.com/christophwitzko/waitfor/pkg/retry"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultInterval    = 2 * time.Second
	DefaultDialTimeout = time.Second
)

type Options struct {
	// Interval is the pause after a failed connection attempt.
	Interval time.Duration
	// DialTimeout bounds a single connection attempt.
	DialTimeout time.Duration
	// Timeout is the overall deadline. Zero waits forever.
	Timeout time.Duration
	// Dialer defaults to a plain *net.Dialer.
	Dialer netutil.Dialer
}

func (o Options) withDefaults() Options {
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
	if o.DialTimeout <= 0 {
		o.DialTimeout = DefaultDialTimeout
	}
	return o
}

// DeadlineExceededError is returned when an endpoint did not become
// reachable within Options.Timeout.
type DeadlineExceededError struct {
	Endpoint *endpoint.Endpoint
	Timeout  time.Duration
	Attempts int
}

func (e *DeadlineExceededError) Error() string {
	return fmt.Sprintf("%s not reachable after %s (%d attempts)", e.Endpoint, e.Timeout, e.Attempts)
}

func (e *DeadlineExceededError) Unwrap() error {
	return context.DeadlineExceeded
}

func (e *DeadlineExceededError) ExitCode() int {
	return 3
}

// Wait blocks until ep accepts a TCP connection. Every failed attempt is
// treated as "not ready yet" and retried after opts.Interval.
func Wait(ctx context.Context, log *logger.Logger, ep *endpoint.Endpoint, opts Options) error {
	opts = opts.withDefaults()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	address := ep.String()
	attempts, err := retry.Forever(ctx, opts.Interval, func(ctx context.Context) error {
		return netutil.Probe(ctx, opts.Dialer, address, opts.DialTimeout)
	}, func(attempt int, err error) {
		log.Debugf("attempt %d to connect to %s failed: %v", attempt, address, err)
		log.Infof("Waiting for %s...", address)
	})
	if errors.Is(err, context.DeadlineExceeded) {
		return &DeadlineExceededError{Endpoint: ep, Timeout: opts.Timeout, Attempts: attempts}
	}
	if err != nil {
		return err
	}
	log.Infof("%s is up", address)
	return nil
}

// WaitForTarget parses target and waits for it. Parse errors are returned
// before any connection attempt.
func WaitForTarget(ctx context.Context, log *logger.Logger, target string, opts Options) error {
	ep, err := endpoint.Parse(target)
	if err != nil {
		return err
	}
	return Wait(ctx, log, ep, opts)
}

// WaitAll waits for all targets concurrently. All targets are parsed upfront;
// the first fatal error cancels the remaining waits.
func WaitAll(ctx context.Context, log *logger.Logger, targets []string, opts Options) error {
	if len(targets) == 0 {
		return &endpoint.UsageError{Reason: "at least one target is required"}
	}
	endpoints := make([]*endpoint.Endpoint, 0, len(targets))
	for _, target := range targets {
		ep, err := endpoint.Parse(target)
		if err != nil {
			return err
		}
		endpoints = append(endpoints, ep)
	}

	errGroup, groupCtx := errgroup.WithContext(ctx)
	for _, ep := range endpoints {
		ep := ep
		errGroup.Go(func() error {
			return Wait(groupCtx, log, ep, opts)
		})
	}
	return errGroup.Wait()
}
