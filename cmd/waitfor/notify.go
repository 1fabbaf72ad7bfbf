package main

import (
	"context"

	"github.com/christophwitzko/waitfor/pkg/logger"
	"github.com/christophwitzko/waitfor/pkg/retry"
	"github.com/coreos/go-systemd/v22/daemon"
)

func notifySystemd(ctx context.Context, log *logger.Logger) error {
	return retry.OnError(ctx, log, "[sd-notify]", func() error {
		sent, err := daemon.SdNotify(false, daemon.SdNotifyReady)
		if err != nil {
			return err
		}
		if !sent {
			log.Debug("NOTIFY_SOCKET not set, skipping systemd notification")
			return nil
		}
		log.Debug("notified systemd")
		return nil
	})
}
