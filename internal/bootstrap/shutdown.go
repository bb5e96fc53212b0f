package bootstrap

import (
	"context"
	"log/slog"
)

// GracefulShutdown stops components in reverse start order:
// keep-alive loop, liveness server, then the Discord session.
// Errors are logged and never stop the sequence.
func GracefulShutdown(ctx context.Context, c *Components) {
	if c == nil {
		return
	}
	slog.Info(LogMsgShuttingDown)

	if c.Pinger != nil {
		c.Pinger.Stop()
	}

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Bot != nil {
		c.Bot.Stop()
	}

	slog.Info(LogMsgStopped)
}
