// Package signal handles termination signals for the long-running
// nextline commands.
package signal

import (
	"context"
	"os"
	gosignal "os/signal"
	"syscall"
	"time"

	"github.com/linecast/nextline/internal/constants"
	"github.com/linecast/nextline/internal/dlog"
)

// InterruptWithCancel cancels the given context on the first termination
// signal so followers can drain gracefully. A second interrupt, or an
// expired grace period, force-exits the process.
func InterruptWithCancel(ctx context.Context, cancel context.CancelFunc) {
	sigIntCh := make(chan os.Signal, 10)
	gosignal.Notify(sigIntCh, os.Interrupt)
	sigOtherCh := make(chan os.Signal, 10)
	gosignal.Notify(sigOtherCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		select {
		case <-sigIntCh:
			dlog.Info("Interrupted, draining (hit Ctrl+C again to exit immediately)")
			cancel()
			select {
			case <-sigIntCh:
				os.Exit(1)
			case <-time.After(constants.ShutdownGracePeriod):
				os.Exit(0)
			}
		case <-sigOtherCh:
			cancel()
			time.Sleep(constants.ShutdownGracePeriod)
			os.Exit(0)
		case <-ctx.Done():
		}
	}()
}
