//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// signalContext is canceled on interrupt. SIGTERM does not exist on Windows.
func signalContext(parent context.Context) (ctx context.Context, stop context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}
