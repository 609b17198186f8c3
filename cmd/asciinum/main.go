package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Exit codes
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // usage, configuration or stream failure
	ExitInvalidInput = 2 // at least one input line was rejected
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	// After the first signal the default handler is restored, so a second
	// Ctrl-C kills the process.
	context.AfterFunc(ctx, stop)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
