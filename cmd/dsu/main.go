// Command dsu solves union-find problem files.
//
// Usage:
//
//	dsu kinds
//	dsu solve [--format json|text] [--watch] FILE...
//
// Problem files are JSON, TOML or YAML, chosen by extension; see
// internal/problem for the schema.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logger.Println(err)
		stop()
		os.Exit(1)
	}
}
