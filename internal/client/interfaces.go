// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command in args, or starts an interactive shell when
	// args is empty, and blocks until it is done.
	Run(ctx context.Context, args []string) error
}

// PasswordReader reads a secret without echoing it when the input is a
// terminal.
type PasswordReader interface {
	ReadPassword(prompt string) (string, error)
}
