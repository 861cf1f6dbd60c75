// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client application runtime.
//
// It restores the session, dispatches one command or runs an interactive
// shell, and keeps the session refresh worker running while the shell is
// open.
package client
