// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders client state for the terminal: session summaries,
// anime list and catalog tables, details pages and error messages. Every
// function returns a string and performs no I/O.
package tui
