// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive vault runtime.
//
// It resumes a cached session key or asks for the master password, runs the
// unlocked vault and returns to the unlock prompt when the user locks it.
package client
