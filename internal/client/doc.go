// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the device agent runtime.
//
// It resolves the relay (explicit URL or mDNS), wires the clipboard, the
// relay adapter and the notifier into the device services, and runs the
// watcher and puller loops until the process is asked to stop.
package client
