// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the launcher: host preflight checks, installation and
// version resolution, the documents folder, settings persistence and the
// handoff to the game process. It also serves the city listing mode.
package client
