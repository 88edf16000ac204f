// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Teamgrid Authors

// Package tui implements the interactive terminal client built on Bubble Tea.
//
// The client drives two flows: an authentication flow (welcome, sign-in and
// registration screens) and a main flow for managing the user's profile
// fields, looking up teammates' profiles, and administering teams.
package tui
