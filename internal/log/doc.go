//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package log provides structured logging and audit-trail utilities for
// the polyhasher vault. It exposes a lazily-initialized JSON slog.Logger
// singleton and a helper for emitting JSON-formatted audit entries that
// record account lifecycle events (creation, login, unlock, persist).
package log
