// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

// Package services adapts the client's long-lived components to
// suture.Service. Each wrapper depends on a small interface so it can be
// tested without the real component.
package services
