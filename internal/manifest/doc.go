// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package manifest defines the declarative description of a plugin registrant:
// which Go type to generate, which package it lives in, and which plugins it
// installs, in order.
//
// Manifests are written in HCL. A single `registrant` block holds one
// `plugin` block per compiled-in plugin. String attributes may reference
// `var.<name>` values, which come from built-in defaults and can be overridden
// by the caller. The manifest is the source of truth for the generated
// registrant; the Go file is derived from it and never edited by hand.
package manifest
