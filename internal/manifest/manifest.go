// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the format-agnostic Manifest model produced by Load and
// consumed by the renderer.
package manifest

import (
	"path"
	"strings"
	"unicode"
)

// DefaultRegistryPath is the import path of the registry contract used when a
// manifest does not name one.
const DefaultRegistryPath = "github.com/specialistvlad/pluginregistrant/registry"

// DefaultFunc is the plugin registration function called when a plugin block
// does not name one.
const DefaultFunc = "RegisterWith"

// Manifest describes a registrant and the plugins it installs.
type Manifest struct {
	// Registrant is the name of the generated Go type.
	Registrant string
	// Package is the Go package the registrant is generated into.
	Package string
	// RegistryPath is the import path of the registry contract.
	RegistryPath string
	// Plugins are installed in declaration order.
	Plugins []Plugin
	// Files lists the manifest files the model was loaded from.
	Files []string
}

// Plugin describes one plugin installed by the registrant.
type Plugin struct {
	// Name is the block label, unique within a manifest.
	Name string
	// ID is the registry key the plugin's registrar is requested under.
	ID string
	// ImportPath is the Go import path of the plugin's package.
	ImportPath string
	// Package is the Go package name at ImportPath.
	Package string
	// Func is the plugin's registration function, taking a registrar.
	Func string
}

// RegistrarVar returns the local variable name the generated code holds the
// plugin's registrar in.
func (p Plugin) RegistrarVar() string {
	return lowerCamel(p.Name) + "Registrar"
}

// applyDefaults fills optional plugin fields.
func (p *Plugin) applyDefaults() {
	if p.Package == "" && p.ImportPath != "" {
		p.Package = path.Base(p.ImportPath)
	}
	if p.Func == "" {
		p.Func = DefaultFunc
	}
}

// lowerCamel converts a label like "integration_test" or "url-launcher" into
// "integrationTest" or "urlLauncher".
func lowerCamel(label string) string {
	parts := strings.FieldsFunc(label, func(r rune) bool {
		return r == '_' || r == '-' || r == '.'
	})

	var b strings.Builder
	for i, part := range parts {
		runes := []rune(part)
		if i == 0 {
			runes[0] = unicode.ToLower(runes[0])
		} else {
			runes[0] = unicode.ToUpper(runes[0])
		}
		b.WriteString(string(runes))
	}
	return b.String()
}
