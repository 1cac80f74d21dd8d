// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file checks that a Manifest can be rendered into a registrant that
// compiles and keeps its own key apart from every plugin's key.
package manifest

import (
	"fmt"
	"go/token"
	"strings"
)

// Validate reports every problem found in m as a single error.
func (m *Manifest) Validate() error {
	var errs []string

	if !token.IsIdentifier(m.Registrant) || !token.IsExported(m.Registrant) {
		errs = append(errs, fmt.Sprintf("registrant '%s': name must be an exported Go identifier", m.Registrant))
	}
	if !token.IsIdentifier(m.Package) {
		errs = append(errs, fmt.Sprintf("registrant '%s': package '%s' is not a valid Go package name", m.Registrant, m.Package))
	}
	if m.RegistryPath == "" {
		errs = append(errs, fmt.Sprintf("registrant '%s': registry import path must not be empty", m.Registrant))
	}
	if len(m.Plugins) == 0 {
		errs = append(errs, fmt.Sprintf("registrant '%s': declares no plugins", m.Registrant))
	}

	names := make(map[string]struct{}, len(m.Plugins))
	ids := make(map[string]string, len(m.Plugins))
	vars := make(map[string]string, len(m.Plugins))

	for _, p := range m.Plugins {
		if _, dup := names[p.Name]; dup {
			errs = append(errs, fmt.Sprintf("plugin '%s': declared more than once", p.Name))
		}
		names[p.Name] = struct{}{}

		if v := p.RegistrarVar(); !token.IsIdentifier(v) {
			errs = append(errs, fmt.Sprintf("plugin '%s': label cannot be turned into a Go identifier", p.Name))
		} else if other, dup := vars[v]; dup && other != p.Name {
			errs = append(errs, fmt.Sprintf("plugin '%s': label collides with plugin '%s'", p.Name, other))
		} else {
			vars[v] = p.Name
		}

		switch {
		case p.ID == "":
			errs = append(errs, fmt.Sprintf("plugin '%s': id must not be empty", p.Name))
		case p.ID == m.Registrant || strings.HasSuffix(p.ID, "."+m.Registrant):
			errs = append(errs, fmt.Sprintf("plugin '%s': id '%s' clashes with the registrant's own key", p.Name, p.ID))
		default:
			if other, dup := ids[p.ID]; dup {
				errs = append(errs, fmt.Sprintf("plugin '%s': id '%s' already used by plugin '%s'", p.Name, p.ID, other))
			} else {
				ids[p.ID] = p.Name
			}
		}

		if p.ImportPath == "" {
			errs = append(errs, fmt.Sprintf("plugin '%s': import_path must not be empty", p.Name))
		}
		if !token.IsIdentifier(p.Package) {
			errs = append(errs, fmt.Sprintf("plugin '%s': package '%s' is not a valid Go package name", p.Name, p.Package))
		}
		if !token.IsIdentifier(p.Func) || !token.IsExported(p.Func) {
			errs = append(errs, fmt.Sprintf("plugin '%s': func '%s' must be an exported Go identifier", p.Name, p.Func))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("manifest validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
