// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file decodes HCL manifest files into the Manifest model.
package manifest

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/pluginregistrant/internal/ctxlog"
	"github.com/specialistvlad/pluginregistrant/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

// Extension is the file extension of manifest files.
const Extension = ".hcl"

// ErrNoManifest is returned when none of the given paths contain a manifest file.
var ErrNoManifest = errors.New("no manifest files found")

// DefaultVars are the `var.*` values available to every manifest.
var DefaultVars = map[string]string{
	"flutter_ns": "dev.flutter.plugins",
}

// manifestRootSchema defines the top-level structure of a manifest file.
type manifestRootSchema struct {
	Registrants []*hclRegistrant `hcl:"registrant,block"`
}

// hclRegistrant represents a 'registrant' block for decoding purposes.
type hclRegistrant struct {
	Name     string       `hcl:"name,label"`
	Package  string       `hcl:"package"`
	Registry *string      `hcl:"registry,optional"`
	Plugins  []*hclPlugin `hcl:"plugin,block"`
}

// hclPlugin represents a 'plugin' block nested in a registrant.
type hclPlugin struct {
	Name       string  `hcl:"name,label"`
	ID         string  `hcl:"id"`
	ImportPath string  `hcl:"import_path"`
	Package    *string `hcl:"package,optional"`
	Func       *string `hcl:"func,optional"`
}

// Load reads every manifest file found under paths and returns the single
// registrant they declare. vars override DefaultVars for `var.*` references.
func Load(ctx context.Context, vars map[string]string, paths ...string) (*Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Manifest loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(Extension, paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to find manifest files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %v", ErrNoManifest, paths)
	}
	logger.Debug("Discovered manifest files.", "files", files)

	evalCtx := NewEvalContext(vars)
	parser := hclparse.NewParser()

	var registrants []*hclRegistrant
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest file %s: %w", file, diags)
		}

		var root manifestRootSchema
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode manifest file %s: %w", file, diags)
		}
		registrants = append(registrants, root.Registrants...)
		logger.Debug("Decoded manifest file.", "file", file, "registrants", len(root.Registrants))
	}

	switch len(registrants) {
	case 0:
		return nil, fmt.Errorf("no registrant block declared in %v", files)
	case 1:
	default:
		names := make([]string, 0, len(registrants))
		for _, r := range registrants {
			names = append(names, r.Name)
		}
		return nil, fmt.Errorf("expected exactly one registrant block, found %d: %v", len(registrants), names)
	}

	m := translate(registrants[0])
	m.Files = files
	logger.Info("Manifest loaded.", "registrant", m.Registrant, "plugins", len(m.Plugins))
	return m, nil
}

// NewEvalContext builds the HCL evaluation context exposing `var.*`.
func NewEvalContext(vars map[string]string) *hcl.EvalContext {
	values := make(map[string]cty.Value, len(DefaultVars)+len(vars))
	for k, v := range DefaultVars {
		values[k] = cty.StringVal(v)
	}
	for k, v := range vars {
		values[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"var": cty.ObjectVal(values),
		},
	}
}

func translate(r *hclRegistrant) *Manifest {
	m := &Manifest{
		Registrant:   r.Name,
		Package:      r.Package,
		RegistryPath: DefaultRegistryPath,
		Plugins:      make([]Plugin, 0, len(r.Plugins)),
	}
	if r.Registry != nil && *r.Registry != "" {
		m.RegistryPath = *r.Registry
	}

	for _, hp := range r.Plugins {
		p := Plugin{
			Name:       hp.Name,
			ID:         hp.ID,
			ImportPath: hp.ImportPath,
		}
		if hp.Package != nil {
			p.Package = *hp.Package
		}
		if hp.Func != nil {
			p.Func = *hp.Func
		}
		p.applyDefaults()
		m.Plugins = append(m.Plugins, p)
	}
	return m
}
