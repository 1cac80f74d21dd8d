package manifest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

const integrationTestManifest = `
registrant "GeneratedPluginRegistrant" {
  package = "plugins"

  plugin "integration_test" {
    id          = "${var.flutter_ns}.integration_test.IntegrationTestPlugin"
    import_path = "github.com/specialistvlad/pluginregistrant/modules/integrationtest"
  }
}
`

func TestLoad_SingleFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	file := writeManifest(t, dir, "plugins.hcl", integrationTestManifest)

	// --- Act ---
	m, err := Load(context.Background(), nil, file)

	// --- Assert ---
	require.NoError(t, err)
	want := &Manifest{
		Registrant:   "GeneratedPluginRegistrant",
		Package:      "plugins",
		RegistryPath: DefaultRegistryPath,
		Plugins: []Plugin{{
			Name:       "integration_test",
			ID:         "dev.flutter.plugins.integration_test.IntegrationTestPlugin",
			ImportPath: "github.com/specialistvlad/pluginregistrant/modules/integrationtest",
			Package:    "integrationtest",
			Func:       "RegisterWith",
		}},
		Files: []string{file},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	require.NoError(t, m.Validate())
}

func TestLoad_VarsOverrideDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeManifest(t, dir, "plugins.hcl", integrationTestManifest)

	m, err := Load(context.Background(), map[string]string{"flutter_ns": "io.example"}, dir)

	require.NoError(t, err)
	require.Len(t, m.Plugins, 1)
	require.Equal(t, "io.example.integration_test.IntegrationTestPlugin", m.Plugins[0].ID)
}

func TestLoad_ExplicitOptionalFields(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeManifest(t, dir, "plugins.hcl", `
registrant "HostRegistrant" {
  package  = "host"
  registry = "example.com/host/registry"

  plugin "cronet" {
    id          = "io.flutter.plugins.cronet_http.CronetHttpPlugin"
    import_path = "example.com/plugins/cronet-http"
    package     = "cronethttp"
    func        = "Register"
  }
  plugin "ok_http" {
    id          = "com.example.ok_http.OkHttpPlugin"
    import_path = "example.com/plugins/okhttp"
  }
}
`)

	m, err := Load(context.Background(), nil, dir)

	require.NoError(t, err)
	require.Equal(t, "example.com/host/registry", m.RegistryPath)
	require.Equal(t, []Plugin{
		{Name: "cronet", ID: "io.flutter.plugins.cronet_http.CronetHttpPlugin", ImportPath: "example.com/plugins/cronet-http", Package: "cronethttp", Func: "Register"},
		{Name: "ok_http", ID: "com.example.ok_http.OkHttpPlugin", ImportPath: "example.com/plugins/okhttp", Package: "okhttp", Func: "RegisterWith"},
	}, m.Plugins)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		files     map[string]string
		vars      map[string]string
		expectErr string
	}{
		{
			name:      "no manifest files",
			files:     map[string]string{"readme.txt": "nothing here"},
			expectErr: "no manifest files found",
		},
		{
			name:      "syntax error",
			files:     map[string]string{"bad.hcl": `registrant "X" {`},
			expectErr: "failed to parse manifest file",
		},
		{
			name: "missing required attribute",
			files: map[string]string{"p.hcl": `
registrant "X" {
  package = "p"
  plugin "a" {
    import_path = "example.com/a"
  }
}`},
			expectErr: "failed to decode manifest file",
		},
		{
			name: "unknown variable",
			files: map[string]string{"p.hcl": `
registrant "X" {
  package = "p"
  plugin "a" {
    id          = "${var.missing}.A"
    import_path = "example.com/a"
  }
}`},
			expectErr: "failed to decode manifest file",
		},
		{
			name:      "no registrant block",
			files:     map[string]string{"p.hcl": ``},
			expectErr: "no registrant block declared",
		},
		{
			name: "registrants spread over two files",
			files: map[string]string{
				"a.hcl":        `registrant "A" { package = "p" }`,
				"nested/b.hcl": `registrant "B" { package = "p" }`,
			},
			expectErr: "expected exactly one registrant block, found 2",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			for name, content := range tc.files {
				writeManifest(t, dir, name, content)
			}

			_, err := Load(context.Background(), tc.vars, dir)

			require.Error(t, err)
			require.Contains(t, err.Error(), tc.expectErr)
		})
	}
}

func TestNewEvalContext(t *testing.T) {
	t.Parallel()

	evalCtx := NewEvalContext(map[string]string{"extra": "value"})
	vars := evalCtx.Variables["var"]

	require.True(t, vars.Type().IsObjectType())
	require.Equal(t, "dev.flutter.plugins", vars.GetAttr("flutter_ns").AsString())
	require.Equal(t, "value", vars.GetAttr("extra").AsString())
}
