package manifest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validManifest() *Manifest {
	return &Manifest{
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
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		mutate     func(m *Manifest)
		expectErrs []string
	}{
		{
			name:   "valid",
			mutate: func(m *Manifest) {},
		},
		{
			name:       "unexported registrant",
			mutate:     func(m *Manifest) { m.Registrant = "registrant" },
			expectErrs: []string{"name must be an exported Go identifier"},
		},
		{
			name:       "bad package",
			mutate:     func(m *Manifest) { m.Package = "my-plugins" },
			expectErrs: []string{"package 'my-plugins' is not a valid Go package name"},
		},
		{
			name:       "no plugins",
			mutate:     func(m *Manifest) { m.Plugins = nil },
			expectErrs: []string{"declares no plugins"},
		},
		{
			name:       "empty registry path",
			mutate:     func(m *Manifest) { m.RegistryPath = "" },
			expectErrs: []string{"registry import path must not be empty"},
		},
		{
			name: "plugin id equals registrant key",
			mutate: func(m *Manifest) {
				m.Plugins[0].ID = "github.com/specialistvlad/pluginregistrant/plugins.GeneratedPluginRegistrant"
			},
			expectErrs: []string{"clashes with the registrant's own key"},
		},
		{
			name: "duplicate ids and labels",
			mutate: func(m *Manifest) {
				m.Plugins = append(m.Plugins, m.Plugins[0])
			},
			expectErrs: []string{
				"plugin 'integration_test': declared more than once",
				"already used by plugin 'integration_test'",
			},
		},
		{
			name: "labels mapping to the same variable",
			mutate: func(m *Manifest) {
				other := m.Plugins[0]
				other.Name = "integration-test"
				other.ID = "dev.flutter.plugins.Other"
				m.Plugins = append(m.Plugins, other)
			},
			expectErrs: []string{"label collides with plugin 'integration_test'"},
		},
		{
			name: "every plugin field invalid",
			mutate: func(m *Manifest) {
				m.Plugins[0] = Plugin{Name: "9lives", Package: "", Func: "register"}
			},
			expectErrs: []string{
				"label cannot be turned into a Go identifier",
				"id must not be empty",
				"import_path must not be empty",
				"package '' is not a valid Go package name",
				"func 'register' must be an exported Go identifier",
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m := validManifest()
			tc.mutate(m)
			err := m.Validate()

			if len(tc.expectErrs) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), "manifest validation failed")
			for _, want := range tc.expectErrs {
				require.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestPlugin_RegistrarVar(t *testing.T) {
	t.Parallel()

	testCases := map[string]string{
		"integration_test": "integrationTestRegistrar",
		"url-launcher":     "urlLauncherRegistrar",
		"Cronet":           "cronetRegistrar",
		"ok_http.v2":       "okHttpV2Registrar",
	}
	for label, want := range testCases {
		require.Equal(t, want, Plugin{Name: label}.RegistrarVar(), label)
	}
}
