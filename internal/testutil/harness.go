package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/pluginregistrant/internal/app"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of a generator run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
	Config    *app.Config
	// Output is the content of the output file after the run, nil if absent.
	Output []byte
}

// RunGenerator writes files (relative paths to HCL content) into a fresh
// directory, points the generator at its "manifests" subdirectory and runs
// it. configure may adjust the configuration before the app is built.
func RunGenerator(t *testing.T, files map[string]string, configure func(cfg *app.Config)) *HarnessResult {
	t.Helper()

	root := t.TempDir()
	manifestDir := filepath.Join(root, "manifests")
	require.NoError(t, os.MkdirAll(manifestDir, 0755))

	for name, content := range files {
		filePath := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	cfg := &app.Config{
		ManifestPaths: []string{manifestDir},
		OutputPath:    filepath.Join(root, "out", "generated_plugin_registrant.go"),
		LogLevel:      "debug",
		LogFormat:     "text",
	}
	if configure != nil {
		configure(cfg)
	}

	logBuffer := &SafeBuffer{}
	generator := app.NewApp(logBuffer, cfg)
	runErr := generator.Run(context.Background())

	if os.Getenv("REGGEN_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	output, err := os.ReadFile(cfg.OutputPath)
	if err != nil {
		output = nil
	}

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       generator,
		Config:    cfg,
		Output:    output,
	}
}
