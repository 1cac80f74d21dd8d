package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertLogged checks that the captured log output of a run contains msg. It
// keeps tests independent of the handler's attribute formatting.
func AssertLogged(t *testing.T, result *HarnessResult, msg string) {
	t.Helper()

	require.True(t,
		strings.Contains(result.LogOutput, msg),
		"expected log message %q was not found in logs:\n%s", msg, result.LogOutput,
	)
}
