package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treelint/treelint/internal/cli/commands"
)

// writeProject creates a project tree under a temp root.
func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := commands.NewCheckCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestCheck_CleanProject(t *testing.T) {
	root := writeProject(t, map[string]string{
		"app/page.tsx":     "export default function Page() { return null }\n",
		"src/user-card.ts": "export const userCard = 1\n",
	})

	stdout, _, err := runCommand(t, root)
	require.NoError(t, err)
	assert.Contains(t, stdout, "No issues found!")
}

func TestCheck_WarningsDoNotFail(t *testing.T) {
	root := writeProject(t, map[string]string{
		"src/BadName.ts": "",
	})

	stdout, _, err := runCommand(t, root)
	require.NoError(t, err, "warnings alone must not fail the run")
	assert.Contains(t, stdout, "warn")
	assert.Contains(t, stdout, "filename-style-consistency")
	assert.Contains(t, stdout, "src/BadName.ts")
}

func TestCheck_ErrorsFail(t *testing.T) {
	root := writeProject(t, map[string]string{
		".treelintrc.yaml": `
rules:
  filename_style_consistency:
    severity: error
`,
		"src/BadName.ts": "",
	})

	stdout, _, err := runCommand(t, root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "convention error")
	assert.Contains(t, stdout, "error")
}

func TestCheck_JSONFormat(t *testing.T) {
	root := writeProject(t, map[string]string{
		"src/BadName.ts": "",
	})

	stdout, _, err := runCommand(t, root, "--format", "json")
	require.NoError(t, err)

	var decoded struct {
		Diagnostics []struct {
			Severity string `json:"severity"`
			Rule     string `json:"rule"`
			Message  string `json:"message"`
			File     string `json:"file"`
		} `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &decoded))
	require.NotEmpty(t, decoded.Diagnostics)
	assert.Equal(t, "warn", decoded.Diagnostics[0].Severity)
	assert.Equal(t, "filename-style-consistency", decoded.Diagnostics[0].Rule)
	assert.Equal(t, "src/BadName.ts", decoded.Diagnostics[0].File)
}

func TestCheck_JSONFormatCleanProject(t *testing.T) {
	root := writeProject(t, map[string]string{
		"app/page.tsx": "export default function Page() { return null }\n",
	})

	stdout, _, err := runCommand(t, root, "--format", "json")
	require.NoError(t, err)
	// A clean run emits an empty array, never null.
	assert.JSONEq(t, `{"diagnostics": []}`, stdout)
}

func TestCheck_ConfigDefectAborts(t *testing.T) {
	root := writeProject(t, map[string]string{
		".treelintrc.yaml": `
rules:
  server_side_exports:
    severity: fatal
`,
		"src/app.ts": "",
	})

	_, _, err := runCommand(t, root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid severity")
}

func TestCheck_ExplicitConfigPath(t *testing.T) {
	root := writeProject(t, map[string]string{
		"src/user_snake.ts": "",
	})
	cfgPath := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
rules:
  filename_style_consistency:
    options:
      filename_style: snake-case
`), 0o644))

	stdout, _, err := runCommand(t, root, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "No issues found!")
}

func TestCheck_WatchStopsOnContextCancel(t *testing.T) {
	root := writeProject(t, map[string]string{
		"src/app.ts": "",
	})

	cmd := commands.NewCheckCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{root, "--watch"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	// Let the initial pass run, then cancel.
	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop on context cancel")
	}
	assert.Contains(t, stdout.String(), "No issues found!")
}
