package submission

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFileName), []byte(content), 0644))
}

func TestLoadValidManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{
		"name": "testing_submission",
		"command": "python",
		"args": ["agent.py"],
		"env": ["MODEL=small"]
	}`)

	m, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "testing_submission", m.Name)
	assert.Equal(t, "python", m.Command)
	assert.Equal(t, []string{"agent.py"}, m.Args)
	assert.Equal(t, dir, m.Dir)
}

func TestLoadRejectsBadManifests(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		wantErr  string
	}{
		{
			name:     "missing name",
			manifest: `{"command": "python"}`,
			wantErr:  "missing name",
		},
		{
			name:     "missing command",
			manifest: `{"name": "x"}`,
			wantErr:  "missing command",
		},
		{
			name:     "blank command",
			manifest: `{"name": "x", "command": "   "}`,
			wantErr:  "missing command",
		},
		{
			name:     "name with path separators",
			manifest: `{"name": "../evil", "command": "python"}`,
			wantErr:  "invalid characters",
		},
		{
			name:     "not json",
			manifest: `nope`,
			wantErr:  "failed to parse",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeManifest(t, dir, tt.manifest)
			_, err := Load(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadMissingManifest(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read submission manifest")
}

func TestResolve(t *testing.T) {
	subsDir := t.TempDir()
	writeManifest(t, filepath.Join(subsDir, "fetched_one"), `{"name": "fetched_one", "command": "run"}`)

	local := t.TempDir()
	writeManifest(t, local, `{"name": "local_one", "command": "run"}`)

	t.Run("local directory wins", func(t *testing.T) {
		m, err := Resolve(local, subsDir)
		require.NoError(t, err)
		assert.Equal(t, "local_one", m.Name)
	})

	t.Run("falls back to fetched name", func(t *testing.T) {
		m, err := Resolve("fetched_one", subsDir)
		require.NoError(t, err)
		assert.Equal(t, "fetched_one", m.Name)
	})

	t.Run("unknown reference", func(t *testing.T) {
		_, err := Resolve("missing", subsDir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestList(t *testing.T) {
	subsDir := t.TempDir()
	writeManifest(t, filepath.Join(subsDir, "beta"), `{"name": "beta", "command": "run"}`)
	writeManifest(t, filepath.Join(subsDir, "alpha"), `{"name": "alpha", "command": "run"}`)
	// A directory without a manifest is skipped.
	require.NoError(t, os.MkdirAll(filepath.Join(subsDir, "junk"), 0755))

	names, err := List(subsDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, names)

	names, err = List(filepath.Join(subsDir, "does-not-exist"))
	require.NoError(t, err)
	assert.Nil(t, names)
}

func TestRepoName(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://huggingface.co/spaces/user/text-adventure-agent", "text-adventure-agent"},
		{"https://example.com/user/my_agent.git", "my_agent"},
		{"git@example.com:user/agent-repo.git", "agent-repo"},
	}
	for _, tt := range tests {
		name, err := repoName(tt.url)
		require.NoError(t, err)
		assert.Equal(t, tt.want, name)
	}

	_, err := repoName("///")
	assert.Error(t, err)
}
