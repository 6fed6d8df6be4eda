// Package submission manages external agent submissions: local directories or
// fetched git repositories carrying a submission.json manifest.
package submission

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

const ManifestFileName = "submission.json"

// Manifest describes how to run a submission's agent.
type Manifest struct {
	// Name identifies the submission in result file names.
	Name string `json:"name"`
	// Command is the executable that plays the game.
	Command string `json:"command"`
	// Args are passed to the command before the runner's flags.
	Args []string `json:"args,omitempty"`
	// Env entries (KEY=value) are added to the process environment.
	Env []string `json:"env,omitempty"`

	// Dir is where the submission lives. Not serialized; set on load.
	Dir string `json:"-"`
}

var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_\-]*$`)

// Validate checks the manifest for the fields a run needs.
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("submission manifest missing name")
	}
	if !nameRegex.MatchString(m.Name) {
		return fmt.Errorf("submission name %q contains invalid characters", m.Name)
	}
	if strings.TrimSpace(m.Command) == "" {
		return fmt.Errorf("submission %q missing command", m.Name)
	}
	return nil
}

// Load reads and validates the manifest in dir.
func Load(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to read submission manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse submission manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	m.Dir = dir
	return &m, nil
}

// Resolve maps a submission reference to its manifest. A reference is either
// a path to a submission directory or the name of a previously fetched
// submission under submissionsDir.
func Resolve(ref, submissionsDir string) (*Manifest, error) {
	if info, err := os.Stat(ref); err == nil && info.IsDir() {
		return Load(ref)
	}
	dir := filepath.Join(submissionsDir, ref)
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return Load(dir)
	}
	return nil, fmt.Errorf("submission %q not found (not a directory, and not fetched into %s)", ref, submissionsDir)
}

// List returns the names of fetched submissions with a valid manifest.
func List(submissionsDir string) ([]string, error) {
	entries, err := os.ReadDir(submissionsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read submissions directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := Load(filepath.Join(submissionsDir, entry.Name())); err != nil {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
