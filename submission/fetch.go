package submission

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/grue-labs/lantern/log"
)

var repoNameRegex = regexp.MustCompile(`([a-zA-Z0-9_\-]+?)(?:\.git)?/*$`)

// repoName derives a directory name from a clone URL.
func repoName(url string) (string, error) {
	m := repoNameRegex.FindStringSubmatch(strings.TrimSpace(url))
	if m == nil || m[1] == "" {
		return "", fmt.Errorf("cannot derive a submission name from %q", url)
	}
	return m[1], nil
}

// Fetch clones a submission repository into submissionsDir and validates its
// manifest. An existing clone with the same name is replaced.
func Fetch(url, submissionsDir string) (*Manifest, error) {
	name, err := repoName(url)
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(submissionsDir, name)
	if err := os.RemoveAll(dir); err != nil {
		return nil, fmt.Errorf("failed to clear previous clone: %w", err)
	}
	if err := os.MkdirAll(submissionsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create submissions directory: %w", err)
	}

	log.InfoLog.Printf("cloning submission %s from %s", name, url)
	_, err = git.PlainClone(dir, false, &git.CloneOptions{
		URL:   url,
		Depth: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to clone submission: %w", err)
	}

	m, err := Load(dir)
	if err != nil {
		// A repo without a valid manifest is not a usable submission.
		_ = os.RemoveAll(dir)
		return nil, err
	}
	return m, nil
}
