package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MarkerName is the file in a project directory that records the store root.
const MarkerName = ".buildstreak"

// StoreDirName is the directory created by Initialize.
const StoreDirName = "buildstreak"

// ErrNotInitialized is returned when the working directory has no marker file.
var ErrNotInitialized = errors.New("buildstreak is not initialized here (run: buildstreak init)")

// Resolve returns the store root recorded in dir's marker file. The root is not
// checked for existence; relative roots are interpreted against dir.
func Resolve(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, MarkerName))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotInitialized
		}
		return "", fmt.Errorf("failed to read marker: %w", err)
	}
	root := strings.TrimSpace(string(data))
	if root == "" {
		return "", fmt.Errorf("marker %s is empty: %w", MarkerName, ErrNotInitialized)
	}
	if !filepath.IsAbs(root) {
		root = filepath.Join(dir, root)
	}
	return root, nil
}

// Initialize creates the store directory under base (or under dir when base is
// empty) and writes dir's marker file pointing at it. An existing store
// directory is an error.
func Initialize(dir, base string) (string, error) {
	target := StoreDirName
	if base != "" {
		target = filepath.Join(base, StoreDirName)
	}
	mkdirPath := target
	if !filepath.IsAbs(target) {
		mkdirPath = filepath.Join(dir, target)
	}
	if err := os.Mkdir(mkdirPath, 0o755); err != nil {
		return "", fmt.Errorf("failed to create store directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, MarkerName), []byte(target), 0o644); err != nil {
		return "", fmt.Errorf("failed to write marker: %w", err)
	}
	return target, nil
}
