package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveMissingMarker(t *testing.T) {
	dir := t.TempDir()
	_, err := Resolve(dir)
	if !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}

func TestResolveEmptyMarker(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, MarkerName), []byte("  \n"), 0o644); err != nil {
		t.Fatalf("write marker: %v", err)
	}
	_, err := Resolve(dir)
	if !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}

func TestInitializeDefaultBase(t *testing.T) {
	dir := t.TempDir()
	target, err := Initialize(dir, "")
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if target != StoreDirName {
		t.Fatalf("expected target %q, got %q", StoreDirName, target)
	}
	info, err := os.Stat(filepath.Join(dir, StoreDirName))
	if err != nil || !info.IsDir() {
		t.Fatalf("expected store directory to exist: %v", err)
	}
	root, err := Resolve(dir)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if root != filepath.Join(dir, StoreDirName) {
		t.Fatalf("unexpected root: %s", root)
	}
}

func TestInitializeWithBase(t *testing.T) {
	dir := t.TempDir()
	base := t.TempDir()
	target, err := Initialize(dir, base)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	want := filepath.Join(base, StoreDirName)
	if target != want {
		t.Fatalf("expected %q, got %q", want, target)
	}
	data, err := os.ReadFile(filepath.Join(dir, MarkerName))
	if err != nil {
		t.Fatalf("read marker: %v", err)
	}
	if string(data) != want {
		t.Fatalf("unexpected marker contents: %q", data)
	}
	root, err := Resolve(dir)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if root != want {
		t.Fatalf("expected root %q, got %q", want, root)
	}
}

func TestInitializeExistingDirectoryFails(t *testing.T) {
	dir := t.TempDir()
	if _, err := Initialize(dir, ""); err != nil {
		t.Fatalf("first initialize: %v", err)
	}
	_, err := Initialize(dir, "")
	if !errors.Is(err, os.ErrExist) {
		t.Fatalf("expected os.ErrExist, got %v", err)
	}
}

func TestInitializeOverwritesMarker(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, MarkerName), []byte("/old/root"), 0o644); err != nil {
		t.Fatalf("write marker: %v", err)
	}
	base := t.TempDir()
	if _, err := Initialize(dir, base); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	root, err := Resolve(dir)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if root != filepath.Join(base, StoreDirName) {
		t.Fatalf("marker was not overwritten: %s", root)
	}
}
