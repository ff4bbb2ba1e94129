package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
}

func baseNames(files []string) []string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = filepath.Base(f)
	}
	return names
}

func TestScanDirectoryCatalogOptions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "solid.md"))
	writeFile(t, filepath.Join(dir, "grasp.yaml"))
	writeFile(t, filepath.Join(dir, "notes.txt"))
	writeFile(t, filepath.Join(dir, "sub", "patterns.markdown"))
	writeFile(t, filepath.Join(dir, "node_modules", "pkg.md"))
	writeFile(t, filepath.Join(dir, ".hidden", "secret.md"))

	result, err := ScanDirectory(dir, CatalogScanOptions())
	if err != nil {
		t.Fatalf("ScanDirectory failed: %v", err)
	}

	names := baseNames(result.Files)
	expected := map[string]bool{"solid.md": true, "grasp.yaml": true, "patterns.markdown": true}
	if len(names) != len(expected) {
		t.Fatalf("Expected %d files, got %v", len(expected), names)
	}
	for _, name := range names {
		if !expected[name] {
			t.Errorf("Unexpected file in results: %s", name)
		}
	}
}

func TestScanDirectoryNonRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "solid.md"))
	writeFile(t, filepath.Join(dir, "sub", "nested.md"))

	opts := CatalogScanOptions()
	opts.Recursive = false

	result, err := ScanDirectory(dir, opts)
	if err != nil {
		t.Fatalf("ScanDirectory failed: %v", err)
	}

	if len(result.Files) != 1 || filepath.Base(result.Files[0]) != "solid.md" {
		t.Errorf("Expected only top-level solid.md, got %v", baseNames(result.Files))
	}
}

func TestScanDirectoryPattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "catalog-solid.md"))
	writeFile(t, filepath.Join(dir, "readme.md"))

	opts := CatalogScanOptions()
	opts.Pattern = "^catalog-"

	result, err := ScanDirectory(dir, opts)
	if err != nil {
		t.Fatalf("ScanDirectory failed: %v", err)
	}

	if len(result.Files) != 1 || filepath.Base(result.Files[0]) != "catalog-solid.md" {
		t.Errorf("Expected only catalog-solid.md, got %v", baseNames(result.Files))
	}
}

func TestScanDirectoryInvalidPattern(t *testing.T) {
	opts := ScanOptions{Pattern: "["}
	if _, err := ScanDirectory(t.TempDir(), opts); err == nil {
		t.Error("Expected error for invalid pattern")
	}
}

func TestScanDirectoryNotADirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.md")
	writeFile(t, path)

	if _, err := ScanDirectory(path, CatalogScanOptions()); err == nil {
		t.Error("Expected error for non-directory path")
	}
}

func TestScanDirectorySortedOutput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.md"))
	writeFile(t, filepath.Join(dir, "a.md"))
	writeFile(t, filepath.Join(dir, "c.md"))

	result, err := ScanDirectory(dir, CatalogScanOptions())
	if err != nil {
		t.Fatalf("ScanDirectory failed: %v", err)
	}

	names := baseNames(result.Files)
	if names[0] != "a.md" || names[1] != "b.md" || names[2] != "c.md" {
		t.Errorf("Expected sorted output, got %v", names)
	}
}
