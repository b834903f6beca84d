package config

import (
	"os"
	"path/filepath"
	"testing"
)

const (
	globalConfigurationContent = `tree:
  max_depth: 3
  copy: true
  exclude:
    - node_modules
`
	localConfigurationContent = `tree:
  max_depth: 1
  directories_only: true
  exclude:
    - vendor
`
)

func writeConfigurationFile(testingHandle *testing.T, configurationPath string, content string) {
	testingHandle.Helper()
	if makeDirectoryError := os.MkdirAll(filepath.Dir(configurationPath), 0o755); makeDirectoryError != nil {
		testingHandle.Fatalf("mkdir: %v", makeDirectoryError)
	}
	if writeError := os.WriteFile(configurationPath, []byte(content), 0o644); writeError != nil {
		testingHandle.Fatalf("write %s: %v", configurationPath, writeError)
	}
}

// TestLoadApplicationConfigurationMergesGlobalAndLocal verifies that
// the local file overrides the global one field by field.
func TestLoadApplicationConfigurationMergesGlobalAndLocal(testingHandle *testing.T) {
	homeDirectory := testingHandle.TempDir()
	testingHandle.Setenv("HOME", homeDirectory)
	writeConfigurationFile(testingHandle, filepath.Join(homeDirectory, ".lstree", "config.yaml"), globalConfigurationContent)

	workingDirectory := testingHandle.TempDir()
	writeConfigurationFile(testingHandle, filepath.Join(workingDirectory, ".lstree.yaml"), localConfigurationContent)

	loaded, loadError := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDirectory})
	if loadError != nil {
		testingHandle.Fatalf("load: %v", loadError)
	}
	if loaded.Tree.MaxDepth == nil || *loaded.Tree.MaxDepth != 1 {
		testingHandle.Fatalf("max_depth not overridden by local file: %+v", loaded.Tree.MaxDepth)
	}
	if loaded.Tree.DirectoriesOnly == nil || !*loaded.Tree.DirectoriesOnly {
		testingHandle.Fatalf("directories_only not taken from local file")
	}
	if loaded.Tree.Copy == nil || !*loaded.Tree.Copy {
		testingHandle.Fatalf("copy not preserved from global file")
	}
	if len(loaded.Tree.Exclude) != 1 || loaded.Tree.Exclude[0] != "vendor" {
		testingHandle.Fatalf("unexpected exclude list: %v", loaded.Tree.Exclude)
	}
}

// TestLoadApplicationConfigurationGlobalOnly verifies that the global
// file alone supplies defaults.
func TestLoadApplicationConfigurationGlobalOnly(testingHandle *testing.T) {
	homeDirectory := testingHandle.TempDir()
	testingHandle.Setenv("HOME", homeDirectory)
	writeConfigurationFile(testingHandle, filepath.Join(homeDirectory, ".lstree", "config.yaml"), globalConfigurationContent)

	loaded, loadError := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: testingHandle.TempDir()})
	if loadError != nil {
		testingHandle.Fatalf("load: %v", loadError)
	}
	if loaded.Tree.MaxDepth == nil || *loaded.Tree.MaxDepth != 3 {
		testingHandle.Fatalf("unexpected max_depth: %+v", loaded.Tree.MaxDepth)
	}
	if len(loaded.Tree.Exclude) != 1 || loaded.Tree.Exclude[0] != "node_modules" {
		testingHandle.Fatalf("unexpected exclude list: %v", loaded.Tree.Exclude)
	}
}

// TestLoadApplicationConfigurationWithoutFiles verifies that absent
// configuration files yield the zero configuration without error.
func TestLoadApplicationConfigurationWithoutFiles(testingHandle *testing.T) {
	testingHandle.Setenv("HOME", testingHandle.TempDir())

	loaded, loadError := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: testingHandle.TempDir()})
	if loadError != nil {
		testingHandle.Fatalf("load: %v", loadError)
	}
	if loaded.Tree.MaxDepth != nil || loaded.Tree.DirectoriesOnly != nil || loaded.Tree.Copy != nil || loaded.Tree.Exclude != nil {
		testingHandle.Fatalf("expected zero configuration, got %+v", loaded)
	}
}

// TestLoadApplicationConfigurationRejectsMalformedFile verifies that a
// malformed local file is a fatal load error.
func TestLoadApplicationConfigurationRejectsMalformedFile(testingHandle *testing.T) {
	testingHandle.Setenv("HOME", testingHandle.TempDir())
	workingDirectory := testingHandle.TempDir()
	writeConfigurationFile(testingHandle, filepath.Join(workingDirectory, ".lstree.yaml"), "tree: [\n")

	_, loadError := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDirectory})
	if loadError == nil {
		testingHandle.Fatalf("expected an error for a malformed configuration file")
	}
}

// TestLoadApplicationConfigurationExplicitPath verifies that an explicit
// file path replaces local discovery.
func TestLoadApplicationConfigurationExplicitPath(testingHandle *testing.T) {
	testingHandle.Setenv("HOME", testingHandle.TempDir())
	workingDirectory := testingHandle.TempDir()
	explicitPath := filepath.Join(workingDirectory, "custom.yaml")
	writeConfigurationFile(testingHandle, explicitPath, localConfigurationContent)

	loaded, loadError := LoadApplicationConfiguration(LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: explicitPath,
	})
	if loadError != nil {
		testingHandle.Fatalf("load: %v", loadError)
	}
	if loaded.Tree.MaxDepth == nil || *loaded.Tree.MaxDepth != 1 {
		testingHandle.Fatalf("explicit configuration not loaded: %+v", loaded.Tree)
	}
}
