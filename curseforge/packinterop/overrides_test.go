package packinterop

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/packwiz/cfinstall/cmdshared"
)

// listTree returns every file and directory below root, as slash paths
func listTree(t *testing.T, root string) (files []string, dirs []string) {
	t.Helper()
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		if d.IsDir() {
			dirs = append(dirs, filepath.ToSlash(rel))
		} else {
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	slices.Sort(files)
	slices.Sort(dirs)
	return files, dirs
}

func TestExtractOverrides(t *testing.T) {
	archive := openTestArchive(t,
		zipEntry{name: ManifestFileName, body: "{}"},
		zipEntry{name: "overrides/"},
		zipEntry{name: "overrides/options.txt", body: "fov:90"},
		zipEntry{name: "overrides/config/"},
		zipEntry{name: "overrides/config/mod.toml", body: "enabled = true"},
		zipEntry{name: "overrides/scripts/empty/"},
		zipEntry{name: "other/ignored.txt", body: "ignored"},
	)
	target := t.TempDir()
	var out bytes.Buffer

	err := ExtractOverrides(archive, "overrides", target, cmdshared.NewLineReporter(&out))
	if err != nil {
		t.Fatal(err)
	}

	files, dirs := listTree(t, target)
	wantFiles := []string{"config/mod.toml", "options.txt"}
	if !slices.Equal(files, wantFiles) {
		t.Errorf("expected files %v, found %v", wantFiles, files)
	}
	wantDirs := []string{"config", "scripts", "scripts/empty"}
	if !slices.Equal(dirs, wantDirs) {
		t.Errorf("expected directories %v, found %v", wantDirs, dirs)
	}

	data, err := os.ReadFile(filepath.Join(target, "config", "mod.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "enabled = true" {
		t.Errorf("unexpected contents %q", data)
	}

	// One line per entry, in archive order
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	wantLines := []string{"options.txt", "config/", "config/mod.toml", "scripts/empty/"}
	if !slices.Equal(lines, wantLines) {
		t.Errorf("expected progress %v, found %v", wantLines, lines)
	}
}

func TestExtractOverridesDirectoryOnly(t *testing.T) {
	archive := openTestArchive(t, zipEntry{name: "overrides/saves/"})
	target := t.TempDir()

	err := ExtractOverrides(archive, "overrides/", target, cmdshared.NewLineReporter(&bytes.Buffer{}))
	if err != nil {
		t.Fatal(err)
	}

	files, dirs := listTree(t, target)
	if len(files) != 0 {
		t.Errorf("expected no files, found %v", files)
	}
	if !slices.Equal(dirs, []string{"saves"}) {
		t.Errorf("expected only the saves directory, found %v", dirs)
	}
}

func TestExtractOverridesOverwritesExisting(t *testing.T) {
	archive := openTestArchive(t, zipEntry{name: "overrides/options.txt", body: "new"})
	target := t.TempDir()
	err := os.WriteFile(filepath.Join(target, "options.txt"), []byte("old contents that are longer"), 0644)
	if err != nil {
		t.Fatal(err)
	}

	err = ExtractOverrides(archive, "overrides", target, cmdshared.NewLineReporter(&bytes.Buffer{}))
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(target, "options.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new" {
		t.Errorf("expected file to be overwritten, found %q", data)
	}
}

func TestExtractOverridesMissing(t *testing.T) {
	archive := openTestArchive(t,
		zipEntry{name: ManifestFileName, body: "{}"},
		zipEntry{name: "overridesbutnot/a.txt", body: "a"},
	)
	target := t.TempDir()

	err := ExtractOverrides(archive, "overrides", target, cmdshared.NewLineReporter(&bytes.Buffer{}))
	if !errors.Is(err, ErrMissingOverrides) {
		t.Fatalf("expected ErrMissingOverrides, found %v", err)
	}
	files, dirs := listTree(t, target)
	if len(files) != 0 || len(dirs) != 0 {
		t.Errorf("expected nothing to be written, found %v %v", files, dirs)
	}
}

func TestExtractOverridesCustomFolder(t *testing.T) {
	archive := openTestArchive(t,
		zipEntry{name: "overrides/a.txt", body: "a"},
		zipEntry{name: "client-overrides/b.txt", body: "b"},
	)
	target := t.TempDir()

	err := ExtractOverrides(archive, "client-overrides", target, cmdshared.NewLineReporter(&bytes.Buffer{}))
	if err != nil {
		t.Fatal(err)
	}
	files, _ := listTree(t, target)
	if !slices.Equal(files, []string{"b.txt"}) {
		t.Errorf("expected only b.txt, found %v", files)
	}
}

func TestExtractOverridesRejectsEscapingPaths(t *testing.T) {
	archive := openTestArchive(t, zipEntry{name: "overrides/../evil.txt", body: "evil"})
	parent := t.TempDir()
	target := filepath.Join(parent, "instance")

	err := ExtractOverrides(archive, "overrides", target, cmdshared.NewLineReporter(&bytes.Buffer{}))
	if !errors.Is(err, ErrInvalidModpack) {
		t.Fatalf("expected ErrInvalidModpack, found %v", err)
	}
	if _, err := os.Stat(filepath.Join(parent, "evil.txt")); !os.IsNotExist(err) {
		t.Error("file outside the target directory was written")
	}
}
