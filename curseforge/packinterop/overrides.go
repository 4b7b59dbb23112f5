package packinterop

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/packwiz/cfinstall/core"
)

// ErrMissingOverrides is returned when the archive has no entries under its overrides folder
var ErrMissingOverrides = errors.New("modpack has no overrides")

// ExtractOverrides copies every entry under overridesPath in the archive into targetDir, preserving
// relative paths. Entries are written one at a time, in archive order.
func ExtractOverrides(s ImportPackSource, overridesPath string, targetDir string, progress core.ProgressReporter) error {
	if !strings.HasSuffix(overridesPath, "/") {
		overridesPath += "/"
	}
	fullList, err := s.GetFileList()
	if err != nil {
		return err
	}
	overridesList := make([]ImportPackFile, 0, len(fullList))
	for _, v := range fullList {
		if strings.HasPrefix(v.Name(), overridesPath) {
			overridesList = append(overridesList, v)
		}
	}
	if len(overridesList) == 0 {
		return fmt.Errorf("%w: %s not found", ErrMissingOverrides, overridesPath)
	}

	for _, v := range overridesList {
		relPath := strings.TrimPrefix(v.Name(), overridesPath)
		if relPath == "" {
			// The overrides folder itself
			continue
		}
		nativePath := filepath.FromSlash(strings.TrimSuffix(relPath, "/"))
		if !filepath.IsLocal(nativePath) {
			return fmt.Errorf("%w: entry %s escapes the target directory", ErrInvalidModpack, v.Name())
		}
		destPath := filepath.Join(targetDir, nativePath)

		if v.IsDir() {
			err = os.MkdirAll(destPath, 0755)
			if err != nil {
				return fmt.Errorf("failed to create directory %s: %w", destPath, err)
			}
		} else {
			err = extractFile(v, destPath)
			if err != nil {
				return err
			}
		}
		progress.OverrideExtracted(relPath)
	}
	return nil
}

func extractFile(f ImportPackFile, destPath string) (err error) {
	err = os.MkdirAll(filepath.Dir(destPath), 0755)
	if err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(destPath), err)
	}

	src, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to read %s from modpack: %w", f.Name(), err)
	}
	defer src.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", destPath, err)
	}
	defer func() {
		if closeErr := dst.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close file %s: %w", destPath, closeErr)
		}
	}()

	_, err = io.Copy(dst, src)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", destPath, err)
	}
	return nil
}
