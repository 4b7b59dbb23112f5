package curseforge

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrInvalidModpackURI is returned for modpack URIs that don't match curseforge://install?addonId=<A>&fileId=<F>
var ErrInvalidModpackURI = errors.New("invalid modpack uri")

const (
	modpackURIScheme = "curseforge"
	modpackURIHost   = "install"
)

// ModpackReference identifies the modpack file to install and where to install it
type ModpackReference struct {
	ProjectID string
	FileID    string
	TargetDir string
}

// ParseModpackURI parses a curseforge://install URI, as handed out by the "Install" button on CurseForge
func ParseModpackURI(uri string, targetDir string) (ModpackReference, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return ModpackReference{}, fmt.Errorf("%w: %w", ErrInvalidModpackURI, err)
	}
	if parsed.Scheme != modpackURIScheme {
		return ModpackReference{}, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidModpackURI, parsed.Scheme)
	}
	if parsed.Host != modpackURIHost {
		return ModpackReference{}, fmt.Errorf("%w: unsupported action %q", ErrInvalidModpackURI, parsed.Host)
	}

	q := parsed.Query()
	projectID := q.Get("addonId")
	if projectID == "" {
		return ModpackReference{}, fmt.Errorf("%w: missing addonId", ErrInvalidModpackURI)
	}
	fileID := q.Get("fileId")
	if fileID == "" {
		return ModpackReference{}, fmt.Errorf("%w: missing fileId", ErrInvalidModpackURI)
	}

	return ModpackReference{
		ProjectID: projectID,
		FileID:    fileID,
		TargetDir: targetDir,
	}, nil
}
