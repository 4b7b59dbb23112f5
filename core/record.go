package core

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// InstallRecord describes an installed modpack, usually stored in cfinstall.toml in the target directory
type InstallRecord struct {
	Name     string            `toml:"name"`
	Version  string            `toml:"version,omitempty"`
	Author   string            `toml:"author,omitempty"`
	Source   RecordSource      `toml:"source"`
	Versions map[string]string `toml:"versions,omitempty"`
	Files    []RecordedFile    `toml:"files"`
}

// RecordSource is the project/file identifier pair the modpack was installed from
type RecordSource struct {
	ProjectID string `toml:"project-id"`
	FileID    string `toml:"file-id"`
}

// RecordedFile is a single file downloaded into the mods folder
type RecordedFile struct {
	ProjectID uint32 `toml:"project-id"`
	FileID    uint32 `toml:"file-id"`
	// Path is stored in forward slash format relative to the target directory
	Path string `toml:"path"`
}

// LoadInstallRecord reads back a record saved by InstallRecord.Write, e.g. to inspect a previous install
func LoadInstallRecord(path string) (InstallRecord, error) {
	var rec InstallRecord
	if _, err := toml.DecodeFile(path, &rec); err != nil {
		return InstallRecord{}, err
	}
	return rec, nil
}

// Write saves the install record into targetDir
func (rec InstallRecord) Write(targetDir string) error {
	f, err := os.Create(filepath.Join(targetDir, RecordFileName))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	// Disable indentation
	enc.Indent = ""
	return enc.Encode(rec)
}
