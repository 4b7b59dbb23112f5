package packinterop

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
)

// ErrFileNotFound is returned by GetFile when the archive has no entry with the requested path
var ErrFileNotFound = errors.New("file not found in zip")

type zipReaderFile struct {
	NameInternal string
	*zip.File
}

func (f zipReaderFile) Name() string {
	return f.NameInternal
}

func (f zipReaderFile) IsDir() bool {
	return f.Mode().IsDir()
}

// ZipArchive is a modpack archive held entirely in memory
type ZipArchive struct {
	Reader         *zip.Reader
	cachedFileList []ImportPackFile
}

// OpenZipArchive opens the downloaded bytes of a modpack for random access
func OpenZipArchive(data []byte) (*ZipArchive, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	// Unsafe entry names are rejected when the overrides are extracted
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return nil, fmt.Errorf("failed to open modpack archive: %w", err)
	}
	archive := &ZipArchive{Reader: reader}
	archive.updateFileList()
	return archive, nil
}

func (s *ZipArchive) updateFileList() {
	s.cachedFileList = make([]ImportPackFile, len(s.Reader.File))
	for i, v := range s.Reader.File {
		s.cachedFileList[i] = zipReaderFile{v.Name, v}
	}
}

func (s *ZipArchive) GetFile(path string) (ImportPackFile, error) {
	for _, v := range s.cachedFileList {
		if v.Name() == path {
			return v, nil
		}
	}
	return zipReaderFile{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
}

func (s *ZipArchive) GetFileList() ([]ImportPackFile, error) {
	return s.cachedFileList, nil
}

// Close releases the archive contents; the archive must not be used afterwards
func (s *ZipArchive) Close() error {
	s.Reader = nil
	s.cachedFileList = nil
	return nil
}
