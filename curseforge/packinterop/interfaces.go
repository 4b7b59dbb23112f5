package packinterop

import "io"

// ImportPackFile is a single entry of a modpack archive
type ImportPackFile interface {
	// Name returns the slash-separated path of the entry, relative to the archive root
	Name() string
	// IsDir is true for directory marker entries, which have no contents
	IsDir() bool
	Open() (io.ReadCloser, error)
}

// ImportPackSource gives access to the entries of a modpack archive
type ImportPackSource interface {
	GetFile(path string) (ImportPackFile, error)
	// GetFileList returns every entry, including directory markers, in archive order
	GetFileList() ([]ImportPackFile, error)
}
