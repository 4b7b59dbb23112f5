package core

// ProgressReporter receives the human-readable progress of an install.
// Calls are never made concurrently; FileDownloaded comes from the goroutine counting completed downloads.
type ProgressReporter interface {
	// PackStarted is called once the modpack file metadata has been resolved
	PackStarted(name string)
	// DownloadStarted is called before any manifest file is requested
	DownloadStarted(total int)
	// FileDownloaded is called after the n-th file has been fully written to disk
	FileDownloaded(n int, total int, name string)
	// DownloadFinished is called when the download batch ends, whether or not it failed
	DownloadFinished()
	// OverrideExtracted is called after an overrides entry has been written, with its relative path
	OverrideExtracted(path string)
	// Finished is called once after a successful install
	Finished()
}
