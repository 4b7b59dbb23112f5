package curseforge

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cavaliergopher/grab/v3"
	"github.com/packwiz/cfinstall/core"
	"github.com/packwiz/cfinstall/curseforge/packinterop"
	"github.com/pterm/pterm"
	"golang.org/x/sync/errgroup"
)

type completedDownload struct {
	Ref  packinterop.AddonFileReference
	Info modFileInfo
	// Path is the location the file was written to
	Path string
}

// downloadFiles resolves and downloads every referenced file into destDir, with at most i.Workers
// transfers in flight. The first failure cancels the remaining downloads and is returned.
func (i *Installer) downloadFiles(ctx context.Context, refs []packinterop.AddonFileReference, destDir string) ([]completedDownload, error) {
	err := os.MkdirAll(destDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", destDir, err)
	}

	// Completions are counted by a single goroutine, so the counter needs no locking
	completed := make(chan completedDownload)
	results := make(chan []completedDownload)
	go func() {
		var done []completedDownload
		for dl := range completed {
			done = append(done, dl)
			i.Progress.FileDownloaded(len(done), len(refs), dl.Info.FriendlyName)
		}
		results <- done
	}()

	g, gctx := errgroup.WithContext(ctx)
	if i.Workers > 0 {
		g.SetLimit(i.Workers)
	}
	for _, ref := range refs {
		ref := ref
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			projectID := strconv.FormatUint(uint64(ref.ProjectID), 10)
			fileID := strconv.FormatUint(uint64(ref.FileID), 10)

			info, err := i.api.getFileInfo(gctx, projectID, fileID)
			if err != nil {
				return err
			}
			path, err := i.downloadFile(gctx, info, destDir)
			if err != nil {
				return err
			}
			completed <- completedDownload{Ref: ref, Info: info, Path: path}
			return nil
		})
	}

	err = g.Wait()
	close(completed)
	done := <-results
	i.Progress.DownloadFinished()
	if err != nil {
		return nil, err
	}
	return done, nil
}

// downloadFile streams a single file into destDir, named by the file name CurseForge reports for it
func (i *Installer) downloadFile(ctx context.Context, info modFileInfo, destDir string) (string, error) {
	if info.FileName == "" || filepath.Base(info.FileName) != info.FileName || !filepath.IsLocal(info.FileName) {
		return "", fmt.Errorf("invalid file name %q for file %s", info.FileName, info.FriendlyName)
	}
	dlURL, err := core.ReencodeURL(info.DownloadURL)
	if err != nil {
		return "", err
	}

	req, err := grab.NewRequest(filepath.Join(destDir, info.FileName), dlURL)
	if err != nil {
		return "", fmt.Errorf("failed to download %s: %w", info.FileName, err)
	}
	req = req.WithContext(ctx)
	req.NoResume = true
	req.IgnoreRemoteTime = true

	pterm.Debug.Printfln("Downloading %s from %s", info.FileName, dlURL)
	resp := i.files.Do(req)
	if err := resp.Err(); err != nil {
		return "", fmt.Errorf("failed to download %s: %w", info.FileName, err)
	}
	return resp.Filename, nil
}
