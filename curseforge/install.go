package curseforge

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cavaliergopher/grab/v3"
	"github.com/packwiz/cfinstall/core"
	"github.com/packwiz/cfinstall/curseforge/packinterop"
	"github.com/pterm/pterm"
)

// Installer installs CurseForge modpacks into a directory
type Installer struct {
	api   *cfApiClient
	files *grab.Client

	// Workers limits how many files are downloaded at once; zero or less removes the limit
	Workers int
	// ModsFolder is the folder, relative to the target directory, that manifest files are downloaded to
	ModsFolder  string
	WriteRecord bool
	Progress    core.ProgressReporter
}

// NewInstaller creates an Installer that makes all of its requests through httpClient
func NewInstaller(cfg core.Config, httpClient *http.Client, progress core.ProgressReporter) *Installer {
	files := grab.NewClient()
	files.HTTPClient = httpClient
	files.UserAgent = core.UserAgent

	modsFolder := cfg.ModsFolder
	if modsFolder == "" {
		modsFolder = core.DefaultModsFolder
	}

	return &Installer{
		api:         newApiClient(httpClient, cfg.APIURL),
		files:       files,
		Workers:     cfg.Workers,
		ModsFolder:  modsFolder,
		WriteRecord: cfg.WriteRecord,
		Progress:    progress,
	}
}

// Install resolves the modpack, downloads every file its manifest references and extracts its overrides
func (i *Installer) Install(ctx context.Context, ref ModpackReference) error {
	pterm.Debug.Printfln("Requesting modpack file data for project ID %s, file ID %s", ref.ProjectID, ref.FileID)
	packInfo, err := i.api.getFileInfo(ctx, ref.ProjectID, ref.FileID)
	if err != nil {
		return err
	}
	i.Progress.PackStarted(packInfo.FriendlyName)

	data, err := i.api.getArchive(ctx, packInfo.DownloadURL)
	if err != nil {
		return err
	}
	archive, err := packinterop.OpenZipArchive(data)
	if err != nil {
		return err
	}
	defer archive.Close()

	manifest, err := packinterop.ReadManifest(archive)
	if err != nil {
		return err
	}

	mods := manifest.Mods()
	i.Progress.DownloadStarted(len(mods))
	downloads, err := i.downloadFiles(ctx, mods, filepath.Join(ref.TargetDir, i.ModsFolder))
	if err != nil {
		return err
	}

	err = packinterop.ExtractOverrides(archive, manifest.OverridesPath(), ref.TargetDir, i.Progress)
	if err != nil {
		return err
	}

	if i.WriteRecord {
		err = i.writeRecord(ref, packInfo, manifest, downloads)
		if err != nil {
			return err
		}
	}

	i.Progress.Finished()
	return nil
}

func (i *Installer) writeRecord(ref ModpackReference, packInfo modFileInfo, manifest packinterop.Manifest, downloads []completedDownload) error {
	name := manifest.Name
	if name == "" {
		name = packInfo.FriendlyName
	}
	rec := core.InstallRecord{
		Name:     name,
		Version:  manifest.Version,
		Author:   manifest.Author,
		Versions: manifest.Versions(),
		Source: core.RecordSource{
			ProjectID: ref.ProjectID,
			FileID:    ref.FileID,
		},
		Files: make([]core.RecordedFile, 0, len(downloads)),
	}
	for _, dl := range downloads {
		relPath, err := filepath.Rel(ref.TargetDir, dl.Path)
		if err != nil {
			return fmt.Errorf("failed to resolve path of %s: %w", dl.Path, err)
		}
		rec.Files = append(rec.Files, core.RecordedFile{
			ProjectID: dl.Ref.ProjectID,
			FileID:    dl.Ref.FileID,
			Path:      filepath.ToSlash(relPath),
		})
	}

	slices.SortFunc(rec.Files, func(a, b core.RecordedFile) int {
		return strings.Compare(a.Path, b.Path)
	})

	err := rec.Write(ref.TargetDir)
	if err != nil {
		return fmt.Errorf("failed to write install record: %w", err)
	}
	pterm.Debug.Printfln("Wrote %s for %s (%d files)", core.RecordFileName, name, len(rec.Files))
	return nil
}
