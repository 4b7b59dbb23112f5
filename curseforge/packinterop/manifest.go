package packinterop

import "strings"

// ManifestFileName is the path of the manifest inside a CurseForge modpack archive
const ManifestFileName = "manifest.json"

// DefaultOverrides is the overrides folder used when the manifest doesn't name one
const DefaultOverrides = "overrides"

// Manifest is the deserialised manifest.json of a CurseForge modpack
type Manifest struct {
	Minecraft struct {
		Version    string         `json:"version"`
		ModLoaders []ModLoaderDef `json:"modLoaders"`
	} `json:"minecraft"`
	ManifestType    string         `json:"manifestType"`
	ManifestVersion uint32         `json:"manifestVersion"`
	Name            string         `json:"name"`
	Version         string         `json:"version"`
	Author          string         `json:"author"`
	ProjectID       uint32         `json:"projectID"`
	Files           []ManifestFile `json:"files"`
	Overrides       string         `json:"overrides"`
}

type ManifestFile struct {
	ProjectID uint32 `json:"projectID"`
	FileID    uint32 `json:"fileID"`
	Required  bool   `json:"required"`
}

type ModLoaderDef struct {
	ID      string `json:"id"`
	Primary bool   `json:"primary"`
}

// Versions returns the Minecraft and mod loader versions the pack targets, keyed by component name
func (m Manifest) Versions() map[string]string {
	vers := make(map[string]string)
	if m.Minecraft.Version != "" {
		vers["minecraft"] = m.Minecraft.Version
	}
	for _, v := range m.Minecraft.ModLoaders {
		// Seperate dash-separated modloader/version pairs
		parts := strings.SplitN(v.ID, "-", 2)
		if len(parts) == 2 {
			vers[parts[0]] = parts[1]
		}
	}
	if val, ok := vers["forge"]; ok {
		// Remove the minecraft version prefix, if it exists
		vers["forge"] = strings.TrimPrefix(val, m.Minecraft.Version+"-")
	}
	return vers
}

// Mods returns a reference to every file the pack needs downloaded, in manifest order
func (m Manifest) Mods() []AddonFileReference {
	list := make([]AddonFileReference, len(m.Files))
	for i, v := range m.Files {
		list[i] = AddonFileReference{
			ProjectID: v.ProjectID,
			FileID:    v.FileID,
		}
	}
	return list
}

// OverridesPath returns the archive folder holding the overrides, with a trailing slash
func (m Manifest) OverridesPath() string {
	overrides := m.Overrides
	if overrides == "" {
		overrides = DefaultOverrides
	}
	if !strings.HasSuffix(overrides, "/") {
		overrides += "/"
	}
	return overrides
}
