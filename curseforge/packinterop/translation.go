package packinterop

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"github.com/pterm/pterm"
)

// ErrInvalidModpack is returned when an archive doesn't look like a CurseForge modpack
var ErrInvalidModpack = errors.New("invalid modpack")

// AddonFileReference is a struct to reference a single file on CurseForge
type AddonFileReference struct {
	ProjectID uint32
	FileID    uint32
}

// ReadManifest reads and parses the manifest.json of a modpack archive
func ReadManifest(s ImportPackSource) (Manifest, error) {
	metaFile, err := s.GetFile(ManifestFileName)
	if err != nil {
		if errors.Is(err, ErrFileNotFound) {
			return Manifest{}, fmt.Errorf("%w: %s not found", ErrInvalidModpack, ManifestFileName)
		}
		return Manifest{}, err
	}
	rdr, err := metaFile.Open()
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read %s: %w", ManifestFileName, err)
	}
	defer rdr.Close()

	fileData, err := io.ReadAll(rdr)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read %s: %w", ManifestFileName, err)
	}

	var jsonFile map[string]interface{}
	err = json.Unmarshal(fileData, &jsonFile)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to parse %s: %w", ManifestFileName, err)
	}

	if v, ok := jsonFile["manifestType"].(string); ok && v != "minecraftModpack" {
		pterm.Warning.Printfln("Unexpected manifest type %q, continuing anyway", v)
	}

	var manifest Manifest
	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		Metadata:   &md,
		Result:     &manifest,
		DecodeHook: exactIntegerHook,
	})
	if err != nil {
		return Manifest{}, err
	}
	err = decoder.Decode(jsonFile)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to parse %s: %w", ManifestFileName, err)
	}
	if len(md.Unused) > 0 {
		pterm.Debug.Printfln("Ignored manifest keys: %v", md.Unused)
	}

	return manifest, nil
}

// exactIntegerHook rejects JSON numbers that don't fit exactly into the integer field they are decoded into
func exactIntegerHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	f, ok := data.(float64)
	if !ok {
		return data, nil
	}
	var lo, hi float64
	switch to.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		lo, hi = 0, math.Ldexp(1, to.Bits())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		lo, hi = -math.Ldexp(1, to.Bits()-1), math.Ldexp(1, to.Bits()-1)
	default:
		return data, nil
	}
	if f != math.Trunc(f) || f < lo || f >= hi {
		return nil, fmt.Errorf("%s is not a valid %s", strconv.FormatFloat(f, 'f', -1, 64), to)
	}
	return data, nil
}
