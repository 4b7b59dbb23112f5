package core

import (
	"github.com/spf13/viper"
)

// UserAgent is sent with every request made by cfinstall
var UserAgent = "packwiz/cfinstall"

// DefaultAPIURL is the CurseForge addon API used to resolve project/file identifier pairs
const DefaultAPIURL = "https://addons-ecs.forgesvc.net/api/v2"

// DefaultWorkers is the number of file transfers that may be in flight at once
const DefaultWorkers = 6

// DefaultModsFolder is the folder, relative to the target directory, that manifest files are downloaded to
const DefaultModsFolder = "mods"

// RecordFileName is the name of the install record written to the target directory
const RecordFileName = "cfinstall.toml"

// Config stores the settings that control an install, usually read from flags/config through viper
type Config struct {
	APIURL string
	// Workers limits concurrent file transfers; zero or less removes the limit
	Workers     int
	ModsFolder  string
	ProgressBar bool
	WriteRecord bool
	Verbose     bool
	NoColours   bool
}

// SetConfigDefaults registers the default value of every config key with viper
func SetConfigDefaults() {
	viper.SetDefault("api-url", DefaultAPIURL)
	viper.SetDefault("workers", DefaultWorkers)
	viper.SetDefault("mods-folder", DefaultModsFolder)
	viper.SetDefault("progress-bar", false)
	viper.SetDefault("record", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("no-colours", false)
}

// ConfigFromViper reads the current install settings out of viper
func ConfigFromViper() Config {
	cfg := Config{
		APIURL:      viper.GetString("api-url"),
		Workers:     viper.GetInt("workers"),
		ModsFolder:  viper.GetString("mods-folder"),
		ProgressBar: viper.GetBool("progress-bar"),
		WriteRecord: viper.GetBool("record"),
		Verbose:     viper.GetBool("verbose"),
		NoColours:   viper.GetBool("no-colours"),
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.ModsFolder == "" {
		cfg.ModsFolder = DefaultModsFolder
	}
	return cfg
}
