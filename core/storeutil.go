package core

import (
	"os"
	"path/filepath"
	"runtime"

	homedir "github.com/mitchellh/go-homedir"
)

// GetConfigDirs returns the directories searched for a .cfinstall config file, most specific first
func GetConfigDirs() ([]string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}
	dirs := []string{home}

	if //goland:noinspection GoBoolExpressions
	runtime.GOOS == "linux" {
		configHome := os.Getenv("XDG_CONFIG_HOME")
		if configHome != "" {
			return append(dirs, filepath.Join(configHome, "cfinstall")), nil
		}
	}
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		// Home directory alone is enough to carry on
		return dirs, nil
	}
	return append(dirs, filepath.Join(userConfigDir, "cfinstall")), nil
}
