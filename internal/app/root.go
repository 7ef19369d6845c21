package app

import (
	"os"
	"path/filepath"

	"github.com/aurceive/fighter-tools/internal/config"
	"github.com/aurceive/fighter-tools/internal/data"
)

// rootMarkers identify an app root: any of these files in a directory.
var rootMarkers = []string{config.DefaultFile, data.FightersFile, data.SubrolesFile}

// FindRoot walks up from the working directory to the first directory holding a data or config file.
// It falls back to the working directory itself.
func FindRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findRootFrom(cwd), nil
}

func findRootFrom(start string) string {
	// Support running from the data dir, from the repo root, or from cmd/*.
	dir := start
	for i := 0; i < 10; i++ {
		for _, m := range rootMarkers {
			if _, err := os.Stat(filepath.Join(dir, m)); err == nil {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return start
}
