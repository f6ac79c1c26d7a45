package levels

import (
	"os"
	"path/filepath"
	"strings"

	"embed"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Load reads a level file, preferring a disk copy over the embedded one.
func Load(name string) ([]byte, error) {
	clean := strings.TrimPrefix(filepath.ToSlash(name), "levels/")
	if data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return LevelsFS.ReadFile(clean)
}
