package cmdutil

import (
	"fmt"

	"github.com/paulrobinson/quarkus/internal/catalog"
	"github.com/paulrobinson/quarkus/internal/output"
)

// LoadCatalog loads the bundled catalog and layers each directory on top,
// in order. A codestart in a later directory replaces one of the same name.
func LoadCatalog(dirs ...string) (*catalog.Catalog, error) {
	cat, err := catalog.Bundled()
	if err != nil {
		return nil, fmt.Errorf("loading bundled catalog: %w", err)
	}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		extra, err := catalog.LoadDir(dir)
		if err != nil {
			return nil, err
		}
		output.Debug("adding catalog", "dir", dir, "codestarts", len(extra.Codestarts()))
		cat.Add(extra)
	}
	return cat, nil
}
