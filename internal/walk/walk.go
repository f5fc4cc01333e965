// Package walk collects the .png files under an input root in the
// lexical walk order spec.md §6 requires for compress mode. Grounded
// on the teacher's collectTIFFs (cmd/geotiff2pmtiles/main.go),
// generalized from a hand-rolled os.ReadDir walk to doublestar.Glob,
// whose matches are then sorted by path.
package walk

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// PNGs returns the relative paths (using '/' separators) of every .png
// file under root, recursively, in lexical order.
func PNGs(root string) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("walk: %w", err)
	}
	matches, err := doublestar.Glob(os.DirFS(root), "**/*.png")
	if err != nil {
		return nil, fmt.Errorf("walk: globbing %s: %w", root, err)
	}
	// doublestar lists a directory's own matches before those of its
	// subdirectories, so sort to get a single lexical order by path.
	sort.Strings(matches)
	return matches, nil
}
