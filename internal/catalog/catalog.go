// Package catalog loads category lists for transaction processing.
//
// A catalog is a JSON array of categories. A default catalog with the
// standard five categories ships embedded for callers that do not
// configure their own file.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"registro/internal/core"
)

//go:embed default_categories.json
var defaultCatalogJSON []byte

var defaultCategories = mustParse(defaultCatalogJSON)

// Default returns the embedded default catalog. The slice is a fresh copy
// on every call, so callers may reorder or modify it freely.
func Default() []core.Category {
	return append([]core.Category(nil), defaultCategories...)
}

func mustParse(data []byte) []core.Category {
	cats, err := parse(data)
	if err != nil {
		panic(fmt.Sprintf("catalog: malformed embedded catalog: %v", err))
	}
	return cats
}

// Load reads a catalog file. Content comes back verbatim, duplicates and
// all, since recognition semantics depend on the supplied order.
func Load(path string) ([]core.Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	cats, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return cats, nil
}

func parse(data []byte) ([]core.Category, error) {
	var cats []core.Category
	if err := json.Unmarshal(data, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}
