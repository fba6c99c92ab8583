package dashboard

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shibukawa/columnlens"
)

// Load reads and parses a dashboard export from path.
//
// A path that does not resolve to a readable file yields ErrInputNotFound.
// A file that is not valid JSON, or that lacks the datasets array, yields
// ErrInvalidDocument: there is nothing meaningful to analyze in such a file
// and a fresh export from the dashboard UI is the only fix.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", columnlens.ErrInputNotFound, path)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s is not valid JSON (re-export the dashboard and try again): %v",
			columnlens.ErrInvalidDocument, path, err)
	}

	if doc.Datasets == nil {
		return nil, fmt.Errorf("%w: %s has no datasets array (re-export the dashboard in the lakeview JSON format)",
			columnlens.ErrInvalidDocument, path)
	}

	return &doc, nil
}
