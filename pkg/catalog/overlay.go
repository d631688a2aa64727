package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// NameOverlay maps registered function names to parameter names.
type NameOverlay map[string][]string

type overlayFile struct {
	Functions map[string][]string `json:"functions" yaml:"functions"`
}

// LoadNames reads a JSON or YAML overlay from fsys. The file holds a single
// `functions` map of function name to parameter names.
func LoadNames(fsys fs.FS, path string) (NameOverlay, error) {
	if fsys == nil {
		return nil, errors.New("catalog: overlay filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read overlay %s: %w", path, err)
	}
	return parseOverlay(data, path)
}

func parseOverlay(data []byte, source string) (NameOverlay, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("catalog: overlay %s is empty", source)
	}

	var doc overlayFile
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = overlayFile{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("catalog: parse overlay %s: invalid JSON or YAML", source)
		}
	}

	overlay := make(NameOverlay, len(doc.Functions))
	for name, params := range doc.Functions {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return nil, fmt.Errorf("catalog: overlay %s has a blank function name", source)
		}
		overlay[trimmed] = append([]string(nil), params...)
	}
	return overlay, nil
}

// Apply renames parameters on reg. Entries are applied in name order and the
// first failure stops the pass.
func (o NameOverlay) Apply(reg *Registry) error {
	names := make([]string, 0, len(o))
	for name := range o {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := reg.Rename(name, o[name]...); err != nil {
			return err
		}
	}
	return nil
}
