package lingo

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// WithJSONDir returns an Option that loads catalog files from an fs.FS.
// File convention: {lang}.json, each a flat map from canonical key to
// translated template.
//
// Example structure:
//
//	es.json
//	fr.json
func WithJSONDir(fsys fs.FS) Option {
	return func(c *Catalog) error {
		return loadDir(c, fsys, ".json", func(data []byte, v any) error {
			return json.Unmarshal(data, v)
		})
	}
}

// WithYAMLDir returns an Option that loads catalog files from an fs.FS.
// File convention: {lang}.yaml or {lang}.yml, each a flat map from canonical
// key to translated template.
//
// Example structure:
//
//	es.yaml
//	jp.yml
func WithYAMLDir(fsys fs.FS) Option {
	return func(c *Catalog) error {
		return loadDir(c, fsys, ".yaml", func(data []byte, v any) error {
			return yaml.Unmarshal(data, v)
		})
	}
}

func loadDir(c *Catalog, fsys fs.FS, ext string, unmarshal func([]byte, any) error) error {
	return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		fileExt := strings.ToLower(path.Ext(filePath))

		// Case-insensitive comparison handles both .YAML and .yaml extensions across different systems
		var matches bool
		if ext == ".yaml" {
			matches = fileExt == ".yaml" || fileExt == ".yml"
		} else {
			matches = fileExt == ext
		}
		if !matches {
			return nil
		}

		// The filename (minus extension) is the language tag.
		lang := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
		if lang == "" {
			return fmt.Errorf("%w: file %q must be named after a language tag", ErrInvalidFile, filePath)
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var templates map[string]string
		if err := unmarshal(data, &templates); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}

		for key, tpl := range templates {
			c.add(key, lang, tpl)
		}

		return nil
	})
}
