package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

type decodeFunc func(data []byte, v any) error

var decoders = map[string]decodeFunc{
	".json": json.Unmarshal,
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
}

// WithDir loads every {lang}/{namespace}.{json,yaml,yml} file found in fsys.
// When namespaces are given, files of other namespaces are skipped.
// Files outside a language directory, or nested deeper than one level,
// are rejected with ErrInvalidFile.
//
//	en/routes.yaml
//	de/routes.json
func WithDir(fsys fs.FS, namespaces ...string) Option {
	return func(i *I18n) error {
		return fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}

			decode, ok := decoders[strings.ToLower(path.Ext(name))]
			if !ok {
				return nil
			}

			lang, file, nested := strings.Cut(name, "/")
			if !nested || strings.Contains(file, "/") {
				return fmt.Errorf("%w: %q is not a {lang}/{namespace} file", ErrInvalidFile, name)
			}
			namespace := strings.TrimSuffix(file, path.Ext(file))
			if len(namespaces) > 0 && !slices.Contains(namespaces, namespace) {
				return nil
			}

			data, err := fs.ReadFile(fsys, name)
			if err != nil {
				return fmt.Errorf("i18n: read %q: %w", name, err)
			}

			var raw map[string]any
			if err := decode(data, &raw); err != nil {
				return fmt.Errorf("%w: %q: %v", ErrInvalidFile, name, err)
			}
			i.add(lang, namespace, Flatten(raw))
			return nil
		})
	}
}
