package localization

import (
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrBundleNotFound means no string bundle exists for the language.
var ErrBundleNotFound = errors.New("string bundle not found")

// DataSource loads the string bundle for a language.
type DataSource interface {
	Load(lang Language) (map[string]string, error)
}

// FileDataSource reads `<dir>/<lang>.json` bundles from disk.
type FileDataSource struct {
	Dir string
}

func NewFileDataSource(dir string) FileDataSource {
	return FileDataSource{Dir: dir}
}

func (s FileDataSource) Load(lang Language) (map[string]string, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, string(lang)+".json"))
	if err != nil {
		return nil, errors.Wrapf(ErrBundleNotFound, "%s: %v", lang, err)
	}
	bundle := make(map[string]string)
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, errors.Wrapf(err, "bundle %s", lang)
	}
	return bundle, nil
}

// StaticDataSource serves bundles from memory (tests and the demo binary).
type StaticDataSource map[Language]map[string]string

func (s StaticDataSource) Load(lang Language) (map[string]string, error) {
	bundle, ok := s[lang]
	if !ok {
		return nil, errors.Wrap(ErrBundleNotFound, string(lang))
	}
	return bundle, nil
}
