package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/martinlehoux/kotoba/kcore"
	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

// catalog is a flat message map. Values are strings, or string maps holding
// plural forms (one/other) the way go-i18n message tables do.
type catalog map[string]any

func catalogPath(dir string, format string, locale string) string {
	if format == "yml" {
		return filepath.Join(dir, locale, "index.yml")
	}
	return filepath.Join(dir, "messages."+locale+".toml")
}

func loadCatalog(path string, format string) (catalog, error) {
	current := catalog{}
	content, err := os.ReadFile(path) // #nosec G304 CLI arg
	if errors.Is(err, os.ErrNotExist) {
		return current, nil
	}
	if err != nil {
		return nil, kcore.Wrap(err, "error reading catalog")
	}
	if format == "yml" {
		err = yaml.Unmarshal(content, &current)
	} else {
		err = toml.Unmarshal(content, &current)
	}
	if err != nil {
		return nil, kcore.Wrap(err, "error unmarshalling catalog")
	}
	return current, nil
}

func writeCatalog(path string, format string, current catalog) error {
	var content []byte
	var err error
	if format == "yml" {
		content, err = yaml.Marshal(current)
	} else {
		content, err = toml.Marshal(current)
	}
	if err != nil {
		return kcore.Wrap(err, "error marshalling catalog")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return kcore.Wrap(err, "error creating catalog directory")
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return kcore.Wrap(err, "error writing catalog")
	}
	return nil
}

// merge reconciles a catalog with the extracted keys: unused entries are
// dropped, missing ones added as empty placeholders, existing translations
// kept. Returns the merged catalog and the translated entry count.
func merge(current catalog, extracted map[string]Message, logger *slog.Logger) (catalog, int) {
	merged := catalog{}
	translated := 0
	for id, value := range current {
		if _, ok := extracted[id]; !ok {
			logger.Info("found unused key", slog.String("key", id))
			continue
		}
		merged[id] = value
		if isTranslated(value) {
			translated++
		}
	}
	for id, message := range extracted {
		if _, ok := current[id]; ok {
			continue
		}
		logger.Info("found missing key", slog.String("key", id))
		if message.Plural != "" {
			merged[id] = map[string]string{"one": "", "other": ""}
		} else {
			merged[id] = ""
		}
	}
	return merged, translated
}

func isTranslated(value any) bool {
	switch value := value.(type) {
	case string:
		return value != ""
	case map[string]any:
		for _, form := range value {
			if form, ok := form.(string); ok && form != "" {
				return true
			}
		}
	case map[string]string:
		for _, form := range value {
			if form != "" {
				return true
			}
		}
	}
	return false
}
