// Package i18n holds the translation strings used in notification messages.
// The bundle is built once at startup from the embedded locale files and is
// read-only afterwards, so it is safe to share across request handlers and
// background workers without locking.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed locales/*.json
var localeFS embed.FS

const fallbackLang = "en"

// Bundle is an immutable lookup table of per-language message catalogs.
type Bundle struct {
	defaultLang string
	messages    map[string]map[string]string
}

// Load parses every embedded locale file into a new Bundle.
// Unknown defaultLang falls back to "en".
func Load(defaultLang string) (*Bundle, error) {
	entries, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, err
	}

	messages := make(map[string]map[string]string, len(entries))
	for _, e := range entries {
		lang := strings.TrimSuffix(e.Name(), ".json")
		data, err := localeFS.ReadFile("locales/" + e.Name())
		if err != nil {
			return nil, err
		}
		catalog := make(map[string]string)
		if err := json.Unmarshal(data, &catalog); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", e.Name(), err)
		}
		messages[lang] = catalog
	}

	if _, ok := messages[defaultLang]; !ok {
		defaultLang = fallbackLang
	}
	return &Bundle{defaultLang: defaultLang, messages: messages}, nil
}

// T resolves key for lang, falling back to English and finally to the key
// itself. Positional arguments are applied with fmt.Sprintf.
func (b *Bundle) T(lang, key string, args ...interface{}) string {
	catalog, ok := b.messages[lang]
	if !ok {
		catalog = b.messages[b.defaultLang]
	}
	text, ok := catalog[key]
	if !ok {
		if en, found := b.messages[fallbackLang][key]; found {
			text = en
		} else {
			text = key
		}
	}
	if len(args) > 0 {
		return fmt.Sprintf(text, args...)
	}
	return text
}

// Languages returns the codes of every loaded catalog.
func (b *Bundle) Languages() []string {
	langs := make([]string, 0, len(b.messages))
	for lang := range b.messages {
		langs = append(langs, lang)
	}
	return langs
}
