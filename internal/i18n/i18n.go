// Package i18n provides translated user-facing messages for the CLI.
// Locales are embedded YAML files keyed by dotted message IDs; unknown
// keys and untranslated messages fall back to English.
package i18n

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "en"

var (
	mu       sync.RWMutex
	language = DefaultLanguage
	catalogs map[string]map[string]string
	loadOnce sync.Once
)

// SetLanguage selects the active locale. Unrecognised values fall back
// to English.
func SetLanguage(lang string) {
	mu.Lock()
	defer mu.Unlock()
	language = NormalizeLanguage(lang)
}

// Language returns the active locale tag.
func Language() string {
	mu.RLock()
	defer mu.RUnlock()
	return language
}

// NormalizeLanguage maps common spellings of supported locales onto
// their canonical tags.
func NormalizeLanguage(lang string) string {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(lang), "_", "-")) {
	case "pt", "pt-br", "ptbr", "portuguese":
		return "pt-BR"
	default:
		return "en"
	}
}

// T returns the message for key in the active locale, formatted with
// args. Missing translations fall back to English; a key absent from
// every locale is returned as-is so the gap is visible.
func T(key string, args ...any) string {
	loadOnce.Do(loadCatalogs)

	mu.RLock()
	lang := language
	mu.RUnlock()

	msg, ok := catalogs[lang][key]
	if !ok {
		msg, ok = catalogs[DefaultLanguage][key]
	}
	if !ok {
		return key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

func loadCatalogs() {
	catalogs = make(map[string]map[string]string)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + name)
		if err != nil {
			continue
		}

		var tree map[string]any
		if err := yaml.Unmarshal(data, &tree); err != nil {
			continue
		}

		lang := strings.TrimSuffix(name, ".yaml")
		catalogs[lang] = flatten(tree, "")
	}
}

// flatten turns nested YAML sections into dotted keys.
func flatten(tree map[string]any, prefix string) map[string]string {
	out := make(map[string]string)
	for key, value := range tree {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			for k, s := range flatten(v, full) {
				out[k] = s
			}
		case string:
			out[full] = v
		}
	}
	return out
}
