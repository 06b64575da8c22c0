package ui_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-timezones/internal/config"
)

// translationKeys lists every key defined in config.go. New keys must be
// added here and to every active.<lang>.json file.
var translationKeys = []string{
	config.TKeyWinTitle,
	config.TKeyHeader,
	config.TKeySearchHint,
	config.TKeyTimeTravel,
	config.TKeyBtnNow,
	config.TKeyLblDay,
	config.TKeyLblNight,
	config.TKeyLblNow,
	config.TKeyLblFromNow,
	config.TKeyRowError,
	config.TKeyEmptyState,
}

func loadLocale(t *testing.T, lang string) map[string]interface{} {
	t.Helper()

	path := filepath.Join("locales", "active."+lang+".json")
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// Fallback for running tests from a different CWD
		path = filepath.Join("..", "..", "internal", "ui", "locales", "active."+lang+".json")
		content, err = os.ReadFile(path)
	}
	require.NoErrorf(t, err, "Must load active.%s.json", lang)

	var jsonMap map[string]interface{}
	require.NoError(t, json.Unmarshal(content, &jsonMap), "JSON must be valid")
	return jsonMap
}

// TestI18nIntegrity ensures that every translation key defined in config.go
// actually exists in every locale JSON file, and flags orphans.
func TestI18nIntegrity(t *testing.T) {
	defined := make(map[string]bool)
	for _, k := range translationKeys {
		defined[k] = true
	}

	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			jsonMap := loadLocale(t, lang)

			for key := range defined {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in active.%s.json", key, lang)
			}

			for jsonKey := range jsonMap {
				if strings.HasPrefix(jsonKey, "_") {
					continue
				}
				if !defined[jsonKey] {
					t.Logf("Warning: Key '%s' exists in active.%s.json but not in config.go (might be unused)", jsonKey, lang)
				}
			}
		})
	}
}
