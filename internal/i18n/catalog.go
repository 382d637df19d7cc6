package i18n

import (
	"embed"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	xlang "golang.org/x/text/language"
)

//go:embed active.zh.toml active.en.toml
var localeFS embed.FS

// catalog holds the generic key -> {zh, en} message table, backed by go-i18n
// with one localizer per language. Loaded once at startup and read-only
// afterwards.
type catalog struct {
	zh *i18n.Localizer
	en *i18n.Localizer
}

func newCatalog() *catalog {
	bundle := i18n.NewBundle(xlang.Chinese)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.zh.toml", "active.en.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			panic(fmt.Sprintf("i18n: failed to load embedded catalog %s: %v", file, err))
		}
	}

	return &catalog{
		zh: i18n.NewLocalizer(bundle, "zh"),
		en: i18n.NewLocalizer(bundle, "en"),
	}
}

// lookup returns the per-language texts for key. A language with no entry
// yields an empty string; ok reports whether the key exists in either
// language.
func (c *catalog) lookup(key string) (zhText, enText string, ok bool) {
	zhText, zhErr := c.zh.Localize(&i18n.LocalizeConfig{MessageID: key})
	enText, enErr := c.en.Localize(&i18n.LocalizeConfig{MessageID: key})
	if zhErr != nil {
		zhText = ""
	}
	if enErr != nil {
		enText = ""
	}
	return zhText, enText, zhErr == nil || enErr == nil
}
