// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n provides translated UI strings. It uses the go-i18n library
// to load YAML message files embedded into the binary.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      string
)

// Init initializes the bundle and sets up the localizer for lang.
func Init(l string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile("locales/" + f.Name())
		_, _ = bundle.ParseMessageFileBytes(data, f.Name())
	}

	lang = l
	localizer = i18n.NewLocalizer(bundle, l)
}

// SetLang changes the active language.
func SetLang(l string) {
	Init(l)
}

// GetLang returns the active language code.
func GetLang() string {
	if localizer == nil {
		Init("en")
	}
	return lang
}

// T translates messageID. A single map argument is used as template data,
// any other arguments are applied fmt-style to the translated text. Unknown
// IDs are returned unchanged.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}

	msg, err := localizer.Localize(cfg)
	if err != nil {
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// TN translates a plural message; the count is available as {{.Count}}.
func TN(messageID string, count int) string {
	if localizer == nil {
		Init("en")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		PluralCount:  count,
		TemplateData: map[string]any{"Count": count},
	})
	if err != nil {
		return messageID
	}
	return msg
}

// GetAvailableLocales maps each embedded locale code to its display name.
func GetAvailableLocales() map[string]string {
	if bundle == nil {
		Init("en")
	}
	result := make(map[string]string)
	for _, tag := range bundle.LanguageTags() {
		name := display.Self.Name(tag)
		if name == "" {
			name = tag.String()
		}
		result[tag.String()] = name
	}
	return result
}

// LocaleCodes returns the embedded locale codes in sorted order.
func LocaleCodes() []string {
	codes := make([]string, 0)
	for code := range GetAvailableLocales() {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Tag returns the language tag of the active locale, falling back to English.
func Tag() language.Tag {
	tag, err := language.Parse(strings.TrimSpace(GetLang()))
	if err != nil {
		return language.English
	}
	return tag
}
