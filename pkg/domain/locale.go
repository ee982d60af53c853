package domain

import "strings"

// Locale はサポートする言語/地域タグです。
type Locale string

const (
	LocalePtBR Locale = "pt-BR"
	LocaleEnUS Locale = "en-US"
	LocaleEsES Locale = "es-ES"

	// FallbackLocale は未知のロケールが指定された場合に使われます。
	FallbackLocale = LocaleEnUS
)

// Locales はサポート対象のロケールを返します。
func Locales() []Locale {
	return []Locale{LocalePtBR, LocaleEnUS, LocaleEsES}
}

// ParseLocale は "pt_br" や "EN-us" のような表記ゆれを正規化します。
// 未知のタグはそのまま返し、解決はテンプレート参照時のフォールバックに任せます。
func ParseLocale(raw string) Locale {
	tag := strings.ReplaceAll(strings.TrimSpace(raw), "_", "-")
	if tag == "" {
		return FallbackLocale
	}
	for _, l := range Locales() {
		if strings.EqualFold(string(l), tag) {
			return l
		}
	}
	return Locale(tag)
}

// Supported は既知のロケールかどうかを返します。
func (l Locale) Supported() bool {
	for _, known := range Locales() {
		if l == known {
			return true
		}
	}
	return false
}
