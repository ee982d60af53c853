package locale

import (
	"fmt"

	"github.com/shouni/gemini-talk-kit/pkg/domain"
)

var registry = mustRegister(enUS(), ptBR(), esES())

// mustRegister はパッケージ初期化時に全ロケールを検証します。
// 翻訳の欠落はロード時に panic となり、実行時には発生しません。
func mustRegister(defs ...Definition) map[domain.Locale]*Bundle {
	bundles := make(map[domain.Locale]*Bundle, len(defs))
	for _, def := range defs {
		b, err := newBundle(def)
		if err != nil {
			panic(err)
		}
		if _, dup := bundles[def.Locale]; dup {
			panic(fmt.Sprintf("locale %s registered twice", def.Locale))
		}
		bundles[def.Locale] = b
	}
	if _, ok := bundles[domain.FallbackLocale]; !ok {
		panic(fmt.Sprintf("fallback locale %s is not registered", domain.FallbackLocale))
	}
	return bundles
}

// Templates はロケールのバンドルを返します。未知のロケールはフォールバックに解決され、失敗しません。
func Templates(loc domain.Locale) *Bundle {
	if b, ok := registry[loc]; ok {
		return b
	}
	return registry[domain.FallbackLocale]
}

// RejectTokens は全ロケールの拒否トークンを domain.Locales() の順で返します。
// モデルが別言語で応答する場合に備え、判定は常に全トークンで行います。
func RejectTokens() []string {
	tokens := make([]string, 0, len(registry))
	for _, loc := range domain.Locales() {
		if b, ok := registry[loc]; ok {
			tokens = append(tokens, b.RejectToken())
		}
	}
	return tokens
}
