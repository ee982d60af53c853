package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// md は GFM 拡張を有効にした共有コンバーターです。goldmark.Markdown は並行利用できます。
// モデル出力内の生 HTML はエスケープせず省略されます（html.WithUnsafe を付けない）。
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// HTML は生成結果の Markdown を HTML に変換します。
func HTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("markdown 変換に失敗しました: %w", err)
	}
	return buf.String(), nil
}
