package generator

import "fmt"

const (
	DefaultTextModel   = "gemini-2.5-flash"
	DefaultVisionModel = "gemini-2.5-flash-image"
	DefaultProModel    = "gemini-2.5-pro"
)

// ModelVariant はモデルの用途区分です。具体的なモデル名は Models で解決します。
type ModelVariant string

const (
	VariantText   ModelVariant = "text"
	VariantVision ModelVariant = "vision"
	VariantPro    ModelVariant = "pro"
)

// Models は用途区分ごとのモデル名です。
type Models struct {
	Text   string
	Vision string
	Pro    string
}

// DefaultModels は既定のモデル構成を返します。
func DefaultModels() Models {
	return Models{
		Text:   DefaultTextModel,
		Vision: DefaultVisionModel,
		Pro:    DefaultProModel,
	}
}

// Resolve は用途区分に対応するモデル名を返します。
func (m Models) Resolve(v ModelVariant) (string, error) {
	var name string
	switch v {
	case VariantText:
		name = m.Text
	case VariantVision:
		name = m.Vision
	case VariantPro:
		name = m.Pro
	default:
		return "", fmt.Errorf("unknown model variant: %q", v)
	}
	if name == "" {
		return "", fmt.Errorf("model for variant %q is not configured", v)
	}
	return name, nil
}
