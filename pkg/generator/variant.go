package generator

import "github.com/shouni/gemini-talk-kit/pkg/domain"

type variantKey struct {
	op       domain.Operation
	hasImage bool
}

// variantPolicy は操作と画像添付の有無からモデル区分を決める表です。
var variantPolicy = map[variantKey]ModelVariant{
	{domain.OperationGenerate, false}: VariantText,
	{domain.OperationGenerate, true}:  VariantVision,
	{domain.OperationHymn, false}:     VariantText,
	{domain.OperationHymn, true}:      VariantText,
	{domain.OperationFollowUp, false}: VariantPro,
	{domain.OperationFollowUp, true}:  VariantPro,
}

// SelectVariant は操作に応じたモデル区分を返します。未知の操作はテキストモデルです。
func SelectVariant(op domain.Operation, hasImageAttachment bool) ModelVariant {
	if v, ok := variantPolicy[variantKey{op, hasImageAttachment}]; ok {
		return v
	}
	return VariantText
}
