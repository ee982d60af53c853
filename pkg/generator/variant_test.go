package generator

import (
	"testing"

	"github.com/shouni/gemini-talk-kit/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestSelectVariant(t *testing.T) {
	tests := []struct {
		op       domain.Operation
		hasImage bool
		want     ModelVariant
	}{
		{domain.OperationGenerate, false, VariantText},
		{domain.OperationGenerate, true, VariantVision},
		{domain.OperationHymn, false, VariantText},
		{domain.OperationHymn, true, VariantText},
		{domain.OperationFollowUp, false, VariantPro},
		{domain.OperationFollowUp, true, VariantPro},
		{domain.Operation("unknown"), true, VariantText},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SelectVariant(tt.op, tt.hasImage), "op=%s image=%v", tt.op, tt.hasImage)
	}
}

func TestModels_Resolve(t *testing.T) {
	m := DefaultModels()

	got, err := m.Resolve(VariantVision)
	assert.NoError(t, err)
	assert.Equal(t, DefaultVisionModel, got)

	_, err = m.Resolve(ModelVariant("audio"))
	assert.Error(t, err)

	m.Pro = ""
	_, err = m.Resolve(VariantPro)
	assert.Error(t, err, "未設定のモデルはエラー")
}
