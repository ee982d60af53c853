package generator

import (
	"context"

	"github.com/shouni/gemini-talk-kit/pkg/domain"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// GenerativeModel は Gemini との通信部分です。gemini.GenerativeModel の一部を切り出しています。
type GenerativeModel interface {
	GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error)
}

// Caller はプロンプトと添付を送信し、解釈済みの結果を返します。
type Caller interface {
	// Call は1回だけ送信します。失敗時のリトライは行いません。
	Call(ctx context.Context, variant ModelVariant, systemInstruction, userInstruction string, attachment *domain.Attachment) domain.Outcome
}

// ContentGenerator はビジネスロジック層（HTTP ハンドラー等）が利用する統合窓口です。
type ContentGenerator interface {
	Generate(ctx context.Context, ct domain.ContentType, req domain.GenerationRequest, loc domain.Locale) domain.Outcome
	SuggestHymn(ctx context.Context, theme, contextText string, audience domain.Audience, loc domain.Locale) domain.Outcome
	GenerateFollowUpQuestions(ctx context.Context, prior string, audience domain.Audience, loc domain.Locale) domain.Outcome
}

// PhaseObserver は操作ごとの状態遷移を受け取ります。
type PhaseObserver func(ctx context.Context, op domain.Operation, phase domain.Phase)
