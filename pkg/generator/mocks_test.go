package generator

import (
	"context"

	"github.com/shouni/gemini-talk-kit/pkg/domain"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// --- Mocks ---

// mockAIClient は GenerativeModel を実装し、受け取った引数を記録します。
type mockAIClient struct {
	calls     int
	lastModel string
	lastParts []*genai.Part
	lastOpts  gemini.GenerateOptions

	resp *gemini.Response
	err  error
}

func (m *mockAIClient) GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error) {
	m.calls++
	m.lastModel = model
	m.lastParts = parts
	m.lastOpts = opts
	return m.resp, m.err
}

// textResponse は1候補・1テキストパーツの応答を作ります。
func textResponse(text string) *gemini.Response {
	return &gemini.Response{
		RawResponse: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content:      &genai.Content{Parts: []*genai.Part{{Text: text}}},
				FinishReason: genai.FinishReasonStop,
			}},
		},
	}
}

type callRecord struct {
	variant    ModelVariant
	system     string
	user       string
	attachment *domain.Attachment
}

// mockCaller は Caller を実装し、呼び出しを記録して固定の Outcome を返します。
type mockCaller struct {
	calls   []callRecord
	outcome domain.Outcome
}

func (m *mockCaller) Call(ctx context.Context, variant ModelVariant, systemInstruction, userInstruction string, attachment *domain.Attachment) domain.Outcome {
	m.calls = append(m.calls, callRecord{
		variant:    variant,
		system:     systemInstruction,
		user:       userInstruction,
		attachment: attachment,
	})
	return m.outcome
}
