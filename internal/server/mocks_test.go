package server

import (
	"context"

	"github.com/shouni/gemini-talk-kit/pkg/domain"
)

// --- Mocks ---

type mockGenerator struct {
	outcome domain.Outcome

	calls       int
	lastType    domain.ContentType
	lastReq     domain.GenerationRequest
	lastLocale  domain.Locale
	lastTheme   string
	lastContext string
	lastPrior   string
	lastAud     domain.Audience
}

func (m *mockGenerator) Generate(ctx context.Context, ct domain.ContentType, req domain.GenerationRequest, loc domain.Locale) domain.Outcome {
	m.calls++
	m.lastType, m.lastReq, m.lastLocale = ct, req, loc
	return m.outcome
}

func (m *mockGenerator) SuggestHymn(ctx context.Context, theme, contextText string, audience domain.Audience, loc domain.Locale) domain.Outcome {
	m.calls++
	m.lastTheme, m.lastContext, m.lastAud, m.lastLocale = theme, contextText, audience, loc
	return m.outcome
}

func (m *mockGenerator) GenerateFollowUpQuestions(ctx context.Context, prior string, audience domain.Audience, loc domain.Locale) domain.Outcome {
	m.calls++
	m.lastPrior, m.lastAud, m.lastLocale = prior, audience, loc
	return m.outcome
}

type mockLoader struct {
	att     *domain.Attachment
	err     error
	lastURI string
}

func (m *mockLoader) Load(ctx context.Context, uri string) (*domain.Attachment, error) {
	m.lastURI = uri
	return m.att, m.err
}
