package server

import (
	"net/http"

	"github.com/shouni/gemini-talk-kit/pkg/domain"
	"github.com/shouni/gemini-talk-kit/pkg/locale"
)

type option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type vocabularyResponse struct {
	Locale          domain.Locale   `json:"locale"`
	Locales         []domain.Locale `json:"locales"`
	Audiences       []option        `json:"audiences"`
	Sources         []option        `json:"sources"`
	DefaultSources  []domain.Source `json:"defaultSources"`
	Modes           []option        `json:"generationModes"`
	DefaultDuration domain.Minutes  `json:"defaultDurationMinutes"`
}

// Vocabulary は GET /api/vocabulary?locale= を処理し、フォームの選択肢を返します。
func (h *Handler) Vocabulary(w http.ResponseWriter, r *http.Request) {
	b := locale.Templates(domain.ParseLocale(r.URL.Query().Get("locale")))

	resp := vocabularyResponse{
		Locale:          b.Locale(),
		Locales:         domain.Locales(),
		DefaultSources:  domain.DefaultSources(),
		DefaultDuration: domain.DefaultDuration,
	}
	for _, a := range domain.Audiences() {
		resp.Audiences = append(resp.Audiences, option{Value: string(a), Label: b.AudienceLabel(a)})
	}
	for _, s := range domain.Sources() {
		resp.Sources = append(resp.Sources, option{Value: string(s), Label: b.SourceLabel(s)})
	}
	for _, m := range []domain.GenerationMode{domain.GenerationModeFullText, domain.GenerationModeTopicsOnly} {
		resp.Modes = append(resp.Modes, option{Value: string(m), Label: b.ModeLabel(m)})
	}
	writeJSON(w, http.StatusOK, resp)
}
