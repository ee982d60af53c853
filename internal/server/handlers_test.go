package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shouni/gemini-talk-kit/pkg/attachment"
	"github.com/shouni/gemini-talk-kit/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, gen *mockGenerator, loader AttachmentLoader) http.Handler {
	t.Helper()
	h, err := NewHandler(gen, loader)
	require.NoError(t, err)
	return NewRouter(h)
}

func do(t *testing.T, srv http.Handler, method, path, body string) (*httptest.ResponseRecorder, outcomeResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var resp outcomeResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return rec, resp
}

func TestNewHandler(t *testing.T) {
	_, err := NewHandler(nil, nil)
	assert.Error(t, err)
}

func TestHandler_Generate(t *testing.T) {
	t.Run("成功時は Markdown と HTML を返す", func(t *testing.T) {
		gen := &mockGenerator{outcome: domain.Success("**Faith** is a principle")}
		srv := newTestServer(t, gen, nil)

		rec, resp := do(t, srv, http.MethodPost, "/api/generate",
			`{"contentType":"talk","locale":"pt_br","theme":"Fé","durationMinutes":15}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.OutcomeSuccess, resp.Outcome)
		assert.Equal(t, "**Faith** is a principle", resp.Text)
		assert.Contains(t, resp.HTML, "<strong>Faith</strong>")
		assert.Empty(t, resp.Message)

		assert.Equal(t, domain.ContentTypeTalk, gen.lastType)
		assert.Equal(t, domain.LocalePtBR, gen.lastLocale)
		assert.Equal(t, domain.Minutes("15"), gen.lastReq.Duration)
		assert.Equal(t, domain.AudienceAdults, gen.lastReq.Audience, "未指定の対象者はフォームの初期値")
		assert.Equal(t, domain.DefaultSources(), gen.lastReq.Sources)
	})

	t.Run("Outcome の種類ごとにステータスが決まる", func(t *testing.T) {
		tests := []struct {
			outcome domain.Outcome
			status  int
		}{
			{domain.ValidationFailure("theme is required"), http.StatusBadRequest},
			{domain.DoctrinalRejection(), http.StatusUnprocessableEntity},
			{domain.TransportFailure("timeout"), http.StatusBadGateway},
		}
		for _, tt := range tests {
			gen := &mockGenerator{outcome: tt.outcome}
			srv := newTestServer(t, gen, nil)

			rec, resp := do(t, srv, http.MethodPost, "/api/generate", `{"contentType":"lesson","locale":"en-US","theme":"x"}`)

			assert.Equal(t, tt.status, rec.Code, tt.outcome.Kind)
			assert.Equal(t, tt.outcome.Kind, resp.Outcome)
			assert.Empty(t, resp.Text)
			assert.NotEmpty(t, resp.Message)
		}
	})

	t.Run("拒否時はローカライズされた教義メッセージ", func(t *testing.T) {
		gen := &mockGenerator{outcome: domain.DoctrinalRejection()}
		srv := newTestServer(t, gen, nil)

		_, resp := do(t, srv, http.MethodPost, "/api/generate", `{"contentType":"talk","locale":"en-US","theme":"x"}`)

		assert.Contains(t, resp.Message, "doctrinal concern")
	})

	t.Run("不正な JSON は 400 でモデルを呼ばない", func(t *testing.T) {
		gen := &mockGenerator{}
		srv := newTestServer(t, gen, nil)

		rec, _ := do(t, srv, http.MethodPost, "/api/generate", `{"theme":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, gen.calls)
	})

	t.Run("attachmentURI はローダーで読み込んで添付にする", func(t *testing.T) {
		gen := &mockGenerator{outcome: domain.Success("ok")}
		att := &domain.Attachment{Name: "a.png", MIMEType: "image/png", Base64Data: "AAAA"}
		loader := &mockLoader{att: att}
		srv := newTestServer(t, gen, loader)

		rec, _ := do(t, srv, http.MethodPost, "/api/generate",
			`{"contentType":"talk","theme":"x","attachmentURI":"gs://bucket/a.png"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "gs://bucket/a.png", loader.lastURI)
		assert.Same(t, att, gen.lastReq.Attachment)
	})

	t.Run("添付の読み込み失敗はエラー種別でステータスが変わる", func(t *testing.T) {
		tests := []struct {
			err    error
			status int
		}{
			{fmt.Errorf("%w: private", attachment.ErrUnsafeURL), http.StatusBadRequest},
			{fmt.Errorf("%w: ftp", attachment.ErrUnsupportedScheme), http.StatusBadRequest},
			{errors.New("connection reset"), http.StatusBadGateway},
		}
		for _, tt := range tests {
			gen := &mockGenerator{}
			srv := newTestServer(t, gen, &mockLoader{err: tt.err})

			rec, _ := do(t, srv, http.MethodPost, "/api/generate", `{"contentType":"talk","theme":"x","attachmentURI":"http://x/a.png"}`)

			assert.Equal(t, tt.status, rec.Code, tt.err.Error())
			assert.Zero(t, gen.calls)
		}
	})

	t.Run("ローダー未設定で attachmentURI を指定すると 400", func(t *testing.T) {
		gen := &mockGenerator{}
		srv := newTestServer(t, gen, nil)

		rec, _ := do(t, srv, http.MethodPost, "/api/generate", `{"contentType":"talk","theme":"x","attachmentURI":"gs://b/a.png"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, gen.calls)
	})
}

func TestHandler_SuggestHymn(t *testing.T) {
	gen := &mockGenerator{outcome: domain.Success("Hymn A (#1)\nHymn B (#2)\nHymn C (#3)")}
	srv := newTestServer(t, gen, nil)

	rec, resp := do(t, srv, http.MethodPost, "/api/hymns", `{"locale":"es-ES","theme":"Fe","audience":"Youth"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, resp.HTML, "<br>")
	assert.Equal(t, "Fe", gen.lastTheme)
	assert.Equal(t, domain.AudienceYouth, gen.lastAud)
	assert.Equal(t, domain.LocaleEsES, gen.lastLocale)
}

func TestHandler_FollowUpQuestions(t *testing.T) {
	t.Run("append 指定時は見出し付きで連結する", func(t *testing.T) {
		gen := &mockGenerator{outcome: domain.Success("1. Why?")}
		srv := newTestServer(t, gen, nil)

		rec, resp := do(t, srv, http.MethodPost, "/api/questions",
			`{"locale":"en-US","priorText":"Lesson body","append":true}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Lesson body\n\n**Additional Questions:**\n1. Why?", resp.Text)
		assert.Equal(t, "Lesson body", gen.lastPrior)
	})

	t.Run("append なしは質問のみ", func(t *testing.T) {
		gen := &mockGenerator{outcome: domain.Success("1. Why?")}
		srv := newTestServer(t, gen, nil)

		_, resp := do(t, srv, http.MethodPost, "/api/questions", `{"priorText":"Lesson body"}`)

		assert.Equal(t, "1. Why?", resp.Text)
		assert.Equal(t, domain.FallbackLocale, gen.lastLocale)
	})
}

func TestHandler_Vocabulary(t *testing.T) {
	srv := newTestServer(t, &mockGenerator{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/vocabulary?locale=fr-FR", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp vocabularyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.FallbackLocale, resp.Locale, "未知のロケールはフォールバック")
	assert.Len(t, resp.Audiences, 3)
	assert.Len(t, resp.Sources, 6)
	assert.Equal(t, "Come, Follow Me", resp.Sources[3].Label)
	assert.Equal(t, domain.DefaultDuration, resp.DefaultDuration)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, &mockGenerator{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
