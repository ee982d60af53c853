package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shouni/gemini-talk-kit/pkg/attachment"
	"github.com/shouni/gemini-talk-kit/pkg/domain"
	"github.com/shouni/gemini-talk-kit/pkg/generator"
	"github.com/shouni/gemini-talk-kit/pkg/render"
)

// maxBodyBytes は base64 の添付を含むリクエストボディの上限です。
const maxBodyBytes = 16 << 20

// AttachmentLoader は URI 指定の添付を読み込みます。
type AttachmentLoader interface {
	Load(ctx context.Context, uri string) (*domain.Attachment, error)
}

// Handler は生成 API のハンドラー群です。
type Handler struct {
	gen    generator.ContentGenerator
	loader AttachmentLoader
}

// NewHandler は依存関係を注入して Handler を初期化します。loader が nil の場合 attachmentURI は受け付けません。
func NewHandler(gen generator.ContentGenerator, loader AttachmentLoader) (*Handler, error) {
	if gen == nil {
		return nil, fmt.Errorf("content generator is required")
	}
	return &Handler{gen: gen, loader: loader}, nil
}

type generateRequest struct {
	ContentType domain.ContentType `json:"contentType"`
	Locale      string             `json:"locale"`
	domain.GenerationRequest
	AttachmentURI string `json:"attachmentURI,omitempty"`
}

type hymnRequest struct {
	Locale      string          `json:"locale"`
	Theme       string          `json:"theme"`
	ContextText string          `json:"contextText"`
	Audience    domain.Audience `json:"audience"`
}

type questionsRequest struct {
	Locale    string          `json:"locale"`
	PriorText string          `json:"priorText"`
	Audience  domain.Audience `json:"audience"`
	// Append が true の場合、見出し付きで前回の結果に連結したテキストを返します。
	Append bool `json:"append"`
}

// Generate は POST /api/generate を処理します。
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	ctx := r.Context()
	loc := domain.ParseLocale(req.Locale)

	genReq := withFormDefaults(req.GenerationRequest)
	if genReq.Attachment == nil && strings.TrimSpace(req.AttachmentURI) != "" {
		att, status, err := h.loadAttachment(ctx, req.AttachmentURI)
		if err != nil {
			WriteJSONError(w, status, err.Error())
			return
		}
		genReq.Attachment = att
	}

	outcome := h.gen.Generate(ctx, req.ContentType, genReq, loc)
	h.respond(w, r, domain.OperationGenerate, outcome, outcome.Text, loc)
}

// SuggestHymn は POST /api/hymns を処理します。
func (h *Handler) SuggestHymn(w http.ResponseWriter, r *http.Request) {
	var req hymnRequest
	if !decodeBody(w, r, &req) {
		return
	}
	loc := domain.ParseLocale(req.Locale)

	outcome := h.gen.SuggestHymn(r.Context(), req.Theme, req.ContextText, audienceOrDefault(req.Audience), loc)
	h.respond(w, r, domain.OperationHymn, outcome, outcome.Text, loc)
}

// FollowUpQuestions は POST /api/questions を処理します。
func (h *Handler) FollowUpQuestions(w http.ResponseWriter, r *http.Request) {
	var req questionsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	loc := domain.ParseLocale(req.Locale)

	outcome := h.gen.GenerateFollowUpQuestions(r.Context(), req.PriorText, audienceOrDefault(req.Audience), loc)
	text := outcome.Text
	if outcome.OK() && req.Append {
		text = generator.AppendFollowUpQuestions(req.PriorText, outcome.Text, loc)
	}
	h.respond(w, r, domain.OperationFollowUp, outcome, text, loc)
}

// Healthz は GET /healthz を処理します。
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, op domain.Operation, outcome domain.Outcome, text string, loc domain.Locale) {
	resp := outcomeResponse{
		Outcome: outcome.Kind,
		Message: generator.UserMessage(op, outcome, loc),
	}
	if outcome.OK() {
		resp.Text = text
		html, err := render.HTML(text)
		if err != nil {
			slog.WarnContext(r.Context(), "HTML 変換に失敗しました。Markdown のみ返します", "operation", op, "error", err)
		}
		resp.HTML = html
	} else {
		slog.InfoContext(r.Context(), "操作が失敗しました", "operation", op, "outcome", outcome.Kind, "detail", outcome.Message)
	}
	writeJSON(w, statusFor(outcome.Kind), resp)
}

func (h *Handler) loadAttachment(ctx context.Context, uri string) (*domain.Attachment, int, error) {
	if h.loader == nil {
		return nil, http.StatusBadRequest, fmt.Errorf("attachmentURI is not supported by this server")
	}
	att, err := h.loader.Load(ctx, uri)
	if err == nil {
		return att, http.StatusOK, nil
	}
	slog.WarnContext(ctx, "添付の読み込みに失敗しました", "uri", uri, "error", err)
	if errors.Is(err, attachment.ErrUnsafeURL) || errors.Is(err, attachment.ErrUnsupportedScheme) {
		return nil, http.StatusBadRequest, err
	}
	return nil, http.StatusBadGateway, err
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("malformed request body: %v", err))
		return false
	}
	return true
}

// withFormDefaults は未指定の項目に入力フォームの初期値を補います。
func withFormDefaults(req domain.GenerationRequest) domain.GenerationRequest {
	req.Audience = audienceOrDefault(req.Audience)
	if req.Sources == nil {
		req.Sources = domain.DefaultSources()
	}
	if strings.TrimSpace(string(req.Duration)) == "" {
		req.Duration = domain.DefaultDuration
	}
	return req
}

func audienceOrDefault(a domain.Audience) domain.Audience {
	if strings.TrimSpace(string(a)) == "" {
		return domain.AudienceAdults
	}
	return a
}
