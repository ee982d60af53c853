package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/gemini-talk-kit/pkg/domain"
	"github.com/shouni/gemini-talk-kit/pkg/prompt"
)

// Service は3つの公開操作（本生成・賛美歌提案・追加質問）を提供します。
// 状態を持たないため、複数の操作を並行に呼び出せます。
type Service struct {
	caller   Caller
	observer PhaseObserver
}

// Option は Service の任意設定です。
type Option func(*Service)

// WithPhaseObserver は状態遷移の通知先を設定します。
func WithPhaseObserver(o PhaseObserver) Option {
	return func(s *Service) {
		s.observer = o
	}
}

// NewService は Caller を注入して Service を初期化します。
func NewService(caller Caller, opts ...Option) (*Service, error) {
	if caller == nil {
		return nil, fmt.Errorf("caller is required")
	}
	s := &Service{caller: caller}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Generate は Talk / Lesson を生成します。テーマが空の場合はモデルを呼び出しません。
func (s *Service) Generate(ctx context.Context, ct domain.ContentType, req domain.GenerationRequest, loc domain.Locale) domain.Outcome {
	const op = domain.OperationGenerate
	if !ct.Valid() {
		return s.reject(ctx, op, fmt.Sprintf("unknown content type %q", ct))
	}
	if strings.TrimSpace(req.Theme) == "" {
		return s.reject(ctx, op, "theme is required")
	}

	s.enter(ctx, op, domain.PhaseBuilding)
	system := prompt.SystemInstruction(ct, req.Audience, req.GenerationMode, loc)
	user := prompt.UserInstruction(req, loc)
	variant := SelectVariant(op, req.HasImageAttachment())

	return s.dispatch(ctx, op, variant, system, user, req.Attachment)
}

// SuggestHymn はテーマと参照テキストから賛美歌を3曲提案します。添付は一切送信しません。
func (s *Service) SuggestHymn(ctx context.Context, theme, contextText string, audience domain.Audience, loc domain.Locale) domain.Outcome {
	const op = domain.OperationHymn
	if strings.TrimSpace(theme) == "" && strings.TrimSpace(contextText) == "" {
		return s.reject(ctx, op, "theme or context text is required")
	}

	s.enter(ctx, op, domain.PhaseBuilding)
	system := prompt.HymnInstruction(loc)
	user := prompt.HymnUserInstruction(theme, contextText, audience, loc)

	return s.dispatch(ctx, op, SelectVariant(op, false), system, user, nil)
}

// GenerateFollowUpQuestions は既存の生成結果に対する追加の質問を生成します。
// 元が Talk であってもレッスン形式のシステム指示を使います。
func (s *Service) GenerateFollowUpQuestions(ctx context.Context, prior string, audience domain.Audience, loc domain.Locale) domain.Outcome {
	const op = domain.OperationFollowUp
	if strings.TrimSpace(prior) == "" {
		return s.reject(ctx, op, "prior generated text is required")
	}

	s.enter(ctx, op, domain.PhaseBuilding)
	system := prompt.SystemInstruction(domain.ContentTypeLesson, audience, "", loc)
	user := prompt.FollowUpInstruction(prior, loc)

	return s.dispatch(ctx, op, SelectVariant(op, false), system, user, nil)
}

func (s *Service) dispatch(ctx context.Context, op domain.Operation, variant ModelVariant, system, user string, attachment *domain.Attachment) domain.Outcome {
	s.enter(ctx, op, domain.PhaseAwaitingResponse)
	outcome := s.caller.Call(ctx, variant, system, user, attachment)
	s.enter(ctx, op, domain.TerminalPhase(outcome))
	return outcome
}

func (s *Service) reject(ctx context.Context, op domain.Operation, message string) domain.Outcome {
	slog.WarnContext(ctx, "入力検証に失敗しました", "operation", op, "reason", message)
	s.enter(ctx, op, domain.PhaseFailed)
	return domain.ValidationFailure(message)
}

func (s *Service) enter(ctx context.Context, op domain.Operation, phase domain.Phase) {
	slog.DebugContext(ctx, "phase", "operation", op, "phase", phase)
	if s.observer != nil {
		s.observer(ctx, op, phase)
	}
}
