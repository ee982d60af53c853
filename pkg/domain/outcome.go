package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation は送信前の入力検証エラーです。ネットワークには到達しません。
	ErrValidation = errors.New("validation failure")
	// ErrDoctrinalRejection はモデルがセンチネルトークンで拒否したことを示します。
	ErrDoctrinalRejection = errors.New("doctrinal rejection")
	// ErrTransport は通信・API・レスポンス不正などのその他の失敗です。
	ErrTransport = errors.New("transport failure")
)

// OutcomeKind は Outcome のタグです。
type OutcomeKind string

const (
	OutcomeSuccess            OutcomeKind = "success"
	OutcomeDoctrinalRejection OutcomeKind = "doctrinal_rejection"
	OutcomeTransportFailure   OutcomeKind = "transport_failure"
	OutcomeValidationFailure  OutcomeKind = "validation_failure"
)

// Outcome は各操作の結果です。Kind ごとに1つだけが意味を持ちます。
//   - Success: Text に生成結果
//   - TransportFailure / ValidationFailure: Message に理由
//   - DoctrinalRejection: 生成テキストは破棄済み
type Outcome struct {
	Kind    OutcomeKind
	Text    string
	Message string
}

func Success(text string) Outcome {
	return Outcome{Kind: OutcomeSuccess, Text: text}
}

func DoctrinalRejection() Outcome {
	return Outcome{Kind: OutcomeDoctrinalRejection}
}

func TransportFailure(message string) Outcome {
	return Outcome{Kind: OutcomeTransportFailure, Message: message}
}

func ValidationFailure(message string) Outcome {
	return Outcome{Kind: OutcomeValidationFailure, Message: message}
}

// OK は成功かどうかを返します。
func (o Outcome) OK() bool {
	return o.Kind == OutcomeSuccess
}

// Err は失敗の種類に対応するエラーを返します。成功時は nil です。
// errors.Is で ErrValidation / ErrDoctrinalRejection / ErrTransport と照合できます。
func (o Outcome) Err() error {
	switch o.Kind {
	case OutcomeSuccess:
		return nil
	case OutcomeDoctrinalRejection:
		return ErrDoctrinalRejection
	case OutcomeValidationFailure:
		return fmt.Errorf("%w: %s", ErrValidation, o.Message)
	case OutcomeTransportFailure:
		return fmt.Errorf("%w: %s", ErrTransport, o.Message)
	default:
		return fmt.Errorf("%w: unknown outcome kind %q", ErrTransport, o.Kind)
	}
}

// Phase は1回の操作呼び出しの状態です。遷移は一方向でリトライはありません。
type Phase string

const (
	PhaseIdle                Phase = "idle"
	PhaseBuilding            Phase = "building"
	PhaseAwaitingResponse    Phase = "awaiting_response"
	PhaseSucceeded           Phase = "succeeded"
	PhaseDoctrinallyRejected Phase = "doctrinally_rejected"
	PhaseFailed              Phase = "failed"
)

// TerminalPhase は Outcome に対応する終端状態を返します。
func TerminalPhase(o Outcome) Phase {
	switch o.Kind {
	case OutcomeSuccess:
		return PhaseSucceeded
	case OutcomeDoctrinalRejection:
		return PhaseDoctrinallyRejected
	default:
		return PhaseFailed
	}
}

// Operation は公開操作の種類です。モデル選択ポリシーのキーにもなります。
type Operation string

const (
	OperationGenerate Operation = "generate"
	OperationHymn     Operation = "suggest_hymn"
	OperationFollowUp Operation = "follow_up_questions"
)
