package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shouni/gemini-talk-kit/pkg/domain"
)

type jsonError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteJSONError はステータスコードとメッセージを JSON で返します。
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, jsonError{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("レスポンスの書き込みに失敗しました", "error", err)
	}
}

// outcomeResponse は3つの生成系エンドポイントに共通のレスポンスです。
type outcomeResponse struct {
	Outcome domain.OutcomeKind `json:"outcome"`
	Text    string             `json:"text,omitempty"`
	HTML    string             `json:"html,omitempty"`
	Message string             `json:"message,omitempty"`
}

// statusFor は Outcome の種類を HTTP ステータスに対応付けます。
func statusFor(kind domain.OutcomeKind) int {
	switch kind {
	case domain.OutcomeSuccess:
		return http.StatusOK
	case domain.OutcomeValidationFailure:
		return http.StatusBadRequest
	case domain.OutcomeDoctrinalRejection:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
