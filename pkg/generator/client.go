package generator

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/gemini-talk-kit/pkg/domain"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// Client は Gemini へのリクエスト組み立て・送信・応答解釈を担当します。
type Client struct {
	aiClient GenerativeModel
	models   Models
}

// NewClient は依存関係を注入して Client を初期化します。
func NewClient(aiClient GenerativeModel, models Models) (*Client, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient is required")
	}
	for _, v := range []ModelVariant{VariantText, VariantVision, VariantPro} {
		if _, err := models.Resolve(v); err != nil {
			return nil, err
		}
	}
	return &Client{aiClient: aiClient, models: models}, nil
}

// Call はユーザー指示を先頭パーツとし、画像添付があれば InlineData を追加して送信します。
// システム指示は GenerateOptions.SystemPrompt として別枠で渡します。
// 成功時のテキストは Interpret を通してから返却します。
func (c *Client) Call(ctx context.Context, variant ModelVariant, systemInstruction, userInstruction string, attachment *domain.Attachment) domain.Outcome {
	model, err := c.models.Resolve(variant)
	if err != nil {
		return domain.TransportFailure(err.Error())
	}

	parts, err := buildParts(userInstruction, attachment)
	if err != nil {
		return domain.TransportFailure(err.Error())
	}

	slog.InfoContext(ctx, "Gemini にリクエストを送信します",
		"model", model, "variant", variant, "parts", len(parts))

	resp, err := c.aiClient.GenerateWithParts(ctx, model, parts, gemini.GenerateOptions{
		SystemPrompt: systemInstruction,
	})
	if err != nil {
		slog.ErrorContext(ctx, "Gemini API 呼び出しに失敗しました", "model", model, "error", err)
		return domain.TransportFailure(err.Error())
	}

	text, err := extractText(resp)
	if err != nil {
		slog.WarnContext(ctx, "Gemini の応答を解釈できませんでした", "model", model, "error", err)
		return domain.TransportFailure(err.Error())
	}

	outcome := Interpret(text)
	if outcome.Kind == domain.OutcomeDoctrinalRejection {
		slog.WarnContext(ctx, "モデルが教義上の懸念を返しました", "model", model)
	}
	return outcome
}

// buildParts は送信パーツを組み立てます。画像以外の添付は送信しません。
func buildParts(userInstruction string, attachment *domain.Attachment) ([]*genai.Part, error) {
	parts := []*genai.Part{{Text: userInstruction}}
	if !attachment.IsImage() {
		if attachment != nil {
			slog.Debug("画像以外の添付はモデルに送信しません", "name", attachment.Name, "mime_type", attachment.MIMEType)
		}
		return parts, nil
	}

	data, err := base64.StdEncoding.DecodeString(attachment.Base64Data)
	if err != nil {
		return nil, fmt.Errorf("attachment %q is not valid base64: %w", attachment.Name, err)
	}
	parts = append(parts, &genai.Part{
		InlineData: &genai.Blob{
			MIMEType: attachment.MIMEType,
			Data:     data,
		},
	})
	return parts, nil
}

// extractText は最初の候補のテキストパーツを連結します。
func extractText(resp *gemini.Response) (string, error) {
	if resp == nil || resp.RawResponse == nil || len(resp.RawResponse.Candidates) == 0 {
		return "", fmt.Errorf("Geminiからの有効な応答がありませんでした")
	}

	// 現在の仕様では、最初の候補 (Candidate) のみを利用する。
	candidate := resp.RawResponse.Candidates[0]

	var sb strings.Builder
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part == nil || part.Thought {
				continue
			}
			sb.WriteString(part.Text)
		}
	}
	if sb.Len() > 0 {
		return sb.String(), nil
	}

	// 安全フィルター等によるブロックの確認
	if candidate.FinishReason != genai.FinishReasonUnspecified && candidate.FinishReason != genai.FinishReasonStop {
		return "", fmt.Errorf("生成が異常終了しました (FinishReason: %s)", candidate.FinishReason)
	}
	return "", fmt.Errorf("テキストが見つかりませんでした")
}
