package generator

import (
	"strings"

	"github.com/shouni/gemini-talk-kit/pkg/domain"
	"github.com/shouni/gemini-talk-kit/pkg/locale"
)

// rejectTokens は全ロケールの拒否トークン（大文字）です。
var rejectTokens = upperAll(locale.RejectTokens())

// Interpret はモデルの生テキストに拒否トークンが含まれるかを判定します。
// モデルが別言語で応答することがあるため、リクエストのロケールに関係なく全トークンを照合します。
// 含まれていれば生テキストは破棄され、DoctrinalRejection を返します。
// それ以外は生テキストを変更せず Success として返します。
func Interpret(raw string) domain.Outcome {
	if containsRejectToken(raw) {
		return domain.DoctrinalRejection()
	}
	return domain.Success(raw)
}

func containsRejectToken(raw string) bool {
	folded := strings.ToUpper(raw)
	for _, token := range rejectTokens {
		if strings.Contains(folded, token) {
			return true
		}
	}
	return false
}

func upperAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToUpper(s)
	}
	return out
}
