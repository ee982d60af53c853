package generator

import (
	"fmt"
	"strings"

	"github.com/shouni/gemini-talk-kit/pkg/domain"
	"github.com/shouni/gemini-talk-kit/pkg/locale"
)

// UserMessage は失敗した Outcome をエンドユーザー向けの文言に変換します。成功時は空文字です。
// 教義上の拒否は汎用エラーとしてではなく専用の文言で表示します。
func UserMessage(op domain.Operation, o domain.Outcome, loc domain.Locale) string {
	m := locale.Templates(loc).Messages()
	switch o.Kind {
	case domain.OutcomeSuccess:
		return ""
	case domain.OutcomeDoctrinalRejection:
		return m.Doctrine
	case domain.OutcomeValidationFailure:
		switch op {
		case domain.OperationHymn:
			return m.HymnNeedsInput
		case domain.OperationFollowUp:
			return m.FollowUpNoPrior
		default:
			return m.FillTheme
		}
	case domain.OutcomeTransportFailure:
		if op == domain.OperationHymn {
			return fmt.Sprintf(m.HymnTransport, o.Message)
		}
		return fmt.Sprintf(m.Transport, o.Message)
	default:
		return m.Unknown
	}
}

// AppendFollowUpQuestions は追加質問を見出し付きで既存の結果に連結します。
func AppendFollowUpQuestions(prior, questions string, loc domain.Locale) string {
	heading := locale.Templates(loc).FollowUpHeading()
	return fmt.Sprintf("%s\n\n**%s:**\n%s", strings.TrimRight(prior, "\n"), heading, questions)
}
