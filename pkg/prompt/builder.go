package prompt

import (
	"fmt"
	"strings"

	"github.com/shouni/gemini-talk-kit/pkg/domain"
	"github.com/shouni/gemini-talk-kit/pkg/locale"
)

// SystemInstruction は安全ルールとコンテンツ種別ごとのフォーマット指示を連結します。
// mode は Talk のときだけ反映され、Lesson では無視されます。
// audience は現状どのテンプレートにも埋め込まれませんが、呼び出し側の契約として受け取ります。
func SystemInstruction(ct domain.ContentType, audience domain.Audience, mode domain.GenerationMode, loc domain.Locale) string {
	b := locale.Templates(loc)

	var sb strings.Builder
	sb.WriteString(b.SafetyRule())
	if ct == domain.ContentTypeTalk {
		sb.WriteString(b.TalkFormat(mode))
	} else {
		sb.WriteString(b.LessonFormat())
	}
	return sb.String()
}

// UserInstruction はリクエストの項目を固定順（テーマ、時間、対象者、参照元）で書き出し、
// 参照テキストと参照画像の有無を追記します。
func UserInstruction(req domain.GenerationRequest, loc domain.Locale) string {
	b := locale.Templates(loc)
	l := b.Labels()

	duration := req.Duration
	if strings.TrimSpace(string(duration)) == "" {
		duration = domain.DefaultDuration
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s:** %s\n", l.Theme, strings.TrimSpace(req.Theme))
	fmt.Fprintf(&sb, "**%s:** %s %s.\n", l.Duration, duration, l.MinutesSuffix)
	fmt.Fprintf(&sb, "**%s:** %s\n", l.Audience, b.AudienceLabel(req.Audience))
	fmt.Fprintf(&sb, "**%s:** %s", l.Sources, strings.Join(sourceLabels(b, req.Sources), ", "))

	if strings.TrimSpace(req.ContextText) != "" {
		fmt.Fprintf(&sb, "\n\n**%s:**\n%s", l.ReferenceText, req.ContextText)
	}
	if req.Attachment != nil {
		fmt.Fprintf(&sb, "\n\n**%s:**", l.ReferenceImage)
	}
	return sb.String()
}

// HymnInstruction は賛美歌提案のシステム指示です。
func HymnInstruction(loc domain.Locale) string {
	return locale.Templates(loc).HymnInstruction()
}

// HymnUserInstruction は賛美歌提案のユーザー指示を組み立てます。
func HymnUserInstruction(theme, contextText string, audience domain.Audience, loc domain.Locale) string {
	b := locale.Templates(loc)
	l := b.HymnLabels()
	return fmt.Sprintf("%s: %s\n%s: %s\n%s: %s",
		l.Audience, b.AudienceLabel(audience),
		l.Theme, strings.TrimSpace(theme),
		l.ReferenceText, strings.TrimSpace(contextText),
	)
}

// FollowUpInstruction は既存の生成結果をそのまま埋め込んだ追加質問の指示です。
func FollowUpInstruction(prior string, loc domain.Locale) string {
	return locale.Templates(loc).FollowUpInstruction(prior)
}

// sourceLabels はリクエスト順を保ったまま重複を除いて表示名に変換します。
func sourceLabels(b *locale.Bundle, sources []domain.Source) []string {
	seen := make(map[domain.Source]struct{}, len(sources))
	labels := make([]string, 0, len(sources))
	for _, s := range sources {
		if strings.TrimSpace(string(s)) == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		labels = append(labels, b.SourceLabel(s))
	}
	return labels
}
