package locale

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/shouni/gemini-talk-kit/pkg/domain"
)

// FieldLabels はユーザー指示に埋め込む項目名です。
type FieldLabels struct {
	Theme          string
	Duration       string
	MinutesSuffix  string
	Audience       string
	Sources        string
	ReferenceText  string
	ReferenceImage string
}

// HymnLabels は賛美歌提案のユーザー指示で使う項目名です。
type HymnLabels struct {
	Audience      string
	Theme         string
	ReferenceText string
}

// Messages はエンドユーザー向けの結果メッセージです。
// Transport と HymnTransport は %s に下位エラーを受け取ります。
type Messages struct {
	Doctrine        string
	Transport       string
	HymnTransport   string
	FillTheme       string
	HymnNeedsInput  string
	FollowUpNoPrior string
	Unknown         string
}

// Definition はロケールごとの生データです。newBundle で検証・パースされます。
type Definition struct {
	Locale          domain.Locale
	RejectToken     string
	Salutation      string
	SafetyRule      string
	TalkFormat      string // text/template: .Mode .TopicsOnly .Salutation .Language
	LessonFormat    string // text/template: .Language
	HymnInstruction string
	FollowUp        string // text/template: .Prior
	FollowUpHeading string
	Labels          FieldLabels
	HymnLabels      HymnLabels
	AudienceLabels  map[domain.Audience]string
	SourceLabels    map[domain.Source]string
	ModeLabels      map[domain.GenerationMode]string
	Messages        Messages
}

// Bundle は1ロケール分のテンプレート一式です。生成後は読み取り専用です。
type Bundle struct {
	def          Definition
	talkFormat   *template.Template
	lessonFormat string
	followUp     *template.Template
}

type talkData struct {
	Mode       string
	TopicsOnly bool
	Salutation string
	Language   string
}

// newBundle は Definition を検証し、テンプレートをパースします。
// 翻訳の欠落はここでエラーになり、実行時に空文字が送信されることはありません。
func newBundle(def Definition) (*Bundle, error) {
	if err := def.validate(); err != nil {
		return nil, fmt.Errorf("locale %s: %w", def.Locale, err)
	}

	talk, err := template.New("talk").Option("missingkey=error").Parse(def.TalkFormat)
	if err != nil {
		return nil, fmt.Errorf("locale %s: talk format: %w", def.Locale, err)
	}
	lessonTmpl, err := template.New("lesson").Option("missingkey=error").Parse(def.LessonFormat)
	if err != nil {
		return nil, fmt.Errorf("locale %s: lesson format: %w", def.Locale, err)
	}
	followUp, err := template.New("followup").Option("missingkey=error").Parse(def.FollowUp)
	if err != nil {
		return nil, fmt.Errorf("locale %s: follow-up template: %w", def.Locale, err)
	}

	var lesson strings.Builder
	if err := lessonTmpl.Execute(&lesson, map[string]string{"Language": string(def.Locale)}); err != nil {
		return nil, fmt.Errorf("locale %s: lesson format: %w", def.Locale, err)
	}

	b := &Bundle{
		def:          def,
		talkFormat:   talk,
		lessonFormat: lesson.String(),
		followUp:     followUp,
	}
	if err := b.checkRendered(); err != nil {
		return nil, fmt.Errorf("locale %s: %w", def.Locale, err)
	}
	return b, nil
}

func (d Definition) validate() error {
	required := map[string]string{
		"reject token":      d.RejectToken,
		"salutation":        d.Salutation,
		"safety rule":       d.SafetyRule,
		"talk format":       d.TalkFormat,
		"lesson format":     d.LessonFormat,
		"hymn instruction":  d.HymnInstruction,
		"follow-up":         d.FollowUp,
		"follow-up heading": d.FollowUpHeading,

		"label theme":           d.Labels.Theme,
		"label duration":        d.Labels.Duration,
		"label minutes":         d.Labels.MinutesSuffix,
		"label audience":        d.Labels.Audience,
		"label sources":         d.Labels.Sources,
		"label reference text":  d.Labels.ReferenceText,
		"label reference image": d.Labels.ReferenceImage,

		"hymn label audience":  d.HymnLabels.Audience,
		"hymn label theme":     d.HymnLabels.Theme,
		"hymn label reference": d.HymnLabels.ReferenceText,

		"message doctrine":         d.Messages.Doctrine,
		"message transport":        d.Messages.Transport,
		"message hymn transport":   d.Messages.HymnTransport,
		"message fill theme":       d.Messages.FillTheme,
		"message hymn needs input": d.Messages.HymnNeedsInput,
		"message follow-up":        d.Messages.FollowUpNoPrior,
		"message unknown":          d.Messages.Unknown,
	}
	for name, v := range required {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("missing %s", name)
		}
	}

	if !strings.Contains(d.SafetyRule, d.RejectToken) {
		return fmt.Errorf("safety rule does not name reject token %q", d.RejectToken)
	}
	for _, a := range domain.Audiences() {
		if d.AudienceLabels[a] == "" {
			return fmt.Errorf("missing audience label %s", a)
		}
	}
	for _, s := range domain.Sources() {
		if d.SourceLabels[s] == "" {
			return fmt.Errorf("missing source label %s", s)
		}
	}
	for _, m := range []domain.GenerationMode{domain.GenerationModeFullText, domain.GenerationModeTopicsOnly} {
		if d.ModeLabels[m] == "" {
			return fmt.Errorf("missing generation mode label %s", m)
		}
	}
	return nil
}

// checkRendered はレンダリング結果が契約（挨拶の有無）を満たすか確認します。
func (b *Bundle) checkRendered() error {
	for _, m := range []domain.GenerationMode{domain.GenerationModeFullText, domain.GenerationModeTopicsOnly} {
		text, err := b.renderTalk(m)
		if err != nil {
			return fmt.Errorf("talk format: %w", err)
		}
		if !strings.Contains(text, b.def.Salutation) {
			return fmt.Errorf("talk format (%s) lacks salutation %q", m, b.def.Salutation)
		}
	}
	if strings.Contains(b.lessonFormat, b.def.Salutation) {
		return fmt.Errorf("lesson format must not contain salutation %q", b.def.Salutation)
	}
	if strings.Contains(b.def.SafetyRule, b.def.Salutation) {
		return fmt.Errorf("safety rule must not contain salutation %q", b.def.Salutation)
	}

	const probe = "\x00prior\x00"
	var sb strings.Builder
	if err := b.followUp.Execute(&sb, map[string]string{"Prior": probe}); err != nil {
		return fmt.Errorf("follow-up template: %w", err)
	}
	if !strings.Contains(sb.String(), probe) {
		return fmt.Errorf("follow-up template does not embed prior text")
	}
	return nil
}

func (b *Bundle) renderTalk(mode domain.GenerationMode) (string, error) {
	mode = mode.Normalize()
	var sb strings.Builder
	err := b.talkFormat.Execute(&sb, talkData{
		Mode:       b.def.ModeLabels[mode],
		TopicsOnly: mode == domain.GenerationModeTopicsOnly,
		Salutation: b.def.Salutation,
		Language:   string(b.def.Locale),
	})
	return sb.String(), err
}

// Locale はこのバンドルのロケールです。
func (b *Bundle) Locale() domain.Locale { return b.def.Locale }

// RejectToken はこのロケールの教義拒否センチネルです。
func (b *Bundle) RejectToken() string { return b.def.RejectToken }

// Salutation は説教冒頭の挨拶句です。
func (b *Bundle) Salutation() string { return b.def.Salutation }

// SafetyRule はモデルに送る教義安全ルールです。
func (b *Bundle) SafetyRule() string { return b.def.SafetyRule }

// TalkFormat は生成モードに応じた説教フォーマット指示を返します。
func (b *Bundle) TalkFormat(mode domain.GenerationMode) string {
	text, err := b.renderTalk(mode)
	if err != nil {
		// checkRendered で両モードとも検証済み
		panic(fmt.Sprintf("locale %s: talk format: %v", b.def.Locale, err))
	}
	return text
}

// LessonFormat はレッスンのフォーマット指示です。
func (b *Bundle) LessonFormat() string { return b.lessonFormat }

// HymnInstruction は賛美歌提案のシステム指示です。
func (b *Bundle) HymnInstruction() string { return b.def.HymnInstruction }

// FollowUpInstruction は既存の生成結果をそのまま埋め込んだ追加質問の指示を返します。
func (b *Bundle) FollowUpInstruction(prior string) string {
	var sb strings.Builder
	if err := b.followUp.Execute(&sb, map[string]string{"Prior": prior}); err != nil {
		panic(fmt.Sprintf("locale %s: follow-up template: %v", b.def.Locale, err))
	}
	return sb.String()
}

// FollowUpHeading は追加質問を既存の結果に連結するときの見出しです。
func (b *Bundle) FollowUpHeading() string { return b.def.FollowUpHeading }

func (b *Bundle) Labels() FieldLabels    { return b.def.Labels }
func (b *Bundle) HymnLabels() HymnLabels { return b.def.HymnLabels }
func (b *Bundle) Messages() Messages     { return b.def.Messages }

// AudienceLabel は対象者キーを表示名に変換します。未知の値はそのまま返します。
func (b *Bundle) AudienceLabel(a domain.Audience) string {
	if label, ok := b.def.AudienceLabels[a]; ok {
		return label
	}
	return string(a)
}

// SourceLabel は参照元キーを表示名に変換します。未知の値はそのまま返します。
func (b *Bundle) SourceLabel(s domain.Source) string {
	if label, ok := b.def.SourceLabels[s]; ok {
		return label
	}
	return string(s)
}

// ModeLabel は生成モードの表示名です。
func (b *Bundle) ModeLabel(m domain.GenerationMode) string {
	return b.def.ModeLabels[m.Normalize()]
}
