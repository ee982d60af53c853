package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ContentType は生成するドキュメントの種類（説教 / レッスン）です。
type ContentType string

const (
	ContentTypeTalk   ContentType = "talk"
	ContentTypeLesson ContentType = "lesson"
)

// Valid は既知のコンテンツ種別かどうかを返します。
func (c ContentType) Valid() bool {
	return c == ContentTypeTalk || c == ContentTypeLesson
}

// GenerationMode は Talk 生成時の出力形式です。Lesson では無視されます。
type GenerationMode string

const (
	GenerationModeFullText   GenerationMode = "full_text"
	GenerationModeTopicsOnly GenerationMode = "topics_only"
)

// Normalize は空値を FullText として扱います。
func (m GenerationMode) Normalize() GenerationMode {
	if m == GenerationModeTopicsOnly {
		return m
	}
	return GenerationModeFullText
}

// Audience は対象者のキーです。未知の値はローカライズ済みの表示名としてそのまま扱われます。
type Audience string

const (
	AudienceAdults   Audience = "Adults"
	AudienceYouth    Audience = "Youth"
	AudienceChildren Audience = "Children"
)

// Audiences は UI に提示する順序で対象者キーを返します。
func Audiences() []Audience {
	return []Audience{AudienceAdults, AudienceYouth, AudienceChildren}
}

// Source は教義上の参照元のキーです。
type Source string

const (
	SourceScriptures        Source = "Scriptures"
	SourceGeneralConference Source = "GeneralConference"
	SourceLiahona           Source = "Liahona"
	SourceComeFollowMe      Source = "ComeFollowMe"
	SourceManuals           Source = "Manuals"
	SourceDiscourses        Source = "Discourses"
)

// Sources は既知の参照元を表示順で返します。
func Sources() []Source {
	return []Source{
		SourceScriptures,
		SourceGeneralConference,
		SourceLiahona,
		SourceComeFollowMe,
		SourceManuals,
		SourceDiscourses,
	}
}

// DefaultSources はフォームの初期選択（先頭の2つ）です。
func DefaultSources() []Source {
	return Sources()[:2]
}

// DefaultDuration はフォームの初期値（分）です。
const DefaultDuration Minutes = "10"

// Minutes は所要時間（分）です。JSON では文字列と数値のどちらも受け付けます。
type Minutes string

// UnmarshalJSON は "10" と 10 の両方を受け付けます。
func (m *Minutes) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = Minutes(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("durationMinutes must be a string or number: %w", err)
	}
	*m = Minutes(n.String())
	return nil
}

// MinutesFromInt は整数から Minutes を生成します。
func MinutesFromInt(n int) Minutes {
	return Minutes(strconv.Itoa(n))
}

// Attachment はユーザーがアップロードした参照ファイルです。
// Base64Data はエンコード済みのまま保持し、送信時にのみデコードします。
type Attachment struct {
	Name       string `json:"name"`
	MIMEType   string `json:"mimeType"`
	Base64Data string `json:"base64Data"`
}

// IsImage は MIME タイプが image/ で始まるかを返します。画像以外はモデルへ送信されません。
func (a *Attachment) IsImage() bool {
	return a != nil && strings.HasPrefix(strings.ToLower(a.MIMEType), "image/")
}

// GenerationRequest はユーザー操作1回分の入力です。
// ディスパッチ後は変更しないでください。
type GenerationRequest struct {
	Theme          string         `json:"theme"`
	ContextText    string         `json:"contextText,omitempty"`
	Duration       Minutes        `json:"durationMinutes,omitempty"`
	Audience       Audience       `json:"audience,omitempty"`
	GenerationMode GenerationMode `json:"generationMode,omitempty"`
	Sources        []Source       `json:"sources,omitempty"`
	Attachment     *Attachment    `json:"attachment,omitempty"`
}

// HasImageAttachment はモデルへ転送される画像添付があるかを返します。
func (r GenerationRequest) HasImageAttachment() bool {
	return r.Attachment.IsImage()
}
