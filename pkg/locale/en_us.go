package locale

import "github.com/shouni/gemini-talk-kit/pkg/domain"

func enUS() Definition {
	return Definition{
		Locale:      domain.LocaleEnUS,
		RejectToken: "DOCTRINE_ERROR",
		Salutation:  "My beloved brothers and sisters",
		SafetyRule: `**FUNDAMENTAL DOCTRINAL RULE:**
You are an expert assistant on The Church of Jesus Christ of Latter-day Saints.
1. **DOCTRINAL SAFETY CHECK:** Before generating any content, analyze the user's theme and reference text.
2. If the input material contains ANY teaching that is "anti-mormon," contradicts official Church doctrine (found in the standard works, recent general conference, or official manuals), or is clearly false or misleading, you MUST stop.
3. When you stop, your ONLY response must be the word "DOCTRINE_ERROR". Do not generate anything else.
4. **CONTENT GENERATION:** If the input is doctrinally safe, generate the requested content.
5. All content you generate MUST be 100% aligned with the official doctrine, sources, and teachings of The Church of Jesus Christ of Latter-day Saints.
6. Use a reverent, inspiring, and appropriate tone for the target audience.
7. DO NOT use jargon. Be clear and simple.
8. Rely heavily on the selected sources.
`,
		TalkFormat: `
**FORMAT (Talk):**
- Follow the pattern of eloquence, organization, and structure of a General Conference or Liahona talk.
- Start with a salutation (e.g., "{{.Salutation}}...").
- End with a testimony and in the name of Jesus Christ. Amen.
- **GENERATION MODE:** {{.Mode}}. {{if .TopicsOnly}}Create a detailed outline with main points, scriptures, and key quotes, but not the full text.{{else}}Write the complete text of the talk, ready to be delivered.{{end}}
- The response must be in Markdown format in the {{.Language}} language.
`,
		LessonFormat: `
**FORMAT (Lesson - Come, Follow Me Style):**
- Create a practical lesson plan.
- Start with an opening principle or engaging activity.
- Create clear sections for discussion (using open-ended questions).
- Include relevant scriptures and quotes.
- Conclude with a challenge or invitation to act and a brief testimony.
- DO NOT use a talk format (e.g., "My beloved brothers...").
- The response must be in Markdown format in the {{.Language}} language.
`,
		HymnInstruction: `You are an expert on music of The Church of Jesus Christ of Latter-day Saints.
Analyze the provided theme, target audience, and reference text.
Suggest THREE (3) appropriate hymns.
If the target audience is 'Children' (or equivalent), suggest hymns from the 'Children's Songbook'.
Otherwise, suggest hymns from the main hymnal.
Respond ONLY with plain text, formatted as:
Hymn Name 1 (#X)
Hymn Name 2 (#Y)
Hymn Name 3 (#Z)
`,
		FollowUp: `Based on the lesson plan below, generate 5 additional discussion or personal application questions that help students deepen their understanding and apply the principle in their lives. Format as a list.

Existing Lesson Plan:
---
{{.Prior}}
---
`,
		FollowUpHeading: "Additional Questions",
		Labels: FieldLabels{
			Theme:          "Theme",
			Duration:       "Duration/Time",
			MinutesSuffix:  "minutes",
			Audience:       "Audience",
			Sources:        "Selected Sources",
			ReferenceText:  "Provided Reference Text (Analyze this as a basis)",
			ReferenceImage: "Provided Reference Image (Analyze this image for inspiration or context)",
		},
		HymnLabels: HymnLabels{
			Audience:      "Target Audience",
			Theme:         "Theme",
			ReferenceText: "Reference Text",
		},
		AudienceLabels: map[domain.Audience]string{
			domain.AudienceAdults:   "Adults",
			domain.AudienceYouth:    "Youth",
			domain.AudienceChildren: "Children",
		},
		SourceLabels: map[domain.Source]string{
			domain.SourceScriptures:        "Scriptures",
			domain.SourceGeneralConference: "General Conference",
			domain.SourceLiahona:           "Liahona",
			domain.SourceComeFollowMe:      "Come, Follow Me",
			domain.SourceManuals:           "Church Manuals",
			domain.SourceDiscourses:        "Discourses of Church Leaders",
		},
		ModeLabels: map[domain.GenerationMode]string{
			domain.GenerationModeFullText:   "Full Text",
			domain.GenerationModeTopicsOnly: "Topics Only",
		},
		Messages: Messages{
			Doctrine:        "The provided theme or reference text raises a doctrinal concern. Please review your input and try again.",
			Transport:       "Error generating content: %s",
			HymnTransport:   "Error suggesting hymns: %s",
			FillTheme:       "Please fill in the theme.",
			HymnNeedsInput:  "Please fill in the theme or reference text to get hymn suggestions.",
			FollowUpNoPrior: "Generate a talk or lesson before asking for more questions.",
			Unknown:         "An unknown error occurred.",
		},
	}
}
