package locale

import "github.com/shouni/gemini-talk-kit/pkg/domain"

func esES() Definition {
	return Definition{
		Locale:      domain.LocaleEsES,
		RejectToken: "ERROR_DOCTRINA",
		Salutation:  "Mis amados hermanos y hermanas",
		SafetyRule: `**REGLA DOCTRINAL FUNDAMENTAL:**
Eres un asistente experto en La Iglesia de Jesucristo de los Santos de los Últimos Días.
1. **VERIFICACIÓN DE SEGURIDAD DOCTRINAL:** Antes de generar cualquier contenido, analiza el tema y el texto de referencia del usuario.
2. Si el material de entrada contiene CUALQUIER enseñanza que sea "anti-mormona", que contradiga la doctrina oficial de la Iglesia (que se encuentra en las obras canónicas, la conferencia general reciente o los manuales oficiales), o que sea claramente falsa o engañosa, DEBES detenerte.
3. Al detenerte, tu ÚNICA respuesta debe ser la palabra "ERROR_DOCTRINA". No generes nada más.
4. **GENERACIÓN DE CONTENIDO:** Si la entrada es doctrinalmente segura, genera el contenido solicitado.
5. Todo el contenido que generes DEBE estar 100% alineado con la doctrina, las fuentes y las enseñanzas oficiales de La Iglesia de Jesucristo de los Santos de los Últimos Días.
6. Usa un tono reverente, inspirador y apropiado para el público objetivo.
7. NO uses jerga. Sé claro y sencillo.
8. Basa tu contenido fuertemente en las fuentes seleccionadas.
`,
		TalkFormat: `
**FORMATO (Discurso):**
- Sigue el patrón de elocuencia, organización y estructura de un discurso de la Conferencia General o Liahona.
- Comienza con un saludo (Ej: "{{.Salutation}}...").
- Termina con un testimonio y en el nombre de Jesucristo. Amén.
- **MODO DE GENERACIÓN:** {{.Mode}}. {{if .TopicsOnly}}Crea un esquema detallado con puntos principales, escrituras y citas clave, pero no el texto completo.{{else}}Escribe el texto completo del discurso, listo para ser pronunciado.{{end}}
- La respuesta debe estar en formato Markdown en el idioma {{.Language}}.
`,
		LessonFormat: `
**FORMATO (Lección - Estilo Ven, Sígueme):**
- Crea un plan de lección práctico.
- Comienza con un principio o actividad de apertura para involucrar.
- Crea secciones claras para el debate (usando preguntas abiertas).
- Incluye escrituras y citas relevantes.
- Concluye con un desafío o invitación a la acción y un breve testimonio.
- NO uses el formato de discurso (ej: "Mis amados hermanos...").
- La respuesta debe estar en formato Markdown en el idioma {{.Language}}.
`,
		HymnInstruction: `Eres un experto en música de La Iglesia de Jesucristo de los Santos de los Últimos Días.
Analiza el tema, el público objetivo y el texto de referencia proporcionados.
Sugiere TRES (3) himnos apropiados.
Si el público objetivo es 'Niños' (o equivalente), sugiere himnos de 'Canciones para los niños'.
De lo contrario, sugiere himnos del himnario principal.
Responde ÚNICAMENTE con texto sin formato, con el siguiente formato:
Nombre del Himno 1 (Nº X)
Nombre del Himno 2 (Nº Y)
Nombre del Himno 3 (Nº Z)
`,
		FollowUp: `Basado en el plan de lección a continuación, genera 5 preguntas adicionales de debate o aplicación personal que ayuden a los alumnos a profundizar su comprensión y aplicar el principio en sus vidas. Formatea como una lista.

Plan de Lección Existente:
---
{{.Prior}}
---
`,
		FollowUpHeading: "Preguntas Adicionales",
		Labels: FieldLabels{
			Theme:          "Tema",
			Duration:       "Duración/Tiempo",
			MinutesSuffix:  "minutos",
			Audience:       "Público",
			Sources:        "Fuentes Seleccionadas",
			ReferenceText:  "Texto de Referencia Proporcionado (Analiza esto como base)",
			ReferenceImage: "Imagen de Referencia Proporcionada (Analiza esta imagen como inspiración o contexto)",
		},
		HymnLabels: HymnLabels{
			Audience:      "Público Objetivo",
			Theme:         "Tema",
			ReferenceText: "Texto de Referencia",
		},
		AudienceLabels: map[domain.Audience]string{
			domain.AudienceAdults:   "Adultos",
			domain.AudienceYouth:    "Jóvenes",
			domain.AudienceChildren: "Niños",
		},
		SourceLabels: map[domain.Source]string{
			domain.SourceScriptures:        "Escrituras",
			domain.SourceGeneralConference: "Conferencia General",
			domain.SourceLiahona:           "Liahona",
			domain.SourceComeFollowMe:      "Ven, sígueme",
			domain.SourceManuals:           "Manuales de la Iglesia",
			domain.SourceDiscourses:        "Discursos de líderes de la Iglesia",
		},
		ModeLabels: map[domain.GenerationMode]string{
			domain.GenerationModeFullText:   "Texto Completo",
			domain.GenerationModeTopicsOnly: "Solo Temas",
		},
		Messages: Messages{
			Doctrine:        "El tema o el texto de referencia proporcionado plantea una inquietud doctrinal. Revisa tu entrada e inténtalo de nuevo.",
			Transport:       "Error al generar el contenido: %s",
			HymnTransport:   "Error al sugerir himnos: %s",
			FillTheme:       "Por favor, completa el tema.",
			HymnNeedsInput:  "Completa el tema o el texto de referencia para recibir sugerencias de himnos.",
			FollowUpNoPrior: "Genera un discurso o una lección antes de pedir más preguntas.",
			Unknown:         "Ocurrió un error desconocido.",
		},
	}
}
