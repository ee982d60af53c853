package locale

import "github.com/shouni/gemini-talk-kit/pkg/domain"

func ptBR() Definition {
	return Definition{
		Locale:      domain.LocalePtBR,
		RejectToken: "ERRO_DOUTRINA",
		Salutation:  "Meus amados irmãos e irmãs",
		SafetyRule: `**REGRA DE DOUTRINA FUNDAMENTAL:**
Você é um assistente especialista em A Igreja de Jesus Cristo dos Santos dos Últimos Dias.
1. **VERIFICAÇÃO DE SEGURANÇA DOUTRINÁRIA:** Antes de gerar qualquer conteúdo, analise o tema e o texto de referência do usuário.
2. Se o material de entrada contiver QUALQUER ensinamento que seja "anti-mormon", que contradiga a doutrina oficial da Igreja (encontrada nas escrituras-padrão, conferência geral recente ou manuais oficiais), ou que seja claramente falso ou enganoso, você DEVE parar.
3. Ao parar, sua ÚNICA resposta deve ser a palavra "ERRO_DOUTRINA". Não gere mais nada.
4. **GERAÇÃO DE CONTEÚDO:** Se a entrada for doutrinariamente segura, gere o conteúdo solicitado.
5. Todo o conteúdo que você gerar DEVE estar 100% alinhado com a doutrina oficial, fontes e ensinamentos de A Igreja de Jesus Cristo dos Santos dos Últimos Dias.
6. Use um tom reverente, inspirador e apropriado para o público-alvo.
7. NÃO use jargões. Seja claro e simples.
8. Baseie-se fortemente nas fontes selecionadas.
`,
		TalkFormat: `
**FORMATO (Discurso):**
- Siga o padrão de eloquência, organização e estrutura de um discurso da Conferência Geral ou Liahona.
- Comece com uma saudação (Ex: "{{.Salutation}}...").
- Termine com um testemunho e em nome de Jesus Cristo. Amém.
- **MODO DE GERAÇÃO:** {{.Mode}}. {{if .TopicsOnly}}Crie um esboço detalhado com pontos principais, escrituras e citações-chave, mas não o texto completo.{{else}}Escreva o texto completo do discurso, pronto para ser proferido.{{end}}
- A resposta deve ser em formato Markdown no idioma {{.Language}}.
`,
		LessonFormat: `
**FORMATO (Aula - Estilo Vem, Segue-me):**
- Crie um plano de aula prático.
- Comece com um princípio ou atividade de abertura para engajar.
- Crie seções claras para debate (usando perguntas abertas).
- Inclua escrituras e citações relevantes.
- Conclua com um desafio ou convite à ação e um breve testemunho.
- NÃO use o formato de discurso (ex: "Meus amados irmãos...").
- A resposta deve ser em formato Markdown no idioma {{.Language}}.
`,
		HymnInstruction: `Você é um especialista em música de A Igreja de Jesus Cristo dos Santos dos Últimos Dias.
Analise o tema, público-alvo e texto de referência fornecidos.
Sugira TRÊS (3) hinos apropriados.
Se o público-alvo for 'Crianças' (ou equivalente), sugira hinos de 'Músicas para Crianças'.
Caso contrário, sugira hinos do hinário principal.
Responda APENAS com texto simples, formatado como:
Nome do Hino 1 (Nº X)
Nome do Hino 2 (Nº Y)
Nome do Hino 3 (Nº Z)
`,
		FollowUp: `Baseado no plano de aula abaixo, gere 5 perguntas adicionais de debate ou aplicação pessoal que ajudem os alunos a aprofundar seu entendimento e aplicar o princípio em suas vidas. Formate como uma lista.

Plano de Aula Existente:
---
{{.Prior}}
---
`,
		FollowUpHeading: "Perguntas Adicionais",
		Labels: FieldLabels{
			Theme:          "Tema",
			Duration:       "Duração/Tempo",
			MinutesSuffix:  "minutos",
			Audience:       "Público",
			Sources:        "Fontes Selecionadas",
			ReferenceText:  "Texto de Referência Fornecido (Analise isto como base)",
			ReferenceImage: "Imagem de Referência Fornecida (Analise esta imagem como inspiração ou contexto)",
		},
		HymnLabels: HymnLabels{
			Audience:      "Público-Alvo",
			Theme:         "Tema",
			ReferenceText: "Texto de Referência",
		},
		AudienceLabels: map[domain.Audience]string{
			domain.AudienceAdults:   "Adultos",
			domain.AudienceYouth:    "Jovens",
			domain.AudienceChildren: "Crianças",
		},
		SourceLabels: map[domain.Source]string{
			domain.SourceScriptures:        "Escrituras",
			domain.SourceGeneralConference: "Conferência Geral",
			domain.SourceLiahona:           "Liahona",
			domain.SourceComeFollowMe:      "Vem, e Segue-Me",
			domain.SourceManuals:           "Manuais da Igreja",
			domain.SourceDiscourses:        "Discursos de Líderes da Igreja",
		},
		ModeLabels: map[domain.GenerationMode]string{
			domain.GenerationModeFullText:   "Texto Completo",
			domain.GenerationModeTopicsOnly: "Apenas Tópicos",
		},
		Messages: Messages{
			Doctrine:        "O tema ou o texto de referência fornecido levanta uma preocupação doutrinária. Revise sua entrada e tente novamente.",
			Transport:       "Erro ao gerar conteúdo: %s",
			HymnTransport:   "Erro ao sugerir hinos: %s",
			FillTheme:       "Por favor, preencha o tema.",
			HymnNeedsInput:  "Preencha o tema ou o texto de referência para receber sugestões de hinos.",
			FollowUpNoPrior: "Gere um discurso ou uma aula antes de pedir mais perguntas.",
			Unknown:         "Ocorreu um erro desconhecido.",
		},
	}
}
