package config

// Built-in prompt templates and sanitize patterns. All of these are
// overridable from fabula.yaml; the defaults keep a fresh install usable
// with nothing but API keys.

const defaultCriticSystemPrompt = `You are a seasoned literary critic. You receive a complete novel and ` +
	`evaluate it honestly. Respond ONLY with a JSON object of this exact shape: ` +
	`{"score": <number 0-10>, "pros": [<strings>], "cons": [<strings>], "summary": "<string>"}. ` +
	`No prose outside the JSON.`

const defaultCriticUserPrompt = `Review the attached novel "{{.Title}}" by {{.Author}}. ` +
	`Judge plot coherence, pacing, character depth, prose quality, and originality. ` +
	`Be specific in pros and cons; keep the summary under 120 words.`

func defaultPrompts() *PromptsConfig {
	return &PromptsConfig{
		Questions: PromptPair{
			System: `You help shape a novel from a reader's intake form. Generate at most 10 short ` +
				`clarifying questions that would most improve the book. Respond ONLY with a JSON array: ` +
				`[{"id": <int starting at 1>, "text": "<question>", "type": "text"|"multiple_choice", ` +
				`"options": [<strings, only for multiple_choice>]}].`,
			User: `Intake form:
{{.FormSummary}}`,
		},
		Draft: PromptPair{
			System: `You are a novelist drafting a book concept. Produce a title and a plot draft. ` +
				`Output format, exactly:
TITOLO: <title on one line>
TRAMA: <the full plot draft>`,
			User: `Intake form:
{{.FormSummary}}

Reader answers:
{{.AnswersSummary}}`,
		},
		Outline: PromptPair{
			System: `You structure novels. Given a validated plot draft, produce a chapter outline in ` +
				`Markdown. Use "## Parte N" headings only for multi-part books; chapter headings are ` +
				`"### Title" inside parts or "## Title" otherwise. One heading per chapter, each followed ` +
				`by a 2-3 sentence synopsis.`,
			User: `Title: {{.Title}}

Plot draft:
{{.Draft}}`,
		},
		Chapter: PromptPair{
			System: `You are writing one chapter of a novel, continuing seamlessly from the chapters so ` +
				`far. Write at least {{.MinWords}} words of polished prose. Output ONLY the chapter text: ` +
				`no headings, no chapter numbers, no commentary.`,
			User: `Book: {{.Title}}
Plot draft:
{{.Draft}}

Full outline:
{{.Outline}}

{{if .PreviousChapters}}Chapters written so far:
{{.PreviousChapters}}

{{end}}Now write chapter {{.ChapterNumber}} of {{.TotalSections}}: "{{.SectionTitle}}".`,
		},
		Cover: PromptPair{
			User: `Book cover illustration for the novel "{{.Title}}". {{.Plot}} ` +
				`Painterly, atmospheric, no text or lettering on the image.`,
		},
	}
}

func defaultSanitizePatterns() []SanitizePattern {
	return []SanitizePattern{
		{
			Name:        "violence",
			Pattern:     `(?i)\b(gore|gory|blood(?:y|bath|shed)?|mutilat\w*|dismember\w*|torture\w*)\b`,
			Replacement: "dramatic tension",
		},
		{
			Name:        "explicit",
			Pattern:     `(?i)\b(explicit|erotic\w*|nud(?:e|ity)|sexual\w*|naked)\b`,
			Replacement: "romantic",
		},
		{
			Name:        "death-detail",
			Pattern:     `(?i)\b(corpse|cadaver|decapitat\w*|strangl\w*)\b`,
			Replacement: "mystery",
		},
		{
			Name:        "drugs",
			Pattern:     `(?i)\b(heroin|cocaine|overdos\w*)\b`,
			Replacement: "vice",
		},
	}
}
