package agent

import "github.com/fabula-ai/fabula/pkg/config"

// defaultDraftTitle is used when neither config nor the model supply one.
const defaultDraftTitle = "Romanzo senza titolo"

// Built-in prompt templates. Deployments override them per runner in
// fabula.yaml; empty fields fall back here field by field.

const questionsSystemDefault = `Sei un editor esperto che aiuta uno scrittore a mettere a fuoco il suo romanzo.
Rispondi SOLO con un array JSON, senza testo prima o dopo.`

const questionsUserDefault = `Lo scrittore ha compilato questa scheda per il suo libro:

{{.Form}}

Genera al massimo {{.MaxQuestions}} domande preliminari che chiariscano trama, personaggi, tono e ambientazione.
Ogni elemento dell'array deve avere la forma:
{"id": 1, "text": "...", "type": "text"}
oppure, per le scelte chiuse:
{"id": 2, "text": "...", "type": "multiple_choice", "options": ["...", "..."]}`

const draftSystemDefault = `Sei un romanziere professionista. Scrivi in italiano, con stile curato.`

const draftUserDefault = `Scheda del libro:

{{.Form}}

Domande e risposte preliminari:

{{.QA}}
{{if .PreviousDraft}}
Trama precedente (versione {{.PreviousVersion}}):

{{.PreviousDraft}}

Commento dello scrittore sulla versione precedente:

{{.Feedback}}

Riscrivi la trama tenendo conto del commento.
{{else}}
Proponi la trama completa del romanzo.
{{end}}
Rispondi in questo formato esatto:

TITOLO: <il titolo del romanzo>
TRAMA: <la trama, in prosa>`

const outlineSystemDefault = `Sei un editor che trasforma una trama in una scaletta di capitoli.
Rispondi in Markdown: un'intestazione per capitolo, nell'ordine di lettura.`

const outlineUserDefault = `Scheda del libro:

{{.Form}}

Domande e risposte preliminari:

{{.QA}}

Trama validata ("{{.Title}}"):

{{.Draft}}

Scrivi la scaletta completa del romanzo. Usa un'intestazione "## ..." per ogni capitolo;
se dividi il libro in parti, usa "## Parte ..." per le parti e "### ..." per i capitoli.`

const chapterSystemDefault = `Sei un romanziere professionista. Scrivi il capitolo richiesto in prosa continua,
senza titoli, senza numerazione e senza commenti: solo il testo del capitolo.`

const chapterUserDefault = `Scheda del libro:

{{.Form}}

Domande e risposte preliminari:

{{.QA}}

Trama validata ("{{.Title}}"):

{{.Draft}}

Scaletta completa:

{{.Outline}}
{{if .PreviousChapters}}
Capitoli già scritti, nell'ordine:

{{.PreviousChapters}}
{{end}}
Scrivi il capitolo {{.ChapterNumber}} di {{.TotalChapters}}, "{{.SectionTitle}}",
proseguendo coerentemente da quanto già scritto. Almeno {{.MinWords}} parole.`

const criticSystemDefault = `Sei un critico letterario. Leggi il libro allegato e rispondi SOLO con un oggetto JSON:
{"score": <voto da 0 a 10>, "pros": ["..."], "cons": ["..."], "summary": "..."}`

const criticUserDefault = `Recensisci "{{.Title}}" di {{.Author}}.`

const coverUserDefault = `Copertina di un romanzo {{if .Genre}}di genere {{.Genre}} {{end}}intitolato "{{.Title}}".
Illustrazione evocativa ispirata alla trama, senza testo oltre al titolo.

Trama:

{{.Plot}}`

// pairOrDefault fills the empty halves of a configured prompt pair.
func pairOrDefault(configured config.PromptPair, system, user string) config.PromptPair {
	if configured.System == "" {
		configured.System = system
	}
	if configured.User == "" {
		configured.User = user
	}
	return configured
}
