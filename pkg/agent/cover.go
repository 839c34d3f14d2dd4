package agent

import "github.com/fabula-ai/fabula/pkg/config"

// CoverPromptInput is everything the cover prompt template sees. Plot is
// expected to be sanitized already; image models apply their own safety
// filters and reject prompts the text models accept.
type CoverPromptInput struct {
	Title string
	Genre string
	Plot  string
}

// CoverPrompt renders the image-generation prompt for a book cover.
func CoverPrompt(configured config.PromptPair, in CoverPromptInput) (string, error) {
	tmpl := configured.User
	if tmpl == "" {
		tmpl = coverUserDefault
	}
	return render("cover-prompt", tmpl, in)
}
