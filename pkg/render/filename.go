package render

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var titleCharRe = regexp.MustCompile(`[^\p{L}\p{N} _\-]+`)

// CanonicalFilename builds the stored artifact name:
// YYYY-MM-DD_{model_abbr}_{sanitized_title}.{ext}. An unusable title falls
// back to Libro_{first 8 of the session id}.
func CanonicalFilename(createdAt time.Time, modelAbbr, title, sessionID, ext string) string {
	name := SanitizeTitle(title)
	if name == "" {
		name = fallbackTitle(sessionID)
	}
	return fmt.Sprintf("%s_%s_%s.%s", createdAt.Format("2006-01-02"), modelAbbr, name, ext)
}

// SanitizeTitle keeps letters, digits, spaces, hyphens and underscores,
// then joins the surviving words with underscores.
func SanitizeTitle(title string) string {
	clean := titleCharRe.ReplaceAllString(title, "")
	return strings.Join(strings.Fields(clean), "_")
}

func fallbackTitle(sessionID string) string {
	if sessionID == "" {
		return "Libro"
	}
	if len(sessionID) > 8 {
		sessionID = sessionID[:8]
	}
	return "Libro_" + sessionID
}
