package api

// SaveAnswersRequest carries the user's replies to the clarifying questions,
// keyed by question ID.
type SaveAnswersRequest struct {
	Answers map[string]string `json:"answers" binding:"required"`
}

// GenerateDraftRequest optionally carries feedback for a draft revision.
// An empty body requests a fresh draft from the form data alone.
type GenerateDraftRequest struct {
	Feedback string `json:"feedback,omitempty"`
}

// EditDraftRequest replaces the draft text (and optionally the title) by hand.
type EditDraftRequest struct {
	Title string `json:"title,omitempty"`
	Text  string `json:"text" binding:"required"`
}

// ValidateDraftRequest freezes the draft version the client has been reading,
// guarding against a concurrent regeneration.
type ValidateDraftRequest struct {
	Version int `json:"version" binding:"required"`
}

// EditOutlineRequest replaces the outline text by hand. AllowIfWriting lets
// an explicit client bypass the freeze once writing has begun.
type EditOutlineRequest struct {
	Text           string `json:"text" binding:"required"`
	AllowIfWriting bool   `json:"allow_if_writing,omitempty"`
}

// ShareRequest grants another account read access to a finished book.
type ShareRequest struct {
	RecipientEmail string `json:"recipient_email" binding:"required,email"`
}
