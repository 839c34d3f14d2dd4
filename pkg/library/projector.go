package library

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/ent/bookshare"
	"github.com/fabula-ai/fabula/ent/chapter"
	"github.com/fabula-ai/fabula/ent/novelsession"
	"github.com/fabula-ai/fabula/ent/user"
	"github.com/fabula-ai/fabula/pkg/agent"
	"github.com/fabula-ai/fabula/pkg/config"
	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/fabula-ai/fabula/pkg/progress"
	"github.com/fabula-ai/fabula/pkg/render"
	"github.com/fabula-ai/fabula/pkg/services"
	"golang.org/x/sync/errgroup"
)

// backfillConcurrency bounds parallel repair writes per listing.
const backfillConcurrency = 4

// Projector builds the bookshelf view: own sessions plus accepted shares,
// each reduced to a LibraryEntry. Reads go through a short TTL cache; the
// only explicit invalidation is the page/cost backfill, which repairs
// completed sessions that predate stored totals.
type Projector struct {
	client   *ent.Client
	sessions *services.SessionService
	models   *config.ModelsConfig
	costs    *progress.CostCalculator
	cache    *Cache
	logger   *slog.Logger

	backfillTimeout time.Duration
	runAsync        func(func()) // replaced in tests
}

// NewProjector wires the projector against the database and the session
// service, whose merge-safe mutators the backfill writes through.
func NewProjector(client *ent.Client, sessions *services.SessionService, modelsCfg *config.ModelsConfig, costs *progress.CostCalculator) *Projector {
	return &Projector{
		client:          client,
		sessions:        sessions,
		models:          modelsCfg,
		costs:           costs,
		cache:           NewCache(DefaultCacheTTL),
		logger:          slog.Default().With("component", "library"),
		backfillTimeout: time.Minute,
		runAsync:        func(fn func()) { go fn() },
	}
}

// Entries returns the user's bookshelf, newest first: every non-deleted
// session they own plus every book shared with them. Completed sessions
// missing a stored page total get a computed one immediately and a
// background backfill persists it.
func (p *Projector) Entries(ctx context.Context, userID string) ([]models.LibraryEntry, error) {
	if cached, ok := p.cache.Get(libraryKey(userID)); ok {
		return cached.([]models.LibraryEntry), nil
	}

	own, err := p.ownSessions(ctx, userID)
	if err != nil {
		return nil, err
	}
	shared, err := p.sharedSessions(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]models.LibraryEntry, 0, len(own)+len(shared))
	var deficits []string
	for _, sess := range own {
		entries = append(entries, p.entryFor(sess))
		if needsBackfill(sess) {
			deficits = append(deficits, sess.ID)
		}
	}
	for _, sh := range shared {
		entry := p.entryFor(sh.session)
		entry.IsShared = true
		entry.SharedByID = sh.ownerID
		entry.SharedByName = sh.ownerName
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	p.cache.Set(libraryKey(userID), entries)

	if len(deficits) > 0 {
		p.runAsync(func() {
			ctx, cancel := context.WithTimeout(context.Background(), p.backfillTimeout)
			defer cancel()
			if _, err := p.Backfill(ctx, userID, deficits); err != nil {
				p.logger.Error("Library backfill failed", "user_id", userID, "error", err)
			}
		})
	}

	return entries, nil
}

// Backfill repairs completed sessions whose stored progress is missing the
// page total, and seeds token-based cost where no actual spend was recorded.
// Writes go through the merge-safe session mutators; any successful repair
// invalidates the user's cached views. Returns the number repaired.
func (p *Projector) Backfill(ctx context.Context, userID string, sessionIDs []string) (int, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(backfillConcurrency)

	results := make([]bool, len(sessionIDs))
	for i, id := range sessionIDs {
		g.Go(func() error {
			repaired, err := p.backfillOne(gctx, id)
			if err != nil {
				return fmt.Errorf("backfill %s: %w", id, err)
			}
			results[i] = repaired
			return nil
		})
	}
	err := g.Wait()

	repaired := 0
	for _, ok := range results {
		if ok {
			repaired++
		}
	}
	if repaired > 0 {
		p.cache.Invalidate(libraryKey(userID), statsKey(userID))
		p.logger.Info("Backfilled completed books", "user_id", userID, "repaired", repaired)
	}
	return repaired, err
}

func (p *Projector) backfillOne(ctx context.Context, sessionID string) (bool, error) {
	sess, err := p.sessions.GetSession(ctx, sessionID, true)
	if err != nil {
		return false, err
	}
	if !sess.WritingProgress.IsComplete {
		return false, nil
	}

	repaired := false
	if sess.WritingProgress.TotalPages == 0 {
		pages := progress.TotalPages(services.ChapterContents(sess.Edges.Chapters), 0, 0)
		if pages > 0 {
			if _, err := p.sessions.UpdateWritingProgress(ctx, sessionID, models.WritingProgressPatch{TotalPages: &pages}); err != nil {
				return false, err
			}
			repaired = true
		}
	}

	if sess.RealCostEur == 0 && p.costs != nil {
		cost := p.costs.CostEUR(sess.TokenUsage)
		if cost == 0 {
			// Books that predate token accounting still get a post-hoc
			// figure from the configured per-phase guesses.
			cost = p.costs.EstimateEUR(sess.LlmModel, len(sess.Edges.Chapters))
		}
		if cost > 0 {
			if err := p.sessions.AddRealCost(ctx, sessionID, cost); err != nil {
				return repaired, err
			}
			if err := p.sessions.SetEstimatedCost(ctx, sessionID, cost); err != nil {
				return repaired, err
			}
			repaired = true
		}
	}

	return repaired, nil
}

// needsBackfill reports whether a completed session predates stored totals.
func needsBackfill(sess *ent.NovelSession) bool {
	if !sess.WritingProgress.IsComplete {
		return false
	}
	return sess.WritingProgress.TotalPages == 0 || sess.RealCostEur == 0
}

// ownSessions loads the user's non-deleted sessions newest first, with the
// cheap chapter columns eager-loaded for counting and page math.
func (p *Projector) ownSessions(ctx context.Context, userID string) ([]*ent.NovelSession, error) {
	sessions, err := p.client.NovelSession.Query().
		Where(
			novelsession.UserIDEQ(userID),
			novelsession.DeletedAtIsNil(),
		).
		WithChapters(selectChapterCounts).
		Order(ent.Desc(novelsession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load library sessions: %w", err)
	}
	return sessions, nil
}

type sharedSession struct {
	session   *ent.NovelSession
	ownerID   string
	ownerName string
}

// sharedSessions resolves books shared with the user. Owners appear under
// their display name; anonymized or vanished owners show the deletion
// sentinel.
func (p *Projector) sharedSessions(ctx context.Context, userID string) ([]sharedSession, error) {
	shares, err := p.client.BookShare.Query().
		Where(bookshare.RecipientIDEQ(userID)).
		Order(ent.Desc(bookshare.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shares: %w", err)
	}
	if len(shares) == 0 {
		return nil, nil
	}

	sessionIDs := make([]string, 0, len(shares))
	ownerOf := make(map[string]string, len(shares))
	ownerIDs := make([]string, 0, len(shares))
	for _, sh := range shares {
		sessionIDs = append(sessionIDs, sh.SessionID)
		if _, seen := ownerOf[sh.SessionID]; !seen {
			ownerOf[sh.SessionID] = sh.OwnerID
			ownerIDs = append(ownerIDs, sh.OwnerID)
		}
	}

	sessions, err := p.client.NovelSession.Query().
		Where(
			novelsession.IDIn(sessionIDs...),
			novelsession.DeletedAtIsNil(),
		).
		WithChapters(selectChapterCounts).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load shared sessions: %w", err)
	}

	names, err := p.ownerNames(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	out := make([]sharedSession, 0, len(sessions))
	for _, sess := range sessions {
		ownerID := ownerOf[sess.ID]
		name, ok := names[ownerID]
		if !ok {
			name = models.DeletedUserName
		}
		out = append(out, sharedSession{session: sess, ownerID: ownerID, ownerName: name})
	}
	return out, nil
}

func (p *Projector) ownerNames(ctx context.Context, ownerIDs []string) (map[string]string, error) {
	users, err := p.client.User.Query().
		Where(user.IDIn(ownerIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load share owners: %w", err)
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.DisplayName
	}
	return names, nil
}

// selectChapterCounts keeps eager-loaded chapters light: position and word
// count are enough for chapter totals and page math, prose stays out.
func selectChapterCounts(q *ent.ChapterQuery) {
	q.Select(chapter.FieldSessionID, chapter.FieldSectionIndex, chapter.FieldWordCount)
}

// entryFor reduces one session to its bookshelf row. Status is derived, the
// model shows as its tier label, and totals fall back through progress,
// outline, and stored chapters in that order.
func (p *Projector) entryFor(sess *ent.NovelSession) models.LibraryEntry {
	chapters := sess.Edges.Chapters

	entry := models.LibraryEntry{
		SessionID:         sess.ID,
		Title:             sess.Draft.CurrentTitle,
		Genre:             sess.Genre,
		Status:            services.DeriveStatus(sess),
		LLMModel:          models.ModeOfModel(sess.LlmModel).Label(),
		TotalChapters:     totalChapters(sess, len(chapters)),
		CompletedChapters: completedChapters(sess, len(chapters)),
		CoverImagePath:    sess.CoverImagePath,
		CreatedAt:         sess.CreatedAt,
	}

	if sess.WritingProgress.IsComplete {
		pages := sess.WritingProgress.TotalPages
		if pages == 0 {
			pages = progress.TotalPagesFromCounts(wordCounts(chapters), 0, 0)
		}
		if pages > 0 {
			entry.TotalPages = &pages
		}
		entry.PDFPath = p.pdfPath(sess)
	}

	if sess.CritiqueStatus == novelsession.CritiqueStatusCompleted {
		score := sess.Critique.Score
		entry.CritiqueScore = &score
	}

	// Accumulated actuals only: the forward estimate never reaches the shelf.
	if sess.RealCostEur > 0 {
		cost := sess.RealCostEur
		entry.EstimatedCost = &cost
	}

	return entry
}

// pdfPath prefers the stored blob key; books rendered before paths were
// recorded fall back to the canonical filename.
func (p *Projector) pdfPath(sess *ent.NovelSession) string {
	if sess.PdfPath != "" {
		return sess.PdfPath
	}
	return render.CanonicalFilename(
		sess.CreatedAt,
		p.models.Abbreviation(sess.LlmModel),
		sess.Draft.CurrentTitle,
		sess.ID,
		"pdf",
	)
}

func totalChapters(sess *ent.NovelSession, stored int) int {
	if n := sess.WritingProgress.TotalSteps; n > 0 {
		return n
	}
	if !sess.Outline.IsEmpty() {
		if n := len(agent.ParseSections(sess.Outline.CurrentText)); n > 0 {
			return n
		}
	}
	return stored
}

func completedChapters(sess *ent.NovelSession, stored int) int {
	if n := sess.WritingProgress.CompletedChaptersCount; n > 0 {
		return n
	}
	if n := sess.WritingProgress.CurrentStep; n > 0 {
		return n
	}
	return stored
}

func wordCounts(chapters []*ent.Chapter) []int {
	counts := make([]int, len(chapters))
	for i, ch := range chapters {
		counts[i] = ch.WordCount
	}
	return counts
}
