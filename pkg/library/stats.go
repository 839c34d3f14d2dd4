package library

import (
	"context"
	"sort"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/montanaflynn/stats"
)

// Stats aggregates the user's own bookshelf: totals, per-status counts,
// critique score distribution, weighted writing pace, and calendar buckets.
// Shared books stay out so nobody else's spend leaks into the numbers.
func (p *Projector) Stats(ctx context.Context, userID string) (*models.LibraryStats, error) {
	if cached, ok := p.cache.Get(statsKey(userID)); ok {
		return cached.(*models.LibraryStats), nil
	}

	sessions, err := p.ownSessions(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := p.reduce(sessions)
	p.cache.Set(statsKey(userID), out)
	return out, nil
}

// reduce folds sessions into the stats shape. Pages and pace only count
// completed books; the calendar buckets count every session by creation
// date and add pages where they exist.
func (p *Projector) reduce(sessions []*ent.NovelSession) *models.LibraryStats {
	out := &models.LibraryStats{
		TotalBooks: len(sessions),
		ByStatus:   make(map[string]int),
	}

	var scores []float64
	var totalMinutes float64
	timedPages := 0
	monthly := make(map[string]*models.PeriodBucket)
	daily := make(map[string]*models.PeriodBucket)
	costByModel := make(map[string]float64)

	for _, sess := range sessions {
		entry := p.entryFor(sess)
		out.ByStatus[string(entry.Status)]++

		pages := 0
		if entry.TotalPages != nil {
			pages = *entry.TotalPages
			out.TotalPages += pages
		}
		if entry.CritiqueScore != nil {
			scores = append(scores, *entry.CritiqueScore)
		}
		if entry.EstimatedCost != nil {
			costByModel[entry.LLMModel] += *entry.EstimatedCost
		}

		// Weighted pace: minutes and pages both summed before dividing, so
		// long books count proportionally instead of averaging per-book rates.
		if pages > 0 && len(sess.WritingTimeMinutes) > 0 {
			for _, minutes := range sess.WritingTimeMinutes {
				totalMinutes += minutes
			}
			timedPages += pages
		}

		bump(monthly, entry.CreatedAt.Format("2006-01"), pages)
		bump(daily, entry.CreatedAt.Format("2006-01-02"), pages)
	}

	if len(scores) > 0 {
		if mean, err := stats.Mean(scores); err == nil {
			out.MeanCritiqueScore = &mean
		}
		if median, err := stats.Median(scores); err == nil {
			out.MedianCritiqueScore = &median
		}
	}
	if totalMinutes > 0 && timedPages > 0 {
		pace := totalMinutes / float64(timedPages)
		out.MinutesPerPage = &pace
	}
	if len(costByModel) > 0 {
		out.CostByModel = costByModel
	}
	out.Monthly = sortBuckets(monthly)
	out.Daily = sortBuckets(daily)

	return out
}

func bump(buckets map[string]*models.PeriodBucket, period string, pages int) {
	b, ok := buckets[period]
	if !ok {
		b = &models.PeriodBucket{Period: period}
		buckets[period] = b
	}
	b.Count++
	b.Pages += pages
}

// sortBuckets orders periods chronologically; both the "2006-01" and
// "2006-01-02" keys sort lexicographically.
func sortBuckets(buckets map[string]*models.PeriodBucket) []models.PeriodBucket {
	out := make([]models.PeriodBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}
