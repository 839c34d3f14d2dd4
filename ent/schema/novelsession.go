package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/fabula-ai/fabula/pkg/models"
)

// NovelSession holds the schema definition for the NovelSession entity, the
// aggregate root of one book generation. Lifecycle phase is derived from the
// progress sub-documents at read time; there is no status column.
type NovelSession struct {
	ent.Schema
}

// Fields of the NovelSession.
func (NovelSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Optional().
			Comment("Owner; legacy sessions may be unowned"),
		field.String("llm_model").
			Comment("Concrete model ID chosen at creation"),
		field.String("genre").
			Optional(),
		field.JSON("form_data", map[string]any{}).
			Comment("Intake form payload"),
		field.JSON("generated_questions", []models.Question{}).
			Optional(),
		field.JSON("question_answers", map[string]string{}).
			Optional(),
		field.JSON("draft", models.Draft{}).
			Optional(),
		field.JSON("outline", models.Outline{}).
			Optional(),
		field.JSON("questions_progress", models.PhaseProgress{}).
			Optional(),
		field.JSON("draft_progress", models.PhaseProgress{}).
			Optional(),
		field.JSON("outline_progress", models.PhaseProgress{}).
			Optional(),
		field.JSON("writing_progress", models.WritingProgress{}).
			Optional(),
		field.JSON("token_usage", models.TokenUsage{}).
			Optional(),
		field.JSON("critique", models.Critique{}).
			Optional(),
		field.Enum("critique_status").
			Values("absent", "pending", "running", "completed", "failed").
			Default("absent"),
		field.String("critique_error").
			Optional().
			Nillable(),
		field.String("cover_image_path").
			Optional(),
		field.String("pdf_path").
			Optional(),
		field.Float("real_cost_eur").
			Default(0).
			Comment("Accumulated actual cost; never a forward estimate"),
		field.Float("estimated_cost_eur").
			Optional().
			Nillable(),
		field.JSON("writing_time_minutes", []float64{}).
			Optional().
			Comment("Append-only; one entry per writing run"),
		field.JSON("chapter_timings", []float64{}).
			Optional().
			Comment("Seconds per completed chapter; paused chapters are never timed"),
		field.Time("writing_start_time").
			Optional().
			Nillable(),
		field.Time("writing_end_time").
			Optional().
			Nillable(),
		field.Time("chapter_start_time").
			Optional().
			Nillable().
			Comment("Open timing mark for the chapter in flight"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the NovelSession.
func (NovelSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("chapters", Chapter.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tasks", GenerationTask.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("shares", BookShare.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the NovelSession.
func (NovelSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("llm_model"),
		index.Fields("genre"),
		index.Fields("critique_status"),

		index.Fields("user_id", "created_at"),

		// Partial index for soft deletes
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
