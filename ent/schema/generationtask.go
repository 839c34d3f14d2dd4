package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GenerationTask holds the schema definition for the GenerationTask entity,
// the claimable unit of queued work. At most one task per session may be
// queued or running; the partial unique index enforcing that is created in
// pkg/database/migrations.go.
type GenerationTask struct {
	ent.Schema
}

// Fields of the GenerationTask.
func (GenerationTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Enum("kind").
			Values("questions", "draft", "outline", "writing", "critique"),
		field.Enum("status").
			Values("queued", "running", "completed", "failed", "cancelled").
			Default("queued"),
		field.Int("attempt").
			Default(0),
		field.String("error").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Heartbeat timestamp for orphan detection"),
		field.Time("claimed_at").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the GenerationTask.
func (GenerationTask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", NovelSession.Type).
			Ref("tasks").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the GenerationTask.
func (GenerationTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("status", "last_interaction_at"),
		index.Fields("session_id", "status"),
	}
}
