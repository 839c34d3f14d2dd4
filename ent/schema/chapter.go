package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Chapter holds the schema definition for the Chapter entity. One row per
// finished chapter; the writing loop upserts by (session_id, section_index).
type Chapter struct {
	ent.Schema
}

// Fields of the Chapter.
func (Chapter) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("chapter_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Int("section_index").
			Comment("Position in the outline: 0, 1, 2..."),
		field.String("title"),
		field.Text("content"),
		field.Int("word_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Chapter.
func (Chapter) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", NovelSession.Type).
			Ref("chapters").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Chapter.
func (Chapter) Indexes() []ent.Index {
	return []ent.Index{
		// Unique constraint for chapter ordering within a session
		index.Fields("session_id", "section_index").
			Unique(),
	}
}
