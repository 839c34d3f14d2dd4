package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BookShare holds the schema definition for the BookShare entity. A share
// makes a finished book visible in the recipient's library.
type BookShare struct {
	ent.Schema
}

// Fields of the BookShare.
func (BookShare) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("share_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("owner_id").
			Immutable(),
		field.String("recipient_id").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the BookShare.
func (BookShare) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", NovelSession.Type).
			Ref("shares").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the BookShare.
func (BookShare) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "recipient_id").
			Unique(),
		index.Fields("recipient_id"),
	}
}
