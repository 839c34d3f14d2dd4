package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification holds the schema definition for the Notification entity,
// the in-app sink of the notifier.
type Notification struct {
	ent.Schema
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("notification_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("kind").
			Comment("book_completed, book_shared, critique_ready"),
		field.String("title"),
		field.Text("body").
			Optional(),
		field.String("session_id").
			Optional(),
		field.Bool("read").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "read"),
		index.Fields("user_id", "created_at"),
	}
}
