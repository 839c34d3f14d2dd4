package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity. Credit pools are
// plain int columns so consumption can be an atomic conditional decrement.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.String("email").
			Unique(),
		field.String("hashed_password").
			Sensitive(),
		field.String("display_name"),
		field.Enum("role").
			Values("user", "admin").
			Default("user"),
		field.Bool("is_verified").
			Default(false),
		field.String("api_token").
			Optional().
			Nillable().
			Unique().
			Sensitive().
			Comment("Opaque bearer token, minted at login"),
		field.Int("credits_flash").
			Default(0),
		field.Int("credits_pro").
			Default(0),
		field.Int("credits_ultra").
			Default(0),
		field.Time("credits_reset_at").
			Default(time.Now).
			Comment("Last refill; next boundary is the following Monday 00:00 UTC"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Anonymized accounts keep their row for ownership math"),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
