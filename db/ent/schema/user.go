package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/mediscan-kh/mediscan/constants"
	"github.com/mediscan-kh/mediscan/db/ent/schema/utils"
)

type User struct {
	ent.Schema
}

func (User) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "users"},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("username").NotEmpty().Unique(),
		field.String("email").NotEmpty().Unique(),
		field.String("role").
			Default(string(constants.RoleUser)).
			Validate(utils.EnumValidator(constants.Roles()...)),
		field.Bool("is_premium").Default(false),
		// monotonically non-decreasing for non-exempt accounts; bumped only
		// through the conditional increment in the user repository
		field.Int("upload_count").NonNegative().Default(0),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE user -> MANY images
		edge.To("images", Image.Type),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role"),
	}
}
