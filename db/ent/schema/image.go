package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/mediscan-kh/mediscan/constants"
	"github.com/mediscan-kh/mediscan/db/ent/schema/utils"
)

type Image struct {
	ent.Schema
}

func (Image) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "images"},
	}
}

func (Image) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so listings can filter without loading the edge
		field.UUID("user_id", uuid.UUID{}),
		field.String("url").NotEmpty(),
		field.String("description").Optional().Nillable(),
		// empty until a successful analysis lands; status is the authority,
		// never the text content
		field.String("analysis").Default("").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("status").
			Default(string(constants.RecordStatusProcessing)).
			Validate(utils.EnumValidator(constants.RecordStatuses()...)),
		field.String("failure_reason").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Image) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY images -> ONE user
		edge.From("owner", User.Type).
			Ref("images").
			Field("user_id").
			Required().
			Unique(),
		// ONE image -> MANY jobs
		edge.To("jobs", AnalysisJob.Type),
	}
}

func (Image) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("status", "created_at"),
	}
}
