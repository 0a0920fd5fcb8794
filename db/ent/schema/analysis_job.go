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

type AnalysisJob struct{ ent.Schema }

func (AnalysisJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "analysis_jobs"},
	}
}

func (AnalysisJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("image_id", uuid.UUID{}),
		// normalized JPEG bytes; the worker must not depend on the blob store
		field.Bytes("payload").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.Int("attempts").NonNegative().Default(0),
		field.String("status").
			Default(string(constants.JobStatusQueued)).
			Validate(utils.EnumValidator(constants.JobStatuses()...)),
		field.String("last_error").Optional().Nillable(),
		field.Time("enqueued_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (AnalysisJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("image", Image.Type).
			Ref("jobs").
			Field("image_id").
			Unique().
			Required(),
	}
}

func (AnalysisJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "enqueued_at"),
		index.Fields("image_id"),
	}
}
