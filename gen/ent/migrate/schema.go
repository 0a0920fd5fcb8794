// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisJobsColumns holds the columns for the "analysis_jobs" table.
	AnalysisJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "payload", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeString, Default: "QUEUED"},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "enqueued_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "image_id", Type: field.TypeUUID},
	}
	// AnalysisJobsTable holds the schema information for the "analysis_jobs" table.
	AnalysisJobsTable = &schema.Table{
		Name:       "analysis_jobs",
		Columns:    AnalysisJobsColumns,
		PrimaryKey: []*schema.Column{AnalysisJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "analysis_jobs_images_jobs",
				Columns:    []*schema.Column{AnalysisJobsColumns[7]},
				RefColumns: []*schema.Column{ImagesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "analysisjob_status_enqueued_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisJobsColumns[3], AnalysisJobsColumns[5]},
			},
			{
				Name:    "analysisjob_image_id",
				Unique:  false,
				Columns: []*schema.Column{AnalysisJobsColumns[7]},
			},
		},
	}
	// ImagesColumns holds the columns for the "images" table.
	ImagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "url", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "analysis", Type: field.TypeString, Default: "", SchemaType: map[string]string{"postgres": "text"}},
		{Name: "status", Type: field.TypeString, Default: "PROCESSING"},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// ImagesTable holds the schema information for the "images" table.
	ImagesTable = &schema.Table{
		Name:       "images",
		Columns:    ImagesColumns,
		PrimaryKey: []*schema.Column{ImagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "images_users_images",
				Columns:    []*schema.Column{ImagesColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "image_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ImagesColumns[7], ImagesColumns[6]},
			},
			{
				Name:    "image_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ImagesColumns[4], ImagesColumns[6]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeString, Default: "user"},
		{Name: "is_premium", Type: field.TypeBool, Default: false},
		{Name: "upload_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisJobsTable,
		ImagesTable,
		UsersTable,
	}
)

func init() {
	AnalysisJobsTable.ForeignKeys[0].RefTable = ImagesTable
	AnalysisJobsTable.Annotation = &entsql.Annotation{
		Table: "analysis_jobs",
	}
	ImagesTable.ForeignKeys[0].RefTable = UsersTable
	ImagesTable.Annotation = &entsql.Annotation{
		Table: "images",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
}
