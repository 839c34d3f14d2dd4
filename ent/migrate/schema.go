// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BookSharesColumns holds the columns for the "book_shares" table.
	BookSharesColumns = []*schema.Column{
		{Name: "share_id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "recipient_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// BookSharesTable holds the schema information for the "book_shares" table.
	BookSharesTable = &schema.Table{
		Name:       "book_shares",
		Columns:    BookSharesColumns,
		PrimaryKey: []*schema.Column{BookSharesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "book_shares_novel_sessions_shares",
				Columns:    []*schema.Column{BookSharesColumns[4]},
				RefColumns: []*schema.Column{NovelSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "bookshare_session_id_recipient_id",
				Unique:  true,
				Columns: []*schema.Column{BookSharesColumns[4], BookSharesColumns[2]},
			},
			{
				Name:    "bookshare_recipient_id",
				Unique:  false,
				Columns: []*schema.Column{BookSharesColumns[2]},
			},
		},
	}
	// ChaptersColumns holds the columns for the "chapters" table.
	ChaptersColumns = []*schema.Column{
		{Name: "chapter_id", Type: field.TypeString, Unique: true},
		{Name: "section_index", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "word_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// ChaptersTable holds the schema information for the "chapters" table.
	ChaptersTable = &schema.Table{
		Name:       "chapters",
		Columns:    ChaptersColumns,
		PrimaryKey: []*schema.Column{ChaptersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chapters_novel_sessions_chapters",
				Columns:    []*schema.Column{ChaptersColumns[7]},
				RefColumns: []*schema.Column{NovelSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chapter_session_id_section_index",
				Unique:  true,
				Columns: []*schema.Column{ChaptersColumns[7], ChaptersColumns[1]},
			},
		},
	}
	// GenerationTasksColumns holds the columns for the "generation_tasks" table.
	GenerationTasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"questions", "draft", "outline", "writing", "critique"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "completed", "failed", "cancelled"}, Default: "queued"},
		{Name: "attempt", Type: field.TypeInt, Default: 0},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// GenerationTasksTable holds the schema information for the "generation_tasks" table.
	GenerationTasksTable = &schema.Table{
		Name:       "generation_tasks",
		Columns:    GenerationTasksColumns,
		PrimaryKey: []*schema.Column{GenerationTasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "generation_tasks_novel_sessions_tasks",
				Columns:    []*schema.Column{GenerationTasksColumns[10]},
				RefColumns: []*schema.Column{NovelSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "generationtask_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{GenerationTasksColumns[2], GenerationTasksColumns[9]},
			},
			{
				Name:    "generationtask_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{GenerationTasksColumns[2], GenerationTasksColumns[6]},
			},
			{
				Name:    "generationtask_session_id_status",
				Unique:  false,
				Columns: []*schema.Column{GenerationTasksColumns[10], GenerationTasksColumns[2]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "notification_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_read",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1], NotificationsColumns[6]},
			},
			{
				Name:    "notification_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1], NotificationsColumns[7]},
			},
		},
	}
	// NovelSessionsColumns holds the columns for the "novel_sessions" table.
	NovelSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "llm_model", Type: field.TypeString},
		{Name: "genre", Type: field.TypeString, Nullable: true},
		{Name: "form_data", Type: field.TypeJSON},
		{Name: "generated_questions", Type: field.TypeJSON, Nullable: true},
		{Name: "question_answers", Type: field.TypeJSON, Nullable: true},
		{Name: "draft", Type: field.TypeJSON, Nullable: true},
		{Name: "outline", Type: field.TypeJSON, Nullable: true},
		{Name: "questions_progress", Type: field.TypeJSON, Nullable: true},
		{Name: "draft_progress", Type: field.TypeJSON, Nullable: true},
		{Name: "outline_progress", Type: field.TypeJSON, Nullable: true},
		{Name: "writing_progress", Type: field.TypeJSON, Nullable: true},
		{Name: "token_usage", Type: field.TypeJSON, Nullable: true},
		{Name: "critique", Type: field.TypeJSON, Nullable: true},
		{Name: "critique_status", Type: field.TypeEnum, Enums: []string{"absent", "pending", "running", "completed", "failed"}, Default: "absent"},
		{Name: "critique_error", Type: field.TypeString, Nullable: true},
		{Name: "cover_image_path", Type: field.TypeString, Nullable: true},
		{Name: "pdf_path", Type: field.TypeString, Nullable: true},
		{Name: "real_cost_eur", Type: field.TypeFloat64, Default: 0},
		{Name: "estimated_cost_eur", Type: field.TypeFloat64, Nullable: true},
		{Name: "writing_time_minutes", Type: field.TypeJSON, Nullable: true},
		{Name: "chapter_timings", Type: field.TypeJSON, Nullable: true},
		{Name: "writing_start_time", Type: field.TypeTime, Nullable: true},
		{Name: "writing_end_time", Type: field.TypeTime, Nullable: true},
		{Name: "chapter_start_time", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// NovelSessionsTable holds the schema information for the "novel_sessions" table.
	NovelSessionsTable = &schema.Table{
		Name:       "novel_sessions",
		Columns:    NovelSessionsColumns,
		PrimaryKey: []*schema.Column{NovelSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "novelsession_user_id",
				Unique:  false,
				Columns: []*schema.Column{NovelSessionsColumns[1]},
			},
			{
				Name:    "novelsession_llm_model",
				Unique:  false,
				Columns: []*schema.Column{NovelSessionsColumns[2]},
			},
			{
				Name:    "novelsession_genre",
				Unique:  false,
				Columns: []*schema.Column{NovelSessionsColumns[3]},
			},
			{
				Name:    "novelsession_critique_status",
				Unique:  false,
				Columns: []*schema.Column{NovelSessionsColumns[15]},
			},
			{
				Name:    "novelsession_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{NovelSessionsColumns[1], NovelSessionsColumns[26]},
			},
			{
				Name:    "novelsession_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{NovelSessionsColumns[28]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "hashed_password", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "admin"}, Default: "user"},
		{Name: "is_verified", Type: field.TypeBool, Default: false},
		{Name: "api_token", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "credits_flash", Type: field.TypeInt, Default: 0},
		{Name: "credits_pro", Type: field.TypeInt, Default: 0},
		{Name: "credits_ultra", Type: field.TypeInt, Default: 0},
		{Name: "credits_reset_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[13]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BookSharesTable,
		ChaptersTable,
		GenerationTasksTable,
		NotificationsTable,
		NovelSessionsTable,
		UsersTable,
	}
)

func init() {
	BookSharesTable.ForeignKeys[0].RefTable = NovelSessionsTable
	ChaptersTable.ForeignKeys[0].RefTable = NovelSessionsTable
	GenerationTasksTable.ForeignKeys[0].RefTable = NovelSessionsTable
}
