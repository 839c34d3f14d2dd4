// Code generated by ent, DO NOT EDIT.

package novelsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the novelsession type in the database.
	Label = "novel_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldLlmModel holds the string denoting the llm_model field in the database.
	FieldLlmModel = "llm_model"
	// FieldGenre holds the string denoting the genre field in the database.
	FieldGenre = "genre"
	// FieldFormData holds the string denoting the form_data field in the database.
	FieldFormData = "form_data"
	// FieldGeneratedQuestions holds the string denoting the generated_questions field in the database.
	FieldGeneratedQuestions = "generated_questions"
	// FieldQuestionAnswers holds the string denoting the question_answers field in the database.
	FieldQuestionAnswers = "question_answers"
	// FieldDraft holds the string denoting the draft field in the database.
	FieldDraft = "draft"
	// FieldOutline holds the string denoting the outline field in the database.
	FieldOutline = "outline"
	// FieldQuestionsProgress holds the string denoting the questions_progress field in the database.
	FieldQuestionsProgress = "questions_progress"
	// FieldDraftProgress holds the string denoting the draft_progress field in the database.
	FieldDraftProgress = "draft_progress"
	// FieldOutlineProgress holds the string denoting the outline_progress field in the database.
	FieldOutlineProgress = "outline_progress"
	// FieldWritingProgress holds the string denoting the writing_progress field in the database.
	FieldWritingProgress = "writing_progress"
	// FieldTokenUsage holds the string denoting the token_usage field in the database.
	FieldTokenUsage = "token_usage"
	// FieldCritique holds the string denoting the critique field in the database.
	FieldCritique = "critique"
	// FieldCritiqueStatus holds the string denoting the critique_status field in the database.
	FieldCritiqueStatus = "critique_status"
	// FieldCritiqueError holds the string denoting the critique_error field in the database.
	FieldCritiqueError = "critique_error"
	// FieldCoverImagePath holds the string denoting the cover_image_path field in the database.
	FieldCoverImagePath = "cover_image_path"
	// FieldPdfPath holds the string denoting the pdf_path field in the database.
	FieldPdfPath = "pdf_path"
	// FieldRealCostEur holds the string denoting the real_cost_eur field in the database.
	FieldRealCostEur = "real_cost_eur"
	// FieldEstimatedCostEur holds the string denoting the estimated_cost_eur field in the database.
	FieldEstimatedCostEur = "estimated_cost_eur"
	// FieldWritingTimeMinutes holds the string denoting the writing_time_minutes field in the database.
	FieldWritingTimeMinutes = "writing_time_minutes"
	// FieldChapterTimings holds the string denoting the chapter_timings field in the database.
	FieldChapterTimings = "chapter_timings"
	// FieldWritingStartTime holds the string denoting the writing_start_time field in the database.
	FieldWritingStartTime = "writing_start_time"
	// FieldWritingEndTime holds the string denoting the writing_end_time field in the database.
	FieldWritingEndTime = "writing_end_time"
	// FieldChapterStartTime holds the string denoting the chapter_start_time field in the database.
	FieldChapterStartTime = "chapter_start_time"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeChapters holds the string denoting the chapters edge name in mutations.
	EdgeChapters = "chapters"
	// EdgeTasks holds the string denoting the tasks edge name in mutations.
	EdgeTasks = "tasks"
	// EdgeShares holds the string denoting the shares edge name in mutations.
	EdgeShares = "shares"
	// ChapterFieldID holds the string denoting the ID field of the Chapter.
	ChapterFieldID = "chapter_id"
	// GenerationTaskFieldID holds the string denoting the ID field of the GenerationTask.
	GenerationTaskFieldID = "task_id"
	// BookShareFieldID holds the string denoting the ID field of the BookShare.
	BookShareFieldID = "share_id"
	// Table holds the table name of the novelsession in the database.
	Table = "novel_sessions"
	// ChaptersTable is the table that holds the chapters relation/edge.
	ChaptersTable = "chapters"
	// ChaptersInverseTable is the table name for the Chapter entity.
	// It exists in this package in order to avoid circular dependency with the "chapter" package.
	ChaptersInverseTable = "chapters"
	// ChaptersColumn is the table column denoting the chapters relation/edge.
	ChaptersColumn = "session_id"
	// TasksTable is the table that holds the tasks relation/edge.
	TasksTable = "generation_tasks"
	// TasksInverseTable is the table name for the GenerationTask entity.
	// It exists in this package in order to avoid circular dependency with the "generationtask" package.
	TasksInverseTable = "generation_tasks"
	// TasksColumn is the table column denoting the tasks relation/edge.
	TasksColumn = "session_id"
	// SharesTable is the table that holds the shares relation/edge.
	SharesTable = "book_shares"
	// SharesInverseTable is the table name for the BookShare entity.
	// It exists in this package in order to avoid circular dependency with the "bookshare" package.
	SharesInverseTable = "book_shares"
	// SharesColumn is the table column denoting the shares relation/edge.
	SharesColumn = "session_id"
)

// Columns holds all SQL columns for novelsession fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldLlmModel,
	FieldGenre,
	FieldFormData,
	FieldGeneratedQuestions,
	FieldQuestionAnswers,
	FieldDraft,
	FieldOutline,
	FieldQuestionsProgress,
	FieldDraftProgress,
	FieldOutlineProgress,
	FieldWritingProgress,
	FieldTokenUsage,
	FieldCritique,
	FieldCritiqueStatus,
	FieldCritiqueError,
	FieldCoverImagePath,
	FieldPdfPath,
	FieldRealCostEur,
	FieldEstimatedCostEur,
	FieldWritingTimeMinutes,
	FieldChapterTimings,
	FieldWritingStartTime,
	FieldWritingEndTime,
	FieldChapterStartTime,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRealCostEur holds the default value on creation for the "real_cost_eur" field.
	DefaultRealCostEur float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// CritiqueStatus defines the type for the "critique_status" enum field.
type CritiqueStatus string

// CritiqueStatusAbsent is the default value of the CritiqueStatus enum.
const DefaultCritiqueStatus = CritiqueStatusAbsent

// CritiqueStatus values.
const (
	CritiqueStatusAbsent    CritiqueStatus = "absent"
	CritiqueStatusPending   CritiqueStatus = "pending"
	CritiqueStatusRunning   CritiqueStatus = "running"
	CritiqueStatusCompleted CritiqueStatus = "completed"
	CritiqueStatusFailed    CritiqueStatus = "failed"
)

func (cs CritiqueStatus) String() string {
	return string(cs)
}

// CritiqueStatusValidator is a validator for the "critique_status" field enum values. It is called by the builders before save.
func CritiqueStatusValidator(cs CritiqueStatus) error {
	switch cs {
	case CritiqueStatusAbsent, CritiqueStatusPending, CritiqueStatusRunning, CritiqueStatusCompleted, CritiqueStatusFailed:
		return nil
	default:
		return fmt.Errorf("novelsession: invalid enum value for critique_status field: %q", cs)
	}
}

// OrderOption defines the ordering options for the NovelSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByLlmModel orders the results by the llm_model field.
func ByLlmModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmModel, opts...).ToFunc()
}

// ByGenre orders the results by the genre field.
func ByGenre(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenre, opts...).ToFunc()
}

// ByCritiqueStatus orders the results by the critique_status field.
func ByCritiqueStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCritiqueStatus, opts...).ToFunc()
}

// ByCritiqueError orders the results by the critique_error field.
func ByCritiqueError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCritiqueError, opts...).ToFunc()
}

// ByCoverImagePath orders the results by the cover_image_path field.
func ByCoverImagePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoverImagePath, opts...).ToFunc()
}

// ByPdfPath orders the results by the pdf_path field.
func ByPdfPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPdfPath, opts...).ToFunc()
}

// ByRealCostEur orders the results by the real_cost_eur field.
func ByRealCostEur(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRealCostEur, opts...).ToFunc()
}

// ByEstimatedCostEur orders the results by the estimated_cost_eur field.
func ByEstimatedCostEur(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedCostEur, opts...).ToFunc()
}

// ByWritingStartTime orders the results by the writing_start_time field.
func ByWritingStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWritingStartTime, opts...).ToFunc()
}

// ByWritingEndTime orders the results by the writing_end_time field.
func ByWritingEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWritingEndTime, opts...).ToFunc()
}

// ByChapterStartTime orders the results by the chapter_start_time field.
func ByChapterStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChapterStartTime, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByChaptersCount orders the results by chapters count.
func ByChaptersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChaptersStep(), opts...)
	}
}

// ByChapters orders the results by chapters terms.
func ByChapters(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChaptersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTasksCount orders the results by tasks count.
func ByTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTasksStep(), opts...)
	}
}

// ByTasks orders the results by tasks terms.
func ByTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySharesCount orders the results by shares count.
func BySharesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSharesStep(), opts...)
	}
}

// ByShares orders the results by shares terms.
func ByShares(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSharesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newChaptersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChaptersInverseTable, ChapterFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChaptersTable, ChaptersColumn),
	)
}
func newTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TasksInverseTable, GenerationTaskFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
	)
}
func newSharesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SharesInverseTable, BookShareFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SharesTable, SharesColumn),
	)
}
