// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fabula-ai/fabula/ent/novelsession"
	"github.com/fabula-ai/fabula/pkg/models"
)

// NovelSession is the model entity for the NovelSession schema.
type NovelSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Owner; legacy sessions may be unowned
	UserID string `json:"user_id,omitempty"`
	// Concrete model ID chosen at creation
	LlmModel string `json:"llm_model,omitempty"`
	// Genre holds the value of the "genre" field.
	Genre string `json:"genre,omitempty"`
	// Intake form payload
	FormData map[string]interface{} `json:"form_data,omitempty"`
	// GeneratedQuestions holds the value of the "generated_questions" field.
	GeneratedQuestions []models.Question `json:"generated_questions,omitempty"`
	// QuestionAnswers holds the value of the "question_answers" field.
	QuestionAnswers map[string]string `json:"question_answers,omitempty"`
	// Draft holds the value of the "draft" field.
	Draft models.Draft `json:"draft,omitempty"`
	// Outline holds the value of the "outline" field.
	Outline models.Outline `json:"outline,omitempty"`
	// QuestionsProgress holds the value of the "questions_progress" field.
	QuestionsProgress models.PhaseProgress `json:"questions_progress,omitempty"`
	// DraftProgress holds the value of the "draft_progress" field.
	DraftProgress models.PhaseProgress `json:"draft_progress,omitempty"`
	// OutlineProgress holds the value of the "outline_progress" field.
	OutlineProgress models.PhaseProgress `json:"outline_progress,omitempty"`
	// WritingProgress holds the value of the "writing_progress" field.
	WritingProgress models.WritingProgress `json:"writing_progress,omitempty"`
	// TokenUsage holds the value of the "token_usage" field.
	TokenUsage models.TokenUsage `json:"token_usage,omitempty"`
	// Critique holds the value of the "critique" field.
	Critique models.Critique `json:"critique,omitempty"`
	// CritiqueStatus holds the value of the "critique_status" field.
	CritiqueStatus novelsession.CritiqueStatus `json:"critique_status,omitempty"`
	// CritiqueError holds the value of the "critique_error" field.
	CritiqueError *string `json:"critique_error,omitempty"`
	// CoverImagePath holds the value of the "cover_image_path" field.
	CoverImagePath string `json:"cover_image_path,omitempty"`
	// PdfPath holds the value of the "pdf_path" field.
	PdfPath string `json:"pdf_path,omitempty"`
	// Accumulated actual cost; never a forward estimate
	RealCostEur float64 `json:"real_cost_eur,omitempty"`
	// EstimatedCostEur holds the value of the "estimated_cost_eur" field.
	EstimatedCostEur *float64 `json:"estimated_cost_eur,omitempty"`
	// Append-only; one entry per writing run
	WritingTimeMinutes []float64 `json:"writing_time_minutes,omitempty"`
	// Seconds per completed chapter; paused chapters are never timed
	ChapterTimings []float64 `json:"chapter_timings,omitempty"`
	// WritingStartTime holds the value of the "writing_start_time" field.
	WritingStartTime *time.Time `json:"writing_start_time,omitempty"`
	// WritingEndTime holds the value of the "writing_end_time" field.
	WritingEndTime *time.Time `json:"writing_end_time,omitempty"`
	// Open timing mark for the chapter in flight
	ChapterStartTime *time.Time `json:"chapter_start_time,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the NovelSessionQuery when eager-loading is set.
	Edges        NovelSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// NovelSessionEdges holds the relations/edges for other nodes in the graph.
type NovelSessionEdges struct {
	// Chapters holds the value of the chapters edge.
	Chapters []*Chapter `json:"chapters,omitempty"`
	// Tasks holds the value of the tasks edge.
	Tasks []*GenerationTask `json:"tasks,omitempty"`
	// Shares holds the value of the shares edge.
	Shares []*BookShare `json:"shares,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ChaptersOrErr returns the Chapters value or an error if the edge
// was not loaded in eager-loading.
func (e NovelSessionEdges) ChaptersOrErr() ([]*Chapter, error) {
	if e.loadedTypes[0] {
		return e.Chapters, nil
	}
	return nil, &NotLoadedError{edge: "chapters"}
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e NovelSessionEdges) TasksOrErr() ([]*GenerationTask, error) {
	if e.loadedTypes[1] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// SharesOrErr returns the Shares value or an error if the edge
// was not loaded in eager-loading.
func (e NovelSessionEdges) SharesOrErr() ([]*BookShare, error) {
	if e.loadedTypes[2] {
		return e.Shares, nil
	}
	return nil, &NotLoadedError{edge: "shares"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NovelSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case novelsession.FieldFormData, novelsession.FieldGeneratedQuestions, novelsession.FieldQuestionAnswers, novelsession.FieldDraft, novelsession.FieldOutline, novelsession.FieldQuestionsProgress, novelsession.FieldDraftProgress, novelsession.FieldOutlineProgress, novelsession.FieldWritingProgress, novelsession.FieldTokenUsage, novelsession.FieldCritique, novelsession.FieldWritingTimeMinutes, novelsession.FieldChapterTimings:
			values[i] = new([]byte)
		case novelsession.FieldRealCostEur, novelsession.FieldEstimatedCostEur:
			values[i] = new(sql.NullFloat64)
		case novelsession.FieldID, novelsession.FieldUserID, novelsession.FieldLlmModel, novelsession.FieldGenre, novelsession.FieldCritiqueStatus, novelsession.FieldCritiqueError, novelsession.FieldCoverImagePath, novelsession.FieldPdfPath:
			values[i] = new(sql.NullString)
		case novelsession.FieldWritingStartTime, novelsession.FieldWritingEndTime, novelsession.FieldChapterStartTime, novelsession.FieldCreatedAt, novelsession.FieldUpdatedAt, novelsession.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NovelSession fields.
func (_m *NovelSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case novelsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case novelsession.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case novelsession.FieldLlmModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_model", values[i])
			} else if value.Valid {
				_m.LlmModel = value.String
			}
		case novelsession.FieldGenre:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field genre", values[i])
			} else if value.Valid {
				_m.Genre = value.String
			}
		case novelsession.FieldFormData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field form_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FormData); err != nil {
					return fmt.Errorf("unmarshal field form_data: %w", err)
				}
			}
		case novelsession.FieldGeneratedQuestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field generated_questions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.GeneratedQuestions); err != nil {
					return fmt.Errorf("unmarshal field generated_questions: %w", err)
				}
			}
		case novelsession.FieldQuestionAnswers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field question_answers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.QuestionAnswers); err != nil {
					return fmt.Errorf("unmarshal field question_answers: %w", err)
				}
			}
		case novelsession.FieldDraft:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field draft", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Draft); err != nil {
					return fmt.Errorf("unmarshal field draft: %w", err)
				}
			}
		case novelsession.FieldOutline:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field outline", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Outline); err != nil {
					return fmt.Errorf("unmarshal field outline: %w", err)
				}
			}
		case novelsession.FieldQuestionsProgress:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field questions_progress", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.QuestionsProgress); err != nil {
					return fmt.Errorf("unmarshal field questions_progress: %w", err)
				}
			}
		case novelsession.FieldDraftProgress:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field draft_progress", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DraftProgress); err != nil {
					return fmt.Errorf("unmarshal field draft_progress: %w", err)
				}
			}
		case novelsession.FieldOutlineProgress:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field outline_progress", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OutlineProgress); err != nil {
					return fmt.Errorf("unmarshal field outline_progress: %w", err)
				}
			}
		case novelsession.FieldWritingProgress:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field writing_progress", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WritingProgress); err != nil {
					return fmt.Errorf("unmarshal field writing_progress: %w", err)
				}
			}
		case novelsession.FieldTokenUsage:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field token_usage", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TokenUsage); err != nil {
					return fmt.Errorf("unmarshal field token_usage: %w", err)
				}
			}
		case novelsession.FieldCritique:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field critique", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Critique); err != nil {
					return fmt.Errorf("unmarshal field critique: %w", err)
				}
			}
		case novelsession.FieldCritiqueStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field critique_status", values[i])
			} else if value.Valid {
				_m.CritiqueStatus = novelsession.CritiqueStatus(value.String)
			}
		case novelsession.FieldCritiqueError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field critique_error", values[i])
			} else if value.Valid {
				_m.CritiqueError = new(string)
				*_m.CritiqueError = value.String
			}
		case novelsession.FieldCoverImagePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cover_image_path", values[i])
			} else if value.Valid {
				_m.CoverImagePath = value.String
			}
		case novelsession.FieldPdfPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pdf_path", values[i])
			} else if value.Valid {
				_m.PdfPath = value.String
			}
		case novelsession.FieldRealCostEur:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field real_cost_eur", values[i])
			} else if value.Valid {
				_m.RealCostEur = value.Float64
			}
		case novelsession.FieldEstimatedCostEur:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_cost_eur", values[i])
			} else if value.Valid {
				_m.EstimatedCostEur = new(float64)
				*_m.EstimatedCostEur = value.Float64
			}
		case novelsession.FieldWritingTimeMinutes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field writing_time_minutes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WritingTimeMinutes); err != nil {
					return fmt.Errorf("unmarshal field writing_time_minutes: %w", err)
				}
			}
		case novelsession.FieldChapterTimings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field chapter_timings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ChapterTimings); err != nil {
					return fmt.Errorf("unmarshal field chapter_timings: %w", err)
				}
			}
		case novelsession.FieldWritingStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field writing_start_time", values[i])
			} else if value.Valid {
				_m.WritingStartTime = new(time.Time)
				*_m.WritingStartTime = value.Time
			}
		case novelsession.FieldWritingEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field writing_end_time", values[i])
			} else if value.Valid {
				_m.WritingEndTime = new(time.Time)
				*_m.WritingEndTime = value.Time
			}
		case novelsession.FieldChapterStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field chapter_start_time", values[i])
			} else if value.Valid {
				_m.ChapterStartTime = new(time.Time)
				*_m.ChapterStartTime = value.Time
			}
		case novelsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case novelsession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case novelsession.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NovelSession.
// This includes values selected through modifiers, order, etc.
func (_m *NovelSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChapters queries the "chapters" edge of the NovelSession entity.
func (_m *NovelSession) QueryChapters() *ChapterQuery {
	return NewNovelSessionClient(_m.config).QueryChapters(_m)
}

// QueryTasks queries the "tasks" edge of the NovelSession entity.
func (_m *NovelSession) QueryTasks() *GenerationTaskQuery {
	return NewNovelSessionClient(_m.config).QueryTasks(_m)
}

// QueryShares queries the "shares" edge of the NovelSession entity.
func (_m *NovelSession) QueryShares() *BookShareQuery {
	return NewNovelSessionClient(_m.config).QueryShares(_m)
}

// Update returns a builder for updating this NovelSession.
// Note that you need to call NovelSession.Unwrap() before calling this method if this NovelSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NovelSession) Update() *NovelSessionUpdateOne {
	return NewNovelSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NovelSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NovelSession) Unwrap() *NovelSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: NovelSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NovelSession) String() string {
	var builder strings.Builder
	builder.WriteString("NovelSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("llm_model=")
	builder.WriteString(_m.LlmModel)
	builder.WriteString(", ")
	builder.WriteString("genre=")
	builder.WriteString(_m.Genre)
	builder.WriteString(", ")
	builder.WriteString("form_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.FormData))
	builder.WriteString(", ")
	builder.WriteString("generated_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.GeneratedQuestions))
	builder.WriteString(", ")
	builder.WriteString("question_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionAnswers))
	builder.WriteString(", ")
	builder.WriteString("draft=")
	builder.WriteString(fmt.Sprintf("%v", _m.Draft))
	builder.WriteString(", ")
	builder.WriteString("outline=")
	builder.WriteString(fmt.Sprintf("%v", _m.Outline))
	builder.WriteString(", ")
	builder.WriteString("questions_progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsProgress))
	builder.WriteString(", ")
	builder.WriteString("draft_progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.DraftProgress))
	builder.WriteString(", ")
	builder.WriteString("outline_progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutlineProgress))
	builder.WriteString(", ")
	builder.WriteString("writing_progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.WritingProgress))
	builder.WriteString(", ")
	builder.WriteString("token_usage=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokenUsage))
	builder.WriteString(", ")
	builder.WriteString("critique=")
	builder.WriteString(fmt.Sprintf("%v", _m.Critique))
	builder.WriteString(", ")
	builder.WriteString("critique_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.CritiqueStatus))
	builder.WriteString(", ")
	if v := _m.CritiqueError; v != nil {
		builder.WriteString("critique_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("cover_image_path=")
	builder.WriteString(_m.CoverImagePath)
	builder.WriteString(", ")
	builder.WriteString("pdf_path=")
	builder.WriteString(_m.PdfPath)
	builder.WriteString(", ")
	builder.WriteString("real_cost_eur=")
	builder.WriteString(fmt.Sprintf("%v", _m.RealCostEur))
	builder.WriteString(", ")
	if v := _m.EstimatedCostEur; v != nil {
		builder.WriteString("estimated_cost_eur=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("writing_time_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.WritingTimeMinutes))
	builder.WriteString(", ")
	builder.WriteString("chapter_timings=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChapterTimings))
	builder.WriteString(", ")
	if v := _m.WritingStartTime; v != nil {
		builder.WriteString("writing_start_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.WritingEndTime; v != nil {
		builder.WriteString("writing_end_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ChapterStartTime; v != nil {
		builder.WriteString("chapter_start_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// NovelSessions is a parsable slice of NovelSession.
type NovelSessions []*NovelSession
