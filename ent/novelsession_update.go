// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/fabula-ai/fabula/ent/bookshare"
	"github.com/fabula-ai/fabula/ent/chapter"
	"github.com/fabula-ai/fabula/ent/generationtask"
	"github.com/fabula-ai/fabula/ent/novelsession"
	"github.com/fabula-ai/fabula/ent/predicate"
	"github.com/fabula-ai/fabula/pkg/models"
)

// NovelSessionUpdate is the builder for updating NovelSession entities.
type NovelSessionUpdate struct {
	config
	hooks    []Hook
	mutation *NovelSessionMutation
}

// Where appends a list predicates to the NovelSessionUpdate builder.
func (_u *NovelSessionUpdate) Where(ps ...predicate.NovelSession) *NovelSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *NovelSessionUpdate) SetUserID(v string) *NovelSessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *NovelSessionUpdate) SetNillableUserID(v *string) *NovelSessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *NovelSessionUpdate) ClearUserID() *NovelSessionUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetLlmModel sets the "llm_model" field.
func (_u *NovelSessionUpdate) SetLlmModel(v string) *NovelSessionUpdate {
	_u.mutation.SetLlmModel(v)
	return _u
}

// SetNillableLlmModel sets the "llm_model" field if the given value is not nil.
func (_u *NovelSessionUpdate) SetNillableLlmModel(v *string) *NovelSessionUpdate {
	if v != nil {
		_u.SetLlmModel(*v)
	}
	return _u
}

// SetGenre sets the "genre" field.
func (_u *NovelSessionUpdate) SetGenre(v string) *NovelSessionUpdate {
	_u.mutation.SetGenre(v)
	return _u
}

// SetNillableGenre sets the "genre" field if the given value is not nil.
func (_u *NovelSessionUpdate) SetNillableGenre(v *string) *NovelSessionUpdate {
	if v != nil {
		_u.SetGenre(*v)
	}
	return _u
}

// ClearGenre clears the value of the "genre" field.
func (_u *NovelSessionUpdate) ClearGenre() *NovelSessionUpdate {
	_u.mutation.ClearGenre()
	return _u
}

// SetFormData sets the "form_data" field.
func (_u *NovelSessionUpdate) SetFormData(v map[string]interface{}) *NovelSessionUpdate {
	_u.mutation.SetFormData(v)
	return _u
}

// SetGeneratedQuestions sets the "generated_questions" field.
func (_u *NovelSessionUpdate) SetGeneratedQuestions(v []models.Question) *NovelSessionUpdate {
	_u.mutation.SetGeneratedQuestions(v)
	return _u
}

// AppendGeneratedQuestions appends value to the "generated_questions" field.
func (_u *NovelSessionUpdate) AppendGeneratedQuestions(v []models.Question) *NovelSessionUpdate {
	_u.mutation.AppendGeneratedQuestions(v)
	return _u
}

// ClearGeneratedQuestions clears the value of the "generated_questions" field.
func (_u *NovelSessionUpdate) ClearGeneratedQuestions() *NovelSessionUpdate {
	_u.mutation.ClearGeneratedQuestions()
	return _u
}

// SetQuestionAnswers sets the "question_answers" field.
func (_u *NovelSessionUpdate) SetQuestionAnswers(v map[string]string) *NovelSessionUpdate {
	_u.mutation.SetQuestionAnswers(v)
	return _u
}

// ClearQuestionAnswers clears the value of the "question_answers" field.
func (_u *NovelSessionUpdate) ClearQuestionAnswers() *NovelSessionUpdate {
	_u.mutation.ClearQuestionAnswers()
	return _u
}

// SetDraft sets the "draft" field.
func (_u *NovelSessionUpdate) SetDraft(v models.Draft) *NovelSessionUpdate {
	_u.mutation.SetDraft(v)
	return _u
}

// SetNillableDraft sets the "draft" field if the given value is not nil.
func (_u *NovelSessionUpdate) SetNillableDraft(v *models.Draft) *NovelSessionUpdate {
	if v != nil {
		_u.SetDraft(*v)
	}
	return _u
}

// ClearDraft clears the value of the "draft" field.
func (_u *NovelSessionUpdate) ClearDraft() *NovelSessionUpdate {
	_u.mutation.ClearDraft()
	return _u
}

// SetOutline sets the "outline" field.
func (_u *NovelSessionUpdate) SetOutline(v models.Outline) *NovelSessionUpdate {
	_u.mutation.SetOutline(v)
	return _u
}

// SetNillableOutline sets the "outline" field if the given value is not nil.
func (_u *NovelSessionUpdate) SetNillableOutline(v *models.Outline) *NovelSessionUpdate {
	if v != nil {
		_u.SetOutline(*v)
	}
	return _u
}

// ClearOutline clears the value of the "outline" field.
func (_u *NovelSessionUpdate) ClearOutline() *NovelSessionUpdate {
	_u.mutation.ClearOutline()
	return _u
}

// SetQuestionsProgress sets the "questions_progress" field.
func (_u *NovelSessionUpdate) SetQuestionsProgress(v models.PhaseProgress) *NovelSessionUpdate {
	_u.mutation.SetQuestionsProgress(v)
	return _u
}

// SetNillableQuestionsProgress sets the "questions_progress" field if the given value is not nil.
func (_u *NovelSessionUpdate) SetNillableQuestionsProgress(v *models.PhaseProgress) *NovelSessionUpdate {
	if v != nil {
		_u.SetQuestionsProgress(*v)
	}
	return _u
}

// ClearQuestionsProgress clears the value of the "questions_progress" field.
func (_u *NovelSessionUpdate) ClearQuestionsProgress() *NovelSessionUpdate {
	_u.mutation.ClearQuestionsProgress()
	return _u
}

// SetDraftProgress sets the "draft_progress" field.
func (_u *NovelSessionUpdate) SetDraftProgress(v models.PhaseProgress) *NovelSessionUpdate {
	_u.mutation.SetDraftProgress(v)
	return _u
}

// SetNillableDraftProgress sets the "draft_progress" field if the given value is not nil.
func (_u *NovelSessionUpdate) SetNillableDraftProgress(v *models.PhaseProgress) *NovelSessionUpdate {
	if v != nil {
		_u.SetDraftProgress(*v)
	}
	return _u
}

// ClearDraftProgress clears the value of the "draft_progress" field.
func (_u *NovelSessionUpdate) ClearDraftProgress() *NovelSessionUpdate {
	_u.mutation.ClearDraftProgress()
	return _u
}

// SetOutlineProgress sets the "outline_progress" field.
func (_u *NovelSessionUpdate) SetOutlineProgress(v models.PhaseProgress) *NovelSessionUpdate {
	_u.mutation.SetOutlineProgress(v)
	return _u
}

// SetNillableOutlineProgress sets the "outline_progress" field if the given value is not nil.
func (_u *NovelSessionUpdate) SetNillableOutlineProgress(v *models.PhaseProgress) *NovelSessionUpdate {
	if v != nil {
		_u.SetOutlineProgress(*v)
	}
	return _u
}

// ClearOutlineProgress clears the value of the "outline_progress" field.
func (_u *NovelSessionUpdate) ClearOutlineProgress() *NovelSessionUpdate {
	_u.mutation.ClearOutlineProgress()
	return _u
}

// SetWritingProgress sets the "writing_progress" field.
func (_u *NovelSessionUpdate) SetWritingProgress(v models.WritingProgress) *NovelSessionUpdate {
	_u.mutation.SetWritingProgress(v)
	return _u
}

// SetNillableWritingProgress sets the "writing_progress" field if the given value is not nil.
func (_u *NovelSessionUpdate) SetNillableWritingProgress(v *models.WritingProgress) *NovelSessionUpdate {
	if v != nil {
		_u.SetWritingProgress(*v)
	}
	return _u
}

// ClearWritingProgress clears the value of the "writing_progress" field.
func (_u *NovelSessionUpdate) ClearWritingProgress() *NovelSessionUpdate {
	_u.mutation.ClearWritingProgress()
	return _u
}

// SetTokenUsage sets the "token_usage" field.
func (_u *NovelSessionUpdate) SetTokenUsage(v models.TokenUsage) *NovelSessionUpdate {
	_u.mutation.SetTokenUsage(v)
	return _u
}

// SetNillableTokenUsage sets the "token_usage" field if the given value is not nil.
func (_u *NovelSessionUpdate) SetNillableTokenUsage(v *models.TokenUsage) *NovelSessionUpdate {
	if v != nil {
		_u.SetTokenUsage(*v)
	}
	return _u
}

// ClearTokenUsage clears the value of the "token_usage" field.
func (_u *NovelSessionUpdate) ClearTokenUsage() *NovelSessionUpdate {
	_u.mutation.ClearTokenUsage()
	return _u
}

// SetCritique sets the "critique" field.
func (_u *NovelSessionUpdate) SetCritique(v models.Critique) *NovelSessionUpdate {
	_u.mutation.SetCritique(v)
	return _u
}

// SetNillableCritique sets the "critique" field if the given value is not nil.
func (_u *NovelSessionUpdate) SetNillableCritique(v *models.Critique) *NovelSessionUpdate {
	if v != nil {
		_u.SetCritique(*v)
	}
	return _u
}

// ClearCritique clears the value of the "critique" field.
func (_u *NovelSessionUpdate) ClearCritique() *NovelSessionUpdate {
	_u.mutation.ClearCritique()
	return _u
}

// SetCritiqueStatus sets the "critique_status" field.
func (_u *NovelSessionUpdate) SetCritiqueStatus(v novelsession.CritiqueStatus) *NovelSessionUpdate {
	_u.mutation.SetCritiqueStatus(v)
	return _u
}

// SetNillableCritiqueStatus sets the "critique_status" field if the given value is not nil.
func (_u *NovelSessionUpdate) SetNillableCritiqueStatus(v *novelsession.CritiqueStatus) *NovelSessionUpdate {
	if v != nil {
		_u.SetCritiqueStatus(*v)
	}
	return _u
}

// SetCritiqueError sets the "critique_error" field.
func (_u *NovelSessionUpdate) SetCritiqueError(v string) *NovelSessionUpdate {
	_u.mutation.SetCritiqueError(v)
	return _u
}

// SetNillableCritiqueError sets the "critique_error" field if the given value is not nil.
func (_u *NovelSessionUpdate) SetNillableCritiqueError(v *string) *NovelSessionUpdate {
	if v != nil {
		_u.SetCritiqueError(*v)
	}
	return _u
}

// ClearCritiqueError clears the value of the "critique_error" field.
func (_u *NovelSessionUpdate) ClearCritiqueError() *NovelSessionUpdate {
	_u.mutation.ClearCritiqueError()
	return _u
}

// SetCoverImagePath sets the "cover_image_path" field.
func (_u *NovelSessionUpdate) SetCoverImagePath(v string) *NovelSessionUpdate {
	_u.mutation.SetCoverImagePath(v)
	return _u
}

// SetNillableCoverImagePath sets the "cover_image_path" field if the given value is not nil.
func (_u *NovelSessionUpdate) SetNillableCoverImagePath(v *string) *NovelSessionUpdate {
	if v != nil {
		_u.SetCoverImagePath(*v)
	}
	return _u
}

// ClearCoverImagePath clears the value of the "cover_image_path" field.
func (_u *NovelSessionUpdate) ClearCoverImagePath() *NovelSessionUpdate {
	_u.mutation.ClearCoverImagePath()
	return _u
}

// SetPdfPath sets the "pdf_path" field.
func (_u *NovelSessionUpdate) SetPdfPath(v string) *NovelSessionUpdate {
	_u.mutation.SetPdfPath(v)
	return _u
}

// SetNillablePdfPath sets the "pdf_path" field if the given value is not nil.
func (_u *NovelSessionUpdate) SetNillablePdfPath(v *string) *NovelSessionUpdate {
	if v != nil {
		_u.SetPdfPath(*v)
	}
	return _u
}

// ClearPdfPath clears the value of the "pdf_path" field.
func (_u *NovelSessionUpdate) ClearPdfPath() *NovelSessionUpdate {
	_u.mutation.ClearPdfPath()
	return _u
}

// SetRealCostEur sets the "real_cost_eur" field.
func (_u *NovelSessionUpdate) SetRealCostEur(v float64) *NovelSessionUpdate {
	_u.mutation.ResetRealCostEur()
	_u.mutation.SetRealCostEur(v)
	return _u
}

// SetNillableRealCostEur sets the "real_cost_eur" field if the given value is not nil.
func (_u *NovelSessionUpdate) SetNillableRealCostEur(v *float64) *NovelSessionUpdate {
	if v != nil {
		_u.SetRealCostEur(*v)
	}
	return _u
}

// AddRealCostEur adds value to the "real_cost_eur" field.
func (_u *NovelSessionUpdate) AddRealCostEur(v float64) *NovelSessionUpdate {
	_u.mutation.AddRealCostEur(v)
	return _u
}

// SetEstimatedCostEur sets the "estimated_cost_eur" field.
func (_u *NovelSessionUpdate) SetEstimatedCostEur(v float64) *NovelSessionUpdate {
	_u.mutation.ResetEstimatedCostEur()
	_u.mutation.SetEstimatedCostEur(v)
	return _u
}

// SetNillableEstimatedCostEur sets the "estimated_cost_eur" field if the given value is not nil.
func (_u *NovelSessionUpdate) SetNillableEstimatedCostEur(v *float64) *NovelSessionUpdate {
	if v != nil {
		_u.SetEstimatedCostEur(*v)
	}
	return _u
}

// AddEstimatedCostEur adds value to the "estimated_cost_eur" field.
func (_u *NovelSessionUpdate) AddEstimatedCostEur(v float64) *NovelSessionUpdate {
	_u.mutation.AddEstimatedCostEur(v)
	return _u
}

// ClearEstimatedCostEur clears the value of the "estimated_cost_eur" field.
func (_u *NovelSessionUpdate) ClearEstimatedCostEur() *NovelSessionUpdate {
	_u.mutation.ClearEstimatedCostEur()
	return _u
}

// SetWritingTimeMinutes sets the "writing_time_minutes" field.
func (_u *NovelSessionUpdate) SetWritingTimeMinutes(v []float64) *NovelSessionUpdate {
	_u.mutation.SetWritingTimeMinutes(v)
	return _u
}

// AppendWritingTimeMinutes appends value to the "writing_time_minutes" field.
func (_u *NovelSessionUpdate) AppendWritingTimeMinutes(v []float64) *NovelSessionUpdate {
	_u.mutation.AppendWritingTimeMinutes(v)
	return _u
}

// ClearWritingTimeMinutes clears the value of the "writing_time_minutes" field.
func (_u *NovelSessionUpdate) ClearWritingTimeMinutes() *NovelSessionUpdate {
	_u.mutation.ClearWritingTimeMinutes()
	return _u
}

// SetChapterTimings sets the "chapter_timings" field.
func (_u *NovelSessionUpdate) SetChapterTimings(v []float64) *NovelSessionUpdate {
	_u.mutation.SetChapterTimings(v)
	return _u
}

// AppendChapterTimings appends value to the "chapter_timings" field.
func (_u *NovelSessionUpdate) AppendChapterTimings(v []float64) *NovelSessionUpdate {
	_u.mutation.AppendChapterTimings(v)
	return _u
}

// ClearChapterTimings clears the value of the "chapter_timings" field.
func (_u *NovelSessionUpdate) ClearChapterTimings() *NovelSessionUpdate {
	_u.mutation.ClearChapterTimings()
	return _u
}

// SetWritingStartTime sets the "writing_start_time" field.
func (_u *NovelSessionUpdate) SetWritingStartTime(v time.Time) *NovelSessionUpdate {
	_u.mutation.SetWritingStartTime(v)
	return _u
}

// SetNillableWritingStartTime sets the "writing_start_time" field if the given value is not nil.
func (_u *NovelSessionUpdate) SetNillableWritingStartTime(v *time.Time) *NovelSessionUpdate {
	if v != nil {
		_u.SetWritingStartTime(*v)
	}
	return _u
}

// ClearWritingStartTime clears the value of the "writing_start_time" field.
func (_u *NovelSessionUpdate) ClearWritingStartTime() *NovelSessionUpdate {
	_u.mutation.ClearWritingStartTime()
	return _u
}

// SetWritingEndTime sets the "writing_end_time" field.
func (_u *NovelSessionUpdate) SetWritingEndTime(v time.Time) *NovelSessionUpdate {
	_u.mutation.SetWritingEndTime(v)
	return _u
}

// SetNillableWritingEndTime sets the "writing_end_time" field if the given value is not nil.
func (_u *NovelSessionUpdate) SetNillableWritingEndTime(v *time.Time) *NovelSessionUpdate {
	if v != nil {
		_u.SetWritingEndTime(*v)
	}
	return _u
}

// ClearWritingEndTime clears the value of the "writing_end_time" field.
func (_u *NovelSessionUpdate) ClearWritingEndTime() *NovelSessionUpdate {
	_u.mutation.ClearWritingEndTime()
	return _u
}

// SetChapterStartTime sets the "chapter_start_time" field.
func (_u *NovelSessionUpdate) SetChapterStartTime(v time.Time) *NovelSessionUpdate {
	_u.mutation.SetChapterStartTime(v)
	return _u
}

// SetNillableChapterStartTime sets the "chapter_start_time" field if the given value is not nil.
func (_u *NovelSessionUpdate) SetNillableChapterStartTime(v *time.Time) *NovelSessionUpdate {
	if v != nil {
		_u.SetChapterStartTime(*v)
	}
	return _u
}

// ClearChapterStartTime clears the value of the "chapter_start_time" field.
func (_u *NovelSessionUpdate) ClearChapterStartTime() *NovelSessionUpdate {
	_u.mutation.ClearChapterStartTime()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NovelSessionUpdate) SetUpdatedAt(v time.Time) *NovelSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *NovelSessionUpdate) SetDeletedAt(v time.Time) *NovelSessionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *NovelSessionUpdate) SetNillableDeletedAt(v *time.Time) *NovelSessionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *NovelSessionUpdate) ClearDeletedAt() *NovelSessionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddChapterIDs adds the "chapters" edge to the Chapter entity by IDs.
func (_u *NovelSessionUpdate) AddChapterIDs(ids ...string) *NovelSessionUpdate {
	_u.mutation.AddChapterIDs(ids...)
	return _u
}

// AddChapters adds the "chapters" edges to the Chapter entity.
func (_u *NovelSessionUpdate) AddChapters(v ...*Chapter) *NovelSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChapterIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the GenerationTask entity by IDs.
func (_u *NovelSessionUpdate) AddTaskIDs(ids ...string) *NovelSessionUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the GenerationTask entity.
func (_u *NovelSessionUpdate) AddTasks(v ...*GenerationTask) *NovelSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddShareIDs adds the "shares" edge to the BookShare entity by IDs.
func (_u *NovelSessionUpdate) AddShareIDs(ids ...string) *NovelSessionUpdate {
	_u.mutation.AddShareIDs(ids...)
	return _u
}

// AddShares adds the "shares" edges to the BookShare entity.
func (_u *NovelSessionUpdate) AddShares(v ...*BookShare) *NovelSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddShareIDs(ids...)
}

// Mutation returns the NovelSessionMutation object of the builder.
func (_u *NovelSessionUpdate) Mutation() *NovelSessionMutation {
	return _u.mutation
}

// ClearChapters clears all "chapters" edges to the Chapter entity.
func (_u *NovelSessionUpdate) ClearChapters() *NovelSessionUpdate {
	_u.mutation.ClearChapters()
	return _u
}

// RemoveChapterIDs removes the "chapters" edge to Chapter entities by IDs.
func (_u *NovelSessionUpdate) RemoveChapterIDs(ids ...string) *NovelSessionUpdate {
	_u.mutation.RemoveChapterIDs(ids...)
	return _u
}

// RemoveChapters removes "chapters" edges to Chapter entities.
func (_u *NovelSessionUpdate) RemoveChapters(v ...*Chapter) *NovelSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChapterIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the GenerationTask entity.
func (_u *NovelSessionUpdate) ClearTasks() *NovelSessionUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to GenerationTask entities by IDs.
func (_u *NovelSessionUpdate) RemoveTaskIDs(ids ...string) *NovelSessionUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to GenerationTask entities.
func (_u *NovelSessionUpdate) RemoveTasks(v ...*GenerationTask) *NovelSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearShares clears all "shares" edges to the BookShare entity.
func (_u *NovelSessionUpdate) ClearShares() *NovelSessionUpdate {
	_u.mutation.ClearShares()
	return _u
}

// RemoveShareIDs removes the "shares" edge to BookShare entities by IDs.
func (_u *NovelSessionUpdate) RemoveShareIDs(ids ...string) *NovelSessionUpdate {
	_u.mutation.RemoveShareIDs(ids...)
	return _u
}

// RemoveShares removes "shares" edges to BookShare entities.
func (_u *NovelSessionUpdate) RemoveShares(v ...*BookShare) *NovelSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveShareIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NovelSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NovelSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NovelSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NovelSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NovelSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := novelsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NovelSessionUpdate) check() error {
	if v, ok := _u.mutation.CritiqueStatus(); ok {
		if err := novelsession.CritiqueStatusValidator(v); err != nil {
			return &ValidationError{Name: "critique_status", err: fmt.Errorf(`ent: validator failed for field "NovelSession.critique_status": %w`, err)}
		}
	}
	return nil
}

func (_u *NovelSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(novelsession.Table, novelsession.Columns, sqlgraph.NewFieldSpec(novelsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(novelsession.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(novelsession.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.LlmModel(); ok {
		_spec.SetField(novelsession.FieldLlmModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Genre(); ok {
		_spec.SetField(novelsession.FieldGenre, field.TypeString, value)
	}
	if _u.mutation.GenreCleared() {
		_spec.ClearField(novelsession.FieldGenre, field.TypeString)
	}
	if value, ok := _u.mutation.FormData(); ok {
		_spec.SetField(novelsession.FieldFormData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.GeneratedQuestions(); ok {
		_spec.SetField(novelsession.FieldGeneratedQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGeneratedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, novelsession.FieldGeneratedQuestions, value)
		})
	}
	if _u.mutation.GeneratedQuestionsCleared() {
		_spec.ClearField(novelsession.FieldGeneratedQuestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.QuestionAnswers(); ok {
		_spec.SetField(novelsession.FieldQuestionAnswers, field.TypeJSON, value)
	}
	if _u.mutation.QuestionAnswersCleared() {
		_spec.ClearField(novelsession.FieldQuestionAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Draft(); ok {
		_spec.SetField(novelsession.FieldDraft, field.TypeJSON, value)
	}
	if _u.mutation.DraftCleared() {
		_spec.ClearField(novelsession.FieldDraft, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outline(); ok {
		_spec.SetField(novelsession.FieldOutline, field.TypeJSON, value)
	}
	if _u.mutation.OutlineCleared() {
		_spec.ClearField(novelsession.FieldOutline, field.TypeJSON)
	}
	if value, ok := _u.mutation.QuestionsProgress(); ok {
		_spec.SetField(novelsession.FieldQuestionsProgress, field.TypeJSON, value)
	}
	if _u.mutation.QuestionsProgressCleared() {
		_spec.ClearField(novelsession.FieldQuestionsProgress, field.TypeJSON)
	}
	if value, ok := _u.mutation.DraftProgress(); ok {
		_spec.SetField(novelsession.FieldDraftProgress, field.TypeJSON, value)
	}
	if _u.mutation.DraftProgressCleared() {
		_spec.ClearField(novelsession.FieldDraftProgress, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutlineProgress(); ok {
		_spec.SetField(novelsession.FieldOutlineProgress, field.TypeJSON, value)
	}
	if _u.mutation.OutlineProgressCleared() {
		_spec.ClearField(novelsession.FieldOutlineProgress, field.TypeJSON)
	}
	if value, ok := _u.mutation.WritingProgress(); ok {
		_spec.SetField(novelsession.FieldWritingProgress, field.TypeJSON, value)
	}
	if _u.mutation.WritingProgressCleared() {
		_spec.ClearField(novelsession.FieldWritingProgress, field.TypeJSON)
	}
	if value, ok := _u.mutation.TokenUsage(); ok {
		_spec.SetField(novelsession.FieldTokenUsage, field.TypeJSON, value)
	}
	if _u.mutation.TokenUsageCleared() {
		_spec.ClearField(novelsession.FieldTokenUsage, field.TypeJSON)
	}
	if value, ok := _u.mutation.Critique(); ok {
		_spec.SetField(novelsession.FieldCritique, field.TypeJSON, value)
	}
	if _u.mutation.CritiqueCleared() {
		_spec.ClearField(novelsession.FieldCritique, field.TypeJSON)
	}
	if value, ok := _u.mutation.CritiqueStatus(); ok {
		_spec.SetField(novelsession.FieldCritiqueStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CritiqueError(); ok {
		_spec.SetField(novelsession.FieldCritiqueError, field.TypeString, value)
	}
	if _u.mutation.CritiqueErrorCleared() {
		_spec.ClearField(novelsession.FieldCritiqueError, field.TypeString)
	}
	if value, ok := _u.mutation.CoverImagePath(); ok {
		_spec.SetField(novelsession.FieldCoverImagePath, field.TypeString, value)
	}
	if _u.mutation.CoverImagePathCleared() {
		_spec.ClearField(novelsession.FieldCoverImagePath, field.TypeString)
	}
	if value, ok := _u.mutation.PdfPath(); ok {
		_spec.SetField(novelsession.FieldPdfPath, field.TypeString, value)
	}
	if _u.mutation.PdfPathCleared() {
		_spec.ClearField(novelsession.FieldPdfPath, field.TypeString)
	}
	if value, ok := _u.mutation.RealCostEur(); ok {
		_spec.SetField(novelsession.FieldRealCostEur, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRealCostEur(); ok {
		_spec.AddField(novelsession.FieldRealCostEur, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EstimatedCostEur(); ok {
		_spec.SetField(novelsession.FieldEstimatedCostEur, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCostEur(); ok {
		_spec.AddField(novelsession.FieldEstimatedCostEur, field.TypeFloat64, value)
	}
	if _u.mutation.EstimatedCostEurCleared() {
		_spec.ClearField(novelsession.FieldEstimatedCostEur, field.TypeFloat64)
	}
	if value, ok := _u.mutation.WritingTimeMinutes(); ok {
		_spec.SetField(novelsession.FieldWritingTimeMinutes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWritingTimeMinutes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, novelsession.FieldWritingTimeMinutes, value)
		})
	}
	if _u.mutation.WritingTimeMinutesCleared() {
		_spec.ClearField(novelsession.FieldWritingTimeMinutes, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChapterTimings(); ok {
		_spec.SetField(novelsession.FieldChapterTimings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChapterTimings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, novelsession.FieldChapterTimings, value)
		})
	}
	if _u.mutation.ChapterTimingsCleared() {
		_spec.ClearField(novelsession.FieldChapterTimings, field.TypeJSON)
	}
	if value, ok := _u.mutation.WritingStartTime(); ok {
		_spec.SetField(novelsession.FieldWritingStartTime, field.TypeTime, value)
	}
	if _u.mutation.WritingStartTimeCleared() {
		_spec.ClearField(novelsession.FieldWritingStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.WritingEndTime(); ok {
		_spec.SetField(novelsession.FieldWritingEndTime, field.TypeTime, value)
	}
	if _u.mutation.WritingEndTimeCleared() {
		_spec.ClearField(novelsession.FieldWritingEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.ChapterStartTime(); ok {
		_spec.SetField(novelsession.FieldChapterStartTime, field.TypeTime, value)
	}
	if _u.mutation.ChapterStartTimeCleared() {
		_spec.ClearField(novelsession.FieldChapterStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(novelsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(novelsession.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(novelsession.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.ChaptersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   novelsession.ChaptersTable,
			Columns: []string{novelsession.ChaptersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChaptersIDs(); len(nodes) > 0 && !_u.mutation.ChaptersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   novelsession.ChaptersTable,
			Columns: []string{novelsession.ChaptersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChaptersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   novelsession.ChaptersTable,
			Columns: []string{novelsession.ChaptersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   novelsession.TasksTable,
			Columns: []string{novelsession.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generationtask.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   novelsession.TasksTable,
			Columns: []string{novelsession.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generationtask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   novelsession.TasksTable,
			Columns: []string{novelsession.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generationtask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SharesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   novelsession.SharesTable,
			Columns: []string{novelsession.SharesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bookshare.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSharesIDs(); len(nodes) > 0 && !_u.mutation.SharesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   novelsession.SharesTable,
			Columns: []string{novelsession.SharesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bookshare.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SharesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   novelsession.SharesTable,
			Columns: []string{novelsession.SharesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bookshare.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{novelsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NovelSessionUpdateOne is the builder for updating a single NovelSession entity.
type NovelSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NovelSessionMutation
}

// SetUserID sets the "user_id" field.
func (_u *NovelSessionUpdateOne) SetUserID(v string) *NovelSessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *NovelSessionUpdateOne) SetNillableUserID(v *string) *NovelSessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *NovelSessionUpdateOne) ClearUserID() *NovelSessionUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetLlmModel sets the "llm_model" field.
func (_u *NovelSessionUpdateOne) SetLlmModel(v string) *NovelSessionUpdateOne {
	_u.mutation.SetLlmModel(v)
	return _u
}

// SetNillableLlmModel sets the "llm_model" field if the given value is not nil.
func (_u *NovelSessionUpdateOne) SetNillableLlmModel(v *string) *NovelSessionUpdateOne {
	if v != nil {
		_u.SetLlmModel(*v)
	}
	return _u
}

// SetGenre sets the "genre" field.
func (_u *NovelSessionUpdateOne) SetGenre(v string) *NovelSessionUpdateOne {
	_u.mutation.SetGenre(v)
	return _u
}

// SetNillableGenre sets the "genre" field if the given value is not nil.
func (_u *NovelSessionUpdateOne) SetNillableGenre(v *string) *NovelSessionUpdateOne {
	if v != nil {
		_u.SetGenre(*v)
	}
	return _u
}

// ClearGenre clears the value of the "genre" field.
func (_u *NovelSessionUpdateOne) ClearGenre() *NovelSessionUpdateOne {
	_u.mutation.ClearGenre()
	return _u
}

// SetFormData sets the "form_data" field.
func (_u *NovelSessionUpdateOne) SetFormData(v map[string]interface{}) *NovelSessionUpdateOne {
	_u.mutation.SetFormData(v)
	return _u
}

// SetGeneratedQuestions sets the "generated_questions" field.
func (_u *NovelSessionUpdateOne) SetGeneratedQuestions(v []models.Question) *NovelSessionUpdateOne {
	_u.mutation.SetGeneratedQuestions(v)
	return _u
}

// AppendGeneratedQuestions appends value to the "generated_questions" field.
func (_u *NovelSessionUpdateOne) AppendGeneratedQuestions(v []models.Question) *NovelSessionUpdateOne {
	_u.mutation.AppendGeneratedQuestions(v)
	return _u
}

// ClearGeneratedQuestions clears the value of the "generated_questions" field.
func (_u *NovelSessionUpdateOne) ClearGeneratedQuestions() *NovelSessionUpdateOne {
	_u.mutation.ClearGeneratedQuestions()
	return _u
}

// SetQuestionAnswers sets the "question_answers" field.
func (_u *NovelSessionUpdateOne) SetQuestionAnswers(v map[string]string) *NovelSessionUpdateOne {
	_u.mutation.SetQuestionAnswers(v)
	return _u
}

// ClearQuestionAnswers clears the value of the "question_answers" field.
func (_u *NovelSessionUpdateOne) ClearQuestionAnswers() *NovelSessionUpdateOne {
	_u.mutation.ClearQuestionAnswers()
	return _u
}

// SetDraft sets the "draft" field.
func (_u *NovelSessionUpdateOne) SetDraft(v models.Draft) *NovelSessionUpdateOne {
	_u.mutation.SetDraft(v)
	return _u
}

// SetNillableDraft sets the "draft" field if the given value is not nil.
func (_u *NovelSessionUpdateOne) SetNillableDraft(v *models.Draft) *NovelSessionUpdateOne {
	if v != nil {
		_u.SetDraft(*v)
	}
	return _u
}

// ClearDraft clears the value of the "draft" field.
func (_u *NovelSessionUpdateOne) ClearDraft() *NovelSessionUpdateOne {
	_u.mutation.ClearDraft()
	return _u
}

// SetOutline sets the "outline" field.
func (_u *NovelSessionUpdateOne) SetOutline(v models.Outline) *NovelSessionUpdateOne {
	_u.mutation.SetOutline(v)
	return _u
}

// SetNillableOutline sets the "outline" field if the given value is not nil.
func (_u *NovelSessionUpdateOne) SetNillableOutline(v *models.Outline) *NovelSessionUpdateOne {
	if v != nil {
		_u.SetOutline(*v)
	}
	return _u
}

// ClearOutline clears the value of the "outline" field.
func (_u *NovelSessionUpdateOne) ClearOutline() *NovelSessionUpdateOne {
	_u.mutation.ClearOutline()
	return _u
}

// SetQuestionsProgress sets the "questions_progress" field.
func (_u *NovelSessionUpdateOne) SetQuestionsProgress(v models.PhaseProgress) *NovelSessionUpdateOne {
	_u.mutation.SetQuestionsProgress(v)
	return _u
}

// SetNillableQuestionsProgress sets the "questions_progress" field if the given value is not nil.
func (_u *NovelSessionUpdateOne) SetNillableQuestionsProgress(v *models.PhaseProgress) *NovelSessionUpdateOne {
	if v != nil {
		_u.SetQuestionsProgress(*v)
	}
	return _u
}

// ClearQuestionsProgress clears the value of the "questions_progress" field.
func (_u *NovelSessionUpdateOne) ClearQuestionsProgress() *NovelSessionUpdateOne {
	_u.mutation.ClearQuestionsProgress()
	return _u
}

// SetDraftProgress sets the "draft_progress" field.
func (_u *NovelSessionUpdateOne) SetDraftProgress(v models.PhaseProgress) *NovelSessionUpdateOne {
	_u.mutation.SetDraftProgress(v)
	return _u
}

// SetNillableDraftProgress sets the "draft_progress" field if the given value is not nil.
func (_u *NovelSessionUpdateOne) SetNillableDraftProgress(v *models.PhaseProgress) *NovelSessionUpdateOne {
	if v != nil {
		_u.SetDraftProgress(*v)
	}
	return _u
}

// ClearDraftProgress clears the value of the "draft_progress" field.
func (_u *NovelSessionUpdateOne) ClearDraftProgress() *NovelSessionUpdateOne {
	_u.mutation.ClearDraftProgress()
	return _u
}

// SetOutlineProgress sets the "outline_progress" field.
func (_u *NovelSessionUpdateOne) SetOutlineProgress(v models.PhaseProgress) *NovelSessionUpdateOne {
	_u.mutation.SetOutlineProgress(v)
	return _u
}

// SetNillableOutlineProgress sets the "outline_progress" field if the given value is not nil.
func (_u *NovelSessionUpdateOne) SetNillableOutlineProgress(v *models.PhaseProgress) *NovelSessionUpdateOne {
	if v != nil {
		_u.SetOutlineProgress(*v)
	}
	return _u
}

// ClearOutlineProgress clears the value of the "outline_progress" field.
func (_u *NovelSessionUpdateOne) ClearOutlineProgress() *NovelSessionUpdateOne {
	_u.mutation.ClearOutlineProgress()
	return _u
}

// SetWritingProgress sets the "writing_progress" field.
func (_u *NovelSessionUpdateOne) SetWritingProgress(v models.WritingProgress) *NovelSessionUpdateOne {
	_u.mutation.SetWritingProgress(v)
	return _u
}

// SetNillableWritingProgress sets the "writing_progress" field if the given value is not nil.
func (_u *NovelSessionUpdateOne) SetNillableWritingProgress(v *models.WritingProgress) *NovelSessionUpdateOne {
	if v != nil {
		_u.SetWritingProgress(*v)
	}
	return _u
}

// ClearWritingProgress clears the value of the "writing_progress" field.
func (_u *NovelSessionUpdateOne) ClearWritingProgress() *NovelSessionUpdateOne {
	_u.mutation.ClearWritingProgress()
	return _u
}

// SetTokenUsage sets the "token_usage" field.
func (_u *NovelSessionUpdateOne) SetTokenUsage(v models.TokenUsage) *NovelSessionUpdateOne {
	_u.mutation.SetTokenUsage(v)
	return _u
}

// SetNillableTokenUsage sets the "token_usage" field if the given value is not nil.
func (_u *NovelSessionUpdateOne) SetNillableTokenUsage(v *models.TokenUsage) *NovelSessionUpdateOne {
	if v != nil {
		_u.SetTokenUsage(*v)
	}
	return _u
}

// ClearTokenUsage clears the value of the "token_usage" field.
func (_u *NovelSessionUpdateOne) ClearTokenUsage() *NovelSessionUpdateOne {
	_u.mutation.ClearTokenUsage()
	return _u
}

// SetCritique sets the "critique" field.
func (_u *NovelSessionUpdateOne) SetCritique(v models.Critique) *NovelSessionUpdateOne {
	_u.mutation.SetCritique(v)
	return _u
}

// SetNillableCritique sets the "critique" field if the given value is not nil.
func (_u *NovelSessionUpdateOne) SetNillableCritique(v *models.Critique) *NovelSessionUpdateOne {
	if v != nil {
		_u.SetCritique(*v)
	}
	return _u
}

// ClearCritique clears the value of the "critique" field.
func (_u *NovelSessionUpdateOne) ClearCritique() *NovelSessionUpdateOne {
	_u.mutation.ClearCritique()
	return _u
}

// SetCritiqueStatus sets the "critique_status" field.
func (_u *NovelSessionUpdateOne) SetCritiqueStatus(v novelsession.CritiqueStatus) *NovelSessionUpdateOne {
	_u.mutation.SetCritiqueStatus(v)
	return _u
}

// SetNillableCritiqueStatus sets the "critique_status" field if the given value is not nil.
func (_u *NovelSessionUpdateOne) SetNillableCritiqueStatus(v *novelsession.CritiqueStatus) *NovelSessionUpdateOne {
	if v != nil {
		_u.SetCritiqueStatus(*v)
	}
	return _u
}

// SetCritiqueError sets the "critique_error" field.
func (_u *NovelSessionUpdateOne) SetCritiqueError(v string) *NovelSessionUpdateOne {
	_u.mutation.SetCritiqueError(v)
	return _u
}

// SetNillableCritiqueError sets the "critique_error" field if the given value is not nil.
func (_u *NovelSessionUpdateOne) SetNillableCritiqueError(v *string) *NovelSessionUpdateOne {
	if v != nil {
		_u.SetCritiqueError(*v)
	}
	return _u
}

// ClearCritiqueError clears the value of the "critique_error" field.
func (_u *NovelSessionUpdateOne) ClearCritiqueError() *NovelSessionUpdateOne {
	_u.mutation.ClearCritiqueError()
	return _u
}

// SetCoverImagePath sets the "cover_image_path" field.
func (_u *NovelSessionUpdateOne) SetCoverImagePath(v string) *NovelSessionUpdateOne {
	_u.mutation.SetCoverImagePath(v)
	return _u
}

// SetNillableCoverImagePath sets the "cover_image_path" field if the given value is not nil.
func (_u *NovelSessionUpdateOne) SetNillableCoverImagePath(v *string) *NovelSessionUpdateOne {
	if v != nil {
		_u.SetCoverImagePath(*v)
	}
	return _u
}

// ClearCoverImagePath clears the value of the "cover_image_path" field.
func (_u *NovelSessionUpdateOne) ClearCoverImagePath() *NovelSessionUpdateOne {
	_u.mutation.ClearCoverImagePath()
	return _u
}

// SetPdfPath sets the "pdf_path" field.
func (_u *NovelSessionUpdateOne) SetPdfPath(v string) *NovelSessionUpdateOne {
	_u.mutation.SetPdfPath(v)
	return _u
}

// SetNillablePdfPath sets the "pdf_path" field if the given value is not nil.
func (_u *NovelSessionUpdateOne) SetNillablePdfPath(v *string) *NovelSessionUpdateOne {
	if v != nil {
		_u.SetPdfPath(*v)
	}
	return _u
}

// ClearPdfPath clears the value of the "pdf_path" field.
func (_u *NovelSessionUpdateOne) ClearPdfPath() *NovelSessionUpdateOne {
	_u.mutation.ClearPdfPath()
	return _u
}

// SetRealCostEur sets the "real_cost_eur" field.
func (_u *NovelSessionUpdateOne) SetRealCostEur(v float64) *NovelSessionUpdateOne {
	_u.mutation.ResetRealCostEur()
	_u.mutation.SetRealCostEur(v)
	return _u
}

// SetNillableRealCostEur sets the "real_cost_eur" field if the given value is not nil.
func (_u *NovelSessionUpdateOne) SetNillableRealCostEur(v *float64) *NovelSessionUpdateOne {
	if v != nil {
		_u.SetRealCostEur(*v)
	}
	return _u
}

// AddRealCostEur adds value to the "real_cost_eur" field.
func (_u *NovelSessionUpdateOne) AddRealCostEur(v float64) *NovelSessionUpdateOne {
	_u.mutation.AddRealCostEur(v)
	return _u
}

// SetEstimatedCostEur sets the "estimated_cost_eur" field.
func (_u *NovelSessionUpdateOne) SetEstimatedCostEur(v float64) *NovelSessionUpdateOne {
	_u.mutation.ResetEstimatedCostEur()
	_u.mutation.SetEstimatedCostEur(v)
	return _u
}

// SetNillableEstimatedCostEur sets the "estimated_cost_eur" field if the given value is not nil.
func (_u *NovelSessionUpdateOne) SetNillableEstimatedCostEur(v *float64) *NovelSessionUpdateOne {
	if v != nil {
		_u.SetEstimatedCostEur(*v)
	}
	return _u
}

// AddEstimatedCostEur adds value to the "estimated_cost_eur" field.
func (_u *NovelSessionUpdateOne) AddEstimatedCostEur(v float64) *NovelSessionUpdateOne {
	_u.mutation.AddEstimatedCostEur(v)
	return _u
}

// ClearEstimatedCostEur clears the value of the "estimated_cost_eur" field.
func (_u *NovelSessionUpdateOne) ClearEstimatedCostEur() *NovelSessionUpdateOne {
	_u.mutation.ClearEstimatedCostEur()
	return _u
}

// SetWritingTimeMinutes sets the "writing_time_minutes" field.
func (_u *NovelSessionUpdateOne) SetWritingTimeMinutes(v []float64) *NovelSessionUpdateOne {
	_u.mutation.SetWritingTimeMinutes(v)
	return _u
}

// AppendWritingTimeMinutes appends value to the "writing_time_minutes" field.
func (_u *NovelSessionUpdateOne) AppendWritingTimeMinutes(v []float64) *NovelSessionUpdateOne {
	_u.mutation.AppendWritingTimeMinutes(v)
	return _u
}

// ClearWritingTimeMinutes clears the value of the "writing_time_minutes" field.
func (_u *NovelSessionUpdateOne) ClearWritingTimeMinutes() *NovelSessionUpdateOne {
	_u.mutation.ClearWritingTimeMinutes()
	return _u
}

// SetChapterTimings sets the "chapter_timings" field.
func (_u *NovelSessionUpdateOne) SetChapterTimings(v []float64) *NovelSessionUpdateOne {
	_u.mutation.SetChapterTimings(v)
	return _u
}

// AppendChapterTimings appends value to the "chapter_timings" field.
func (_u *NovelSessionUpdateOne) AppendChapterTimings(v []float64) *NovelSessionUpdateOne {
	_u.mutation.AppendChapterTimings(v)
	return _u
}

// ClearChapterTimings clears the value of the "chapter_timings" field.
func (_u *NovelSessionUpdateOne) ClearChapterTimings() *NovelSessionUpdateOne {
	_u.mutation.ClearChapterTimings()
	return _u
}

// SetWritingStartTime sets the "writing_start_time" field.
func (_u *NovelSessionUpdateOne) SetWritingStartTime(v time.Time) *NovelSessionUpdateOne {
	_u.mutation.SetWritingStartTime(v)
	return _u
}

// SetNillableWritingStartTime sets the "writing_start_time" field if the given value is not nil.
func (_u *NovelSessionUpdateOne) SetNillableWritingStartTime(v *time.Time) *NovelSessionUpdateOne {
	if v != nil {
		_u.SetWritingStartTime(*v)
	}
	return _u
}

// ClearWritingStartTime clears the value of the "writing_start_time" field.
func (_u *NovelSessionUpdateOne) ClearWritingStartTime() *NovelSessionUpdateOne {
	_u.mutation.ClearWritingStartTime()
	return _u
}

// SetWritingEndTime sets the "writing_end_time" field.
func (_u *NovelSessionUpdateOne) SetWritingEndTime(v time.Time) *NovelSessionUpdateOne {
	_u.mutation.SetWritingEndTime(v)
	return _u
}

// SetNillableWritingEndTime sets the "writing_end_time" field if the given value is not nil.
func (_u *NovelSessionUpdateOne) SetNillableWritingEndTime(v *time.Time) *NovelSessionUpdateOne {
	if v != nil {
		_u.SetWritingEndTime(*v)
	}
	return _u
}

// ClearWritingEndTime clears the value of the "writing_end_time" field.
func (_u *NovelSessionUpdateOne) ClearWritingEndTime() *NovelSessionUpdateOne {
	_u.mutation.ClearWritingEndTime()
	return _u
}

// SetChapterStartTime sets the "chapter_start_time" field.
func (_u *NovelSessionUpdateOne) SetChapterStartTime(v time.Time) *NovelSessionUpdateOne {
	_u.mutation.SetChapterStartTime(v)
	return _u
}

// SetNillableChapterStartTime sets the "chapter_start_time" field if the given value is not nil.
func (_u *NovelSessionUpdateOne) SetNillableChapterStartTime(v *time.Time) *NovelSessionUpdateOne {
	if v != nil {
		_u.SetChapterStartTime(*v)
	}
	return _u
}

// ClearChapterStartTime clears the value of the "chapter_start_time" field.
func (_u *NovelSessionUpdateOne) ClearChapterStartTime() *NovelSessionUpdateOne {
	_u.mutation.ClearChapterStartTime()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NovelSessionUpdateOne) SetUpdatedAt(v time.Time) *NovelSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *NovelSessionUpdateOne) SetDeletedAt(v time.Time) *NovelSessionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *NovelSessionUpdateOne) SetNillableDeletedAt(v *time.Time) *NovelSessionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *NovelSessionUpdateOne) ClearDeletedAt() *NovelSessionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddChapterIDs adds the "chapters" edge to the Chapter entity by IDs.
func (_u *NovelSessionUpdateOne) AddChapterIDs(ids ...string) *NovelSessionUpdateOne {
	_u.mutation.AddChapterIDs(ids...)
	return _u
}

// AddChapters adds the "chapters" edges to the Chapter entity.
func (_u *NovelSessionUpdateOne) AddChapters(v ...*Chapter) *NovelSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChapterIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the GenerationTask entity by IDs.
func (_u *NovelSessionUpdateOne) AddTaskIDs(ids ...string) *NovelSessionUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the GenerationTask entity.
func (_u *NovelSessionUpdateOne) AddTasks(v ...*GenerationTask) *NovelSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddShareIDs adds the "shares" edge to the BookShare entity by IDs.
func (_u *NovelSessionUpdateOne) AddShareIDs(ids ...string) *NovelSessionUpdateOne {
	_u.mutation.AddShareIDs(ids...)
	return _u
}

// AddShares adds the "shares" edges to the BookShare entity.
func (_u *NovelSessionUpdateOne) AddShares(v ...*BookShare) *NovelSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddShareIDs(ids...)
}

// Mutation returns the NovelSessionMutation object of the builder.
func (_u *NovelSessionUpdateOne) Mutation() *NovelSessionMutation {
	return _u.mutation
}

// ClearChapters clears all "chapters" edges to the Chapter entity.
func (_u *NovelSessionUpdateOne) ClearChapters() *NovelSessionUpdateOne {
	_u.mutation.ClearChapters()
	return _u
}

// RemoveChapterIDs removes the "chapters" edge to Chapter entities by IDs.
func (_u *NovelSessionUpdateOne) RemoveChapterIDs(ids ...string) *NovelSessionUpdateOne {
	_u.mutation.RemoveChapterIDs(ids...)
	return _u
}

// RemoveChapters removes "chapters" edges to Chapter entities.
func (_u *NovelSessionUpdateOne) RemoveChapters(v ...*Chapter) *NovelSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChapterIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the GenerationTask entity.
func (_u *NovelSessionUpdateOne) ClearTasks() *NovelSessionUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to GenerationTask entities by IDs.
func (_u *NovelSessionUpdateOne) RemoveTaskIDs(ids ...string) *NovelSessionUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to GenerationTask entities.
func (_u *NovelSessionUpdateOne) RemoveTasks(v ...*GenerationTask) *NovelSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearShares clears all "shares" edges to the BookShare entity.
func (_u *NovelSessionUpdateOne) ClearShares() *NovelSessionUpdateOne {
	_u.mutation.ClearShares()
	return _u
}

// RemoveShareIDs removes the "shares" edge to BookShare entities by IDs.
func (_u *NovelSessionUpdateOne) RemoveShareIDs(ids ...string) *NovelSessionUpdateOne {
	_u.mutation.RemoveShareIDs(ids...)
	return _u
}

// RemoveShares removes "shares" edges to BookShare entities.
func (_u *NovelSessionUpdateOne) RemoveShares(v ...*BookShare) *NovelSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveShareIDs(ids...)
}

// Where appends a list predicates to the NovelSessionUpdate builder.
func (_u *NovelSessionUpdateOne) Where(ps ...predicate.NovelSession) *NovelSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NovelSessionUpdateOne) Select(field string, fields ...string) *NovelSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NovelSession entity.
func (_u *NovelSessionUpdateOne) Save(ctx context.Context) (*NovelSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NovelSessionUpdateOne) SaveX(ctx context.Context) *NovelSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NovelSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NovelSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NovelSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := novelsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NovelSessionUpdateOne) check() error {
	if v, ok := _u.mutation.CritiqueStatus(); ok {
		if err := novelsession.CritiqueStatusValidator(v); err != nil {
			return &ValidationError{Name: "critique_status", err: fmt.Errorf(`ent: validator failed for field "NovelSession.critique_status": %w`, err)}
		}
	}
	return nil
}

func (_u *NovelSessionUpdateOne) sqlSave(ctx context.Context) (_node *NovelSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(novelsession.Table, novelsession.Columns, sqlgraph.NewFieldSpec(novelsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NovelSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, novelsession.FieldID)
		for _, f := range fields {
			if !novelsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != novelsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(novelsession.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(novelsession.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.LlmModel(); ok {
		_spec.SetField(novelsession.FieldLlmModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Genre(); ok {
		_spec.SetField(novelsession.FieldGenre, field.TypeString, value)
	}
	if _u.mutation.GenreCleared() {
		_spec.ClearField(novelsession.FieldGenre, field.TypeString)
	}
	if value, ok := _u.mutation.FormData(); ok {
		_spec.SetField(novelsession.FieldFormData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.GeneratedQuestions(); ok {
		_spec.SetField(novelsession.FieldGeneratedQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGeneratedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, novelsession.FieldGeneratedQuestions, value)
		})
	}
	if _u.mutation.GeneratedQuestionsCleared() {
		_spec.ClearField(novelsession.FieldGeneratedQuestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.QuestionAnswers(); ok {
		_spec.SetField(novelsession.FieldQuestionAnswers, field.TypeJSON, value)
	}
	if _u.mutation.QuestionAnswersCleared() {
		_spec.ClearField(novelsession.FieldQuestionAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Draft(); ok {
		_spec.SetField(novelsession.FieldDraft, field.TypeJSON, value)
	}
	if _u.mutation.DraftCleared() {
		_spec.ClearField(novelsession.FieldDraft, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outline(); ok {
		_spec.SetField(novelsession.FieldOutline, field.TypeJSON, value)
	}
	if _u.mutation.OutlineCleared() {
		_spec.ClearField(novelsession.FieldOutline, field.TypeJSON)
	}
	if value, ok := _u.mutation.QuestionsProgress(); ok {
		_spec.SetField(novelsession.FieldQuestionsProgress, field.TypeJSON, value)
	}
	if _u.mutation.QuestionsProgressCleared() {
		_spec.ClearField(novelsession.FieldQuestionsProgress, field.TypeJSON)
	}
	if value, ok := _u.mutation.DraftProgress(); ok {
		_spec.SetField(novelsession.FieldDraftProgress, field.TypeJSON, value)
	}
	if _u.mutation.DraftProgressCleared() {
		_spec.ClearField(novelsession.FieldDraftProgress, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutlineProgress(); ok {
		_spec.SetField(novelsession.FieldOutlineProgress, field.TypeJSON, value)
	}
	if _u.mutation.OutlineProgressCleared() {
		_spec.ClearField(novelsession.FieldOutlineProgress, field.TypeJSON)
	}
	if value, ok := _u.mutation.WritingProgress(); ok {
		_spec.SetField(novelsession.FieldWritingProgress, field.TypeJSON, value)
	}
	if _u.mutation.WritingProgressCleared() {
		_spec.ClearField(novelsession.FieldWritingProgress, field.TypeJSON)
	}
	if value, ok := _u.mutation.TokenUsage(); ok {
		_spec.SetField(novelsession.FieldTokenUsage, field.TypeJSON, value)
	}
	if _u.mutation.TokenUsageCleared() {
		_spec.ClearField(novelsession.FieldTokenUsage, field.TypeJSON)
	}
	if value, ok := _u.mutation.Critique(); ok {
		_spec.SetField(novelsession.FieldCritique, field.TypeJSON, value)
	}
	if _u.mutation.CritiqueCleared() {
		_spec.ClearField(novelsession.FieldCritique, field.TypeJSON)
	}
	if value, ok := _u.mutation.CritiqueStatus(); ok {
		_spec.SetField(novelsession.FieldCritiqueStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CritiqueError(); ok {
		_spec.SetField(novelsession.FieldCritiqueError, field.TypeString, value)
	}
	if _u.mutation.CritiqueErrorCleared() {
		_spec.ClearField(novelsession.FieldCritiqueError, field.TypeString)
	}
	if value, ok := _u.mutation.CoverImagePath(); ok {
		_spec.SetField(novelsession.FieldCoverImagePath, field.TypeString, value)
	}
	if _u.mutation.CoverImagePathCleared() {
		_spec.ClearField(novelsession.FieldCoverImagePath, field.TypeString)
	}
	if value, ok := _u.mutation.PdfPath(); ok {
		_spec.SetField(novelsession.FieldPdfPath, field.TypeString, value)
	}
	if _u.mutation.PdfPathCleared() {
		_spec.ClearField(novelsession.FieldPdfPath, field.TypeString)
	}
	if value, ok := _u.mutation.RealCostEur(); ok {
		_spec.SetField(novelsession.FieldRealCostEur, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRealCostEur(); ok {
		_spec.AddField(novelsession.FieldRealCostEur, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EstimatedCostEur(); ok {
		_spec.SetField(novelsession.FieldEstimatedCostEur, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCostEur(); ok {
		_spec.AddField(novelsession.FieldEstimatedCostEur, field.TypeFloat64, value)
	}
	if _u.mutation.EstimatedCostEurCleared() {
		_spec.ClearField(novelsession.FieldEstimatedCostEur, field.TypeFloat64)
	}
	if value, ok := _u.mutation.WritingTimeMinutes(); ok {
		_spec.SetField(novelsession.FieldWritingTimeMinutes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWritingTimeMinutes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, novelsession.FieldWritingTimeMinutes, value)
		})
	}
	if _u.mutation.WritingTimeMinutesCleared() {
		_spec.ClearField(novelsession.FieldWritingTimeMinutes, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChapterTimings(); ok {
		_spec.SetField(novelsession.FieldChapterTimings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChapterTimings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, novelsession.FieldChapterTimings, value)
		})
	}
	if _u.mutation.ChapterTimingsCleared() {
		_spec.ClearField(novelsession.FieldChapterTimings, field.TypeJSON)
	}
	if value, ok := _u.mutation.WritingStartTime(); ok {
		_spec.SetField(novelsession.FieldWritingStartTime, field.TypeTime, value)
	}
	if _u.mutation.WritingStartTimeCleared() {
		_spec.ClearField(novelsession.FieldWritingStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.WritingEndTime(); ok {
		_spec.SetField(novelsession.FieldWritingEndTime, field.TypeTime, value)
	}
	if _u.mutation.WritingEndTimeCleared() {
		_spec.ClearField(novelsession.FieldWritingEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.ChapterStartTime(); ok {
		_spec.SetField(novelsession.FieldChapterStartTime, field.TypeTime, value)
	}
	if _u.mutation.ChapterStartTimeCleared() {
		_spec.ClearField(novelsession.FieldChapterStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(novelsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(novelsession.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(novelsession.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.ChaptersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   novelsession.ChaptersTable,
			Columns: []string{novelsession.ChaptersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChaptersIDs(); len(nodes) > 0 && !_u.mutation.ChaptersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   novelsession.ChaptersTable,
			Columns: []string{novelsession.ChaptersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChaptersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   novelsession.ChaptersTable,
			Columns: []string{novelsession.ChaptersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   novelsession.TasksTable,
			Columns: []string{novelsession.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generationtask.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   novelsession.TasksTable,
			Columns: []string{novelsession.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generationtask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   novelsession.TasksTable,
			Columns: []string{novelsession.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generationtask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SharesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   novelsession.SharesTable,
			Columns: []string{novelsession.SharesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bookshare.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSharesIDs(); len(nodes) > 0 && !_u.mutation.SharesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   novelsession.SharesTable,
			Columns: []string{novelsession.SharesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bookshare.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SharesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   novelsession.SharesTable,
			Columns: []string{novelsession.SharesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bookshare.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &NovelSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{novelsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
