// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fabula-ai/fabula/ent/bookshare"
	"github.com/fabula-ai/fabula/ent/chapter"
	"github.com/fabula-ai/fabula/ent/generationtask"
	"github.com/fabula-ai/fabula/ent/novelsession"
	"github.com/fabula-ai/fabula/pkg/models"
)

// NovelSessionCreate is the builder for creating a NovelSession entity.
type NovelSessionCreate struct {
	config
	mutation *NovelSessionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *NovelSessionCreate) SetUserID(v string) *NovelSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *NovelSessionCreate) SetNillableUserID(v *string) *NovelSessionCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetLlmModel sets the "llm_model" field.
func (_c *NovelSessionCreate) SetLlmModel(v string) *NovelSessionCreate {
	_c.mutation.SetLlmModel(v)
	return _c
}

// SetGenre sets the "genre" field.
func (_c *NovelSessionCreate) SetGenre(v string) *NovelSessionCreate {
	_c.mutation.SetGenre(v)
	return _c
}

// SetNillableGenre sets the "genre" field if the given value is not nil.
func (_c *NovelSessionCreate) SetNillableGenre(v *string) *NovelSessionCreate {
	if v != nil {
		_c.SetGenre(*v)
	}
	return _c
}

// SetFormData sets the "form_data" field.
func (_c *NovelSessionCreate) SetFormData(v map[string]interface{}) *NovelSessionCreate {
	_c.mutation.SetFormData(v)
	return _c
}

// SetGeneratedQuestions sets the "generated_questions" field.
func (_c *NovelSessionCreate) SetGeneratedQuestions(v []models.Question) *NovelSessionCreate {
	_c.mutation.SetGeneratedQuestions(v)
	return _c
}

// SetQuestionAnswers sets the "question_answers" field.
func (_c *NovelSessionCreate) SetQuestionAnswers(v map[string]string) *NovelSessionCreate {
	_c.mutation.SetQuestionAnswers(v)
	return _c
}

// SetDraft sets the "draft" field.
func (_c *NovelSessionCreate) SetDraft(v models.Draft) *NovelSessionCreate {
	_c.mutation.SetDraft(v)
	return _c
}

// SetNillableDraft sets the "draft" field if the given value is not nil.
func (_c *NovelSessionCreate) SetNillableDraft(v *models.Draft) *NovelSessionCreate {
	if v != nil {
		_c.SetDraft(*v)
	}
	return _c
}

// SetOutline sets the "outline" field.
func (_c *NovelSessionCreate) SetOutline(v models.Outline) *NovelSessionCreate {
	_c.mutation.SetOutline(v)
	return _c
}

// SetNillableOutline sets the "outline" field if the given value is not nil.
func (_c *NovelSessionCreate) SetNillableOutline(v *models.Outline) *NovelSessionCreate {
	if v != nil {
		_c.SetOutline(*v)
	}
	return _c
}

// SetQuestionsProgress sets the "questions_progress" field.
func (_c *NovelSessionCreate) SetQuestionsProgress(v models.PhaseProgress) *NovelSessionCreate {
	_c.mutation.SetQuestionsProgress(v)
	return _c
}

// SetNillableQuestionsProgress sets the "questions_progress" field if the given value is not nil.
func (_c *NovelSessionCreate) SetNillableQuestionsProgress(v *models.PhaseProgress) *NovelSessionCreate {
	if v != nil {
		_c.SetQuestionsProgress(*v)
	}
	return _c
}

// SetDraftProgress sets the "draft_progress" field.
func (_c *NovelSessionCreate) SetDraftProgress(v models.PhaseProgress) *NovelSessionCreate {
	_c.mutation.SetDraftProgress(v)
	return _c
}

// SetNillableDraftProgress sets the "draft_progress" field if the given value is not nil.
func (_c *NovelSessionCreate) SetNillableDraftProgress(v *models.PhaseProgress) *NovelSessionCreate {
	if v != nil {
		_c.SetDraftProgress(*v)
	}
	return _c
}

// SetOutlineProgress sets the "outline_progress" field.
func (_c *NovelSessionCreate) SetOutlineProgress(v models.PhaseProgress) *NovelSessionCreate {
	_c.mutation.SetOutlineProgress(v)
	return _c
}

// SetNillableOutlineProgress sets the "outline_progress" field if the given value is not nil.
func (_c *NovelSessionCreate) SetNillableOutlineProgress(v *models.PhaseProgress) *NovelSessionCreate {
	if v != nil {
		_c.SetOutlineProgress(*v)
	}
	return _c
}

// SetWritingProgress sets the "writing_progress" field.
func (_c *NovelSessionCreate) SetWritingProgress(v models.WritingProgress) *NovelSessionCreate {
	_c.mutation.SetWritingProgress(v)
	return _c
}

// SetNillableWritingProgress sets the "writing_progress" field if the given value is not nil.
func (_c *NovelSessionCreate) SetNillableWritingProgress(v *models.WritingProgress) *NovelSessionCreate {
	if v != nil {
		_c.SetWritingProgress(*v)
	}
	return _c
}

// SetTokenUsage sets the "token_usage" field.
func (_c *NovelSessionCreate) SetTokenUsage(v models.TokenUsage) *NovelSessionCreate {
	_c.mutation.SetTokenUsage(v)
	return _c
}

// SetNillableTokenUsage sets the "token_usage" field if the given value is not nil.
func (_c *NovelSessionCreate) SetNillableTokenUsage(v *models.TokenUsage) *NovelSessionCreate {
	if v != nil {
		_c.SetTokenUsage(*v)
	}
	return _c
}

// SetCritique sets the "critique" field.
func (_c *NovelSessionCreate) SetCritique(v models.Critique) *NovelSessionCreate {
	_c.mutation.SetCritique(v)
	return _c
}

// SetNillableCritique sets the "critique" field if the given value is not nil.
func (_c *NovelSessionCreate) SetNillableCritique(v *models.Critique) *NovelSessionCreate {
	if v != nil {
		_c.SetCritique(*v)
	}
	return _c
}

// SetCritiqueStatus sets the "critique_status" field.
func (_c *NovelSessionCreate) SetCritiqueStatus(v novelsession.CritiqueStatus) *NovelSessionCreate {
	_c.mutation.SetCritiqueStatus(v)
	return _c
}

// SetNillableCritiqueStatus sets the "critique_status" field if the given value is not nil.
func (_c *NovelSessionCreate) SetNillableCritiqueStatus(v *novelsession.CritiqueStatus) *NovelSessionCreate {
	if v != nil {
		_c.SetCritiqueStatus(*v)
	}
	return _c
}

// SetCritiqueError sets the "critique_error" field.
func (_c *NovelSessionCreate) SetCritiqueError(v string) *NovelSessionCreate {
	_c.mutation.SetCritiqueError(v)
	return _c
}

// SetNillableCritiqueError sets the "critique_error" field if the given value is not nil.
func (_c *NovelSessionCreate) SetNillableCritiqueError(v *string) *NovelSessionCreate {
	if v != nil {
		_c.SetCritiqueError(*v)
	}
	return _c
}

// SetCoverImagePath sets the "cover_image_path" field.
func (_c *NovelSessionCreate) SetCoverImagePath(v string) *NovelSessionCreate {
	_c.mutation.SetCoverImagePath(v)
	return _c
}

// SetNillableCoverImagePath sets the "cover_image_path" field if the given value is not nil.
func (_c *NovelSessionCreate) SetNillableCoverImagePath(v *string) *NovelSessionCreate {
	if v != nil {
		_c.SetCoverImagePath(*v)
	}
	return _c
}

// SetPdfPath sets the "pdf_path" field.
func (_c *NovelSessionCreate) SetPdfPath(v string) *NovelSessionCreate {
	_c.mutation.SetPdfPath(v)
	return _c
}

// SetNillablePdfPath sets the "pdf_path" field if the given value is not nil.
func (_c *NovelSessionCreate) SetNillablePdfPath(v *string) *NovelSessionCreate {
	if v != nil {
		_c.SetPdfPath(*v)
	}
	return _c
}

// SetRealCostEur sets the "real_cost_eur" field.
func (_c *NovelSessionCreate) SetRealCostEur(v float64) *NovelSessionCreate {
	_c.mutation.SetRealCostEur(v)
	return _c
}

// SetNillableRealCostEur sets the "real_cost_eur" field if the given value is not nil.
func (_c *NovelSessionCreate) SetNillableRealCostEur(v *float64) *NovelSessionCreate {
	if v != nil {
		_c.SetRealCostEur(*v)
	}
	return _c
}

// SetEstimatedCostEur sets the "estimated_cost_eur" field.
func (_c *NovelSessionCreate) SetEstimatedCostEur(v float64) *NovelSessionCreate {
	_c.mutation.SetEstimatedCostEur(v)
	return _c
}

// SetNillableEstimatedCostEur sets the "estimated_cost_eur" field if the given value is not nil.
func (_c *NovelSessionCreate) SetNillableEstimatedCostEur(v *float64) *NovelSessionCreate {
	if v != nil {
		_c.SetEstimatedCostEur(*v)
	}
	return _c
}

// SetWritingTimeMinutes sets the "writing_time_minutes" field.
func (_c *NovelSessionCreate) SetWritingTimeMinutes(v []float64) *NovelSessionCreate {
	_c.mutation.SetWritingTimeMinutes(v)
	return _c
}

// SetChapterTimings sets the "chapter_timings" field.
func (_c *NovelSessionCreate) SetChapterTimings(v []float64) *NovelSessionCreate {
	_c.mutation.SetChapterTimings(v)
	return _c
}

// SetWritingStartTime sets the "writing_start_time" field.
func (_c *NovelSessionCreate) SetWritingStartTime(v time.Time) *NovelSessionCreate {
	_c.mutation.SetWritingStartTime(v)
	return _c
}

// SetNillableWritingStartTime sets the "writing_start_time" field if the given value is not nil.
func (_c *NovelSessionCreate) SetNillableWritingStartTime(v *time.Time) *NovelSessionCreate {
	if v != nil {
		_c.SetWritingStartTime(*v)
	}
	return _c
}

// SetWritingEndTime sets the "writing_end_time" field.
func (_c *NovelSessionCreate) SetWritingEndTime(v time.Time) *NovelSessionCreate {
	_c.mutation.SetWritingEndTime(v)
	return _c
}

// SetNillableWritingEndTime sets the "writing_end_time" field if the given value is not nil.
func (_c *NovelSessionCreate) SetNillableWritingEndTime(v *time.Time) *NovelSessionCreate {
	if v != nil {
		_c.SetWritingEndTime(*v)
	}
	return _c
}

// SetChapterStartTime sets the "chapter_start_time" field.
func (_c *NovelSessionCreate) SetChapterStartTime(v time.Time) *NovelSessionCreate {
	_c.mutation.SetChapterStartTime(v)
	return _c
}

// SetNillableChapterStartTime sets the "chapter_start_time" field if the given value is not nil.
func (_c *NovelSessionCreate) SetNillableChapterStartTime(v *time.Time) *NovelSessionCreate {
	if v != nil {
		_c.SetChapterStartTime(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *NovelSessionCreate) SetCreatedAt(v time.Time) *NovelSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NovelSessionCreate) SetNillableCreatedAt(v *time.Time) *NovelSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *NovelSessionCreate) SetUpdatedAt(v time.Time) *NovelSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *NovelSessionCreate) SetNillableUpdatedAt(v *time.Time) *NovelSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *NovelSessionCreate) SetDeletedAt(v time.Time) *NovelSessionCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *NovelSessionCreate) SetNillableDeletedAt(v *time.Time) *NovelSessionCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NovelSessionCreate) SetID(v string) *NovelSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddChapterIDs adds the "chapters" edge to the Chapter entity by IDs.
func (_c *NovelSessionCreate) AddChapterIDs(ids ...string) *NovelSessionCreate {
	_c.mutation.AddChapterIDs(ids...)
	return _c
}

// AddChapters adds the "chapters" edges to the Chapter entity.
func (_c *NovelSessionCreate) AddChapters(v ...*Chapter) *NovelSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChapterIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the GenerationTask entity by IDs.
func (_c *NovelSessionCreate) AddTaskIDs(ids ...string) *NovelSessionCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the GenerationTask entity.
func (_c *NovelSessionCreate) AddTasks(v ...*GenerationTask) *NovelSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// AddShareIDs adds the "shares" edge to the BookShare entity by IDs.
func (_c *NovelSessionCreate) AddShareIDs(ids ...string) *NovelSessionCreate {
	_c.mutation.AddShareIDs(ids...)
	return _c
}

// AddShares adds the "shares" edges to the BookShare entity.
func (_c *NovelSessionCreate) AddShares(v ...*BookShare) *NovelSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddShareIDs(ids...)
}

// Mutation returns the NovelSessionMutation object of the builder.
func (_c *NovelSessionCreate) Mutation() *NovelSessionMutation {
	return _c.mutation
}

// Save creates the NovelSession in the database.
func (_c *NovelSessionCreate) Save(ctx context.Context) (*NovelSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NovelSessionCreate) SaveX(ctx context.Context) *NovelSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NovelSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NovelSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NovelSessionCreate) defaults() {
	if _, ok := _c.mutation.CritiqueStatus(); !ok {
		v := novelsession.DefaultCritiqueStatus
		_c.mutation.SetCritiqueStatus(v)
	}
	if _, ok := _c.mutation.RealCostEur(); !ok {
		v := novelsession.DefaultRealCostEur
		_c.mutation.SetRealCostEur(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := novelsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := novelsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NovelSessionCreate) check() error {
	if _, ok := _c.mutation.LlmModel(); !ok {
		return &ValidationError{Name: "llm_model", err: errors.New(`ent: missing required field "NovelSession.llm_model"`)}
	}
	if _, ok := _c.mutation.FormData(); !ok {
		return &ValidationError{Name: "form_data", err: errors.New(`ent: missing required field "NovelSession.form_data"`)}
	}
	if _, ok := _c.mutation.CritiqueStatus(); !ok {
		return &ValidationError{Name: "critique_status", err: errors.New(`ent: missing required field "NovelSession.critique_status"`)}
	}
	if v, ok := _c.mutation.CritiqueStatus(); ok {
		if err := novelsession.CritiqueStatusValidator(v); err != nil {
			return &ValidationError{Name: "critique_status", err: fmt.Errorf(`ent: validator failed for field "NovelSession.critique_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RealCostEur(); !ok {
		return &ValidationError{Name: "real_cost_eur", err: errors.New(`ent: missing required field "NovelSession.real_cost_eur"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "NovelSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "NovelSession.updated_at"`)}
	}
	return nil
}

func (_c *NovelSessionCreate) sqlSave(ctx context.Context) (*NovelSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected NovelSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NovelSessionCreate) createSpec() (*NovelSession, *sqlgraph.CreateSpec) {
	var (
		_node = &NovelSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(novelsession.Table, sqlgraph.NewFieldSpec(novelsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(novelsession.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.LlmModel(); ok {
		_spec.SetField(novelsession.FieldLlmModel, field.TypeString, value)
		_node.LlmModel = value
	}
	if value, ok := _c.mutation.Genre(); ok {
		_spec.SetField(novelsession.FieldGenre, field.TypeString, value)
		_node.Genre = value
	}
	if value, ok := _c.mutation.FormData(); ok {
		_spec.SetField(novelsession.FieldFormData, field.TypeJSON, value)
		_node.FormData = value
	}
	if value, ok := _c.mutation.GeneratedQuestions(); ok {
		_spec.SetField(novelsession.FieldGeneratedQuestions, field.TypeJSON, value)
		_node.GeneratedQuestions = value
	}
	if value, ok := _c.mutation.QuestionAnswers(); ok {
		_spec.SetField(novelsession.FieldQuestionAnswers, field.TypeJSON, value)
		_node.QuestionAnswers = value
	}
	if value, ok := _c.mutation.Draft(); ok {
		_spec.SetField(novelsession.FieldDraft, field.TypeJSON, value)
		_node.Draft = value
	}
	if value, ok := _c.mutation.Outline(); ok {
		_spec.SetField(novelsession.FieldOutline, field.TypeJSON, value)
		_node.Outline = value
	}
	if value, ok := _c.mutation.QuestionsProgress(); ok {
		_spec.SetField(novelsession.FieldQuestionsProgress, field.TypeJSON, value)
		_node.QuestionsProgress = value
	}
	if value, ok := _c.mutation.DraftProgress(); ok {
		_spec.SetField(novelsession.FieldDraftProgress, field.TypeJSON, value)
		_node.DraftProgress = value
	}
	if value, ok := _c.mutation.OutlineProgress(); ok {
		_spec.SetField(novelsession.FieldOutlineProgress, field.TypeJSON, value)
		_node.OutlineProgress = value
	}
	if value, ok := _c.mutation.WritingProgress(); ok {
		_spec.SetField(novelsession.FieldWritingProgress, field.TypeJSON, value)
		_node.WritingProgress = value
	}
	if value, ok := _c.mutation.TokenUsage(); ok {
		_spec.SetField(novelsession.FieldTokenUsage, field.TypeJSON, value)
		_node.TokenUsage = value
	}
	if value, ok := _c.mutation.Critique(); ok {
		_spec.SetField(novelsession.FieldCritique, field.TypeJSON, value)
		_node.Critique = value
	}
	if value, ok := _c.mutation.CritiqueStatus(); ok {
		_spec.SetField(novelsession.FieldCritiqueStatus, field.TypeEnum, value)
		_node.CritiqueStatus = value
	}
	if value, ok := _c.mutation.CritiqueError(); ok {
		_spec.SetField(novelsession.FieldCritiqueError, field.TypeString, value)
		_node.CritiqueError = &value
	}
	if value, ok := _c.mutation.CoverImagePath(); ok {
		_spec.SetField(novelsession.FieldCoverImagePath, field.TypeString, value)
		_node.CoverImagePath = value
	}
	if value, ok := _c.mutation.PdfPath(); ok {
		_spec.SetField(novelsession.FieldPdfPath, field.TypeString, value)
		_node.PdfPath = value
	}
	if value, ok := _c.mutation.RealCostEur(); ok {
		_spec.SetField(novelsession.FieldRealCostEur, field.TypeFloat64, value)
		_node.RealCostEur = value
	}
	if value, ok := _c.mutation.EstimatedCostEur(); ok {
		_spec.SetField(novelsession.FieldEstimatedCostEur, field.TypeFloat64, value)
		_node.EstimatedCostEur = &value
	}
	if value, ok := _c.mutation.WritingTimeMinutes(); ok {
		_spec.SetField(novelsession.FieldWritingTimeMinutes, field.TypeJSON, value)
		_node.WritingTimeMinutes = value
	}
	if value, ok := _c.mutation.ChapterTimings(); ok {
		_spec.SetField(novelsession.FieldChapterTimings, field.TypeJSON, value)
		_node.ChapterTimings = value
	}
	if value, ok := _c.mutation.WritingStartTime(); ok {
		_spec.SetField(novelsession.FieldWritingStartTime, field.TypeTime, value)
		_node.WritingStartTime = &value
	}
	if value, ok := _c.mutation.WritingEndTime(); ok {
		_spec.SetField(novelsession.FieldWritingEndTime, field.TypeTime, value)
		_node.WritingEndTime = &value
	}
	if value, ok := _c.mutation.ChapterStartTime(); ok {
		_spec.SetField(novelsession.FieldChapterStartTime, field.TypeTime, value)
		_node.ChapterStartTime = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(novelsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(novelsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(novelsession.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.ChaptersIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SharesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// NovelSessionCreateBulk is the builder for creating many NovelSession entities in bulk.
type NovelSessionCreateBulk struct {
	config
	err      error
	builders []*NovelSessionCreate
}

// Save creates the NovelSession entities in the database.
func (_c *NovelSessionCreateBulk) Save(ctx context.Context) ([]*NovelSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NovelSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NovelSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *NovelSessionCreateBulk) SaveX(ctx context.Context) []*NovelSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NovelSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NovelSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
