// Code generated by ent, DO NOT EDIT.

package novelsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fabula-ai/fabula/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldUserID, v))
}

// LlmModel applies equality check predicate on the "llm_model" field. It's identical to LlmModelEQ.
func LlmModel(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldLlmModel, v))
}

// Genre applies equality check predicate on the "genre" field. It's identical to GenreEQ.
func Genre(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldGenre, v))
}

// CritiqueError applies equality check predicate on the "critique_error" field. It's identical to CritiqueErrorEQ.
func CritiqueError(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldCritiqueError, v))
}

// CoverImagePath applies equality check predicate on the "cover_image_path" field. It's identical to CoverImagePathEQ.
func CoverImagePath(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldCoverImagePath, v))
}

// PdfPath applies equality check predicate on the "pdf_path" field. It's identical to PdfPathEQ.
func PdfPath(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldPdfPath, v))
}

// RealCostEur applies equality check predicate on the "real_cost_eur" field. It's identical to RealCostEurEQ.
func RealCostEur(v float64) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldRealCostEur, v))
}

// EstimatedCostEur applies equality check predicate on the "estimated_cost_eur" field. It's identical to EstimatedCostEurEQ.
func EstimatedCostEur(v float64) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldEstimatedCostEur, v))
}

// WritingStartTime applies equality check predicate on the "writing_start_time" field. It's identical to WritingStartTimeEQ.
func WritingStartTime(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldWritingStartTime, v))
}

// WritingEndTime applies equality check predicate on the "writing_end_time" field. It's identical to WritingEndTimeEQ.
func WritingEndTime(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldWritingEndTime, v))
}

// ChapterStartTime applies equality check predicate on the "chapter_start_time" field. It's identical to ChapterStartTimeEQ.
func ChapterStartTime(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldChapterStartTime, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldDeletedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldContainsFold(FieldUserID, v))
}

// LlmModelEQ applies the EQ predicate on the "llm_model" field.
func LlmModelEQ(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldLlmModel, v))
}

// LlmModelNEQ applies the NEQ predicate on the "llm_model" field.
func LlmModelNEQ(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNEQ(FieldLlmModel, v))
}

// LlmModelIn applies the In predicate on the "llm_model" field.
func LlmModelIn(vs ...string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIn(FieldLlmModel, vs...))
}

// LlmModelNotIn applies the NotIn predicate on the "llm_model" field.
func LlmModelNotIn(vs ...string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotIn(FieldLlmModel, vs...))
}

// LlmModelGT applies the GT predicate on the "llm_model" field.
func LlmModelGT(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGT(FieldLlmModel, v))
}

// LlmModelGTE applies the GTE predicate on the "llm_model" field.
func LlmModelGTE(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGTE(FieldLlmModel, v))
}

// LlmModelLT applies the LT predicate on the "llm_model" field.
func LlmModelLT(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLT(FieldLlmModel, v))
}

// LlmModelLTE applies the LTE predicate on the "llm_model" field.
func LlmModelLTE(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLTE(FieldLlmModel, v))
}

// LlmModelContains applies the Contains predicate on the "llm_model" field.
func LlmModelContains(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldContains(FieldLlmModel, v))
}

// LlmModelHasPrefix applies the HasPrefix predicate on the "llm_model" field.
func LlmModelHasPrefix(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldHasPrefix(FieldLlmModel, v))
}

// LlmModelHasSuffix applies the HasSuffix predicate on the "llm_model" field.
func LlmModelHasSuffix(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldHasSuffix(FieldLlmModel, v))
}

// LlmModelEqualFold applies the EqualFold predicate on the "llm_model" field.
func LlmModelEqualFold(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEqualFold(FieldLlmModel, v))
}

// LlmModelContainsFold applies the ContainsFold predicate on the "llm_model" field.
func LlmModelContainsFold(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldContainsFold(FieldLlmModel, v))
}

// GenreEQ applies the EQ predicate on the "genre" field.
func GenreEQ(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldGenre, v))
}

// GenreNEQ applies the NEQ predicate on the "genre" field.
func GenreNEQ(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNEQ(FieldGenre, v))
}

// GenreIn applies the In predicate on the "genre" field.
func GenreIn(vs ...string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIn(FieldGenre, vs...))
}

// GenreNotIn applies the NotIn predicate on the "genre" field.
func GenreNotIn(vs ...string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotIn(FieldGenre, vs...))
}

// GenreGT applies the GT predicate on the "genre" field.
func GenreGT(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGT(FieldGenre, v))
}

// GenreGTE applies the GTE predicate on the "genre" field.
func GenreGTE(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGTE(FieldGenre, v))
}

// GenreLT applies the LT predicate on the "genre" field.
func GenreLT(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLT(FieldGenre, v))
}

// GenreLTE applies the LTE predicate on the "genre" field.
func GenreLTE(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLTE(FieldGenre, v))
}

// GenreContains applies the Contains predicate on the "genre" field.
func GenreContains(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldContains(FieldGenre, v))
}

// GenreHasPrefix applies the HasPrefix predicate on the "genre" field.
func GenreHasPrefix(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldHasPrefix(FieldGenre, v))
}

// GenreHasSuffix applies the HasSuffix predicate on the "genre" field.
func GenreHasSuffix(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldHasSuffix(FieldGenre, v))
}

// GenreIsNil applies the IsNil predicate on the "genre" field.
func GenreIsNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIsNull(FieldGenre))
}

// GenreNotNil applies the NotNil predicate on the "genre" field.
func GenreNotNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotNull(FieldGenre))
}

// GenreEqualFold applies the EqualFold predicate on the "genre" field.
func GenreEqualFold(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEqualFold(FieldGenre, v))
}

// GenreContainsFold applies the ContainsFold predicate on the "genre" field.
func GenreContainsFold(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldContainsFold(FieldGenre, v))
}

// GeneratedQuestionsIsNil applies the IsNil predicate on the "generated_questions" field.
func GeneratedQuestionsIsNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIsNull(FieldGeneratedQuestions))
}

// GeneratedQuestionsNotNil applies the NotNil predicate on the "generated_questions" field.
func GeneratedQuestionsNotNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotNull(FieldGeneratedQuestions))
}

// QuestionAnswersIsNil applies the IsNil predicate on the "question_answers" field.
func QuestionAnswersIsNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIsNull(FieldQuestionAnswers))
}

// QuestionAnswersNotNil applies the NotNil predicate on the "question_answers" field.
func QuestionAnswersNotNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotNull(FieldQuestionAnswers))
}

// DraftIsNil applies the IsNil predicate on the "draft" field.
func DraftIsNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIsNull(FieldDraft))
}

// DraftNotNil applies the NotNil predicate on the "draft" field.
func DraftNotNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotNull(FieldDraft))
}

// OutlineIsNil applies the IsNil predicate on the "outline" field.
func OutlineIsNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIsNull(FieldOutline))
}

// OutlineNotNil applies the NotNil predicate on the "outline" field.
func OutlineNotNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotNull(FieldOutline))
}

// QuestionsProgressIsNil applies the IsNil predicate on the "questions_progress" field.
func QuestionsProgressIsNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIsNull(FieldQuestionsProgress))
}

// QuestionsProgressNotNil applies the NotNil predicate on the "questions_progress" field.
func QuestionsProgressNotNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotNull(FieldQuestionsProgress))
}

// DraftProgressIsNil applies the IsNil predicate on the "draft_progress" field.
func DraftProgressIsNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIsNull(FieldDraftProgress))
}

// DraftProgressNotNil applies the NotNil predicate on the "draft_progress" field.
func DraftProgressNotNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotNull(FieldDraftProgress))
}

// OutlineProgressIsNil applies the IsNil predicate on the "outline_progress" field.
func OutlineProgressIsNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIsNull(FieldOutlineProgress))
}

// OutlineProgressNotNil applies the NotNil predicate on the "outline_progress" field.
func OutlineProgressNotNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotNull(FieldOutlineProgress))
}

// WritingProgressIsNil applies the IsNil predicate on the "writing_progress" field.
func WritingProgressIsNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIsNull(FieldWritingProgress))
}

// WritingProgressNotNil applies the NotNil predicate on the "writing_progress" field.
func WritingProgressNotNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotNull(FieldWritingProgress))
}

// TokenUsageIsNil applies the IsNil predicate on the "token_usage" field.
func TokenUsageIsNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIsNull(FieldTokenUsage))
}

// TokenUsageNotNil applies the NotNil predicate on the "token_usage" field.
func TokenUsageNotNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotNull(FieldTokenUsage))
}

// CritiqueIsNil applies the IsNil predicate on the "critique" field.
func CritiqueIsNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIsNull(FieldCritique))
}

// CritiqueNotNil applies the NotNil predicate on the "critique" field.
func CritiqueNotNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotNull(FieldCritique))
}

// CritiqueStatusEQ applies the EQ predicate on the "critique_status" field.
func CritiqueStatusEQ(v CritiqueStatus) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldCritiqueStatus, v))
}

// CritiqueStatusNEQ applies the NEQ predicate on the "critique_status" field.
func CritiqueStatusNEQ(v CritiqueStatus) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNEQ(FieldCritiqueStatus, v))
}

// CritiqueStatusIn applies the In predicate on the "critique_status" field.
func CritiqueStatusIn(vs ...CritiqueStatus) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIn(FieldCritiqueStatus, vs...))
}

// CritiqueStatusNotIn applies the NotIn predicate on the "critique_status" field.
func CritiqueStatusNotIn(vs ...CritiqueStatus) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotIn(FieldCritiqueStatus, vs...))
}

// CritiqueErrorEQ applies the EQ predicate on the "critique_error" field.
func CritiqueErrorEQ(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldCritiqueError, v))
}

// CritiqueErrorNEQ applies the NEQ predicate on the "critique_error" field.
func CritiqueErrorNEQ(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNEQ(FieldCritiqueError, v))
}

// CritiqueErrorIn applies the In predicate on the "critique_error" field.
func CritiqueErrorIn(vs ...string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIn(FieldCritiqueError, vs...))
}

// CritiqueErrorNotIn applies the NotIn predicate on the "critique_error" field.
func CritiqueErrorNotIn(vs ...string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotIn(FieldCritiqueError, vs...))
}

// CritiqueErrorGT applies the GT predicate on the "critique_error" field.
func CritiqueErrorGT(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGT(FieldCritiqueError, v))
}

// CritiqueErrorGTE applies the GTE predicate on the "critique_error" field.
func CritiqueErrorGTE(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGTE(FieldCritiqueError, v))
}

// CritiqueErrorLT applies the LT predicate on the "critique_error" field.
func CritiqueErrorLT(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLT(FieldCritiqueError, v))
}

// CritiqueErrorLTE applies the LTE predicate on the "critique_error" field.
func CritiqueErrorLTE(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLTE(FieldCritiqueError, v))
}

// CritiqueErrorContains applies the Contains predicate on the "critique_error" field.
func CritiqueErrorContains(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldContains(FieldCritiqueError, v))
}

// CritiqueErrorHasPrefix applies the HasPrefix predicate on the "critique_error" field.
func CritiqueErrorHasPrefix(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldHasPrefix(FieldCritiqueError, v))
}

// CritiqueErrorHasSuffix applies the HasSuffix predicate on the "critique_error" field.
func CritiqueErrorHasSuffix(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldHasSuffix(FieldCritiqueError, v))
}

// CritiqueErrorIsNil applies the IsNil predicate on the "critique_error" field.
func CritiqueErrorIsNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIsNull(FieldCritiqueError))
}

// CritiqueErrorNotNil applies the NotNil predicate on the "critique_error" field.
func CritiqueErrorNotNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotNull(FieldCritiqueError))
}

// CritiqueErrorEqualFold applies the EqualFold predicate on the "critique_error" field.
func CritiqueErrorEqualFold(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEqualFold(FieldCritiqueError, v))
}

// CritiqueErrorContainsFold applies the ContainsFold predicate on the "critique_error" field.
func CritiqueErrorContainsFold(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldContainsFold(FieldCritiqueError, v))
}

// CoverImagePathEQ applies the EQ predicate on the "cover_image_path" field.
func CoverImagePathEQ(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldCoverImagePath, v))
}

// CoverImagePathNEQ applies the NEQ predicate on the "cover_image_path" field.
func CoverImagePathNEQ(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNEQ(FieldCoverImagePath, v))
}

// CoverImagePathIn applies the In predicate on the "cover_image_path" field.
func CoverImagePathIn(vs ...string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIn(FieldCoverImagePath, vs...))
}

// CoverImagePathNotIn applies the NotIn predicate on the "cover_image_path" field.
func CoverImagePathNotIn(vs ...string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotIn(FieldCoverImagePath, vs...))
}

// CoverImagePathGT applies the GT predicate on the "cover_image_path" field.
func CoverImagePathGT(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGT(FieldCoverImagePath, v))
}

// CoverImagePathGTE applies the GTE predicate on the "cover_image_path" field.
func CoverImagePathGTE(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGTE(FieldCoverImagePath, v))
}

// CoverImagePathLT applies the LT predicate on the "cover_image_path" field.
func CoverImagePathLT(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLT(FieldCoverImagePath, v))
}

// CoverImagePathLTE applies the LTE predicate on the "cover_image_path" field.
func CoverImagePathLTE(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLTE(FieldCoverImagePath, v))
}

// CoverImagePathContains applies the Contains predicate on the "cover_image_path" field.
func CoverImagePathContains(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldContains(FieldCoverImagePath, v))
}

// CoverImagePathHasPrefix applies the HasPrefix predicate on the "cover_image_path" field.
func CoverImagePathHasPrefix(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldHasPrefix(FieldCoverImagePath, v))
}

// CoverImagePathHasSuffix applies the HasSuffix predicate on the "cover_image_path" field.
func CoverImagePathHasSuffix(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldHasSuffix(FieldCoverImagePath, v))
}

// CoverImagePathIsNil applies the IsNil predicate on the "cover_image_path" field.
func CoverImagePathIsNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIsNull(FieldCoverImagePath))
}

// CoverImagePathNotNil applies the NotNil predicate on the "cover_image_path" field.
func CoverImagePathNotNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotNull(FieldCoverImagePath))
}

// CoverImagePathEqualFold applies the EqualFold predicate on the "cover_image_path" field.
func CoverImagePathEqualFold(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEqualFold(FieldCoverImagePath, v))
}

// CoverImagePathContainsFold applies the ContainsFold predicate on the "cover_image_path" field.
func CoverImagePathContainsFold(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldContainsFold(FieldCoverImagePath, v))
}

// PdfPathEQ applies the EQ predicate on the "pdf_path" field.
func PdfPathEQ(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldPdfPath, v))
}

// PdfPathNEQ applies the NEQ predicate on the "pdf_path" field.
func PdfPathNEQ(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNEQ(FieldPdfPath, v))
}

// PdfPathIn applies the In predicate on the "pdf_path" field.
func PdfPathIn(vs ...string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIn(FieldPdfPath, vs...))
}

// PdfPathNotIn applies the NotIn predicate on the "pdf_path" field.
func PdfPathNotIn(vs ...string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotIn(FieldPdfPath, vs...))
}

// PdfPathGT applies the GT predicate on the "pdf_path" field.
func PdfPathGT(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGT(FieldPdfPath, v))
}

// PdfPathGTE applies the GTE predicate on the "pdf_path" field.
func PdfPathGTE(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGTE(FieldPdfPath, v))
}

// PdfPathLT applies the LT predicate on the "pdf_path" field.
func PdfPathLT(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLT(FieldPdfPath, v))
}

// PdfPathLTE applies the LTE predicate on the "pdf_path" field.
func PdfPathLTE(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLTE(FieldPdfPath, v))
}

// PdfPathContains applies the Contains predicate on the "pdf_path" field.
func PdfPathContains(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldContains(FieldPdfPath, v))
}

// PdfPathHasPrefix applies the HasPrefix predicate on the "pdf_path" field.
func PdfPathHasPrefix(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldHasPrefix(FieldPdfPath, v))
}

// PdfPathHasSuffix applies the HasSuffix predicate on the "pdf_path" field.
func PdfPathHasSuffix(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldHasSuffix(FieldPdfPath, v))
}

// PdfPathIsNil applies the IsNil predicate on the "pdf_path" field.
func PdfPathIsNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIsNull(FieldPdfPath))
}

// PdfPathNotNil applies the NotNil predicate on the "pdf_path" field.
func PdfPathNotNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotNull(FieldPdfPath))
}

// PdfPathEqualFold applies the EqualFold predicate on the "pdf_path" field.
func PdfPathEqualFold(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEqualFold(FieldPdfPath, v))
}

// PdfPathContainsFold applies the ContainsFold predicate on the "pdf_path" field.
func PdfPathContainsFold(v string) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldContainsFold(FieldPdfPath, v))
}

// RealCostEurEQ applies the EQ predicate on the "real_cost_eur" field.
func RealCostEurEQ(v float64) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldRealCostEur, v))
}

// RealCostEurNEQ applies the NEQ predicate on the "real_cost_eur" field.
func RealCostEurNEQ(v float64) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNEQ(FieldRealCostEur, v))
}

// RealCostEurIn applies the In predicate on the "real_cost_eur" field.
func RealCostEurIn(vs ...float64) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIn(FieldRealCostEur, vs...))
}

// RealCostEurNotIn applies the NotIn predicate on the "real_cost_eur" field.
func RealCostEurNotIn(vs ...float64) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotIn(FieldRealCostEur, vs...))
}

// RealCostEurGT applies the GT predicate on the "real_cost_eur" field.
func RealCostEurGT(v float64) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGT(FieldRealCostEur, v))
}

// RealCostEurGTE applies the GTE predicate on the "real_cost_eur" field.
func RealCostEurGTE(v float64) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGTE(FieldRealCostEur, v))
}

// RealCostEurLT applies the LT predicate on the "real_cost_eur" field.
func RealCostEurLT(v float64) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLT(FieldRealCostEur, v))
}

// RealCostEurLTE applies the LTE predicate on the "real_cost_eur" field.
func RealCostEurLTE(v float64) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLTE(FieldRealCostEur, v))
}

// EstimatedCostEurEQ applies the EQ predicate on the "estimated_cost_eur" field.
func EstimatedCostEurEQ(v float64) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldEstimatedCostEur, v))
}

// EstimatedCostEurNEQ applies the NEQ predicate on the "estimated_cost_eur" field.
func EstimatedCostEurNEQ(v float64) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNEQ(FieldEstimatedCostEur, v))
}

// EstimatedCostEurIn applies the In predicate on the "estimated_cost_eur" field.
func EstimatedCostEurIn(vs ...float64) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIn(FieldEstimatedCostEur, vs...))
}

// EstimatedCostEurNotIn applies the NotIn predicate on the "estimated_cost_eur" field.
func EstimatedCostEurNotIn(vs ...float64) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotIn(FieldEstimatedCostEur, vs...))
}

// EstimatedCostEurGT applies the GT predicate on the "estimated_cost_eur" field.
func EstimatedCostEurGT(v float64) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGT(FieldEstimatedCostEur, v))
}

// EstimatedCostEurGTE applies the GTE predicate on the "estimated_cost_eur" field.
func EstimatedCostEurGTE(v float64) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGTE(FieldEstimatedCostEur, v))
}

// EstimatedCostEurLT applies the LT predicate on the "estimated_cost_eur" field.
func EstimatedCostEurLT(v float64) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLT(FieldEstimatedCostEur, v))
}

// EstimatedCostEurLTE applies the LTE predicate on the "estimated_cost_eur" field.
func EstimatedCostEurLTE(v float64) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLTE(FieldEstimatedCostEur, v))
}

// EstimatedCostEurIsNil applies the IsNil predicate on the "estimated_cost_eur" field.
func EstimatedCostEurIsNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIsNull(FieldEstimatedCostEur))
}

// EstimatedCostEurNotNil applies the NotNil predicate on the "estimated_cost_eur" field.
func EstimatedCostEurNotNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotNull(FieldEstimatedCostEur))
}

// WritingTimeMinutesIsNil applies the IsNil predicate on the "writing_time_minutes" field.
func WritingTimeMinutesIsNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIsNull(FieldWritingTimeMinutes))
}

// WritingTimeMinutesNotNil applies the NotNil predicate on the "writing_time_minutes" field.
func WritingTimeMinutesNotNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotNull(FieldWritingTimeMinutes))
}

// ChapterTimingsIsNil applies the IsNil predicate on the "chapter_timings" field.
func ChapterTimingsIsNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIsNull(FieldChapterTimings))
}

// ChapterTimingsNotNil applies the NotNil predicate on the "chapter_timings" field.
func ChapterTimingsNotNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotNull(FieldChapterTimings))
}

// WritingStartTimeEQ applies the EQ predicate on the "writing_start_time" field.
func WritingStartTimeEQ(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldWritingStartTime, v))
}

// WritingStartTimeNEQ applies the NEQ predicate on the "writing_start_time" field.
func WritingStartTimeNEQ(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNEQ(FieldWritingStartTime, v))
}

// WritingStartTimeIn applies the In predicate on the "writing_start_time" field.
func WritingStartTimeIn(vs ...time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIn(FieldWritingStartTime, vs...))
}

// WritingStartTimeNotIn applies the NotIn predicate on the "writing_start_time" field.
func WritingStartTimeNotIn(vs ...time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotIn(FieldWritingStartTime, vs...))
}

// WritingStartTimeGT applies the GT predicate on the "writing_start_time" field.
func WritingStartTimeGT(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGT(FieldWritingStartTime, v))
}

// WritingStartTimeGTE applies the GTE predicate on the "writing_start_time" field.
func WritingStartTimeGTE(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGTE(FieldWritingStartTime, v))
}

// WritingStartTimeLT applies the LT predicate on the "writing_start_time" field.
func WritingStartTimeLT(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLT(FieldWritingStartTime, v))
}

// WritingStartTimeLTE applies the LTE predicate on the "writing_start_time" field.
func WritingStartTimeLTE(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLTE(FieldWritingStartTime, v))
}

// WritingStartTimeIsNil applies the IsNil predicate on the "writing_start_time" field.
func WritingStartTimeIsNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIsNull(FieldWritingStartTime))
}

// WritingStartTimeNotNil applies the NotNil predicate on the "writing_start_time" field.
func WritingStartTimeNotNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotNull(FieldWritingStartTime))
}

// WritingEndTimeEQ applies the EQ predicate on the "writing_end_time" field.
func WritingEndTimeEQ(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldWritingEndTime, v))
}

// WritingEndTimeNEQ applies the NEQ predicate on the "writing_end_time" field.
func WritingEndTimeNEQ(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNEQ(FieldWritingEndTime, v))
}

// WritingEndTimeIn applies the In predicate on the "writing_end_time" field.
func WritingEndTimeIn(vs ...time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIn(FieldWritingEndTime, vs...))
}

// WritingEndTimeNotIn applies the NotIn predicate on the "writing_end_time" field.
func WritingEndTimeNotIn(vs ...time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotIn(FieldWritingEndTime, vs...))
}

// WritingEndTimeGT applies the GT predicate on the "writing_end_time" field.
func WritingEndTimeGT(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGT(FieldWritingEndTime, v))
}

// WritingEndTimeGTE applies the GTE predicate on the "writing_end_time" field.
func WritingEndTimeGTE(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGTE(FieldWritingEndTime, v))
}

// WritingEndTimeLT applies the LT predicate on the "writing_end_time" field.
func WritingEndTimeLT(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLT(FieldWritingEndTime, v))
}

// WritingEndTimeLTE applies the LTE predicate on the "writing_end_time" field.
func WritingEndTimeLTE(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLTE(FieldWritingEndTime, v))
}

// WritingEndTimeIsNil applies the IsNil predicate on the "writing_end_time" field.
func WritingEndTimeIsNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIsNull(FieldWritingEndTime))
}

// WritingEndTimeNotNil applies the NotNil predicate on the "writing_end_time" field.
func WritingEndTimeNotNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotNull(FieldWritingEndTime))
}

// ChapterStartTimeEQ applies the EQ predicate on the "chapter_start_time" field.
func ChapterStartTimeEQ(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldChapterStartTime, v))
}

// ChapterStartTimeNEQ applies the NEQ predicate on the "chapter_start_time" field.
func ChapterStartTimeNEQ(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNEQ(FieldChapterStartTime, v))
}

// ChapterStartTimeIn applies the In predicate on the "chapter_start_time" field.
func ChapterStartTimeIn(vs ...time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIn(FieldChapterStartTime, vs...))
}

// ChapterStartTimeNotIn applies the NotIn predicate on the "chapter_start_time" field.
func ChapterStartTimeNotIn(vs ...time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotIn(FieldChapterStartTime, vs...))
}

// ChapterStartTimeGT applies the GT predicate on the "chapter_start_time" field.
func ChapterStartTimeGT(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGT(FieldChapterStartTime, v))
}

// ChapterStartTimeGTE applies the GTE predicate on the "chapter_start_time" field.
func ChapterStartTimeGTE(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGTE(FieldChapterStartTime, v))
}

// ChapterStartTimeLT applies the LT predicate on the "chapter_start_time" field.
func ChapterStartTimeLT(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLT(FieldChapterStartTime, v))
}

// ChapterStartTimeLTE applies the LTE predicate on the "chapter_start_time" field.
func ChapterStartTimeLTE(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLTE(FieldChapterStartTime, v))
}

// ChapterStartTimeIsNil applies the IsNil predicate on the "chapter_start_time" field.
func ChapterStartTimeIsNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIsNull(FieldChapterStartTime))
}

// ChapterStartTimeNotNil applies the NotNil predicate on the "chapter_start_time" field.
func ChapterStartTimeNotNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotNull(FieldChapterStartTime))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.NovelSession {
	return predicate.NovelSession(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.NovelSession {
	return predicate.NovelSession(sql.FieldNotNull(FieldDeletedAt))
}

// HasChapters applies the HasEdge predicate on the "chapters" edge.
func HasChapters() predicate.NovelSession {
	return predicate.NovelSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChaptersTable, ChaptersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChaptersWith applies the HasEdge predicate on the "chapters" edge with a given conditions (other predicates).
func HasChaptersWith(preds ...predicate.Chapter) predicate.NovelSession {
	return predicate.NovelSession(func(s *sql.Selector) {
		step := newChaptersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTasks applies the HasEdge predicate on the "tasks" edge.
func HasTasks() predicate.NovelSession {
	return predicate.NovelSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTasksWith applies the HasEdge predicate on the "tasks" edge with a given conditions (other predicates).
func HasTasksWith(preds ...predicate.GenerationTask) predicate.NovelSession {
	return predicate.NovelSession(func(s *sql.Selector) {
		step := newTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasShares applies the HasEdge predicate on the "shares" edge.
func HasShares() predicate.NovelSession {
	return predicate.NovelSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SharesTable, SharesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSharesWith applies the HasEdge predicate on the "shares" edge with a given conditions (other predicates).
func HasSharesWith(preds ...predicate.BookShare) predicate.NovelSession {
	return predicate.NovelSession(func(s *sql.Selector) {
		step := newSharesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NovelSession) predicate.NovelSession {
	return predicate.NovelSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NovelSession) predicate.NovelSession {
	return predicate.NovelSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NovelSession) predicate.NovelSession {
	return predicate.NovelSession(sql.NotPredicates(p))
}
