// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fabula-ai/fabula/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldID, id))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// HashedPassword applies equality check predicate on the "hashed_password" field. It's identical to HashedPasswordEQ.
func HashedPassword(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldHashedPassword, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDisplayName, v))
}

// IsVerified applies equality check predicate on the "is_verified" field. It's identical to IsVerifiedEQ.
func IsVerified(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldIsVerified, v))
}

// APIToken applies equality check predicate on the "api_token" field. It's identical to APITokenEQ.
func APIToken(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAPIToken, v))
}

// CreditsFlash applies equality check predicate on the "credits_flash" field. It's identical to CreditsFlashEQ.
func CreditsFlash(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreditsFlash, v))
}

// CreditsPro applies equality check predicate on the "credits_pro" field. It's identical to CreditsProEQ.
func CreditsPro(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreditsPro, v))
}

// CreditsUltra applies equality check predicate on the "credits_ultra" field. It's identical to CreditsUltraEQ.
func CreditsUltra(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreditsUltra, v))
}

// CreditsResetAt applies equality check predicate on the "credits_reset_at" field. It's identical to CreditsResetAtEQ.
func CreditsResetAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreditsResetAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDeletedAt, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldEmail, v))
}

// HashedPasswordEQ applies the EQ predicate on the "hashed_password" field.
func HashedPasswordEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldHashedPassword, v))
}

// HashedPasswordNEQ applies the NEQ predicate on the "hashed_password" field.
func HashedPasswordNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldHashedPassword, v))
}

// HashedPasswordIn applies the In predicate on the "hashed_password" field.
func HashedPasswordIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldHashedPassword, vs...))
}

// HashedPasswordNotIn applies the NotIn predicate on the "hashed_password" field.
func HashedPasswordNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldHashedPassword, vs...))
}

// HashedPasswordGT applies the GT predicate on the "hashed_password" field.
func HashedPasswordGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldHashedPassword, v))
}

// HashedPasswordGTE applies the GTE predicate on the "hashed_password" field.
func HashedPasswordGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldHashedPassword, v))
}

// HashedPasswordLT applies the LT predicate on the "hashed_password" field.
func HashedPasswordLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldHashedPassword, v))
}

// HashedPasswordLTE applies the LTE predicate on the "hashed_password" field.
func HashedPasswordLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldHashedPassword, v))
}

// HashedPasswordContains applies the Contains predicate on the "hashed_password" field.
func HashedPasswordContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldHashedPassword, v))
}

// HashedPasswordHasPrefix applies the HasPrefix predicate on the "hashed_password" field.
func HashedPasswordHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldHashedPassword, v))
}

// HashedPasswordHasSuffix applies the HasSuffix predicate on the "hashed_password" field.
func HashedPasswordHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldHashedPassword, v))
}

// HashedPasswordEqualFold applies the EqualFold predicate on the "hashed_password" field.
func HashedPasswordEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldHashedPassword, v))
}

// HashedPasswordContainsFold applies the ContainsFold predicate on the "hashed_password" field.
func HashedPasswordContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldHashedPassword, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldDisplayName, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v Role) predicate.User {
	return predicate.User(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v Role) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...Role) predicate.User {
	return predicate.User(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...Role) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldRole, vs...))
}

// IsVerifiedEQ applies the EQ predicate on the "is_verified" field.
func IsVerifiedEQ(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldIsVerified, v))
}

// IsVerifiedNEQ applies the NEQ predicate on the "is_verified" field.
func IsVerifiedNEQ(v bool) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldIsVerified, v))
}

// APITokenEQ applies the EQ predicate on the "api_token" field.
func APITokenEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAPIToken, v))
}

// APITokenNEQ applies the NEQ predicate on the "api_token" field.
func APITokenNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldAPIToken, v))
}

// APITokenIn applies the In predicate on the "api_token" field.
func APITokenIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldAPIToken, vs...))
}

// APITokenNotIn applies the NotIn predicate on the "api_token" field.
func APITokenNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldAPIToken, vs...))
}

// APITokenGT applies the GT predicate on the "api_token" field.
func APITokenGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldAPIToken, v))
}

// APITokenGTE applies the GTE predicate on the "api_token" field.
func APITokenGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldAPIToken, v))
}

// APITokenLT applies the LT predicate on the "api_token" field.
func APITokenLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldAPIToken, v))
}

// APITokenLTE applies the LTE predicate on the "api_token" field.
func APITokenLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldAPIToken, v))
}

// APITokenContains applies the Contains predicate on the "api_token" field.
func APITokenContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldAPIToken, v))
}

// APITokenHasPrefix applies the HasPrefix predicate on the "api_token" field.
func APITokenHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldAPIToken, v))
}

// APITokenHasSuffix applies the HasSuffix predicate on the "api_token" field.
func APITokenHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldAPIToken, v))
}

// APITokenIsNil applies the IsNil predicate on the "api_token" field.
func APITokenIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldAPIToken))
}

// APITokenNotNil applies the NotNil predicate on the "api_token" field.
func APITokenNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldAPIToken))
}

// APITokenEqualFold applies the EqualFold predicate on the "api_token" field.
func APITokenEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldAPIToken, v))
}

// APITokenContainsFold applies the ContainsFold predicate on the "api_token" field.
func APITokenContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldAPIToken, v))
}

// CreditsFlashEQ applies the EQ predicate on the "credits_flash" field.
func CreditsFlashEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreditsFlash, v))
}

// CreditsFlashNEQ applies the NEQ predicate on the "credits_flash" field.
func CreditsFlashNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreditsFlash, v))
}

// CreditsFlashIn applies the In predicate on the "credits_flash" field.
func CreditsFlashIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreditsFlash, vs...))
}

// CreditsFlashNotIn applies the NotIn predicate on the "credits_flash" field.
func CreditsFlashNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreditsFlash, vs...))
}

// CreditsFlashGT applies the GT predicate on the "credits_flash" field.
func CreditsFlashGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreditsFlash, v))
}

// CreditsFlashGTE applies the GTE predicate on the "credits_flash" field.
func CreditsFlashGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreditsFlash, v))
}

// CreditsFlashLT applies the LT predicate on the "credits_flash" field.
func CreditsFlashLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreditsFlash, v))
}

// CreditsFlashLTE applies the LTE predicate on the "credits_flash" field.
func CreditsFlashLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreditsFlash, v))
}

// CreditsProEQ applies the EQ predicate on the "credits_pro" field.
func CreditsProEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreditsPro, v))
}

// CreditsProNEQ applies the NEQ predicate on the "credits_pro" field.
func CreditsProNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreditsPro, v))
}

// CreditsProIn applies the In predicate on the "credits_pro" field.
func CreditsProIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreditsPro, vs...))
}

// CreditsProNotIn applies the NotIn predicate on the "credits_pro" field.
func CreditsProNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreditsPro, vs...))
}

// CreditsProGT applies the GT predicate on the "credits_pro" field.
func CreditsProGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreditsPro, v))
}

// CreditsProGTE applies the GTE predicate on the "credits_pro" field.
func CreditsProGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreditsPro, v))
}

// CreditsProLT applies the LT predicate on the "credits_pro" field.
func CreditsProLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreditsPro, v))
}

// CreditsProLTE applies the LTE predicate on the "credits_pro" field.
func CreditsProLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreditsPro, v))
}

// CreditsUltraEQ applies the EQ predicate on the "credits_ultra" field.
func CreditsUltraEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreditsUltra, v))
}

// CreditsUltraNEQ applies the NEQ predicate on the "credits_ultra" field.
func CreditsUltraNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreditsUltra, v))
}

// CreditsUltraIn applies the In predicate on the "credits_ultra" field.
func CreditsUltraIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreditsUltra, vs...))
}

// CreditsUltraNotIn applies the NotIn predicate on the "credits_ultra" field.
func CreditsUltraNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreditsUltra, vs...))
}

// CreditsUltraGT applies the GT predicate on the "credits_ultra" field.
func CreditsUltraGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreditsUltra, v))
}

// CreditsUltraGTE applies the GTE predicate on the "credits_ultra" field.
func CreditsUltraGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreditsUltra, v))
}

// CreditsUltraLT applies the LT predicate on the "credits_ultra" field.
func CreditsUltraLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreditsUltra, v))
}

// CreditsUltraLTE applies the LTE predicate on the "credits_ultra" field.
func CreditsUltraLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreditsUltra, v))
}

// CreditsResetAtEQ applies the EQ predicate on the "credits_reset_at" field.
func CreditsResetAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreditsResetAt, v))
}

// CreditsResetAtNEQ applies the NEQ predicate on the "credits_reset_at" field.
func CreditsResetAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreditsResetAt, v))
}

// CreditsResetAtIn applies the In predicate on the "credits_reset_at" field.
func CreditsResetAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreditsResetAt, vs...))
}

// CreditsResetAtNotIn applies the NotIn predicate on the "credits_reset_at" field.
func CreditsResetAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreditsResetAt, vs...))
}

// CreditsResetAtGT applies the GT predicate on the "credits_reset_at" field.
func CreditsResetAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreditsResetAt, v))
}

// CreditsResetAtGTE applies the GTE predicate on the "credits_reset_at" field.
func CreditsResetAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreditsResetAt, v))
}

// CreditsResetAtLT applies the LT predicate on the "credits_reset_at" field.
func CreditsResetAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreditsResetAt, v))
}

// CreditsResetAtLTE applies the LTE predicate on the "credits_reset_at" field.
func CreditsResetAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreditsResetAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldDeletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}
