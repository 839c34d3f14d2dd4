// Code generated by ent, DO NOT EDIT.

package user

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "user_id"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldHashedPassword holds the string denoting the hashed_password field in the database.
	FieldHashedPassword = "hashed_password"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldIsVerified holds the string denoting the is_verified field in the database.
	FieldIsVerified = "is_verified"
	// FieldAPIToken holds the string denoting the api_token field in the database.
	FieldAPIToken = "api_token"
	// FieldCreditsFlash holds the string denoting the credits_flash field in the database.
	FieldCreditsFlash = "credits_flash"
	// FieldCreditsPro holds the string denoting the credits_pro field in the database.
	FieldCreditsPro = "credits_pro"
	// FieldCreditsUltra holds the string denoting the credits_ultra field in the database.
	FieldCreditsUltra = "credits_ultra"
	// FieldCreditsResetAt holds the string denoting the credits_reset_at field in the database.
	FieldCreditsResetAt = "credits_reset_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// Table holds the table name of the user in the database.
	Table = "users"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldEmail,
	FieldHashedPassword,
	FieldDisplayName,
	FieldRole,
	FieldIsVerified,
	FieldAPIToken,
	FieldCreditsFlash,
	FieldCreditsPro,
	FieldCreditsUltra,
	FieldCreditsResetAt,
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
	// DefaultIsVerified holds the default value on creation for the "is_verified" field.
	DefaultIsVerified bool
	// DefaultCreditsFlash holds the default value on creation for the "credits_flash" field.
	DefaultCreditsFlash int
	// DefaultCreditsPro holds the default value on creation for the "credits_pro" field.
	DefaultCreditsPro int
	// DefaultCreditsUltra holds the default value on creation for the "credits_ultra" field.
	DefaultCreditsUltra int
	// DefaultCreditsResetAt holds the default value on creation for the "credits_reset_at" field.
	DefaultCreditsResetAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Role defines the type for the "role" enum field.
type Role string

// RoleUser is the default value of the Role enum.
const DefaultRole = RoleUser

// Role values.
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

// RoleValidator is a validator for the "role" field enum values. It is called by the builders before save.
func RoleValidator(r Role) error {
	switch r {
	case RoleUser, RoleAdmin:
		return nil
	default:
		return fmt.Errorf("user: invalid enum value for role field: %q", r)
	}
}

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByHashedPassword orders the results by the hashed_password field.
func ByHashedPassword(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHashedPassword, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByIsVerified orders the results by the is_verified field.
func ByIsVerified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsVerified, opts...).ToFunc()
}

// ByAPIToken orders the results by the api_token field.
func ByAPIToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAPIToken, opts...).ToFunc()
}

// ByCreditsFlash orders the results by the credits_flash field.
func ByCreditsFlash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreditsFlash, opts...).ToFunc()
}

// ByCreditsPro orders the results by the credits_pro field.
func ByCreditsPro(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreditsPro, opts...).ToFunc()
}

// ByCreditsUltra orders the results by the credits_ultra field.
func ByCreditsUltra(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreditsUltra, opts...).ToFunc()
}

// ByCreditsResetAt orders the results by the credits_reset_at field.
func ByCreditsResetAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreditsResetAt, opts...).ToFunc()
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
