// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fabula-ai/fabula/ent/bookshare"
	"github.com/fabula-ai/fabula/ent/chapter"
	"github.com/fabula-ai/fabula/ent/generationtask"
	"github.com/fabula-ai/fabula/ent/notification"
	"github.com/fabula-ai/fabula/ent/novelsession"
	"github.com/fabula-ai/fabula/ent/schema"
	"github.com/fabula-ai/fabula/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	bookshareFields := schema.BookShare{}.Fields()
	_ = bookshareFields
	// bookshareDescCreatedAt is the schema descriptor for created_at field.
	bookshareDescCreatedAt := bookshareFields[4].Descriptor()
	// bookshare.DefaultCreatedAt holds the default value on creation for the created_at field.
	bookshare.DefaultCreatedAt = bookshareDescCreatedAt.Default.(func() time.Time)
	chapterFields := schema.Chapter{}.Fields()
	_ = chapterFields
	// chapterDescWordCount is the schema descriptor for word_count field.
	chapterDescWordCount := chapterFields[5].Descriptor()
	// chapter.DefaultWordCount holds the default value on creation for the word_count field.
	chapter.DefaultWordCount = chapterDescWordCount.Default.(int)
	// chapterDescCreatedAt is the schema descriptor for created_at field.
	chapterDescCreatedAt := chapterFields[6].Descriptor()
	// chapter.DefaultCreatedAt holds the default value on creation for the created_at field.
	chapter.DefaultCreatedAt = chapterDescCreatedAt.Default.(func() time.Time)
	// chapterDescUpdatedAt is the schema descriptor for updated_at field.
	chapterDescUpdatedAt := chapterFields[7].Descriptor()
	// chapter.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chapter.DefaultUpdatedAt = chapterDescUpdatedAt.Default.(func() time.Time)
	// chapter.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chapter.UpdateDefaultUpdatedAt = chapterDescUpdatedAt.UpdateDefault.(func() time.Time)
	generationtaskFields := schema.GenerationTask{}.Fields()
	_ = generationtaskFields
	// generationtaskDescAttempt is the schema descriptor for attempt field.
	generationtaskDescAttempt := generationtaskFields[4].Descriptor()
	// generationtask.DefaultAttempt holds the default value on creation for the attempt field.
	generationtask.DefaultAttempt = generationtaskDescAttempt.Default.(int)
	// generationtaskDescCreatedAt is the schema descriptor for created_at field.
	generationtaskDescCreatedAt := generationtaskFields[10].Descriptor()
	// generationtask.DefaultCreatedAt holds the default value on creation for the created_at field.
	generationtask.DefaultCreatedAt = generationtaskDescCreatedAt.Default.(func() time.Time)
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[6].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationFields[7].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	novelsessionFields := schema.NovelSession{}.Fields()
	_ = novelsessionFields
	// novelsessionDescRealCostEur is the schema descriptor for real_cost_eur field.
	novelsessionDescRealCostEur := novelsessionFields[19].Descriptor()
	// novelsession.DefaultRealCostEur holds the default value on creation for the real_cost_eur field.
	novelsession.DefaultRealCostEur = novelsessionDescRealCostEur.Default.(float64)
	// novelsessionDescCreatedAt is the schema descriptor for created_at field.
	novelsessionDescCreatedAt := novelsessionFields[26].Descriptor()
	// novelsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	novelsession.DefaultCreatedAt = novelsessionDescCreatedAt.Default.(func() time.Time)
	// novelsessionDescUpdatedAt is the schema descriptor for updated_at field.
	novelsessionDescUpdatedAt := novelsessionFields[27].Descriptor()
	// novelsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	novelsession.DefaultUpdatedAt = novelsessionDescUpdatedAt.Default.(func() time.Time)
	// novelsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	novelsession.UpdateDefaultUpdatedAt = novelsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescIsVerified is the schema descriptor for is_verified field.
	userDescIsVerified := userFields[5].Descriptor()
	// user.DefaultIsVerified holds the default value on creation for the is_verified field.
	user.DefaultIsVerified = userDescIsVerified.Default.(bool)
	// userDescCreditsFlash is the schema descriptor for credits_flash field.
	userDescCreditsFlash := userFields[7].Descriptor()
	// user.DefaultCreditsFlash holds the default value on creation for the credits_flash field.
	user.DefaultCreditsFlash = userDescCreditsFlash.Default.(int)
	// userDescCreditsPro is the schema descriptor for credits_pro field.
	userDescCreditsPro := userFields[8].Descriptor()
	// user.DefaultCreditsPro holds the default value on creation for the credits_pro field.
	user.DefaultCreditsPro = userDescCreditsPro.Default.(int)
	// userDescCreditsUltra is the schema descriptor for credits_ultra field.
	userDescCreditsUltra := userFields[9].Descriptor()
	// user.DefaultCreditsUltra holds the default value on creation for the credits_ultra field.
	user.DefaultCreditsUltra = userDescCreditsUltra.Default.(int)
	// userDescCreditsResetAt is the schema descriptor for credits_reset_at field.
	userDescCreditsResetAt := userFields[10].Descriptor()
	// user.DefaultCreditsResetAt holds the default value on creation for the credits_reset_at field.
	user.DefaultCreditsResetAt = userDescCreditsResetAt.Default.(func() time.Time)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[11].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[12].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
