// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BookShare is the predicate function for bookshare builders.
type BookShare func(*sql.Selector)

// Chapter is the predicate function for chapter builders.
type Chapter func(*sql.Selector)

// GenerationTask is the predicate function for generationtask builders.
type GenerationTask func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// NovelSession is the predicate function for novelsession builders.
type NovelSession func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
