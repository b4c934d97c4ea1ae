package domain

import (
	"time"
)

// Question is an open-ended question document (question text, type tag,
// options, correct answer, ...). The schema is intentionally not validated
// beyond "list of objects": quizzes are stored and returned verbatim, and no
// code path reads individual question fields.
type Question map[string]interface{}

// Quiz represents a quiz definition. There is no attempt/submission entity;
// the system stores definitions only.
type Quiz struct {
	ID          string     `bson:"_id" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	Questions   []Question `bson:"questions" json:"questions"`
	CreatedBy   string     `bson:"created_by" json:"created_by"` // User ID
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	IsActive    bool       `bson:"is_active" json:"is_active"`
	TimeLimit   *int       `bson:"time_limit,omitempty" json:"time_limit"` // Minutes
}
