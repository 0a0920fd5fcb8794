// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnalysisJob is the predicate function for analysisjob builders.
type AnalysisJob func(*sql.Selector)

// Image is the predicate function for image builders.
type Image func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
