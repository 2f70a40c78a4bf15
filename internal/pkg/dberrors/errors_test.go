package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	err := fmt.Errorf("copy: %w", &pgconn.PgError{Code: "23505", ConstraintName: "enrollments_pkey"})

	assert.True(t, IsDuplicateConstraintError(err, "enrollments_pkey"))
	assert.True(t, IsDuplicateConstraintError(err, ""))
	assert.False(t, IsDuplicateConstraintError(err, "students_pkey"))
	assert.False(t, IsDuplicateConstraintError(errors.New("boom"), ""))
	assert.Equal(t, "enrollments_pkey", Constraint(err))
}

func TestIsMissingRelationError(t *testing.T) {
	assert.True(t, IsMissingRelationError(&pgconn.PgError{Code: "42P01"}))
	assert.True(t, IsMissingRelationError(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "3F000"})))
	assert.False(t, IsMissingRelationError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsMissingRelationError(nil))
}

func TestIsForeignKeyError(t *testing.T) {
	assert.True(t, IsForeignKeyError(&pgconn.PgError{Code: "23503", ConstraintName: "enrollments_student_fk"}))
	assert.False(t, IsForeignKeyError(&pgconn.PgError{Code: "42P01"}))
	assert.Empty(t, Constraint(errors.New("plain")))
}
