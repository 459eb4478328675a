package querier

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "uq_employees_email"})

	constraint, ok := UniqueViolation(err)
	if !ok {
		t.Fatal("expected unique violation")
	}
	if constraint != "uq_employees_email" {
		t.Fatalf("unexpected constraint %q", constraint)
	}

	if _, ok := ForeignKeyViolation(err); ok {
		t.Fatal("did not expect foreign key violation")
	}
}

func TestForeignKeyViolation(t *testing.T) {
	err := &pgconn.PgError{Code: "23503", ConstraintName: "fk_employees_department"}
	if constraint, ok := ForeignKeyViolation(err); !ok || constraint != "fk_employees_department" {
		t.Fatalf("expected foreign key violation, got %q %v", constraint, ok)
	}
	if _, ok := UniqueViolation(errors.New("other")); ok {
		t.Fatal("plain error must not classify as unique violation")
	}
}

func TestNoRows(t *testing.T) {
	if !NoRows(fmt.Errorf("scan: %w", pgx.ErrNoRows)) {
		t.Fatal("expected wrapped ErrNoRows to be detected")
	}
	if NoRows(errors.New("boom")) {
		t.Fatal("unexpected no rows match")
	}
}

func TestNullIfEmpty(t *testing.T) {
	if NullIfEmpty("") != nil {
		t.Fatal("expected nil for empty string")
	}
	if NullIfEmpty("x") != "x" {
		t.Fatal("expected value passthrough")
	}
}
