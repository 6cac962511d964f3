package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pq.Error{Code: "23505", Constraint: "users_username_key"}
	if !isUniqueViolation(unique) {
		t.Error("unique_violation not recognized")
	}
	if !isUniqueViolation(fmt.Errorf("insert user: %w", unique)) {
		t.Error("wrapped unique_violation not recognized")
	}
	if isUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Error("foreign_key_violation treated as duplicate")
	}
	if isUniqueViolation(errors.New("pq: duplicate key value violates unique constraint")) {
		t.Error("plain error matched on message text")
	}
}
