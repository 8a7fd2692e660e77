package pg

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify_Retriable(t *testing.T) {
	classifier := NewPostgresErrorClassifier()
	codes := []string{
		"08000", "08001", "08003", "08004", "08006", "08007",
		"40000", "40001", "40P01",
		"57P03", "53300",
	}

	for _, code := range codes {
		t.Run(code, func(t *testing.T) {
			assert.Equal(t, Retriable, classifier.Classify(&pq.Error{Code: pq.ErrorCode(code)}), "lib/pq")
			assert.Equal(t, Retriable, classifier.Classify(fmt.Errorf("get order: %w", &pgconn.PgError{Code: code})), "pgx")
		})
	}
}

func TestPostgresErrorClassifier_Classify_NonRetriable(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
	}{
		{name: "nil", err: nil},
		{name: "plain error", err: errors.New("custom error")},
		{name: "context canceled", err: context.Canceled},
		{name: "data exception", err: &pq.Error{Code: "22000"}},
		{name: "null value", err: &pq.Error{Code: "22004"}},
		{name: "unique violation", err: &pq.Error{Code: "23505"}},
		{name: "not null violation pgx", err: &pgconn.PgError{Code: "23502"}},
		{name: "syntax error", err: &pq.Error{Code: "42601"}},
		{name: "undefined inventory table", err: fmt.Errorf("list inventory: %w", &pgconn.PgError{Code: "42P01"})},
		{name: "successful completion", err: &pq.Error{Code: "00000"}},
		{name: "unknown code", err: &pq.Error{Code: "ABCDE"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, NonRetriable, classifier.Classify(tt.err))
		})
	}
}
