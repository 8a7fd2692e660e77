package pg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

type ErrorClassification int

const (
	NonRetriable ErrorClassification = iota
	Retriable
)

type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify - определяет, можно ли повторить запрос после ошибки pgx или lib/pq
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetriable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyCode(pgErr.Code)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return classifyCode(string(pqErr.Code))
	}

	if pgconn.SafeToRetry(err) {
		return Retriable
	}

	// По умолчанию считаем ошибку неповторяемой
	return NonRetriable
}

// classifyCode - классифицирует код SQLSTATE.
// Коды ошибок PostgreSQL: https://www.postgresql.org/docs/current/errcodes-appendix.html
func classifyCode(code string) ErrorClassification {
	switch code {
	// Класс 08 - Ошибки соединения
	case "08000", "08001", "08003", "08004", "08006", "08007":
		return Retriable

	// Класс 40 - Откат транзакции, deadlock
	case "40000", "40001", "40P01":
		return Retriable

	// Класс 57 и 53 - Сервер недоступен, слишком много соединений
	case "57P03", "53300":
		return Retriable
	}

	return NonRetriable
}
