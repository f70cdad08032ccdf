package errors

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestDBErrorCode(t *testing.T) {
	cases := []struct {
		sqlstate string
		want     ErrorCode
	}{
		{pgErrUniqueViolation, ErrorCodeDuplicateKey},
		{pgErrForeignKeyViolation, ErrorCodeInvalidArgument},
		{pgErrNotNullViolation, ErrorCodeValidation},
		{pgErrCheckViolation, ErrorCodeValidation},
		{pgErrCannotConnectNow, ErrorCodeUnavailable},
		{"99999", ErrorCodeDB},
	}
	for _, c := range cases {
		err := &pgconn.PgError{Code: c.sqlstate}
		code, ok := DBErrorCode(err)
		if !ok || code != c.want {
			t.Fatalf("DBErrorCode(%s) = %d ok=%v, want %d", c.sqlstate, code, ok, c.want)
		}
	}
	if _, ok := DBErrorCode(New(ErrorCodeUnknown, "not pg")); ok {
		t.Fatal("non-pg error should report !ok")
	}
}

func TestFromPostgres(t *testing.T) {
	if FromPostgres(nil, "noop") != nil {
		t.Fatal("nil passes through")
	}
	err := FromPostgres(&pgconn.PgError{Code: pgErrUniqueViolation}, "insert match")
	if !IsCode(err, ErrorCodeDuplicateKey) {
		t.Fatalf("got code %d", CodeOf(err))
	}
	if !IsDuplicateKey(err) {
		t.Fatal("IsDuplicateKey should see through the wrap")
	}
}
