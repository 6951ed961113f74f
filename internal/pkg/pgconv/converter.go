package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrInvalidDate = errors.New("invalid date value in pgtype.Date")

const isoDate = "2006-01-02"

// DateToPgtype keeps only the calendar part of t.
func DateToPgtype(t time.Time) pgtype.Date {
	return pgtype.Date{
		Time:  time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
		Valid: true,
	}
}

func DateFromPgtype(pd pgtype.Date) (time.Time, error) {
	if !pd.Valid || pd.InfinityModifier != pgtype.Finite {
		return time.Time{}, ErrInvalidDate
	}
	return pd.Time, nil
}

// ISODateFromPgtype renders a DATE column the way the read models expose it (YYYY-MM-DD).
func ISODateFromPgtype(pd pgtype.Date) string {
	t, err := DateFromPgtype(pd)
	if err != nil {
		return ""
	}
	return t.Format(isoDate)
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
