package pgconv

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

var ErrUnboundedRange = errors.New("tstzrange must have both bounds")

type TimeRange = pgtype.Range[pgtype.Timestamptz]

func StringToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func StringFromPgtype(pt pgtype.Text) string {
	if !pt.Valid {
		return ""
	}
	return pt.String
}

func IntFromPgtype(pi pgtype.Int4) int {
	if !pi.Valid {
		return 0
	}
	return int(pi.Int32)
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// RangeToTimes unpacks a bounded tstzrange. Only half-open [start, end) ranges are stored.
func RangeToTimes(r TimeRange) (start, end time.Time, err error) {
	if !r.Valid || r.LowerType == pgtype.Unbounded || r.UpperType == pgtype.Unbounded {
		return time.Time{}, time.Time{}, ErrUnboundedRange
	}
	return r.Lower.Time, r.Upper.Time, nil
}

func TimesToRange(start, end time.Time) TimeRange {
	return TimeRange{
		Lower:     TimeToPgtype(start),
		Upper:     TimeToPgtype(end),
		LowerType: pgtype.Inclusive,
		UpperType: pgtype.Exclusive,
		Valid:     true,
	}
}
