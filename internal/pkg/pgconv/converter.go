package pgconv

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const dateLayout = "2006-01-02"

var ErrInvalidFloat64Value = errors.New("invalid float64 value in pgtype.Numeric")

// NormalizeValue converts a decoded column value into the loosely typed
// shape handed to callers: uuid as canonical string, date as YYYY-MM-DD,
// numeric as float64, timestamps as UTC time.Time. Other values pass through.
func NormalizeValue(oid uint32, v any) any {
	if v == nil {
		return nil
	}

	switch oid {
	case pgtype.UUIDOID:
		switch id := v.(type) {
		case [16]byte:
			return uuid.UUID(id).String()
		case pgtype.UUID:
			if p := UUIDPtrFromPgtype(id); p != nil {
				return p.String()
			}
			return nil
		}
	case pgtype.DateOID:
		switch d := v.(type) {
		case time.Time:
			return d.Format(dateLayout)
		case pgtype.Date:
			if !d.Valid {
				return nil
			}
			return d.Time.Format(dateLayout)
		}
	case pgtype.NumericOID:
		if n, ok := v.(pgtype.Numeric); ok {
			f, err := Float64PtrFromNumeric(n)
			if err != nil || f == nil {
				return nil
			}
			return *f
		}
	case pgtype.TimestamptzOID, pgtype.TimestampOID:
		if t, ok := v.(time.Time); ok {
			return t.UTC()
		}
	}

	return v
}

func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	if !pu.Valid {
		return nil
	}
	id := uuid.UUID(pu.Bytes)
	return &id
}

func Float64PtrFromNumeric(pn pgtype.Numeric) (*float64, error) {
	if !pn.Valid {
		return nil, nil
	}

	value, err := pn.Float64Value()
	if err != nil {
		return nil, ErrInvalidFloat64Value
	}

	return &value.Float64, nil
}
