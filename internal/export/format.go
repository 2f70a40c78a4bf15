package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/yigit/student360/internal/app/models"
	"github.com/yigit/student360/internal/pkg/helpers"
)

// FormatValue renders one cell for a CSV file. Dates are YYYY-MM-DD,
// timestamps YYYY-MM-DD HH:MM:SS, money two decimals, grade points one
// decimal and a nil grade an empty string.
func FormatValue(kind Kind, v any) (string, error) {
	switch kind {
	case KindDate, KindTimestamp:
		ts, ok := v.(time.Time)
		if !ok {
			return "", fmt.Errorf("expected time.Time, got %T", v)
		}
		if kind == KindDate {
			return helpers.FormatDate(ts), nil
		}
		return helpers.FormatTimestamp(ts), nil

	case KindMoney:
		m, ok := v.(models.Money)
		if !ok {
			return "", fmt.Errorf("expected models.Money, got %T", v)
		}
		return m.String(), nil

	case KindGradePoints:
		p, ok := v.(*float64)
		if !ok {
			return "", fmt.Errorf("expected *float64, got %T", v)
		}
		if p == nil {
			return "", nil
		}
		return strconv.FormatFloat(*p, 'f', 1, 64), nil

	case KindInt:
		switch n := v.(type) {
		case int:
			return strconv.Itoa(n), nil
		case int64:
			return strconv.FormatInt(n, 10), nil
		}
		return "", fmt.Errorf("expected integer, got %T", v)

	default:
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("expected string, got %T", v)
		}
		return s, nil
	}
}

// WarehouseValue converts one cell into a value the postgres driver can copy.
// Money becomes dollars, a nil grade becomes NULL and an empty grade letter
// becomes NULL as well.
func WarehouseValue(col Column, v any) any {
	switch col.Kind {
	case KindMoney:
		if m, ok := v.(models.Money); ok {
			return m.Float()
		}
	case KindGradePoints:
		if p, ok := v.(*float64); ok && p != nil {
			return *p
		}
		return nil
	case KindInt:
		if n, ok := v.(int); ok {
			return int64(n)
		}
	case KindText:
		if s, ok := v.(string); ok && s == "" && col.Name == "grade_letter" {
			return nil
		}
	}
	return v
}
