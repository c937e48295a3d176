package ndc

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

const (
	DateTimeLayout = "2006-01-02T15:04:05Z"
	DateLayout     = time.DateOnly

	responseDateTimeLayout = "2006-01-02T15:04:05"
)

// Date marshals as YYYY-MM-DD.
type Date time.Time

func (d Date) MarshalText() ([]byte, error) {
	return []byte(FormatDate(time.Time(d))), nil
}

// DateTime marshals as a UTC timestamp with seconds precision and a Z suffix.
type DateTime time.Time

func (d DateTime) MarshalText() ([]byte, error) {
	return []byte(FormatDateTime(time.Time(d))), nil
}

func FormatDateTime(value time.Time) string {
	return value.UTC().Format(DateTimeLayout)
}

func FormatDate(value time.Time) string {
	return value.Format(DateLayout)
}

func FormatBool(value bool) string {
	return strconv.FormatBool(value)
}

// FormatScalar renders a value the way it appears in element text.
func FormatScalar(value any) string {
	switch v := value.(type) {
	case time.Time:
		return FormatDateTime(v)
	case *time.Time:
		if v == nil {
			return ""
		}
		return FormatDateTime(*v)
	case DateTime:
		return FormatDateTime(time.Time(v))
	case Date:
		return FormatDate(time.Time(v))
	case bool:
		return FormatBool(v)
	default:
		return cast.ToString(v)
	}
}

// ParseDateTime reads YYYY-MM-DDTHH:MM:SS with optional fractional seconds and
// an optional Z suffix. Fractions are dropped; the result is in UTC.
func ParseDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	value = strings.TrimSuffix(value, "Z")
	if dot := strings.IndexByte(value, '.'); dot >= 0 {
		value = value[:dot]
	}

	return time.ParseInLocation(responseDateTimeLayout, value, time.UTC)
}
