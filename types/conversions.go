package types

import (
	"encoding"
	"encoding/base64"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"time"

	"github.com/gocql/gocql"
	"gopkg.in/inf.v0"
)

// FormatValue converts a cell value to the text displayed in the table. Nil values (including nil pointers)
// are displayed as an empty string.
func FormatValue(value interface{}) string {
	if value == nil {
		return ""
	}

	switch value := value.(type) {
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32)
	case []byte:
		return ByteArrayToBase64String(value)
	case time.Time:
		return TimeAsString(value)
	case time.Duration:
		return DurationToCqlFormattedString(value)
	case gocql.UUID:
		return value.String()
	case *inf.Dec:
		return StringerToString(value)
	case *big.Int:
		return StringerToString(value)
	case fmt.Stringer:
		return StringerToString(value)
	}

	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return ""
		}
		return FormatValue(v.Elem().Interface())
	}

	return fmt.Sprint(value)
}

func StringerToString(value fmt.Stringer) string {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return ""
	}
	return value.String()
}

func ByteArrayToBase64String(value []byte) string {
	return base64.StdEncoding.EncodeToString(value)
}

func TimeAsString(value time.Time) string {
	return marshalText(value)
}

func marshalText(value encoding.TextMarshaler) string {
	buff, err := value.MarshalText()
	if err != nil {
		return ""
	}

	return string(buff)
}

// DurationToCqlFormattedString formats a duration the way CQL displays the time type: hh:mm:ss[.fffffffff]
func DurationToCqlFormattedString(d time.Duration) string {
	totalSeconds := d.Truncate(time.Second)
	remainingNanos := d - totalSeconds

	var (
		hours   = 0
		minutes = 0
	)
	secs := int(totalSeconds.Seconds())

	if secs >= 60 {
		minutes = secs / 60
		secs = secs % 60
	}
	if minutes >= 60 {
		hours = minutes / 60
		minutes = minutes % 60
	}

	nanosStr := ""
	if remainingNanos > 0 {
		nanosStr = fmt.Sprintf(".%09d", remainingNanos.Nanoseconds())
	}
	return fmt.Sprintf("%02d:%02d:%02d%s", hours, minutes, secs, nanosStr)
}
