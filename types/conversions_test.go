package types

import (
	"math/big"
	"testing"
	"time"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"gopkg.in/inf.v0"
)

func TestFormatValue(t *testing.T) {
	uuid := gocql.TimeUUID()
	name := "Bob"
	var nilName *string
	var nilDec *inf.Dec

	items := []struct {
		value    interface{}
		expected string
	}{
		{nil, ""},
		{"admin", "admin"},
		{true, "true"},
		{42, "42"},
		{int64(-7), "-7"},
		{int32(12), "12"},
		{1.5, "1.5"},
		{float32(0.25), "0.25"},
		{[]byte("abc"), "YWJj"},
		{time.Date(2020, 4, 1, 10, 30, 0, 0, time.UTC), "2020-04-01T10:30:00Z"},
		{uuid, uuid.String()},
		{inf.NewDec(123, 2), "1.23"},
		{big.NewInt(1 << 40), "1099511627776"},
		{&name, "Bob"},
		{nilName, ""},
		{nilDec, ""},
	}

	for _, item := range items {
		assert.Equal(t, item.expected, FormatValue(item.value), "value %#v", item.value)
	}
}

func TestDurationToCqlFormattedString(t *testing.T) {
	assert.Equal(t, "00:00:00", DurationToCqlFormattedString(0))
	assert.Equal(t, "01:02:03", DurationToCqlFormattedString(time.Hour+2*time.Minute+3*time.Second))
	assert.Equal(t, "00:00:01.000000500", DurationToCqlFormattedString(time.Second+500*time.Nanosecond))
	assert.Equal(t, "01:02:03", FormatValue(time.Hour+2*time.Minute+3*time.Second))
}
