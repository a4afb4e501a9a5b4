package schema

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	sub := New("Sub", String("name"))
	s := New("Model",
		DateField("date"),
		DateTime("at", WithDataName("createdAt")),
		Time("time"),
		UUID("key"),
		Integer("count"),
		Float("ratio"),
		ObjectOf("sub", sub),
		ListOf("dates", []*Field{DateField("")}),
		String("plain"),
	)

	got, err := s.Decode(map[string]any{
		"date":      "2015-03-01",
		"createdAt": "2014-02-01T02:03:00Z",
		"time":      "02:32:00",
		"key":       "3f2504e0-4f89-11d3-9a0c-0305e82c3301",
		"count":     float64(12),
		"ratio":     2,
		"sub":       map[string]any{"name": "x", "ignored": 1},
		"dates":     []any{"2020-01-01", "2020-01-02"},
		"plain":     "p",
		"unknown":   true,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"date":  Date{Year: 2015, Month: time.March, Day: 1},
		"at":    time.Date(2014, time.February, 1, 2, 3, 0, 0, time.UTC),
		"time":  TimeOfDay{Hour: 2, Minute: 32},
		"key":   uuid.MustParse("3f2504e0-4f89-11d3-9a0c-0305e82c3301"),
		"count": int64(12),
		"ratio": float64(2),
		"sub":   map[string]any{"name": "x"},
		"dates": []any{Date{Year: 2020, Month: time.January, Day: 1}, Date{Year: 2020, Month: time.January, Day: 2}},
		"plain": "p",
	}, got)
}

func TestDecodeErrors(t *testing.T) {
	s := New("Model", DateField("date"), UUID("key"), Integer("count"))

	_, err := s.Decode(map[string]any{"date": "yesterday", "key": "nope", "count": 1.5})
	require.Error(t, err)

	var ite *InvalidTypeError
	require.ErrorAs(t, err, &ite)
	require.Len(t, ite.Errors, 2)
	assert.Contains(t, ite.Errors[0], "Model.date: ")
	assert.Contains(t, ite.Errors[1], "Model.key: ")
}
