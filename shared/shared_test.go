package shared_test

import (
	"testing"
	"time"
	"todoapi/shared"
	"todoapi/shared/dto"
	"todoapi/shared/failure"

	"github.com/stretchr/testify/assert"
)

type row struct {
	ID      int64      `db:"id"`
	Title   *string    `db:"title"`
	Due     *time.Time `db:"due_date"`
	Status  bool       `db:"status"`
	Ignored string
}

func TestTransformFields(t *testing.T) {
	title := "write report"

	tests := []struct {
		name     string
		data     any
		skip     []string
		expected map[string]any
	}{
		{
			name: "keeps zero values",
			data: row{ID: 3, Title: &title},
			expected: map[string]any{
				"id":       int64(3),
				"title":    &title,
				"due_date": (*time.Time)(nil),
				"status":   false,
			},
		},
		{
			name: "skips named columns",
			data: &row{ID: 3, Status: true},
			skip: []string{"id", "title"},
			expected: map[string]any{
				"due_date": (*time.Time)(nil),
				"status":   true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.TransformFields(tt.data, tt.skip...))
		})
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID(int64(9), "id", "users")

	assert.Equal(t, dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "id", Value: int64(9), Operator: dto.FilterOperatorEq, Table: "users"},
		},
	}, filter)

	where, args := filter.GetWhereClause()
	assert.Equal(t, "(users.id = :id)", where)
	assert.Equal(t, map[string]any{"id": int64(9)}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "task:get:42", shared.BuildCacheKey("task:get", int64(42)))
	assert.Equal(t, "user:get", shared.BuildCacheKey("user:get"))
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int64
		wantErr  bool
	}{
		{name: "positive", raw: "42", expected: 42},
		{name: "zero", raw: "0", expected: 0},
		{name: "negative", raw: "-3", expected: -3},
		{name: "word", raw: "abc", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "overflow", raw: "9223372036854775808", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := shared.ParseID(tt.raw)

			if tt.wantErr {
				assert.Equal(t, 400, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}
