package dto_test

import (
	"testing"
	"todoapi/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name         string
		filter       dto.Filter
		expectedSQL  string
		expectedArgs map[string]any
	}{
		{
			name:         "equality with table",
			filter:       dto.Filter{Field: "owner_id", Value: int64(7), Operator: dto.FilterOperatorEq, Table: "task_items"},
			expectedSQL:  "task_items.owner_id = :owner_id",
			expectedArgs: map[string]any{"owner_id": int64(7)},
		},
		{
			name:         "custom arg name",
			filter:       dto.Filter{ArgName: "uname", Field: "username", Value: "alice", Operator: dto.FilterOperatorEq},
			expectedSQL:  "username = :uname",
			expectedArgs: map[string]any{"uname": "alice"},
		},
		{
			name:         "unknown operator",
			filter:       dto.Filter{Field: "id", Operator: "between"},
			expectedSQL:  "",
			expectedArgs: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.expectedSQL, where)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	tests := []struct {
		name         string
		group        dto.FilterGroup
		expectedSQL  string
		expectedArgs map[string]any
	}{
		{
			name: "credentials",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorAnd,
				Filters: []any{
					dto.Filter{Field: "username", Value: "alice", Operator: dto.FilterOperatorEq, Table: "users"},
					dto.Filter{Field: "password", Value: "digest", Operator: dto.FilterOperatorEq, Table: "users"},
				},
			},
			expectedSQL:  "(users.username = :username AND users.password = :password)",
			expectedArgs: map[string]any{"username": "alice", "password": "digest"},
		},
		{
			name: "nested group",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorAnd,
				Filters: []any{
					dto.Filter{Field: "id", Value: int64(1), Operator: dto.FilterOperatorEq},
					dto.FilterGroup{
						Filters: []any{
							dto.Filter{Field: "owner_id", Value: int64(2), Operator: dto.FilterOperatorEq},
						},
					},
				},
			},
			expectedSQL:  "(id = :id AND (owner_id = :owner_id))",
			expectedArgs: map[string]any{"id": int64(1), "owner_id": int64(2)},
		},
		{
			name: "unusable filter is skipped",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorAnd,
				Filters: []any{
					dto.Filter{Field: "id", Operator: "between"},
					dto.Filter{Field: "status", Value: true, Operator: dto.FilterOperatorEq},
				},
			},
			expectedSQL:  "(status = :status)",
			expectedArgs: map[string]any{"status": true},
		},
		{
			name:         "empty",
			group:        dto.FilterGroup{},
			expectedSQL:  "",
			expectedArgs: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.group.GetWhereClause()

			assert.Equal(t, tt.expectedSQL, where)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}
