package shared

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"todoapi/shared/dto"
	"todoapi/shared/failure"
)

// TransformFields converts the db-tagged fields of a struct into a column map for a full-row update.
// Zero values are kept so that an update replaces every column; columns named in skip are left out.
func TransformFields(data any, skip ...string) map[string]any {
	val := reflect.Indirect(reflect.ValueOf(data))
	typ := val.Type()

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || slices.Contains(skip, fieldName) {
			continue
		}

		updatedFields[fieldName] = val.Field(index).Interface()
	}

	return updatedFields
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins a key prefix with its parts, e.g. "task:get:42".
func BuildCacheKey(prefix string, parts ...any) string {
	keys := []string{prefix}
	for _, part := range parts {
		keys = append(keys, fmt.Sprint(part))
	}

	return strings.Join(keys, ":")
}

// ParseID reads a path identifier. Anything that is not a base-10 int64 is a client error.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, failure.InvalidIDParam
	}

	return id, nil
}
