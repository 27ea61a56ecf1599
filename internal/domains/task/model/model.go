package model

import "time"

const (
	TableName  = "task_items"
	EntityName = "task_item"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldDueDate     = "due_date"
	FieldStatus      = "status"
	FieldOwnerID     = "owner_id"
)

type TaskItem struct {
	ID          int64      `db:"id"`
	Title       *string    `db:"title"`
	Description *string    `db:"description"`
	DueDate     *time.Time `db:"due_date"`
	Status      bool       `db:"status"`
	OwnerID     int64      `db:"owner_id"`
}
