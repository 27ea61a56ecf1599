package dto

import (
	"time"
	"todoapi/internal/domains/task/model"
)

// TaskItemRequest is the body of create and update. Any id it carries is ignored.
type TaskItemRequest struct {
	ID          int64      `json:"id"          swaggerignore:"true"`
	Title       *string    `json:"title"       example:"Write report"`
	Description *string    `json:"description" example:"Quarterly numbers"`
	DueDate     *time.Time `json:"dueDate"     example:"2025-01-31T17:00:00Z"`
	Status      bool       `json:"status"`
	OwnerID     int64      `json:"ownerId"     example:"1"`
}

func (r *TaskItemRequest) ToModel() model.TaskItem {
	return model.TaskItem{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Status:      r.Status,
		OwnerID:     r.OwnerID,
	}
}

type TaskItemResponse struct {
	ID          int64      `json:"id"          example:"42"`
	Title       *string    `json:"title"       example:"Write report"`
	Description *string    `json:"description" example:"Quarterly numbers"`
	DueDate     *time.Time `json:"dueDate"     example:"2025-01-31T17:00:00Z"`
	Status      bool       `json:"status"`
	OwnerID     int64      `json:"ownerId"     example:"1"`
}

func (r *TaskItemResponse) FromModel(model model.TaskItem) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.DueDate = model.DueDate
	r.Status = model.Status
	r.OwnerID = model.OwnerID
}

func FromModels(models []model.TaskItem) []TaskItemResponse {
	res := make([]TaskItemResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
