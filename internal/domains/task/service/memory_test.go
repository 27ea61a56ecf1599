package service_test

import (
	"context"
	"slices"
	"sync"
	"time"
	"todoapi/internal/domains/task/model"
	"todoapi/internal/domains/task/repository"
	gDto "todoapi/shared/dto"
)

// memoryRepository is an in-process stand-in for the task table. It understands the equality
// filters the service builds.
type memoryRepository struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]model.TaskItem
}

var _ repository.Task = (*memoryRepository)(nil)

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{rows: map[int64]model.TaskItem{}}
}

func equalities(filter gDto.FilterGroup) map[string]any {
	values := map[string]any{}

	for _, f := range filter.Filters {
		switch fill := f.(type) {
		case gDto.Filter:
			if fill.Operator == gDto.FilterOperatorEq {
				values[fill.Field] = fill.Value
			}
		case gDto.FilterGroup:
			for k, v := range equalities(fill) {
				values[k] = v
			}
		}
	}

	return values
}

func matches(task model.TaskItem, values map[string]any) bool {
	for field, value := range values {
		switch field {
		case model.FieldID:
			if task.ID != value.(int64) {
				return false
			}
		case model.FieldOwnerID:
			if task.OwnerID != value.(int64) {
				return false
			}
		default:
			return false
		}
	}

	return true
}

func (m *memoryRepository) selectIDs(filter gDto.FilterGroup) []int64 {
	values := equalities(filter)

	ids := []int64{}
	for id, task := range m.rows {
		if matches(task, values) {
			ids = append(ids, id)
		}
	}

	slices.Sort(ids)

	return ids
}

func (m *memoryRepository) Insert(_ context.Context, task model.TaskItem) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	task.ID = m.nextID
	m.rows[task.ID] = task

	return task.ID, nil
}

func (m *memoryRepository) Get(_ context.Context, filter gDto.FilterGroup) (model.TaskItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := m.selectIDs(filter)
	if len(ids) == 0 {
		return model.TaskItem{}, nil
	}

	return m.rows[ids[0]], nil
}

func (m *memoryRepository) GetAll(_ context.Context, filter gDto.FilterGroup) ([]model.TaskItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tasks := []model.TaskItem{}
	for _, id := range m.selectIDs(filter) {
		tasks = append(tasks, m.rows[id])
	}

	return tasks, nil
}

func (m *memoryRepository) Update(_ context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := m.selectIDs(filter)
	for _, id := range ids {
		task := m.rows[id]

		for column, value := range req {
			switch column {
			case model.FieldTitle:
				task.Title = value.(*string)
			case model.FieldDescription:
				task.Description = value.(*string)
			case model.FieldDueDate:
				task.DueDate = value.(*time.Time)
			case model.FieldStatus:
				task.Status = value.(bool)
			case model.FieldOwnerID:
				task.OwnerID = value.(int64)
			}
		}

		m.rows[id] = task
	}

	return int64(len(ids)), nil
}

func (m *memoryRepository) Delete(_ context.Context, filter gDto.FilterGroup) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := m.selectIDs(filter)
	for _, id := range ids {
		delete(m.rows, id)
	}

	return int64(len(ids)), nil
}

func (m *memoryRepository) Flip(_ context.Context, _ string, filter gDto.FilterGroup) (model.TaskItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := m.selectIDs(filter)
	if len(ids) == 0 {
		return model.TaskItem{}, nil
	}

	task := m.rows[ids[0]]
	task.Status = !task.Status
	m.rows[task.ID] = task

	return task, nil
}
