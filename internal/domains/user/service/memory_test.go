package service_test

import (
	"context"
	"slices"
	"sync"
	"todoapi/internal/domains/user/model"
	"todoapi/internal/domains/user/repository"
	gDto "todoapi/shared/dto"
)

// memoryRepository keeps users in a map and evaluates the equality filters the service builds.
type memoryRepository struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]model.User
}

var _ repository.User = (*memoryRepository)(nil)

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{rows: map[int64]model.User{}}
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

func matches(user model.User, values map[string]any) bool {
	for field, value := range values {
		switch field {
		case model.FieldID:
			if user.ID != value.(int64) {
				return false
			}
		case model.FieldUsername:
			if user.Username == nil || *user.Username != value.(string) {
				return false
			}
		case model.FieldPassword:
			if user.Password != value.(string) {
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
	for id, user := range m.rows {
		if matches(user, values) {
			ids = append(ids, id)
		}
	}

	slices.Sort(ids)

	return ids
}

func (m *memoryRepository) Insert(_ context.Context, user model.User) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	user.ID = m.nextID
	m.rows[user.ID] = user

	return user.ID, nil
}

func (m *memoryRepository) Get(_ context.Context, filter gDto.FilterGroup) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := m.selectIDs(filter)
	if len(ids) == 0 {
		return model.User{}, nil
	}

	return m.rows[ids[0]], nil
}

func (m *memoryRepository) GetAll(_ context.Context, filter gDto.FilterGroup) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	users := []model.User{}
	for _, id := range m.selectIDs(filter) {
		users = append(users, m.rows[id])
	}

	return users, nil
}

func (m *memoryRepository) Update(_ context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := m.selectIDs(filter)
	for _, id := range ids {
		user := m.rows[id]

		for column, value := range req {
			switch column {
			case model.FieldUsername:
				user.Username = value.(*string)
			case model.FieldEmail:
				user.Email = value.(*string)
			case model.FieldPassword:
				user.Password = value.(string)
			}
		}

		m.rows[id] = user
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
