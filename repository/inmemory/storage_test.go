package storage

import (
	"context"
	"testing"

	"planner/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func TestNewStorage(t *testing.T) {
	tests := []struct {
		name string
		want struct {
			notNil bool
			empty  bool
		}
	}{
		{
			name: "create new storage instance",
			want: struct {
				notNil bool
				empty  bool
			}{
				notNil: true,
				empty:  true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := NewStorage()

			assert.Equal(t, tt.want.notNil, storage != nil)
			assert.Equal(t, tt.want.empty, len(storage.collections) == 0)
		})
	}
}

func TestStorageLoadMissingCollection(t *testing.T) {
	storage := NewStorage()

	var tasks []models.Task
	err := storage.Load(context.Background(), "tasks", &tasks)

	assert.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestStorageSaveAndLoad(t *testing.T) {
	storage := NewStorage()

	tasks := []models.Task{
		{ID: "task1", Title: "task1", BoardID: "board1", Status: models.TaskStatusOpen},
	}
	assert.NoError(t, storage.Save(context.Background(), "tasks", tasks))

	var loaded []models.Task
	err := storage.Load(context.Background(), "tasks", &loaded)

	assert.NoError(t, err)
	assert.Equal(t, tasks, loaded)
}
