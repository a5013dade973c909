package planner

import (
	"context"
	"strings"
	"testing"

	"planner/internal/domain/errors"
	"planner/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateTask(t *testing.T) {
	tests := []struct {
		name    string
		request func(p *Planner, boardID, userID string) models.CreateTaskRequest
		setup   func(t *testing.T, p *Planner, boardID string)
		want    struct {
			err error
		}
	}{
		{
			name: "successful creation with assignee",
			request: func(p *Planner, boardID, userID string) models.CreateTaskRequest {
				return models.CreateTaskRequest{Title: "task1", Description: "описание", BoardID: boardID, UserID: userID}
			},
			setup: func(t *testing.T, p *Planner, boardID string) {},
			want: struct {
				err error
			}{
				err: nil,
			},
		},
		{
			name: "successful creation without assignee",
			request: func(p *Planner, boardID, userID string) models.CreateTaskRequest {
				return models.CreateTaskRequest{Title: "task1", BoardID: boardID}
			},
			setup: func(t *testing.T, p *Planner, boardID string) {},
			want: struct {
				err error
			}{
				err: nil,
			},
		},
		{
			name: "duplicate title on the same board",
			request: func(p *Planner, boardID, userID string) models.CreateTaskRequest {
				return models.CreateTaskRequest{Title: "task1", BoardID: boardID}
			},
			setup: func(t *testing.T, p *Planner, boardID string) {
				_, err := p.CreateTask(context.Background(), models.CreateTaskRequest{Title: "task1", BoardID: boardID})
				assert.NoError(t, err)
			},
			want: struct {
				err error
			}{
				err: errors.ErrTaskTitleTaken,
			},
		},
		{
			name: "board does not exist",
			request: func(p *Planner, boardID, userID string) models.CreateTaskRequest {
				return models.CreateTaskRequest{Title: "task1", BoardID: "missing"}
			},
			setup: func(t *testing.T, p *Planner, boardID string) {},
			want: struct {
				err error
			}{
				err: errors.ErrBoardNotFound,
			},
		},
		{
			name: "board is closed",
			request: func(p *Planner, boardID, userID string) models.CreateTaskRequest {
				return models.CreateTaskRequest{Title: "task1", BoardID: boardID}
			},
			setup: func(t *testing.T, p *Planner, boardID string) {
				assert.NoError(t, p.CloseBoard(context.Background(), boardID))
			},
			want: struct {
				err error
			}{
				err: errors.ErrBoardNotOpen,
			},
		},
		{
			name: "assignee does not exist",
			request: func(p *Planner, boardID, userID string) models.CreateTaskRequest {
				return models.CreateTaskRequest{Title: "task1", BoardID: boardID, UserID: "missing"}
			},
			setup: func(t *testing.T, p *Planner, boardID string) {},
			want: struct {
				err error
			}{
				err: errors.ErrUserNotFound,
			},
		},
		{
			name: "title too long",
			request: func(p *Planner, boardID, userID string) models.CreateTaskRequest {
				return models.CreateTaskRequest{Title: strings.Repeat("t", 65), BoardID: boardID}
			},
			setup: func(t *testing.T, p *Planner, boardID string) {},
			want: struct {
				err error
			}{
				err: errors.ErrNameTooLong,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlanner(t)
			admin := mustCreateUser(t, p, "admin")
			team := mustCreateTeam(t, p, "t1", admin.ID)
			board := mustCreateBoard(t, p, "b1", team.ID)
			tt.setup(t, p, board.ID)

			task, err := p.CreateTask(context.Background(), tt.request(p, board.ID, admin.ID))

			if tt.want.err != nil {
				assert.ErrorIs(t, err, tt.want.err)
				assert.Nil(t, task)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, task.ID)
				assert.Equal(t, models.TaskStatusOpen, task.Status)
				assert.False(t, task.CreationTime.IsZero())
			}
		})
	}
}

func TestCreateTaskSameTitleDifferentBoards(t *testing.T) {
	p := newTestPlanner(t)
	ctx := context.Background()

	admin := mustCreateUser(t, p, "admin")
	team := mustCreateTeam(t, p, "t1", admin.ID)
	boardA := mustCreateBoard(t, p, "b1", team.ID)
	boardB := mustCreateBoard(t, p, "b2", team.ID)

	_, err := p.CreateTask(ctx, models.CreateTaskRequest{Title: "task1", BoardID: boardA.ID})
	assert.NoError(t, err)

	// Заголовок уникален только в пределах доски.
	_, err = p.CreateTask(ctx, models.CreateTaskRequest{Title: "task1", BoardID: boardB.ID})
	assert.NoError(t, err)
}

func TestUpdateTaskStatus(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   struct {
			err error
		}
	}{
		{
			name:   "to in progress",
			status: models.TaskStatusInProgress,
			want: struct {
				err error
			}{
				err: nil,
			},
		},
		{
			name:   "to complete",
			status: models.TaskStatusComplete,
			want: struct {
				err error
			}{
				err: nil,
			},
		},
		{
			name:   "back to open",
			status: models.TaskStatusOpen,
			want: struct {
				err error
			}{
				err: nil,
			},
		},
		{
			name:   "unknown status",
			status: "DONE",
			want: struct {
				err error
			}{
				err: errors.ErrInvalidStatus,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlanner(t)
			ctx := context.Background()

			admin := mustCreateUser(t, p, "admin")
			team := mustCreateTeam(t, p, "t1", admin.ID)
			board := mustCreateBoard(t, p, "b1", team.ID)
			task, err := p.CreateTask(ctx, models.CreateTaskRequest{Title: "task1", BoardID: board.ID})
			assert.NoError(t, err)

			err = p.UpdateTaskStatus(ctx, task.ID, tt.status)

			if tt.want.err != nil {
				assert.ErrorIs(t, err, tt.want.err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateTaskStatusNotFound(t *testing.T) {
	p := newTestPlanner(t)

	err := p.UpdateTaskStatus(context.Background(), "missing", models.TaskStatusComplete)
	assert.ErrorIs(t, err, errors.ErrTaskNotFound)
}
