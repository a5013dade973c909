package planner

import (
	"context"
	"fmt"
	"log"
	"time"

	"planner/internal/domain/errors"
	"planner/internal/domain/models"

	"github.com/google/uuid"
)

func (p *Planner) CreateTask(ctx context.Context, req models.CreateTaskRequest) (*models.Task, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	title, err := ValidateEntityName(req.Title)
	if err != nil {
		return nil, err
	}
	description, err := ValidateDescription(req.Description)
	if err != nil {
		return nil, err
	}

	if req.UserID != "" {
		users, err := p.loadUsers(ctx)
		if err != nil {
			return nil, err
		}
		if !userExists(users, req.UserID) {
			return nil, fmt.Errorf("%w: %s", errors.ErrUserNotFound, req.UserID)
		}
	}

	boards, err := p.loadBoards(ctx)
	if err != nil {
		return nil, err
	}
	bi := findBoardIndex(boards, req.BoardID)
	if bi < 0 {
		return nil, fmt.Errorf("%w: %s", errors.ErrBoardNotFound, req.BoardID)
	}
	if boards[bi].Status != models.BoardStatusOpen {
		return nil, errors.ErrBoardNotOpen
	}

	tasks, err := p.loadTasks(ctx)
	if err != nil {
		return nil, err
	}
	if taskTitleTaken(tasks, req.BoardID, title) {
		return nil, errors.ErrTaskTitleTaken
	}

	task := models.Task{
		ID:           uuid.New().String(),
		Title:        title,
		Description:  description,
		UserID:       req.UserID,
		BoardID:      req.BoardID,
		Status:       models.TaskStatusOpen,
		CreationTime: time.Now().UTC(),
	}

	tasks = append(tasks, task)
	if err := p.store.Save(ctx, CollectionTasks, tasks); err != nil {
		return nil, err
	}
	log.Println("[SUCCESS] Задача успешно создана:", task.ID)
	return &task, nil
}

// UpdateTaskStatus допускает любой статус из набора, переходы не ограничены.
func (p *Planner) UpdateTaskStatus(ctx context.Context, id, status string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := ValidateTaskStatus(status); err != nil {
		return err
	}

	tasks, err := p.loadTasks(ctx)
	if err != nil {
		return err
	}
	i := findTaskIndex(tasks, id)
	if i < 0 {
		return fmt.Errorf("%w: %s", errors.ErrTaskNotFound, id)
	}

	tasks[i].Status = status
	if err := p.store.Save(ctx, CollectionTasks, tasks); err != nil {
		return err
	}
	log.Println("[SUCCESS] Статус задачи обновлён:", id)
	return nil
}
