package planner

import (
	"context"
	"sync"

	"planner/internal/domain/models"
)

// Planner реализует менеджеры сущностей поверх документного хранилища.
// Каждая операция выполняет полный цикл load-mutate-save; мьютекс
// обеспечивает единственного пишущего внутри процесса.
type Planner struct {
	store     Store
	exportDir string
	mu        sync.Mutex
}

func New(store Store, exportDir string) *Planner {
	if store == nil {
		return nil
	}
	return &Planner{
		store:     store,
		exportDir: exportDir,
	}
}

func (p *Planner) loadUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := p.store.Load(ctx, CollectionUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (p *Planner) loadTeams(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	if err := p.store.Load(ctx, CollectionTeams, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (p *Planner) loadBoards(ctx context.Context) ([]models.Board, error) {
	var boards []models.Board
	if err := p.store.Load(ctx, CollectionBoards, &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

func (p *Planner) loadTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := p.store.Load(ctx, CollectionTasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
