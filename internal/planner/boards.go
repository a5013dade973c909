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

func (p *Planner) CreateBoard(ctx context.Context, req models.CreateBoardRequest) (*models.Board, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	name, err := ValidateEntityName(req.Name)
	if err != nil {
		return nil, err
	}
	description, err := ValidateDescription(req.Description)
	if err != nil {
		return nil, err
	}

	teams, err := p.loadTeams(ctx)
	if err != nil {
		return nil, err
	}
	if findTeamIndex(teams, req.TeamID) < 0 {
		return nil, fmt.Errorf("%w: %s", errors.ErrTeamNotFound, req.TeamID)
	}

	boards, err := p.loadBoards(ctx)
	if err != nil {
		return nil, err
	}
	if boardNameTaken(boards, req.TeamID, name) {
		return nil, errors.ErrBoardNameTaken
	}

	board := models.Board{
		ID:           uuid.New().String(),
		Name:         name,
		Description:  description,
		TeamID:       req.TeamID,
		Status:       models.BoardStatusOpen,
		CreationTime: time.Now().UTC(),
	}

	boards = append(boards, board)
	if err := p.store.Save(ctx, CollectionBoards, boards); err != nil {
		return nil, err
	}
	log.Println("[SUCCESS] Доска успешно создана:", board.ID)
	return &board, nil
}

// CloseBoard переводит доску в CLOSED, если все её задачи завершены.
// Закрытая доска не открывается повторно.
func (p *Planner) CloseBoard(ctx context.Context, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	boards, err := p.loadBoards(ctx)
	if err != nil {
		return err
	}
	i := findBoardIndex(boards, id)
	if i < 0 {
		return fmt.Errorf("%w: %s", errors.ErrBoardNotFound, id)
	}
	if boards[i].Status == models.BoardStatusClosed {
		return errors.ErrBoardAlreadyClosed
	}

	tasks, err := p.loadTasks(ctx)
	if err != nil {
		return err
	}
	if !allBoardTasksComplete(tasks, id) {
		return errors.ErrBoardTasksIncomplete
	}

	now := time.Now().UTC()
	boards[i].Status = models.BoardStatusClosed
	boards[i].EndTime = &now

	if err := p.store.Save(ctx, CollectionBoards, boards); err != nil {
		return err
	}
	log.Println("[SUCCESS] Доска закрыта:", id)
	return nil
}

func (p *Planner) ListBoards(ctx context.Context, teamID string) ([]models.Board, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	boards, err := p.loadBoards(ctx)
	if err != nil {
		return nil, err
	}

	teamBoards := []models.Board{}
	for _, b := range boards {
		if b.TeamID == teamID {
			teamBoards = append(teamBoards, b)
		}
	}
	return teamBoards, nil
}
