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

func (p *Planner) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	name, err := ValidateUserName(req.Name)
	if err != nil {
		return nil, err
	}
	displayName, err := ValidateDisplayName(req.DisplayName, false)
	if err != nil {
		return nil, err
	}

	users, err := p.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	if userNameTaken(users, name, "") {
		return nil, errors.ErrUserNameTaken
	}

	if displayName == "" {
		displayName = name
	}
	user := models.User{
		ID:           uuid.New().String(),
		Name:         name,
		DisplayName:  displayName,
		CreationTime: time.Now().UTC(),
	}

	users = append(users, user)
	if err := p.store.Save(ctx, CollectionUsers, users); err != nil {
		return nil, err
	}
	log.Println("[SUCCESS] Пользователь успешно создан:", user.ID)
	return &user, nil
}

func (p *Planner) ListUsers(ctx context.Context) ([]models.User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.loadUsers(ctx)
}

func (p *Planner) DescribeUser(ctx context.Context, id string) (*models.User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	users, err := p.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	i := findUserIndex(users, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", errors.ErrUserNotFound, id)
	}
	return &users[i], nil
}

// UpdateUser меняет только отображаемое имя: имя пользователя неизменяемо.
func (p *Planner) UpdateUser(ctx context.Context, id string, patch models.UserPatch) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	displayName, err := ValidateDisplayName(patch.DisplayName, true)
	if err != nil {
		return err
	}

	users, err := p.loadUsers(ctx)
	if err != nil {
		return err
	}
	i := findUserIndex(users, id)
	if i < 0 {
		return fmt.Errorf("%w: %s", errors.ErrUserNotFound, id)
	}

	if patch.Name != "" && patch.Name != users[i].Name {
		return errors.ErrNameImmutable
	}
	if displayName != "" {
		users[i].DisplayName = displayName
	}

	if err := p.store.Save(ctx, CollectionUsers, users); err != nil {
		return err
	}
	log.Println("[SUCCESS] Пользователь успешно обновлен:", id)
	return nil
}

// UserTeams возвращает команды, в которых пользователь состоит участником.
func (p *Planner) UserTeams(ctx context.Context, id string) ([]models.Team, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	users, err := p.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	if !userExists(users, id) {
		return nil, fmt.Errorf("%w: %s", errors.ErrUserNotFound, id)
	}

	teams, err := p.loadTeams(ctx)
	if err != nil {
		return nil, err
	}

	userTeams := []models.Team{}
	for _, team := range teams {
		if containsMember(team.Members, id) {
			userTeams = append(userTeams, team)
		}
	}
	return userTeams, nil
}
