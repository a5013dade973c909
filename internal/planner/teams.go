package planner

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"planner/internal/domain/errors"
	"planner/internal/domain/models"

	"github.com/google/uuid"
)

func (p *Planner) CreateTeam(ctx context.Context, req models.CreateTeamRequest) (*models.Team, error) {
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

	users, err := p.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	if !userExists(users, req.Admin) {
		return nil, fmt.Errorf("%w: %s", errors.ErrAdminNotFound, req.Admin)
	}

	teams, err := p.loadTeams(ctx)
	if err != nil {
		return nil, err
	}
	if teamNameTaken(teams, name, "") {
		return nil, errors.ErrTeamNameTaken
	}

	// Администратор автоматически становится участником.
	team := models.Team{
		ID:           uuid.New().String(),
		Name:         name,
		Description:  description,
		Admin:        req.Admin,
		Members:      []string{req.Admin},
		CreationTime: time.Now().UTC(),
	}

	teams = append(teams, team)
	if err := p.store.Save(ctx, CollectionTeams, teams); err != nil {
		return nil, err
	}
	log.Println("[SUCCESS] Команда успешно создана:", team.ID)
	return &team, nil
}

func (p *Planner) ListTeams(ctx context.Context) ([]models.Team, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.loadTeams(ctx)
}

func (p *Planner) DescribeTeam(ctx context.Context, id string) (*models.Team, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	teams, err := p.loadTeams(ctx)
	if err != nil {
		return nil, err
	}
	i := findTeamIndex(teams, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", errors.ErrTeamNotFound, id)
	}
	return &teams[i], nil
}

func (p *Planner) UpdateTeam(ctx context.Context, id string, patch models.TeamPatch) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var name, description string
	var err error
	if patch.Name != "" {
		if name, err = ValidateEntityName(patch.Name); err != nil {
			return err
		}
	}
	if patch.Description != "" {
		if description, err = ValidateDescription(patch.Description); err != nil {
			return err
		}
	}

	teams, err := p.loadTeams(ctx)
	if err != nil {
		return err
	}
	i := findTeamIndex(teams, id)
	if i < 0 {
		return fmt.Errorf("%w: %s", errors.ErrTeamNotFound, id)
	}

	if name != "" && teamNameTaken(teams, name, id) {
		return errors.ErrTeamNameTaken
	}

	if patch.Admin != "" {
		users, err := p.loadUsers(ctx)
		if err != nil {
			return err
		}
		if !userExists(users, patch.Admin) {
			return fmt.Errorf("%w: %s", errors.ErrAdminNotFound, patch.Admin)
		}
		if !containsMember(teams[i].Members, patch.Admin) {
			teams[i].Members = append(teams[i].Members, patch.Admin)
			sort.Strings(teams[i].Members)
		}
		teams[i].Admin = patch.Admin
	}
	if name != "" {
		teams[i].Name = name
	}
	if description != "" {
		teams[i].Description = description
	}

	if err := p.store.Save(ctx, CollectionTeams, teams); err != nil {
		return err
	}
	log.Println("[SUCCESS] Команда успешно обновлена:", id)
	return nil
}

func (p *Planner) AddUsersToTeam(ctx context.Context, id string, userIDs []string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	users, err := p.loadUsers(ctx)
	if err != nil {
		return err
	}
	for _, userID := range userIDs {
		if !userExists(users, userID) {
			return fmt.Errorf("%w: %s", errors.ErrMemberNotFound, userID)
		}
	}

	teams, err := p.loadTeams(ctx)
	if err != nil {
		return err
	}
	i := findTeamIndex(teams, id)
	if i < 0 {
		return fmt.Errorf("%w: %s", errors.ErrTeamNotFound, id)
	}

	members := teams[i].Members
	for _, userID := range userIDs {
		if !containsMember(members, userID) {
			members = append(members, userID)
		}
	}
	if len(members) > models.MaxTeamMembers {
		return errors.ErrTeamFull
	}
	sort.Strings(members)
	teams[i].Members = members

	if err := p.store.Save(ctx, CollectionTeams, teams); err != nil {
		return err
	}
	log.Println("[SUCCESS] Участники добавлены в команду:", id)
	return nil
}

func (p *Planner) RemoveUsersFromTeam(ctx context.Context, id string, userIDs []string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	teams, err := p.loadTeams(ctx)
	if err != nil {
		return err
	}
	i := findTeamIndex(teams, id)
	if i < 0 {
		return fmt.Errorf("%w: %s", errors.ErrTeamNotFound, id)
	}

	for _, userID := range userIDs {
		if userID == teams[i].Admin {
			return errors.ErrAdminRemoval
		}
	}

	removed := make(map[string]bool, len(userIDs))
	for _, userID := range userIDs {
		removed[userID] = true
	}
	members := teams[i].Members[:0]
	for _, m := range teams[i].Members {
		if !removed[m] {
			members = append(members, m)
		}
	}
	teams[i].Members = members

	if err := p.store.Save(ctx, CollectionTeams, teams); err != nil {
		return err
	}
	log.Println("[SUCCESS] Участники удалены из команды:", id)
	return nil
}

// TeamUsers возвращает данные участников команды в порядке списка members.
func (p *Planner) TeamUsers(ctx context.Context, id string) ([]models.User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	teams, err := p.loadTeams(ctx)
	if err != nil {
		return nil, err
	}
	i := findTeamIndex(teams, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", errors.ErrTeamNotFound, id)
	}

	users, err := p.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	members := []models.User{}
	for _, memberID := range teams[i].Members {
		if u, ok := byID[memberID]; ok {
			members = append(members, u)
		}
	}
	return members, nil
}
