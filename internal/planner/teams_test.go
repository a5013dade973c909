package planner

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"

	"planner/internal/domain/errors"
	"planner/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateTeam(t *testing.T) {
	tests := []struct {
		name    string
		request func(admin string) models.CreateTeamRequest
		setup   func(t *testing.T, p *Planner, admin string)
		want    struct {
			err error
		}
	}{
		{
			name: "successful creation",
			request: func(admin string) models.CreateTeamRequest {
				return models.CreateTeamRequest{Name: "t1", Description: "первая команда", Admin: admin}
			},
			setup: func(t *testing.T, p *Planner, admin string) {},
			want: struct {
				err error
			}{
				err: nil,
			},
		},
		{
			name: "duplicate team name",
			request: func(admin string) models.CreateTeamRequest {
				return models.CreateTeamRequest{Name: "t1", Admin: admin}
			},
			setup: func(t *testing.T, p *Planner, admin string) {
				mustCreateTeam(t, p, "t1", admin)
			},
			want: struct {
				err error
			}{
				err: errors.ErrTeamNameTaken,
			},
		},
		{
			name: "admin does not exist",
			request: func(admin string) models.CreateTeamRequest {
				return models.CreateTeamRequest{Name: "t1", Admin: "missing"}
			},
			setup: func(t *testing.T, p *Planner, admin string) {},
			want: struct {
				err error
			}{
				err: errors.ErrAdminNotFound,
			},
		},
		{
			name: "description too long",
			request: func(admin string) models.CreateTeamRequest {
				return models.CreateTeamRequest{Name: "t1", Description: strings.Repeat("d", 129), Admin: admin}
			},
			setup: func(t *testing.T, p *Planner, admin string) {},
			want: struct {
				err error
			}{
				err: errors.ErrDescriptionTooLong,
			},
		},
		{
			// Лимиты считаются в символах, не в байтах.
			name: "cyrillic name at the limit",
			request: func(admin string) models.CreateTeamRequest {
				return models.CreateTeamRequest{Name: strings.Repeat("я", 64), Admin: admin}
			},
			setup: func(t *testing.T, p *Planner, admin string) {},
			want: struct {
				err error
			}{
				err: nil,
			},
		},
		{
			name: "cyrillic name over the limit",
			request: func(admin string) models.CreateTeamRequest {
				return models.CreateTeamRequest{Name: strings.Repeat("я", 65), Admin: admin}
			},
			setup: func(t *testing.T, p *Planner, admin string) {},
			want: struct {
				err error
			}{
				err: errors.ErrNameTooLong,
			},
		},
		{
			name: "cyrillic description at the limit",
			request: func(admin string) models.CreateTeamRequest {
				return models.CreateTeamRequest{Name: "t1", Description: strings.Repeat("я", 128), Admin: admin}
			},
			setup: func(t *testing.T, p *Planner, admin string) {},
			want: struct {
				err error
			}{
				err: nil,
			},
		},
		{
			name: "cyrillic description over the limit",
			request: func(admin string) models.CreateTeamRequest {
				return models.CreateTeamRequest{Name: "t1", Description: strings.Repeat("я", 129), Admin: admin}
			},
			setup: func(t *testing.T, p *Planner, admin string) {},
			want: struct {
				err error
			}{
				err: errors.ErrDescriptionTooLong,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlanner(t)
			admin := mustCreateUser(t, p, "admin")
			tt.setup(t, p, admin.ID)

			team, err := p.CreateTeam(context.Background(), tt.request(admin.ID))

			if tt.want.err != nil {
				assert.ErrorIs(t, err, tt.want.err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, team.ID)
				assert.Equal(t, []string{admin.ID}, team.Members, "администратор автоматически участник")
			}
		})
	}
}

func TestAddUsersToTeam(t *testing.T) {
	p := newTestPlanner(t)
	ctx := context.Background()

	admin := mustCreateUser(t, p, "admin")
	team := mustCreateTeam(t, p, "t1", admin.ID)
	bob := mustCreateUser(t, p, "bob")

	assert.NoError(t, p.AddUsersToTeam(ctx, team.ID, []string{bob.ID}))

	// Повторное добавление — no-op, участники остаются множеством.
	assert.NoError(t, p.AddUsersToTeam(ctx, team.ID, []string{bob.ID}))

	described, err := p.DescribeTeam(ctx, team.ID)
	assert.NoError(t, err)
	assert.Len(t, described.Members, 2)
	assert.True(t, sort.StringsAreSorted(described.Members))

	err = p.AddUsersToTeam(ctx, team.ID, []string{"missing"})
	assert.ErrorIs(t, err, errors.ErrMemberNotFound)

	err = p.AddUsersToTeam(ctx, "missing", []string{bob.ID})
	assert.ErrorIs(t, err, errors.ErrTeamNotFound)
}

func TestAddUsersToTeamMemberLimit(t *testing.T) {
	p := newTestPlanner(t)
	ctx := context.Background()

	admin := mustCreateUser(t, p, "admin")
	team := mustCreateTeam(t, p, "t1", admin.ID)

	// Добиваем команду до 50 участников включая администратора.
	ids := make([]string, 0, models.MaxTeamMembers-1)
	for i := 0; i < models.MaxTeamMembers-1; i++ {
		u := mustCreateUser(t, p, fmt.Sprintf("user%02d", i))
		ids = append(ids, u.ID)
	}
	assert.NoError(t, p.AddUsersToTeam(ctx, team.ID, ids))

	described, err := p.DescribeTeam(ctx, team.ID)
	assert.NoError(t, err)
	assert.Len(t, described.Members, models.MaxTeamMembers)

	extra := mustCreateUser(t, p, "extra")
	err = p.AddUsersToTeam(ctx, team.ID, []string{extra.ID})
	assert.ErrorIs(t, err, errors.ErrTeamFull, "51-й участник не должен добавляться")

	described, err = p.DescribeTeam(ctx, team.ID)
	assert.NoError(t, err)
	assert.Len(t, described.Members, models.MaxTeamMembers)
}

func TestRemoveUsersFromTeam(t *testing.T) {
	p := newTestPlanner(t)
	ctx := context.Background()

	admin := mustCreateUser(t, p, "admin")
	bob := mustCreateUser(t, p, "bob")
	team := mustCreateTeam(t, p, "t1", admin.ID)
	assert.NoError(t, p.AddUsersToTeam(ctx, team.ID, []string{bob.ID}))

	err := p.RemoveUsersFromTeam(ctx, team.ID, []string{admin.ID})
	assert.ErrorIs(t, err, errors.ErrAdminRemoval)

	assert.NoError(t, p.RemoveUsersFromTeam(ctx, team.ID, []string{bob.ID}))

	described, err := p.DescribeTeam(ctx, team.ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{admin.ID}, described.Members)
}

func TestUpdateTeam(t *testing.T) {
	p := newTestPlanner(t)
	ctx := context.Background()

	admin := mustCreateUser(t, p, "admin")
	successor := mustCreateUser(t, p, "successor")
	team := mustCreateTeam(t, p, "t1", admin.ID)
	mustCreateTeam(t, p, "t2", admin.ID)

	err := p.UpdateTeam(ctx, team.ID, models.TeamPatch{Name: "t2"})
	assert.ErrorIs(t, err, errors.ErrTeamNameTaken)

	err = p.UpdateTeam(ctx, team.ID, models.TeamPatch{Admin: "missing"})
	assert.ErrorIs(t, err, errors.ErrAdminNotFound)

	assert.NoError(t, p.UpdateTeam(ctx, team.ID, models.TeamPatch{Name: "t1-renamed", Admin: successor.ID}))

	described, err := p.DescribeTeam(ctx, team.ID)
	assert.NoError(t, err)
	assert.Equal(t, "t1-renamed", described.Name)
	assert.Equal(t, successor.ID, described.Admin)
	assert.Contains(t, described.Members, successor.ID, "новый администратор попадает в участники")

	err = p.UpdateTeam(ctx, "missing", models.TeamPatch{Name: "x"})
	assert.ErrorIs(t, err, errors.ErrTeamNotFound)
}

func TestTeamUsers(t *testing.T) {
	p := newTestPlanner(t)
	ctx := context.Background()

	admin := mustCreateUser(t, p, "admin")
	bob := mustCreateUser(t, p, "bob")
	team := mustCreateTeam(t, p, "t1", admin.ID)
	assert.NoError(t, p.AddUsersToTeam(ctx, team.ID, []string{bob.ID}))

	users, err := p.TeamUsers(ctx, team.ID)
	assert.NoError(t, err)
	assert.Len(t, users, 2)

	names := []string{users[0].Name, users[1].Name}
	sort.Strings(names)
	assert.Equal(t, []string{"admin", "bob"}, names)

	_, err = p.TeamUsers(ctx, "missing")
	assert.ErrorIs(t, err, errors.ErrTeamNotFound)
}
