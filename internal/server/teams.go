package server

import (
	"net/http"

	"planner/internal/domain/errors"
	"planner/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
)

func (API *PlannerAPI) createTeam(ctx *gin.Context) {
	var req models.CreateTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errors.ErrBadRequest.Error()})
		return
	}

	valid := validator.New()
	if err := valid.Struct(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validationErrorToErrorResponse(err).Error()})
		return
	}

	team, err := API.teams.CreateTeam(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"id": team.ID})
}

func (API *PlannerAPI) listTeams(ctx *gin.Context) {
	teams, err := API.teams.ListTeams(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	result := make([]gin.H, 0, len(teams))
	for _, t := range teams {
		result = append(result, gin.H{
			"name":          t.Name,
			"description":   t.Description,
			"creation_time": t.CreationTime,
			"admin":         t.Admin,
		})
	}
	ctx.JSON(http.StatusOK, result)
}

func (API *PlannerAPI) describeTeam(ctx *gin.Context) {
	var req models.DescribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errors.ErrBadRequest.Error()})
		return
	}

	valid := validator.New()
	if err := valid.Struct(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validationErrorToErrorResponse(err).Error()})
		return
	}

	team, err := API.teams.DescribeTeam(ctx.Request.Context(), req.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"name":          team.Name,
		"description":   team.Description,
		"creation_time": team.CreationTime,
		"admin":         team.Admin,
	})
}

func (API *PlannerAPI) updateTeam(ctx *gin.Context) {
	var req models.UpdateTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errors.ErrBadRequest.Error()})
		return
	}

	valid := validator.New()
	if err := valid.Struct(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validationErrorToErrorResponse(err).Error()})
		return
	}

	if err := API.teams.UpdateTeam(ctx.Request.Context(), req.ID, req.Team); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (API *PlannerAPI) addUsersToTeam(ctx *gin.Context) {
	var req models.TeamUsersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errors.ErrBadRequest.Error()})
		return
	}

	valid := validator.New()
	if err := valid.Struct(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validationErrorToErrorResponse(err).Error()})
		return
	}

	if err := API.teams.AddUsersToTeam(ctx.Request.Context(), req.ID, req.Users); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (API *PlannerAPI) removeUsersFromTeam(ctx *gin.Context) {
	var req models.TeamUsersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errors.ErrBadRequest.Error()})
		return
	}

	valid := validator.New()
	if err := valid.Struct(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validationErrorToErrorResponse(err).Error()})
		return
	}

	if err := API.teams.RemoveUsersFromTeam(ctx.Request.Context(), req.ID, req.Users); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (API *PlannerAPI) teamUsers(ctx *gin.Context) {
	var req models.DescribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errors.ErrBadRequest.Error()})
		return
	}

	valid := validator.New()
	if err := valid.Struct(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validationErrorToErrorResponse(err).Error()})
		return
	}

	users, err := API.teams.TeamUsers(ctx.Request.Context(), req.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	result := make([]gin.H, 0, len(users))
	for _, u := range users {
		result = append(result, gin.H{
			"id":           u.ID,
			"name":         u.Name,
			"display_name": u.DisplayName,
		})
	}
	ctx.JSON(http.StatusOK, result)
}
