package server

import (
	"net/http"

	"planner/internal/domain/errors"
	"planner/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
)

func (API *PlannerAPI) createUser(ctx *gin.Context) {
	var req models.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errors.ErrBadRequest.Error()})
		return
	}

	valid := validator.New()
	if err := valid.Struct(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validationErrorToErrorResponse(err).Error()})
		return
	}

	user, err := API.users.CreateUser(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"id": user.ID})
}

func (API *PlannerAPI) listUsers(ctx *gin.Context) {
	users, err := API.users.ListUsers(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	result := make([]gin.H, 0, len(users))
	for _, u := range users {
		result = append(result, gin.H{
			"name":          u.Name,
			"display_name":  u.DisplayName,
			"creation_time": u.CreationTime,
		})
	}
	ctx.JSON(http.StatusOK, result)
}

func (API *PlannerAPI) describeUser(ctx *gin.Context) {
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

	user, err := API.users.DescribeUser(ctx.Request.Context(), req.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"name":          user.Name,
		"display_name":  user.DisplayName,
		"creation_time": user.CreationTime,
	})
}

func (API *PlannerAPI) updateUser(ctx *gin.Context) {
	var req models.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errors.ErrBadRequest.Error()})
		return
	}

	valid := validator.New()
	if err := valid.Struct(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validationErrorToErrorResponse(err).Error()})
		return
	}

	if err := API.users.UpdateUser(ctx.Request.Context(), req.ID, req.User); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (API *PlannerAPI) userTeams(ctx *gin.Context) {
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

	teams, err := API.users.UserTeams(ctx.Request.Context(), req.ID)
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
		})
	}
	ctx.JSON(http.StatusOK, result)
}
