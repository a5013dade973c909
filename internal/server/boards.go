package server

import (
	"net/http"

	"planner/internal/domain/errors"
	"planner/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
)

func (API *PlannerAPI) createBoard(ctx *gin.Context) {
	var req models.CreateBoardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errors.ErrBadRequest.Error()})
		return
	}

	valid := validator.New()
	if err := valid.Struct(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validationErrorToErrorResponse(err).Error()})
		return
	}

	board, err := API.boards.CreateBoard(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"id": board.ID})
}

func (API *PlannerAPI) closeBoard(ctx *gin.Context) {
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

	if err := API.boards.CloseBoard(ctx.Request.Context(), req.ID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success"})
}

// listBoards принимает {"id": <team_id>} и возвращает доски команды.
func (API *PlannerAPI) listBoards(ctx *gin.Context) {
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

	boards, err := API.boards.ListBoards(ctx.Request.Context(), req.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	result := make([]gin.H, 0, len(boards))
	for _, b := range boards {
		result = append(result, gin.H{
			"id":   b.ID,
			"name": b.Name,
		})
	}
	ctx.JSON(http.StatusOK, result)
}

func (API *PlannerAPI) exportBoard(ctx *gin.Context) {
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

	fileName, err := API.boards.ExportBoard(ctx.Request.Context(), req.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"out_file": fileName})
}
