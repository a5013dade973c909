package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"

	"planner/internal/domain/errors"
	"planner/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
)

type UserRepository interface {
	CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DescribeUser(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, patch models.UserPatch) error
	UserTeams(ctx context.Context, id string) ([]models.Team, error)
}

type TeamRepository interface {
	CreateTeam(ctx context.Context, req models.CreateTeamRequest) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	DescribeTeam(ctx context.Context, id string) (*models.Team, error)
	UpdateTeam(ctx context.Context, id string, patch models.TeamPatch) error
	AddUsersToTeam(ctx context.Context, id string, userIDs []string) error
	RemoveUsersFromTeam(ctx context.Context, id string, userIDs []string) error
	TeamUsers(ctx context.Context, id string) ([]models.User, error)
}

type BoardRepository interface {
	CreateBoard(ctx context.Context, req models.CreateBoardRequest) (*models.Board, error)
	CloseBoard(ctx context.Context, id string) error
	ListBoards(ctx context.Context, teamID string) ([]models.Board, error)
	ExportBoard(ctx context.Context, id string) (string, error)
}

type TaskRepository interface {
	CreateTask(ctx context.Context, req models.CreateTaskRequest) (*models.Task, error)
	UpdateTaskStatus(ctx context.Context, id, status string) error
}

type PlannerAPI struct {
	httpSrv *http.Server
	users   UserRepository
	teams   TeamRepository
	boards  BoardRepository
	tasks   TaskRepository
}

func NewPlannerAPI(users UserRepository, teams TeamRepository, boards BoardRepository, tasks TaskRepository, cfg *Config) *PlannerAPI {
	if users == nil || teams == nil || boards == nil || tasks == nil {
		return nil
	}

	addr := ":8080"
	if cfg != nil {
		addr = fmt.Sprintf("%s:%d", cfg.Addr, cfg.Port)
	}

	API := PlannerAPI{
		httpSrv: &http.Server{Addr: addr},
		users:   users,
		teams:   teams,
		boards:  boards,
		tasks:   tasks,
	}

	API.configRoutes()

	return &API
}

func (API *PlannerAPI) Start() error {
	if API.httpSrv == nil {
		return errors.ErrInternalServer
	}

	if API.httpSrv.Addr == "" {
		API.httpSrv.Addr = ":8080"
	}

	return API.httpSrv.ListenAndServe()
}

func (API *PlannerAPI) Shutdown(ctx context.Context) error {
	if API.httpSrv == nil {
		return errors.ErrInternalServer
	}
	return API.httpSrv.Shutdown(ctx)
}

func (API *PlannerAPI) configRoutes() {
	router := gin.Default()
	router.HandleMethodNotAllowed = true

	router.Use(GzipRequestDecompress(), GzipResponseCompress())

	router.NoMethod(func(ctx *gin.Context) {
		ctx.JSON(http.StatusMethodNotAllowed, gin.H{"error": "использован некорректный HTTP-метод"})
	})

	api := router.Group("/api")

	users := api.Group("/users")
	{
		users.POST("/create/", API.createUser)
		users.GET("/list/", API.listUsers)
		users.POST("/describe/", API.describeUser)
		users.PUT("/update/", API.updateUser)
		users.POST("/teams/", API.userTeams)
	}

	teams := api.Group("/teams")
	{
		teams.POST("/create/", API.createTeam)
		teams.GET("/list/", API.listTeams)
		teams.POST("/describe/", API.describeTeam)
		teams.PUT("/update/", API.updateTeam)
		teams.POST("/add_users/", API.addUsersToTeam)
		teams.POST("/remove_users/", API.removeUsersFromTeam)
		teams.POST("/users/", API.teamUsers)
	}

	boards := api.Group("/boards")
	{
		boards.POST("/create/", API.createBoard)
		boards.POST("/close/", API.closeBoard)
		boards.POST("/list/", API.listBoards)
		boards.POST("/export/", API.exportBoard)
	}

	tasks := api.Group("/tasks")
	{
		tasks.POST("/create/", API.createTask)
		tasks.PUT("/update_status/", API.updateTaskStatus)
	}

	API.httpSrv.Handler = router
}

// errorStatus отображает таксономию ошибок на HTTP-статусы:
// не найдено — 404, хранилище — 500, остальное — валидация, 400.
func errorStatus(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrUserNotFound),
		stderrors.Is(err, errors.ErrTeamNotFound),
		stderrors.Is(err, errors.ErrBoardNotFound),
		stderrors.Is(err, errors.ErrTaskNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, errors.ErrStorage):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func respondError(ctx *gin.Context, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		ctx.JSON(status, gin.H{"error": errors.ErrInternalServer.Error()})
		return
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}

func validationErrorToErrorResponse(err error) error {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, verr := range verrs {
			switch verr.Field() {
			case "Name", "Title":
				if verr.Tag() == "max" {
					return errors.ErrNameTooLong
				}
				return errors.ErrNameRequired
			case "DisplayName":
				return errors.ErrDisplayNameTooLong
			case "Description":
				return errors.ErrDescriptionTooLong
			case "Status":
				return errors.ErrInvalidStatus
			case "ID", "Admin", "TeamID", "BoardID", "UserID", "Users":
				return errors.ErrInvalidID
			}
		}
	}
	return errors.ErrValidationFailed
}
