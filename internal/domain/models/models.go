package models

import "time"

const (
	BoardStatusOpen   = "OPEN"
	BoardStatusClosed = "CLOSED"

	TaskStatusOpen       = "OPEN"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusComplete   = "COMPLETE"
)

const (
	MaxNameLength              = 64
	MaxDescriptionLength       = 128
	MaxDisplayNameLength       = 64
	MaxDisplayNameUpdateLength = 128
	MaxTeamMembers             = 50
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	DisplayName  string    `json:"display_name"`
	CreationTime time.Time `json:"creation_time"`
}

type Team struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Admin        string    `json:"admin"`
	Members      []string  `json:"members"`
	CreationTime time.Time `json:"creation_time"`
}

type Board struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	TeamID       string     `json:"team_id"`
	Status       string     `json:"status"`
	CreationTime time.Time  `json:"creation_time"`
	EndTime      *time.Time `json:"end_time,omitempty"`
}

type Task struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	UserID       string    `json:"user_id"`
	BoardID      string    `json:"board_id"`
	Status       string    `json:"status"`
	CreationTime time.Time `json:"creation_time"`
}

type CreateUserRequest struct {
	Name        string `json:"name" validate:"required,max=64"`
	DisplayName string `json:"display_name" validate:"omitempty,max=64"`
}

type UserPatch struct {
	Name        string `json:"name" validate:"omitempty,max=64"`
	DisplayName string `json:"display_name" validate:"omitempty,max=128"`
}

type UpdateUserRequest struct {
	ID   string    `json:"id" validate:"required,uuid"`
	User UserPatch `json:"user"`
}

// DescribeRequest — общее тело {"id": ...} для describe, close и export.
type DescribeRequest struct {
	ID string `json:"id" validate:"required,uuid"`
}

type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required,max=64"`
	Description string `json:"description" validate:"omitempty,max=128"`
	Admin       string `json:"admin" validate:"required,uuid"`
}

type TeamPatch struct {
	Name        string `json:"name" validate:"omitempty,max=64"`
	Description string `json:"description" validate:"omitempty,max=128"`
	Admin       string `json:"admin" validate:"omitempty,uuid"`
}

type UpdateTeamRequest struct {
	ID   string    `json:"id" validate:"required,uuid"`
	Team TeamPatch `json:"team"`
}

type TeamUsersRequest struct {
	ID    string   `json:"id" validate:"required,uuid"`
	Users []string `json:"users" validate:"required,min=1,dive,uuid"`
}

type CreateBoardRequest struct {
	Name        string `json:"name" validate:"required,max=64"`
	Description string `json:"description" validate:"omitempty,max=128"`
	TeamID      string `json:"team_id" validate:"required,uuid"`
}

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,max=64"`
	Description string `json:"description" validate:"omitempty,max=128"`
	UserID      string `json:"user_id" validate:"omitempty,uuid"`
	BoardID     string `json:"board_id" validate:"required,uuid"`
}

type UpdateTaskStatusRequest struct {
	ID     string `json:"id" validate:"required,uuid"`
	Status string `json:"status" validate:"required,oneof=OPEN IN_PROGRESS COMPLETE"`
}
