package planner

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"planner/internal/domain/errors"
	"planner/internal/domain/models"
)

var userNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateUserName проверяет имя пользователя: обязательное, не длиннее
// 64 символов, только латиница, цифры, дефис и подчёркивание.
func ValidateUserName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.ErrNameRequired
	}
	if utf8.RuneCountInString(name) > models.MaxNameLength {
		return "", errors.ErrNameTooLong
	}
	if !userNamePattern.MatchString(name) {
		return "", errors.ErrNameInvalidChars
	}
	return name, nil
}

// ValidateEntityName проверяет имена команд и досок и заголовки задач.
func ValidateEntityName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.ErrNameRequired
	}
	if utf8.RuneCountInString(name) > models.MaxNameLength {
		return "", errors.ErrNameTooLong
	}
	return name, nil
}

func ValidateDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if utf8.RuneCountInString(description) > models.MaxDescriptionLength {
		return "", errors.ErrDescriptionTooLong
	}
	return description, nil
}

// ValidateDisplayName допускает до 64 символов при создании
// и до 128 при обновлении.
func ValidateDisplayName(displayName string, isUpdate bool) (string, error) {
	displayName = strings.TrimSpace(displayName)
	maxLength := models.MaxDisplayNameLength
	if isUpdate {
		maxLength = models.MaxDisplayNameUpdateLength
	}
	if utf8.RuneCountInString(displayName) > maxLength {
		return "", errors.ErrDisplayNameTooLong
	}
	return displayName, nil
}

func ValidateTaskStatus(status string) error {
	switch status {
	case models.TaskStatusOpen, models.TaskStatusInProgress, models.TaskStatusComplete:
		return nil
	}
	return errors.ErrInvalidStatus
}

func userNameTaken(users []models.User, name, excludeID string) bool {
	for _, u := range users {
		if u.Name == name && u.ID != excludeID {
			return true
		}
	}
	return false
}

func teamNameTaken(teams []models.Team, name, excludeID string) bool {
	for _, t := range teams {
		if t.Name == name && t.ID != excludeID {
			return true
		}
	}
	return false
}

func boardNameTaken(boards []models.Board, teamID, name string) bool {
	for _, b := range boards {
		if b.TeamID == teamID && b.Name == name {
			return true
		}
	}
	return false
}

func taskTitleTaken(tasks []models.Task, boardID, title string) bool {
	for _, t := range tasks {
		if t.BoardID == boardID && t.Title == title {
			return true
		}
	}
	return false
}

func userExists(users []models.User, id string) bool {
	for _, u := range users {
		if u.ID == id {
			return true
		}
	}
	return false
}

func findUserIndex(users []models.User, id string) int {
	for i := range users {
		if users[i].ID == id {
			return i
		}
	}
	return -1
}

func findTeamIndex(teams []models.Team, id string) int {
	for i := range teams {
		if teams[i].ID == id {
			return i
		}
	}
	return -1
}

func findBoardIndex(boards []models.Board, id string) int {
	for i := range boards {
		if boards[i].ID == id {
			return i
		}
	}
	return -1
}

func findTaskIndex(tasks []models.Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// allBoardTasksComplete — условие закрытия доски.
func allBoardTasksComplete(tasks []models.Task, boardID string) bool {
	for _, t := range tasks {
		if t.BoardID == boardID && t.Status != models.TaskStatusComplete {
			return false
		}
	}
	return true
}

func containsMember(members []string, id string) bool {
	for _, m := range members {
		if m == id {
			return true
		}
	}
	return false
}
