package planner

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"planner/internal/domain/errors"
	"planner/internal/domain/models"
)

// ExportBoard выгружает доску и её задачи в текстовый файл каталога
// экспорта и возвращает имя файла. Состояние хранилища не меняется.
func (p *Planner) ExportBoard(ctx context.Context, id string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	boards, err := p.loadBoards(ctx)
	if err != nil {
		return "", err
	}
	i := findBoardIndex(boards, id)
	if i < 0 {
		return "", fmt.Errorf("%w: %s", errors.ErrBoardNotFound, id)
	}
	board := boards[i]

	tasks, err := p.loadTasks(ctx)
	if err != nil {
		return "", err
	}
	boardTasks := []models.Task{}
	for _, t := range tasks {
		if t.BoardID == id {
			boardTasks = append(boardTasks, t)
		}
	}

	if err := os.MkdirAll(p.exportDir, 0o755); err != nil {
		log.Println("[ERROR] Не удалось создать каталог экспорта:", err)
		return "", fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}

	shortID := board.ID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}
	fileName := fmt.Sprintf("board_%s_%s.txt", sanitizeFileName(board.Name), shortID)

	content := renderBoardExport(board, boardTasks)
	if err := os.WriteFile(filepath.Join(p.exportDir, fileName), []byte(content), 0o644); err != nil {
		log.Println("[ERROR] Не удалось записать файл экспорта:", err)
		return "", fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}

	log.Println("[SUCCESS] Доска экспортирована:", fileName)
	return fileName, nil
}

func sanitizeFileName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func renderBoardExport(board models.Board, tasks []models.Task) string {
	var b strings.Builder
	line := strings.Repeat("=", 60)

	fmt.Fprintln(&b, line)
	fmt.Fprintf(&b, "BOARD EXPORT: %s\n", board.Name)
	fmt.Fprintln(&b, line)
	fmt.Fprintf(&b, "Description: %s\n", orNA(board.Description))
	fmt.Fprintf(&b, "Team ID: %s\n", board.TeamID)
	fmt.Fprintf(&b, "Status: %s\n", board.Status)
	fmt.Fprintf(&b, "Created: %s\n", board.CreationTime.Format(time.RFC3339))
	if board.EndTime != nil {
		fmt.Fprintf(&b, "Closed: %s\n", board.EndTime.Format(time.RFC3339))
	}
	fmt.Fprintln(&b)

	counts := map[string]int{}
	for _, t := range tasks {
		counts[t.Status]++
	}
	fmt.Fprintln(&b, "TASK SUMMARY:")
	fmt.Fprintln(&b, strings.Repeat("-", 20))
	fmt.Fprintf(&b, "Total Tasks: %d\n", len(tasks))
	fmt.Fprintf(&b, "Open: %d\n", counts[models.TaskStatusOpen])
	fmt.Fprintf(&b, "In Progress: %d\n", counts[models.TaskStatusInProgress])
	fmt.Fprintf(&b, "Complete: %d\n", counts[models.TaskStatusComplete])
	fmt.Fprintln(&b)

	if len(tasks) > 0 {
		fmt.Fprintln(&b, "TASK DETAILS:")
		fmt.Fprintln(&b, strings.Repeat("-", 30))
		for i, t := range tasks {
			fmt.Fprintf(&b, "%d. %s [%s]\n", i+1, t.Title, t.Status)
			fmt.Fprintf(&b, "   ID: %s\n", t.ID)
			fmt.Fprintf(&b, "   Description: %s\n", orNA(t.Description))
			fmt.Fprintf(&b, "   Assigned to: %s\n", orNA(t.UserID))
			fmt.Fprintf(&b, "   Created: %s\n", t.CreationTime.Format(time.RFC3339))
			fmt.Fprintln(&b)
		}
	} else {
		fmt.Fprintln(&b, "No tasks found for this board.")
	}

	fmt.Fprintln(&b, line)
	fmt.Fprintf(&b, "Export generated on: %s\n", time.Now().UTC().Format(time.RFC3339))
	fmt.Fprintln(&b, line)
	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
