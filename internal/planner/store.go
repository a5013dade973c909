package planner

import "context"

// Имена коллекций, под которыми хранится каждый набор сущностей.
const (
	CollectionUsers  = "users"
	CollectionTeams  = "teams"
	CollectionBoards = "boards"
	CollectionTasks  = "tasks"
)

// Store сохраняет по одному JSON-документу на коллекцию. Load отсутствующей
// коллекции оставляет out без изменений (пустая коллекция); повреждённый или
// нечитаемый документ — ошибка хранилища.
type Store interface {
	Load(ctx context.Context, collection string, out any) error
	Save(ctx context.Context, collection string, data any) error
}
