package errors

import "errors"

var (
	ErrUserNotFound  = errors.New("пользователь не найден")
	ErrTeamNotFound  = errors.New("команда не найдена")
	ErrBoardNotFound = errors.New("доска не найдена")
	ErrTaskNotFound  = errors.New("задача не найдена")

	ErrStorage          = errors.New("ошибка хранилища")
	ErrValidationFailed = errors.New("ошибка валидации")
	ErrBadRequest       = errors.New("некорректные данные запроса")
	ErrInternalServer   = errors.New("внутренняя ошибка сервера")

	ErrNameRequired       = errors.New("имя обязательно")
	ErrNameTooLong        = errors.New("имя должно быть не длиннее 64 символов")
	ErrNameInvalidChars   = errors.New("имя может содержать только латинские буквы, цифры, дефис и подчёркивание")
	ErrNameImmutable      = errors.New("имя пользователя нельзя изменить")
	ErrUserNameTaken      = errors.New("имя пользователя должно быть уникальным")
	ErrTeamNameTaken      = errors.New("имя команды должно быть уникальным")
	ErrBoardNameTaken     = errors.New("имя доски должно быть уникальным в рамках команды")
	ErrTaskTitleTaken     = errors.New("заголовок задачи должен быть уникальным в рамках доски")
	ErrDisplayNameTooLong = errors.New("отображаемое имя слишком длинное")
	ErrDescriptionTooLong = errors.New("описание должно быть не длиннее 128 символов")

	ErrAdminNotFound  = errors.New("администратор команды не найден среди пользователей")
	ErrMemberNotFound = errors.New("добавляемый пользователь не найден")
	ErrTeamFull       = errors.New("команда не может содержать более 50 участников")
	ErrAdminRemoval   = errors.New("нельзя удалить администратора из команды")

	ErrBoardNotOpen         = errors.New("задачи можно добавлять только на открытую доску")
	ErrBoardAlreadyClosed   = errors.New("доска уже закрыта")
	ErrBoardTasksIncomplete = errors.New("нельзя закрыть доску: не все задачи завершены")
	ErrInvalidStatus        = errors.New("недопустимый статус")
	ErrInvalidID            = errors.New("некорректный идентификатор")

	ErrInvalidGzipRequest    = errors.New("некорректное gzip-тело запроса")
	ErrGzipCompressionFailed = errors.New("ошибка сжатия ответа")

	ErrConfigFileReadFailed = errors.New("не удалось прочитать файл конфигурации")
	ErrConfigParseFailed    = errors.New("не удалось разобрать файл конфигурации")
	ErrConfigInvalidFormat  = errors.New("некорректное значение конфигурации")
)
