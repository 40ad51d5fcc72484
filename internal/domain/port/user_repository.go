package port

import (
	"context"

	"stop-sign-detector/internal/domain/entity"
)

// UserRepository хранит состояние диалога пользователей бота
type UserRepository interface {
	// Get возвращает пользователя по ID, создаёт нового если не найден
	Get(ctx context.Context, userID, chatID int64) (*entity.User, error)

	// Save сохраняет пользователя
	Save(ctx context.Context, user *entity.User) error

	// RecordResult учитывает результат обработки фото пользователя
	RecordResult(ctx context.Context, userID int64, result *entity.FrameResult) error
}
