package app

import (
	"context"

	"stop-sign-detector/internal/domain/entity"
)

// PhotoService обрабатывает фото, присланные в бот.
type PhotoService struct {
	users     *UserService
	detection *DetectionService
}

// PhotoOutput содержит результат поиска и JPEG для ответа пользователю.
type PhotoOutput struct {
	Result    *entity.FrameResult
	Annotated []byte
	User      *entity.User
}

// NewPhotoService создаёт сервис, который ведёт пользователя от фото к ответу.
func NewPhotoService(users *UserService, detection *DetectionService) *PhotoService {
	return &PhotoService{users: users, detection: detection}
}

// ProcessPhoto декодирует фото, ищет знаки и учитывает результат у пользователя.
// При любой ошибке пользователь возвращается в главное меню.
func (s *PhotoService) ProcessPhoto(ctx context.Context, userID, chatID int64, photo []byte) (*PhotoOutput, error) {
	if _, err := s.users.SetState(ctx, userID, chatID, entity.StateProcessing); err != nil {
		return nil, err
	}

	out, err := s.process(ctx, photo)
	if err != nil {
		_, _ = s.users.Cancel(ctx, userID, chatID)
		return nil, err
	}

	user, err := s.users.RecordResult(ctx, userID, chatID, out.Result)
	if err != nil {
		return nil, err
	}
	out.User = user
	return out, nil
}

func (s *PhotoService) process(ctx context.Context, photo []byte) (*PhotoOutput, error) {
	img, err := DecodeImage("telegram photo", photo)
	if err != nil {
		return nil, err
	}

	processed, err := s.detection.ProcessImage(ctx, "telegram photo", img)
	if err != nil {
		return nil, err
	}

	data, err := EncodeJPEG(processed.Annotated)
	if err != nil {
		return nil, err
	}
	return &PhotoOutput{Result: processed.Result, Annotated: data}, nil
}
