package entity

// UserState состояние пользователя в диалоге с ботом
type UserState string

const (
	StateMainMenu      UserState = "main_menu"      // В главном меню
	StateAwaitingPhoto UserState = "awaiting_photo" // Ждём фото для поиска знака
	StateProcessing    UserState = "processing"     // Идёт обработка фото
)

// User представляет пользователя бота
type User struct {
	ID         int64     // Telegram User ID
	ChatID     int64     // Telegram Chat ID
	State      UserState // Текущее состояние пользователя
	Processed  int       // Сколько фото обработано
	SignsFound int       // Сколько знаков найдено за всё время
}

// NewUser создаёт нового пользователя с начальным состоянием
func NewUser(userID, chatID int64) *User {
	return &User{
		ID:     userID,
		ChatID: chatID,
		State:  StateMainMenu,
	}
}

// SetState обновляет состояние пользователя
func (u *User) SetState(state UserState) {
	u.State = state
}

// RecordResult учитывает обработанное фото и возвращает пользователя в меню.
func (u *User) RecordResult(result *FrameResult) {
	u.Processed++
	if result != nil {
		u.SignsFound += len(result.Detections)
	}
	u.State = StateMainMenu
}
