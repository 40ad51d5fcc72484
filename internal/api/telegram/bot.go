package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	app "stop-sign-detector/internal/application"
	"stop-sign-detector/internal/domain/entity"
)

const (
	msgStart = `👋 Привет! Я бот для поиска знаков STOP на фотографиях.

📸 Отправьте мне фото, и я отмечу найденные знаки и их центры.

📋 Команды:
/detect — найти знак на фото
/params — параметры обнаружения
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте /detect и затем фото
2️⃣ Бот найдёт красные области подходящей формы
3️⃣ Вы получите фото с рамками и координаты центров

💡 Рекомендации:
• Знак должен занимать заметную часть кадра
• Снимайте при дневном освещении
• Избегайте сильного наклона

📋 Команды:
/detect — начать поиск
/params — параметры обнаружения
/cancel — отменить операцию`

	msgAwaitingPhoto   = "📸 Отправьте фото для поиска знака STOP."
	msgCancelled       = "❌ Операция отменена. Отправьте /detect для нового поиска."
	msgSendPhoto       = "📸 Пожалуйста, отправьте фото для поиска знака STOP."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Обрабатываю изображение..."
	msgNoSigns         = "✅ Знаки STOP не обнаружены."
	msgProcessingError = "⚠️ Не удалось обработать изображение. Попробуйте другое фото."
)

// botAPI: часть tgbotapi.BotAPI, которой пользуется бот.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetFile(config tgbotapi.FileConfig) (tgbotapi.File, error)
}

// Bot представляет Telegram-бота
type Bot struct {
	api     botAPI
	users   *app.UserService
	photos  *app.PhotoService
	params  entity.DetectionParams
	fileURL func(tgbotapi.File) string
	poll    func(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	client  *http.Client
}

// NewBot создаёт нового бота
func NewBot(token string, users *app.UserService, photos *app.PhotoService, params entity.DetectionParams) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	bot := newBot(api, users, photos, params)
	bot.fileURL = func(f tgbotapi.File) string { return f.Link(api.Token) }
	bot.poll = api.GetUpdatesChan
	return bot, nil
}

func newBot(api botAPI, users *app.UserService, photos *app.PhotoService, params entity.DetectionParams) *Bot {
	return &Bot{
		api:    api,
		users:  users,
		photos: photos,
		params: params,
		client: http.DefaultClient,
	}
}

// Run запускает основной цикл обработки сообщений до отмены контекста
func (b *Bot) Run(ctx context.Context) error {
	if b.poll == nil {
		return errors.New("updates are not configured")
	}
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	return b.serve(ctx, b.poll(u))
}

func (b *Bot) serve(ctx context.Context, updates tgbotapi.UpdatesChannel) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	user, err := b.users.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		log.Printf("Error getting user: %v", err)
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg, user)
		return
	}

	// Обработка фото
	if len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg)
		return
	}

	// Текстовое сообщение (не команда)
	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	var err error
	switch msg.Command() {
	case "start":
		_, err = b.users.Cancel(ctx, user.ID, user.ChatID)
		b.sendMessage(msg.Chat.ID, msgStart)

	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)

	case "detect":
		_, err = b.users.BeginDetect(ctx, user.ID, user.ChatID)
		b.sendMessage(msg.Chat.ID, msgAwaitingPhoto)

	case "params":
		b.sendMessage(msg.Chat.ID, b.params.Report())

	case "cancel":
		_, err = b.users.Cancel(ctx, user.ID, user.ChatID)
		b.sendMessage(msg.Chat.ID, msgCancelled)

	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
	if err != nil {
		log.Printf("Error saving user state: %v", err)
	}
}

// handlePhoto обрабатывает входящее фото
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message) {
	b.sendMessage(msg.Chat.ID, msgProcessing)

	// Получаем файл с максимальным разрешением
	photo := msg.Photo[len(msg.Photo)-1]

	imageData, err := b.downloadFile(photo.FileID)
	if err != nil {
		log.Printf("Error downloading photo: %v", err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}
	log.Printf("Received image: %d bytes", len(imageData))

	out, err := b.photos.ProcessPhoto(ctx, msg.From.ID, msg.Chat.ID, imageData)
	if err != nil {
		var loadErr *entity.LoadError
		if !errors.As(err, &loadErr) {
			log.Printf("Error processing photo: %v", err)
		}
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	if !out.Result.HasDetections {
		b.sendMessage(msg.Chat.ID, msgNoSigns)
		return
	}

	reply := tgbotapi.NewPhoto(msg.Chat.ID, tgbotapi.FileBytes{Name: "stop_signs.jpg", Bytes: out.Annotated})
	reply.Caption = formatResult(out.Result)
	if _, err := b.api.Send(reply); err != nil {
		log.Printf("Error sending photo: %v", err)
	}
}

// formatResult перечисляет центры найденных знаков
func formatResult(result *entity.FrameResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🛑 Найдено знаков STOP: %d", len(result.Detections))
	for i, d := range result.Detections {
		fmt.Fprintf(&sb, "\n%d. центр (%d, %d), %dx%d", i+1, d.Center.X, d.Center.Y, d.Box.Width, d.Box.Height)
	}
	return sb.String()
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	resp, err := b.client.Get(b.fileURL(file))
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}
