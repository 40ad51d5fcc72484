package telegram

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"

	app "stop-sign-detector/internal/application"
	"stop-sign-detector/internal/domain/entity"
	"stop-sign-detector/internal/infrastructure/storage"
	"stop-sign-detector/internal/infrastructure/vision"
)

type fakeAPI struct {
	texts  []string
	photos []tgbotapi.PhotoConfig
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	switch m := c.(type) {
	case tgbotapi.MessageConfig:
		f.texts = append(f.texts, m.Text)
	case tgbotapi.PhotoConfig:
		f.photos = append(f.photos, m)
	}
	return tgbotapi.Message{}, nil
}

func (f *fakeAPI) GetFile(cfg tgbotapi.FileConfig) (tgbotapi.File, error) {
	return tgbotapi.File{FileID: cfg.FileID, FilePath: "photos/" + cfg.FileID}, nil
}

func newTestBot(t *testing.T, photo []byte) (*Bot, *fakeAPI, *app.UserService) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(photo)
	}))
	t.Cleanup(srv.Close)

	params := entity.DefaultParams()
	users := app.NewUserService(storage.NewMemoryUserRepository())
	detection := app.NewDetectionService(vision.NewDetector(params), vision.NewAnnotator(), storage.NewFileResultWriter(), params)
	photos := app.NewPhotoService(users, detection)

	api := &fakeAPI{}
	bot := newBot(api, users, photos, params)
	bot.fileURL = func(f tgbotapi.File) string { return srv.URL + "/" + f.FilePath }
	return bot, api, users
}

func command(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		Text:     text,
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(text)}},
		Chat:     &tgbotapi.Chat{ID: 10},
		From:     &tgbotapi.User{ID: 1},
	}
}

func photoMessage() *tgbotapi.Message {
	return &tgbotapi.Message{
		Photo: []tgbotapi.PhotoSize{{FileID: "small"}, {FileID: "large"}},
		Chat:  &tgbotapi.Chat{ID: 10},
		From:  &tgbotapi.User{ID: 1},
	}
}

func pngBytes(t *testing.T, withSign bool) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.Black}, image.Point{}, draw.Src)
	if withSign {
		draw.Draw(img, image.Rect(30, 30, 70, 70), &image.Uniform{C: color.RGBA{R: 220, B: 20, A: 255}}, image.Point{}, draw.Src)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestCommands(t *testing.T) {
	bot, api, users := newTestBot(t, nil)
	ctx := context.Background()

	bot.handleMessage(ctx, command("/detect"))
	user, err := users.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateAwaitingPhoto, user.State)

	bot.handleMessage(ctx, command("/cancel"))
	require.Equal(t, entity.StateMainMenu, user.State)

	bot.handleMessage(ctx, command("/params"))
	bot.handleMessage(ctx, command("/unknown"))

	require.Equal(t, []string{msgAwaitingPhoto, msgCancelled, entity.DefaultParams().Report(), msgUnknownCommand}, api.texts)
}

func TestPlainTextAsksForPhoto(t *testing.T) {
	bot, api, _ := newTestBot(t, nil)
	bot.handleMessage(context.Background(), &tgbotapi.Message{
		Text: "hello",
		Chat: &tgbotapi.Chat{ID: 10},
		From: &tgbotapi.User{ID: 1},
	})
	require.Equal(t, []string{msgSendPhoto}, api.texts)
}

func TestPhotoWithSign(t *testing.T) {
	bot, api, users := newTestBot(t, pngBytes(t, true))
	ctx := context.Background()

	bot.handleMessage(ctx, photoMessage())

	require.Equal(t, []string{msgProcessing}, api.texts)
	require.Len(t, api.photos, 1)
	require.Equal(t, "🛑 Найдено знаков STOP: 1\n1. центр (50, 50), 40x40", api.photos[0].Caption)

	user, err := users.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 1, user.SignsFound)
}

func TestPhotoWithoutSign(t *testing.T) {
	bot, api, _ := newTestBot(t, pngBytes(t, false))
	bot.handleMessage(context.Background(), photoMessage())

	require.Equal(t, []string{msgProcessing, msgNoSigns}, api.texts)
	require.Empty(t, api.photos)
}

func TestPhotoUndecodable(t *testing.T) {
	bot, api, _ := newTestBot(t, []byte("garbage"))
	bot.handleMessage(context.Background(), photoMessage())

	require.Equal(t, []string{msgProcessing, msgProcessingError}, api.texts)
}

func TestServeStopsOnClosedChannel(t *testing.T) {
	bot, api, _ := newTestBot(t, nil)
	updates := make(chan tgbotapi.Update, 2)
	updates <- tgbotapi.Update{}
	updates <- tgbotapi.Update{Message: command("/help")}
	close(updates)

	require.NoError(t, bot.serve(context.Background(), updates))
	require.Equal(t, []string{msgHelp}, api.texts)
}

func TestRunWithoutPolling(t *testing.T) {
	bot, _, _ := newTestBot(t, nil)
	require.Error(t, bot.Run(context.Background()))
}
