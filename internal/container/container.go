package container

import (
	"fmt"

	"stop-sign-detector/config"
	app "stop-sign-detector/internal/application"
	"stop-sign-detector/internal/domain/entity"
	"stop-sign-detector/internal/domain/port"
	"stop-sign-detector/internal/infrastructure/display"
	"stop-sign-detector/internal/infrastructure/source"
	"stop-sign-detector/internal/infrastructure/storage"
	"stop-sign-detector/internal/infrastructure/vision"
)

type Container struct {
	Config           *config.Config
	UserService      *app.UserService
	DetectionService *app.DetectionService
	PhotoService     *app.PhotoService
	Sources          *Sources
}

// Sources открывает источники кадров по настройкам.
type Sources struct {
	cfg *config.Config
}

// File: одно изображение.
func (s *Sources) File(path string) port.FrameSource {
	return source.NewFileSource(path)
}

// Directory: все поддерживаемые изображения каталога.
func (s *Sources) Directory(dir string) (port.FrameSource, error) {
	src, err := source.NewDirectorySource(dir)
	if err != nil {
		return nil, err
	}
	return src, nil
}

// ListImages перечисляет файлы каталога изображений.
func (s *Sources) ListImages() ([]string, error) {
	return source.ListImages(s.cfg.ImageDir)
}

// Live: камера или видеофайл, если задан VIDEO_SOURCE.
func (s *Sources) Live() (port.FrameSource, error) {
	if s.cfg.VideoSource != "" {
		video, err := source.NewVideoSource(s.cfg.VideoSource, s.cfg.VideoFPS)
		if err != nil {
			return nil, err
		}
		return video, nil
	}
	camera, err := source.OpenCamera(s.cfg.CameraDevice)
	if err != nil {
		return nil, err
	}
	return camera, nil
}

// Viewer: окно для показа кадров.
func (s *Sources) Viewer() port.Viewer {
	return display.New(app.LiveTitle)
}

func New(cfg *config.Config, userRepo port.UserRepository) (*Container, error) {
	params := entity.DefaultParams()
	if err := params.Validate(); err != nil {
		return nil, err
	}

	detector, renderer, err := newBackend(cfg.Backend, params)
	if err != nil {
		return nil, err
	}

	userService := app.NewUserService(userRepo)
	detectionService := app.NewDetectionService(detector, renderer, storage.NewFileResultWriter(), params)
	photoService := app.NewPhotoService(userService, detectionService)

	return &Container{
		Config:           cfg,
		UserService:      userService,
		DetectionService: detectionService,
		PhotoService:     photoService,
		Sources:          &Sources{cfg: cfg},
	}, nil
}

func newBackend(name string, params entity.DetectionParams) (port.SignDetector, port.Renderer, error) {
	switch name {
	case "", config.BackendNative:
		return vision.NewDetector(params), vision.NewAnnotator(), nil
	case config.BackendGoCV:
		return vision.NewGoCVDetector(params), vision.NewGoCVAnnotator(), nil
	default:
		return nil, nil, fmt.Errorf("unknown detector backend %q", name)
	}
}
