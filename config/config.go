package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	BackendNative = "native"
	BackendGoCV   = "gocv"
)

type Config struct {
	TelegramToken string
	ImageDir      string // каталог с исходными изображениями
	ResultsDir    string // каталог для result_<name>
	Backend       string // native или gocv
	CameraDevice  int
	VideoSource   string // если задан, живой режим читает этот файл через ffmpeg
	VideoFPS      int
	HTTPAddr      string
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	imageDir := getEnv("IMAGE_DIR", "img")
	// по умолчанию results лежит рядом с каталогом изображений
	resultsDir := filepath.Join(filepath.Dir(filepath.Clean(imageDir)), "results")

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		ImageDir:      imageDir,
		ResultsDir:    getEnv("RESULTS_DIR", resultsDir),
		Backend:       getEnv("DETECTOR_BACKEND", BackendNative),
		VideoSource:   os.Getenv("VIDEO_SOURCE"),
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
	}

	var err error
	if cfg.CameraDevice, err = getInt("CAMERA_DEVICE", 0); err != nil {
		return nil, err
	}
	if cfg.VideoFPS, err = getInt("VIDEO_FPS", 5); err != nil {
		return nil, err
	}
	if cfg.VideoFPS <= 0 {
		return nil, fmt.Errorf("VIDEO_FPS must be positive, got %d", cfg.VideoFPS)
	}

	switch cfg.Backend {
	case BackendNative, BackendGoCV:
	default:
		return nil, fmt.Errorf("unknown DETECTOR_BACKEND %q", cfg.Backend)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}
