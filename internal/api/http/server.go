package httpapi

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"

	app "stop-sign-detector/internal/application"
	"stop-sign-detector/internal/domain/entity"
)

const (
	maxUploadSize   = 20 << 20
	formField       = "image"
	detectionHeader = "X-Stop-Signs"
)

// Server: HTTP-интерфейс к детектору.
type Server struct {
	detection  *app.DetectionService
	resultsDir string
	engine     *gin.Engine
}

// NewServer регистрирует маршруты. resultsDir раздаётся статикой по /results.
func NewServer(detection *app.DetectionService, resultsDir string) *Server {
	s := &Server{
		detection:  detection,
		resultsDir: resultsDir,
		engine:     gin.New(),
	}
	s.engine.Use(gin.Logger(), gin.Recovery())

	if resultsDir != "" {
		s.engine.Use(static.Serve("/results", static.LocalFile(resultsDir, false)))
	}

	s.engine.GET("/health", s.health)
	s.engine.GET("/params", s.params)
	s.engine.POST("/detect", s.detect)
	s.engine.POST("/detect/annotated", s.detectAnnotated)

	return s
}

// Handler отдаёт http.Handler для тестов и встраивания.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run слушает addr до отмены контекста.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP server listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) params(c *gin.Context) {
	c.JSON(http.StatusOK, s.detection.Params())
}

func (s *Server) detect(c *gin.Context) {
	out, ok := s.process(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, out.Result)
}

func (s *Server) detectAnnotated(c *gin.Context) {
	out, ok := s.process(c)
	if !ok {
		return
	}

	data, err := app.EncodeJPEG(out.Annotated)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header(detectionHeader, strconv.Itoa(len(out.Result.Detections)))
	c.Data(http.StatusOK, "image/jpeg", data)
}

// process читает изображение из запроса и прогоняет его через детектор.
// При ошибке ответ уже записан.
func (s *Server) process(c *gin.Context) (*app.ProcessOutput, bool) {
	name, img, err := readImage(c)
	if err != nil {
		log.Printf("bad upload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	out, err := s.detection.ProcessImage(c.Request.Context(), name, img)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, entity.ErrEmptyImage) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return nil, false
	}
	return out, true
}

// readImage принимает и multipart-поле image, и изображение в теле запроса.
func readImage(c *gin.Context) (string, image.Image, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		header, err := c.FormFile(formField)
		if err != nil {
			return "", nil, fmt.Errorf("form field %q: %w", formField, err)
		}
		f, err := header.Open()
		if err != nil {
			return "", nil, err
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return "", nil, err
		}
		img, err := app.DecodeImage(header.Filename, data)
		return header.Filename, img, err
	}

	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", nil, err
	}
	img, err := app.DecodeImage("upload", data)
	return "upload", img, err
}
