package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"path/filepath"

	"stop-sign-detector/internal/domain/entity"
	"stop-sign-detector/internal/domain/port"
)

const (
	resultPrefix = "result_"
	demoPrefix   = "demo_result_"
	// LiveTitle: заголовок окна живого режима.
	LiveTitle = "STOP Sign Detection"
)

// DetectionService связывает детектор, отрисовку и сохранение результатов.
type DetectionService struct {
	detector port.SignDetector
	renderer port.Renderer
	writer   port.ResultWriter
	params   entity.DetectionParams
}

// ProcessOutput: результат обработки одного изображения.
type ProcessOutput struct {
	Name      string
	Result    *entity.FrameResult
	Annotated image.Image // размеченная копия или оригинал, если ничего не найдено
	SavedTo   string
}

// BatchItem: строка отчёта пакетной обработки.
type BatchItem struct {
	Name       string
	Detections int
	SavedTo    string
}

// BatchReport: итог обработки каталога.
type BatchReport struct {
	Items  []BatchItem
	Failed []string // пути файлов, которые не удалось прочитать
}

// Total: сколько знаков найдено во всех файлах.
func (r *BatchReport) Total() int {
	total := 0
	for _, item := range r.Items {
		total += item.Detections
	}
	return total
}

// LiveReport: статистика живого режима.
type LiveReport struct {
	Frames     int
	Detections int
}

// NewDetectionService создаёт сервис.
func NewDetectionService(detector port.SignDetector, renderer port.Renderer, writer port.ResultWriter, params entity.DetectionParams) *DetectionService {
	return &DetectionService{
		detector: detector,
		renderer: renderer,
		writer:   writer,
		params:   params,
	}
}

// Params возвращает пороги, с которыми собран детектор.
func (s *DetectionService) Params() entity.DetectionParams {
	return s.params
}

// Detect ищет знаки на изображении.
func (s *DetectionService) Detect(ctx context.Context, img image.Image) (*entity.FrameResult, error) {
	if s.detector == nil {
		return nil, errors.New("detector is not configured")
	}
	return s.detector.Detect(ctx, img)
}

// ProcessImage ищет знаки и рисует их на копии изображения.
func (s *DetectionService) ProcessImage(ctx context.Context, name string, img image.Image) (*ProcessOutput, error) {
	result, err := s.Detect(ctx, img)
	if err != nil {
		return nil, err
	}
	logDetections(name, result)

	annotated := img
	if result.HasDetections {
		if s.renderer == nil {
			return nil, errors.New("renderer is not configured")
		}
		annotated, err = s.renderer.Annotate(img, result)
		if err != nil {
			return nil, fmt.Errorf("annotate %s: %w", name, err)
		}
	}

	return &ProcessOutput{Name: name, Result: result, Annotated: annotated}, nil
}

// ProcessSingle обрабатывает первый кадр источника и сохраняет demo_result_<name> в outDir.
func (s *DetectionService) ProcessSingle(ctx context.Context, src port.FrameSource, outDir string) (*ProcessOutput, error) {
	frame, err := src.Next(ctx)
	if err != nil {
		return nil, err
	}

	out, err := s.ProcessImage(ctx, frame.Name, frame.Image)
	if err != nil {
		return nil, err
	}

	out.SavedTo = filepath.Join(outDir, demoPrefix+frame.Name)
	if err := s.save(out.SavedTo, out.Annotated); err != nil {
		return nil, err
	}
	return out, nil
}

// ProcessDirectory обрабатывает все кадры источника по очереди и пишет result_<name> в resultsDir.
// Нечитаемые файлы попадают в отчёт и пропускаются.
func (s *DetectionService) ProcessDirectory(ctx context.Context, src port.FrameSource, resultsDir string) (*BatchReport, error) {
	report := &BatchReport{}
	for {
		frame, err := src.Next(ctx)
		if errors.Is(err, entity.ErrEndOfStream) {
			break
		}
		var loadErr *entity.LoadError
		if errors.As(err, &loadErr) {
			log.Printf("skip %s: %v", loadErr.Path, loadErr.Err)
			report.Failed = append(report.Failed, loadErr.Path)
			continue
		}
		if err != nil {
			return report, err
		}

		out, err := s.ProcessImage(ctx, frame.Name, frame.Image)
		if err != nil {
			return report, err
		}

		path := filepath.Join(resultsDir, resultPrefix+frame.Name)
		if err := s.save(path, out.Annotated); err != nil {
			return report, err
		}
		log.Printf("saved %s", path)

		report.Items = append(report.Items, BatchItem{
			Name:       frame.Name,
			Detections: len(out.Result.Detections),
			SavedTo:    path,
		})
	}

	log.Printf("batch done: %d processed, %d failed, %d signs", len(report.Items), len(report.Failed), report.Total())
	return report, nil
}

// RunLive обрабатывает кадры, пока источник не кончится, устройство не откажет,
// контекст не будет отменён или пользователь не нажмёт 'q' в окне.
func (s *DetectionService) RunLive(ctx context.Context, src port.FrameSource, viewer port.Viewer) (*LiveReport, error) {
	report := &LiveReport{}
	for {
		select {
		case <-ctx.Done():
			return report, nil
		default:
		}

		frame, err := src.Next(ctx)
		if errors.Is(err, entity.ErrEndOfStream) || stopped(ctx, err) {
			return report, nil
		}
		if err != nil {
			return report, err
		}

		out, err := s.ProcessImage(ctx, frame.Name, frame.Image)
		if err != nil {
			if stopped(ctx, err) {
				return report, nil
			}
			return report, err
		}
		report.Frames++
		report.Detections += len(out.Result.Detections)

		if viewer != nil && viewer.Show(LiveTitle, out.Annotated, false) {
			log.Printf("live mode stopped by user")
			return report, nil
		}
	}
}

func (s *DetectionService) save(path string, img image.Image) error {
	if s.writer == nil {
		return errors.New("result writer is not configured")
	}
	return s.writer.Save(path, img)
}

// stopped: ошибка вызвана отменой. После отмены источник может вернуть
// и свою ошибку (например, убитый ffmpeg), это тоже штатная остановка.
func stopped(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	return ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func logDetections(name string, result *entity.FrameResult) {
	for _, d := range result.Detections {
		log.Printf("%s: STOP sign detected, center (%d, %d)", name, d.Center.X, d.Center.Y)
	}
	if !result.HasDetections {
		log.Printf("%s: no STOP signs found", name)
		return
	}
	log.Printf("%s: found %d STOP sign(s)", name, len(result.Detections))
}
