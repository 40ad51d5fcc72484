package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	app "stop-sign-detector/internal/application"
	"stop-sign-detector/internal/domain/entity"
	"stop-sign-detector/internal/domain/port"
)

const (
	msgMenu = `
=== Детектор знаков STOP ===
1. Тест на одном изображении
2. Обработать все изображения в папке
3. Обнаружение в реальном времени (камера)
4. Показать параметры обнаружения
5. Выход`

	msgPrompt       = "Выберите опцию (1-5): "
	msgPickImage    = "Выберите номер изображения: "
	msgNoImages     = "В папке %s нет изображений (jpg, jpeg, png, bmp)."
	msgFound        = "Найдено знаков STOP: %d"
	msgNotFound     = "Знаки STOP не найдены."
	msgSaved        = "Результат сохранён: %s"
	msgBatchDone    = "Обработано файлов: %d, пропущено: %d, найдено знаков: %d. Результаты в папке %s."
	msgLiveStart    = "Запуск живого режима. Нажмите 'q' в окне или Ctrl+C для выхода."
	msgLiveDone     = "Живой режим завершён. Кадров: %d, находок: %d."
	msgBye          = "Выход."
	msgError        = "Ошибка: %v"
	msgInputProblem = "Неверный ввод: %s"
)

// SourceOpener открывает источники кадров для пунктов меню.
type SourceOpener interface {
	File(path string) port.FrameSource
	Directory(dir string) (port.FrameSource, error)
	ListImages() ([]string, error)
	Live() (port.FrameSource, error)
	Viewer() port.Viewer
}

// Options: каталоги, с которыми работает меню.
type Options struct {
	ImageDir   string
	ResultsDir string
	DemoDir    string // куда писать demo_result_<name>
}

// Console: интерактивное текстовое меню.
type Console struct {
	in        *bufio.Scanner
	lines     chan string
	readOnce  sync.Once
	out       io.Writer
	detection *app.DetectionService
	sources   SourceOpener
	opts      Options
}

// New создаёт меню поверх произвольных потоков ввода и вывода.
func New(in io.Reader, out io.Writer, detection *app.DetectionService, sources SourceOpener, opts Options) *Console {
	if opts.DemoDir == "" {
		opts.DemoDir = "."
	}
	return &Console{
		in:        bufio.NewScanner(in),
		lines:     make(chan string),
		out:       out,
		detection: detection,
		sources:   sources,
		opts:      opts,
	}
}

// Run крутит меню до пункта 5, конца ввода или отмены контекста.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		c.println(msgMenu)
		line, ok := c.ask(ctx, msgPrompt)
		if !ok {
			return nil
		}

		choice, err := parseChoice(line, 5)
		if err != nil {
			c.reportInput(err)
			continue
		}

		switch choice {
		case 1:
			err = c.singleImage(ctx)
		case 2:
			err = c.batch(ctx)
		case 3:
			err = c.live(ctx)
		case 4:
			c.println(c.detection.Params().Report())
		case 5:
			c.println(msgBye)
			return nil
		}

		if err != nil {
			var inputErr *entity.InputError
			if errors.As(err, &inputErr) {
				c.reportInput(err)
				continue
			}
			log.Printf("menu option %d: %v", choice, err)
			c.printf(msgError+"\n", err)
		}
	}
}

func (c *Console) singleImage(ctx context.Context) error {
	paths, err := c.sources.ListImages()
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		c.printf(msgNoImages+"\n", c.opts.ImageDir)
		return nil
	}

	for i, p := range paths {
		c.printf("%d. %s\n", i+1, filepath.Base(p))
	}
	line, ok := c.ask(ctx, msgPickImage)
	if !ok {
		return nil
	}
	n, err := parseChoice(line, len(paths))
	if err != nil {
		return err
	}

	src := c.sources.File(paths[n-1])
	defer src.Close()

	out, err := c.detection.ProcessSingle(ctx, src, c.opts.DemoDir)
	if err != nil {
		return err
	}
	c.printResult(out.Result)
	c.printf(msgSaved+"\n", out.SavedTo)

	viewer := c.sources.Viewer()
	defer viewer.Close()
	viewer.Show(out.Name, out.Annotated, true)
	return nil
}

func (c *Console) batch(ctx context.Context) error {
	src, err := c.sources.Directory(c.opts.ImageDir)
	if err != nil {
		return err
	}
	defer src.Close()

	report, err := c.detection.ProcessDirectory(ctx, src, c.opts.ResultsDir)
	if err != nil {
		return err
	}

	for _, item := range report.Items {
		c.printf("%s: %d\n", item.Name, item.Detections)
	}
	for _, path := range report.Failed {
		c.printf("%s: не удалось загрузить\n", path)
	}
	c.printf(msgBatchDone+"\n", len(report.Items), len(report.Failed), report.Total(), c.opts.ResultsDir)
	return nil
}

func (c *Console) live(ctx context.Context) error {
	src, err := c.sources.Live()
	if err != nil {
		return err
	}
	defer src.Close()

	viewer := c.sources.Viewer()
	defer viewer.Close()

	c.println(msgLiveStart)
	report, err := c.detection.RunLive(ctx, src, viewer)
	if report != nil {
		c.printf(msgLiveDone+"\n", report.Frames, report.Detections)
	}
	return err
}

func (c *Console) printResult(result *entity.FrameResult) {
	if !result.HasDetections {
		c.println(msgNotFound)
		return
	}
	for _, d := range result.Detections {
		c.printf("Знак STOP: центр (%d, %d)\n", d.Center.X, d.Center.Y)
	}
	c.printf(msgFound+"\n", len(result.Detections))
}

// ask печатает приглашение и ждёт строку. Отмена контекста прерывает ожидание,
// даже если ввод ещё не пришёл.
func (c *Console) ask(ctx context.Context, prompt string) (string, bool) {
	c.readOnce.Do(func() { go c.readLines() })

	fmt.Fprint(c.out, prompt)
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-c.lines:
		if !ok {
			return "", false
		}
		return strings.TrimSpace(line), true
	}
}

// readLines переносит строки ввода в канал и закрывает его на конце ввода.
// После отмены горутина остаётся ждать ввода до выхода из программы.
func (c *Console) readLines() {
	defer close(c.lines)
	for c.in.Scan() {
		c.lines <- c.in.Text()
	}
}

func (c *Console) reportInput(err error) {
	var inputErr *entity.InputError
	if errors.As(err, &inputErr) {
		c.printf(msgInputProblem+"\n", inputErr.Reason)
		return
	}
	c.printf(msgError+"\n", err)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// parseChoice разбирает номер пункта в диапазоне [1, limit].
func parseChoice(line string, limit int) (int, error) {
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, &entity.InputError{Input: line, Reason: "ожидается число"}
	}
	if n < 1 || n > limit {
		return 0, &entity.InputError{Input: line, Reason: fmt.Sprintf("номер вне диапазона 1-%d", limit)}
	}
	return n, nil
}
