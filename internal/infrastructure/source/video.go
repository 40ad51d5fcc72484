package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"image/png"
	"io"
	"strconv"
	"sync"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"stop-sign-detector/internal/domain/entity"
	"stop-sign-detector/internal/domain/port"
)

const defaultVideoFPS = 5

// pngStream разбирает поток склеенных PNG-кадров.
type pngStream struct {
	name   string
	reader *bufio.Reader
	index  int
}

func newPNGStream(name string, r io.Reader) *pngStream {
	return &pngStream{name: name, reader: bufio.NewReader(r)}
}

func (p *pngStream) next() (entity.Frame, error) {
	if _, err := p.reader.Peek(1); err != nil {
		if errors.Is(err, io.EOF) {
			return entity.Frame{}, entity.ErrEndOfStream
		}
		return entity.Frame{}, &entity.DeviceError{Device: p.name, Err: err}
	}

	img, err := png.Decode(p.reader)
	if err != nil {
		return entity.Frame{}, &entity.DeviceError{
			Device: p.name,
			Err:    fmt.Errorf("decode frame %d: %w", p.index, err),
		}
	}

	frame := entity.Frame{
		Name:  fmt.Sprintf("%s#%d", p.name, p.index),
		Index: p.index,
		Image: img,
	}
	p.index++
	return frame, nil
}

// VideoSource получает кадры видеофайла из ffmpeg (image2pipe, PNG).
type VideoSource struct {
	path string
	fps  int

	once   sync.Once
	cancel context.CancelFunc
	pipe   *io.PipeReader
	stream *pngStream
	done   chan error
}

// NewVideoSource готовит источник. ffmpeg запускается при первом Next.
func NewVideoSource(path string, fps int) (*VideoSource, error) {
	if path == "" {
		return nil, errors.New("video path is empty")
	}
	if fps <= 0 {
		fps = defaultVideoFPS
	}
	return &VideoSource{path: path, fps: fps}, nil
}

func (v *VideoSource) start(ctx context.Context) {
	ctx, v.cancel = context.WithCancel(ctx)
	r, w := io.Pipe()

	cmd := ffmpeg.Input(v.path).
		Output("pipe:1", ffmpeg.KwArgs{
			"format": "image2pipe",
			"vcodec": "png",
			"r":      strconv.Itoa(v.fps),
		})
	// WithOutput хранит writer'ы в Context потока, поэтому Context задаётся раньше.
	cmd.Context = ctx
	cmd = cmd.WithOutput(w).WithErrorOutput(io.Discard)

	v.pipe = r
	v.stream = newPNGStream(v.path, r)
	v.done = make(chan error, 1)

	go func() {
		err := cmd.Run()
		w.CloseWithError(err)
		v.done <- err
	}()
}

// Next возвращает следующий кадр видео.
func (v *VideoSource) Next(ctx context.Context) (entity.Frame, error) {
	if err := ctx.Err(); err != nil {
		return entity.Frame{}, err
	}
	v.once.Do(func() { v.start(ctx) })
	return v.stream.next()
}

// Close останавливает ffmpeg и ждёт завершения процесса.
func (v *VideoSource) Close() error {
	if v.cancel == nil {
		return nil
	}
	v.cancel()
	v.cancel = nil
	v.pipe.Close()
	<-v.done
	return nil
}

var _ port.FrameSource = (*VideoSource)(nil)
