//go:build gocv
// +build gocv

package vision

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"stop-sign-detector/internal/domain/entity"
	"stop-sign-detector/internal/domain/port"
)

// GoCVDetector: тот же конвейер на OpenCV.
type GoCVDetector struct {
	params entity.DetectionParams
}

// NewGoCVDetector создаёт детектор на OpenCV с заданными порогами.
func NewGoCVDetector(params entity.DetectionParams) *GoCVDetector {
	return &GoCVDetector{params: params}
}

// Detect переводит кадр в Mat и ищет кандидатов.
func (d *GoCVDetector) Detect(ctx context.Context, img image.Image) (*entity.FrameResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if img == nil || img.Bounds().Empty() {
		return nil, entity.ErrEmptyImage
	}
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("convert image: %w", err)
	}
	defer mat.Close()

	return d.DetectMat(mat)
}

// DetectMat ищет кандидатов в BGR-кадре без лишних преобразований.
func (d *GoCVDetector) DetectMat(mat gocv.Mat) (*entity.FrameResult, error) {
	if mat.Empty() {
		return nil, entity.ErrEmptyImage
	}

	mask := d.redMask(mat)
	defer mask.Close()

	contours := gocv.FindContours(mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	detections := make([]entity.Detection, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		c := contours.At(i)
		area := gocv.ContourArea(c)
		rect := gocv.BoundingRect(c)
		box := entity.BoundingBox{
			X:      rect.Min.X,
			Y:      rect.Min.Y,
			Width:  rect.Dx(),
			Height: rect.Dy(),
		}
		if !d.params.Accepts(area, box) {
			continue
		}
		detections = append(detections, entity.NewDetection(box, area))
	}

	return entity.NewFrameResult(mat.Cols(), mat.Rows(), detections), nil
}

// redMask строит маску двух красных диапазонов и чистит её морфологией.
func (d *GoCVDetector) redMask(mat gocv.Mat) gocv.Mat {
	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(mat, &hsv, gocv.ColorBGRToHSV)

	low := gocv.NewMat()
	defer low.Close()
	gocv.InRangeWithScalar(hsv, hsvScalar(d.params.RedLow.Lower), hsvScalar(d.params.RedLow.Upper), &low)

	high := gocv.NewMat()
	defer high.Close()
	gocv.InRangeWithScalar(hsv, hsvScalar(d.params.RedHigh.Lower), hsvScalar(d.params.RedHigh.Upper), &high)

	mask := gocv.NewMat()
	gocv.BitwiseOr(low, high, &mask)

	k := d.params.KernelSize
	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(k, k))
	defer kernel.Close()

	// Сначала закрытие, потом открытие.
	gocv.MorphologyEx(mask, &mask, gocv.MorphClose, kernel)
	gocv.MorphologyEx(mask, &mask, gocv.MorphOpen, kernel)
	return mask
}

func hsvScalar(c entity.HSV) gocv.Scalar {
	return gocv.NewScalar(float64(c.H), float64(c.S), float64(c.V), 0)
}

// GoCVAnnotator рисует находки средствами OpenCV.
type GoCVAnnotator struct{}

// NewGoCVAnnotator создаёт рендерер на OpenCV.
func NewGoCVAnnotator() *GoCVAnnotator {
	return &GoCVAnnotator{}
}

// Annotate рисует рамку, центр и подпись на копии кадра.
func (a *GoCVAnnotator) Annotate(img image.Image, result *entity.FrameResult) (image.Image, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, entity.ErrEmptyImage
	}
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("convert image: %w", err)
	}
	defer mat.Close()

	if result != nil {
		AnnotateMat(&mat, result.Detections)
	}
	return mat.ToImage()
}

// AnnotateMat рисует находки прямо в Mat; используется в живом режиме.
func AnnotateMat(mat *gocv.Mat, detections []entity.Detection) {
	red := color.RGBA{R: 255, A: 255}
	green := color.RGBA{G: 255, A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	for _, det := range detections {
		b := det.Box
		gocv.Rectangle(mat, image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height), red, boxThickness)
		gocv.Circle(mat, image.Pt(det.Center.X, det.Center.Y), centerRadius, green, -1)
		gocv.PutText(mat, CenterLabel(det), image.Pt(b.X, b.Y-labelOffset),
			gocv.FontHersheySimplex, 0.6, white, 2)
	}
}

// Проверка реализации интерфейсов
var (
	_ port.SignDetector = (*GoCVDetector)(nil)
	_ port.Renderer     = (*GoCVAnnotator)(nil)
)
