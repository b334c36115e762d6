package imaging

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"cwc-viewer/internal/logger"
	"cwc-viewer/internal/models"

	"gocv.io/x/gocv"
)

const (
	// DisplayWidth and DisplayHeight are the dimensions stadium images are
	// scaled to before display.
	DisplayWidth  = 300
	DisplayHeight = 180
)

// ErrImageUnavailable is returned when a venue image cannot be read or
// decoded. It is distinct from stadiums.ErrNotFound: the venue exists but
// its picture does not.
var ErrImageUnavailable = errors.New("image unavailable")

// UnavailableError carries the image reference that failed and the cause.
type UnavailableError struct {
	Reference string
	Err       error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("image %q unavailable: %v", e.Reference, e.Err)
	}
	return fmt.Sprintf("image %q unavailable", e.Reference)
}

func (e *UnavailableError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrImageUnavailable}
	}
	return []error{ErrImageUnavailable, e.Err}
}

// Handle is a decoded, display-ready stadium image. The presentation layer
// owns it and replaces it wholesale on every new selection.
type Handle struct {
	Reference string
	Image     image.Image
}

// Close drops the handle's reference to the decoded pixels. The OpenCV
// matrices are already freed by Resolve; the pixels themselves are
// collected once the view renders a state that no longer shows them.
func (h *Handle) Close() {
	if h == nil {
		return
	}
	h.Image = nil
}

// Resolver loads venue images from a directory on disk.
type Resolver struct {
	dir    string
	width  int
	height int
	logger logger.Logger
}

// NewResolver creates a resolver reading images relative to dir.
func NewResolver(dir string, log logger.Logger) *Resolver {
	if dir == "" {
		dir = "."
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Resolver{
		dir:    dir,
		width:  DisplayWidth,
		height: DisplayHeight,
		logger: log,
	}
}

// Resolve reads, decodes and scales the image referenced by venue.
// Every failure is reported as an *UnavailableError.
func (r *Resolver) Resolve(ctx context.Context, venue models.Venue) (*Handle, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	ref := venue.ImageReference
	if ref == "" {
		return nil, &UnavailableError{Reference: ref, Err: errors.New("venue has no image reference")}
	}

	path := filepath.Join(r.dir, ref)
	data, err := os.ReadFile(path)
	if err != nil {
		r.logger.Debug("ImageResolver", "image read failed", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return nil, &UnavailableError{Reference: ref, Err: err}
	}

	img, err := r.decode(data)
	if err != nil {
		return nil, &UnavailableError{Reference: ref, Err: err}
	}

	r.logger.Debug("ImageResolver", "image resolved", map[string]interface{}{
		"path":       path,
		"size_bytes": len(data),
		"city":       venue.City,
	})

	return &Handle{Reference: ref, Image: img}, nil
}

func (r *Resolver) decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, errors.New("empty image file")
	}

	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, errors.New("decode produced no pixels")
	}

	resized := gocv.NewMat()
	defer resized.Close()

	gocv.Resize(mat, &resized, image.Point{X: r.width, Y: r.height}, 0, 0, gocv.InterpolationLinear)
	if resized.Empty() {
		return nil, errors.New("resize produced no pixels")
	}

	img, err := resized.ToImage()
	if err != nil {
		return nil, fmt.Errorf("convert to image: %w", err)
	}
	return img, nil
}
