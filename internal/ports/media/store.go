package media

import (
	"context"
	"io"
)

// ImageStore persists uploaded post images and returns the URL under which
// the stored image is served.
type ImageStore interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}
