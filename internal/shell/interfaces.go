package shell

import (
	"context"
	"io"

	"github.com/MKhiriev/viewer-shell/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mounter_mock.go -package=mock

// Mounter performs the one-time render of the UI shell.
type Mounter interface {
	// Mount locates the mount point and renders props into it, writing the
	// resulting document to w. Nothing is written to w when Mount fails.
	Mount(ctx context.Context, w io.Writer, props models.StartupProps) error
}
