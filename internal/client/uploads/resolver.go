// Package uploads resolves product image references. A reference may
// already be remote (a server-relative path or an absolute URL) or it may
// point at a local file that still needs uploading before the product is
// sent to the backend.
package uploads

import (
	"context"
	"strings"
)

// Resolver turns an image reference into one the backend can serve.
type Resolver interface {
	Resolve(ctx context.Context, ref string) (string, error)
}

// IsRemote reports whether ref already points at a remote resource.
func IsRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") ||
		strings.HasPrefix(ref, "https://") ||
		strings.HasPrefix(ref, "/")
}

// Passthrough returns references unchanged. Used when no upload account is
// configured; local paths are then sent as-is and the backend decides.
type Passthrough struct{}

func (Passthrough) Resolve(_ context.Context, ref string) (string, error) {
	return ref, nil
}
