package uploads

import (
	"context"
	"fmt"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryResolver uploads local image files to Cloudinary and replaces
// the reference with the returned secure URL. Remote references pass
// through untouched.
type CloudinaryResolver struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryResolver builds a resolver from a cloudinary:// URL.
func NewCloudinaryResolver(cloudinaryURL string) (*CloudinaryResolver, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryResolver{cld: cld}, nil
}

func (r *CloudinaryResolver) Resolve(ctx context.Context, ref string) (string, error) {
	if ref == "" || IsRemote(ref) {
		return ref, nil
	}

	f, err := os.Open(ref)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	res, err := r.cld.Upload.Upload(ctx, f, uploader.UploadParams{})
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return res.SecureURL, nil
}
