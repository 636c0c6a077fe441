package utils

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"docushop/config"
)

// CloudinaryUploader stores product images in Cloudinary and hands back
// the public URL.
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryUploader(cfg config.CloudinaryConfig) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryUploader{cld: cld, folder: cfg.Folder}, nil
}

// Upload pushes the image and returns its secure URL.
func (u *CloudinaryUploader) Upload(ctx context.Context, content io.Reader) (string, error) {
	result, err := u.cld.Upload.Upload(ctx, content, uploader.UploadParams{
		PublicID: uuid.NewString(),
		Folder:   u.folder,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("cloudinary upload: empty secure url in response")
	}
	return result.SecureURL, nil
}
