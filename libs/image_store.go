package libs

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"furniture-shop/config"
	"furniture-shop/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

// ImageStore hosts product photos and returns a public URL for each.
type ImageStore interface {
	Upload(ctx context.Context, fileHeader *multipart.FileHeader) (string, error)
}

// NewImageStore prefers Cloudinary and falls back to the local uploads dir
// when no Cloudinary credentials are configured.
func NewImageStore(cfg *config.Config, logger *zap.Logger) ImageStore {
	store, err := NewCloudinaryStore(cfg)
	if err != nil {
		logger.Warn("cloudinary not available, storing images locally",
			zap.String("upload_dir", cfg.UploadDir), zap.Error(err))
		return &LocalImageStore{Dir: cfg.UploadDir, URLPrefix: "/uploads", MaxSize: cfg.MaxUploadSize}
	}
	return store
}

type CloudinaryStore struct {
	cld     *cloudinary.Cloudinary
	folder  string
	maxSize int64
}

func NewCloudinaryStore(cfg *config.Config) (*CloudinaryStore, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)

	switch {
	case cfg.CloudinaryCloudName != "" && cfg.CloudinaryAPIKey != "" && cfg.CloudinaryAPISecret != "":
		cld, err = cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	case cfg.CloudinaryURL != "":
		cld, err = cloudinary.NewFromURL(cfg.CloudinaryURL)
	default:
		return nil, errors.New("cloudinary credentials not configured")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &CloudinaryStore{cld: cld, folder: cfg.CloudinaryFolder, maxSize: cfg.MaxUploadSize}, nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader, s.maxSize); err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	name := strings.TrimSuffix(utils.UploadFileName(fileHeader.Filename, time.Now()), filepath.Ext(fileHeader.Filename))

	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       name,
		Folder:         s.folder,
		ResourceType:   "image",
		Transformation: "q_auto,f_auto",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary rejected upload: %s", result.Error.Message)
	}

	return result.SecureURL, nil
}

type LocalImageStore struct {
	Dir       string
	URLPrefix string
	MaxSize   int64
}

func (s *LocalImageStore) Upload(_ context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader, s.MaxSize); err != nil {
		return "", err
	}

	rel, err := utils.SaveUploadedFile(fileHeader, s.Dir, "products")
	if err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}
	return s.URLPrefix + "/" + rel, nil
}
