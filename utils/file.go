package utils

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var (
	ErrFileTooLarge     = errors.New("file size exceeds maximum allowed size")
	ErrInvalidImageType = errors.New("invalid file type. Only jpg, jpeg, png, gif, webp allowed")
)

func ValidateImageFile(fileHeader *multipart.FileHeader, maxSize int64) error {
	if fileHeader.Size > maxSize {
		return ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return ErrInvalidImageType
	}
	return nil
}

// UploadFileName returns a timestamped, space-free name for an upload.
func UploadFileName(original string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(original))
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	base = strings.ReplaceAll(base, " ", "_")

	filename := fmt.Sprintf("%d_%s%s", now.Unix(), base, ext)
	if len(filename) > 255 {
		filename = fmt.Sprintf("%d%s", now.UnixNano(), ext)
	}
	return filename
}

// SaveUploadedFile writes the upload under uploadDir/subDir and returns the
// path relative to uploadDir.
func SaveUploadedFile(fileHeader *multipart.FileHeader, uploadDir, subDir string) (string, error) {
	uploadPath := filepath.Join(uploadDir, subDir)
	if err := os.MkdirAll(uploadPath, os.ModePerm); err != nil {
		return "", err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	filename := UploadFileName(fileHeader.Filename, time.Now())
	dst, err := os.Create(filepath.Join(uploadPath, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filepath.ToSlash(filepath.Join(subDir, filename)), nil
}
