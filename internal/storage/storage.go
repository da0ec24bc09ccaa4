package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	MaxFileSize   = 5 * 1024 * 1024
	MaxFilesCount = 10
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// SaveImage stores one uploaded image under uploadDir with a random
// filename and returns its public URL path.
func SaveImage(uploadDir string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > MaxFileSize {
		return "", fmt.Errorf("file %s exceeds the maximum size of 5MB", fileHeader.Filename)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("file %s has an unsupported format, allowed: jpg, png, webp, gif", fileHeader.Filename)
	}

	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	filename := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(uploadDir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}

	return "/uploads/" + filename, nil
}

// SaveImages stores a batch of project images.
func SaveImages(uploadDir string, files []*multipart.FileHeader) ([]string, error) {
	if len(files) > MaxFilesCount {
		return nil, fmt.Errorf("at most %d images are allowed", MaxFilesCount)
	}

	var savedPaths []string
	for _, fileHeader := range files {
		path, err := SaveImage(uploadDir, fileHeader)
		if err != nil {
			return nil, err
		}
		savedPaths = append(savedPaths, path)
	}

	return savedPaths, nil
}
