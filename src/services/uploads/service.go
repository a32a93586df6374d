package uploads

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	MaxFileSize  = 5 * 1024 * 1024
	MaxFileCount = 10
)

var allowedTypes = map[string]bool{
	"image/png":       true,
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/svg+xml":   true,
	"image/webp":      true,
	"application/pdf": true,
}

func uploadDir() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "./uploads"
	}
	return dir
}

func publicBaseURL() string {
	base := os.Getenv("PUBLIC_BASE_URL")
	if base == "" {
		base = "http://localhost:9000"
	}
	return strings.TrimRight(base, "/")
}

// SaveBrandFiles stores an uploaded batch and returns the public URLs of
// the accepted files. Oversized or unsupported files are skipped with a
// warning, never a hard failure. Stored names are random uuids so the
// URLs cannot be enumerated.
func SaveBrandFiles(files []*multipart.FileHeader) ([]string, error) {
	if len(files) > MaxFileCount {
		log.Printf("⚠️ Upload batch truncated from %d to %d files", len(files), MaxFileCount)
		files = files[:MaxFileCount]
	}

	dir := uploadDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	urls := []string{}
	for _, file := range files {
		if err := validate(file); err != nil {
			log.Println("⚠️ File rejected:", file.Filename, err)
			continue
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		if ext == "" {
			ext = ".bin"
		}
		fileName := uuid.NewString() + ext

		if err := save(file, filepath.Join(dir, fileName)); err != nil {
			log.Println("❌ Failed to store file:", file.Filename, err)
			continue
		}

		urls = append(urls, publicBaseURL()+"/uploads/"+fileName)
	}
	return urls, nil
}

func validate(file *multipart.FileHeader) error {
	if file.Size > MaxFileSize {
		return fmt.Errorf("file exceeds the 5MB limit")
	}
	contentType := file.Header.Get("Content-Type")
	if !allowedTypes[contentType] {
		return fmt.Errorf("type %q not allowed, use PNG, JPG, SVG, WebP or PDF", contentType)
	}
	return nil
}

func save(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}
