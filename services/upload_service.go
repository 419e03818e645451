package services

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	_ "image/gif" // registered so stray gifs decode, they are still rejected by the allow-list

	"go.uber.org/zap"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // webp decode support
)

const (
	maxUploadSize = 5 * 1024 * 1024
	thumbMaxSide  = 300
)

// UploadResult mirrors the JSON the upload endpoint returns.
type UploadResult struct {
	Filename     string `json:"filename"`
	Thumbnail    string `json:"thumbnail"`
	OriginalName string `json:"original_name"`
	Size         int64  `json:"size"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// UploadService stores product images on local disk: the original under
// uploadDir, a proportional thumbnail under uploadDir/thumbnails. The DB only
// ever sees the bare filename.
type UploadService struct {
	uploadDir string
	baseURL   string
}

func NewUploadService(uploadDir, baseURL string) *UploadService {
	return &UploadService{uploadDir: uploadDir, baseURL: baseURL}
}

var allowedImageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// Process validates, saves and thumbnails one uploaded image. When the
// original has been written and only the thumbnail step fails, the original
// stays on disk.
func (s *UploadService) Process(header *multipart.FileHeader) (*UploadResult, *ServiceError) {
	if header.Size > maxUploadSize {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "File size too large. Maximum size is 5MB."}
	}

	file, err := header.Open()
	if err != nil {
		zap.L().Error("failed to open uploaded file", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "No image file uploaded or upload error"}
	}
	defer file.Close()

	data := make([]byte, 0, header.Size)
	buf := bytes.NewBuffer(data)
	if _, err := buf.ReadFrom(file); err != nil {
		zap.L().Error("failed to read uploaded file", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to save uploaded file"}
	}
	content := buf.Bytes()

	contentType := http.DetectContentType(content)
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid file type. Only JPEG, PNG, and WebP are allowed."}
	}

	src, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		zap.L().Warn("failed to decode uploaded image", zap.Error(err), zap.String("content_type", contentType))
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid file type. Only JPEG, PNG, and WebP are allowed."}
	}
	bounds := src.Bounds()

	filename := fmt.Sprintf("product_%d_%s.%s", time.Now().Unix(), randomHex(8), ext)

	if err := os.MkdirAll(filepath.Join(s.uploadDir, "thumbnails"), 0o755); err != nil {
		zap.L().Error("failed to create upload directory", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to save uploaded file"}
	}

	if err := os.WriteFile(filepath.Join(s.uploadDir, filename), content, 0o644); err != nil {
		zap.L().Error("failed to write uploaded file", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to save uploaded file"}
	}

	thumbName, err := s.writeThumbnail(src, filename, contentType)
	if err != nil {
		zap.L().Error("failed to create thumbnail", zap.Error(err), zap.String("filename", filename))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to save uploaded file"}
	}

	return &UploadResult{
		Filename:     filename,
		Thumbnail:    thumbName,
		OriginalName: header.Filename,
		Size:         header.Size,
		Width:        bounds.Dx(),
		Height:       bounds.Dy(),
		URL:          s.baseURL + "/uploads/" + filename,
		ThumbnailURL: s.baseURL + "/uploads/thumbnails/" + thumbName,
	}, nil
}

// Thumbnail scales src proportionally so it fits within
// thumbMaxSide x thumbMaxSide. Alpha survives the resize; jpeg encoding
// flattens it later, png keeps it.
func Thumbnail(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	ratioW := float64(thumbMaxSide) / float64(bounds.Dx())
	ratioH := float64(thumbMaxSide) / float64(bounds.Dy())
	ratio := ratioW
	if ratioH < ratio {
		ratio = ratioH
	}

	w := int(float64(bounds.Dx())*ratio + 0.5)
	h := int(float64(bounds.Dy())*ratio + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	return dst
}

// writeThumbnail encodes the resized image next to the original. Sources
// without a webp encoder available (webp itself) fall back to png, which
// keeps transparency.
func (s *UploadService) writeThumbnail(src image.Image, filename, contentType string) (string, error) {
	dst := Thumbnail(src)

	thumbName := "thumb_" + filename
	if contentType == "image/webp" {
		thumbName = "thumb_" + filename[:len(filename)-len("webp")] + "png"
	}

	out, err := os.Create(filepath.Join(s.uploadDir, "thumbnails", thumbName))
	if err != nil {
		return "", err
	}
	defer out.Close()

	switch contentType {
	case "image/jpeg":
		err = jpeg.Encode(out, dst, &jpeg.Options{Quality: 85})
	default:
		err = png.Encode(out, dst)
	}
	if err != nil {
		return "", err
	}
	return thumbName, nil
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the platform is broken; fall back to a
		// timestamp so uploads still get distinct names.
		return fmt.Sprintf("%016x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
