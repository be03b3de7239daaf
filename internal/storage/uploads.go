package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/utils"
)

// PublicPrefix is the URL prefix under which Root is served.
const PublicPrefix = "/uploads"

var allowedExt = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".pdf": true}

// LocalStore keeps uploaded files on local disk below Root.
type LocalStore struct {
	Root     string
	MaxBytes int64
	now      func() time.Time
}

func NewLocalStore(root string, maxBytes int64) LocalStore {
	return LocalStore{Root: root, MaxBytes: maxBytes, now: time.Now}
}

// SubdirFor maps a multipart field name to its folder.
func SubdirFor(field string) string {
	switch field {
	case "profilePic", "profileImage":
		return "profile"
	case "certificate":
		return "certificates"
	default:
		return "others"
	}
}

// Save validates and writes fh, returning its public path ("/uploads/<sub>/<name>").
func (s LocalStore) Save(field string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", domain.ValidationError{Field: field, Msg: "file is required"}
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExt[ext] {
		return "", domain.ValidationError{Field: field, Msg: "Only JPG, JPEG, PNG and PDF files are allowed"}
	}
	if s.MaxBytes > 0 && fh.Size > s.MaxBytes {
		return "", domain.ValidationError{Field: field, Msg: fmt.Sprintf("file exceeds %d bytes", s.MaxBytes)}
	}

	sub := SubdirFor(field)
	dir := filepath.Join(s.Root, sub)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", domain.InternalError{Msg: "failed to prepare upload folder", Err: err}
	}

	name := s.fileName(fh.Filename, ext)
	src, err := fh.Open()
	if err != nil {
		return "", domain.InternalError{Msg: "failed to read upload", Err: err}
	}
	defer src.Close()

	dst, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", domain.InternalError{Msg: "failed to store upload", Err: err}
	}
	var reader io.Reader = src
	if s.MaxBytes > 0 {
		reader = io.LimitReader(src, s.MaxBytes+1)
	}
	n, copyErr := io.Copy(dst, reader)
	closeErr := dst.Close()
	if copyErr == nil && s.MaxBytes > 0 && n > s.MaxBytes {
		copyErr = domain.ValidationError{Field: field, Msg: fmt.Sprintf("file exceeds %d bytes", s.MaxBytes)}
	}
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(filepath.Join(dir, name))
		if domain.IsValidation(copyErr) {
			return "", copyErr
		}
		return "", domain.InternalError{Msg: "failed to store upload", Err: err}
	}
	return path.Join(PublicPrefix, sub, name), nil
}

// Remove deletes a file previously returned by Save. Unknown paths are ignored.
func (s LocalStore) Remove(publicPath string) error {
	rel, ok := strings.CutPrefix(publicPath, PublicPrefix+"/")
	if !ok || rel == "" || strings.Contains(rel, "..") {
		return nil
	}
	err := os.Remove(filepath.Join(s.Root, filepath.FromSlash(rel)))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s LocalStore) fileName(original, ext string) string {
	now := time.Now
	if s.now != nil {
		now = s.now
	}
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	return fmt.Sprintf("%s_%d_%s%s", utils.SafeFilenamePart(base), now().UnixMilli(), uuid.NewString()[:8], ext)
}
