package files

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Upload kinds, used as subdirectories inside the store.
const (
	KindPoster = "posters"
	KindMovie  = "movies"
)

// FileInfo describes one stored file, in the shape the upload endpoints
// return.
type FileInfo struct {
	Name       string    `json:"filename"`
	URL        string    `json:"url"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Store keeps uploaded files on the local disk and serves them under
// /uploads/. It stands in for the hosted blob service of the upstream
// deployment.
type Store struct {
	dir    string
	logger *logrus.Logger
}

// NewStore creates the upload directory if needed and returns the store.
func NewStore(dir string, logger *logrus.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Save writes the reader contents under a unique name. kind selects a
// subdirectory ("" stores at the top level). The original filename is kept
// as a suffix for readability.
func (s *Store) Save(kind, filename string, r io.Reader) (FileInfo, error) {
	base := filepath.Base(filename)
	if base == "." || base == string(filepath.Separator) {
		return FileInfo{}, fmt.Errorf("invalid filename %q", filename)
	}

	name := uuid.NewString() + "-" + base
	if kind != "" {
		name = path.Join(kind, name)
		if err := os.MkdirAll(filepath.Join(s.dir, kind), 0755); err != nil {
			return FileInfo{}, fmt.Errorf("failed to create %s directory: %w", kind, err)
		}
	}

	dst, err := os.Create(filepath.Join(s.dir, filepath.FromSlash(name)))
	if err != nil {
		return FileInfo{}, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, r)
	if err != nil {
		return FileInfo{}, fmt.Errorf("failed to write file: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"file":       name,
		"size_bytes": size,
	}).Info("File uploaded")

	return FileInfo{
		Name:       name,
		URL:        "/uploads/" + name,
		Size:       size,
		UploadedAt: time.Now(),
	}, nil
}

// List returns every stored file, newest first.
func (s *Store) List() ([]FileInfo, error) {
	var infos []FileInfo
	err := filepath.WalkDir(s.dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.dir, p)
		if err != nil {
			return err
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		infos = append(infos, FileInfo{
			Name:       name,
			URL:        "/uploads/" + name,
			Size:       fi.Size(),
			UploadedAt: fi.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	sort.Slice(infos, func(i, j int) bool {
		if infos[i].UploadedAt.Equal(infos[j].UploadedAt) {
			return infos[i].Name < infos[j].Name
		}
		return infos[i].UploadedAt.After(infos[j].UploadedAt)
	})
	return infos, nil
}

// Delete removes one stored file by its listed name. Names that escape the
// upload directory are rejected.
func (s *Store) Delete(name string) error {
	clean := path.Clean("/" + name)[1:]
	if clean == "" || strings.HasPrefix(clean, "..") {
		return fmt.Errorf("invalid file name %q", name)
	}

	target := filepath.Join(s.dir, filepath.FromSlash(clean))
	if err := os.Remove(target); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	s.logger.WithField("file", clean).Info("File deleted")
	return nil
}

// Dir returns the root directory files are stored in, for static serving.
func (s *Store) Dir() string {
	return s.dir
}
