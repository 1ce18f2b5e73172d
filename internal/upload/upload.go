package upload

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Storage writes uploaded files to Dir and serves them under /uploads/.
// Filenames are prefixed with the upload timestamp so repeated uploads of
// the same file never collide.
type Storage struct {
	Dir string
}

func NewStorage(dir string) Storage {
	return Storage{Dir: dir}
}

func (s Storage) Store(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}
	if err := c.SaveFile(file, filepath.Join(s.Dir, name)); err != nil {
		return "", err
	}

	return "/uploads/" + name, nil
}
