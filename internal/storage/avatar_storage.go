package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AvatarStorage отвечает за файловое хранилище аватаров пользователей.
type AvatarStorage struct {
	rootPath       string
	maxUploadBytes int64
}

// NewAvatarStorage создаёт файловое хранилище.
func NewAvatarStorage(rootPath string, maxUploadMB int64) (*AvatarStorage, error) {
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: не удалось создать каталог %s: %w", rootPath, err)
	}

	return &AvatarStorage{
		rootPath:       rootPath,
		maxUploadBytes: maxUploadMB * 1024 * 1024,
	}, nil
}

// Save сохраняет аватар пользователя и возвращает относительный путь.
// Запись идёт во временный файл с последующим переименованием, чтобы
// по целевому пути никогда не лежал частично записанный файл.
func (s *AvatarStorage) Save(ctx context.Context, userID uuid.UUID, ext string, r io.Reader) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	fileName := fmt.Sprintf("avatar_%d%s", time.Now().UnixNano(), sanitizeExt(ext))

	userDir := filepath.Join(s.rootPath, userID.String())
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return "", 0, fmt.Errorf("storage: не удалось создать каталог пользователя: %w", err)
	}

	targetPath := filepath.Join(userDir, fileName)
	tempPath := targetPath + ".tmp"

	f, err := os.Create(tempPath)
	if err != nil {
		return "", 0, fmt.Errorf("storage: не удалось создать файл: %w", err)
	}
	defer f.Close()

	limitedReader := io.LimitedReader{R: r, N: s.maxUploadBytes + 1}
	written, err := io.Copy(f, &limitedReader)
	if err != nil {
		_ = os.Remove(tempPath)
		return "", 0, fmt.Errorf("storage: ошибка записи файла: %w", err)
	}

	if written > s.maxUploadBytes {
		_ = os.Remove(tempPath)
		return "", 0, fmt.Errorf("storage: размер файла превышает лимит %d байт", s.maxUploadBytes)
	}

	if err := f.Close(); err != nil {
		return "", 0, fmt.Errorf("storage: ошибка закрытия файла: %w", err)
	}

	if err := os.Rename(tempPath, targetPath); err != nil {
		return "", 0, fmt.Errorf("storage: не удалось переименовать файл: %w", err)
	}

	relative := filepath.Join(userID.String(), fileName)
	return filepath.ToSlash(relative), written, nil
}

// Delete удаляет файл из хранилища. Отсутствующий файл не считается ошибкой.
func (s *AvatarStorage) Delete(ctx context.Context, relativePath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if relativePath == "" {
		return nil
	}

	target := filepath.Join(s.rootPath, filepath.FromSlash(relativePath))
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: не удалось удалить файл: %w", err)
	}
	return nil
}

// sanitizeExt оставляет только безопасное расширение файла.
func sanitizeExt(ext string) string {
	ext = strings.ToLower(filepath.Ext("x" + ext))
	ext = strings.ReplaceAll(ext, "..", "")
	if ext == "" {
		ext = ".img"
	}
	return ext
}
