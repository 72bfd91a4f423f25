package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/h2non/filetype"

	"github.com/ignatzorin/skillswap-backend/internal/http/handlers/common"
	"github.com/ignatzorin/skillswap-backend/internal/logger"
	"github.com/ignatzorin/skillswap-backend/internal/repository"
	"github.com/ignatzorin/skillswap-backend/internal/storage"
)

// Разрешённые типы файлов для загрузки аватара
var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Разрешённые расширения файлов
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// MediaHandler управляет загрузкой аватаров пользователей.
type MediaHandler struct {
	users   *repository.UserRepository
	storage *storage.AvatarStorage
}

// NewMediaHandler создаёт новый хэндлер.
func NewMediaHandler(users *repository.UserRepository, storage *storage.AvatarStorage) *MediaHandler {
	return &MediaHandler{users: users, storage: storage}
}

// UploadAvatar обрабатывает POST /media/avatar.
// Старый аватар пользователя удаляется после успешной замены.
func (h *MediaHandler) UploadAvatar(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		common.RespondBadRequest(c, "поле file обязательно")
		return
	}

	if file.Size == 0 {
		common.RespondBadRequest(c, "файл не может быть пустым")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		common.RespondBadRequest(c, fmt.Sprintf("неподдерживаемый формат файла. Разрешены: %s", strings.Join(listAllowedExtensions(), ", ")))
		return
	}

	src, err := file.Open()
	if err != nil {
		common.RespondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	defer src.Close()

	// Первых 512 байт достаточно для определения реального типа файла.
	buffer := make([]byte, 512)
	n, err := src.Read(buffer)
	if err != nil && err != io.EOF {
		common.RespondBadRequest(c, "не удалось прочитать файл")
		return
	}

	kind, err := filetype.Match(buffer[:n])
	if err != nil || kind == filetype.Unknown {
		common.RespondBadRequest(c, "не удалось определить тип файла. Разрешены только изображения")
		return
	}

	contentType := kind.MIME.Value
	if !allowedMimeTypes[contentType] {
		common.RespondBadRequest(c, fmt.Sprintf("неподдерживаемый тип файла (%s)", contentType))
		return
	}

	// Расширение должно соответствовать реальному типу файла;
	// .jpg и .jpeg считаются одним типом.
	expectedExt := "." + kind.Extension
	if ext != expectedExt && !(ext == ".jpg" && expectedExt == ".jpeg") && !(ext == ".jpeg" && expectedExt == ".jpg") {
		common.RespondBadRequest(c, fmt.Sprintf("расширение файла (%s) не соответствует реальному типу (%s)", ext, expectedExt))
		return
	}

	if seeker, ok := src.(io.Seeker); ok {
		if _, err := seeker.Seek(0, io.SeekStart); err != nil {
			common.RespondError(c, http.StatusInternalServerError, "не удалось сбросить позицию файла")
			return
		}
	}

	current, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			common.RespondNotFound(c, "пользователь не найден")
			return
		}
		common.RespondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	relativePath, _, err := h.storage.Save(c.Request.Context(), userID, ext, src)
	if err != nil {
		common.RespondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	avatarURL := "/media/" + relativePath
	if err := h.users.UpdateAvatar(c.Request.Context(), userID, avatarURL); err != nil {
		_ = h.storage.Delete(c.Request.Context(), relativePath)
		common.RespondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if current.Avatar != nil {
		old := strings.TrimPrefix(*current.Avatar, "/media/")
		if err := h.storage.Delete(c.Request.Context(), old); err != nil {
			logger.Log.WithError(err).Warn("не удалось удалить старый аватар")
		}
	}

	c.JSON(http.StatusCreated, gin.H{"avatar": avatarURL})
}

// listAllowedExtensions возвращает список разрешённых расширений.
func listAllowedExtensions() []string {
	exts := make([]string, 0, len(allowedExtensions))
	for ext := range allowedExtensions {
		exts = append(exts, ext)
	}
	return exts
}
