package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/skillswap-backend/internal/dto"
)

func TestMediaHandler_UploadAvatar_Unauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewMediaHandler(nil, nil)
	r.POST("/media/avatar", handler.UploadAvatar)

	req, _ := http.NewRequest("POST", "/media/avatar", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMediaHandler_UploadAvatar_MissingFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewMediaHandler(nil, nil)
	r.POST("/media/avatar", withTestUser(uuid.New()), handler.UploadAvatar)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	_ = writer.WriteField("name", "avatar.png")
	_ = writer.Close()

	req, _ := http.NewRequest("POST", "/media/avatar", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Тело должно быть ровно одним JSON-объектом.
	var resp dto.ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "поле file обязательно", resp.Error)
}

func TestMediaHandler_UploadAvatar_BadExtension(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewMediaHandler(nil, nil)
	r.POST("/media/avatar", withTestUser(uuid.New()), handler.UploadAvatar)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, _ := writer.CreateFormFile("file", "notes.txt")
	_, _ = part.Write([]byte("plain text"))
	_ = writer.Close()

	req, _ := http.NewRequest("POST", "/media/avatar", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
