package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"campuskit/lms-app/internal/domain"
	"campuskit/lms-app/internal/repository/inmem"
	"campuskit/lms-app/internal/service"
	"campuskit/lms-app/internal/storage"
)

const testJWTSecret = "handler-test-secret"

// newTestServer wires the full router against in-memory repositories and a
// temp-dir file store.
func newTestServer(t *testing.T) (*gin.Engine, *inmem.UserRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	files, err := storage.NewLocalStorage(t.TempDir(), zerolog.Nop())
	if err != nil {
		t.Fatalf("storage setup failed: %v", err)
	}

	userRepo := inmem.NewUserRepository()
	authService := service.NewAuthService(userRepo, testJWTSecret, 24*time.Hour)
	contentService := service.NewContentService(inmem.NewVideoRepository(), inmem.NewNoteRepository(), userRepo, files)
	quizService := service.NewQuizService(inmem.NewQuizRepository(), userRepo)
	adminService := service.NewAdminService(userRepo)

	router := gin.New()
	SetupRoutes(router, authService, contentService, quizService, adminService)
	return router, userRepo
}

// doJSON performs a JSON request, optionally with a bearer token.
func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// doUpload performs a multipart upload with an explicit part content type.
func doUpload(router *gin.Engine, path, token, title, filename, contentType, payload string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	_ = writer.WriteField("title", title)
	_ = writer.WriteField("description", "uploaded in test")

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, _ := writer.CreatePart(header)
	_, _ = io.Copy(part, strings.NewReader(payload))
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

// register creates an account via the API and returns the public profile.
func register(t *testing.T, router *gin.Engine, email, name, password, role string) UserResponse {
	t.Helper()
	body := map[string]string{"email": email, "name": name, "password": password}
	if role != "" {
		body["role"] = role
	}
	rec := doJSON(router, http.MethodPost, "/api/auth/register", "", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("register %s failed: %d %s", email, rec.Code, rec.Body.String())
	}
	var user UserResponse
	decodeBody(t, rec, &user)
	return user
}

// suspend flips an account to suspended directly in the repository.
func suspend(t *testing.T, repo *inmem.UserRepository, userID string) {
	t.Helper()
	if err := repo.UpdateStatus(context.Background(), userID, domain.StatusSuspended); err != nil {
		t.Fatalf("suspend failed: %v", err)
	}
}

// login authenticates via the API and returns the bearer token.
func login(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()
	rec := doJSON(router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s failed: %d %s", email, rec.Code, rec.Body.String())
	}
	var resp LoginResponse
	decodeBody(t, rec, &resp)
	return resp.AccessToken
}
