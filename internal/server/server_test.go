package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"industrial-site-be/internal/bootstrap"
	"industrial-site-be/internal/config"
	"industrial-site-be/internal/model"
	"industrial-site-be/pkg/database"
	"industrial-site-be/pkg/richtext"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	adminEmail    = "ops@example.com"
	adminPassword = "correct-horse"
)

type envelope struct {
	Success bool              `json:"success"`
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func testConfig(t *testing.T) *config.Config {
	dir := t.TempDir()
	return &config.Config{
		App: config.AppConfig{
			Port:               "0",
			ClientURL:          "http://localhost:5173",
			Environment:        "test",
			LogFilePath:        filepath.Join(dir, "app.log"),
			EditorLogFilePath:  filepath.Join(dir, "editor.log"),
			CorsAllowedOrigins: "http://localhost:5173",
			BodyLimitMB:        12,
		},
		Auth: config.AuthConfig{
			JWTSecret:  "test-secret",
			SessionTTL: time.Hour,
			CookieName: "cms_session",
		},
		Storage: config.StorageConfig{
			Driver:        "local",
			LocalDir:      filepath.Join(dir, "uploads"),
			PublicURL:     "http://localhost:3000/uploads",
			DefaultBucket: "uploads",
		},
		Cache: config.CacheConfig{
			PageTTL:      time.Minute,
			AllowListTTL: time.Minute,
		},
		Scheduler: config.SchedulerConfig{JobExpiryInterval: time.Hour},
	}
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	cfg := testConfig(t)
	db, err := database.NewInMemory(model.All()...)
	require.NoError(t, err)

	container, err := bootstrap.NewContainer(db, cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, container.Start(ctx))
	t.Cleanup(func() {
		cancel()
		container.Close()
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return New(cfg, container).GetApp(), db
}

func seedAdmin(t *testing.T, db *gorm.DB, approved bool) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)
	hashStr := string(hash)
	require.NoError(t, db.Create(&model.User{Id: uuid.New(), Email: adminEmail, FullName: "Ops", PasswordHash: &hashStr}).Error)
	if approved {
		require.NoError(t, db.Create(&model.ApprovedEmail{Id: uuid.New(), Email: adminEmail}).Error)
	}
}

func do(t *testing.T, app *fiber.App, method, path string, body any, cookie *http.Cookie) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	res, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	res.Body.Close()

	var env envelope
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	} else {
		env.Data = raw
	}
	return res, env
}

func login(t *testing.T, app *fiber.App) (*http.Cookie, envelope) {
	t.Helper()
	res, env := do(t, app, http.MethodPost, "/api/auth/v1/login", map[string]string{
		"email":    adminEmail,
		"password": adminPassword,
	}, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, env.Message)
	for _, c := range res.Cookies() {
		if c.Name == "cms_session" {
			return c, env
		}
	}
	t.Fatal("session cookie not set")
	return nil, env
}

func paragraph(text string) richtext.Document {
	return richtext.NewDocument(richtext.Paragraph(richtext.Text(text)))
}

func TestHealthAndMetrics(t *testing.T) {
	app, _ := newTestApp(t)

	res, env := do(t, app, http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"editor_connections":0}`, string(env.Data))

	res, _ = do(t, app, http.MethodGet, "/metrics", nil, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestAdminRequiresApprovedSession(t *testing.T) {
	app, db := newTestApp(t)
	seedAdmin(t, db, false)

	res, env := do(t, app, http.MethodGet, "/api/admin/v1/dashboard", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.JSONEq(t, `{"redirect":"/login"}`, string(env.Data))

	cookie, loginEnv := login(t, app)
	assert.Contains(t, string(loginEnv.Data), `"approved":false`)

	res, env = do(t, app, http.MethodGet, "/api/admin/v1/dashboard", nil, cookie)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.JSONEq(t, `{"redirect":"/login?error=unauthorized"}`, string(env.Data))

	res, _ = do(t, app, http.MethodPost, "/api/auth/v1/login", map[string]string{"email": adminEmail, "password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestContentPublishingFlow(t *testing.T) {
	app, db := newTestApp(t)
	seedAdmin(t, db, true)
	cookie, _ := login(t, app)

	res, env := do(t, app, http.MethodPost, "/api/admin/v1/services", map[string]any{
		"name":        "Pipe Fabrication & Welding",
		"description": paragraph("Shop and field fabrication."),
		"published":   true,
	}, cookie)
	require.Equal(t, http.StatusCreated, res.StatusCode, env.Message)

	var created struct {
		Id              uuid.UUID `json:"id"`
		Slug            string    `json:"slug"`
		DescriptionHTML string    `json:"description_html"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "pipe-fabrication-welding", created.Slug)
	assert.Equal(t, "<p>Shop and field fabrication.</p>", created.DescriptionHTML)

	res, env = do(t, app, http.MethodGet, "/api/public/v1/services/pipe-fabrication-welding", nil, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, env.Message)
	assert.Contains(t, string(env.Data), "Shop and field fabrication.")

	res, _ = do(t, app, http.MethodPost, "/api/admin/v1/services", map[string]any{
		"name": "Pipe Fabrication Welding",
	}, cookie)
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	res, env = do(t, app, http.MethodPost, "/api/admin/v1/services", map[string]any{
		"name":        "Broken",
		"description": map[string]any{"type": "paragraph"},
	}, cookie)
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	assert.Contains(t, env.Errors, "description")

	res, env = do(t, app, http.MethodPost, "/api/admin/v1/services", map[string]any{"name": ""}, cookie)
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	assert.Equal(t, "is required", env.Errors["name"])

	res, _ = do(t, app, http.MethodDelete, "/api/admin/v1/services/"+created.Id.String(), nil, cookie)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = do(t, app, http.MethodGet, "/api/admin/v1/services/not-a-uuid", nil, cookie)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestNewsMarkdownEndpoint(t *testing.T) {
	app, db := newTestApp(t)
	seedAdmin(t, db, true)
	cookie, _ := login(t, app)

	res, env := do(t, app, http.MethodPost, "/api/admin/v1/news", map[string]any{
		"title":     "Plant Turnaround Complete",
		"content":   paragraph("Finished two days early."),
		"published": true,
	}, cookie)
	require.Equal(t, http.StatusCreated, res.StatusCode, env.Message)

	res, env = do(t, app, http.MethodGet, "/api/public/v1/news/plant-turnaround-complete/markdown", nil, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/markdown; charset=utf-8", res.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, "# Plant Turnaround Complete\n\nFinished two days early.\n", string(env.Data))
}

func TestDocumentPreviewAndSlug(t *testing.T) {
	app, db := newTestApp(t)
	seedAdmin(t, db, true)
	cookie, _ := login(t, app)

	res, env := do(t, app, http.MethodGet, "/api/admin/v1/slug?title=Oil%20%26%20Gas", nil, cookie)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(env.Data), `"slug":"oil-gas"`)

	res, env = do(t, app, http.MethodPost, "/api/admin/v1/documents/preview", map[string]any{
		"document": paragraph("Preview me"),
	}, cookie)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var preview struct {
		HTML  string `json:"html"`
		Empty bool   `json:"empty"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &preview))
	assert.Equal(t, "<p>Preview me</p>", preview.HTML)
	assert.False(t, preview.Empty)
}

func TestContactValidation(t *testing.T) {
	app, _ := newTestApp(t)

	res, env := do(t, app, http.MethodPost, "/api/public/v1/contact", map[string]string{
		"name":  "Dana",
		"email": "not-an-email",
	}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	assert.Contains(t, env.Errors, "email")
	assert.Contains(t, env.Errors, "message")
}
