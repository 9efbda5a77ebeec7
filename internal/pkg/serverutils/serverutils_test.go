package serverutils

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"industrial-site-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticAllowList map[string]bool

func (s staticAllowList) IsApproved(_ context.Context, email string) (bool, error) {
	return s[email], nil
}

func decode[T any](t *testing.T, res *http.Response) BaseResponse[T] {
	t.Helper()
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	var out BaseResponse[T]
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

func gatedApp(sessions *SessionIssuer, allowList AllowList) *fiber.App {
	app := fiber.New()
	app.Get("/admin/ping", AdminGate(sessions, allowList), func(ctx *fiber.Ctx) error {
		return ctx.JSON(SuccessResponse("pong", ctx.Locals(LocalEmail)))
	})
	return app
}

func TestAdminGate(t *testing.T) {
	sessions := NewSessionIssuer("secret", time.Hour, "cms_session")
	app := gatedApp(sessions, staticAllowList{"boss@example.com": true})

	t.Run("missing token", func(t *testing.T) {
		res, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/ping", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		assert.Equal(t, LoginPath, decode[RedirectPayload](t, res).Data.Redirect)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := NewSessionIssuer("other", time.Hour, "cms_session")
		token, _, err := other.Issue("1", "boss@example.com")
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})

	t.Run("not approved", func(t *testing.T) {
		token, _, err := sessions.Issue("2", "intern@example.com")
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.AddCookie(&http.Cookie{Name: "cms_session", Value: token})
		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, res.StatusCode)
		assert.Equal(t, UnauthorizedLoginPath, decode[RedirectPayload](t, res).Data.Redirect)
	})

	t.Run("approved via query token", func(t *testing.T) {
		token, _, err := sessions.Issue("3", "Boss@Example.com")
		require.NoError(t, err)
		res, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/ping?token="+token, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "boss@example.com", decode[string](t, res).Data)
	})
}

func TestSessionIssuerRejectsExpiredTokens(t *testing.T) {
	sessions := NewSessionIssuer("secret", time.Nanosecond, "cms_session")
	token, _, err := sessions.Issue("1", "a@example.com")
	require.NoError(t, err)
	time.Sleep(time.Second)
	_, err = sessions.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

type sample struct {
	Name  string `json:"name" validate:"required"`
	Slug  string `json:"slug" validate:"omitempty,slug"`
	Email string `json:"email" validate:"omitempty,email"`
}

func TestValidateRequest(t *testing.T) {
	require.NoError(t, ValidateRequest(&sample{Name: "ok", Slug: "pipe-fabrication"}))

	err := ValidateRequest(&sample{Slug: "Not A Slug", Email: "nope"})
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	assert.Equal(t, "is required", appErr.Fields["name"])
	assert.Contains(t, appErr.Fields, "slug")
	assert.Equal(t, "must be a valid email address", appErr.Fields["email"])
}

func TestErrorHandlerMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(nil))
	app.Get("/conflict", func(ctx *fiber.Ctx) error { return apperror.Conflict("slug taken") })
	app.Get("/boom", func(ctx *fiber.Ctx) error { return errors.New("db exploded") })
	app.Get("/teapot", func(ctx *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/conflict", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	body := decode[any](t, res)
	assert.False(t, body.Success)
	assert.Equal(t, "slug taken", body.Message)

	res, err = app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Equal(t, "Internal server error", decode[any](t, res).Message)

	res, err = app.Test(httptest.NewRequest(http.MethodGet, "/teapot", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, res.StatusCode)
}
