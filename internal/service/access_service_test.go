package service

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"industrial-site-be/internal/config"
	"industrial-site-be/internal/dto"
	"industrial-site-be/internal/pkg/serverutils"
	"industrial-site-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAccessNotifier struct {
	revoked []uuid.UUID
}

func (n *recordingAccessNotifier) NotifyAccessRevoked(userID uuid.UUID) {
	n.revoked = append(n.revoked, userID)
}

func newAccessServices(t *testing.T) (IApprovedEmailService, IAuthService, *memory.AllowListCache) {
	env := newTestEnv(t)
	allowCache := memory.NewAllowListCache(time.Minute)
	allowList := NewApprovedEmailService(env.uowFactory, allowCache, nil, env.log)
	sessions := serverutils.NewSessionIssuer("test-secret", time.Hour, "cms_session")
	return allowList, NewAuthService(env.uowFactory, sessions, allowList, env.log), allowCache
}

func TestApprovedEmailServiceLifecycle(t *testing.T) {
	allowList, _, allowCache := newAccessServices(t)
	ctx := context.Background()

	approved, err := allowList.IsApproved(ctx, "Editor@Example.com")
	require.NoError(t, err)
	assert.False(t, approved)

	// The negative answer is cached and then cleared by Approve.
	_, found := allowCache.Get("editor@example.com")
	assert.True(t, found)

	created, err := allowList.Approve(ctx, &dto.ApprovedEmailRequest{Email: " Editor@Example.com ", Note: "marketing"})
	require.NoError(t, err)
	assert.Equal(t, "editor@example.com", created.Email)

	approved, err = allowList.IsApproved(ctx, "EDITOR@example.com")
	require.NoError(t, err)
	assert.True(t, approved)

	_, err = allowList.Approve(ctx, &dto.ApprovedEmailRequest{Email: "editor@example.com"})
	requireAppError(t, err, http.StatusConflict)

	list, err := allowList.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "marketing", list[0].Note)

	require.NoError(t, allowList.Revoke(ctx, created.Id))
	approved, err = allowList.IsApproved(ctx, "editor@example.com")
	require.NoError(t, err)
	assert.False(t, approved)

	requireAppError(t, allowList.RevokeByEmail(ctx, "editor@example.com"), http.StatusNotFound)
}

func TestApprovedEmailRevokeNotifiesSignedInUser(t *testing.T) {
	env := newTestEnv(t)
	notifier := &recordingAccessNotifier{}
	allowList := NewApprovedEmailService(env.uowFactory, memory.NewAllowListCache(time.Minute), notifier, env.log)
	auth := NewAuthService(env.uowFactory, serverutils.NewSessionIssuer("test-secret", time.Hour, "cms_session"), allowList, env.log)
	ctx := context.Background()

	admin, err := auth.CreateAdmin(ctx, &dto.CreateAdminRequest{Email: "lead@example.com", FullName: "Lead", Password: "correct-horse"})
	require.NoError(t, err)
	_, err = allowList.Approve(ctx, &dto.ApprovedEmailRequest{Email: "lead@example.com"})
	require.NoError(t, err)
	_, err = allowList.Approve(ctx, &dto.ApprovedEmailRequest{Email: "pending@example.com"})
	require.NoError(t, err)

	require.NoError(t, allowList.RevokeByEmail(ctx, "Lead@Example.com"))
	assert.Equal(t, []uuid.UUID{admin.Id}, notifier.revoked)

	// No account has signed in with this email yet.
	require.NoError(t, allowList.RevokeByEmail(ctx, "pending@example.com"))
	assert.Len(t, notifier.revoked, 1)
}

func TestApprovedEmailServiceBlankEmail(t *testing.T) {
	allowList, _, _ := newAccessServices(t)
	approved, err := allowList.IsApproved(context.Background(), "  ")
	require.NoError(t, err)
	assert.False(t, approved)
}

func TestAuthServiceLogin(t *testing.T) {
	allowList, auth, _ := newAccessServices(t)
	ctx := context.Background()

	_, err := auth.CreateAdmin(ctx, &dto.CreateAdminRequest{Email: "Ops@Example.com", FullName: "Ops", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = auth.Login(ctx, &dto.LoginRequest{Email: "ops@example.com", Password: "wrong-password"})
	requireAppError(t, err, http.StatusUnauthorized)

	_, err = auth.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "correct-horse"})
	requireAppError(t, err, http.StatusUnauthorized)

	res, err := auth.Login(ctx, &dto.LoginRequest{Email: "OPS@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.False(t, res.Approved)
	assert.Equal(t, serverutils.UnauthorizedLoginPath, res.Redirect)
	assert.Equal(t, "ops@example.com", res.User.Email)

	_, err = allowList.Approve(ctx, &dto.ApprovedEmailRequest{Email: "ops@example.com"})
	require.NoError(t, err)

	res, err = auth.Login(ctx, &dto.LoginRequest{Email: "ops@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.True(t, res.Approved)
	assert.Equal(t, serverutils.AdminHomePath, res.Redirect)

	session, err := auth.Session(ctx, res.AccessToken)
	require.NoError(t, err)
	assert.True(t, session.Authenticated)
	assert.True(t, session.Approved)
	assert.Equal(t, "ops@example.com", session.Email)
}

func TestAuthServiceCreateAdminResetsPassword(t *testing.T) {
	_, auth, _ := newAccessServices(t)
	ctx := context.Background()

	first, err := auth.CreateAdmin(ctx, &dto.CreateAdminRequest{Email: "ops@example.com", FullName: "Ops", Password: "first-password"})
	require.NoError(t, err)
	second, err := auth.CreateAdmin(ctx, &dto.CreateAdminRequest{Email: "ops@example.com", FullName: "Operations", Password: "second-password"})
	require.NoError(t, err)
	assert.Equal(t, first.Id, second.Id)
	assert.Equal(t, "Operations", second.FullName)

	_, err = auth.Login(ctx, &dto.LoginRequest{Email: "ops@example.com", Password: "first-password"})
	requireAppError(t, err, http.StatusUnauthorized)
	_, err = auth.Login(ctx, &dto.LoginRequest{Email: "ops@example.com", Password: "second-password"})
	require.NoError(t, err)
}

func TestAuthServiceSessionWithoutToken(t *testing.T) {
	_, auth, _ := newAccessServices(t)
	ctx := context.Background()

	res, err := auth.Session(ctx, "")
	require.NoError(t, err)
	assert.False(t, res.Authenticated)
	assert.Equal(t, serverutils.LoginPath, res.Redirect)

	res, err = auth.Session(ctx, "not-a-jwt")
	require.NoError(t, err)
	assert.False(t, res.Authenticated)
}

func TestOAuthServiceLoginURL(t *testing.T) {
	env := newTestEnv(t)
	_, auth, _ := newAccessServices(t)

	unconfigured := NewOAuthService(env.uowFactory, auth, config.OAuthConfig{}, env.log)
	_, _, err := unconfigured.GetLoginURL("google")
	requireAppError(t, err, http.StatusServiceUnavailable)

	oauth := NewOAuthService(env.uowFactory, auth, config.OAuthConfig{
		GoogleClientID:     "client-id",
		GoogleClientSecret: "client-secret",
		GoogleRedirectURL:  "http://localhost:3000/api/auth/google/callback",
	}, env.log)

	_, _, err = oauth.GetLoginURL("github")
	requireAppError(t, err, http.StatusBadRequest)

	url, state, err := oauth.GetLoginURL("google")
	require.NoError(t, err)
	assert.NotEmpty(t, state)
	assert.True(t, strings.HasPrefix(url, "https://accounts.google.com/"))
	assert.Contains(t, url, "state="+state)
	assert.Contains(t, url, "client_id=client-id")
}
