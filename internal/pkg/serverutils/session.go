package serverutils

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	LoginPath             = "/login"
	UnauthorizedLoginPath = "/login?error=unauthorized"
	AdminHomePath         = "/admin"

	LocalUserID = "user_id"
	LocalEmail  = "email"
)

var ErrInvalidSession = errors.New("invalid session")

type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SessionIssuer signs and verifies admin session tokens.
type SessionIssuer struct {
	secret     []byte
	ttl        time.Duration
	cookieName string
}

func NewSessionIssuer(secret string, ttl time.Duration, cookieName string) *SessionIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionIssuer{secret: []byte(secret), ttl: ttl, cookieName: cookieName}
}

func (s *SessionIssuer) CookieName() string {
	return s.cookieName
}

func (s *SessionIssuer) TTL() time.Duration {
	return s.ttl
}

func (s *SessionIssuer) Issue(userID, email string) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.ttl)
	claims := SessionClaims{
		Email: strings.ToLower(email),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

func (s *SessionIssuer) Parse(tokenStr string) (*SessionClaims, error) {
	if tokenStr == "" {
		return nil, ErrInvalidSession
	}
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid || claims.Email == "" {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

// TokenFromRequest reads the bearer header first, then the session cookie, then the token query
// parameter used by websocket clients.
func (s *SessionIssuer) TokenFromRequest(ctx *fiber.Ctx) string {
	authHeader := ctx.Get(fiber.HeaderAuthorization)
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}
	if cookie := ctx.Cookies(s.cookieName); cookie != "" {
		return cookie
	}
	return ctx.Query("token")
}

func (s *SessionIssuer) SetCookie(ctx *fiber.Ctx, token string, expiresAt time.Time, secure bool) {
	ctx.Cookie(&fiber.Cookie{
		Name:     s.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (s *SessionIssuer) ClearCookie(ctx *fiber.Ctx) {
	ctx.Cookie(&fiber.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// AllowList answers whether an authenticated email may use the admin area.
type AllowList interface {
	IsApproved(ctx context.Context, email string) (bool, error)
}

// AdminGate rejects requests without a valid session (401) and sessions whose email is not
// approved (403). Both carry the login redirect the client should follow.
func AdminGate(sessions *SessionIssuer, allowList AllowList) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claims, err := sessions.Parse(sessions.TokenFromRequest(ctx))
		if err != nil {
			res := BaseResponse[RedirectPayload]{
				Code:    fiber.StatusUnauthorized,
				Message: "Authentication required",
				Data:    RedirectPayload{Redirect: LoginPath},
			}
			return ctx.Status(fiber.StatusUnauthorized).JSON(res)
		}

		approved, err := allowList.IsApproved(ctx.UserContext(), claims.Email)
		if err != nil {
			return err
		}
		if !approved {
			res := BaseResponse[RedirectPayload]{
				Code:    fiber.StatusForbidden,
				Message: "Email is not approved for admin access",
				Data:    RedirectPayload{Redirect: UnauthorizedLoginPath},
			}
			return ctx.Status(fiber.StatusForbidden).JSON(res)
		}

		ctx.Locals(LocalUserID, claims.Subject)
		ctx.Locals(LocalEmail, claims.Email)
		return ctx.Next()
	}
}
