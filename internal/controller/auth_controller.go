package controller

import (
	"time"

	"industrial-site-be/internal/dto"
	"industrial-site-be/internal/pkg/apperror"
	"industrial-site-be/internal/pkg/logger"
	"industrial-site-be/internal/pkg/serverutils"
	"industrial-site-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const oauthStateCookie = "oauth_state"

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Session(ctx *fiber.Ctx) error
	OAuthLogin(ctx *fiber.Ctx) error
	OAuthCallback(ctx *fiber.Ctx) error
}

type authController struct {
	service      service.IAuthService
	oauthService service.IOAuthService
	sessions     *serverutils.SessionIssuer
	clientURL    string
	secure       bool
	logger       logger.ILogger
}

func NewAuthController(
	service service.IAuthService,
	oauthService service.IOAuthService,
	sessions *serverutils.SessionIssuer,
	clientURL string,
	secure bool,
	log logger.ILogger,
) IAuthController {
	return &authController{
		service:      service,
		oauthService: oauthService,
		sessions:     sessions,
		clientURL:    clientURL,
		secure:       secure,
		logger:       log,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/v1")
	h.Post("/login", c.Login)
	h.Post("/logout", c.Logout)
	h.Get("/session", c.Session)
	h.Get("/oauth/:provider", c.OAuthLogin)
	h.Get("/oauth/:provider/callback", c.OAuthCallback)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bindRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	c.sessions.SetCookie(ctx, res.AccessToken, res.ExpiresAt, c.secure)
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	c.sessions.ClearCookie(ctx)
	return ctx.JSON(serverutils.SuccessResponse("Logged out", serverutils.RedirectPayload{Redirect: serverutils.LoginPath}))
}

func (c *authController) Session(ctx *fiber.Ctx) error {
	res, err := c.service.Session(ctx.UserContext(), c.sessions.TokenFromRequest(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get session", res))
}

func (c *authController) OAuthLogin(ctx *fiber.Ctx) error {
	url, state, err := c.oauthService.GetLoginURL(ctx.Params("provider"))
	if err != nil {
		return err
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/",
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
		Secure:   c.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return ctx.Redirect(url, fiber.StatusTemporaryRedirect)
}

func (c *authController) OAuthCallback(ctx *fiber.Ctx) error {
	provider := ctx.Params("provider")
	code := ctx.Query("code")
	if code == "" {
		return apperror.BadRequest("Missing code")
	}

	state := ctx.Query("state")
	if state == "" || state != ctx.Cookies(oauthStateCookie) {
		c.logger.Warn("OAUTH", "State mismatch on callback", map[string]interface{}{"provider": provider})
		return apperror.BadRequest("Invalid state")
	}
	ctx.ClearCookie(oauthStateCookie)

	res, err := c.oauthService.HandleCallback(ctx.UserContext(), provider, code)
	if err != nil {
		return err
	}

	c.logger.Info("OAUTH", "User signed in", map[string]interface{}{
		"provider": provider,
		"email":    res.User.Email,
		"approved": res.Approved,
	})

	c.sessions.SetCookie(ctx, res.AccessToken, res.ExpiresAt, c.secure)
	return ctx.Redirect(c.clientURL+res.Redirect, fiber.StatusTemporaryRedirect)
}
