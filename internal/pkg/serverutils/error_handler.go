package serverutils

import (
	"errors"

	"industrial-site-be/internal/pkg/apperror"
	"industrial-site-be/internal/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns errors returned by handlers into the JSON envelope.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return WriteError(ctx, log, err)
	}
}

func WriteError(ctx *fiber.Ctx, log logger.ILogger, err error) error {
	if appErr, ok := apperror.As(err); ok {
		res := ErrorResponse(appErr.Code, appErr.Message)
		res.Errors = appErr.Fields
		if appErr.Code >= fiber.StatusInternalServerError && log != nil {
			log.Error("HTTP", appErr.Error(), map[string]interface{}{"path": ctx.Path(), "method": ctx.Method()})
		}
		return ctx.Status(appErr.Code).JSON(res)
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		res := ErrorResponse(fiber.StatusUnprocessableEntity, "Validation failed")
		res.Errors = validationFields(verrs)
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(res)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
	}

	if log != nil {
		log.Error("HTTP", "Unhandled error", map[string]interface{}{
			"path":   ctx.Path(),
			"method": ctx.Method(),
			"error":  err.Error(),
		})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
}
