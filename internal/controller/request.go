package controller

import (
	"industrial-site-be/internal/pkg/apperror"
	"industrial-site-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// bindRequest parses the JSON body into req and validates it.
func bindRequest(ctx *fiber.Ctx, req any) error {
	if err := ctx.BodyParser(req); err != nil {
		return apperror.Wrap(fiber.StatusBadRequest, "Invalid request body", err)
	}
	return serverutils.ValidateRequest(req)
}

func paramUUID(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, apperror.BadRequest("Invalid " + name)
	}
	return id, nil
}
