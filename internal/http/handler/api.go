package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"

	"clientintake/internal/i18n"
	"clientintake/internal/model"
	"clientintake/internal/service"
)

// CreateSubmission godoc
// @Summary      Submit a client application
// @Description  Validates the application and relays it to the configured form endpoint. Accepts JSON or form-encoded bodies.
// @Tags         submissions
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        application  body      model.ClientApplication  true  "Client application"
// @Param        Accept-Language  header  string  false  "Language of error messages (es, en)"
// @Success      201  {object}  model.Submission
// @Failure      400  {object}  errorPayload
// @Failure      422  {object}  errorPayload
// @Failure      429  {object}  errorPayload
// @Failure      502  {object}  errorPayload
// @Router       /api/v1/submissions [post]
func CreateSubmission(svc service.IntakeService, defaultLang language.Tag) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tag, _ := i18n.Resolve(c.Query(i18n.LangParam), "", c.Get(fiber.HeaderAcceptLanguage), defaultLang)
		l := i18n.New(tag)

		var app model.ClientApplication
		if err := c.BodyParser(&app); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", l.T("error.bad_request"))
		}

		sub, err := svc.Submit(c.UserContext(), app)
		if err != nil {
			var verr *service.ValidationError
			if errors.As(err, &verr) {
				return writeFieldError(c, fiber.StatusUnprocessableEntity, "VALIDATION_FAILED", validationMessage(l, verr), verr.Field)
			}
			return writeError(c, fiber.StatusBadGateway, "RELAY_FAILED", l.T("error.relay"))
		}
		return c.Status(fiber.StatusCreated).JSON(sub)
	}
}
