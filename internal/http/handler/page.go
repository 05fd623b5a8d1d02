package handler

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"

	"clientintake/internal/i18n"
	"clientintake/internal/model"
	"clientintake/internal/service"
)

const (
	formTemplate    = "form.html"
	successTemplate = "success.html"
	refreshHeader   = "Refresh"

	langCookieMaxAge = 365 * 24 * 60 * 60
)

// formView is the data of form.html.
type formView struct {
	L             *i18n.Localizer
	Form          model.ClientApplication
	Error         string
	ErrorField    string
	TaxConditions []model.TaxCondition
}

// successView is the data of success.html.
type successView struct {
	L       *i18n.Localizer
	Refresh string
}

// Pages serves the HTML onboarding form and its confirmation page.
type Pages struct {
	tmpl       *template.Template
	svc        service.IntakeService
	lang       language.Tag
	resetDelay time.Duration
}

// NewPages constructs the page handlers. defaultLang falls back to Spanish
// when it is not a supported language.
func NewPages(tmpl *template.Template, svc service.IntakeService, defaultLang string, resetDelay time.Duration) *Pages {
	tag, ok := i18n.ParseTag(defaultLang)
	if !ok {
		tag = language.Spanish
	}
	return &Pages{tmpl: tmpl, svc: svc, lang: tag, resetDelay: resetDelay}
}

// Form renders the empty form.
func (p *Pages) Form() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return p.renderForm(c, fiber.StatusOK, p.localizer(c), model.ClientApplication{}, "", "")
	}
}

// Submit validates and relays a posted form. Failures re-render the form
// with the submitted values and one message; success renders the
// confirmation page, which returns to an empty form after the reset delay.
func (p *Pages) Submit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := p.localizer(c)

		var app model.ClientApplication
		if err := c.BodyParser(&app); err != nil {
			return p.renderForm(c, fiber.StatusBadRequest, l, app, l.T("error.bad_request"), "")
		}

		if _, err := p.svc.Submit(c.UserContext(), app); err != nil {
			var verr *service.ValidationError
			if errors.As(err, &verr) {
				return p.renderForm(c, fiber.StatusUnprocessableEntity, l, app, validationMessage(l, verr), verr.Field)
			}
			return p.renderForm(c, fiber.StatusBadGateway, l, app, l.T("error.relay"), "")
		}

		refresh := fmt.Sprintf("%d;url=/?%s=%s", int(p.resetDelay.Seconds()), i18n.LangParam, l.Lang())
		c.Set(refreshHeader, refresh)
		return p.render(c, fiber.StatusOK, successTemplate, successView{L: l, Refresh: refresh})
	}
}

// RateLimited answers a throttled form post, keeping whatever could be parsed.
func (p *Pages) RateLimited(c *fiber.Ctx) error {
	l := p.localizer(c)
	var app model.ClientApplication
	_ = c.BodyParser(&app)
	return p.renderForm(c, fiber.StatusTooManyRequests, l, app, l.T("error.rate_limited"), "")
}

// localizer resolves the request language and remembers an explicit ?lang= choice.
func (p *Pages) localizer(c *fiber.Ctx) *i18n.Localizer {
	tag, persist := i18n.Resolve(c.Query(i18n.LangParam), c.Cookies(i18n.LangCookieName), c.Get(fiber.HeaderAcceptLanguage), p.lang)
	l := i18n.New(tag)
	if persist {
		c.Cookie(&fiber.Cookie{
			Name:     i18n.LangCookieName,
			Value:    l.Lang(),
			Path:     "/",
			MaxAge:   langCookieMaxAge,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return l
}

func (p *Pages) renderForm(c *fiber.Ctx, status int, l *i18n.Localizer, app model.ClientApplication, msg, field string) error {
	return p.render(c, status, formTemplate, formView{
		L:             l,
		Form:          app,
		Error:         msg,
		ErrorField:    field,
		TaxConditions: model.TaxConditions,
	})
}

func (p *Pages) render(c *fiber.Ctx, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}

func validationMessage(l *i18n.Localizer, verr *service.ValidationError) string {
	switch verr.Reason {
	case service.ReasonInvalidEmail:
		return l.T("error.invalid_email")
	case service.ReasonInvalidChoice:
		return l.T("error.invalid_choice", l.T("field."+verr.Field))
	default:
		return l.T("error.required", l.T("field."+verr.Field))
	}
}
