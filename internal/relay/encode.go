package relay

import (
	"fmt"
	"net/url"
	"strconv"

	"clientintake/internal/config"
	"clientintake/internal/model"
)

// Keys the relay endpoint receives. The recipient reads these names in the
// notification mail, so they stay in Spanish.
const (
	KeyCompanyName    = "Nombre_Empresa"
	KeyAccountManager = "Persona_a_Cargo"
	KeyContact        = "Contacto_Adicional"
	KeyCUIT           = "CUIT"
	KeyEmail          = "Email_Cliente"
	KeyPhone          = "Telefono"
	KeyAddress        = "Direccion"
	KeyTaxCondition   = "Consumidor_IVA"
	KeyCutoffSchedule = "Horario_Corte"
	KeyPickupSchedule = "Horario_Colecta"
	KeyFulfillment    = "Servicio_Fullfilment"

	// FormSubmit control fields.
	KeySubject      = "_subject"
	KeyCaptcha      = "_captcha"
	KeyTemplate     = "_template"
	KeyReplyTo      = "_replyto"
	KeyAutoResponse = "_autoresponse"
	KeyNext         = "_next"

	// Static-site form handlers route by form name.
	KeyFormName = "form-name"
)

const autoResponseFormat = "Hola %s,\n\nGracias por contactarnos. Hemos recibido correctamente la información de %s.\n\nNos pondremos en contacto contigo pronto.\n\nSaludos cordiales."

// EncodeOptions selects the provider flavour and its control values.
type EncodeOptions struct {
	Provider string
	FormName string
	NextURL  string
	Template string
	Captcha  bool
}

// OptionsFromConfig maps relay configuration to encoding options.
func OptionsFromConfig(cfg config.RelayConfig) EncodeOptions {
	return EncodeOptions{
		Provider: cfg.Provider,
		FormName: cfg.FormName,
		NextURL:  cfg.NextURL,
		Template: cfg.Template,
		Captcha:  cfg.Captcha,
	}
}

// Encode maps an application to the form-encoded body posted to the endpoint.
func Encode(app model.ClientApplication, opt EncodeOptions) url.Values {
	v := url.Values{}
	v.Set(KeyCompanyName, app.CompanyName)
	v.Set(KeyAccountManager, app.AccountManager)
	v.Set(KeyContact, app.Contact)
	v.Set(KeyCUIT, app.CUIT)
	v.Set(KeyEmail, app.Email)
	v.Set(KeyPhone, app.Phone)
	v.Set(KeyAddress, app.Address)
	v.Set(KeyTaxCondition, string(app.TaxCondition))
	v.Set(KeyCutoffSchedule, app.CutoffSchedule)
	v.Set(KeyPickupSchedule, app.PickupSchedule)
	v.Set(KeyFulfillment, string(app.Fulfillment))

	switch opt.Provider {
	case config.ProviderNetlify:
		v.Set(KeyFormName, opt.FormName)
	default:
		v.Set(KeySubject, "🏢 Nuevo Cliente: "+orDefault(app.CompanyName, "Sin nombre"))
		v.Set(KeyCaptcha, strconv.FormatBool(opt.Captcha))
		if opt.Template != "" {
			v.Set(KeyTemplate, opt.Template)
		}
		v.Set(KeyReplyTo, app.Email)
		v.Set(KeyAutoResponse, fmt.Sprintf(autoResponseFormat,
			orDefault(app.AccountManager, "estimado cliente"),
			orDefault(app.CompanyName, "su empresa"),
		))
		if opt.NextURL != "" {
			v.Set(KeyNext, opt.NextURL)
		}
	}
	return v
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
