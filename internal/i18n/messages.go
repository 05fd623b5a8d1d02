package i18n

// messages maps a message key to its Spanish and English text.
// Keys holding a %s verb are formatted with a field name.
var messages = map[string][2]string{
	"page.title":  {"Planilla de altas - clientes", "Client onboarding form"},
	"page.intro":  {"Hola, a continuación les dejamos los siguientes ítems para completar. Esta planilla se utilizará para facilitar el contacto y la información entre las partes.", "Hello, please fill in the following items. This form will be used to ease contact and the exchange of information between both parties."},
	"page.footer": {"Soluciones logísticas profesionales", "Professional logistics solutions"},

	"label.company_name":    {"Nombre de la empresa", "Company name"},
	"label.account_manager": {"Nombre de la persona a cargo de la cuenta", "Name of the account manager"},
	"label.contact":         {"Contacto", "Contact"},
	"label.cuit":            {"CUIT", "CUIT (tax ID)"},
	"label.email":           {"Email", "Email"},
	"label.phone":           {"Teléfono", "Phone"},
	"label.address":         {"Dirección", "Address"},
	"label.tax_condition":   {"Consumidor final / IVA", "Final consumer / VAT"},
	"label.cutoff_schedule": {"Horario de corte", "Cut-off time"},
	"label.pickup_schedule": {"Horario de colecta", "Pickup time"},
	"label.fulfillment":     {"Servicio Fullfilment", "Fulfillment service"},

	"placeholder.company_name":    {"Ingresa el nombre de la empresa", "Enter the company name"},
	"placeholder.account_manager": {"Ingresa el nombre de la persona a cargo", "Enter the account manager's name"},
	"placeholder.contact":         {"Información de contacto adicional", "Additional contact information"},
	"placeholder.cuit":            {"XX-XXXXXXXX-X", "XX-XXXXXXXX-X"},
	"placeholder.email":           {"correo@empresa.com", "mail@company.com"},
	"placeholder.phone":           {"+54 11 1234-5678", "+54 11 1234-5678"},
	"placeholder.address":         {"Dirección completa", "Full address"},
	"placeholder.cutoff_schedule": {"Especifica el horario de corte", "Specify the cut-off time"},
	"placeholder.pickup_schedule": {"Especifica el horario de colecta", "Specify the pickup time"},

	"option.none":                  {"Selecciona una opción", "Select an option"},
	"option.consumidor_final":      {"Consumidor Final", "Final Consumer"},
	"option.responsable_inscripto": {"Responsable Inscripto", "Registered Taxpayer"},
	"option.exento":                {"Exento", "Exempt"},
	"option.monotributo":           {"Monotributo", "Simplified Regime (Monotributo)"},
	"option.SI":                    {"SÍ", "YES"},
	"option.NO":                    {"NO", "NO"},

	"button.submit":     {"Enviar Planilla", "Submit form"},
	"button.submitting": {"Enviando...", "Sending..."},

	"success.title": {"¡Formulario Enviado!", "Form submitted!"},
	"success.body":  {"Gracias por completar tu información.", "Thank you for completing your information."},

	// Field names as they appear inside error messages.
	"field.company_name":    {"nombre empresa", "company name"},
	"field.account_manager": {"nombre persona cargo", "account manager"},
	"field.email":           {"email", "email"},
	"field.phone":           {"telefono", "phone"},
	"field.address":         {"direccion", "address"},
	"field.tax_condition":   {"consumidor final iva", "tax condition"},
	"field.fulfillment":     {"servicio fullfilment", "fulfillment service"},

	"error.required":       {"Por favor completa el campo: %s", "Please fill in the field: %s"},
	"error.invalid_email":  {"Por favor ingresa un email válido", "Please enter a valid email"},
	"error.invalid_choice": {"Por favor selecciona una opción válida para: %s", "Please select a valid option for: %s"},
	"error.relay":          {"Error al enviar el formulario. Por favor, intenta nuevamente.", "Error submitting the form. Please try again."},
	"error.bad_request":    {"No se pudo leer el formulario.", "The form could not be read."},
	"error.rate_limited":   {"Demasiados envíos. Espera un momento e intenta nuevamente.", "Too many submissions. Please wait a moment and try again."},
}
