package model

import "strings"

// TaxCondition is the client's VAT category ("Consumidor final / IVA").
type TaxCondition string

const (
	TaxFinalConsumer      TaxCondition = "consumidor_final"
	TaxRegisteredTaxpayer TaxCondition = "responsable_inscripto"
	TaxExempt             TaxCondition = "exento"
	TaxSimplifiedTaxpayer TaxCondition = "monotributo"
)

// TaxConditions lists the selectable tax conditions in display order.
var TaxConditions = []TaxCondition{
	TaxFinalConsumer,
	TaxRegisteredTaxpayer,
	TaxExempt,
	TaxSimplifiedTaxpayer,
}

// Valid reports whether t is empty (no selection) or a known condition.
func (t TaxCondition) Valid() bool {
	if t == "" {
		return true
	}
	for _, c := range TaxConditions {
		if t == c {
			return true
		}
	}
	return false
}

// Fulfillment is the answer to "Servicio Fullfilment".
type Fulfillment string

const (
	FulfillmentYes Fulfillment = "SI"
	FulfillmentNo  Fulfillment = "NO"
)

// Valid reports whether f is empty (no answer), SI or NO.
func (f Fulfillment) Valid() bool {
	return f == "" || f == FulfillmentYes || f == FulfillmentNo
}

// ClientApplication is one filled-in onboarding form.
// Tags serve both JSON bodies and form posts parsed by fiber.
type ClientApplication struct {
	CompanyName    string       `json:"company_name" form:"company_name"`
	AccountManager string       `json:"account_manager" form:"account_manager"`
	Contact        string       `json:"contact" form:"contact"`
	CUIT           string       `json:"cuit" form:"cuit"`
	Email          string       `json:"email" form:"email"`
	Phone          string       `json:"phone" form:"phone"`
	Address        string       `json:"address" form:"address"`
	TaxCondition   TaxCondition `json:"tax_condition" form:"tax_condition"`
	CutoffSchedule string       `json:"cutoff_schedule" form:"cutoff_schedule"`
	PickupSchedule string       `json:"pickup_schedule" form:"pickup_schedule"`
	Fulfillment    Fulfillment  `json:"fulfillment" form:"fulfillment"`
}

// Normalized returns a copy with surrounding whitespace removed from every field.
func (a ClientApplication) Normalized() ClientApplication {
	return ClientApplication{
		CompanyName:    strings.TrimSpace(a.CompanyName),
		AccountManager: strings.TrimSpace(a.AccountManager),
		Contact:        strings.TrimSpace(a.Contact),
		CUIT:           strings.TrimSpace(a.CUIT),
		Email:          strings.TrimSpace(a.Email),
		Phone:          strings.TrimSpace(a.Phone),
		Address:        strings.TrimSpace(a.Address),
		TaxCondition:   TaxCondition(strings.TrimSpace(string(a.TaxCondition))),
		CutoffSchedule: strings.TrimSpace(a.CutoffSchedule),
		PickupSchedule: strings.TrimSpace(a.PickupSchedule),
		Fulfillment:    Fulfillment(strings.ToUpper(strings.TrimSpace(string(a.Fulfillment)))),
	}
}
