package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"clientintake/internal/model"
	"clientintake/internal/relay"
)

var ErrRelayFailed = errors.New("relay submission failed")

// Validation reasons.
const (
	ReasonRequired      = "required"
	ReasonInvalidEmail  = "invalid_email"
	ReasonInvalidChoice = "invalid_choice"
)

// Form field keys, shared by the HTML form, the JSON API and error payloads.
const (
	FieldCompanyName    = "company_name"
	FieldAccountManager = "account_manager"
	FieldEmail          = "email"
	FieldPhone          = "phone"
	FieldAddress        = "address"
	FieldTaxCondition   = "tax_condition"
	FieldFulfillment    = "fulfillment"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError names the first field that blocks a submission.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// IntakeService defines the use cases of the onboarding form.
type IntakeService interface {
	// Validate checks required fields, email format and enumerated choices.
	Validate(app model.ClientApplication) error

	// Submit normalizes and validates the application, then relays it once.
	Submit(ctx context.Context, app model.ClientApplication) (*model.Submission, error)
}

type intakeService struct {
	relay  relay.Relay
	log    *zap.Logger
	tracer trace.Tracer
	now    func() time.Time
}

// NewIntakeService constructs a new IntakeService.
func NewIntakeService(r relay.Relay, log *zap.Logger) IntakeService {
	return &intakeService{
		relay:  r,
		log:    log,
		tracer: otel.Tracer("clientintake/service"),
		now:    time.Now,
	}
}

func (s *intakeService) Validate(app model.ClientApplication) error {
	required := []struct {
		field string
		value string
	}{
		{FieldCompanyName, app.CompanyName},
		{FieldAccountManager, app.AccountManager},
		{FieldEmail, app.Email},
		{FieldPhone, app.Phone},
		{FieldAddress, app.Address},
	}
	for _, r := range required {
		if r.value == "" {
			return &ValidationError{Field: r.field, Reason: ReasonRequired}
		}
	}

	if !emailPattern.MatchString(app.Email) {
		return &ValidationError{Field: FieldEmail, Reason: ReasonInvalidEmail}
	}
	if !app.TaxCondition.Valid() {
		return &ValidationError{Field: FieldTaxCondition, Reason: ReasonInvalidChoice}
	}
	if !app.Fulfillment.Valid() {
		return &ValidationError{Field: FieldFulfillment, Reason: ReasonInvalidChoice}
	}
	return nil
}

func (s *intakeService) Submit(ctx context.Context, app model.ClientApplication) (*model.Submission, error) {
	ctx, span := s.tracer.Start(ctx, "IntakeService.Submit", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	app = app.Normalized()
	if err := s.Validate(app); err != nil {
		span.SetStatus(codes.Error, "validation failed")
		return nil, err
	}

	id := uuid.NewString()
	span.SetAttributes(
		attribute.String("intake.submission_id", id),
		attribute.String("intake.relay_provider", s.relay.Provider()),
	)

	res, err := s.relay.Send(ctx, app)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "relay failed")
		s.log.Error("relay submission failed",
			zap.String("submission_id", id),
			zap.String("provider", s.relay.Provider()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrRelayFailed, err)
	}

	s.log.Info("client application relayed",
		zap.String("submission_id", id),
		zap.String("provider", s.relay.Provider()),
		zap.String("company", app.CompanyName),
		zap.Int("relay_status", res.StatusCode),
	)

	return &model.Submission{
		ID:          id,
		Provider:    s.relay.Provider(),
		Status:      "submitted",
		RelayStatus: res.StatusCode,
		SubmittedAt: s.now().UTC(),
	}, nil
}
