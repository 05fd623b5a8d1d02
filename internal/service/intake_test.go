package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"clientintake/internal/model"
	"clientintake/internal/relay"
	relayMocks "clientintake/internal/relay/mocks"
)

func validApplication() model.ClientApplication {
	return model.ClientApplication{
		CompanyName:    "Logística Sur",
		AccountManager: "Ana Pérez",
		Email:          "ana@sur.com.ar",
		Phone:          "+54 11 1234-5678",
		Address:        "Av. Siempreviva 742",
	}
}

func TestIntakeService_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(a *model.ClientApplication)
		wantField string
		wantCode  string
	}{
		{
			name:   "happy path - only required fields",
			mutate: func(a *model.ClientApplication) {},
		},
		{
			name: "happy path - every optional field set",
			mutate: func(a *model.ClientApplication) {
				a.Contact = "Juan"
				a.CUIT = "30-71234567-8"
				a.TaxCondition = model.TaxExempt
				a.CutoffSchedule = "14:00"
				a.PickupSchedule = "16:00"
				a.Fulfillment = model.FulfillmentNo
			},
		},
		{
			name:      "missing company name",
			mutate:    func(a *model.ClientApplication) { a.CompanyName = "" },
			wantField: FieldCompanyName,
			wantCode:  ReasonRequired,
		},
		{
			name: "first missing field wins",
			mutate: func(a *model.ClientApplication) {
				a.AccountManager = ""
				a.Address = ""
			},
			wantField: FieldAccountManager,
			wantCode:  ReasonRequired,
		},
		{
			name:      "missing phone",
			mutate:    func(a *model.ClientApplication) { a.Phone = "" },
			wantField: FieldPhone,
			wantCode:  ReasonRequired,
		},
		{
			name:      "missing address",
			mutate:    func(a *model.ClientApplication) { a.Address = "" },
			wantField: FieldAddress,
			wantCode:  ReasonRequired,
		},
		{
			name: "required fields are checked before email format",
			mutate: func(a *model.ClientApplication) {
				a.Email = "not-an-email"
				a.Address = ""
			},
			wantField: FieldAddress,
			wantCode:  ReasonRequired,
		},
		{
			name:      "email without domain dot",
			mutate:    func(a *model.ClientApplication) { a.Email = "ana@sur" },
			wantField: FieldEmail,
			wantCode:  ReasonInvalidEmail,
		},
		{
			name:      "email with spaces",
			mutate:    func(a *model.ClientApplication) { a.Email = "ana perez@sur.com" },
			wantField: FieldEmail,
			wantCode:  ReasonInvalidEmail,
		},
		{
			name:      "unknown tax condition",
			mutate:    func(a *model.ClientApplication) { a.TaxCondition = "autonomo" },
			wantField: FieldTaxCondition,
			wantCode:  ReasonInvalidChoice,
		},
		{
			name:      "unknown fulfillment answer",
			mutate:    func(a *model.ClientApplication) { a.Fulfillment = "QUIZAS" },
			wantField: FieldFulfillment,
			wantCode:  ReasonInvalidChoice,
		},
	}

	svc := NewIntakeService(nil, zap.NewNop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := validApplication()
			tt.mutate(&app)

			err := svc.Validate(app)

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Equal(t, tt.wantCode, verr.Reason)
		})
	}
}

func TestIntakeService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		mRelay := new(relayMocks.MockRelay)
		mRelay.On("Provider").Return("formsubmit")
		mRelay.On("Send", mock.Anything, mock.MatchedBy(func(a model.ClientApplication) bool {
			return a.CompanyName == "Logística Sur" && a.Email == "ana@sur.com.ar"
		})).Return(relay.Result{StatusCode: 200}, nil).Once()

		svc := NewIntakeService(mRelay, zap.New(core))

		in := validApplication()
		in.CompanyName = "  Logística Sur "
		in.Email = " ana@sur.com.ar"

		sub, err := svc.Submit(ctx, in)

		require.NoError(t, err)
		assert.NotEmpty(t, sub.ID)
		assert.Equal(t, "formsubmit", sub.Provider)
		assert.Equal(t, "submitted", sub.Status)
		assert.Equal(t, 200, sub.RelayStatus)
		assert.False(t, sub.SubmittedAt.IsZero())

		entries := logs.FilterMessage("client application relayed").All()
		require.Len(t, entries, 1)
		assert.Equal(t, sub.ID, entries[0].ContextMap()["submission_id"])
		mRelay.AssertExpectations(t)
	})

	t.Run("validation error does not reach the relay", func(t *testing.T) {
		mRelay := new(relayMocks.MockRelay)
		svc := NewIntakeService(mRelay, zap.NewNop())

		in := validApplication()
		in.Phone = "   "

		sub, err := svc.Submit(ctx, in)

		assert.Nil(t, sub)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, FieldPhone, verr.Field)
		mRelay.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("relay error", func(t *testing.T) {
		core, logs := observer.New(zapcore.ErrorLevel)
		mRelay := new(relayMocks.MockRelay)
		mRelay.On("Provider").Return("formsubmit")
		mRelay.On("Send", mock.Anything, mock.Anything).
			Return(relay.Result{}, &relay.StatusError{StatusCode: 500}).Once()

		svc := NewIntakeService(mRelay, zap.New(core))

		sub, err := svc.Submit(ctx, validApplication())

		assert.Nil(t, sub)
		assert.ErrorIs(t, err, ErrRelayFailed)
		var statusErr *relay.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 500, statusErr.StatusCode)
		assert.Equal(t, 1, logs.FilterMessage("relay submission failed").Len())
		mRelay.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("transport error", func(t *testing.T) {
		mRelay := new(relayMocks.MockRelay)
		mRelay.On("Provider").Return("netlify")
		mRelay.On("Send", mock.Anything, mock.Anything).
			Return(relay.Result{}, errors.New("connection refused")).Once()

		svc := NewIntakeService(mRelay, zap.NewNop())

		_, err := svc.Submit(ctx, validApplication())

		assert.ErrorIs(t, err, ErrRelayFailed)
		assert.Contains(t, err.Error(), "connection refused")
		mRelay.AssertExpectations(t)
	})
}
