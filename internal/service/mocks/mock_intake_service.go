package mocks

import (
	"context"

	"clientintake/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockIntakeService struct {
	mock.Mock
}

func (m *MockIntakeService) Validate(app model.ClientApplication) error {
	args := m.Called(app)
	return args.Error(0)
}

func (m *MockIntakeService) Submit(ctx context.Context, app model.ClientApplication) (*model.Submission, error) {
	args := m.Called(ctx, app)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Submission), args.Error(1)
}
