package mocks

import (
	"context"

	"clientintake/internal/model"
	"clientintake/internal/relay"

	"github.com/stretchr/testify/mock"
)

type MockRelay struct {
	mock.Mock
}

func (m *MockRelay) Send(ctx context.Context, app model.ClientApplication) (relay.Result, error) {
	args := m.Called(ctx, app)
	return args.Get(0).(relay.Result), args.Error(1)
}

func (m *MockRelay) Provider() string {
	args := m.Called()
	return args.String(0)
}
