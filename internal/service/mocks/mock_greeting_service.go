package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockGreetingService struct {
	mock.Mock
}

func (m *MockGreetingService) Greet(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}
