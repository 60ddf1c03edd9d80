// Package usecase holds testify mocks of the use case interfaces.
package usecase

import (
	"context"

	"authsvc/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockUserUsecase is a mock implementation of usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

// NewMockUserUsecase creates a mock whose expectations are asserted when the test ends.
func NewMockUserUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserUsecase {
	m := &MockUserUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Register provides a mock function with given fields: ctx, input
func (m *MockUserUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	ret := m.Called(ctx, input)

	var out *usecase.RegisterOutput
	if v, ok := ret.Get(0).(*usecase.RegisterOutput); ok {
		out = v
	}

	return out, ret.Error(1)
}

// Login provides a mock function with given fields: ctx, input
func (m *MockUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	ret := m.Called(ctx, input)

	var out *usecase.LoginOutput
	if v, ok := ret.Get(0).(*usecase.LoginOutput); ok {
		out = v
	}

	return out, ret.Error(1)
}
