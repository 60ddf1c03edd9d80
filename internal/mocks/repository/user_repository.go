// Package repository holds testify mocks of the domain repository interfaces.
package repository

import (
	"context"

	"authsvc/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock whose expectations are asserted when the test ends.
func NewMockUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Create provides a mock function with given fields: ctx, user
func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	ret := m.Called(ctx, user)

	if fn, ok := ret.Get(0).(func(context.Context, *entity.User) error); ok {
		return fn(ctx, user)
	}

	return ret.Error(0)
}

// FindByEmail provides a mock function with given fields: ctx, email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	ret := m.Called(ctx, email)

	var user *entity.User
	if v, ok := ret.Get(0).(*entity.User); ok {
		user = v
	}

	return user, ret.Error(1)
}
