// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cardapio/storefront-service/internal/domain/model"
)

type MockCartRepositoryInterface struct {
	mock.Mock
}

func (m *MockCartRepositoryInterface) Save(ctx context.Context, sessionID string, items []model.LineItem) error {
	args := m.Called(ctx, sessionID, items)
	return args.Error(0)
}

func (m *MockCartRepositoryInterface) Load(ctx context.Context, sessionID string) ([]model.LineItem, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LineItem), args.Error(1)
}

func (m *MockCartRepositoryInterface) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
