package show

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Listing), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, show *Show) error {
	args := m.Called(ctx, show)
	if len(args) > 1 {
		show.ID = args.Get(1).(int64)
	}
	return args.Error(0)
}
