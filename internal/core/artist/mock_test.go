package artist

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Summary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Summary), args.Error(1)
}

func (m *MockRepository) Search(ctx context.Context, term string, now time.Time) ([]Summary, error) {
	args := m.Called(ctx, term, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Summary), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id int64) (*Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Artist), args.Error(1)
}

func (m *MockRepository) Shows(ctx context.Context, id int64) ([]ShowEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ShowEntry), args.Error(1)
}

func (m *MockRepository) Recent(ctx context.Context, limit int) ([]Summary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Summary), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, artist *Artist) error {
	return m.Called(ctx, artist).Error(0)
}

func (m *MockRepository) Update(ctx context.Context, artist *Artist) error {
	return m.Called(ctx, artist).Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
