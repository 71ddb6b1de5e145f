package venue

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a testify mock of [Repository].
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListAll(ctx context.Context, now time.Time) ([]Listing, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Listing), args.Error(1)
}

func (m *MockRepository) Search(ctx context.Context, term string, now time.Time) ([]Summary, error) {
	args := m.Called(ctx, term, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Summary), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id int64) (*Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Venue), args.Error(1)
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

func (m *MockRepository) Create(ctx context.Context, venue *Venue) error {
	args := m.Called(ctx, venue)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, venue *Venue) error {
	args := m.Called(ctx, venue)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
