package usecase

import (
	"context"
	"time"

	"KepViz/internal/domain/models"

	"github.com/stretchr/testify/mock"
)

type MockDataSource struct {
	mock.Mock
}

func (m *MockDataSource) ListNames(ctx context.Context, freq models.Frequency) ([]string, error) {
	args := m.Called(ctx, freq)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

func (m *MockDataSource) ListDatapoints(ctx context.Context, freq models.Frequency, name string) ([]models.Datapoint, error) {
	args := m.Called(ctx, freq, name)
	points, _ := args.Get(0).([]models.Datapoint)
	return points, args.Error(1)
}

func dp(freq models.Frequency, name string, y int, m time.Month, d int, v float64) models.Datapoint {
	return models.Datapoint{Date: models.NewDate(y, m, d), Freq: string(freq), Name: name, Value: &v}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func vals(vs ...float64) []*float64 {
	out := make([]*float64, len(vs))
	for i := range vs {
		v := vs[i]
		out[i] = &v
	}
	return out
}
