package facultyloads

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
	"unidash-service/internal/app/models"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockFacultyLoadClient struct {
	mock.Mock
}

func (m *mockFacultyLoadClient) FindFacultyLoads(ctx context.Context, query *models.FacultyLoadQuery) ([]models.FacultyLoad, error) {
	args := m.Called(ctx, query)
	loads, _ := args.Get(0).([]models.FacultyLoad)
	return loads, args.Error(1)
}

func (m *mockFacultyLoadClient) ListFacultyLoads(ctx context.Context, term *models.AcademicTerm) ([]models.FacultyLoad, error) {
	args := m.Called(ctx, term)
	loads, _ := args.Get(0).([]models.FacultyLoad)
	return loads, args.Error(1)
}

type memoryRedis struct {
	mu      sync.Mutex
	values  map[string]string
	ttls    map[string]time.Duration
	failGet bool
	failSet bool
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memoryRedis) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *memoryRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	if m.failSet {
		return errors.New("redis down")
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = string(raw)
	m.ttls[key] = exp
	return nil
}

func (m *memoryRedis) Get(ctx context.Context, key string) (string, error) {
	if m.failGet {
		return "", errors.New("redis down")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

func (m *memoryRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return false, nil
}

func (m *memoryRedis) DeleteIfEquals(ctx context.Context, key string, value interface{}) (bool, error) {
	return false, nil
}

func (m *memoryRedis) ExpireIfEquals(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return false, nil
}

func TestCachedFacultyLoadClient(t *testing.T) {
	ctx := context.Background()
	query := &models.FacultyLoadQuery{
		FacultyID:    "fac-7",
		AcademicTerm: models.AcademicTerm{AcademicYear: "2024-2025", Semester: "1st"},
	}
	loads := []models.FacultyLoad{
		{ID: "11", SubjectCode: "IT 101", Units: 3, Schedule: "MON & TUE 1:00PM-3:00PM"},
	}

	t.Run("Miss Then Hit", func(t *testing.T) {
		next := new(mockFacultyLoadClient)
		next.On("FindFacultyLoads", ctx, query).Return(loads, nil).Once()
		repo := newMemoryRedis()
		client := NewCachedFacultyLoadClient(next, repo, 10*time.Minute, zap.NewNop())

		first, err := client.FindFacultyLoads(ctx, query)
		require.NoError(t, err)
		assert.Equal(t, loads, first)
		assert.Equal(t, 10*time.Minute, repo.ttls["facultyloads:fac-7:2024-2025:1st"])

		second, err := client.FindFacultyLoads(ctx, query)
		require.NoError(t, err)
		assert.Equal(t, loads, second)

		next.AssertNumberOfCalls(t, "FindFacultyLoads", 1)
	})

	t.Run("Cache Read Failure Falls Through", func(t *testing.T) {
		next := new(mockFacultyLoadClient)
		next.On("FindFacultyLoads", ctx, query).Return(loads, nil).Twice()
		repo := newMemoryRedis()
		repo.failGet = true
		client := NewCachedFacultyLoadClient(next, repo, time.Minute, zap.NewNop())

		for i := 0; i < 2; i++ {
			got, err := client.FindFacultyLoads(ctx, query)
			require.NoError(t, err)
			assert.Equal(t, loads, got)
		}
		next.AssertExpectations(t)
	})

	t.Run("Cache Write Failure Is Ignored", func(t *testing.T) {
		next := new(mockFacultyLoadClient)
		next.On("FindFacultyLoads", ctx, query).Return(loads, nil)
		repo := newMemoryRedis()
		repo.failSet = true
		client := NewCachedFacultyLoadClient(next, repo, time.Minute, zap.NewNop())

		got, err := client.FindFacultyLoads(ctx, query)
		require.NoError(t, err)
		assert.Equal(t, loads, got)
	})

	t.Run("Unreadable Entry Is Refetched", func(t *testing.T) {
		next := new(mockFacultyLoadClient)
		next.On("FindFacultyLoads", ctx, query).Return(loads, nil).Once()
		repo := newMemoryRedis()
		repo.values["facultyloads:fac-7:2024-2025:1st"] = "{broken"
		client := NewCachedFacultyLoadClient(next, repo, time.Minute, zap.NewNop())

		got, err := client.FindFacultyLoads(ctx, query)
		require.NoError(t, err)
		assert.Equal(t, loads, got)
		next.AssertExpectations(t)
	})

	t.Run("Unreadable Entry Is Dropped Even When Backend Fails", func(t *testing.T) {
		next := new(mockFacultyLoadClient)
		next.On("FindFacultyLoads", ctx, query).Return(nil, errors.New("backend down")).Once()
		repo := newMemoryRedis()
		repo.values["facultyloads:fac-7:2024-2025:1st"] = "{broken"
		client := NewCachedFacultyLoadClient(next, repo, time.Minute, zap.NewNop())

		_, err := client.FindFacultyLoads(ctx, query)
		assert.Error(t, err)
		assert.NotContains(t, repo.values, "facultyloads:fac-7:2024-2025:1st")
	})

	t.Run("Backend Error Is Not Cached", func(t *testing.T) {
		next := new(mockFacultyLoadClient)
		next.On("FindFacultyLoads", ctx, query).Return(nil, errors.New("backend down"))
		repo := newMemoryRedis()
		client := NewCachedFacultyLoadClient(next, repo, time.Minute, zap.NewNop())

		_, err := client.FindFacultyLoads(ctx, query)
		assert.Error(t, err)
		assert.Empty(t, repo.values)
	})

	t.Run("Term Listing Uses Term Key", func(t *testing.T) {
		term := &models.AcademicTerm{AcademicYear: "2024-2025", Semester: "2nd"}
		next := new(mockFacultyLoadClient)
		next.On("ListFacultyLoads", ctx, term).Return(loads, nil).Once()
		repo := newMemoryRedis()
		client := NewCachedFacultyLoadClient(next, repo, time.Minute, zap.NewNop())

		_, err := client.ListFacultyLoads(ctx, term)
		require.NoError(t, err)
		assert.Contains(t, repo.values, "termloads:2024-2025:2nd")
	})
}
