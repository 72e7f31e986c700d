package cache_test

import (
	"sync"
	"testing"
	"time"

	"github.com/CSCI-GA-2820-FA24-003/inventory/pkg/cache"
	mock_logger "github.com/CSCI-GA-2820-FA24-003/inventory/pkg/logger/mock"
	mock_metric "github.com/CSCI-GA-2820-FA24-003/inventory/pkg/metric/mock"

	"github.com/golang/mock/gomock"
)

func newTestCache(t *testing.T, capacity int) cache.Cache[int, string] {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockLogger := mock_logger.NewMockLogger(ctrl)
	mockMetrics := mock_metric.NewMockCache(ctrl)

	mockMetrics.EXPECT().Hit(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().Miss(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().Eviction(gomock.Any(), gomock.Any()).AnyTimes()

	c, err := cache.NewLRUCache[int, string](capacity, mockLogger, mockMetrics)
	if err != nil {
		t.Fatalf("NewLRUCache() error = %v", err)
	}
	return c
}

func TestLRUCache_GetPut(t *testing.T) {
	type expectation struct {
		key   int
		value string
		ok    bool
	}

	testCases := []struct {
		desc        string
		capacity    int
		puts        [][2]any
		touch       []int
		expected    []expectation
		expectedLen int
	}{
		{
			desc:     "BasicGetPut",
			capacity: 2,
			puts:     [][2]any{{1, "one"}, {2, "two"}},
			expected: []expectation{
				{1, "one", true},
				{2, "two", true},
			},
			expectedLen: 2,
		},
		{
			desc:     "LRUEviction",
			capacity: 2,
			puts:     [][2]any{{1, "one"}, {2, "two"}},
			touch:    []int{1},
			expected: []expectation{
				{2, "", false},
				{1, "one", true},
				{3, "three", true},
			},
			expectedLen: 2,
		},
		{
			desc:     "UpdateExistingKey",
			capacity: 2,
			puts:     [][2]any{{1, "one"}, {2, "two"}, {1, "uno"}},
			expected: []expectation{
				{1, "uno", true},
				{2, "two", true},
			},
			expectedLen: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			c := newTestCache(t, tc.capacity)

			for _, put := range tc.puts {
				c.Put(put[0].(int), put[1].(string), 0)
			}

			// Refreshing recency decides who gets evicted next.
			for _, key := range tc.touch {
				c.Get(key)
			}
			if tc.desc == "LRUEviction" {
				c.Put(3, "three", 0)
			}

			for _, want := range tc.expected {
				got, ok := c.Get(want.key)
				if got != want.value || ok != want.ok {
					t.Errorf("Get(%d) = %q, %v; want %q, %v",
						want.key, got, ok, want.value, want.ok)
				}
			}

			if c.Len() != tc.expectedLen {
				t.Errorf("Len() = %d; want %d", c.Len(), tc.expectedLen)
			}
		})
	}
}

func TestLRUCache_TTL(t *testing.T) {
	testCases := []struct {
		desc       string
		ttl        time.Duration
		sleep      time.Duration
		expectedOK bool
	}{
		{"TTLNotExpired", 200 * time.Millisecond, 100 * time.Millisecond, true},
		{"TTLExpired", 100 * time.Millisecond, 200 * time.Millisecond, false},
		{"NoTTL", 0, 300 * time.Millisecond, true},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			c := newTestCache(t, 1)
			c.Put(1, "one", tc.ttl)
			time.Sleep(tc.sleep)

			got, ok := c.Get(1)
			if ok != tc.expectedOK {
				t.Errorf("Get() = %q, %v; want ok=%v", got, ok, tc.expectedOK)
			}
		})
	}
}

func TestLRUCache_Has(t *testing.T) {
	testCases := []struct {
		desc     string
		put      bool
		ttl      time.Duration
		sleep    time.Duration
		key      int
		expected bool
	}{
		{"ValidKey", true, 0, 0, 1, true},
		{"ExpiredKey", true, 100 * time.Millisecond, 200 * time.Millisecond, 1, false},
		{"NonExistentKey", false, 0, 0, 99, false},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			c := newTestCache(t, 1)
			if tc.put {
				c.Put(1, "one", tc.ttl)
			}

			time.Sleep(tc.sleep)
			if got := c.Has(tc.key); got != tc.expected {
				t.Errorf("Has(%d) = %v; want %v", tc.key, got, tc.expected)
			}
		})
	}
}

func TestLRUCache_Remove(t *testing.T) {
	t.Run("RemovesExistingKey", func(t *testing.T) {
		t.Parallel()

		c := newTestCache(t, 2)
		c.Put(1, "one", 0)
		c.Put(2, "two", 0)

		c.Remove(1)

		if c.Has(1) {
			t.Error("Has(1) = true after Remove; want false")
		}
		if !c.Has(2) {
			t.Error("Has(2) = false; want true")
		}
		if c.Len() != 1 {
			t.Errorf("Len() = %d; want 1", c.Len())
		}
	})

	t.Run("RemoveAbsentKeyIsNoop", func(t *testing.T) {
		t.Parallel()

		c := newTestCache(t, 2)
		c.Put(1, "one", 0)

		c.Remove(99)

		if c.Len() != 1 {
			t.Errorf("Len() = %d; want 1", c.Len())
		}
	})

	t.Run("RemoveFiresOnEvicted", func(t *testing.T) {
		t.Parallel()

		c := newTestCache(t, 2)

		var (
			mu      sync.Mutex
			evicted []int
		)
		c.SetOnEvicted(func(key int, _ string) {
			mu.Lock()
			defer mu.Unlock()
			evicted = append(evicted, key)
		})

		c.Put(1, "one", 0)
		c.Remove(1)

		mu.Lock()
		defer mu.Unlock()
		if len(evicted) != 1 || evicted[0] != 1 {
			t.Errorf("evicted = %v; want [1]", evicted)
		}
	})
}

func TestLRUCache_OnEvicted(t *testing.T) {
	testCases := []struct {
		desc        string
		capacity    int
		puts        []int
		purge       bool
		expected    []int
		expectedLen int
	}{
		{"SingleEviction", 2, []int{1, 2, 3}, false, []int{1}, 2},
		{"MultipleEvictions", 1, []int{1, 2, 3}, false, []int{1, 2}, 1},
		{"PurgeEvictions", 2, []int{1, 2}, true, []int{1, 2}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			c := newTestCache(t, tc.capacity)

			var (
				mu      sync.Mutex
				evicted []int
			)
			c.SetOnEvicted(func(key int, _ string) {
				mu.Lock()
				defer mu.Unlock()
				evicted = append(evicted, key)
			})

			for _, key := range tc.puts {
				c.Put(key, "value", 0)
			}

			if tc.purge {
				c.Purge()
			}

			mu.Lock()
			defer mu.Unlock()

			if len(evicted) != len(tc.expected) {
				t.Fatalf("Evicted count = %d; want %d", len(evicted), len(tc.expected))
			}
			for i, key := range evicted {
				if key != tc.expected[i] {
					t.Errorf("evicted[%d] = %d; want %d", i, key, tc.expected[i])
				}
			}

			if c.Len() != tc.expectedLen {
				t.Errorf("Final Len() = %d; want %d", c.Len(), tc.expectedLen)
			}
		})
	}
}

func TestLRUCache_NewLRUCache(t *testing.T) {
	testCases := []struct {
		desc      string
		capacity  int
		wantError bool
	}{
		{"NegativeCapacity", -1, true},
		{"ZeroCapacity", 0, true},
		{"PositiveCapacity", 10, false},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)

			mockLogger := mock_logger.NewMockLogger(ctrl)
			mockMetrics := mock_metric.NewMockCache(ctrl)

			_, err := cache.NewLRUCache[int, string](tc.capacity, mockLogger, mockMetrics)
			if (err != nil) != tc.wantError {
				t.Errorf("NewLRUCache() error = %v, wantError %v", err, tc.wantError)
			}
		})
	}
}
