package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/ibeloyar/returndesk/internal/model"
)

type Service struct {
	orders    OrderRepository
	inventory InventoryRepository
	stock     StockStatusProvider
	policies  Policies

	now      func() time.Time
	rnd      Randomizer
	recorder Recorder
}

type Option func(*Service)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithRandomizer(rnd Randomizer) Option {
	return func(s *Service) {
		s.rnd = rnd
	}
}

func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		s.recorder = r
	}
}

func New(orders OrderRepository, inventory InventoryRepository, stock StockStatusProvider, policies Policies, opts ...Option) *Service {
	s := &Service{
		orders:    orders,
		inventory: inventory,
		stock:     stock,
		policies:  policies,
		now:       time.Now,
		rnd:       NewLockedRand(time.Now().UnixNano()),
		recorder:  nopRecorder{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// LockedRand is a math/rand source safe for concurrent use.
type LockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewLockedRand(seed int64) *LockedRand {
	return &LockedRand{rnd: rand.New(rand.NewSource(seed))}
}

func (r *LockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}

type nopRecorder struct{}

func (nopRecorder) ObserveEligibility(bool, model.ErrorCode) {}
func (nopRecorder) ObserveReturn(model.Category, bool)       {}
func (nopRecorder) ObserveExchange(model.StockStatus)        {}
