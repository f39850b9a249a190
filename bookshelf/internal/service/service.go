package service

import (
	"context"
	"time"

	"github.com/akmurmu82/library-management-app/bookshelf/internal/model"
	"github.com/akmurmu82/library-management-app/bookshelf/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// BookFinder looks books up in an external catalog.
type BookFinder interface {
	Search(ctx context.Context, query string) ([]model.Book, error)
}

// EventPublisher delivers library activity events keyed by user.
type EventPublisher interface {
	Publish(ctx context.Context, key string, v any) error
}

type Service struct {
	log        *zap.Logger
	repo       repository.Repository
	finder     BookFinder
	events     EventPublisher
	bcryptCost int
	now        func() time.Time
}

type Option func(*Service)

func WithBookFinder(f BookFinder) Option {
	return func(s *Service) {
		s.finder = f
	}
}

func WithEventPublisher(p EventPublisher) Option {
	return func(s *Service) {
		s.events = p
	}
}

func WithBcryptCost(cost int) Option {
	return func(s *Service) {
		s.bcryptCost = cost
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo repository.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:        log,
		repo:       repo,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// publish sends ev if a publisher is configured. Failures are only logged.
func (s *Service) publish(ctx context.Context, ev model.LibraryEvent) {
	if s.events == nil {
		return
	}
	ev.Timestamp = s.now().UTC()
	if err := s.events.Publish(ctx, ev.UserID, ev); err != nil {
		s.log.Warn("publish library event",
			zap.String("type", string(ev.Type)),
			zap.String("userID", ev.UserID),
			zap.Error(err))
	}
}
