// Package inquiry accepts new inquiry records and lists the stored ones.
package inquiry

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gitlab.com/dirk.krummacker/inquiry-service/internal/model"
	"gitlab.com/dirk.krummacker/inquiry-service/internal/validation"
	"gitlab.com/dirk.krummacker/inquiry-service/pkg/logger"
)

// Store is the persistence the service needs.
type Store interface {
	// Create writes a new record and sets its id.
	Create(ctx context.Context, record *model.Record) error

	// FindAll returns all records, the most recently created first.
	FindAll(ctx context.Context) ([]model.Record, error)
}

type Service struct {
	store  Store
	random model.RandomSource
	now    func() time.Time
}

type Option func(*Service)

// WithClock replaces the clock that stamps the creation time of new records.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(store Store, random model.RandomSource, opts ...Option) *Service {
	s := &Service{
		store:  store,
		random: random,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates the raw form values and stores a new record for them.
//
// If a field is rejected, the error is a validation.FieldErrors and nothing is written. Otherwise
// the record gets its unique number and creation time and is written exactly once. A collision of
// unique numbers is not retried; the error then wraps storage.ErrDuplicateUniqueNumber.
func (s *Service) Submit(ctx context.Context, fields map[string]string) (*model.Record, error) {
	submission, err := validation.Validate(fields)
	if err != nil {
		return nil, err
	}

	record := submission.Record()
	record.AssignUniqueNumber(s.random)
	record.CreatedAt = s.now().UTC()
	if err := s.store.Create(ctx, &record); err != nil {
		return nil, fmt.Errorf("store record %s: %w", record.UniqueNumber, err)
	}

	logger.WithFields(logrus.Fields{
		"id":            record.Id,
		"unique_number": record.UniqueNumber,
	}).Debug("record created")
	return &record, nil
}

// List returns all records, the most recently created first.
func (s *Service) List(ctx context.Context) ([]model.Record, error) {
	records, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}
