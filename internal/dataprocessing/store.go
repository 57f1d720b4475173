package dataprocessing

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"timegapcli/pkg/contracts/domain"
)

// Store owns the single in-memory dataset the pipeline operates on. Loading a
// file fully replaces the record set and clears the active filter criteria,
// so a collaborator never observes partial state between imports.
//
// The store is owned by one goroutine; it carries no locking. LoadAsync runs
// the decode on its own goroutine and hands the result back through a
// one-shot callback, after which the store may be read again.
type Store struct {
	logger   *slog.Logger
	records  []domain.EventRecord
	criteria domain.FilterCriteria
	meta     domain.ImportMetadata
}

// NewStore creates an empty dataset store.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{logger: logger}
}

// Load decodes a workbook file and replaces the working dataset. The previous
// records and any active filters are discarded even when the new file holds
// zero rows; on a decode error the store is left empty rather than stale.
func (s *Store) Load(ctx context.Context, filePath string) error {
	records, err := DecodeWorkbook(ctx, s.logger, filePath)
	s.replace(ctx, filepath.Base(filePath), records)
	return err
}

// LoadBytes decodes raw workbook bytes and replaces the working dataset.
func (s *Store) LoadBytes(ctx context.Context, fileName string, raw []byte) error {
	records, err := Decode(ctx, s.logger, raw)
	s.replace(ctx, fileName, records)
	return err
}

// LoadAsync decodes the workbook on a separate goroutine and delivers the
// outcome through done, which is invoked exactly once. The store must not be
// used until done fires.
func (s *Store) LoadAsync(ctx context.Context, filePath string, done func([]domain.EventRecord, error)) {
	go func() {
		err := s.Load(ctx, filePath)
		done(s.records, err)
	}()
}

func (s *Store) replace(ctx context.Context, fileName string, records []domain.EventRecord) {
	if records == nil {
		records = []domain.EventRecord{}
	}
	s.records = records
	s.criteria = domain.FilterCriteria{}
	s.meta = domain.ImportMetadata{
		ID:          uuid.New().String(),
		FileName:    fileName,
		RecordCount: len(records),
		ImportedAt:  time.Now(),
	}

	s.logger.InfoContext(ctx, "dataset replaced",
		slog.String("import_id", s.meta.ID),
		slog.String("file_name", fileName),
		slog.Int("record_count", len(records)))
}

// Records returns the full working record set.
func (s *Store) Records() []domain.EventRecord {
	return s.records
}

// Metadata returns bookkeeping for the current import.
func (s *Store) Metadata() domain.ImportMetadata {
	return s.meta
}

// Criteria returns the active filter criteria.
func (s *Store) Criteria() domain.FilterCriteria {
	return s.criteria
}

// SetCriteria replaces the active filter criteria.
func (s *Store) SetCriteria(criteria domain.FilterCriteria) {
	s.criteria = criteria
}

// ClearFilters resets all criteria, restoring the filtered view to the full
// record set.
func (s *Store) ClearFilters() {
	s.criteria = domain.FilterCriteria{}
}

// Filtered returns the records matching the active criteria. With no
// criteria set it returns the full record set unchanged.
func (s *Store) Filtered() []domain.EventRecord {
	return ApplyFilters(s.records, s.criteria)
}
