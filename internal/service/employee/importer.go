package employee

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/spreadsheet"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/storage"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

const stageDir = "imports"

// Header aliases accepted for each import column, matched after NormalizeHeader.
var (
	nameHeaders        = []string{"name", "full name", "employee name"}
	emailHeaders       = []string{"email", "email address"}
	phoneHeaders       = []string{"phone", "phone number", "mobile", "contact"}
	dobHeaders         = []string{"date of birth", "dob", "birth date"}
	genderHeaders      = []string{"gender"}
	departmentHeaders  = []string{"department"}
	branchHeaders      = []string{"branch"}
	positionHeaders    = []string{"position", "designation"}
	panHeaders         = []string{"pan", "pan number"}
	aadharHeaders      = []string{"aadhar", "aadhaar", "aadhar number"}
	joiningDateHeaders = []string{"date of joining", "doj", "joining date"}
	shiftHeaders       = []string{"shift"}
)

type importServiceImpl struct {
	repo    employee.EmployeeRepository
	roster  employee.EmployeeService
	storage storage.FileStorage
	clock   clockwork.Clock

	mu         sync.Mutex
	confirming map[string]struct{}
}

// NewImportService stages uploads in fs until they are confirmed or discarded.
// roster is refreshed after a successful import.
func NewImportService(repo employee.EmployeeRepository, roster employee.EmployeeService, fs storage.FileStorage, clock clockwork.Clock) *importServiceImpl {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &importServiceImpl{
		repo:       repo,
		roster:     roster,
		storage:    fs,
		clock:      clock,
		confirming: make(map[string]struct{}),
	}
}

var _ employee.ImportService = (*importServiceImpl)(nil)

func stagePath(token string) string {
	return path.Join(stageDir, token+".xlsx")
}

// Preview parses and checks an upload. Only a violation-free file is staged
// and gets a confirmation token.
func (s *importServiceImpl) Preview(ctx context.Context, filename string, r io.Reader) (employee.ImportPreview, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return employee.ImportPreview{}, fmt.Errorf("failed to read upload: %w", err)
	}

	rows, err := parseRows(data, filename)
	if err != nil {
		return employee.ImportPreview{}, err
	}

	violations := employee.ValidateRows(rows)
	metrics.ImportPreviewed(len(rows), len(violations))

	preview := employee.ImportPreview{
		Filename:   filename,
		Rows:       rows,
		Violations: violations,
		CanConfirm: len(violations) == 0,
	}
	if !preview.CanConfirm {
		slog.Info("Employee import rejected", "filename", filename, "rows", len(rows), "violations", len(violations))
		return preview, nil
	}

	token := uuid.NewString()
	if _, err := s.storage.Save(ctx, bytes.NewReader(data), stagePath(token)); err != nil {
		return employee.ImportPreview{}, fmt.Errorf("failed to stage upload: %w", err)
	}
	preview.Token = token

	slog.Info("Employee import staged", "filename", filename, "rows", len(rows), "token", token)
	return preview, nil
}

// Confirm re-checks the staged file and submits every row in one bulk request.
// A token is submitted by at most one caller at a time.
func (s *importServiceImpl) Confirm(ctx context.Context, token string) (int, error) {
	key, err := s.stageKey(token)
	if err != nil {
		return 0, err
	}
	if !s.claim(key) {
		return 0, employee.ErrImportInProgress
	}
	defer s.release(key)

	data, err := s.readStage(ctx, key)
	if err != nil {
		return 0, err
	}

	rows, err := parseRows(data, key)
	if err != nil {
		return 0, err
	}
	if violations := employee.ValidateRows(rows); len(violations) > 0 {
		return 0, &employee.ImportViolationsError{Violations: violations}
	}

	drafts := make([]employee.Draft, len(rows))
	for i, row := range rows {
		drafts[i] = row.Draft()
	}
	if err := s.repo.BulkCreate(ctx, drafts); err != nil {
		return 0, err
	}
	metrics.ImportSubmitted(len(drafts))
	slog.Info("Employee import submitted", "token", token, "rows", len(drafts))

	if err := s.storage.Delete(ctx, key); err != nil {
		slog.Warn("Failed to remove staged import", "token", token, "error", err)
	}

	if err := s.roster.Refresh(ctx); err != nil {
		return len(drafts), fmt.Errorf("imported, but failed to reload the list: %w", err)
	}
	return len(drafts), nil
}

func (s *importServiceImpl) Discard(ctx context.Context, token string) error {
	key, err := s.stageKey(token)
	if err != nil {
		return err
	}
	if !s.claim(key) {
		return employee.ErrImportInProgress
	}
	defer s.release(key)
	return s.storage.Delete(ctx, key)
}

func (s *importServiceImpl) claim(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.confirming[key]; busy {
		return false
	}
	s.confirming[key] = struct{}{}
	return true
}

func (s *importServiceImpl) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.confirming, key)
}

// PurgeStale removes staged uploads nobody confirmed within olderThan.
func (s *importServiceImpl) PurgeStale(ctx context.Context, olderThan time.Duration) (int, error) {
	objects, err := s.storage.List(ctx, stageDir)
	if err != nil {
		return 0, err
	}

	cutoff := s.clock.Now().Add(-olderThan)
	purged := 0
	for _, obj := range objects {
		if !obj.ModifiedAt.Before(cutoff) {
			continue
		}
		if err := s.storage.Delete(ctx, obj.Path); err != nil {
			return purged, err
		}
		purged++
	}
	if purged > 0 {
		slog.Info("Purged stale employee imports", "count", purged)
	}
	return purged, nil
}

func (s *importServiceImpl) stageKey(token string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(token))
	if err != nil {
		return "", employee.ErrImportNotFound
	}
	return stagePath(id.String()), nil
}

func (s *importServiceImpl) readStage(ctx context.Context, key string) ([]byte, error) {
	rc, err := s.storage.Open(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, employee.ErrImportNotFound
		}
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func parseRows(data []byte, filename string) ([]employee.ImportRow, error) {
	records, err := spreadsheet.ReadRecords(bytes.NewReader(data), filename)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, employee.ErrImportEmpty
	}

	rows := make([]employee.ImportRow, len(records))
	for i, rec := range records {
		rows[i] = employee.ImportRow{
			Row:           rec.Line,
			Name:          rec.Get(nameHeaders...),
			Email:         rec.Get(emailHeaders...),
			Phone:         rec.Get(phoneHeaders...),
			DateOfBirth:   dateCell(rec.Get(dobHeaders...)),
			Gender:        rec.Get(genderHeaders...),
			Department:    rec.Get(departmentHeaders...),
			Branch:        rec.Get(branchHeaders...),
			Position:      rec.Get(positionHeaders...),
			PAN:           rec.Get(panHeaders...),
			Aadhar:        rec.Get(aadharHeaders...),
			DateOfJoining: dateCell(rec.Get(joiningDateHeaders...)),
			Shift:         rec.Get(shiftHeaders...),
		}
	}
	return rows, nil
}

// dateCell normalizes a parseable date and leaves anything else for validation to report.
func dateCell(value string) string {
	if normalized, ok := spreadsheet.NormalizeDate(value); ok {
		return normalized
	}
	return value
}
