package attendance

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/kaan/campora/internal/app/models"
	"github.com/kaan/campora/internal/metrics"
	"github.com/kaan/campora/internal/pkg/apperrors"
	"github.com/kaan/campora/internal/upstream"
)

// RecordState says whether the upstream already holds attendance for a
// class. It is established by the load step, never inferred ahead of a
// network call, and it decides which submit branch runs.
type RecordState int

const (
	// RecordUnknown means the roster has not been loaded yet.
	RecordUnknown RecordState = iota
	// RecordNone means no attendance exists upstream; submitting uses the
	// store path with marked students only.
	RecordNone
	// RecordExists means attendance exists upstream; submitting uses the
	// update path covering the full roster.
	RecordExists
)

// String returns the state label.
func (s RecordState) String() string {
	switch s {
	case RecordNone:
		return "no-record"
	case RecordExists:
		return "has-record"
	default:
		return "unknown"
	}
}

// RosterRow is one merged roster+attendance row.
type RosterRow struct {
	Student models.ClassStudent     `json:"student"`
	Status  models.AttendanceStatus `json:"-"`
	Label   string                  `json:"status"`
}

// Session is the attendance workflow for one class: load the roster and
// any existing marks, mark students locally, then submit once. Marks are
// purely in-memory until Submit; a student marked in this session never
// goes back to unset, only between present and absent.
type Session struct {
	mu      sync.Mutex
	classID int64
	client  *upstream.Client
	token   string
	logger  zerolog.Logger

	state      RecordState
	submitting bool
	class      *models.ClassSession
	roster     []models.ClassStudent
	marks      map[int64]models.AttendanceStatus
}

// NewSession creates the workflow for a class id.
func NewSession(client *upstream.Client, token string, classID int64, logger zerolog.Logger) *Session {
	return &Session{
		client:  client,
		token:   token,
		classID: classID,
		logger:  logger,
		marks:   make(map[int64]models.AttendanceStatus),
	}
}

// Load fetches the class, its roster, and best-effort the existing
// attendance. The three calls run concurrently and are joined before any
// state is committed, so one slow branch cannot interleave with another.
// A 404 from the attendance endpoint means "no records yet" and is not an
// error; any other failure aborts the load with state left at unknown.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return apperrors.ErrSubmitInProgress
	}
	classID := s.classID
	token := s.token
	s.mu.Unlock()

	var (
		wg        sync.WaitGroup
		class     *models.ClassSession
		classErr  error
		roster    []models.ClassStudent
		rosterErr error
		records   []models.AttendanceRecord
		recordErr error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		class, classErr = s.client.GetClass(ctx, token, classID)
	}()
	go func() {
		defer wg.Done()
		roster, rosterErr = s.client.GetClassStudents(ctx, token, classID)
	}()
	go func() {
		defer wg.Done()
		records, recordErr = s.client.GetAttendance(ctx, token, classID)
	}()
	wg.Wait()

	if classErr != nil {
		if errors.Is(classErr, apperrors.ErrUpstreamNotFound) {
			return fmt.Errorf("%w: class %d", apperrors.ErrClassNotFound, classID)
		}
		return classErr
	}
	if rosterErr != nil {
		return rosterErr
	}
	if recordErr != nil && !errors.Is(recordErr, apperrors.ErrUpstreamNotFound) {
		return recordErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.class = class
	s.roster = roster
	s.marks = make(map[int64]models.AttendanceStatus, len(roster))
	if recordErr == nil && len(records) > 0 {
		s.state = RecordExists
		for _, rec := range records {
			s.marks[rec.StudentID] = models.StatusFromRev(rec.RevAttendance)
		}
	} else {
		// 404 or an empty list both mean nothing recorded yet.
		s.state = RecordNone
	}
	s.logger.Debug().
		Int64("classID", classID).
		Int("rosterSize", len(roster)).
		Str("recordState", s.state.String()).
		Msg("Attendance session loaded")
	return nil
}

// State returns the established record state.
func (s *Session) State() RecordState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// HasAttendance reports whether the upstream holds records for the class.
func (s *Session) HasAttendance() bool {
	return s.State() == RecordExists
}

// Class returns the loaded class session, nil before Load.
func (s *Session) Class() *models.ClassSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.class
}

// Mark sets one student's status locally. Only present and absent are
// accepted: once a student is marked there is no way back to unset within
// the session. No network call happens here.
func (s *Session) Mark(studentID int64, status models.AttendanceStatus) error {
	if status != models.AttendancePresent && status != models.AttendanceAbsent {
		return fmt.Errorf("%w: status must be present or absent", apperrors.ErrValidationFailed)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == RecordUnknown {
		return apperrors.ErrAttendanceNotLoaded
	}
	if !s.onRosterLocked(studentID) {
		return fmt.Errorf("%w: student %d not on roster", apperrors.ErrValidationFailed, studentID)
	}
	s.marks[studentID] = status
	return nil
}

// MarkAll overwrites the whole in-memory map for the loaded roster with
// one status. Repeated calls are idempotent.
func (s *Session) MarkAll(status models.AttendanceStatus) error {
	if status != models.AttendancePresent && status != models.AttendanceAbsent {
		return fmt.Errorf("%w: status must be present or absent", apperrors.ErrValidationFailed)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == RecordUnknown {
		return apperrors.ErrAttendanceNotLoaded
	}
	s.marks = make(map[int64]models.AttendanceStatus, len(s.roster))
	for _, student := range s.roster {
		s.marks[student.StudentID] = status
	}
	return nil
}

// Rows returns the merged roster with each student's current status.
func (s *Session) Rows() []RosterRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]RosterRow, 0, len(s.roster))
	for _, student := range s.roster {
		status := s.marks[student.StudentID]
		rows = append(rows, RosterRow{Student: student, Status: status, Label: status.String()})
	}
	return rows
}

// Counts holds the derived tallies for the sheet and the summary banner.
type Counts struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Unset   int `json:"unset"`
	Total   int `json:"total"`
}

// Counts derives the tallies by filtering the merged roster.
func (s *Session) Counts() Counts {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := Counts{Total: len(s.roster)}
	for _, student := range s.roster {
		switch s.marks[student.StudentID] {
		case models.AttendancePresent:
			counts.Present++
		case models.AttendanceAbsent:
			counts.Absent++
		default:
			counts.Unset++
		}
	}
	return counts
}

// Submit sends the marks upstream, picking the branch the record state
// dictates: store for a class with no attendance yet, update otherwise.
// On success a stored class transitions to RecordExists; on failure the
// prior state is kept so the caller can retry.
func (s *Session) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return apperrors.ErrSubmitInProgress
	}
	if s.state == RecordUnknown {
		s.mu.Unlock()
		return apperrors.ErrAttendanceNotLoaded
	}
	state := s.state
	submission := s.buildSubmissionLocked(state)
	s.submitting = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
	}()

	if state == RecordNone && len(submission.Entries) == 0 {
		// Rejected before any network call.
		return apperrors.ErrNoStudentsMarked
	}

	var err error
	if state == RecordNone {
		err = s.client.StoreAttendance(ctx, s.token, submission)
		metrics.AttendanceSubmits.WithLabelValues("save").Inc()
	} else {
		err = s.client.UpdateAttendance(ctx, s.token, submission)
		metrics.AttendanceSubmits.WithLabelValues("update").Inc()
	}
	if err != nil {
		s.logger.Error().Err(err).Int64("classID", s.classID).Str("mode", state.String()).Msg("Attendance submit failed")
		return err
	}

	s.mu.Lock()
	s.state = RecordExists
	s.mu.Unlock()
	return nil
}

// buildSubmissionLocked shapes the payload for the given branch. The
// store path carries only marked students; the update path covers the
// full roster with unmarked students defaulting to absent, signalling a
// full-roster overwrite to the upstream.
func (s *Session) buildSubmissionLocked(state RecordState) upstream.AttendanceSubmission {
	submission := upstream.AttendanceSubmission{ClassID: s.classID}
	for _, student := range s.roster {
		status, marked := s.marks[student.StudentID]
		if state == RecordNone && (!marked || status == models.AttendanceUnset) {
			continue
		}
		submission.Entries = append(submission.Entries, upstream.AttendanceEntry{
			StudentID: student.StudentID,
			RegNo:     student.RegNo,
			IsPresent: status.RevValue(),
		})
	}
	return submission
}

func (s *Session) onRosterLocked(studentID int64) bool {
	for _, student := range s.roster {
		if student.StudentID == studentID {
			return true
		}
	}
	return false
}
