package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DateLayout is the ISO date format used for TFM records and streaks.
const DateLayout = "2006-01-02"

// Store persists a single JSON record on disk. All mutating operations
// follow read-modify-write on the whole record and save atomically via a
// temp file rename. A missing or unreadable file yields the default record;
// Load never fails.
type Store struct {
	mu     sync.Mutex
	path   string
	rec    Record
	logger *zap.Logger
}

// Open loads the record at path, falling back to the default record when
// the file is missing or cannot be parsed. The returned error is reserved
// for future use; corruption is not an error by design of the recovery
// policy.
func Open(path string) (*Store, error) {
	s := &Store{path: path, logger: zap.NewNop()}
	s.rec = loadRecord(path)
	return s, nil
}

// SetLogger routes save-failure warnings to l. Callers treat save errors as
// droppable, so the log is the only durable trace of a failed write.
func (s *Store) SetLogger(l *zap.Logger) {
	if l == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger = l
}

func loadRecord(path string) Record {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultRecord()
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return DefaultRecord()
	}
	if rec.DownloadHistory == nil {
		rec.DownloadHistory = []string{}
	}
	if rec.TfmHistory == nil {
		rec.TfmHistory = []TfmRecord{}
	}
	return rec
}

// Record returns a copy of the current in-memory record.
func (s *Store) Record() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Record {
	rec := s.rec
	rec.DownloadHistory = slices.Clone(s.rec.DownloadHistory)
	rec.TfmHistory = slices.Clone(s.rec.TfmHistory)
	if s.rec.User != nil {
		u := *s.rec.User
		rec.User = &u
	}
	return rec
}

// Profile returns the saved profile, or nil if onboarding has not completed.
func (s *Store) Profile() *UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rec.User == nil {
		return nil
	}
	u := *s.rec.User
	return &u
}

// Stats returns the current stats counters.
func (s *Store) Stats() UserStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.Stats
}

// SaveProfile stores the onboarding profile and persists.
func (s *Store) SaveProfile(p UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := p
	s.rec.User = &u
	return s.persistLocked()
}

// AddXP adds n experience points and returns the updated stats.
func (s *Store) AddXP(n int) (UserStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec.Stats.XP += n
	return s.rec.Stats, s.persistLocked()
}

// RegisterDownload records a PDF download. The first download of a given id
// increments the counter and awards XP; repeats are no-ops.
func (s *Store) RegisterDownload(id string) (UserStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.Contains(s.rec.DownloadHistory, id) {
		return s.rec.Stats, nil
	}
	s.rec.DownloadHistory = append(s.rec.DownloadHistory, id)
	s.rec.Stats.PDFsDownloaded++
	s.rec.Stats.XP += XPDownload
	return s.rec.Stats, s.persistLocked()
}

// SaveTfmRecord upserts the check-in for rec.Date, keeping at most one
// record per date. The workout XP bonus is awarded only when WorkoutDone
// flips from false to true for that date, so re-saving a completed day
// cannot farm XP.
func (s *Store) SaveTfmRecord(rec TfmRecord) (UserStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prevDone := false
	idx := slices.IndexFunc(s.rec.TfmHistory, func(r TfmRecord) bool {
		return r.Date == rec.Date
	})
	if idx >= 0 {
		prevDone = s.rec.TfmHistory[idx].WorkoutDone
		s.rec.TfmHistory[idx] = rec
	} else {
		s.rec.TfmHistory = append(s.rec.TfmHistory, rec)
	}

	if rec.WorkoutDone && !prevDone {
		s.rec.Stats.XP += XPWorkout
	}
	return s.rec.Stats, s.persistLocked()
}

// TfmForDate returns the check-in for the given ISO date, if any.
func (s *Store) TfmForDate(date string) (TfmRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rec.TfmHistory {
		if r.Date == date {
			return r, true
		}
	}
	return TfmRecord{}, false
}

// RecordAnswer counts an answered question, awarding XP when correct.
func (s *Store) RecordAnswer(correct bool) (UserStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec.Stats.QuestionsAnswered++
	if correct {
		s.rec.Stats.CorrectAnswers++
		s.rec.Stats.XP += XPCorrectAnswer
	}
	return s.rec.Stats, s.persistLocked()
}

// RecordEssay counts a submitted essay and awards XP.
func (s *Store) RecordEssay() (UserStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec.Stats.EssaysSubmitted++
	s.rec.Stats.XP += XPEssay
	return s.rec.Stats, s.persistLocked()
}

// AddStudyTime credits study time to the weekday of now and advances the
// streak: consecutive study days increment it, a gap resets it to 1.
func (s *Store) AddStudyTime(now time.Time, hours float64) (UserStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// time.Weekday has Sunday=0; the chart runs Monday..Sunday.
	day := (int(now.Weekday()) + 6) % 7
	s.rec.Stats.StudyHours[day] += hours

	today := now.Format(DateLayout)
	switch s.rec.Stats.LastStudyDate {
	case today:
		// Already counted today.
	case now.AddDate(0, 0, -1).Format(DateLayout):
		s.rec.Stats.Streak++
	default:
		s.rec.Stats.Streak = 1
	}
	s.rec.Stats.LastStudyDate = today

	return s.rec.Stats, s.persistLocked()
}

// Reset wipes all persisted state back to the default record.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = DefaultRecord()
	return s.persistLocked()
}

// persistLocked writes the record atomically and logs any failure, since
// most callers drop the returned error.
func (s *Store) persistLocked() error {
	err := s.writeLocked()
	if err != nil {
		s.logger.Warn("record save failed",
			zap.String("path", s.path),
			zap.Error(err))
	}
	return err
}

// writeLocked marshals the record to a temp file in the same directory,
// then renames it over the target.
func (s *Store) writeLocked() error {
	data, err := json.MarshalIndent(s.rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".concursados-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

// DefaultPath resolves the record file path in priority order:
// 1. CONCURSADOS_DATA environment variable
// 2. $XDG_DATA_HOME/concursados/concursados.json
// 3. ~/.local/share/concursados/concursados.json
func DefaultPath() (string, error) {
	if p := os.Getenv("CONCURSADOS_DATA"); p != "" {
		return p, ensureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "concursados", "concursados.json")
	return p, ensureDir(p)
}

// ensureDir creates the parent directory of path if it doesn't exist.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
