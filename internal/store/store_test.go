package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "concursados.json")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	return s
}

func TestOpenMissingFileYieldsDefaults(t *testing.T) {
	s := openTestStore(t)
	rec := s.Record()

	if rec.User != nil {
		t.Errorf("user = %+v, want nil", rec.User)
	}
	if rec.Stats.XP != 0 || rec.Stats.Streak != 0 {
		t.Errorf("stats = %+v, want zero values", rec.Stats)
	}
	if len(rec.DownloadHistory) != 0 {
		t.Errorf("downloadHistory = %v, want empty", rec.DownloadHistory)
	}
	if len(rec.TfmHistory) != 0 {
		t.Errorf("tfmHistory = %v, want empty", rec.TfmHistory)
	}
}

func TestOpenCorruptFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concursados.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.Profile() != nil {
		t.Error("expected nil profile from corrupt store")
	}
	if s.Stats().XP != 0 {
		t.Errorf("xp = %d, want 0", s.Stats().XP)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concursados.json")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	p := UserProfile{Name: "Silva", TargetExam: "ESA", DailyHours: 3, Level: LevelBeginner}
	if err := s.SaveProfile(p); err != nil {
		t.Fatalf("save profile: %v", err)
	}

	// Reopen from disk.
	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got := s2.Profile()
	if got == nil {
		t.Fatal("expected profile after reopen")
	}
	if *got != p {
		t.Errorf("profile = %+v, want %+v", *got, p)
	}
}

func TestAddXP(t *testing.T) {
	s := openTestStore(t)

	stats, err := s.AddXP(30)
	if err != nil {
		t.Fatalf("add xp: %v", err)
	}
	if stats.XP != 30 {
		t.Errorf("xp = %d, want 30", stats.XP)
	}

	stats, _ = s.AddXP(20)
	if stats.XP != 50 {
		t.Errorf("xp = %d, want 50", stats.XP)
	}
}

func TestRegisterDownloadIdempotent(t *testing.T) {
	s := openTestStore(t)

	stats, err := s.RegisterDownload("enem-2023-azul")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if stats.PDFsDownloaded != 1 {
		t.Errorf("pdfsDownloaded = %d, want 1", stats.PDFsDownloaded)
	}
	if stats.XP != XPDownload {
		t.Errorf("xp = %d, want %d", stats.XP, XPDownload)
	}

	// Repeat download of the same id is a no-op.
	stats, err = s.RegisterDownload("enem-2023-azul")
	if err != nil {
		t.Fatalf("register repeat: %v", err)
	}
	if stats.PDFsDownloaded != 1 {
		t.Errorf("pdfsDownloaded after repeat = %d, want 1", stats.PDFsDownloaded)
	}
	if stats.XP != XPDownload {
		t.Errorf("xp after repeat = %d, want %d", stats.XP, XPDownload)
	}

	rec := s.Record()
	if len(rec.DownloadHistory) != rec.Stats.PDFsDownloaded {
		t.Errorf("history len %d != counter %d", len(rec.DownloadHistory), rec.Stats.PDFsDownloaded)
	}
}

func TestSaveTfmRecordUpsertsByDate(t *testing.T) {
	s := openTestStore(t)

	first := TfmRecord{Date: "2026-08-28", Mood: MoodNeutral, WorkoutDone: false, RunKm: 2}
	if _, err := s.SaveTfmRecord(first); err != nil {
		t.Fatalf("save first: %v", err)
	}

	second := TfmRecord{Date: "2026-08-28", Mood: MoodHappy, WorkoutDone: true, RunKm: 3.5}
	if _, err := s.SaveTfmRecord(second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	rec := s.Record()
	if len(rec.TfmHistory) != 1 {
		t.Fatalf("tfmHistory len = %d, want 1", len(rec.TfmHistory))
	}
	if rec.TfmHistory[0] != second {
		t.Errorf("record = %+v, want %+v", rec.TfmHistory[0], second)
	}

	got, ok := s.TfmForDate("2026-08-28")
	if !ok || got != second {
		t.Errorf("TfmForDate = %+v ok=%v, want %+v", got, ok, second)
	}
	if _, ok := s.TfmForDate("2026-08-27"); ok {
		t.Error("expected no record for other date")
	}
}

func TestWorkoutXPAwardedOncePerDay(t *testing.T) {
	s := openTestStore(t)

	day := TfmRecord{Date: "2026-08-28", Mood: MoodTired, WorkoutDone: true, RunKm: 5}
	stats, err := s.SaveTfmRecord(day)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if stats.XP != XPWorkout {
		t.Errorf("xp = %d, want %d", stats.XP, XPWorkout)
	}

	// Re-saving with the workout still done must not award again.
	day.RunKm = 6
	stats, err = s.SaveTfmRecord(day)
	if err != nil {
		t.Fatalf("resave: %v", err)
	}
	if stats.XP != XPWorkout {
		t.Errorf("xp after resave = %d, want %d", stats.XP, XPWorkout)
	}

	// Unchecking and re-checking awards a second time: the flag genuinely
	// transitioned false to true again.
	day.WorkoutDone = false
	if _, err := s.SaveTfmRecord(day); err != nil {
		t.Fatalf("uncheck: %v", err)
	}
	day.WorkoutDone = true
	stats, err = s.SaveTfmRecord(day)
	if err != nil {
		t.Fatalf("recheck: %v", err)
	}
	if stats.XP != 2*XPWorkout {
		t.Errorf("xp after recheck = %d, want %d", stats.XP, 2*XPWorkout)
	}
}

func TestRecordAnswer(t *testing.T) {
	s := openTestStore(t)

	stats, err := s.RecordAnswer(true)
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if stats.QuestionsAnswered != 1 || stats.CorrectAnswers != 1 {
		t.Errorf("counters = %d/%d, want 1/1", stats.QuestionsAnswered, stats.CorrectAnswers)
	}
	if stats.XP != XPCorrectAnswer {
		t.Errorf("xp = %d, want %d", stats.XP, XPCorrectAnswer)
	}

	stats, _ = s.RecordAnswer(false)
	if stats.QuestionsAnswered != 2 || stats.CorrectAnswers != 1 {
		t.Errorf("counters = %d/%d, want 2/1", stats.QuestionsAnswered, stats.CorrectAnswers)
	}
	if stats.XP != XPCorrectAnswer {
		t.Errorf("xp after wrong answer = %d, want %d", stats.XP, XPCorrectAnswer)
	}
}

func TestAddStudyTimeStreak(t *testing.T) {
	s := openTestStore(t)

	day1 := time.Date(2026, 8, 24, 20, 0, 0, 0, time.UTC) // Monday
	stats, err := s.AddStudyTime(day1, 0.5)
	if err != nil {
		t.Fatalf("add study time: %v", err)
	}
	if stats.Streak != 1 {
		t.Errorf("streak = %d, want 1", stats.Streak)
	}
	if stats.StudyHours[0] != 0.5 {
		t.Errorf("monday hours = %v, want 0.5", stats.StudyHours[0])
	}

	// Same day: hours accumulate, streak unchanged.
	stats, _ = s.AddStudyTime(day1.Add(2*time.Hour), 0.5)
	if stats.Streak != 1 {
		t.Errorf("streak same day = %d, want 1", stats.Streak)
	}
	if stats.StudyHours[0] != 1 {
		t.Errorf("monday hours = %v, want 1", stats.StudyHours[0])
	}

	// Next day continues the streak.
	stats, _ = s.AddStudyTime(day1.AddDate(0, 0, 1), 1)
	if stats.Streak != 2 {
		t.Errorf("streak next day = %d, want 2", stats.Streak)
	}

	// A gap resets it.
	stats, _ = s.AddStudyTime(day1.AddDate(0, 0, 4), 1)
	if stats.Streak != 1 {
		t.Errorf("streak after gap = %d, want 1", stats.Streak)
	}
}

func TestReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concursados.json")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	_ = s.SaveProfile(UserProfile{Name: "Silva", TargetExam: "ESA", DailyHours: 3, Level: LevelBeginner})
	_, _ = s.RegisterDownload("esa-repo")

	if err := s.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if s2.Profile() != nil {
		t.Error("expected nil profile after reset")
	}
	if s2.Stats().XP != 0 {
		t.Errorf("xp after reset = %d, want 0", s2.Stats().XP)
	}
}

func TestPersistIsAtomicOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concursados.json")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := s.AddXP(10); err != nil {
			t.Fatalf("add xp %d: %v", i, err)
		}
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("data dir has %d entries, want only the record file", len(entries))
	}
}

func TestSaveFailureIsLogged(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	// The record path's parent is a regular file, so every save fails.
	s, err := Open(filepath.Join(blocker, "record.json"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	core, logs := observer.New(zapcore.WarnLevel)
	s.SetLogger(zap.New(core))

	if err := s.SaveProfile(UserProfile{Name: "Silva"}); err == nil {
		t.Fatal("expected save to fail under an unwritable path")
	}
	if logs.FilterMessage("record save failed").Len() == 0 {
		t.Error("expected the failed save to be logged")
	}
}
