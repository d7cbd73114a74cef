package store

// Level is the self-reported preparation level chosen during onboarding.
type Level string

const (
	LevelBeginner     Level = "Iniciante"
	LevelIntermediate Level = "Intermediário"
	LevelAdvanced     Level = "Avançado"
)

// Levels lists the selectable levels in menu order.
func Levels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// TargetExams lists the exams a candidate can train for, in menu order.
func TargetExams() []string {
	return []string{"ESA", "EsPCEx", "PM-SP", "PF", "ENEM", "Banco do Brasil"}
}

// Mood is the daily check-in mood for the physical-training log.
type Mood string

const (
	MoodHappy   Mood = "feliz"
	MoodNeutral Mood = "neutro"
	MoodSad     Mood = "triste"
	MoodTired   Mood = "cansado"
)

// Moods lists the selectable moods in menu order.
func Moods() []Mood {
	return []Mood{MoodHappy, MoodNeutral, MoodSad, MoodTired}
}

// XP amounts awarded by store operations.
const (
	XPDownload      = 50
	XPWorkout       = 100
	XPCorrectAnswer = 10
	XPEssay         = 75
)

// UserProfile holds the candidate identity captured during onboarding.
type UserProfile struct {
	Name       string `json:"name"`
	TargetExam string `json:"targetExam"`
	DailyHours int    `json:"dailyHours"`
	Level      Level  `json:"level"`
}

// UserStats accumulates progress counters across sessions.
//
// StudyHours is indexed Monday=0 through Sunday=6 and holds the hours
// studied per weekday of the current week. LastStudyDate backs the streak
// counter and is an ISO date (YYYY-MM-DD).
type UserStats struct {
	XP                int        `json:"xp"`
	Streak            int        `json:"streak"`
	QuestionsAnswered int        `json:"questionsAnswered"`
	CorrectAnswers    int        `json:"correctAnswers"`
	EssaysSubmitted   int        `json:"essaysSubmitted"`
	PDFsDownloaded    int        `json:"pdfsDownloaded"`
	StudyHours        [7]float64 `json:"studyHours"`
	LastStudyDate     string     `json:"lastStudyDate,omitempty"`
}

// TfmRecord is one day's physical-training check-in. Date is an ISO date
// (YYYY-MM-DD); at most one record exists per date.
type TfmRecord struct {
	Date        string  `json:"date"`
	Mood        Mood    `json:"mood"`
	WorkoutDone bool    `json:"workoutDone"`
	RunKm       float64 `json:"runKm"`
}

// Record is the full persisted state: one JSON document per user.
type Record struct {
	User            *UserProfile `json:"user"`
	Stats           UserStats    `json:"stats"`
	DownloadHistory []string     `json:"downloadHistory"`
	TfmHistory      []TfmRecord  `json:"tfmHistory"`
}

// DefaultRecord returns the zero state written for first-time users and
// recovered to when the persisted file is missing or unreadable.
func DefaultRecord() Record {
	return Record{
		User:            nil,
		Stats:           UserStats{},
		DownloadHistory: []string{},
		TfmHistory:      []TfmRecord{},
	}
}
