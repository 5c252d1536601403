package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// StarEventData describes one awarded star.
type StarEventData struct {
	Letter    string
	Source    string // "tracing", "quiz", ...
	SessionID string
}

// StarEventRecord is a stored star event.
type StarEventRecord struct {
	StarEventData
	ID        int
	Sequence  int64
	Timestamp time.Time
}

// QuizEventData describes one submitted quiz answer.
type QuizEventData struct {
	SessionID string
	Letter    string
	Target    string
	Chosen    string
	Correct   bool
}

// QuizEventRecord is a stored quiz answer.
type QuizEventRecord struct {
	QuizEventData
	ID        int
	Sequence  int64
	Timestamp time.Time
}

// QuizStat aggregates answers for one letter.
type QuizStat struct {
	Letter  string
	Correct int
	Total   int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	LLMRequestEventData
	ID        int
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendStarEvent records one awarded star.
	AppendStarEvent(ctx context.Context, data StarEventData) error

	// StarCount counts stars for letter recorded after sequence afterSeq.
	StarCount(ctx context.Context, letter string, afterSeq int64) (int, error)

	// StarCounts counts stars per letter recorded after sequence afterSeq.
	StarCounts(ctx context.Context, afterSeq int64) (map[string]int, error)

	// QueryStarEvents returns star events, newest first.
	QueryStarEvents(ctx context.Context, opts QueryOpts) ([]StarEventRecord, error)

	// AppendQuizEvent records a submitted quiz answer.
	AppendQuizEvent(ctx context.Context, data QuizEventData) error

	// QueryQuizEvents returns quiz answers, newest first.
	QueryQuizEvents(ctx context.Context, opts QueryOpts) ([]QuizEventRecord, error)

	// QuizStats aggregates answers per letter.
	QuizStats(ctx context.Context) ([]QuizStat, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one LLM event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LatestSequence returns the last sequence issued to any event.
	LatestSequence(ctx context.Context) (int64, error)

	// ResetProgress deletes star and quiz history and all snapshots.
	ResetProgress(ctx context.Context) error
}

// SnapshotData captures folded learner progress at a point in time.
type SnapshotData struct {
	Version int            `json:"version"`
	Stars   map[string]int `json:"stars,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// SettingsRepo is a small string key/value table.
type SettingsRepo interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error
}
