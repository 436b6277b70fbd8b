package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/questdo/questdo/internal/model"
)

// taskRecord is the wire form of one task. Field names are part of the
// persisted layout and must stay stable across releases.
type taskRecord struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	IsCompleted bool       `json:"isCompleted"`
	CreatedAt   time.Time  `json:"createdAt"`
	Deadline    time.Time  `json:"deadline"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	IsUrgent    bool       `json:"isUrgent"`
	IsImportant bool       `json:"isImportant"`
}

// EncodeTasks serializes the full collection as a single JSON array.
func EncodeTasks(tasks []model.Task) ([]byte, error) {
	records := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, taskRecord{
			ID:          t.ID,
			Title:       t.Title,
			IsCompleted: t.IsCompleted,
			CreatedAt:   t.CreatedAt,
			Deadline:    t.Deadline,
			CompletedAt: t.CompletedAt,
			IsUrgent:    t.IsUrgent,
			IsImportant: t.IsImportant,
		})
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode tasks: %w", err)
	}
	return data, nil
}

// DecodeTasks parses a blob written by EncodeTasks. Callers treat any error
// as "start from an empty collection"; decoding never partially succeeds.
func DecodeTasks(data []byte) ([]model.Task, error) {
	var records []taskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	out := make([]model.Task, 0, len(records))
	for _, r := range records {
		out = append(out, model.Task{
			ID:          r.ID,
			Title:       r.Title,
			IsCompleted: r.IsCompleted,
			CreatedAt:   r.CreatedAt,
			Deadline:    r.Deadline,
			CompletedAt: r.CompletedAt,
			IsUrgent:    r.IsUrgent,
			IsImportant: r.IsImportant,
		})
	}
	return out, nil
}
