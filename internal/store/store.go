// Package store owns the task collection. All mutations pass through here,
// are mutually exclusive, and schedule an asynchronous best-effort save of a
// consistent snapshot to the external blob store.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/questdo/questdo/internal/model"
	"github.com/questdo/questdo/internal/storage"
)

type Store struct {
	mu    sync.Mutex
	tasks []model.Task

	blob storage.BlobStore
	log  *zap.Logger

	now   func() time.Time
	newID func() string

	pendingMu sync.Mutex
	pending   []byte

	wakeup chan struct{}
	stopCh chan struct{}
	doneCh chan struct{}
	once   sync.Once
}

// New loads the collection from the blob store and starts the persistence
// worker. Load failures are absorbed: a corrupt or unreadable blob yields an
// empty collection, which is then seeded with the demo quests. The store
// does not own the BlobStore; the caller closes it after Close returns.
func New(blob storage.BlobStore, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		blob:   blob,
		log:    log,
		now:    time.Now,
		newID:  func() string { return uuid.NewString() },
		wakeup: make(chan struct{}, 1),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	s.mu.Lock()
	s.load()
	if len(s.tasks) == 0 {
		s.tasks = seedTasks(s.now())
		s.scheduleSaveLocked()
	}
	s.mu.Unlock()
	go s.persistLoop()
	return s
}

func (s *Store) load() {
	data, err := s.blob.Load()
	if err != nil {
		s.log.Warn("load tasks", zap.Error(err))
		return
	}
	if data == nil {
		return
	}
	tasks, err := storage.DecodeTasks(data)
	if err != nil {
		// Fail soft: a blob we cannot read is treated as no blob at all.
		s.log.Warn("decode tasks, starting empty", zap.Error(err))
		return
	}
	s.tasks = tasks
}

// Add appends a new task with a fresh id. A zero deadline falls back to the
// current time; title validation is the caller's concern.
func (s *Store) Add(title string, deadline time.Time, urgent, important bool) model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if deadline.IsZero() {
		deadline = now
	}
	task := model.Task{
		ID:          s.newID(),
		Title:       title,
		CreatedAt:   now,
		Deadline:    deadline,
		IsUrgent:    urgent,
		IsImportant: important,
	}
	s.tasks = append(s.tasks, task)
	s.scheduleSaveLocked()
	return task
}

// Update replaces the mutable fields of the task with the given id, keeping
// its identity, creation time, and completion state. Unknown ids are a
// silent no-op.
func (s *Store) Update(id, title string, deadline time.Time, urgent, important bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return
	}
	task := s.tasks[idx]
	task.Title = title
	task.Deadline = deadline
	task.IsUrgent = urgent
	task.IsImportant = important
	s.tasks[idx] = task
	s.scheduleSaveLocked()
}

// Delete removes the task with the given id; unknown ids are a silent no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return
	}
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	s.scheduleSaveLocked()
}

// ToggleCompletion flips the completion flag. Completing stamps the current
// time; re-opening clears it, so toggling back and forth records a fresh
// completion time each round.
func (s *Store) ToggleCompletion(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return
	}
	task := s.tasks[idx]
	task.IsCompleted = !task.IsCompleted
	if task.IsCompleted {
		done := s.now()
		task.CompletedAt = &done
	} else {
		task.CompletedAt = nil
	}
	s.tasks[idx] = task
	s.scheduleSaveLocked()
}

// ResetAll irreversibly clears the collection.
func (s *Store) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = nil
	s.scheduleSaveLocked()
}

// Tasks returns a snapshot of the collection for the projection functions.
func (s *Store) Tasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Task(nil), s.tasks...)
}

// Personality derives the user persona from the completed-task distribution.
func (s *Store) Personality() model.Persona {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.PersonaFor(s.tasks)
}

// Close flushes the newest unsaved snapshot and stops the worker. It is safe
// to call more than once.
func (s *Store) Close() {
	s.once.Do(func() {
		close(s.stopCh)
		<-s.doneCh
	})
}

func (s *Store) indexOfLocked(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// scheduleSaveLocked encodes the collection while the mutation lock is still
// held, so the pending snapshot always reflects the newest mutation, then
// nudges the worker. Snapshots coalesce: only the latest one is written.
func (s *Store) scheduleSaveLocked() {
	data, err := storage.EncodeTasks(s.tasks)
	if err != nil {
		s.log.Error("encode tasks", zap.Error(err))
		return
	}
	s.pendingMu.Lock()
	s.pending = data
	s.pendingMu.Unlock()

	select {
	case s.wakeup <- struct{}{}:
	default:
	}
}

func (s *Store) persistLoop() {
	defer close(s.doneCh)
	for {
		select {
		case <-s.wakeup:
			s.flushPending()
		case <-s.stopCh:
			s.flushPending()
			return
		}
	}
}

func (s *Store) flushPending() {
	s.pendingMu.Lock()
	data := s.pending
	s.pending = nil
	s.pendingMu.Unlock()
	if data == nil {
		return
	}
	if err := s.blob.Save(data); err != nil {
		// Best effort: a lost cache write is not surfaced to the caller.
		s.log.Warn("persist tasks", zap.Error(err))
	}
}
