package download

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/video-saver/internal/model"
	"github.com/ytget/video-saver/internal/notify"
)

var (
	ErrDownloadInProgress = errors.New("another download is in progress")
	ErrTaskNotFound       = errors.New("task not found")
	ErrTaskNotActive      = errors.New("task is not active")
)

// TaskIDPrefix prefixes generated task IDs
const TaskIDPrefix = "task-"

// Service runs one simulated download at a time and records finished ones
type Service struct {
	sim       *Simulator
	history   HistoryAppender
	publisher notify.Publisher
	logger    *zap.Logger

	tasks      map[string]*model.DownloadTask
	order      []string
	cancels    map[string]context.CancelFunc
	done       map[string]chan struct{}
	activeID   string
	tasksMutex sync.RWMutex

	onUpdate      func(model.DownloadTask) // callback for UI updates
	callbackMutex sync.RWMutex
}

// NewService creates a new download service. publisher and logger may be nil.
func NewService(sim *Simulator, history HistoryAppender, publisher notify.Publisher, logger *zap.Logger) *Service {
	if sim == nil {
		sim = NewSimulator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		sim:       sim,
		history:   history,
		publisher: publisher,
		logger:    logger,
		tasks:     make(map[string]*model.DownloadTask),
		cancels:   make(map[string]context.CancelFunc),
		done:      make(map[string]chan struct{}),
	}
}

// SetUpdateCallback sets the callback function for task updates. It is
// called from the download goroutine with a snapshot of the task.
func (s *Service) SetUpdateCallback(callback func(model.DownloadTask)) {
	s.callbackMutex.Lock()
	defer s.callbackMutex.Unlock()
	s.onUpdate = callback
}

// Start begins downloading the chosen variant of meta. Only one download may
// be active; the quality label is checked before anything starts.
func (s *Service) Start(meta *model.VideoMetadata, qualityLabel string) (*model.DownloadTask, error) {
	if _, err := resolveQuality(meta, qualityLabel); err != nil {
		return nil, err
	}

	s.tasksMutex.Lock()
	if s.activeID != "" {
		active := s.activeID
		s.tasksMutex.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrDownloadInProgress, active)
	}

	task := &model.DownloadTask{
		ID:        generateTaskID(),
		VideoID:   meta.ID,
		Title:     meta.Title,
		Quality:   qualityLabel,
		Status:    model.TaskStatusPending,
		StartedAt: time.Now(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	s.tasks[task.ID] = task
	s.order = append(s.order, task.ID)
	s.cancels[task.ID] = cancel
	s.done[task.ID] = done
	s.activeID = task.ID
	snapshot := *task
	s.tasksMutex.Unlock()

	s.logger.Info("download started",
		zap.String("task", task.ID),
		zap.String("video", task.VideoID),
		zap.String("quality", qualityLabel))
	s.notifyUpdate(snapshot)

	go s.runTask(ctx, task.ID, cloneMetadata(meta), qualityLabel, done)

	return &snapshot, nil
}

// Cancel stops an active download. The record is discarded.
func (s *Service) Cancel(id string) error {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	task, exists := s.tasks[id]
	if !exists {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	if !task.Status.IsActive() {
		return fmt.Errorf("%w: %s", ErrTaskNotActive, task.Status)
	}

	// Once the record is being saved the task can no longer be cancelled
	cancel, ok := s.cancels[id]
	if !ok {
		return fmt.Errorf("%w: %s is finishing", ErrTaskNotActive, id)
	}
	// The task goroutine records the final status
	cancel()
	return nil
}

// GetTask returns a snapshot of a task by ID
func (s *Service) GetTask(id string) (model.DownloadTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	if !exists {
		return model.DownloadTask{}, false
	}
	return *task, true
}

// GetAllTasks returns snapshots of all tasks in start order
func (s *Service) GetAllTasks() []model.DownloadTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]model.DownloadTask, 0, len(s.order))
	for _, id := range s.order {
		tasks = append(tasks, *s.tasks[id])
	}
	return tasks
}

// ActiveTask returns the running task, if any
func (s *Service) ActiveTask() (model.DownloadTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	if s.activeID == "" {
		return model.DownloadTask{}, false
	}
	return *s.tasks[s.activeID], true
}

// Wait blocks until the task has finished and returns its final snapshot
func (s *Service) Wait(id string) (model.DownloadTask, error) {
	s.tasksMutex.RLock()
	done, exists := s.done[id]
	s.tasksMutex.RUnlock()
	if !exists {
		return model.DownloadTask{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}

	<-done
	task, _ := s.GetTask(id)
	return task, nil
}

// runTask drives the simulator and records the outcome
func (s *Service) runTask(ctx context.Context, id string, meta *model.VideoMetadata, qualityLabel string, done chan struct{}) {
	defer close(done)

	record, err := s.sim.Run(ctx, meta, qualityLabel, func(percent float64) {
		s.updateTaskProgress(id, percent)
	})

	// A cancel that raced the last progress step wins over the record
	s.tasksMutex.Lock()
	if err == nil && ctx.Err() != nil {
		record, err = nil, ctx.Err()
	}
	if cancel, ok := s.cancels[id]; ok && err == nil {
		cancel()
		delete(s.cancels, id)
	}
	s.tasksMutex.Unlock()

	if err == nil && s.history != nil {
		if herr := s.history.Append(*record); herr != nil {
			err = fmt.Errorf("failed to save download history: %w", herr)
		}
	}

	s.tasksMutex.Lock()
	task := s.tasks[id]
	switch {
	case err == nil:
		task.Status = model.TaskStatusCompleted
		task.Percent = CompletePercent
		task.Record = record
	case errors.Is(err, context.Canceled):
		task.Status = model.TaskStatusCancelled
	default:
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
	}
	task.FinishedAt = time.Now()
	if cancel, ok := s.cancels[id]; ok {
		cancel()
		delete(s.cancels, id)
	}
	if s.activeID == id {
		s.activeID = ""
	}
	snapshot := *task
	s.tasksMutex.Unlock()

	switch snapshot.Status {
	case model.TaskStatusCompleted:
		s.logger.Info("download completed", zap.String("task", id), zap.String("video", snapshot.VideoID))
	case model.TaskStatusCancelled:
		s.logger.Info("download cancelled", zap.String("task", id))
	default:
		s.logger.Error("download failed", zap.String("task", id), zap.Error(err))
	}

	s.notifyUpdate(snapshot)

	if snapshot.Status == model.TaskStatusCompleted && s.publisher != nil {
		s.publisher.Publish(notify.CompletionEvent{Title: snapshot.Title, Quality: snapshot.Quality})
	}
}

// updateTaskProgress records a progress value from the simulator
func (s *Service) updateTaskProgress(id string, percent float64) {
	s.tasksMutex.Lock()
	task, exists := s.tasks[id]
	if !exists {
		s.tasksMutex.Unlock()
		return
	}
	task.Status = model.TaskStatusDownloading
	if percent > task.Percent {
		task.Percent = percent
	}
	snapshot := *task
	s.tasksMutex.Unlock()

	s.notifyUpdate(snapshot)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task model.DownloadTask) {
	s.callbackMutex.RLock()
	callback := s.onUpdate
	s.callbackMutex.RUnlock()

	if callback != nil {
		callback(task)
	}
}

// cloneMetadata copies meta so callers can drop or mutate theirs
func cloneMetadata(meta *model.VideoMetadata) *model.VideoMetadata {
	c := *meta
	c.Qualities = append([]model.QualityVariant(nil), meta.Qualities...)
	return &c
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return TaskIDPrefix + uuid.NewString()
}
