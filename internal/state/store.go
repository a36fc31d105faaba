package state

import (
	"context"

	"go.uber.org/zap"

	"github.com/ytget/item-list/internal/expansion"
	"github.com/ytget/item-list/internal/fetch"
	"github.com/ytget/item-list/internal/model"
	"github.com/ytget/item-list/internal/pipeline"
)

// Store holds the records, the derived grouped view and the expansion state
type Store struct {
	fetcher fetch.Fetcher
	post    func(func())
	logger  *zap.Logger

	records   []model.Record
	view      pipeline.GroupedView
	expansion *expansion.State
	status    model.LoadStatus

	listeners []func()
}

// NewStore creates an empty store. post must run the function on the UI
// goroutine (fyne.Do in the app); a nil post runs it inline.
func NewStore(fetcher fetch.Fetcher, post func(func()), logger *zap.Logger) *Store {
	if post == nil {
		post = func(fn func()) { fn() }
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		fetcher:   fetcher,
		post:      post,
		logger:    logger.Named("state"),
		expansion: expansion.New(),
		status:    model.LoadStatusIdle,
	}
}

// Subscribe registers fn to be called after every state change
func (s *Store) Subscribe(fn func()) {
	s.listeners = append(s.listeners, fn)
}

// Load starts a background fetch of url. It returns false without doing
// anything when a fetch is already in flight.
func (s *Store) Load(ctx context.Context, url string) bool {
	if s.status.IsActive() {
		s.logger.Debug("load ignored, fetch in flight", zap.String("url", url))
		return false
	}

	s.status = model.LoadStatusLoading
	s.notify()

	go func() {
		records := s.fetcher.Fetch(ctx, url)
		s.post(func() {
			s.Dispatch(RecordsLoaded{Records: records})
		})
	}()
	return true
}

// Dispatch applies an event and notifies subscribers
func (s *Store) Dispatch(e Event) {
	switch ev := e.(type) {
	case ToggleGroup:
		if _, ok := s.view.Group(ev.GroupID); !ok {
			s.logger.Debug("toggle ignored for unknown group", zap.Int("group_id", ev.GroupID))
			return
		}
		s.expansion.Toggle(ev.GroupID)
	case ExpandAll:
		s.expansion.ExpandAll(s.view.Keys())
	case CollapseAll:
		s.expansion.CollapseAll()
	case RecordsLoaded:
		s.records = ev.Records
		s.view = pipeline.Project(ev.Records)
		s.expansion.Retain(s.view.Keys())
		s.status = model.LoadStatusLoaded
		s.logger.Info("records loaded",
			zap.Int("records", len(ev.Records)),
			zap.Int("groups", s.view.Len()),
			zap.Int("visible", s.view.RecordCount()))
	default:
		s.logger.Warn("unknown event", zap.Any("event", e))
		return
	}
	s.notify()
}

func (s *Store) notify() {
	for _, fn := range s.listeners {
		fn()
	}
}

// View returns the grouped projection of the current records
func (s *Store) View() pipeline.GroupedView {
	return s.view
}

// Records returns the records as fetched, in response order
func (s *Store) Records() []model.Record {
	return s.records
}

// Status returns the load status
func (s *Store) Status() model.LoadStatus {
	return s.status
}

// IsExpanded reports whether the group shows its records
func (s *Store) IsExpanded(groupID int) bool {
	return s.expansion.IsExpanded(groupID)
}

// AllExpanded reports whether every group of the current view is expanded
func (s *Store) AllExpanded() bool {
	return s.expansion.AllExpanded(s.view.Keys())
}

// AllCollapsed reports whether no group is expanded
func (s *Store) AllCollapsed() bool {
	return s.expansion.AllCollapsed()
}
