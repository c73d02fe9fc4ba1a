package services

import (
	"sync"

	"wirralclean/internal/models"
)

// recordingDispatcher keeps every submission instead of sending it.
type recordingDispatcher struct {
	mu   sync.Mutex
	subs []models.Submission
}

func (d *recordingDispatcher) Dispatch(sub models.Submission) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subs = append(d.subs, sub)
}

func (d *recordingDispatcher) sent() []models.Submission {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.Submission, len(d.subs))
	copy(out, d.subs)
	return out
}
