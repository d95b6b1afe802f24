package moonraker

import (
	"context"
	"fmt"
)

// JobQueueService wraps the /server/job_queue endpoints.
type JobQueueService struct {
	client Requester
}

// NewJobQueueService returns a JobQueueService issuing requests through r.
func NewJobQueueService(r Requester) *JobQueueService {
	return &JobQueueService{client: r}
}

// Status returns the queue state and the queued jobs.
func (s *JobQueueService) Status(ctx context.Context) (any, error) {
	return s.client.Get(ctx, "/server/job_queue/status", nil)
}

// Enqueue adds one or more files to the queue. With reset set the queue is
// cleared first.
func (s *JobQueueService) Enqueue(ctx context.Context, filenames []string, reset bool) (any, error) {
	return s.client.Post(ctx, "/server/job_queue/job", Body{"filenames": filenames, "reset": reset})
}

// Remove removes the given jobs, or every job when all is set.
func (s *JobQueueService) Remove(ctx context.Context, jobIDs []string, all bool) (any, error) {
	var params Params
	switch {
	case all:
		params = Params{"all": true}
	case len(jobIDs) > 0:
		params = Params{"job_ids": jobIDs}
	default:
		return nil, fmt.Errorf("%w: either job ids or all jobs must be specified", ErrInvalidArgument)
	}
	return s.client.Delete(ctx, "/server/job_queue/job", params)
}

// Pause pauses the queue.
func (s *JobQueueService) Pause(ctx context.Context) (any, error) {
	return s.client.Post(ctx, "/server/job_queue/pause", nil)
}

// Start starts the queue.
func (s *JobQueueService) Start(ctx context.Context) (any, error) {
	return s.client.Post(ctx, "/server/job_queue/start", nil)
}

// Jump moves a job to the front of the queue.
func (s *JobQueueService) Jump(ctx context.Context, jobID string) (any, error) {
	return s.client.Post(ctx, "/server/job_queue/jump", Body{"job_id": jobID})
}
