package agent

import (
	"context"

	"github.com/BrunoKrugel/moonraker-mcp/pkg/moonraker"
)

func (a *Agent) jobQueue(ctx context.Context, call func(context.Context, *moonraker.JobQueueService) (any, error)) (any, error) {
	return withClient(ctx, a, func(ctx context.Context, c *moonraker.Client) (any, error) {
		return call(ctx, moonraker.NewJobQueueService(c))
	})
}

// GetJobQueueStatus returns the queue state and queued jobs.
func (a *Agent) GetJobQueueStatus(ctx context.Context) (any, error) {
	return a.jobQueue(ctx, func(ctx context.Context, s *moonraker.JobQueueService) (any, error) {
		return s.Status(ctx)
	})
}

// EnqueueJob adds files to the queue, clearing it first when reset is set.
func (a *Agent) EnqueueJob(ctx context.Context, filenames []string, reset bool) (any, error) {
	return a.jobQueue(ctx, func(ctx context.Context, s *moonraker.JobQueueService) (any, error) {
		return s.Enqueue(ctx, filenames, reset)
	})
}

// RemoveJob removes the given jobs, or all of them. Supplying neither fails
// with moonraker.ErrInvalidArgument without contacting the printer.
func (a *Agent) RemoveJob(ctx context.Context, jobIDs []string, all bool) (any, error) {
	return a.jobQueue(ctx, func(ctx context.Context, s *moonraker.JobQueueService) (any, error) {
		return s.Remove(ctx, jobIDs, all)
	})
}

// PauseQueue pauses the job queue.
func (a *Agent) PauseQueue(ctx context.Context) (any, error) {
	return a.jobQueue(ctx, func(ctx context.Context, s *moonraker.JobQueueService) (any, error) {
		return s.Pause(ctx)
	})
}

// StartQueue starts the job queue.
func (a *Agent) StartQueue(ctx context.Context) (any, error) {
	return a.jobQueue(ctx, func(ctx context.Context, s *moonraker.JobQueueService) (any, error) {
		return s.Start(ctx)
	})
}

// JumpToJob moves a job to the front of the queue.
func (a *Agent) JumpToJob(ctx context.Context, jobID string) (any, error) {
	return a.jobQueue(ctx, func(ctx context.Context, s *moonraker.JobQueueService) (any, error) {
		return s.Jump(ctx, jobID)
	})
}
