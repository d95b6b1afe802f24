package moonraker

import (
	"context"
	"fmt"
	"strings"
)

// HistoryService wraps the /server/history endpoints.
type HistoryService struct {
	client Requester
}

// NewHistoryService returns a HistoryService issuing requests through r.
func NewHistoryService(r Requester) *HistoryService {
	return &HistoryService{client: r}
}

// HistoryQuery filters /server/history/list. Nil fields are not sent.
type HistoryQuery struct {
	Limit  *int
	Start  *int
	Since  *float64
	Before *float64
	Order  string
}

// ListJobs lists historical jobs.
func (s *HistoryService) ListJobs(ctx context.Context, query HistoryQuery) (any, error) {
	params := Params{}
	if query.Limit != nil {
		params["limit"] = *query.Limit
	}
	if query.Start != nil {
		params["start"] = *query.Start
	}
	if query.Since != nil {
		params["since"] = *query.Since
	}
	if query.Before != nil {
		params["before"] = *query.Before
	}
	if order := strings.TrimSpace(query.Order); order != "" {
		params["order"] = order
	}
	return s.client.Get(ctx, "/server/history/list", params)
}

// Totals returns the accumulated job totals.
func (s *HistoryService) Totals(ctx context.Context) (any, error) {
	return s.client.Get(ctx, "/server/history/totals", nil)
}

// ResetTotals clears the job totals and returns the values before the reset.
func (s *HistoryService) ResetTotals(ctx context.Context) (any, error) {
	return s.client.Post(ctx, "/server/history/reset_totals", nil)
}

// Job returns a single job by uid.
func (s *HistoryService) Job(ctx context.Context, uid string) (any, error) {
	return s.client.Get(ctx, "/server/history/job", Params{"uid": uid})
}

// DeleteJob deletes one job, or the whole history when all is set.
func (s *HistoryService) DeleteJob(ctx context.Context, uid string, all bool) (any, error) {
	var params Params
	switch {
	case all:
		params = Params{"all": true}
	case uid != "":
		params = Params{"uid": uid}
	default:
		return nil, fmt.Errorf("%w: either uid or all jobs must be specified", ErrInvalidArgument)
	}
	return s.client.Delete(ctx, "/server/history/job", params)
}
