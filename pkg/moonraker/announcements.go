package moonraker

import "context"

// AnnouncementService wraps the /server/announcements endpoints.
type AnnouncementService struct {
	client Requester
}

// NewAnnouncementService returns an AnnouncementService issuing requests through r.
func NewAnnouncementService(r Requester) *AnnouncementService {
	return &AnnouncementService{client: r}
}

// List returns announcement entries. Dismissed entries are included when
// includeDismissed is set.
func (s *AnnouncementService) List(ctx context.Context, includeDismissed bool) (any, error) {
	return s.client.Get(ctx, "/server/announcements/list", Params{"include_dismissed": includeDismissed})
}

// Update asks Moonraker to check its feeds for new announcements.
func (s *AnnouncementService) Update(ctx context.Context) (any, error) {
	return s.client.Post(ctx, "/server/announcements/update", nil)
}

// Dismiss dismisses an announcement. A nil wakeTime dismisses it permanently,
// otherwise it reappears after wakeTime seconds.
func (s *AnnouncementService) Dismiss(ctx context.Context, entryID string, wakeTime *float64) (any, error) {
	body := Body{"entry_id": entryID}
	if wakeTime != nil {
		body["wake_time"] = *wakeTime
	}
	return s.client.Post(ctx, "/server/announcements/dismiss", body)
}

// Feeds lists the subscribed announcement feeds.
func (s *AnnouncementService) Feeds(ctx context.Context) (any, error) {
	return s.client.Get(ctx, "/server/announcements/feeds", nil)
}

// SubscribeFeed subscribes to a feed.
func (s *AnnouncementService) SubscribeFeed(ctx context.Context, name string) (any, error) {
	return s.client.Post(ctx, "/server/announcements/feed", Body{"name": name})
}

// RemoveFeed unsubscribes from a feed.
func (s *AnnouncementService) RemoveFeed(ctx context.Context, name string) (any, error) {
	return s.client.Delete(ctx, "/server/announcements/feed", Params{"name": name})
}
