package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix    = "user:%s"
	ProfileKeyPrefix = "profile:handle:%s"
	StatsKeyPrefix   = "stats:%s:%s"
	PreviewPrefix    = "preview:profile:%s"
)

const (
	UserTTL    = 5 * time.Minute
	ProfileTTL = 10 * time.Minute
	StatsTTL   = 2 * time.Minute
)

func UserKey(userID string) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func ProfileKey(handle string) string {
	return fmt.Sprintf(ProfileKeyPrefix, handle)
}

func StatsKey(userID string, period string) string {
	return fmt.Sprintf(StatsKeyPrefix, userID, period)
}

// PreviewChannel names the pub/sub channel carrying live preview updates for
// one handle.
func PreviewChannel(handle string) string {
	return fmt.Sprintf(PreviewPrefix, handle)
}

// PreviewChannelPattern matches every preview channel, for PSUBSCRIBE.
const PreviewChannelPattern = "preview:profile:*"

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID string) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateProfile(ctx context.Context, handle string) {
	Invalidate(ctx, ProfileKey(handle))
}

func InvalidateStats(ctx context.Context, userID string, period string) {
	Invalidate(ctx, StatsKey(userID, period))
}
