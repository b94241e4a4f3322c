package dto

// ChannelStats aggregates the four per-channel metrics. TotalViews is zero,
// never null, for a channel without videos.
type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalLikes       int64 `json:"totalLikes"`
	TotalViews       int64 `json:"totalViews"`
}
