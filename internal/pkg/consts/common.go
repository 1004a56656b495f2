package consts

// FilterAll 通配过滤值，由调用方翻译为"不过滤"，永远不会作为字面量落入查询条件
const FilterAll = "all"

// PlatformFilters 平台过滤白名单
var PlatformFilters = []string{
	FilterAll,
	"instagram",
	"facebook",
	"twitter",
	"linkedin",
	"tiktok",
	"youtube",
}

// MediaTypeFilters 媒体类型过滤白名单
var MediaTypeFilters = []string{
	FilterAll,
	"image",
	"video",
	"carousel",
	"reel",
	"story",
}

// PostSortFields 帖子列表允许的排序字段，白名单内的值即数据库列名，可直接拼入 ORDER BY
var PostSortFields = []string{
	"posted_at",
	"impressions",
	"likes",
	"comments",
	"shares",
	"reach",
	"engagement_rate",
	"platform",
	"media_type",
}

const (
	DefaultSortField = "posted_at"
	DefaultSortOrder = "desc"
)

const SessionCookieName = "session_token"

const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)
