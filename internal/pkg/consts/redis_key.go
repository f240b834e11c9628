package consts

const (
	OAuthStateKey     = "tiktok:oauth:state:"
	AnalyticsCacheKey = "tiktok:analytics:cache"
)
