package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	// EmptyBucketTooltip 空桶提示文案
	EmptyBucketTooltip = "No completions"
	// UserEmailHeader 调用方身份头
	UserEmailHeader = "X-User-Email"
	// RequestIDHeader 请求追踪 ID
	RequestIDHeader = "X-Request-ID"
)
