package log_messages

const (
	ErrorCustomerNotFound        = "customer not found"
	ErrorExtractingHistory       = "failed to extract financial history"
	ErrorCalculatingScore        = "failed to calculate credit score"
	ErrorScoreCacheRead          = "failed to read score result from cache"
	ErrorScoreCacheWrite         = "failed to write score result to cache"
	ErrorMongoConnection         = "failed to connect to MongoDB"
	ErrorRedisConnection         = "failed to connect to Redis"
	ErrorBatchScoringIncomplete  = "batch scoring finished with failures"
	ErrorInvalidCustomerIDFormat = "customer id is not a valid object id"
)
