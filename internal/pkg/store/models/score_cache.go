package models

// ScoreCacheKeyBuilder builds the Redis key under which a customer's computed
// ScoreResult JSON is cached. The financial history bundle itself is never
// cached, only the result.
func ScoreCacheKeyBuilder(customerID string) string {
	return "creditscore:" + customerID
}
