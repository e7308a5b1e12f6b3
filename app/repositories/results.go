package repositories

import "go.mongodb.org/mongo-driver/mongo"

// UpdateCounts is the wire-friendly shape of a store update result.
type UpdateCounts struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

func countsFrom(res *mongo.UpdateResult) UpdateCounts {
	if res == nil {
		return UpdateCounts{}
	}
	return UpdateCounts{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
}
