package models

// GameEvent is published to Kafka whenever a user's game history changes,
// e.g. a game completes or statistics are cleared.
type GameEvent struct {
	EventID      string `json:"event_id" bson:"event_id"`           // EventID is a unique identifier for the event.
	Timestamp    int64  `json:"timestamp" bson:"timestamp"`         // Timestamp is the Unix timestamp (in seconds) when the event occurred.
	UserID       string `json:"user_id" bson:"user_id"`             // UserID is the identifier of the user the event belongs to.
	Operation    string `json:"operation" bson:"operation"`         // Operation is the kind of event, e.g. "game_completed" or "stats_cleared".
	FinalStreak  int    `json:"final_streak" bson:"final_streak"`   // FinalStreak is the streak of the completed game, when applicable.
	ClearedGames int    `json:"cleared_games" bson:"cleared_games"` // ClearedGames is the number of history rows removed, when applicable.
}
