package types

const (
	EventScoreSaved       = "leaderboard.score_saved"
	EventHighScore        = "leaderboard.high_score"
	EventPlayerRegistered = "leaderboard.player_registered"
)

const (
	AttrPlayer      = "player"
	AttrScore       = "score"
	AttrHighScore   = "high_score"
	AttrGamesPlayed = "games_played"
	AttrTimestamp   = "timestamp"
	AttrReplayBytes = "replay_bytes"
	AttrDisplayName = "display_name"
)
