package types

// PlayerRecord is the per-wallet score ledger row.
//
// A missing row reads as the zero value; a row is only persisted by an
// accepted mutation and is never deleted afterwards.
type PlayerRecord struct {
	// HighScore is the best accepted score. Monotonically non-decreasing.
	HighScore uint32 `json:"high_score"`
	// GamesPlayed counts accepted score submissions.
	GamesPlayed uint32 `json:"games_played"`
	// LastPlayedAt is the timestamp of the latest accepted submission.
	LastPlayedAt *uint64 `json:"last_played_at,omitempty"`
	// ReplayData is the serialized recording that set the current HighScore.
	// It changes only together with a strictly greater HighScore.
	ReplayData *string `json:"replay_data,omitempty"`
	// DisplayName is optional; clients fall back to the wallet address.
	DisplayName *string `json:"display_name,omitempty"`
}

// HasReplay reports whether record-setting evidence is stored.
func (r PlayerRecord) HasReplay() bool { return r.ReplayData != nil }

// LeaderboardEntry is the flattened read-model view of a PlayerRecord.
type LeaderboardEntry struct {
	Player       string  `json:"player"`
	HighScore    uint32  `json:"high_score"`
	GamesPlayed  uint32  `json:"games_played"`
	LastPlayedAt *uint64 `json:"last_played_at,omitempty"`
	DisplayName  *string `json:"display_name,omitempty"`
	ReplayData   *string `json:"replay_data,omitempty"`
}

// Entry flattens the record for the given wallet address.
func (r PlayerRecord) Entry(player string) LeaderboardEntry {
	return LeaderboardEntry{
		Player:       player,
		HighScore:    r.HighScore,
		GamesPlayed:  r.GamesPlayed,
		LastPlayedAt: r.LastPlayedAt,
		DisplayName:  r.DisplayName,
		ReplayData:   r.ReplayData,
	}
}
