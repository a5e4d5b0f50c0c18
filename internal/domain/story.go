package domain

// Story is one round's narrative payload: the fixed scenario, the current
// crisis (replaced every round after the first), and the pool of item tokens
// participants draw from.
type Story struct {
	Intro    string   `json:"intro"`
	Scenario string   `json:"scenario"`
	Crisis   string   `json:"crisis"`
	Items    []string `json:"items"`
}

// Submission is one participant's action for the current round. The item is
// captured at submission time so later rounds cannot rewrite history.
type Submission struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Text       string `json:"text"`
	Item       string `json:"item"`
}

// RoundRecord archives a finished round for the end-of-game recap.
type RoundRecord struct {
	Number      int          `json:"number"`
	Crisis      string       `json:"crisis"`
	Submissions []Submission `json:"submissions"`
	Eliminated  string       `json:"eliminated,omitempty"` // display name, empty if nobody was voted out
}
