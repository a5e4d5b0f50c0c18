package domain

import (
	"math/rand"
	"strings"
	"time"
)

// Settings holds configurable game parameters
type Settings struct {
	MinPlayers      int           `json:"minPlayers"`
	RoomCodeLength  int           `json:"roomCodeLength"`
	ReadTimer       time.Duration `json:"readTimer"`
	SubmitTimer     time.Duration `json:"submitTimer"`
	ResolutionTimer time.Duration `json:"resolutionTimer"`
	VoteTimer       time.Duration `json:"voteTimer"`
	ResultTimer     time.Duration `json:"resultTimer"`
	CleanupGrace    time.Duration `json:"cleanupGrace"`
}

// DefaultSettings returns the default game settings
func DefaultSettings() Settings {
	return Settings{
		MinPlayers:      2,
		RoomCodeLength:  6,
		ReadTimer:       15 * time.Second,
		SubmitTimer:     45 * time.Second,
		ResolutionTimer: 20 * time.Second,
		VoteTimer:       45 * time.Second,
		ResultTimer:     15 * time.Second,
		CleanupGrace:    30 * time.Second,
	}
}

// Game is the authoritative state of one room. Roster order is join order;
// the first remaining entry inherits the host role when the host leaves.
// Game is not safe for concurrent use; app.Session serializes access.
type Game struct {
	Code        string                `json:"code"`
	HostID      string                `json:"hostId"`
	Players     []*Participant        `json:"players"`
	Phase       Phase                 `json:"phase"`
	Round       int                   `json:"round"`
	Story       *Story                `json:"story,omitempty"`
	Intro       string                `json:"intro,omitempty"`
	Submissions map[string]Submission `json:"submissions"`
	Votes       map[string]string     `json:"votes"`
	History     []RoundRecord         `json:"history"`
	Settings    Settings              `json:"settings"`
	CreatedAt   time.Time             `json:"createdAt"`
}

// NewGame creates a new game room with the given code
func NewGame(code string) *Game {
	return &Game{
		Code:        code,
		Players:     make([]*Participant, 0, 8),
		Phase:       PhaseWaiting,
		Submissions: make(map[string]Submission),
		Votes:       make(map[string]string),
		Settings:    DefaultSettings(),
		CreatedAt:   time.Now(),
	}
}

// AddPlayer appends a participant to the roster. Joining is only allowed
// while the room is waiting. The first player becomes the host.
func (g *Game) AddPlayer(playerID, name string) (*Participant, error) {
	if g.Phase != PhaseWaiting {
		return nil, ErrAlreadyStarted
	}

	player := NewParticipant(playerID, name)
	g.Players = append(g.Players, player)

	if g.HostID == "" {
		g.HostID = playerID
	}

	return player, nil
}

// RemovePlayer deletes a participant from the roster along with their pending
// submission and ballot. It returns the removed participant and whether the
// host role moved to another player.
func (g *Game) RemovePlayer(playerID string) (*Participant, bool, error) {
	idx := -1
	for i, p := range g.Players {
		if p.ID == playerID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, false, ErrPlayerNotFound
	}

	removed := g.Players[idx]
	g.Players = append(g.Players[:idx], g.Players[idx+1:]...)
	delete(g.Submissions, playerID)
	delete(g.Votes, playerID)

	// Ballots cast for the leaver are void
	for voter, target := range g.Votes {
		if target == playerID {
			delete(g.Votes, voter)
		}
	}

	hostChanged := false
	if g.HostID == playerID {
		g.HostID = ""
		if len(g.Players) > 0 {
			g.HostID = g.Players[0].ID
			hostChanged = true
		}
	}

	return removed, hostChanged, nil
}

// Player returns a participant by id
func (g *Game) Player(playerID string) (*Participant, bool) {
	for _, p := range g.Players {
		if p.ID == playerID {
			return p, true
		}
	}
	return nil, false
}

// AlivePlayers returns the alive participants in join order
func (g *Game) AlivePlayers() []*Participant {
	alive := make([]*Participant, 0, len(g.Players))
	for _, p := range g.Players {
		if p.Alive {
			alive = append(alive, p)
		}
	}
	return alive
}

// AliveCount returns the number of alive participants
func (g *Game) AliveCount() int {
	count := 0
	for _, p := range g.Players {
		if p.Alive {
			count++
		}
	}
	return count
}

// PlayerNames returns display names for the whole roster in join order
func (g *Game) PlayerNames() []string {
	names := make([]string, 0, len(g.Players))
	for _, p := range g.Players {
		names = append(names, p.Name)
	}
	return names
}

// AliveNames returns display names of alive participants in join order
func (g *Game) AliveNames() []string {
	names := make([]string, 0, len(g.Players))
	for _, p := range g.Players {
		if p.Alive {
			names = append(names, p.Name)
		}
	}
	return names
}

// IsHost checks if the given player is the host
func (g *Game) IsHost(playerID string) bool {
	return g.HostID == playerID
}

// CanStart checks if the game can be started
func (g *Game) CanStart() bool {
	return g.Phase == PhaseWaiting && len(g.Players) >= g.Settings.MinPlayers
}

// AssignItems deals one item token to every alive participant from a freshly
// shuffled copy of the story's pool. When the pool runs dry the remaining
// participants get a uniformly random token from the original pool.
func (g *Game) AssignItems(rnd *rand.Rand) {
	if g.Story == nil || len(g.Story.Items) == 0 {
		return
	}

	pool := make([]string, len(g.Story.Items))
	copy(pool, g.Story.Items)
	rnd.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	for _, p := range g.Players {
		if !p.Alive {
			continue
		}
		if len(pool) > 0 {
			p.CurrentItem = pool[len(pool)-1]
			pool = pool[:len(pool)-1]
		} else {
			p.CurrentItem = g.Story.Items[rnd.Intn(len(g.Story.Items))]
		}
	}
}

// ResetForRound clears submissions, ballots and per-round participant flags
func (g *Game) ResetForRound() {
	g.Submissions = make(map[string]Submission)
	g.Votes = make(map[string]string)
	for _, p := range g.Players {
		if p.Alive {
			p.ResetForVoting()
		}
	}
}

// RecordSubmission stores a participant's action for the current round,
// capturing their assigned item. Resubmitting overwrites.
func (g *Game) RecordSubmission(playerID, text string) error {
	if g.Phase != PhaseSubmit {
		return ErrWrongPhase
	}

	player, ok := g.Player(playerID)
	if !ok {
		return ErrPlayerNotFound
	}
	if !player.Alive {
		return ErrNotAlive
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyAction
	}

	g.Submissions[playerID] = Submission{
		PlayerID:   playerID,
		PlayerName: player.Name,
		Text:       text,
		Item:       player.CurrentItem,
	}

	return nil
}

// AllAliveSubmitted reports whether every alive participant has an action in
func (g *Game) AllAliveSubmitted() bool {
	for _, p := range g.Players {
		if p.Alive {
			if _, ok := g.Submissions[p.ID]; !ok {
				return false
			}
		}
	}
	return g.AliveCount() > 0
}

// RecordVote stores a ballot for the current voting phase. Revoting
// overwrites the previous ballot.
func (g *Game) RecordVote(voterID, targetID string) error {
	if g.Phase != PhaseVote {
		return ErrWrongPhase
	}

	voter, ok := g.Player(voterID)
	if !ok {
		return ErrPlayerNotFound
	}
	if !voter.Alive {
		return ErrNotAlive
	}

	target, ok := g.Player(targetID)
	if !ok || !target.Alive {
		return ErrInvalidTarget
	}

	g.Votes[voterID] = targetID
	voter.HasVoted = true

	return nil
}

// AllAliveVoted reports whether every alive participant has cast a ballot
func (g *Game) AllAliveVoted() bool {
	for _, p := range g.Players {
		if p.Alive && !p.HasVoted {
			return false
		}
	}
	return g.AliveCount() > 0
}

// SubmissionList returns the current submissions in roster order
func (g *Game) SubmissionList() []Submission {
	subs := make([]Submission, 0, len(g.Submissions))
	for _, p := range g.Players {
		if sub, ok := g.Submissions[p.ID]; ok {
			subs = append(subs, sub)
		}
	}
	return subs
}

// ArchiveRound appends the current round to the history for the recap
func (g *Game) ArchiveRound(eliminatedName string) {
	g.History = append(g.History, RoundRecord{
		Number:      g.Round,
		Crisis:      g.storyCrisis(),
		Submissions: g.SubmissionList(),
		Eliminated:  eliminatedName,
	})
}

func (g *Game) storyCrisis() string {
	if g.Story == nil {
		return ""
	}
	return g.Story.Crisis
}

// Snapshot returns the roster, phase and host id for room-state broadcasts
func (g *Game) Snapshot() *RoomStatePayload {
	players := make([]Participant, 0, len(g.Players))
	for _, p := range g.Players {
		players = append(players, *p)
	}
	return &RoomStatePayload{
		RoomCode: g.Code,
		Players:  players,
		Phase:    g.Phase,
		HostID:   g.HostID,
		Round:    g.Round,
	}
}
