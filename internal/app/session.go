package app

import (
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/abimael92/lol-survival-party/internal/domain"
	"github.com/abimael92/lol-survival-party/internal/narrative"
)

// ClientConnection represents a connected client
type ClientConnection interface {
	Send(message interface{}) error
	PlayerID() string
	Close() error
}

// Session wraps one game with concurrency control, timers and client
// management. Every inbound command and timer firing runs to completion under
// mu, so handlers for the same room never interleave.
type Session struct {
	game   *domain.Game
	mu     sync.Mutex
	gen    narrative.Generator
	rnd    *rand.Rand
	logger *slog.Logger

	clients   map[string]ClientConnection // playerID -> client
	clientsMu sync.RWMutex

	// The session owns at most one pending timer. timer is the live handle;
	// timerGen invalidates callbacks from superseded timers: a fired callback
	// only acts if its captured generation is still current.
	timer    *time.Timer
	timerGen uint64

	// removeFn detaches this session from the registry
	removeFn func()
	closed   bool

	events chan *domain.Event
	done   chan struct{}
}

// NewSession creates a session around a game and starts its broadcaster
func NewSession(game *domain.Game, gen narrative.Generator, rnd *rand.Rand, logger *slog.Logger, removeFn func()) *Session {
	s := &Session{
		game:     game,
		gen:      gen,
		rnd:      rnd,
		logger:   logger.With("roomCode", game.Code),
		clients:  make(map[string]ClientConnection),
		removeFn: removeFn,
		events:   make(chan *domain.Event, 100),
		done:     make(chan struct{}),
	}

	go s.eventLoop()

	return s
}

// RoomCode returns the room code
func (s *Session) RoomCode() string {
	return s.game.Code
}

// CreatedAt returns when the game was created
func (s *Session) CreatedAt() time.Time {
	return s.game.CreatedAt
}

// Phase returns the current game phase
func (s *Session) Phase() domain.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Phase
}

// PlayerCount returns the number of participants in the roster
func (s *Session) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.game.Players)
}

// HasParticipant reports whether the given id is in the roster
func (s *Session) HasParticipant(playerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.game.Player(playerID)
	return ok
}

// CanJoin checks if a new participant can join
func (s *Session) CanJoin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Phase == domain.PhaseWaiting
}

// Snapshot returns the current roster, phase and host id
func (s *Session) Snapshot() *domain.RoomStatePayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// RegisterClient registers a client connection for a participant
func (s *Session) RegisterClient(playerID string, client ClientConnection) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	s.clients[playerID] = client
}

// UnregisterClient removes a client connection
func (s *Session) UnregisterClient(playerID string) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	delete(s.clients, playerID)
}

// Join adds a participant to the roster and announces them
func (s *Session) Join(playerID, name string) (*domain.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.game.AddPlayer(playerID, name)
	if err != nil {
		return nil, err
	}

	s.emit(domain.NewEvent(domain.EventPlayerJoined, s.game.Code, &domain.PlayerJoinedPayload{Player: player}))
	s.emit(domain.NewEvent(domain.EventRoomState, s.game.Code, s.game.Snapshot()))

	s.logger.Info("player joined", "playerID", playerID, "name", name)

	return player, nil
}

// Start begins the first round. Only the host may start; a start command from
// anyone else, or in the wrong phase, is discarded as stale noise.
func (s *Session) Start(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game.Phase != domain.PhaseWaiting {
		return nil
	}
	if !s.game.IsHost(playerID) {
		s.logger.Debug("start ignored, not host", "playerID", playerID)
		return nil
	}
	if !s.game.CanStart() {
		return domain.ErrNotEnoughPlayers
	}

	s.logger.Info("game started", "players", len(s.game.Players))
	s.enterStory()

	return nil
}

// SubmitAction records a participant's action for the round. Wrong-phase and
// dead-sender submissions are silently discarded.
func (s *Session) SubmitAction(playerID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.game.RecordSubmission(playerID, text)
	switch err {
	case nil:
	case domain.ErrWrongPhase, domain.ErrNotAlive:
		return nil
	default:
		return err
	}

	s.emit(domain.NewEvent(domain.EventSubmissionCount, s.game.Code, &domain.SubmissionCountPayload{
		Submitted: len(s.game.Submissions),
		Alive:     s.game.AliveCount(),
	}))

	// All actions are in, no need to wait for the submit timer
	if s.game.AllAliveSubmitted() {
		s.cancelTimer()
		s.enterResolution()
	}

	return nil
}

// SubmitVote records a ballot. Revoting overwrites. Wrong-phase and
// dead-sender ballots are silently discarded.
func (s *Session) SubmitVote(voterID, targetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.game.RecordVote(voterID, targetID)
	switch err {
	case nil:
	case domain.ErrWrongPhase, domain.ErrNotAlive:
		return nil
	default:
		return err
	}

	s.emit(domain.NewPlayerEvent(domain.EventVoteConfirmed, s.game.Code, voterID, &domain.VoteConfirmedPayload{TargetID: targetID}))
	s.emit(domain.NewEvent(domain.EventVoteTally, s.game.Code, &domain.VoteTallyPayload{Tally: domain.TallyVotes(s.game.Votes)}))

	// Every alive participant voted, no need to wait for the vote timer
	if s.game.AllAliveVoted() {
		s.cancelTimer()
		s.enterResult()
	}

	return nil
}

// Disconnect removes a participant from the roster, reassigns the host if
// needed, and force-ends the game when too few players remain. Returns true
// when the session removed itself from the registry.
func (s *Session) Disconnect(playerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, hostChanged, err := s.game.RemovePlayer(playerID)
	if err != nil {
		return false
	}

	s.logger.Info("player disconnected", "playerID", playerID, "name", removed.Name)

	if hostChanged {
		host, _ := s.game.Player(s.game.HostID)
		s.emit(domain.NewEvent(domain.EventHostChanged, s.game.Code, &domain.HostChangedPayload{
			HostID:   host.ID,
			HostName: host.Name,
		}))
	}

	s.emit(domain.NewEvent(domain.EventPlayerDisconnected, s.game.Code, &domain.PlayerDisconnectedPayload{
		Name:    removed.Name,
		Message: s.gen.DisconnectFlavor(removed.Name),
	}))
	s.emit(domain.NewEvent(domain.EventRoomState, s.game.Code, s.game.Snapshot()))

	// A running game cannot continue below two alive participants
	if s.game.AliveCount() < 2 && s.game.Phase != domain.PhaseWaiting && !s.game.Phase.Terminal() {
		s.cancelTimer()
		s.emit(domain.NewEvent(domain.EventGameForceEnded, s.game.Code, &domain.GameForceEndedPayload{
			Reason: "not enough players left to continue",
		}))
		s.game.Phase = domain.PhaseEnded
		s.logger.Info("game force-ended")
		s.scheduleCleanup()
	}

	if len(s.game.Players) == 0 {
		s.cancelTimer()
		s.closed = true
		go s.removeFn()
		return true
	}

	return false
}

// enterStory begins a round: fresh story or escalated crisis, item
// assignment, cleared submissions and ballots, personalized unicasts, and the
// read timer. Caller holds mu.
func (s *Session) enterStory() {
	g := s.game
	g.Phase = domain.PhaseStory
	g.Round++

	if g.Round == 1 {
		story := s.gen.DrawStory(g.PlayerNames())
		g.Story = &story
		g.Intro = story.Intro
	} else {
		g.Story.Crisis = s.gen.NextCrisis(g.Round)
	}

	g.AssignItems(s.rnd)
	g.ResetForRound()

	for _, p := range g.AlivePlayers() {
		payload := &domain.NewStoryPayload{
			Scenario:    g.Story.Scenario,
			Crisis:      g.Story.Crisis,
			PlayerItem:  p.CurrentItem,
			RoundNumber: g.Round,
		}
		if g.Round == 1 {
			payload.Introduction = g.Intro
		}
		s.emit(domain.NewPlayerEvent(domain.EventNewStory, g.Code, p.ID, payload))
	}

	s.logger.Info("round started", "round", g.Round)
	s.schedule(g.Settings.ReadTimer, s.timedEnterSubmit)
}

func (s *Session) timedEnterSubmit() {
	if s.game.Phase != domain.PhaseStory {
		return
	}
	s.enterSubmit()
}

// enterSubmit opens the action window. Caller holds mu.
func (s *Session) enterSubmit() {
	s.game.Phase = domain.PhaseSubmit
	s.emit(domain.NewEvent(domain.EventPhaseChanged, s.game.Code, &domain.PhaseChangedPayload{Phase: domain.PhaseSubmit}))
	s.schedule(s.game.Settings.SubmitTimer, s.timedEnterResolution)
}

func (s *Session) timedEnterResolution() {
	if s.game.Phase != domain.PhaseSubmit {
		return
	}
	s.enterResolution()
}

// enterResolution broadcasts the combined resolution text. Caller holds mu.
func (s *Session) enterResolution() {
	g := s.game
	g.Phase = domain.PhaseResolution

	subs := g.SubmissionList()
	resolution := s.gen.Resolution(subs, g.Story.Crisis)

	s.emit(domain.NewEvent(domain.EventResolutionReady, g.Code, &domain.ResolutionPayload{
		Resolution:  resolution,
		Submissions: subs,
	}))

	s.schedule(g.Settings.ResolutionTimer, s.timedEnterVote)
}

func (s *Session) timedEnterVote() {
	if s.game.Phase != domain.PhaseResolution {
		return
	}
	s.enterVote()
}

// enterVote opens the ballot window. Caller holds mu.
func (s *Session) enterVote() {
	g := s.game
	g.Phase = domain.PhaseVote
	g.Votes = make(map[string]string)
	for _, p := range g.AlivePlayers() {
		p.ResetForVoting()
	}

	s.emit(domain.NewEvent(domain.EventPhaseChanged, g.Code, &domain.PhaseChangedPayload{Phase: domain.PhaseVote}))
	s.emit(domain.NewEvent(domain.EventVoteOptions, g.Code, &domain.VoteOptionsPayload{Submissions: g.SubmissionList()}))

	s.schedule(g.Settings.VoteTimer, s.timedEnterResult)
}

func (s *Session) timedEnterResult() {
	if s.game.Phase != domain.PhaseVote {
		return
	}
	s.enterResult()
}

// enterResult tallies the ballots and eliminates the most-voted participant.
// A round with zero ballots eliminates nobody. Caller holds mu.
func (s *Session) enterResult() {
	g := s.game
	g.Phase = domain.PhaseResult

	tally := domain.TallyVotes(g.Votes)
	targetID, ok := domain.MostVoted(tally, s.rnd)

	eliminatedName := ""
	if ok {
		if target, found := g.Player(targetID); found {
			target.Alive = false
			eliminatedName = target.Name

			sub := g.Submissions[target.ID]
			s.emit(domain.NewEvent(domain.EventPlayerEliminated, g.Code, &domain.PlayerEliminatedPayload{
				Player:       target,
				Message:      s.gen.DeathMessage(target.Name, sub.Text, sub.Item),
				Continuation: s.gen.Continuation(g.AliveNames(), target.Name),
			}))

			s.logger.Info("player eliminated", "playerID", target.ID, "name", target.Name)
		}
	} else {
		s.emit(domain.NewEvent(domain.EventNoElimination, g.Code, &domain.NoEliminationPayload{
			Message: s.gen.NoElimination(g.AliveNames()),
		}))
		s.logger.Info("no elimination, zero ballots")
	}

	g.ArchiveRound(eliminatedName)

	s.schedule(g.Settings.ResultTimer, s.timedFinishRound)
}

// timedFinishRound routes the result timer by alive count: next round, a
// winner, or a draw. A round in which nobody submitted and nobody voted means
// the room is sitting idle; it ends instead of looping forever.
func (s *Session) timedFinishRound() {
	g := s.game
	if g.Phase != domain.PhaseResult {
		return
	}

	if len(g.Submissions) == 0 && len(g.Votes) == 0 {
		s.emit(domain.NewEvent(domain.EventGameForceEnded, g.Code, &domain.GameForceEndedPayload{
			Reason: "nobody is playing",
		}))
		g.Phase = domain.PhaseEnded
		s.logger.Info("game force-ended, idle round")
		s.scheduleCleanup()
		return
	}

	switch alive := g.AliveCount(); {
	case alive > 1:
		s.enterStory()
	case alive == 1:
		winner := g.AlivePlayers()[0]
		g.Phase = domain.PhaseWinner
		s.emit(domain.NewEvent(domain.EventGameWon, g.Code, &domain.GameWonPayload{
			Winner: winner,
			Story:  s.gen.Victory(winner.Name),
			Recap:  s.gen.Recap(g.Intro, g.History, winner.Name),
		}))
		s.logger.Info("game won", "winner", winner.Name)
		s.scheduleCleanup()
	default:
		g.Phase = domain.PhaseDraw
		s.emit(domain.NewEvent(domain.EventGameDrawn, g.Code, &domain.GameDrawnPayload{
			Story: s.gen.Defeat(),
			Recap: s.gen.Recap(g.Intro, g.History, ""),
		}))
		s.logger.Info("game drawn")
		s.scheduleCleanup()
	}
}

// schedule arms the session's single timer. The previous handle is stopped
// and its generation invalidated first, so a callback racing the stop will
// see a stale generation and abort. fn runs under mu. Caller holds mu.
func (s *Session) schedule(d time.Duration, fn func()) {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timerGen++
	gen := s.timerGen

	s.timer = time.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed || gen != s.timerGen {
			return
		}
		fn()
	})
}

// cancelTimer stops the pending timer and invalidates any in-flight callback
func (s *Session) cancelTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.timerGen++
}

// scheduleCleanup removes the session from the registry after the grace
// period that lets clients render the final message. Caller holds mu.
func (s *Session) scheduleCleanup() {
	s.schedule(s.game.Settings.CleanupGrace, func() {
		s.closed = true
		go s.removeFn()
	})
}

// emit queues an event for broadcast. Nothing is queued once the session has
// detached from the registry.
func (s *Session) emit(event *domain.Event) {
	if s.closed {
		return
	}
	select {
	case s.events <- event:
	default:
		s.logger.Warn("event queue full, dropping event", "type", event.Type)
	}
}

// eventLoop drains queued events to connected clients
func (s *Session) eventLoop() {
	for {
		select {
		case <-s.done:
			return
		case event := <-s.events:
			s.dispatch(event)
		}
	}
}

// dispatch sends an event to its recipients, fire and forget
func (s *Session) dispatch(event *domain.Event) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()

	if event.PlayerID != "" {
		if client, ok := s.clients[event.PlayerID]; ok {
			if err := client.Send(event); err != nil {
				s.logger.Debug("unicast failed", "playerID", event.PlayerID, "error", err)
			}
		}
		return
	}

	for playerID, client := range s.clients {
		if err := client.Send(event); err != nil {
			s.logger.Debug("broadcast failed", "playerID", playerID, "error", err)
		}
	}
}

// Close shuts down the session and its client connections
func (s *Session) Close() {
	select {
	case <-s.done:
		return // Already closed
	default:
		close(s.done)
	}

	s.mu.Lock()
	s.cancelTimer()
	s.closed = true
	s.mu.Unlock()

	s.clientsMu.Lock()
	for _, client := range s.clients {
		client.Close()
	}
	s.clients = make(map[string]ClientConnection)
	s.clientsMu.Unlock()
}
