package domain

import "errors"

// Domain errors
var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrAlreadyStarted   = errors.New("cannot join, game already started")
	ErrNotEnoughPlayers = errors.New("need at least 2 players to start")
	ErrNotHost          = errors.New("only host can start the game")
	ErrWrongPhase       = errors.New("invalid action for current phase")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrInvalidTarget    = errors.New("vote target is not an alive player")
	ErrNotAlive         = errors.New("eliminated players cannot act")
	ErrEmptyAction      = errors.New("action text cannot be empty")
)
