package dto

import (
	"go-splendor/engine"
	"go-splendor/repository"
)

// PlayRequest carries one command, from a form field, JSON body or query string.
type PlayRequest struct {
	Command string `form:"command" json:"command"`
}

// CreateGameRequest is optional; a missing body means default settings.
type CreateGameRequest struct {
	MinPlayers int `json:"minPlayers" binding:"omitempty,oneof=1 2"`
	Nobles     int `json:"nobles" binding:"omitempty,oneof=3 5"`
}

type CreateGameResponse struct {
	GameID string `json:"gameID"`
	Seat   string `json:"seat"`
}

type GameList struct {
	Games []engine.Summary `json:"games"`
}

type JournalResponse struct {
	GameID  string             `json:"gameID"`
	Entries []repository.Entry `json:"entries"`
}
