package dto

import "time"

// Caller is the authenticated user behind a request.
type Caller struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Admin bool   `json:"admin"`
}

// LineupRequest is the body of a lineup submission.
// OwnerID and Override are admin only.
type LineupRequest struct {
	Captain     int64   `json:"captain"`
	Cores       []int64 `json:"cores"`
	Supports    []int64 `json:"supports"`
	TeamCard    int64   `json:"teamCard"`
	DisplayName string  `json:"displayName,omitempty"`
	OwnerID     string  `json:"ownerId,omitempty"`
	Override    bool    `json:"override,omitempty"`
}

// SubmitResult is returned after a lineup write.
type SubmitResult struct {
	OK     bool `json:"ok"`
	Locked bool `json:"locked"`
}

// Lineup is the public view of a stored lineup.
type Lineup struct {
	TournamentID string    `json:"tournamentId"`
	DateKey      string    `json:"dateKey"`
	OwnerID      string    `json:"ownerId"`
	DisplayName  string    `json:"displayName"`
	Captain      int64     `json:"captain"`
	Cores        []int64   `json:"cores"`
	Supports     []int64   `json:"supports"`
	TeamCard     int64     `json:"teamCard"`
	Locked       bool      `json:"locked"`
	Overridden   bool      `json:"overridden"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// LockStatus tells whether submissions for a day are still open.
type LockStatus struct {
	DateKey string    `json:"dateKey"`
	LockAt  time.Time `json:"lockAt"`
	Locked  bool      `json:"locked"`
}
