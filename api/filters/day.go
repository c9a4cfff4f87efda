package filters

// URI params for the tournament day endpoints.
type DayURIParams struct {
	TournamentID string `uri:"tid" binding:"required"`
	DateKey      string `uri:"dateKey" binding:"required"`
}

// Query params of the lineup read.
type LineupQueryParams struct {
	OwnerID string `form:"ownerId"`
}
