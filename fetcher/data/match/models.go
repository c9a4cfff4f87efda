package matchfetcher

// LeagueMatch is one entry of the league match list.
type LeagueMatch struct {
	MatchID       int64 `json:"match_id"`
	StartTime     int64 `json:"start_time"`
	Duration      int   `json:"duration"`
	RadiantWin    bool  `json:"radiant_win"`
	SeriesID      int64 `json:"series_id"`
	SeriesType    int   `json:"series_type"`
	RadiantTeamID int64 `json:"radiant_team_id"`
	DireTeamID    int64 `json:"dire_team_id"`
}

// TeamInfo is the team block embedded on the match detail.
type TeamInfo struct {
	TeamID int64  `json:"team_id"`
	Name   string `json:"name"`
	Tag    string `json:"tag"`
}

// ObjectiveEvent is a timestamped event of the match.
// Depending on the type the side comes from player_slot or from team.
type ObjectiveEvent struct {
	Time       int    `json:"time"`
	Type       string `json:"type"`
	PlayerSlot *int   `json:"player_slot"`
	Team       *int   `json:"team"`
}

// PlayerStats contains the stats of a given player in a Match.
// Anonymous players come without an account id.
type PlayerStats struct {
	AccountID    *int64 `json:"account_id"`
	PlayerSlot   int    `json:"player_slot"`
	Name         string `json:"name"`
	Personaname  string `json:"personaname"`
	Kills        int    `json:"kills"`
	Deaths       int    `json:"deaths"`
	Assists      int    `json:"assists"`
	LastHits     int    `json:"last_hits"`
	Denies       int    `json:"denies"`
	ObsPlaced    int    `json:"obs_placed"`
	SenPlaced    int    `json:"sen_placed"`
	CampsStacked int    `json:"camps_stacked"`
	RoshanKills  int    `json:"roshan_kills"`
}

// MatchDetail is the return type of the match endpoint.
type MatchDetail struct {
	MatchID               int64            `json:"match_id"`
	LeagueID              int64            `json:"leagueid"`
	StartTime             int64            `json:"start_time"`
	Duration              int              `json:"duration"`
	RadiantWin            bool             `json:"radiant_win"`
	SeriesID              int64            `json:"series_id"`
	SeriesType            int              `json:"series_type"`
	RadiantTeamID         int64            `json:"radiant_team_id"`
	DireTeamID            int64            `json:"dire_team_id"`
	RadiantTeam           *TeamInfo        `json:"radiant_team"`
	DireTeam              *TeamInfo        `json:"dire_team"`
	TowerStatusRadiant    int              `json:"tower_status_radiant"`
	TowerStatusDire       int              `json:"tower_status_dire"`
	BarracksStatusRadiant int              `json:"barracks_status_radiant"`
	BarracksStatusDire    int              `json:"barracks_status_dire"`
	Objectives            []ObjectiveEvent `json:"objectives"`
	Players               []PlayerStats    `json:"players"`
}
