package objectivevalues

// Objective event types as emitted by the provider.
const (
	RoshanKill = "CHAT_MESSAGE_ROSHAN_KILL"
	FirstBlood = "CHAT_MESSAGE_FIRSTBLOOD"
)

// Team values used on objectives that carry a team instead of a player slot.
const (
	TeamRadiant = 2
	TeamDire    = 3
)

// Number of structures encoded in the status bitmasks.
const (
	TowerCount    = 11
	BarracksCount = 6
)
