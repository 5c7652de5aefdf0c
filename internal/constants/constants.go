package constants

// Routes used by the backend router.
const (
	RouteAPIPrefix     = "/api"
	RouteVersion       = "/version"
	RouteSkills        = "/skills"
	RouteBattles       = "/battles"
	RouteBattleByCode  = "/battles/:battleCode"
	RouteBattleAction  = "/battles/:battleCode/action"
	RouteBattleEvents  = "/battles/:battleCode/events"
	RouteHealthAddress = "http://127.0.0.1:8080/api/version"
)

// Common JSON response keys.
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
)

// Common error messages used across API handlers.
const (
	ErrInvalidRequest        = "Invalid request"
	ErrInvalidBattleCode     = "Invalid battle code"
	ErrBattleNotFound        = "Battle not found"
	ErrBattleNotInProgress   = "Battle is not in progress"
	ErrActionsLocked         = "Actions are locked; resolving current turn"
	ErrFailedCreateBattle    = "Failed to create battle"
	ErrFailedStoreAction     = "Failed to store action"
	ErrUnknownTemplate       = "Unknown monster template"
	ErrPartyRequired         = "Both parties need at least one monster"
	ErrUnknownAction         = "Unknown action type"
	ErrFailedUpgradeSocket   = "Failed to upgrade connection"
	ErrFailedFetchBattle     = "Failed to fetch battle"
)

// Logging field names.
const (
	LogFieldBattleID = "battle_id"
	LogFieldJoinCode = "join_code"
	LogFieldAddr     = "addr"
	LogFieldTurn     = "turn"
	LogFieldPhase    = "phase"
)
