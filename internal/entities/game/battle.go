package game

// Battle request status values. A rejected request is deleted rather than
// stored, so "rejected" never appears in the store.
const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
)

// BattleRequest is the consent handshake between two players. It carries a
// full snapshot of the challenger's character taken at send time, so the
// eventual battle does not depend on the challenger's live data.
type BattleRequest struct {
	FromID        string    `json:"from_id"`
	FromName      string    `json:"from_name"`
	FromAvatar    string    `json:"from_avatar,omitempty"`
	FromPower     int       `json:"from_power"`
	FromCharacter Character `json:"from_character"`
	Status        string    `json:"status"`
	Timestamp     int64     `json:"timestamp"`
}

// DestructionRecord is the permanent public snapshot of a defeated character,
// keyed by the loser's player ID and immutable once written.
type DestructionRecord struct {
	Name         string  `json:"name"`
	DefeatedBy   string  `json:"defeated_by"`
	PowersStolen []Power `json:"powers_stolen"`
	Stats        Stats   `json:"stats"`
	Avatar       string  `json:"avatar,omitempty"`
	Date         string  `json:"date"`
	Timestamp    int64   `json:"timestamp"`
}

// Comment is a message left on another player's character page
type Comment struct {
	ID        string `json:"id"`
	AuthorID  string `json:"author_id"`
	Author    string `json:"author"`
	Body      string `json:"body"`
	Timestamp int64  `json:"timestamp"`
}
