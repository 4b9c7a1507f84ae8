package entities

// Player is the outcome of one classification run.
type Player struct {
	RunId string
	Name  string
	Stats []Stat
	Score Stat
	Tier  string
}
