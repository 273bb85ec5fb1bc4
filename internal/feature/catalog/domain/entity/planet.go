package entity

// Planet is a world that users can mark as a favorite.
// Nothing links back from a planet to its favorites; favorites reference planets by ID only.
type Planet struct {
	ID   uint
	Name string
}
