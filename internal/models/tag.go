package models

// Tag identifies what kind of object takes part in an arrival
type Tag string

const (
	TagPlayer       Tag = "Player"
	TagBread        Tag = "Bread"
	TagChicken      Tag = "Chicken"
	TagCheese       Tag = "Cheese"
	TagKeyCard      Tag = "KeyCard"
	TagPoisonCheese Tag = "PoisonCheese"
	TagGolfBall     Tag = "GolfBall"
	TagGolfPole     Tag = "GolfPole"
	TagLava         Tag = "Lava"
	TagDoor         Tag = "Door"
	TagGoal         Tag = "Goal"
	TagSpeedBoost   Tag = "SpeedBoost"
)

var knownTags = map[string]Tag{
	string(TagPlayer):       TagPlayer,
	string(TagBread):        TagBread,
	string(TagChicken):      TagChicken,
	string(TagCheese):       TagCheese,
	string(TagKeyCard):      TagKeyCard,
	string(TagPoisonCheese): TagPoisonCheese,
	string(TagGolfBall):     TagGolfBall,
	string(TagGolfPole):     TagGolfPole,
	string(TagLava):         TagLava,
	string(TagDoor):         TagDoor,
	string(TagGoal):         TagGoal,
	string(TagSpeedBoost):   TagSpeedBoost,
}

// ParseTag converts an engine tag string into a Tag. Matching is exact and
// case sensitive.
func ParseTag(s string) (Tag, bool) {
	t, ok := knownTags[s]
	return t, ok
}

// Category returns the collectible category for a pickup tag
func (t Tag) Category() (Category, bool) {
	switch t {
	case TagBread:
		return CategoryBread, true
	case TagChicken:
		return CategoryChicken, true
	case TagCheese:
		return CategoryCheese, true
	case TagKeyCard:
		return CategoryKeyCard, true
	case TagPoisonCheese:
		return CategoryPoisonCheese, true
	case TagGolfBall:
		return CategoryGolfBall, true
	}
	return "", false
}
