package util

import (
	"fmt"

	"holdempro/internal/rng"
)

var adjectives = []string{
	"Lucky", "Crafty", "Stoic", "Bluffing", "Patient", "Reckless", "Grinning", "Cold", "Steady", "Slick",
	"Quiet", "Loose", "Tight", "Wired", "Daring", "Shifty", "Fearless", "Humble", "Grand", "Prime",
}

var animals = []string{
	"Shark", "Fox", "Otter", "Wolf", "Owl", "Mule", "Raven", "Badger", "Viper", "Lynx",
	"Heron", "Coyote", "Panda", "Moose", "Ferret", "Falcon", "Tiger", "Walrus", "Crane", "Donkey",
}

// GetRandomName returns a random seat name by combining an adjective with an animal
func GetRandomName(gen rng.Generator) string {
	adjectivesIndex := gen.Intn(len(adjectives))
	animalsIndex := gen.Intn(len(animals))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], animals[animalsIndex])
}
