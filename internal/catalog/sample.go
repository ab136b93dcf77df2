package catalog

import "github.com/bestiary/creaturedex/model"

// SampleCreatures returns a small cross-generation slice of the encyclopedia
// used to seed the demo server and shared test fixtures.
func SampleCreatures() []model.Creature {
	return []model.Creature{
		{ID: 1, Name: "bulbasaur", Types: []string{"grass", "poison"}, Generation: 1},
		{ID: 4, Name: "charmander", Types: []string{"fire"}, Generation: 1},
		{ID: 6, Name: "charizard", Types: []string{"fire", "flying"}, Generation: 1},
		{ID: 7, Name: "squirtle", Types: []string{"water"}, Generation: 1},
		{ID: 25, Name: "pikachu", Types: []string{"electric"}, Generation: 1},
		{ID: 26, Name: "raichu", Types: []string{"electric"}, Generation: 1},
		{ID: 94, Name: "gengar", Types: []string{"ghost", "poison"}, Generation: 1},
		{ID: 130, Name: "gyarados", Types: []string{"water", "flying"}, Generation: 1},
		{ID: 133, Name: "eevee", Types: []string{"normal"}, Generation: 1},
		{ID: 134, Name: "vaporeon", Types: []string{"water"}, Generation: 1},
		{ID: 143, Name: "snorlax", Types: []string{"normal"}, Generation: 1},
		{ID: 144, Name: "articuno", Types: []string{"ice", "flying"}, Generation: 1, Legendary: true},
		{ID: 145, Name: "zapdos", Types: []string{"electric", "flying"}, Generation: 1, Legendary: true},
		{ID: 146, Name: "moltres", Types: []string{"fire", "flying"}, Generation: 1, Legendary: true},
		{ID: 150, Name: "mewtwo", Types: []string{"psychic"}, Generation: 1, Legendary: true},
		{ID: 151, Name: "mew", Types: []string{"psychic"}, Generation: 1, Legendary: true},
		{ID: 152, Name: "chikorita", Types: []string{"grass"}, Generation: 2},
		{ID: 155, Name: "cyndaquil", Types: []string{"fire"}, Generation: 2},
		{ID: 158, Name: "totodile", Types: []string{"water"}, Generation: 2},
		{ID: 196, Name: "espeon", Types: []string{"psychic"}, Generation: 2},
		{ID: 197, Name: "umbreon", Types: []string{"dark"}, Generation: 2},
		{ID: 212, Name: "scizor", Types: []string{"bug", "steel"}, Generation: 2},
		{ID: 243, Name: "raikou", Types: []string{"electric"}, Generation: 2, Legendary: true},
		{ID: 249, Name: "lugia", Types: []string{"psychic", "flying"}, Generation: 2, Legendary: true},
		{ID: 250, Name: "ho-oh", Types: []string{"fire", "flying"}, Generation: 2, Legendary: true},
		{ID: 252, Name: "treecko", Types: []string{"grass"}, Generation: 3},
		{ID: 255, Name: "torchic", Types: []string{"fire"}, Generation: 3},
		{ID: 258, Name: "mudkip", Types: []string{"water"}, Generation: 3},
		{ID: 282, Name: "gardevoir", Types: []string{"psychic", "fairy"}, Generation: 3},
		{ID: 384, Name: "rayquaza", Types: []string{"dragon", "flying"}, Generation: 3, Legendary: true},
		{ID: 445, Name: "garchomp", Types: []string{"dragon", "ground"}, Generation: 4},
		{ID: 448, Name: "lucario", Types: []string{"fighting", "steel"}, Generation: 4},
		{ID: 483, Name: "dialga", Types: []string{"steel", "dragon"}, Generation: 4, Legendary: true},
		{ID: 487, Name: "giratina", Types: []string{"ghost", "dragon"}, Generation: 4, Legendary: true},
		{ID: 493, Name: "arceus", Types: []string{"normal"}, Generation: 4, Legendary: true},
		{ID: 658, Name: "greninja", Types: []string{"water", "dark"}, Generation: 6},
		{ID: 722, Name: "rowlet", Types: []string{"grass", "flying"}, Generation: 7},
		{ID: 810, Name: "grookey", Types: []string{"grass"}, Generation: 8},
		{ID: 906, Name: "sprigatito", Types: []string{"grass"}, Generation: 9},
	}
}
