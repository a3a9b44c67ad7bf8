// Package catalogtest writes small datasets for tests.
package catalogtest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"pokepc-dataset/core/cache"
	"pokepc-dataset/core/dataset"
	"pokepc-dataset/feature/catalog"
)

// Files is a dataset keyed by slash-separated document name.
type Files map[string]string

// Dataset returns a minimal consistent dataset: three pokemon (bulbasaur,
// charmander and its gigantamax form), two game sets and one pokedex.
func Dataset() Files {
	return Files{
		"items.json":         `[{"id":"potion","name":"Potion","gen":1,"shortDesc":"Heals","desc":null,"psName":"Potion","category":"medicine"}]`,
		"pokeballs.json":     `[{"id":"poke-ball","name":"Poké Ball","gen":1,"shortDesc":"","desc":null,"category":"regular"}]`,
		"abilities.json":     `[{"id":"overgrow","name":"Overgrow","psName":"Overgrow","gen":3,"shortDesc":"","desc":null},{"id":"blaze","name":"Blaze","psName":"Blaze","gen":3,"shortDesc":"","desc":null},{"id":"chlorophyll","name":"Chlorophyll","psName":"Chlorophyll","gen":3,"shortDesc":"","desc":null},{"id":"solar-power","name":"Solar Power","psName":"Solar Power","gen":4,"shortDesc":"","desc":null}]`,
		"moves.json":         `[{"id":"tackle","name":"Tackle","psName":"Tackle","gen":1,"shortDesc":"","desc":null,"type":"normal","power":40,"accuracy":100,"pp":35,"category":"physical","priority":0,"isZ":false,"isGmax":false}]`,
		"characters.json":    `[{"id":"ash","name":"Ash"}]`,
		"ribbons.json":       `[{"id":"champion-ribbon","name":"Champion Ribbon","gen":3,"shortDesc":"","desc":null,"title":"the Champion","category":"league"}]`,
		"marks.json":         `[{"id":"lunchtime-mark","name":"Lunchtime Mark","gen":8,"shortDesc":"","desc":null,"title":"the Peckish","conditions":"noon","chance":"1/50","chanceCharm":"3/50"}]`,
		"originmarks.json":   `[{"id":"gameboy","name":"Game Boy"}]`,
		"types.json":         `[{"id":"grass","name":"Grass","color":"#78c850","isCanonical":true},{"id":"poison","name":"Poison","color":"#a040a0","isCanonical":true},{"id":"fire","name":"Fire","color":"#f08030","isCanonical":true}]`,
		"natures.json":       `[{"id":"hardy","name":"Hardy","raises":null,"lowers":null},{"id":"adamant","name":"Adamant","raises":"atk","lowers":"spa"}]`,
		"personalities.json": `[{"id":"loves-to-eat","shortDesc":"Loves to eat"}]`,
		"regions.json":       `[{"id":"kanto","name":"Kanto"}]`,
		"colors.json":        `[{"id":"green","name":"Green","color":"#00ff00"},{"id":"red","name":"Red","color":"#ff0000"}]`,
		"languages.json":     `[{"id":"en","name":"English","nameEng":"English","alpha3":"eng","inGameCode":"ENG","locale":"en-US","flag":"us"}]`,
		"generations.json":   `[{"id":1,"minDexNum":1,"maxDexNum":151}]`,

		"indices/pokemon.json":   `["bulbasaur","charmander","charmander-gmax"]`,
		"indices/games.json":     `["rb","red","blue","yellow"]`,
		"indices/pokedexes.json": `["kanto"]`,

		"pokemon/bulbasaur.json": `{"id":"bulbasaur","nid":"0001-bulbasaur","dexNum":1,"region":"kanto","gen":1,"type1":"grass","type2":"poison","color":"green",
			"ability1":"overgrow","abilityHidden":"chlorophyll","isForm":false,"isDefault":true,"debutIn":"red","obtainableIn":["red"],"eventOnlyIn":[],"storableIn":["red","blue"],
			"maleRate":87.5,"femaleRate":12.5,"baseForms":[],"forms":[],"refs":{},
			"names":{"eng":"Bulbasaur","fra":"Bulbizarre","jap":"フシギダネ"},"genus":{"eng":"Seed Pokémon"},"speciesNames":{},"formNames":{}}`,
		"pokemon/charmander.json": `{"id":"charmander","nid":"0004-charmander","dexNum":"0004","region":"kanto","gen":1,"type1":"fire","color":"red",
			"ability1":"blaze","abilityHidden":"solar-power","isForm":false,"isDefault":true,"debutIn":"red","obtainableIn":["red"],"eventOnlyIn":[],"storableIn":["red"],
			"maleRate":87.5,"femaleRate":12.5,"baseForms":[],"forms":["charmander-gmax"],"refs":{},
			"names":{"eng":"Charmander","deu":"Glumanda"},"genus":{"eng":"Lizard Pokémon","deu":"Echsen-Pokémon"},"speciesNames":{},"formNames":{}}`,
		"pokemon/charmander-gmax.json": `{"id":"charmander-gmax","nid":"0004-charmander-gmax","dexNum":4,"region":"kanto","gen":8,"type1":"fire","color":"red",
			"ability1":"blaze","isForm":true,"isGmax":true,"baseSpecies":"charmander","debutIn":"red","obtainableIn":[],"eventOnlyIn":[],"storableIn":[],
			"maleRate":87.5,"femaleRate":12.5,"baseForms":[],"forms":[],"refs":{},
			"names":{"eng":"Gigantamax Charmander"},"genus":{},"speciesNames":{"eng":"Charmander"},"formNames":{"eng":"Gigantamax"}}`,

		"games/rb.json":     `{"id":"rb","name":"Red / Blue","gen":1,"nameSlug":"red-blue","codename":null,"type":"set","series":"main","gameSet":null,"gameSuperSet":null,"releaseDate":"1996-02-27","region":"kanto","originMark":"gameboy","pokedexes":["kanto"],"maxBoxes":12,"maxBoxSize":20,"platforms":["gb"],"features":{"storage":true}}`,
		"games/red.json":    `{"id":"red","name":"Red","gen":1,"nameSlug":"red","codename":null,"type":"game","series":"main","gameSet":"rb","gameSuperSet":null,"releaseDate":"1996-02-27","region":"kanto","originMark":"gameboy","pokedexes":["kanto"],"maxBoxes":12,"maxBoxSize":20,"platforms":["gb"],"features":{"storage":true}}`,
		"games/blue.json":   `{"id":"blue","name":"Blue","gen":1,"nameSlug":"blue","codename":null,"type":"game","series":"main","gameSet":"rb","gameSuperSet":null,"releaseDate":"1996-10-15","region":"kanto","originMark":"gameboy","pokedexes":["kanto"],"maxBoxes":12,"maxBoxSize":20,"platforms":["gb"],"features":{"storage":true}}`,
		"games/yellow.json": `{"id":"yellow","name":"Yellow","gen":1,"nameSlug":"yellow","codename":null,"type":"game","series":"main","gameSet":null,"gameSuperSet":null,"releaseDate":"1998-09-12","region":"kanto","originMark":"gameboy","pokedexes":["kanto"],"maxBoxes":12,"maxBoxSize":20,"platforms":["gb","gbc"],"features":{"storage":true}}`,

		"pokedexes/kanto.json": `{"id":"kanto","name":"Kanto","gen":1,"region":"kanto","isNational":false,"baseDex":null,"pkApiId":"2","entries":[{"pid":"bulbasaur","dexNum":1,"isForm":false},{"pid":"charmander","dexNum":"004","isForm":false}]}`,

		"boxpresets/classic/rb.json": `{"fill":{"id":"fill","name":"Fill","version":1,"gameSet":"rb","description":"","boxes":[{"pokemon":["bulbasaur",null,{"pid":"charmander","shiny":true}]}]},"empty":{"id":"empty","name":"Empty","version":1,"gameSet":"rb","description":"","boxes":[]}}`,
	}
}

// Write lays files out under a temporary directory and returns a source rooted there.
func Write(t testing.TB, files Files) *dataset.DirSource {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	src, err := dataset.NewDirSource(root)
	if err != nil {
		t.Fatal(err)
	}
	return src
}

// New writes files and returns a catalog over them with a one minute cache.
func New(t testing.TB, files Files) *catalog.Catalog {
	t.Helper()
	return catalog.New(Write(t, files), cache.New(time.Minute), nil)
}

// Without returns a copy of files without the named documents.
func (f Files) Without(names ...string) Files {
	out := make(Files, len(f))
	for k, v := range f {
		out[k] = v
	}
	for _, n := range names {
		delete(out, n)
	}
	return out
}

// With returns a copy of files with the given documents added or replaced.
func (f Files) With(name, content string) Files {
	out := f.Without()
	out[name] = content
	return out
}
