package catalog

import (
	"fmt"
	"sort"

	"pokepc-dataset/core/cache"
	"pokepc-dataset/core/dataset"
	"pokepc-dataset/feature/catalog/models"

	"go.uber.org/zap"
)

// Collection names.
const (
	Items         = "items"
	Pokeballs     = "pokeballs"
	Abilities     = "abilities"
	Moves         = "moves"
	Characters    = "characters"
	Ribbons       = "ribbons"
	Marks         = "marks"
	OriginMarks   = "originmarks"
	Types         = "types"
	Natures       = "natures"
	Personalities = "personalities"
	Regions       = "regions"
	Colors        = "colors"
	Languages     = "languages"
	Generations   = "generations"
	Pokemon       = "pokemon"
	Games         = "games"
	Pokedexes     = "pokedexes"
)

// Cache keys.
const (
	keyAllPokemon    = "allPokemon"
	keyAllGames      = "allGames"
	keyAllPokedexes  = "allPokedexes"
	keyBoxPresetsFmt = "allBoxPresets-%s"
)

// DerivedKeyPrefix prefixes cache keys of lists built from the pokemon join,
// such as the per-language searchable lists. They are dropped with the join.
const DerivedKeyPrefix = "searchable-"

// Shard directories.
const (
	dirPokemon    = "pokemon"
	dirGames      = "games"
	dirPokedexes  = "pokedexes"
	dirBoxPresets = "boxpresets"
)

// ShardedCollection names the index and shard directory of a sharded collection.
type ShardedCollection struct {
	Name  string
	Index string
	Dir   string
}

// Sharded lists the sharded collections.
var Sharded = []ShardedCollection{
	{Name: Pokemon, Index: dataset.IndexPokemon, Dir: dirPokemon},
	{Name: Games, Index: dataset.IndexGames, Dir: dirGames},
	{Name: Pokedexes, Index: dataset.IndexPokedexes, Dir: dirPokedexes},
}

// Catalog is the read facade over one dataset source.
type Catalog struct {
	src    dataset.Source
	cache  *cache.Cache
	logger *zap.Logger

	items         *dataset.Collection[models.Item]
	pokeballs     *dataset.Collection[models.Pokeball]
	abilities     *dataset.Collection[models.Ability]
	moves         *dataset.Collection[models.Move]
	characters    *dataset.Collection[models.Character]
	ribbons       *dataset.Collection[models.Ribbon]
	marks         *dataset.Collection[models.Mark]
	originMarks   *dataset.Collection[models.OriginMark]
	types         *dataset.Collection[models.Type]
	natures       *dataset.Collection[models.Nature]
	personalities *dataset.Collection[models.Personality]
	regions       *dataset.Collection[models.Region]
	colors        *dataset.Collection[models.Color]
	languages     *dataset.Collection[models.Language]
	generations   *dataset.Collection[models.Generation]

	flat map[string]dataset.Listing
}

// New creates a catalog reading from src. Sharded collections are cached in c.
func New(src dataset.Source, c *cache.Cache, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	cat := &Catalog{
		src:           src,
		cache:         c,
		logger:        logger,
		items:         dataset.NewCollection[models.Item](src, Items, "items.json"),
		pokeballs:     dataset.NewCollection[models.Pokeball](src, Pokeballs, "pokeballs.json"),
		abilities:     dataset.NewCollection[models.Ability](src, Abilities, "abilities.json"),
		moves:         dataset.NewCollection[models.Move](src, Moves, "moves.json"),
		characters:    dataset.NewCollection[models.Character](src, Characters, "characters.json"),
		ribbons:       dataset.NewCollection[models.Ribbon](src, Ribbons, "ribbons.json"),
		marks:         dataset.NewCollection[models.Mark](src, Marks, "marks.json"),
		originMarks:   dataset.NewCollection[models.OriginMark](src, OriginMarks, "originmarks.json"),
		types:         dataset.NewCollection[models.Type](src, Types, "types.json"),
		natures:       dataset.NewCollection[models.Nature](src, Natures, "natures.json"),
		personalities: dataset.NewCollection[models.Personality](src, Personalities, "personalities.json"),
		regions:       dataset.NewCollection[models.Region](src, Regions, "regions.json"),
		colors:        dataset.NewCollection[models.Color](src, Colors, "colors.json"),
		languages:     dataset.NewCollection[models.Language](src, Languages, "languages.json"),
		generations:   dataset.NewCollection[models.Generation](src, Generations, "generations.json"),
	}

	cat.flat = map[string]dataset.Listing{
		Items:         cat.items,
		Pokeballs:     cat.pokeballs,
		Abilities:     cat.abilities,
		Moves:         cat.moves,
		Characters:    cat.characters,
		Ribbons:       cat.ribbons,
		Marks:         cat.marks,
		OriginMarks:   cat.originMarks,
		Types:         cat.types,
		Natures:       cat.natures,
		Personalities: cat.personalities,
		Regions:       cat.regions,
		Colors:        cat.colors,
		Languages:     cat.languages,
		Generations:   cat.generations,
	}
	return cat
}

// Source returns the dataset source.
func (c *Catalog) Source() dataset.Source {
	return c.src
}

// Cache returns the cache shared by the loaders.
func (c *Catalog) Cache() *cache.Cache {
	return c.cache
}

// Items returns every record of the items collection.
func (c *Catalog) Items() ([]models.Item, error) {
	return c.items.All()
}

// Pokeballs returns every record of the pokeballs collection.
func (c *Catalog) Pokeballs() ([]models.Pokeball, error) {
	return c.pokeballs.All()
}

// Abilities returns every record of the abilities collection.
func (c *Catalog) Abilities() ([]models.Ability, error) {
	return c.abilities.All()
}

// Moves returns every record of the moves collection.
func (c *Catalog) Moves() ([]models.Move, error) {
	return c.moves.All()
}

// Characters returns every record of the characters collection.
func (c *Catalog) Characters() ([]models.Character, error) {
	return c.characters.All()
}

// Ribbons returns every record of the ribbons collection.
func (c *Catalog) Ribbons() ([]models.Ribbon, error) {
	return c.ribbons.All()
}

// Marks returns every record of the marks collection.
func (c *Catalog) Marks() ([]models.Mark, error) {
	return c.marks.All()
}

// OriginMarks returns every record of the origin marks collection.
func (c *Catalog) OriginMarks() ([]models.OriginMark, error) {
	return c.originMarks.All()
}

// Types returns every record of the types collection.
func (c *Catalog) Types() ([]models.Type, error) {
	return c.types.All()
}

// Natures returns every record of the natures collection.
func (c *Catalog) Natures() ([]models.Nature, error) {
	return c.natures.All()
}

// Personalities returns every record of the personalities collection.
func (c *Catalog) Personalities() ([]models.Personality, error) {
	return c.personalities.All()
}

// Regions returns every record of the regions collection.
func (c *Catalog) Regions() ([]models.Region, error) {
	return c.regions.All()
}

// Colors returns every record of the colors collection.
func (c *Catalog) Colors() ([]models.Color, error) {
	return c.colors.All()
}

// Languages returns every record of the languages collection.
func (c *Catalog) Languages() ([]models.Language, error) {
	return c.languages.All()
}

// Generations returns every record of the generations collection.
func (c *Catalog) Generations() ([]models.Generation, error) {
	return c.generations.All()
}

// Item returns one item by id.
func (c *Catalog) Item(id string) (models.Item, bool, error) { return c.items.ByKey(id) }

// Ability returns one ability by id.
func (c *Catalog) Ability(id string) (models.Ability, bool, error) { return c.abilities.ByKey(id) }

// Move returns one move by id.
func (c *Catalog) Move(id string) (models.Move, bool, error) { return c.moves.ByKey(id) }

// Pokemon returns every pokemon listed in the pokemon index, in index order.
// A missing shard fails the whole load.
func (c *Catalog) Pokemon() ([]models.Pokemon, error) {
	return cache.Cached(c.cache, keyAllPokemon, func() ([]models.Pokemon, error) {
		return joinIndexed[models.Pokemon](c, dataset.IndexPokemon, dirPokemon, "pokemon")
	})
}

// Games returns every game listed in the games index, in index order.
func (c *Catalog) Games() ([]models.Game, error) {
	return cache.Cached(c.cache, keyAllGames, func() ([]models.Game, error) {
		return joinIndexed[models.Game](c, dataset.IndexGames, dirGames, "game")
	})
}

// Pokedexes returns every pokedex listed in the pokedexes index, in index order.
func (c *Catalog) Pokedexes() ([]models.Pokedex, error) {
	return cache.Cached(c.cache, keyAllPokedexes, func() ([]models.Pokedex, error) {
		return joinIndexed[models.Pokedex](c, dataset.IndexPokedexes, dirPokedexes, "pokedex")
	})
}

func joinIndexed[T any](c *Catalog, index, dir, kind string) ([]T, error) {
	keys, err := dataset.ReadIndex(c.src, index)
	if err != nil {
		return nil, err
	}
	return dataset.JoinFromIndex[T](c.src, kind, dir, keys, dataset.MissingFatal, c.logger)
}

// GameSets returns the top-level game groupings: sets, and games that belong to no set.
func (c *Catalog) GameSets() ([]models.Game, error) {
	games, err := c.Games()
	if err != nil {
		return nil, err
	}
	sets := make([]models.Game, 0, len(games))
	for _, g := range games {
		if g.IsTopLevelSet() {
			sets = append(sets, g)
		}
	}
	return sets, nil
}

// BoxPresets returns the legacy box presets of variant grouped by game set.
// Game sets without a preset document are skipped with a warning.
func (c *Catalog) BoxPresets(variant string) ([]models.BoxPresetGroup, error) {
	if variant == "" {
		variant = models.VariantClassic
	}
	if !models.IsVariant(variant) {
		return nil, fmt.Errorf("unknown box preset variant %q", variant)
	}

	return cache.Cached(c.cache, fmt.Sprintf(keyBoxPresetsFmt, variant), func() ([]models.BoxPresetGroup, error) {
		sets, err := c.GameSets()
		if err != nil {
			return nil, err
		}
		keys := make([]string, len(sets))
		for i, g := range sets {
			keys[i] = g.ID
		}

		shards, err := dataset.JoinShards[models.BoxPresetMap](c.src, "box preset", dirBoxPresets+"/"+variant, keys, dataset.MissingSkip, c.logger)
		if err != nil {
			return nil, err
		}

		groups := make([]models.BoxPresetGroup, len(shards))
		for i, s := range shards {
			presets := []models.BoxPreset(s.Doc)
			if presets == nil {
				presets = []models.BoxPreset{}
			}
			groups[i] = models.BoxPresetGroup{GameSet: s.Key, Presets: presets}
		}
		return groups, nil
	})
}

// RegeneratePokemonIndex rebuilds indices/pokemon.json from the loaded pokemon:
// every id followed by its forms, deduplicated in first-seen order.
// It returns the written index.
func (c *Catalog) RegeneratePokemonIndex() ([]string, error) {
	all, err := c.Pokemon()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(all))
	index := make([]string, 0, len(all))
	add := func(id string) {
		if seen[id] {
			return
		}
		seen[id] = true
		index = append(index, id)
	}
	for _, p := range all {
		add(p.ID)
		for _, form := range p.Forms {
			add(form)
		}
	}

	if err := dataset.WriteIndex(c.src, dataset.IndexPokemon, index); err != nil {
		return nil, fmt.Errorf("failed to write pokemon index: %w", err)
	}
	c.cache.Invalidate(keyAllPokemon)
	c.cache.InvalidatePrefix(DerivedKeyPrefix)
	c.logger.Info("Regenerated pokemon index", zap.Int("entries", len(index)))
	return index, nil
}

// CollectionNames returns every collection name, sorted.
func (c *Catalog) CollectionNames() []string {
	names := make([]string, 0, len(c.flat)+3)
	for name := range c.flat {
		names = append(names, name)
	}
	names = append(names, Pokemon, Games, Pokedexes)
	sort.Strings(names)
	return names
}

// Documents returns the documents a complete dataset holds: every flat
// collection file followed by every index, each group sorted.
func (c *Catalog) Documents() []string {
	docs := make([]string, 0, len(c.flat)+len(Sharded))
	for _, l := range c.flat {
		if f, ok := l.(interface{ File() string }); ok {
			docs = append(docs, f.File())
		}
	}
	sort.Strings(docs)
	for _, sc := range Sharded {
		docs = append(docs, dataset.IndexName(sc.Index))
	}
	return docs
}

// Lookup returns the untyped view of the named collection.
func (c *Catalog) Lookup(name string) (dataset.Listing, bool) {
	if l, ok := c.flat[name]; ok {
		return l, true
	}
	switch name {
	case Pokemon:
		return &shardedListing[models.Pokemon]{name: name, load: c.Pokemon}, true
	case Games:
		return &shardedListing[models.Game]{name: name, load: c.Games}, true
	case Pokedexes:
		return &shardedListing[models.Pokedex]{name: name, load: c.Pokedexes}, true
	}
	return nil, false
}

// Reload drops every parsed flat collection, cached shard join and list derived from them.
func (c *Catalog) Reload() {
	c.items.Reload()
	c.pokeballs.Reload()
	c.abilities.Reload()
	c.moves.Reload()
	c.characters.Reload()
	c.ribbons.Reload()
	c.marks.Reload()
	c.originMarks.Reload()
	c.types.Reload()
	c.natures.Reload()
	c.personalities.Reload()
	c.regions.Reload()
	c.colors.Reload()
	c.languages.Reload()
	c.generations.Reload()

	c.cache.Invalidate(keyAllPokemon)
	c.cache.Invalidate(keyAllGames)
	c.cache.Invalidate(keyAllPokedexes)
	c.cache.Invalidate(fmt.Sprintf(keyBoxPresetsFmt, models.VariantClassic))
	c.cache.Invalidate(fmt.Sprintf(keyBoxPresetsFmt, models.VariantModern))
	c.cache.InvalidatePrefix(DerivedKeyPrefix)
}

type shardedListing[T dataset.Keyed] struct {
	name string
	load func() ([]T, error)
}

func (l *shardedListing[T]) Name() string { return l.name }

func (l *shardedListing[T]) Records() ([]any, error) {
	records, err := l.load()
	if err != nil {
		return nil, err
	}
	out := make([]any, len(records))
	for i, r := range records {
		out[i] = r
	}
	return out, nil
}

func (l *shardedListing[T]) Record(id string) (any, bool, error) {
	records, err := l.load()
	if err != nil {
		return nil, false, err
	}
	for _, r := range records {
		if r.Key() == id {
			return r, true, nil
		}
	}
	return nil, false, nil
}
