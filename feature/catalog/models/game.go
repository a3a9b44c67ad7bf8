package models

// Game types.
const (
	GameTypeSuperset = "superset"
	GameTypeSet      = "set"
	GameTypeGame     = "game"
	GameTypeDLC      = "dlc"
)

// GameFeatures flags the mechanics a game supports.
type GameFeatures struct {
	Storage   bool `json:"storage"`
	Pokedex   bool `json:"pokedex"`
	Training  bool `json:"training"`
	Shiny     bool `json:"shiny"`
	Items     bool `json:"items"`
	Gender    bool `json:"gender"`
	Pokerus   bool `json:"pokerus"`
	Nature    bool `json:"nature"`
	Ribbons   bool `json:"ribbons"`
	Marks     bool `json:"marks"`
	Markings  bool `json:"markings"`
	Shadow    bool `json:"shadow"`
	Ball      bool `json:"ball"`
	Mega      bool `json:"mega"`
	ZMove     bool `json:"zmove"`
	Gmax      bool `json:"gmax"`
	Alpha     bool `json:"alpha"`
	Tera      bool `json:"tera"`
	PlusMoves bool `json:"plusmvs"`
	Mints     bool `json:"mints"`
	Sizes     bool `json:"sizes"`
	Abilities bool `json:"abilities"`
}

// Game is a game, game set or superset shard.
type Game struct {
	Entity
	Gen          int          `json:"gen"`
	NameSlug     string       `json:"nameSlug"`
	Codename     *string      `json:"codename"`
	Type         string       `json:"type"`
	Series       string       `json:"series"`
	GameSet      *string      `json:"gameSet"`
	GameSuperSet *string      `json:"gameSuperSet"`
	ReleaseDate  string       `json:"releaseDate"`
	Region       *string      `json:"region"`
	OriginMark   *string      `json:"originMark"`
	Pokedexes    []string     `json:"pokedexes"`
	MaxBoxes     int          `json:"maxBoxes"`
	MaxBoxSize   int          `json:"maxBoxSize"`
	Platforms    []string     `json:"platforms"`
	Features     GameFeatures `json:"features"`
	IsUnreleased bool         `json:"isUnreleased,omitempty"`
}

// IsTopLevelSet reports whether the game is a set, or a game belonging to no set.
func (g Game) IsTopLevelSet() bool {
	switch g.Type {
	case GameTypeSet:
		return true
	case GameTypeGame:
		return g.GameSet == nil || *g.GameSet == ""
	default:
		return false
	}
}

// PokedexEntry is one pokemon listed in a pokedex.
type PokedexEntry struct {
	PID       string `json:"pid"`
	DexNum    DexNum `json:"dexNum"`
	IsForm    bool   `json:"isForm"`
	OriginDex string `json:"originDex,omitempty"`
}

// Pokedex is a regional or national pokedex shard.
type Pokedex struct {
	Entity
	Gen        int            `json:"gen"`
	Region     *string        `json:"region"`
	IsNational bool           `json:"isNational"`
	BaseDex    *string        `json:"baseDex"`
	PkApiID    *string        `json:"pkApiId"`
	Entries    []PokedexEntry `json:"entries"`
}
