package commands

// Config enumerates every filesystem location the pipeline touches, read
// from mlbb.json5 (with the usual .local overrides).
type Config struct {
	ItemsRaw            string `json:"items_raw"`
	HeroesRaw           string `json:"heroes_raw"`
	EmblemsMainRaw      string `json:"emblems_main_raw"`
	EmblemsAbilitiesRaw string `json:"emblems_abilities_raw"`

	ItemsOut   string `json:"items_out"`
	HeroesOut  string `json:"heroes_out"`
	EmblemsOut string `json:"emblems_out"`
}
