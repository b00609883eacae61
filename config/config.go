package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gatsp/genetic"
	"github.com/katalvlaran/gatsp/geo"
	"github.com/katalvlaran/gatsp/tsp"
)

// Config is the on-disk run description.
type Config struct {
	Seed         int64         `yaml:"seed"`
	Generations  int           `yaml:"generations"`
	Population   Population    `yaml:"population"`
	Polish       Polish        `yaml:"polish"`
	Cities       []City        `yaml:"cities,omitempty"`
	RandomCities *RandomCities `yaml:"random_cities,omitempty"`
}

// Population holds the selection and mutation parameters.
type Population struct {
	InitialSize         int     `yaml:"initial_size"`
	Survivors           int     `yaml:"survivors"`
	MutationProbability float64 `yaml:"mutation_probability"`
	MutationsPerChild   int     `yaml:"mutations_per_child"`
}

// Polish controls 2-opt refinement of the final tour.
type Polish struct {
	Enabled  bool `yaml:"enabled"`
	MaxMoves int  `yaml:"max_moves"`
}

// City is one named point of the map.
type City struct {
	Label string  `yaml:"label"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}

// RandomCities asks for Count cities drawn uniformly from [Min, Max)² with
// the run seed.
type RandomCities struct {
	Count int     `yaml:"count"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
}

// Default returns the console demo: six named cities, 50 initial tours,
// 10 survivors, mutation probability 0.2 and 100 generations.
func Default() *Config {
	return &Config{
		Generations: 100,
		Population: Population{
			InitialSize:         50,
			Survivors:           10,
			MutationProbability: genetic.DefaultMutationProbability,
			MutationsPerChild:   genetic.DefaultMutationsPerChild,
		},
		Cities: []City{
			{Label: "A", X: 1, Y: 20},
			{Label: "B", X: 14, Y: 3},
			{Label: "C", X: 3, Y: 16},
			{Label: "D", X: 8, Y: 3},
			{Label: "E", X: 10, Y: 1},
			{Label: "F", X: 5, Y: 4},
		},
	}
}

// Load reads and validates the YAML file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Decode reads one YAML document from r on top of Default() and validates
// the result. Keys present in the document override the defaults, explicit
// zero values included. The default city list is used only when the document
// names neither cities nor random_cities. Unknown keys are rejected and an
// empty document yields Default().
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	defaults := cfg.Cities
	cfg.Cities = nil

	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if cfg.Cities == nil && cfg.RandomCities == nil {
		cfg.Cities = defaults
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the city source and the run options.
func (c *Config) Validate() error {
	switch {
	case len(c.Cities) > 0 && c.RandomCities != nil:
		return ErrAmbiguousCities
	case len(c.Cities) == 0 && c.RandomCities == nil:
		return ErrNoCities
	}
	for i, city := range c.Cities {
		if city.Label == "" || !finite(city.X) || !finite(city.Y) {
			return fmt.Errorf("config: city #%d %+v: %w", i, city, ErrInvalidCity)
		}
	}
	if rc := c.RandomCities; rc != nil {
		if rc.Count <= 0 {
			return fmt.Errorf("config: random_cities count %d: %w", rc.Count, ErrNoCities)
		}
		if !finite(rc.Min) || !finite(rc.Max) || rc.Min >= rc.Max {
			return fmt.Errorf("config: random_cities [%v, %v): %w", rc.Min, rc.Max, geo.ErrInvalidRange)
		}
	}

	return c.Options().Validate()
}

// Options maps the file onto genetic.Options. Invariant checking stays on.
func (c *Config) Options() genetic.Options {
	o := genetic.DefaultOptions()
	o.Seed = c.Seed
	o.Generations = c.Generations
	o.PopulationSize = c.Population.InitialSize
	o.SurvivorCount = c.Population.Survivors
	o.MutationProbability = c.Population.MutationProbability
	o.MutationsPerChild = c.Population.MutationsPerChild
	o.PolishBest = c.Polish.Enabled
	o.PolishMaxMoves = c.Polish.MaxMoves

	return o
}

// CityList builds the city list: the explicit entries in file order, or a
// random map drawn from a stream derived from the run seed, so the map and
// the evolution do not share draws.
func (c *Config) CityList() ([]geo.City, error) {
	if rc := c.RandomCities; rc != nil {
		return geo.RandomCities(tsp.DeriveRand(tsp.NewRand(c.Seed), 0), rc.Count, rc.Min, rc.Max)
	}
	if len(c.Cities) == 0 {
		return nil, ErrNoCities
	}

	out := make([]geo.City, len(c.Cities))
	for i, city := range c.Cities {
		out[i] = geo.NewCity(city.X, city.Y, city.Label)
	}

	return out, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
