package mazega

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"gopkg.in/ini.v1"
)

// ErrInvalidConfig wraps every configuration failure.
var ErrInvalidConfig = errors.New("config error")

// Config stores the configuration of a robot controller run.
type Config struct {
	GA    GAConfig
	Robot RobotConfig
	Run   RunConfig
}

// GAConfig holds the genetic algorithm hyperparameters.
type GAConfig struct {
	PopSize          int     `ini:"pop_size"`
	MutationRate     float64 `ini:"mutation_rate"`  // Probability per gene
	CrossoverRate    float64 `ini:"crossover_rate"` // Probability per individual
	Elitism          int     `ini:"elitism"`
	TournamentSize   int     `ini:"tournament_size"`
	ChromosomeLength int     `ini:"chromosome_length"`
	MaxGenerations   int     `ini:"max_generations"`
	StopOnSolution   bool    `ini:"stop_on_solution"`
}

// RobotConfig holds the limits of a single simulated run.
type RobotConfig struct {
	MaxMoves  int `ini:"max_moves"`
	GoalBonus int `ini:"goal_bonus"`
}

// RunConfig holds driver settings.
type RunConfig struct {
	Seed         int64  `ini:"seed"`    // 0 means seed from the clock
	History      string `ini:"history"` // "memory" or "sqlite"
	HistoryPath  string `ini:"history_path"`
	SolutionPath string `ini:"solution_path"` // Empty disables writing the solution file
	Render       string `ini:"render"`        // "text", "tcell" or "none"
}

// DefaultConfig returns the configuration used for keys missing from a file.
func DefaultConfig() *Config {
	return &Config{
		GA: GAConfig{
			PopSize:          200,
			MutationRate:     0.12,
			CrossoverRate:    0.9,
			Elitism:          2,
			TournamentSize:   10,
			ChromosomeLength: 150,
			MaxGenerations:   2000,
			StopOnSolution:   true,
		},
		Robot: RobotConfig{
			MaxMoves:  DefaultMaxMoves,
			GoalBonus: DefaultGoalBonus,
		},
		Run: RunConfig{
			History: "memory",
			Render:  "text",
		},
	}
}

// LoadConfig loads configuration parameters from an INI file.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := loadINI(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}
	return mapConfig(cfg)
}

// ParseConfig reads configuration parameters from INI formatted bytes.
func ParseConfig(data []byte) (*Config, error) {
	cfg, err := loadINI(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return mapConfig(cfg)
}

func loadINI(source interface{}) (*ini.File, error) {
	return ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, source)
}

func mapConfig(cfg *ini.File) (*Config, error) {
	// Keys missing from the file keep their defaults; StrictMapTo only touches keys it finds
	// and fails on values it cannot parse.
	config := DefaultConfig()

	if err := cfg.Section("GA").StrictMapTo(&config.GA); err != nil {
		return nil, fmt.Errorf("failed to map [GA] section: %w", err)
	}
	if err := cfg.Section("Robot").StrictMapTo(&config.Robot); err != nil {
		return nil, fmt.Errorf("failed to map [Robot] section: %w", err)
	}
	if err := cfg.Section("Run").StrictMapTo(&config.Run); err != nil {
		return nil, fmt.Errorf("failed to map [Run] section: %w", err)
	}

	config.Run.History = strings.ToLower(cleanIniString(config.Run.History))
	config.Run.HistoryPath = cleanIniString(config.Run.HistoryPath)
	config.Run.SolutionPath = cleanIniString(config.Run.SolutionPath)
	config.Run.Render = strings.ToLower(cleanIniString(config.Run.Render))

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks every section and fails on the first invalid value.
func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if c.GA.ChromosomeLength < 1 {
		return fmt.Errorf("%w: chromosome_length must be positive", ErrInvalidConfig)
	}
	if c.GA.MaxGenerations < 1 {
		return fmt.Errorf("%w: max_generations must be positive", ErrInvalidConfig)
	}

	validHistory := map[string]bool{"": true, "memory": true, "sqlite": true}
	if !validHistory[c.Run.History] {
		return fmt.Errorf("%w: invalid history '%s', must be one of 'memory', 'sqlite'", ErrInvalidConfig, c.Run.History)
	}
	if c.Run.History == "sqlite" && c.Run.HistoryPath == "" {
		return fmt.Errorf("%w: history_path is required for the sqlite history", ErrInvalidConfig)
	}
	validRender := map[string]bool{"": true, "text": true, "tcell": true, "none": true}
	if !validRender[c.Run.Render] {
		return fmt.Errorf("%w: invalid render '%s', must be one of 'text', 'tcell', 'none'", ErrInvalidConfig, c.Run.Render)
	}
	return nil
}

// Params extracts the engine parameters.
func (c *Config) Params() Params {
	return Params{
		PopulationSize: c.GA.PopSize,
		MutationRate:   c.GA.MutationRate,
		CrossoverRate:  c.GA.CrossoverRate,
		ElitismCount:   c.GA.Elitism,
		TournamentSize: c.GA.TournamentSize,
		Robot: RobotSettings{
			MaxMoves:  c.Robot.MaxMoves,
			GoalBonus: c.Robot.GoalBonus,
		},
	}
}

// NewRand returns a random source seeded from Seed, or from the clock when Seed is 0.
// The seed actually used is returned so a run can be reproduced.
func (c *RunConfig) NewRand() (*rand.Rand, int64) {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// cleanIniString removes inline comments and trims whitespace from a string read from INI.
func cleanIniString(s string) string {
	if idx := strings.IndexAny(s, "#;"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
