package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/firecalc/fire-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// MaxGridCells bounds the number of cells a configuration may request.
const MaxGridCells = 10000

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// InputParser handles parsing of input configuration files
type InputParser struct {
	// MaxGridCells overrides the package limit when positive.
	MaxGridCells int
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{MaxGridCells: MaxGridCells}
}

// DefaultGridSpec sweeps retirement after years 5 through 30 and a first
// child in years 0 through 25, plus the no-child column.
func DefaultGridSpec() domain.GridSpec {
	return domain.GridSpec{
		RetirementYearFrom: 5,
		RetirementYearTo:   30,
		ChildYearFrom:      0,
		ChildYearTo:        25,
		IncludeNoChild:     true,
	}
}

// DefaultConfiguration is the configuration every file is layered over.
func DefaultConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Scenario: domain.DefaultScenarioConfig(),
		Grid:     DefaultGridSpec(),
	}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes a configuration document. Fields the document leaves out keep
// their default values.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	config := DefaultConfiguration()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	config.Scenario = config.Scenario.Normalize()
	return config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := config.Scenario.Validate(); err != nil {
		return fmt.Errorf("%w: scenario: %w", ErrInvalidConfig, err)
	}
	if err := ip.ValidateGrid(config.Grid); err != nil {
		return err
	}
	return nil
}

// ValidateGrid checks the grid ranges and the cell limit.
func (ip *InputParser) ValidateGrid(grid domain.GridSpec) error {
	if err := grid.Validate(); err != nil {
		return fmt.Errorf("%w: grid: %w", ErrInvalidConfig, err)
	}
	limit := ip.MaxGridCells
	if limit <= 0 {
		limit = MaxGridCells
	}
	if size := grid.Size(); size > limit {
		return fmt.Errorf("%w: grid: %d cells exceeds the limit of %d", ErrInvalidConfig, size, limit)
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration: the default
// scenario with two children two years apart starting in year 3.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	config := DefaultConfiguration()
	config.Scenario.DependentCount = 2
	config.Scenario = config.Scenario.WithFirstDependent(3)
	return config
}

// SaveConfiguration writes config as YAML to filename.
func (ip *InputParser) SaveConfiguration(config *domain.Configuration, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
