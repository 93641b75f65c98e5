package config

import (
	"fmt"

	"github.com/kbukum/callintel/contextcheck"
	"github.com/kbukum/callintel/logger"
	"github.com/kbukum/callintel/outcome"
	"github.com/kbukum/callintel/roles"
	"github.com/kbukum/callintel/script"
)

// BaseConfig contains essential fields that every deployment needs.
type BaseConfig struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`
}

// ApplyDefaults applies default values to base configuration.
func (c *BaseConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "callintel"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
}

// Validate validates base configuration.
func (c *BaseConfig) Validate() error {
	validEnvs := []string{"development", "staging", "production"}
	for _, v := range validEnvs {
		if c.Environment == v {
			return nil
		}
	}
	return fmt.Errorf("base.environment must be one of [development, staging, production] (got: %s)", c.Environment)
}

// Policy aggregates the per-stage tunable thresholds. The values are
// empirically chosen policy knobs, safe to override per deployment.
type Policy struct {
	Roles   roles.Policy        `yaml:"roles" mapstructure:"roles"`
	Outcome outcome.Policy      `yaml:"outcome" mapstructure:"outcome"`
	Context contextcheck.Policy `yaml:"context" mapstructure:"context"`
	Script  script.Policy       `yaml:"script" mapstructure:"script"`
}

// ApplyDefaults applies defaults to every stage policy.
func (p *Policy) ApplyDefaults() {
	p.Roles.ApplyDefaults()
	p.Outcome.ApplyDefaults()
	p.Context.ApplyDefaults()
	p.Script.ApplyDefaults()
}

// Validate checks cross-field policy consistency.
func (p *Policy) Validate() error {
	if p.Roles.MaxTopShare <= 0 || p.Roles.MaxTopShare > 1 {
		return fmt.Errorf("policy.roles.max_top_share must be in (0, 1] (got: %v)", p.Roles.MaxTopShare)
	}
	if p.Roles.MinSecondShare < 0 || p.Roles.MinSecondShare > 0.5 {
		return fmt.Errorf("policy.roles.min_second_share must be in [0, 0.5] (got: %v)", p.Roles.MinSecondShare)
	}
	if p.Roles.MaxTopShare+p.Roles.MinSecondShare > 1 {
		return fmt.Errorf("policy.roles gate is unsatisfiable: max_top_share + min_second_share > 1")
	}
	if p.Outcome.BookedCutoff <= 0 {
		return fmt.Errorf("policy.outcome.booked_cutoff must be positive (got: %d)", p.Outcome.BookedCutoff)
	}
	if p.Script.MaxWords <= 0 {
		return fmt.Errorf("policy.script.max_words must be positive (got: %d)", p.Script.MaxWords)
	}
	return nil
}

// Config is the full engine configuration.
type Config struct {
	Base    BaseConfig    `yaml:"base" mapstructure:"base"`
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
	Policy  Policy        `yaml:"policy" mapstructure:"policy"`
}

// ApplyDefaults applies defaults to all sections.
func (c *Config) ApplyDefaults() {
	c.Base.ApplyDefaults()
	c.Logging.ApplyDefaults()
	c.Policy.ApplyDefaults()
}

// Validate validates all sections.
func (c *Config) Validate() error {
	if err := c.Base.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return c.Policy.Validate()
}
