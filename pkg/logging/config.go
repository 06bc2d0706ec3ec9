package logging

import "os"

// Env holds the variable names read by Finalize. Empty names are skipped.
type Env struct {
	Level  string
	Format string
}

// Config is the [logging] table of the service config.
type Config struct {
	Level  Level  `toml:"level"`
	Format Format `toml:"format"`
}

// Finalize fills in info/text, lets env override them and validates the result.
// A nil env skips the environment.
func (c *Config) Finalize(env *Env) error {
	if env != nil {
		if v := lookup(env.Level); v != "" {
			c.Level = Level(v)
		}
		if v := lookup(env.Format); v != "" {
			c.Format = Format(v)
		}
	}

	c.Level = Level(normalize(string(c.Level)))
	c.Format = Format(normalize(string(c.Format)))
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}

	if err := c.Level.Validate(); err != nil {
		return err
	}
	return c.Format.Validate()
}

// Merge keeps c's values wherever overlay leaves a field empty.
func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
}

func lookup(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}
