package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim    string
	Scale  int
	TPS    int
	Seed   int64
	Width  int
	Height int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "pong", Scale: 1, TPS: 60, Seed: 42, Width: 800, Height: 600}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (pong, attract)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for match reset")
	fs.IntVar(&c.Width, "w", c.Width, "arena width")
	fs.IntVar(&c.Height, "h", c.Height, "arena height")
}

// EnvFile returns the dotenv path to load: $PONG_ENV_FILE, or .env in the
// working directory.
func EnvFile() string {
	if p := os.Getenv("PONG_ENV_FILE"); p != "" {
		return p
	}
	return ".env"
}

// LoadEnv overrides defaults with PONG_* values from a dotenv file. Call it
// before Bind so explicit flags still win. A missing file is not an error.
func (c *Config) LoadEnv(path string) error {
	env, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if v, ok := env["PONG_SIM"]; ok && v != "" {
		c.Sim = v
	}
	ints := []struct {
		key string
		dst *int
	}{
		{"PONG_SCALE", &c.Scale},
		{"PONG_TPS", &c.TPS},
		{"PONG_WIDTH", &c.Width},
		{"PONG_HEIGHT", &c.Height},
	}
	for _, f := range ints {
		v, ok := env[f.key]
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return fmt.Errorf("%s: invalid positive integer %q", f.key, v)
		}
		*f.dst = parsed
	}
	if v, ok := env["PONG_SEED"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("PONG_SEED: %w", err)
		}
		c.Seed = parsed
	}
	return nil
}

// SimOptions renders the config as the key/value map sim factories accept.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":    strconv.Itoa(c.Width),
		"h":    strconv.Itoa(c.Height),
		"seed": strconv.FormatInt(c.Seed, 10),
	}
}
