package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	LogLevel string `toml:"log_level"`
	Verify   bool   `toml:"verify"`
	Ops      []Op   `toml:"ops"`
}

// Op is one scripted map operation. Key and Value are ignored by ops that
// do not take them.
type Op struct {
	Op    string `toml:"op"`
	Key   int64  `toml:"key"`
	Value string `toml:"value"`
}

func (o Op) String() string {
	return fmt.Sprintf("%s(%d,%q)", o.Op, o.Key, o.Value)
}

func NewConfig() *Config {
	return &Config{
		LogLevel: "info",
	}
}

func (c *Config) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}

	defer file.Close()

	err = toml.NewDecoder(file).Decode(c)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	return nil
}
