package main

import (
	"github.com/BurntSushi/toml"

	"github.com/ezrec/asml/srec"
)

// Config holds the defaults that command line flags override.
//
// Example asml.toml:
//
//	output   = "out.srec"
//	header   = "ASML"
//	verbose  = false
//	debug    = false
//	language = "en-US"
//	echo     = true
type Config struct {
	Output   string `toml:"output"`   // SRecord output path for 'compile'.
	Header   string `toml:"header"`   // S0 header text.
	Verbose  bool   `toml:"verbose"`  // Verbose logging.
	Debug    bool   `toml:"debug"`    // Start in the debugger.
	Language string `toml:"language"` // BCP 47 message language.
	Echo     bool   `toml:"echo"`     // Echo printer output to stdout.
}

// DefaultConfig returns the built in defaults.
func DefaultConfig() Config {
	return Config{
		Header: srec.DEFAULT_HEADER,
		Echo:   true,
	}
}

// LoadConfig overlays a TOML file onto cfg. Keys absent from the file
// keep their current values.
func LoadConfig(path string, cfg *Config) (err error) {
	_, err = toml.DecodeFile(path, cfg)
	return
}
