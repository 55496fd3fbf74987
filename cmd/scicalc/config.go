package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// config is the calculator configuration. It can be loaded from a YAML file;
// flags given on the command line take precedence.
type config struct {
	// Angle is the initial angle mode, either "degrees" or "radians".
	Angle string `yaml:"angle"`
	// Format is the fmt verb used to print numbers.
	Format string `yaml:"format"`
	// Prompt is the interactive prompt.
	Prompt string `yaml:"prompt"`
	// Echo prints the postfix form of each expression before its result.
	Echo bool `yaml:"echo"`
}

func defaultConfig() config {
	return config{
		Angle:  "degrees",
		Format: "%g",
		Prompt: "> ",
	}
}

// load reads a YAML file over c. Keys absent from the file keep their values.
func (c *config) load(name string) error {
	b, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("reading config %s: %w", name, err)
	}
	return nil
}

// degrees returns whether the configured angle mode is degrees.
func (c *config) degrees() (bool, error) {
	switch strings.ToLower(c.Angle) {
	case "degrees", "deg":
		return true, nil
	case "radians", "rad":
		return false, nil
	default:
		return false, fmt.Errorf(`angle must be "degrees" or "radians", not %q`, c.Angle)
	}
}

type options struct {
	config
	// in is the input file name.
	in string
	// args are expressions given on the command line.
	args []string
}

// parseArgs parses command-line flags and the config file they name.
func parseArgs(name string, args []string) (*options, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	o := options{config: defaultConfig()}
	var (
		cfgname string
		verb    string
		rad     bool
		echo    bool
	)
	fs.StringVar(&cfgname, "config", "", "YAML configuration file")
	fs.StringVar(&o.in, "in", "", "input file, one expression per line (default stdin if no args given)")
	fs.StringVar(&verb, "fmt", o.Format, "result formatting string")
	fs.BoolVar(&rad, "rad", false, "take trigonometric arguments in radians instead of degrees")
	fs.BoolVar(&echo, "echo", false, "print postfix forms")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfgname != "" {
		if err := o.load(cfgname); err != nil {
			return nil, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fmt":
			o.Format = verb
		case "rad":
			o.Angle = "degrees"
			if rad {
				o.Angle = "radians"
			}
		case "echo":
			o.Echo = echo
		}
	})
	if _, err := o.degrees(); err != nil {
		return nil, err
	}
	o.args = fs.Args()
	return &o, nil
}
