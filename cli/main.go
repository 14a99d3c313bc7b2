package cli

import (
	"errors"
	"fmt"
	"log"

	"github.com/jessevdk/go-flags"
)

type mainConfig struct {
	ShortDesc string
	Commands  []*Command
}

// Main is the entry point for programs provided by this package.
func Main(opts ...Option) {
	log.SetFlags(0)

	var cfg mainConfig
	for _, o := range opts {
		o.apply(&cfg)
	}

	if err := loadEnvFile(_envFile); err != nil {
		log.Fatalf("Could not load %v: %v", _envFile, err)
	}

	var gcfg globalConfig
	parser := flags.NewParser(&gcfg, flags.HelpFlag|flags.PassDoubleDash)
	parser.ShortDescription = cfg.ShortDesc
	for _, cmd := range cfg.Commands {
		_, err := parser.AddCommand(
			cmd.Name, cmd.ShortDesc, "", cmd.Build(gcfg.Build))
		if err != nil {
			log.Fatalf("Could not register command %q: %v", cmd.Name, err)
		}
	}

	if _, err := parser.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Println(err)
			return
		}
		log.Fatal(err)
	}
}
