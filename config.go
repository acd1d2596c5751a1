package main

import (
	"fmt"

	"github.com/hesusruiz/arthtml/article"
	"github.com/hesusruiz/vcutils/yaml"
	"github.com/urfave/cli/v2"
)

// loadOptions builds the rendering options from the optional config file,
// with the command line flags taking precedence.
func loadOptions(c *cli.Context) (article.Options, error) {
	opts := article.Options{}

	if configFileName := c.String("config"); len(configFileName) > 0 {
		cfg, err := yaml.ParseYamlFile(configFileName)
		if err != nil {
			return opts, fmt.Errorf("reading config %s: %w", configFileName, err)
		}
		opts.Title = cfg.String("title", "")
		opts.ImageBaseURL = cfg.String("imageBaseURL", "")
		opts.ImagePrefix = cfg.String("imagePrefix", "")
		opts.ArchivePrefix = cfg.String("archivePrefix", "")
		opts.CodeStyle = cfg.String("codeStyle", "")
		opts.Highlight = cfg.Bool("highlight")
		opts.Strict = cfg.Bool("strict")
	}

	if c.IsSet("title") {
		opts.Title = c.String("title")
	}
	if c.IsSet("highlight") {
		opts.Highlight = c.Bool("highlight")
	}
	if c.IsSet("strict") {
		opts.Strict = c.Bool("strict")
	}

	return opts, nil
}
