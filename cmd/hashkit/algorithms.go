package main

import (
	"fmt"

	"github.com/hupe1980/hashkit"
	"github.com/hupe1980/hashkit/codec"
)

type algorithmsCmd struct {
	Format string `short:"f" default:"text" enum:"text,json" help:"Output format (${enum})."`
}

func (c *algorithmsCmd) Run(rc *runContext) error {
	for _, a := range hashkit.Algorithms() {
		if c.Format == "json" {
			if err := codec.WriteLine(rc.stdout, codec.Default, a); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(rc.stdout, "%-10s %d\n", a.Name, a.Size*8); err != nil {
			return err
		}
	}
	return nil
}
