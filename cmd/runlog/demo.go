package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/runlog/pkg/runlog"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print a sample run in every format",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := runlog.New()
		log.DataQuality("NY", "Looking kinda scary. > 50K")
		log.DataSource("TX", "We're missing stuff, find it")
		log.DataEntry("FL", `"Let's Ignore It"`)

		out := cmd.OutOrStdout()

		if err := log.Print(out); err != nil {
			return err
		}

		exports := []struct {
			name string
			fn   func() ([]byte, error)
		}{
			{"json", log.JSON},
			{"csv", log.CSV},
			{"html", func() ([]byte, error) { return log.HTML(false) }},
		}
		for _, e := range exports {
			fmt.Fprintf(out, "--- %s ---\n", e.name)
			data, err := e.fn()
			if err != nil {
				return err
			}
			if _, err := out.Write(data); err != nil {
				return err
			}
		}
		return nil
	},
}
