package cli_test

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/scthornton/analytics-data-gen-parquet/internal/cli"
	"github.com/smartystreets/goconvey/convey"
)

func findCommand(root *cobra.Command, name string) *cobra.Command {
	for _, c := range root.Commands() {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

func TestNewRootCommand(t *testing.T) {
	convey.Convey("Given the root command", t, func() {
		root := cli.NewRootCommand()

		convey.Convey("Then it should expose the generate and inspect subcommands", func() {
			convey.So(findCommand(root, "generate"), convey.ShouldNotBeNil)
			convey.So(findCommand(root, "inspect"), convey.ShouldNotBeNil)
		})

		convey.Convey("And generate should carry the generation flags", func() {
			generate := findCommand(root, "generate")
			convey.So(generate, convey.ShouldNotBeNil)
			for _, flag := range []string{"users", "days", "seed", "out", "top-pages", "quiet"} {
				convey.So(generate.Flags().Lookup(flag), convey.ShouldNotBeNil)
			}
		})

		convey.Convey("And inspect should require exactly one argument", func() {
			inspect := findCommand(root, "inspect")
			convey.So(inspect, convey.ShouldNotBeNil)
			convey.So(inspect.Args(inspect, []string{}), convey.ShouldNotBeNil)
			convey.So(inspect.Args(inspect, []string{"a.parquet"}), convey.ShouldBeNil)
		})
	})
}
