package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/parquet-go/parquet-go"
	"github.com/spf13/cobra"
)

// NewInspectCommand creates the inspect subcommand: read a written parquet
// table back and show its schema and row count.
func NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <table.parquet>",
		Short: "Show schema and row count of a parquet table",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := args[0]

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			defer f.Close()

			stat, err := f.Stat()
			if err != nil {
				return fmt.Errorf("stat %s: %w", path, err)
			}

			pf, err := parquet.OpenFile(f, stat.Size())
			if err != nil {
				return fmt.Errorf("read parquet file %s: %w", path, err)
			}

			bold := color.New(color.Bold)
			bold.Printf("%s\n", path)
			fmt.Printf("rows:       %d\n", pf.NumRows())
			fmt.Printf("row groups: %d\n", len(pf.RowGroups()))
			bold.Println("schema:")
			for _, field := range pf.Schema().Fields() {
				fmt.Printf("  %-18s %s\n", field.Name(), field.Type())
			}
			return nil
		},
	}
	return cmd
}
