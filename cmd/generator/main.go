// Command generator writes a random spare parts catalog.
package main

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"Inventory/internal/catalog"
	"Inventory/internal/data"
	"Inventory/internal/helpers"
)

func newRootCommand() *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "generator",
		Short: "Generate a random spare parts catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}
			rows := viper.GetInt("generator.rows")
			if rows < 0 {
				rows = 0
			}
			parts := data.Generate(rand.New(rand.NewPCG(seed, seed)), rows)
			return catalog.Save(viper.GetString("catalog.path"), parts)
		},
	}

	flags := cmd.Flags()
	flags.Int("rows", 500, "Number of parts to generate")
	flags.String("out", "spare_parts.csv", "Catalog file to write")
	flags.Uint64Var(&seed, "seed", 0, "Random seed (default: current time)")
	cobra.CheckErr(viper.BindPFlag("generator.rows", flags.Lookup("rows")))
	cobra.CheckErr(viper.BindPFlag("catalog.path", flags.Lookup("out")))
	return cmd
}

func main() {
	helpers.ReadConfig()
	if err := newRootCommand().Execute(); err != nil {
		log.Fatalf("Cannot generate the catalog. Reason: %s\n", err)
	}
}
