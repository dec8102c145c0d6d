package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var listSurface string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Enumerate known specs, materials, tempers and thicknesses",
	Long: `Enumerates the distinct values present in the reference files, for
narrowing a query step by step: specs, then materials for a spec,
then tempers, then the thickness points of the hardness matrices.`,
}

var listSpecsCmd = &cobra.Command{
	Use:   "specs",
	Short: "List the known specifications",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if queryService == nil {
			return errors.New("query service not configured")
		}
		specs, err := queryService.Specs(cmd.Context())
		if err != nil {
			return err
		}
		printLines(cmd, specs)
		return nil
	},
}

var listMaterialsCmd = &cobra.Command{
	Use:   "materials [spec]",
	Short: "List the materials for a specification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if queryService == nil {
			return errors.New("query service not configured")
		}
		materials, err := queryService.Materials(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printLines(cmd, materials)
		return nil
	},
}

var listTempersCmd = &cobra.Command{
	Use:   "tempers [spec] [material]",
	Short: "List the tempers for a spec and material",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if queryService == nil {
			return errors.New("query service not configured")
		}
		tempers, err := queryService.Tempers(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		printLines(cmd, tempers)
		return nil
	},
}

var listThicknessesCmd = &cobra.Command{
	Use:   "thicknesses [spec] [material] [temper]",
	Short: "List the hardness thickness points for a material",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if queryService == nil {
			return errors.New("query service not configured")
		}
		points, err := queryService.Thicknesses(cmd.Context(), args[0], args[1], args[2], listSurface)
		if err != nil {
			return err
		}
		if len(points) == 0 {
			cmd.Println("No entries found.")
			return nil
		}
		for _, p := range points {
			cmd.Printf("%.4f\n", p)
		}
		return nil
	},
}

func init() {
	listThicknessesCmd.Flags().StringVar(&listSurface, "surface", "BARE", "surface finish: BARE or CLAD")

	listCmd.AddCommand(listSpecsCmd)
	listCmd.AddCommand(listMaterialsCmd)
	listCmd.AddCommand(listTempersCmd)
	listCmd.AddCommand(listThicknessesCmd)
	rootCmd.AddCommand(listCmd)
}

func printLines(cmd *cobra.Command, values []string) {
	if len(values) == 0 {
		cmd.Println("No entries found.")
		return
	}
	for _, v := range values {
		fmt.Fprintln(cmd.OutOrStdout(), v)
	}
}
