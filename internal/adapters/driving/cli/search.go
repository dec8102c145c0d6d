package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alloytools/matprop-cli/internal/core/domain"
)

var (
	searchSpec      string
	searchMaterial  string
	searchTemper    string
	searchThickness float64
	searchSurface   string
	searchJSON      bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Look up conductivity and hardness for one material",
	Long: `Resolves the corrected conductivity range and the min/max hardness
requirements for one (spec, material, temper) at a thickness and
surface finish.

Absent values mean the reference files carry no requirement for that
combination; they are reported as "-" rather than treated as errors.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchSpec, "spec", "", "material specification (e.g. QQ-A-250/4)")
	searchCmd.Flags().StringVar(&searchMaterial, "material", "", "material designation (e.g. 2024)")
	searchCmd.Flags().StringVar(&searchTemper, "temper", "", "temper designation (e.g. T3)")
	searchCmd.Flags().Float64VarP(&searchThickness, "thickness", "t", 0, "thickness in inches")
	searchCmd.Flags().StringVar(&searchSurface, "surface", "BARE", "surface finish: BARE or CLAD")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output result as JSON")

	for _, name := range []string{"spec", "material", "temper", "thickness"} {
		_ = searchCmd.MarkFlagRequired(name)
	}

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	q := domain.Query{
		Spec:      searchSpec,
		Material:  searchMaterial,
		Temper:    searchTemper,
		Thickness: searchThickness,
		Surface:   searchSurface,
	}

	result, err := queryService.SearchAll(cmd.Context(), q)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputResultJSON(cmd, result)
	}
	outputResultTable(cmd, q, result)
	return nil
}

func outputResultJSON(cmd *cobra.Command, result domain.QueryResult) error {
	payload := struct {
		ConductivityMin *float64 `json:"conductivity_min"`
		ConductivityMax *float64 `json:"conductivity_max"`
		HardnessMin     *string  `json:"hardness_min"`
		HardnessMax     *string  `json:"hardness_max"`
	}{
		ConductivityMin: result.CorrectedMin,
		ConductivityMax: result.CorrectedMax,
		HardnessMin:     result.HardnessMin,
		HardnessMax:     result.HardnessMax,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputResultTable(cmd *cobra.Command, q domain.Query, result domain.QueryResult) {
	cmd.Printf("%s %s %s at %.4f in (%s)\n",
		domain.Normalize(q.Spec), domain.Normalize(q.Material),
		domain.Normalize(q.Temper), q.Thickness,
		domain.ParseSurface(q.Surface))
	cmd.Println()
	cmd.Printf("  Conductivity min: %s\n", formatFloat(result.CorrectedMin))
	cmd.Printf("  Conductivity max: %s\n", formatFloat(result.CorrectedMax))
	cmd.Printf("  Hardness min:     %s\n", formatString(result.HardnessMin))
	cmd.Printf("  Hardness max:     %s\n", formatString(result.HardnessMax))
}

func formatFloat(f *float64) string {
	if f == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f %%IACS", *f)
}

func formatString(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
