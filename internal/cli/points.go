package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"petra/internal/geo"
)

func newPointsCmd() *cobra.Command {
	var asGeoJSON bool
	cmd := &cobra.Command{
		Use:   "points",
		Short: "Print the demo detection points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pts := geo.DemoPoints()
			if !asGeoJSON {
				fmt.Fprintln(cmd.OutOrStdout(), geo.FormatCoordinates(pts))
				return nil
			}
			b, err := json.MarshalIndent(geo.ToFeatureCollection(pts), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asGeoJSON, "geojson", false, "Emit a GeoJSON FeatureCollection")
	return cmd
}
