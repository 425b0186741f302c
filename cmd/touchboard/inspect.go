package touchboard

import (
	"fmt"

	"github.com/spf13/cobra"
)

// inspectCmd represents the inspect command.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print computed key geometry for a layout document",
	Long: `Load a layout document, run the geometry pass for the given surface size
and print every key rectangle. Useful for checking that a hand-written
document tiles the surface the way you expect.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "surface %gx%g, %d rows, %d keys\n",
			reg.Width, reg.Height, reg.Rows, len(reg.Keys))

		for _, warning := range reg.Warnings {
			fmt.Fprintf(out, "warning: %s\n", warning)
		}

		for _, key := range reg.Keys {
			fmt.Fprintf(out, "row %d col %2d  %-12q x=%7.2f y=%7.2f w=%7.2f h=%7.2f\n",
				key.Row, key.Col, key.Label, key.Rect.X, key.Rect.Y, key.Rect.W, key.Rect.H)
		}

		if len(reg.Menu) > 0 {
			fmt.Fprintf(out, "menu: %d entries\n", len(reg.Menu))

			for _, entry := range reg.Menu {
				fmt.Fprintf(out, "  %-12q -> %s\n", entry.Label, entry.Action)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&layoutFile, "layout", "l", "layout.json",
		"Path to the JSON layout document")

	inspectCmd.Flags().Float64Var(&surfaceWidth, "width", 1280,
		"Keyboard surface width in pixels")

	inspectCmd.Flags().Float64Var(&surfaceHeight, "height", 430,
		"Keyboard surface height in pixels")
}
