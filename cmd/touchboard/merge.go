package touchboard

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jethrobull/touchboard/db"
)

// mergeCmd represents the merge command.
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge keystroke stores into one",
	Long:  `Given several keystroke stores, create a new one which is just a union of the inputs`,
	RunE: func(_ *cobra.Command, _ []string) error {
		inputs := make([]*db.SQLiteStorage, len(mergeInputs))

		for i, fn := range mergeInputs {
			store, err := db.ConnectDB(fn)
			if err != nil {
				return err
			}
			defer store.Close()

			inputs[i] = store
		}

		if _, err := os.Stat(storagePath); err == nil {
			return fmt.Errorf("output file %s already exists", storagePath)
		}

		output, err := db.ConnectDB(storagePath)
		if err != nil {
			return err
		}
		defer output.Close()

		return db.Merge(inputs, output)
	},
}

var mergeInputs []string

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringSliceVarP(
		&mergeInputs,
		"file",
		"f",
		[]string{},
		"List of stores to merge data from",
	)

	mergeCmd.Flags().StringVarP(
		&storagePath,
		"out",
		"o",
		"./merged.sqlite",
		"Output path for the merged store")
}
