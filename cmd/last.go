package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/hakambing/bikebuddy-bot/internal/adapters/render/record"
	"github.com/hakambing/bikebuddy-bot/internal/application"
	"github.com/hakambing/bikebuddy-bot/internal/domain"
	"github.com/spf13/cobra"
)

func newLastCmd(app *app) *cobra.Command {
	var maintenanceType string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "last",
		Short: "Show the most recent maintenance record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.recordStore()
			if err != nil {
				return err
			}

			filter := application.NormalizeFilter(maintenanceType)
			found, err := application.NewRecordService(store).ViewLast(cmd.Context(), filter)

			var records []domain.Record
			switch {
			case err == nil:
				records = []domain.Record{found}
			case application.IsNotFound(err):
				if jsonOutput {
					return fmt.Errorf("no records found for %s", filterName(filter))
				}
			default:
				return err
			}

			if jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(recordJSON(found))
			}

			rendered, err := app.renderRecords(records, record.RenderOptions{
				Title:  "Last maintenance",
				Filter: filter,
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&maintenanceType, "type", "", "Maintenance type to match, case-insensitive (default: any)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print JSON output")

	return cmd
}

func filterName(filter string) string {
	if filter == "" {
		return domain.LatestFilter
	}
	return filter
}

func recordJSON(r domain.Record) map[string]string {
	out := map[string]string{"id": string(r.ID)}
	for _, field := range domain.Fields {
		out[string(field)] = r.Value(field)
	}
	return out
}
