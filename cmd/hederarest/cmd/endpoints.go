package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/client"
)

type endpointRow struct {
	Group     string `json:"group"`
	Operation string `json:"operation"`
	Method    string `json:"method"`
	API       string `json:"api"`
	Path      string `json:"path"`
	Params    string `json:"params"`
}

func newEndpointsCommand(a *app) *cobra.Command {
	var group string
	cmd := &cobra.Command{
		Use:   "endpoints",
		Short: "List every operation and the REST path it calls",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := client.ValidateCatalogue(); err != nil {
				return err
			}

			rows := []endpointRow{}
			for _, entry := range client.Catalogue() {
				if group != "" && entry.Group != group {
					continue
				}
				rows = append(rows, endpointRow{
					Group:     entry.Group,
					Operation: entry.Descriptor.Operation,
					Method:    entry.Descriptor.Method,
					API:       entry.Descriptor.API.String(),
					Path:      entry.PathTemplate(),
					Params:    entry.Descriptor.Params.String(),
				})
			}
			if len(rows) == 0 {
				return fmt.Errorf("unknown group %q", group)
			}

			f, err := parseFormat(a.viper.GetString(keyOutput))
			if err != nil {
				return err
			}
			if f != formatTable {
				return render(a.out, f, rows)
			}

			cells := make([][]string, 0, len(rows))
			for _, row := range rows {
				cells = append(cells, []string{row.Group, row.Operation, row.Method, row.API, row.Path, row.Params})
			}
			return writeTable(a.out, []string{"group", "operation", "method", "api", "path", "params"}, cells)
		},
	}
	cmd.Flags().StringVar(&group, "group", "", "only list one group (status, validators, accounts, transactions, hcs, hts)")
	return cmd
}
