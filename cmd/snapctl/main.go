// snapctl inspects and maintains workshop snapshot files without running
// the API server.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/tallercr/workshop-api/internal/config"
	"github.com/tallercr/workshop-api/internal/domain"
	"github.com/tallercr/workshop-api/internal/service"
	"github.com/tallercr/workshop-api/internal/snapshot"
	"github.com/tallercr/workshop-api/internal/storage"
	"github.com/tallercr/workshop-api/internal/store"
	"go.uber.org/zap"
)

var snapshotFile string

func main() {
	root := &cobra.Command{
		Use:           "snapctl",
		Short:         "Inspect and maintain workshop snapshot files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&snapshotFile, "file", "f", "./data/snapshot.json", "snapshot file path")

	root.AddCommand(inspectCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(reportCmd())
	root.AddCommand(statsCmd())
	root.AddCommand(seedCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadStore reads the snapshot file into a fresh store
func loadStore(ctx context.Context) (*store.Store, error) {
	backend, err := storage.NewStorage(&config.SnapshotConfig{
		StorageMode: "local",
		Path:        snapshotFile,
	})
	if err != nil {
		return nil, err
	}

	raw, err := backend.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", snapshotFile, err)
	}

	doc, err := snapshot.Decode(raw)
	if err != nil {
		return nil, err
	}

	st := store.New()
	st.Replace(doc)
	return st, nil
}

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Print a summary of the snapshot contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadStore(cmd.Context())
			if err != nil {
				return err
			}

			doc := st.Export()
			fmt.Printf("Snapshot:   %s\n", snapshotFile)
			fmt.Printf("Last saved: %s\n", doc.LastSaved.Format("2006-01-02 15:04:05 MST"))
			fmt.Printf("Clients:    %d\n", len(doc.Clients))
			fmt.Printf("Jobs:       %d\n", len(doc.Jobs))
			fmt.Printf("Events:     %d\n", len(doc.Events))
			fmt.Printf("Materials:  %d\n", len(doc.Filters.Materials))
			fmt.Printf("Companies:  %d\n", len(doc.Filters.Companies))
			fmt.Printf("Reports:    %d\n", len(doc.Reports))
			return nil
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the snapshot file parses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadStore(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("OK")
			return nil
		},
	}
}

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <clientsByStatus|jobsByMaterial|monthlyIncome|profits>",
		Short: "Compute a report from the snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportType := domain.ReportType(args[0])
			if !reportType.IsValid() {
				return fmt.Errorf("unknown report type %q", args[0])
			}

			st, err := loadStore(cmd.Context())
			if err != nil {
				return err
			}

			svc := service.NewReportService(st, nil, zap.NewNop())
			result, err := svc.Get(cmd.Context(), reportType)
			if err != nil {
				return err
			}

			fmt.Println(result.Title)
			keys := make([]string, 0, len(result.Data))
			for k := range result.Data {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Printf("  %-24s %12.2f\n", k, result.Data[k])
			}
			fmt.Printf("  %-24s %12.2f\n", "Total", result.Total)
			return nil
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the aggregate business figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadStore(cmd.Context())
			if err != nil {
				return err
			}

			svc := service.NewReportService(st, nil, zap.NewNop())
			stats, err := svc.Statistics(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Clients:        %d (active %d)\n", stats.TotalClients, stats.ActiveClients)
			fmt.Printf("Jobs:           %d (completed %d)\n", stats.TotalJobs, stats.CompletedJobs)
			fmt.Printf("Income:         %.2f\n", stats.TotalIncome)
			fmt.Printf("Cost:           %.2f\n", stats.TotalCost)
			fmt.Printf("Profit:         %.2f (%.1f%%)\n", stats.TotalProfit, stats.ProfitMargin)
			fmt.Printf("Average income: %.2f\n", stats.AverageIncome)
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write a fresh snapshot with the default catalogs and sample events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := storage.NewStorage(&config.SnapshotConfig{
				StorageMode: "local",
				Path:        snapshotFile,
			})
			if err != nil {
				return err
			}

			exists, err := backend.Exists(cmd.Context())
			if err != nil {
				return err
			}
			if exists && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", snapshotFile)
			}

			st := store.New()
			st.Seed()

			persister := snapshot.NewPersister(st, backend, zap.NewNop())
			if err := persister.Save(cmd.Context()); err != nil {
				return err
			}

			fmt.Printf("Seeded %s\n", snapshotFile)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing snapshot")
	return cmd
}
