package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"rag-intent-chat/internal/schema"
	schemaRepo "rag-intent-chat/internal/schema/repository/postgre"
	"rag-intent-chat/pkg/postgres"
)

func newSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Inspect the database schema documents",
	}
	cmd.AddCommand(newSchemaDescribeCmd())
	return cmd
}

func newSchemaDescribeCmd() *cobra.Command {
	var (
		tables []string
		domain string
		format string
	)

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the schema document of a set of tables",
		Example: `  chatctl schema describe --tables saleslt.customer,saleslt.address
  chatctl schema describe --domain product --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "yaml" && format != "json" {
				return fmt.Errorf("--format must be yaml or json, got %q", format)
			}

			cfg, l, err := loadConfig()
			if err != nil {
				return err
			}

			if domain != "" {
				if len(tables) > 0 {
					return fmt.Errorf("--tables and --domain are mutually exclusive")
				}
				for _, d := range cfg.Domains {
					if d.Label == domain {
						tables = d.Tables
					}
				}
				if len(tables) == 0 {
					return fmt.Errorf("unknown domain %q", domain)
				}
			}
			if len(tables) == 0 {
				return fmt.Errorf("--tables or --domain is required")
			}

			ctx := cmd.Context()
			db, err := postgres.Open(ctx, cfg.Postgres.DSN, postgres.PoolOptions{MaxOpenConns: 2})
			if err != nil {
				return fmt.Errorf("connect postgres: %w", err)
			}
			defer db.Close()

			repo := schemaRepo.New(db, l, schemaRepo.Options{DatabaseName: cfg.Postgres.DatabaseName})
			doc, err := repo.Describe(ctx, tables)
			if err != nil {
				return err
			}
			return writeDocument(cmd.OutOrStdout(), doc, format)
		},
	}

	cmd.Flags().StringSliceVar(&tables, "tables", nil, "comma-separated schema.table identifiers")
	cmd.Flags().StringVar(&domain, "domain", "", "use the tables of a configured domain")
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")
	return cmd
}

func writeDocument(w io.Writer, doc schema.Document, format string) error {
	var (
		out string
		err error
	)
	if format == "json" {
		out, err = doc.JSON()
	} else {
		out, err = doc.YAML()
	}
	if err != nil {
		return err
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err = io.WriteString(w, out)
	return err
}
