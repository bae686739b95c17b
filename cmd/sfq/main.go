// Command sfq authenticates against a Salesforce org and runs queries or
// describes from the command line, streaming results as JSON lines.
//
// Credentials are read from the environment (or a .env file):
// SF_LOGIN_URL, SF_CLIENT_ID, SF_CLIENT_SECRET, SF_USERNAME, SF_PASSWORD,
// SF_SECURITY_TOKEN.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crmkit/sforce/pkg/auth"
	"github.com/crmkit/sforce/pkg/client"
	"github.com/crmkit/sforce/pkg/logging"
	"github.com/crmkit/sforce/pkg/naming"
	"github.com/crmkit/sforce/pkg/session"
)

var (
	logLevel   string
	pretty     bool
	apiVersion string
)

func main() {
	root := &cobra.Command{
		Use:           "sfq",
		Short:         "Query and inspect a Salesforce org",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logging.Config{
				Level:  logging.LogLevel(logLevel),
				Pretty: pretty,
				Output: os.Stderr,
			})
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&pretty, "pretty-logs", false, "human-readable log output")
	root.PersistentFlags().StringVar(&apiVersion, "api-version", client.DefaultConfig().APIVersion, "REST API version")

	root.AddCommand(queryCmd(), describeCmd(), objectsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// connect authenticates and builds a client.
func connect(ctx context.Context) (*client.Client, *session.Token, error) {
	creds, err := auth.LoadCredentials()
	if err != nil {
		return nil, nil, err
	}
	tok, err := auth.New().Login(ctx, creds)
	if err != nil {
		return nil, nil, err
	}

	cfg := client.DefaultConfig()
	cfg.APIVersion = apiVersion
	c, err := client.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return c, tok, nil
}

func queryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <soql>",
		Short: "Run a SOQL query and stream records as JSON lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, tok, err := connect(ctx)
			if err != nil {
				return err
			}

			cur, err := c.Query(ctx, tok, args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			for cur.Next(ctx) {
				if err := enc.Encode(cur.Record()); err != nil {
					return err
				}
			}
			return cur.Err()
		},
	}
}

func describeCmd() *cobra.Command {
	var full bool
	cmd := &cobra.Command{
		Use:   "describe <object>",
		Short: "Print an object's field schema keyed by canonical identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, tok, err := connect(ctx)
			if err != nil {
				return err
			}

			schema, err := c.DescribeObject(ctx, tok, naming.Ident(args[0]),
				&client.DescribeOptions{Full: full})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(schema)
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "print full field descriptors")
	return cmd
}

func objectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "objects",
		Short: "List the org's object names as canonical identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, tok, err := connect(ctx)
			if err != nil {
				return err
			}

			objects, err := c.Objects(ctx, tok)
			if err != nil {
				return err
			}
			for _, o := range objects {
				fmt.Println(o)
			}
			return nil
		},
	}
}
