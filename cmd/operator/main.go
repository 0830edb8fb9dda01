// Command operator migrates and inspects the storage behind the Oriona service.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
)

const version = "0.1.0"

var errUsage = errors.New("usage")

type command struct {
	name    string
	summary string
	example []string
	run     func(ctx context.Context, out io.Writer, args []string) error
}

func commands() []command {
	return []command{
		{
			name:    "migrate",
			summary: "Create the pgvector extension and the profile, engagement and knowledge tables",
			example: []string{"migrate", "migrate --dry-run"},
			run:     runMigrate,
		},
		{
			name:    "schema",
			summary: "Apply the SQL files under migrations/ in name order",
			example: []string{"schema", "schema --file 001_init.sql"},
			run:     runSchema,
		},
		{
			name:    "validate",
			summary: "Report the ORIONA environment and check the database",
			example: []string{"validate", "validate --offline"},
			run:     runValidate,
		},
		{
			name:    "version",
			summary: "Print the operator version",
			run: func(_ context.Context, out io.Writer, _ []string) error {
				_, err := fmt.Fprintf(out, "oriona operator v%s\n", version)
				return err
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := dispatch(ctx, os.Stdout, os.Args[1:])
	stop()
	if err == nil {
		return
	}
	if !errors.Is(err, errUsage) {
		fmt.Fprintf(os.Stderr, "operator: %v\n", err)
	}
	os.Exit(1)
}

func dispatch(ctx context.Context, out io.Writer, args []string) error {
	if len(args) == 0 {
		usage(out)
		return errUsage
	}
	name := args[0]
	switch name {
	case "help", "-h", "--help":
		usage(out)
		return nil
	}
	for _, c := range commands() {
		if c.name == name {
			return c.run(ctx, out, args[1:])
		}
	}
	fmt.Fprintf(out, "unknown command %q\n\n", name)
	usage(out)
	return errUsage
}

func usage(out io.Writer) {
	fmt.Fprintln(out, "Operator tooling for the Oriona dialogue engine.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage: operator <command> [flags]")
	fmt.Fprintln(out)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	var examples []string
	for _, c := range commands() {
		fmt.Fprintf(tw, "  %s\t%s\n", c.name, c.summary)
		for _, e := range c.example {
			examples = append(examples, "  operator "+e)
		}
	}
	fmt.Fprintf(tw, "  %s\t%s\n", "help", "Show this text")
	_ = tw.Flush()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Examples:")
	fmt.Fprintln(out, strings.Join(examples, "\n"))
}
