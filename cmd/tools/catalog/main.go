// cmd/tools/catalog/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"cloudops-workers/internal/catalog"
	"cloudops-workers/internal/common/aws"
	"cloudops-workers/pkg/registry"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	listCmd := flag.NewFlagSet("list", flag.ContinueOnError)
	describeCmd := flag.NewFlagSet("describe", flag.ContinueOnError)
	exportCmd := flag.NewFlagSet("export", flag.ContinueOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ContinueOnError)

	service := listCmd.String("service", "", "Only list operations of this service (sns, ses, ssm, rds, sts)")
	describeName := describeCmd.String("name", "", "Operation name (e.g., sns-publish)")
	exportOut := exportCmd.String("out", "configs/catalog.json", "Path of the exported catalog document")
	validateName := validateCmd.String("name", "", "Operation name (e.g., sns-publish)")
	validateConfig := validateCmd.String("config", "", "Path to a JSON invocation configuration")

	if len(args) < 1 {
		help(out)
		return fmt.Errorf("missing command")
	}

	cat := catalog.Default()

	switch args[0] {
	case "list":
		if err := listCmd.Parse(args[1:]); err != nil {
			return err
		}
		return listOperations(out, cat, *service)

	case "describe":
		if err := describeCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *describeName == "" {
			describeCmd.Usage()
			return fmt.Errorf("-name is required for describe")
		}
		d, err := cat.Lookup(*describeName)
		if err != nil {
			return err
		}
		return writeJSON(out, toActivity(d))

	case "export":
		if err := exportCmd.Parse(args[1:]); err != nil {
			return err
		}
		reg := buildRegistry(cat)
		if err := reg.Validate(); err != nil {
			return fmt.Errorf("catalog is inconsistent: %w", err)
		}
		if err := reg.Save(*exportOut); err != nil {
			return err
		}
		fmt.Fprintf(out, "Exported %d operations to %s\n", len(reg.Activities), *exportOut)
		return nil

	case "validate":
		if err := validateCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *validateName == "" || *validateConfig == "" {
			validateCmd.Usage()
			return fmt.Errorf("-name and -config are required for validate")
		}
		return validateFile(out, cat, *validateName, *validateConfig)

	case "help":
		help(out)
		return nil

	default:
		help(out)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func listOperations(out io.Writer, cat *catalog.Registry, service string) error {
	descs := cat.List()
	if service != "" {
		svc, err := aws.ParseService(service)
		if err != nil {
			return err
		}
		descs = cat.ByService(svc)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSERVICE\tACTION\tREQUIRED")
	for _, d := range descs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.Name, d.Service, d.Action, strings.Join(d.RequiredInputs(), ","))
	}
	return w.Flush()
}

func validateFile(out io.Writer, cat *catalog.Registry, name, path string) error {
	d, err := cat.Lookup(name)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	var cfg map[string]any
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("config is not a JSON object: %w", err)
	}

	result, err := catalog.ValidateInput(d, cfg)
	if err != nil {
		return err
	}
	if !result.Valid {
		for _, msg := range result.GetErrorMessages() {
			fmt.Fprintf(out, "  %s\n", msg)
		}
		return fmt.Errorf("%d validation error(s) for %s", len(result.Errors), name)
	}
	fmt.Fprintf(out, "Configuration is valid for %s.\n", name)
	return nil
}

func buildRegistry(cat *catalog.Registry) *registry.ActivityRegistry {
	reg := &registry.ActivityRegistry{
		Version:     catalogVersion,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}
	for _, d := range cat.List() {
		reg.Activities = append(reg.Activities, toActivity(d))
	}
	return reg
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func help(out io.Writer) {
	fmt.Fprintln(out, `
Usage: catalog <command> [flags]

Commands:
  list      List catalog operations
  describe  Print one operation as a catalog document entry
  export    Write the full catalog document
  validate  Check an invocation configuration against an operation's input schema
  help      Show this help message

Examples:
  catalog list -service sns
  catalog describe -name ssm-get-parameter
  catalog export -out configs/catalog.json
  catalog validate -name sns-publish -config publish.json`)
}
