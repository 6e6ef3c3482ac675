package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/goliatone/go-cvgen"
	"github.com/goliatone/go-cvgen/components/colors/guidedwiring"
	"github.com/goliatone/go-cvgen/pkg/guided"
	"github.com/goliatone/go-cvgen/pkg/render"
	"github.com/goliatone/go-cvgen/pkg/renderers/local"
	"github.com/goliatone/go-cvgen/pkg/renderers/remote"
	"github.com/goliatone/go-cvgen/pkg/templates"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	input := flag.String("input", "", "document YAML path")
	output := flag.String("output", "", "PDF output path (timestamped name if empty)")
	mode := flag.String("mode", "local", "render mode: local or remote")
	apiURL := flag.String("api-url", "", "render service URL for -mode remote")
	check := flag.Bool("check", false, "validate the document and exit")
	preview := flag.Bool("preview", false, "print the composed YAML instead of rendering")
	guidedMode := flag.Bool("guided", false, "build the document through interactive prompts")
	templateID := flag.String("template", "", "template preset for -guided")
	timeout := flag.Duration("timeout", 60*time.Second, "render timeout")
	flag.Parse()

	if *input != "" && *guidedMode {
		log.Fatalf("-input and -guided are mutually exclusive")
	}
	if *input == "" && !*guidedMode {
		log.Fatalf("an input document (-input) or -guided is required")
	}

	ctx := context.Background()

	client, clientName := buildClient(*mode, *apiURL, *timeout)
	gen := cvgen.NewOrchestrator(
		cvgen.WithClients(client),
		cvgen.WithDefaultClient(clientName),
	)

	req := cvgen.Request{Client: clientName}
	if *guidedMode {
		req.Session = runGuided(ctx, *templateID)
	} else {
		data, err := os.ReadFile(*input)
		if err != nil {
			log.Fatalf("read input: %v", err)
		}
		req.YAML = data
	}

	if *check {
		result := gen.Validate(req)
		if !result.Valid {
			failValidation(result.Errors)
		}
		fmt.Println("Document is valid.")
		return
	}

	if *preview {
		data, err := gen.Preview(ctx, req)
		if err != nil {
			log.Fatalf("preview: %v", err)
		}
		if *output != "" {
			if err := os.WriteFile(*output, data, 0o644); err != nil {
				log.Fatalf("write preview: %v", err)
			}
			fmt.Printf("Document written to %s\n", *output)
			return
		}
		fmt.Print(string(data))
		return
	}

	// Raw documents bypass the orchestrator's validation gate, so check them
	// here before spending a render on something the service will reject.
	if len(req.YAML) > 0 {
		if result := gen.Validate(req); !result.Valid {
			failValidation(result.Errors)
		}
	}

	slog.Info("rendering document", "mode", *mode, "timeout", timeout.String())
	result, err := gen.Generate(ctx, req)
	var verr *cvgen.ValidationError
	if errors.As(err, &verr) {
		failValidation(verr.Result.Errors)
	}
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	if !result.Success {
		fmt.Fprintf(os.Stderr, "Render failed:\n%s\n", result.Message)
		os.Exit(1)
	}

	path, err := render.SavePDF(result.PDF, *output)
	if err != nil {
		log.Fatalf("save pdf: %v", err)
	}
	fmt.Printf("PDF written to %s\n", path)
}

func buildClient(mode, apiURL string, timeout time.Duration) (render.Client, string) {
	switch mode {
	case "local":
		return local.New(local.WithTimeout(timeout)), local.Name
	case "remote":
		client, err := remote.New(apiURL, remote.WithTimeout(timeout))
		if err != nil {
			log.Fatalf("remote client: %v", err)
		}
		return client, remote.Name
	default:
		log.Fatalf("unknown mode %q (expected local or remote)", mode)
		return nil, ""
	}
}

func runGuided(ctx context.Context, templateID string) *cvgen.Session {
	catalog := templates.All()
	if templateID != "" {
		tpl, ok := templates.Lookup(templateID)
		if !ok {
			log.Fatalf("unknown template %q (available: %s)", templateID, strings.Join(templates.IDs(), ", "))
		}
		catalog = []templates.Template{tpl}
	}

	driver := guided.NewSurveyDriver()
	flow := guided.NewFlow(guided.WithDriver(driver), guided.WithCatalog(catalog))

	s := cvgen.NewSession()
	tpl, err := flow.Run(ctx, s)
	if err != nil {
		exitGuided(err, "guided flow")
	}
	if err := guidedwiring.CustomizeDesign(ctx, driver, s); err != nil {
		exitGuided(err, "design prompts")
	}

	slog.Info("session ready", "template", tpl.ID, "theme", s.Design.Theme)
	return s
}

func exitGuided(err error, stage string) {
	if errors.Is(err, guided.ErrAborted) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		os.Exit(1)
	}
	log.Fatalf("%s: %v", stage, err)
}

func failValidation(problems []string) {
	fmt.Fprintln(os.Stderr, "Validation errors:")
	for _, msg := range problems {
		fmt.Fprintf(os.Stderr, "  - %s\n", msg)
	}
	os.Exit(1)
}
