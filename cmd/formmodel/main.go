package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	formmodel "github.com/kaid/stupid-form-model"
	pkgdefinition "github.com/kaid/stupid-form-model/pkg/definition"
	"github.com/kaid/stupid-form-model/pkg/model"
	pkgopenapi "github.com/kaid/stupid-form-model/pkg/openapi"
	"github.com/kaid/stupid-form-model/pkg/prompt"
	"github.com/kaid/stupid-form-model/pkg/report"
	"gopkg.in/yaml.v3"
)

func main() {
	definitionSrc := flag.String("definition", "", "definition document path or URL")
	openapiDoc := flag.String("openapi", "", "OpenAPI document path")
	operation := flag.String("operation", "", "operation ID to adapt (with -openapi)")
	valuesPath := flag.String("values", "", "YAML file with values to preload")
	interactive := flag.Bool("interactive", false, "fill the form at the terminal")
	validateAll := flag.Bool("validate-all", false, "collect every rejection per field")
	format := flag.String("format", "text", "report format: text or json")
	output := flag.String("output", "", "output file (stdout if empty)")
	verbose := flag.Bool("verbose", false, "log progress to stderr")
	flag.Parse()

	ctx := context.Background()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	def, title, err := resolveForm(ctx, *definitionSrc, *openapiDoc, *operation, logger)
	if err != nil {
		log.Fatalf("Failed to resolve form: %v", err)
	}

	var buildOptions []model.Option
	if *validateAll {
		buildOptions = append(buildOptions, model.WithValidateAllRules(true))
	}
	form, err := formmodel.Build(def, buildOptions...)
	if err != nil {
		log.Fatalf("Failed to build form: %v", err)
	}

	if *valuesPath != "" {
		values, err := loadValues(*valuesPath)
		if err != nil {
			log.Fatalf("Failed to load values: %v", err)
		}
		form.SetValue(values)
	}

	var result model.Result
	if *interactive {
		result, err = runInteractive(ctx, form, logger)
		if errors.Is(err, prompt.ErrAborted) {
			fmt.Fprintln(os.Stderr, "aborted")
			os.Exit(1)
		}
		if err != nil {
			log.Fatalf("Interactive session failed: %v", err)
		}
	} else {
		result = form.Validate()
	}

	rep := report.New(title, form, result)
	payload, err := renderReport(rep, *format)
	if err != nil {
		log.Fatalf("Failed to render report: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Report written to %s\n", *output)
	} else {
		if len(payload) > 0 && payload[len(payload)-1] != '\n' {
			payload = append(payload, '\n')
		}
		if _, err := os.Stdout.Write(payload); err != nil {
			log.Fatalf("Failed to write report: %v", err)
		}
	}

	if !result.OK() {
		os.Exit(1)
	}
}

func resolveForm(ctx context.Context, definitionSrc, openapiPath, operationID string, logger *slog.Logger) (model.GroupDef, string, error) {
	switch {
	case definitionSrc != "" && openapiPath != "":
		return model.GroupDef{}, "", errors.New("use either -definition or -openapi, not both")
	case definitionSrc != "":
		src := parseSource(definitionSrc)
		if src == nil {
			return model.GroupDef{}, "", fmt.Errorf("invalid source: %q", definitionSrc)
		}
		def, err := formmodel.LoadDefinition(ctx, src,
			pkgdefinition.WithHTTPFallback(30*time.Second),
			pkgdefinition.WithLogger(logger),
		)
		if err != nil {
			return model.GroupDef{}, "", err
		}
		return def.Root, def.Title, nil
	case openapiPath != "":
		if strings.TrimSpace(operationID) == "" {
			return model.GroupDef{}, "", errors.New("-operation is required with -openapi")
		}
		def, err := pkgopenapi.LoadFormDef(ctx, openapiPath, operationID)
		if err != nil {
			return model.GroupDef{}, "", err
		}
		return def, operationID, nil
	default:
		return model.GroupDef{}, "", errors.New("provide -definition or -openapi")
	}
}

func parseSource(raw string) pkgdefinition.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return pkgdefinition.SourceFromURL(path)
	}
	return pkgdefinition.SourceFromFile(path)
}

func loadValues(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse values %s: %w", path, err)
	}
	return values, nil
}

// runInteractive fills the form once and offers another round while
// rejections remain.
func runInteractive(ctx context.Context, form *model.Group, logger *slog.Logger) (model.Result, error) {
	driver := prompt.NewSurveyDriver(os.Stdout)
	session := prompt.NewSession(
		prompt.WithDriver(driver),
		prompt.WithLogger(logger),
	)

	for {
		result, err := session.Fill(ctx, form)
		if err != nil {
			return model.Result{}, err
		}
		if result.OK() {
			return result, nil
		}
		retry, err := driver.Confirm(prompt.ConfirmPrompt{
			Message: "存在未通过的字段，重新填写？",
			Default: false,
		})
		if err != nil {
			return model.Result{}, err
		}
		if !retry {
			return result, nil
		}
	}
}

func renderReport(rep *report.Report, format string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		engine, err := report.NewEngine()
		if err != nil {
			return nil, err
		}
		rendered, err := rep.RenderText(engine)
		if err != nil {
			return nil, err
		}
		return []byte(rendered), nil
	case "json":
		return rep.JSON()
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
