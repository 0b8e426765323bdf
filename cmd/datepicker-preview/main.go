// Command datepicker-preview renders a standalone preview page for the
// date-picker widget. Field parameters are collected interactively; style
// variable overrides can be loaded from a YAML file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	datepicker "github.com/goliatone/go-datepicker"
	"github.com/goliatone/go-datepicker/pkg/dates"
	"github.com/goliatone/go-datepicker/pkg/styles"
)

func main() {
	output := flag.String("output", "", "output file (stdout if empty)")
	varsFile := flag.String("vars", "", "YAML file with style variable overrides")
	flag.Parse()

	cfg, err := promptConfig()
	if err != nil {
		log.Fatalf("collect widget parameters: %v", err)
	}

	if *varsFile != "" {
		dir, name := filepath.Split(*varsFile)
		if dir == "" {
			dir = "."
		}
		vars, err := styles.LoadVariables(os.DirFS(dir), name)
		if err != nil {
			log.Fatalf("load style variables: %v", err)
		}
		cfg.StyleVariables = vars
	}

	widget, err := datepicker.New()
	if err != nil {
		log.Fatalf("configure widget: %v", err)
	}

	fragment, err := widget.Render(context.Background(), cfg)
	if err != nil {
		log.Fatalf("render widget: %v", err)
	}

	page := previewPage(fragment)
	if *output != "" {
		if err := os.WriteFile(*output, []byte(page), 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Preview written to %s\n", *output)
		return
	}
	fmt.Println(page)
}

func promptConfig() (datepicker.InputConfig, error) {
	cfg := datepicker.InputConfig{}
	var value, min, max string

	prompts := []struct {
		message  string
		help     string
		def      string
		target   *string
		validate survey.Validator
	}{
		{message: "Field id", def: "date", target: &cfg.ID, validate: survey.Required},
		{message: "Label", def: "Date", target: &cfg.Label},
		{message: "Initial value", help: "Canonical YYYY-MM-DD, empty for none", target: &value, validate: dateValidator},
		{message: "Minimum date", help: "Canonical YYYY-MM-DD, empty for none", target: &min, validate: dateValidator},
		{message: "Maximum date", help: "Canonical YYYY-MM-DD, empty for none", target: &max, validate: dateValidator},
		{message: "Display format", def: "yyyy-mm-dd", target: &cfg.Format},
		{message: "Language", def: "en", target: &cfg.Language},
	}
	for _, p := range prompts {
		prompt := &survey.Input{Message: p.message, Help: p.help, Default: p.def}
		var opts []survey.AskOpt
		if p.validate != nil {
			opts = append(opts, survey.WithValidator(p.validate))
		}
		if err := survey.AskOne(prompt, p.target, opts...); err != nil {
			return datepicker.InputConfig{}, err
		}
	}

	if err := survey.AskOne(&survey.Confirm{Message: "Close on select?", Default: true}, &cfg.Autoclose); err != nil {
		return datepicker.InputConfig{}, err
	}

	// Empty answers stay absent rather than serialising as empty strings.
	if strings.TrimSpace(value) != "" {
		cfg.Value = strings.TrimSpace(value)
	}
	if strings.TrimSpace(min) != "" {
		cfg.Min = strings.TrimSpace(min)
	}
	if strings.TrimSpace(max) != "" {
		cfg.Max = strings.TrimSpace(max)
	}
	return cfg, nil
}

func dateValidator(ans any) error {
	value, ok := ans.(string)
	if !ok || strings.TrimSpace(value) == "" {
		return nil
	}
	if _, err := dates.ParseString(value); err != nil {
		return fmt.Errorf("expected %s", dates.Layout)
	}
	return nil
}

func previewPage(fragment datepicker.Fragment) string {
	var b strings.Builder
	b.WriteString("<!doctype html>\n<html>\n<head>\n")
	for _, href := range fragment.Bundle.Stylesheets {
		fmt.Fprintf(&b, "    <link rel=\"stylesheet\" href=%q>\n", href)
	}
	for _, script := range fragment.Bundle.Scripts {
		if script.Src == "" {
			continue
		}
		if script.Defer {
			fmt.Fprintf(&b, "    <script src=%q defer></script>\n", script.Src)
		} else {
			fmt.Fprintf(&b, "    <script src=%q></script>\n", script.Src)
		}
	}
	b.WriteString("</head>\n<body>\n")
	b.WriteString(fragment.HTML)
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
