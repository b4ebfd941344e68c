package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// Run executes the interactive wizard and returns the user's answers.
func Run(detection DetectionResult) (*WizardAnswers, error) {
	answers := &WizardAnswers{
		LogDir:      "inputfile",
		OutputJSON:  "network_config.json",
		OutputD2:    "network_config.d2",
		Direction:   "down",
		Theme:       "default",
		DetailLevel: "standard",
		Format:      "svg",
	}

	// Build detection summary
	var hints []string
	if detection.D2Available {
		hints = append(hints, "d2 renderer detected")
	}
	if detection.LogDir != "" {
		hints = append(hints, fmt.Sprintf("lssea logs found: %d file(s) in %s", len(detection.LogFiles), detection.LogDir))
		answers.LogDir = detection.LogDir
	}

	desc := "Point the extractor at the directory holding your lssea*log captures."
	if len(hints) > 0 {
		desc += "\n\nAuto-detected:\n  " + strings.Join(hints, "\n  ")
	}

	sourceForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("lssea log directory").
				Description(desc).
				Value(&answers.LogDir),
			huh.NewInput().
				Title("JSON output path").
				Description("Where the extracted model is persisted").
				Value(&answers.OutputJSON),
			huh.NewInput().
				Title("D2 output path").
				Value(&answers.OutputD2),
		),
	)

	if err := sourceForm.Run(); err != nil {
		return nil, err
	}

	displayForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Diagram direction").
				Options(
					huh.NewOption("Down (vertical)", "down"),
					huh.NewOption("Right (horizontal)", "right"),
				).
				Value(&answers.Direction),
			huh.NewSelect[string]().
				Title("Detail level").
				Options(
					huh.NewOption("Minimal (hosts and SEAs only)", "minimal"),
					huh.NewOption("Standard (adapter groups with hardware paths)", "standard"),
					huh.NewOption("Detailed (everything including SEA properties)", "detailed"),
				).
				Value(&answers.DetailLevel),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(
					huh.NewOption("Default", "default"),
					huh.NewOption("Dark", "dark"),
					huh.NewOption("Monochrome", "monochrome"),
					huh.NewOption("Ocean", "ocean"),
				).
				Value(&answers.Theme),
			huh.NewConfirm().
				Title("Auto-render to SVG/PNG after generating D2?").
				Description("Requires the d2 binary in PATH").
				Value(&answers.AutoRender),
		),
	)

	if err := displayForm.Run(); err != nil {
		return nil, err
	}

	return answers, nil
}
