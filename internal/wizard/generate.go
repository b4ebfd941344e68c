package wizard

import (
	"bytes"
	"text/template"
)

// WizardAnswers holds all user responses from the wizard.
type WizardAnswers struct {
	LogDir     string
	OutputJSON string
	OutputD2   string

	Direction   string
	Theme       string
	DetailLevel string
	AutoRender  bool
	Format      string
}

const configTemplate = `# hmcscannerdraw configuration
# Documentation: https://github.com/AnthonyWong1216/hmcscannerdraw

output:
  json: {{ .OutputJSON }}
  d2: {{ .OutputD2 }}

direction: {{ .Direction }}
theme: {{ .Theme }}

sources:
  lssea:
    dir: {{ .LogDir }}
    prefix: lssea
    suffix: log

display:
  show_properties: true
  show_hardware_paths: true

render:
  detail_level: {{ .DetailLevel }}
  auto_render: {{ if .AutoRender }}true{{ else }}false{{ end }}
  format: {{ .Format }}
`

// GenerateConfig renders the YAML config from wizard answers.
func GenerateConfig(answers WizardAnswers) (string, error) {
	// Set defaults
	if answers.Direction == "" {
		answers.Direction = "down"
	}
	if answers.Theme == "" {
		answers.Theme = "default"
	}
	if answers.DetailLevel == "" {
		answers.DetailLevel = "standard"
	}
	if answers.Format == "" {
		answers.Format = "svg"
	}

	tmpl, err := template.New("config").Parse(configTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, answers); err != nil {
		return "", err
	}

	return buf.String(), nil
}
