package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/fatih/color"
)

var (
	headerStyle  = color.New(color.FgGreen, color.Bold)
	failStyle    = color.New(color.FgRed, color.Bold)
	labelStyle   = color.New(color.FgHiBlue, color.Bold)
	ruleStyle    = color.New(color.FgYellow, color.Bold)
	valueStyle   = color.New(color.FgCyan)
	messageStyle = color.New(color.FgWhite)
)

// Report is the outcome of a shrink run, with values already rendered.
type Report struct {
	Source     string
	Original   string
	Minimal    string
	Iterations int
	// Runs counts predicate evaluations, the original input included.
	Runs    int
	Elapsed time.Duration
	Steps   []StepLine
}

// StepLine is one accepted step as shown in verbose reports.
type StepLine struct {
	Iteration int
	Rule      string
	Value     string
}

const reportTemplate = `{{header .Source .Iterations}}
{{label "original"}}{{value .Original}}
{{label "minimal"}}{{value .Minimal}}
{{range .Steps}}{{step .}}
{{end}}{{summary .Iterations .Runs .Elapsed}}
`

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"header":  header,
	"label":   label,
	"value":   value,
	"step":    step,
	"summary": summary,
}).Parse(reportTemplate))

// GenerateReport renders r for a terminal.
func GenerateReport(r Report) string {
	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, r); err != nil {
		return fmt.Sprintf("Error formatting report: %v", err)
	}
	return buf.String()
}

// FormatCandidates renders candidates one per line, numbered from 1.
func FormatCandidates(candidates []string) string {
	width := len(fmt.Sprint(len(candidates)))
	var builder strings.Builder
	for i, c := range candidates {
		builder.WriteString(labelStyle.Sprintf("%*d | ", width, i+1))
		builder.WriteString(valueStyle.Sprint(c))
		builder.WriteString("\n")
	}
	return builder.String()
}

// utils functions used in the text template

func header(source string, iterations int) string {
	if source == "" {
		source = "<stdin>"
	}
	if iterations == 0 {
		return failStyle.Sprint("already minimal: ") + messageStyle.Sprint(source)
	}
	return headerStyle.Sprint("shrunk: ") + messageStyle.Sprint(source)
}

func label(name string) string {
	return labelStyle.Sprintf("%-9s| ", name)
}

func value(v string) string {
	return valueStyle.Sprint(v)
}

func step(s StepLine) string {
	return labelStyle.Sprintf("%8d | ", s.Iteration) + ruleStyle.Sprintf("%-8s ", s.Rule) + valueStyle.Sprint(s.Value)
}

func summary(iterations, runs int, elapsed time.Duration) string {
	return messageStyle.Sprintf("%d steps, %d predicate runs in %s", iterations, runs, elapsed.Round(time.Millisecond))
}
