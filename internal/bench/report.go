package bench

import (
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/midbel/textwrap"
)

const report = `
{{- range . -}}
{{printf "%-8s %-6s" .Strategy .Contract}} total sum is {{.Total}}  (in [{{micros .Times}}] µs)
{{end -}}
`

const summary = `
{{repeat "-" 72}}
{{wrap (printf "%d runs of %d strategies over %d bytes; every strategy agreed on both contracts" .Runs .Count .Size)}}
`

type Summary struct {
	Runs  int
	Count int
	Size  int
}

func Render(w io.Writer, results []Result) error {
	return renderTemplate(w, report, results)
}

func RenderSummary(w io.Writer, s Summary) error {
	return renderTemplate(w, summary, s)
}

func renderTemplate(w io.Writer, name string, ctx interface{}) error {
	t, err := template.New("template").Funcs(funcmap).Parse(name)
	if err != nil {
		return err
	}
	return t.Execute(w, ctx)
}

var funcmap = template.FuncMap{
	"repeat": strings.Repeat,
	"wrap":   textwrap.Wrap,
	"micros": micros,
}

func micros(times []time.Duration) string {
	var list []string
	for _, t := range times {
		list = append(list, fmt.Sprintf("%.1f", float64(t.Nanoseconds())/1000))
	}
	return strings.Join(list, ", ")
}
