package report

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"time"

	"vcenter-healthcheck/internal/model"
)

// Report is everything the HTML renderer needs.
type Report struct {
	Host        string
	GeneratedAt time.Time
	MatchedVMs  int
	Tables      []model.RankingTable
}

type reportView struct {
	Host        string
	GeneratedAt string
	MatchedVMs  int
	Tables      []tableView
}

type tableView struct {
	Title string
	Unit  string
	Rows  []rowView
}

type rowView struct {
	Rank  int
	Name  string
	Value int32
}

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>VM Health Report - {{.Host}}</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
h1 { font-size: 1.4em; }
h2 { font-size: 1.1em; margin-top: 2em; }
p.meta { color: #666; }
table { border-collapse: collapse; min-width: 28em; }
th, td { border: 1px solid #ccc; padding: 0.35em 0.8em; text-align: left; }
th { background: #f0f0f0; }
td.num { text-align: right; }
p.empty { color: #999; font-style: italic; }
</style>
</head>
<body>
<h1>VM Health Report</h1>
<p class="meta">Endpoint: {{.Host}} | generated {{.GeneratedAt}} | {{.MatchedVMs}} powered-on machines matched</p>
{{range .Tables}}
<h2>Top machines by {{.Title}}</h2>
{{if .Rows}}
<table>
<tr><th>#</th><th>Machine</th><th>{{.Title}}{{if .Unit}} ({{.Unit}}){{end}}</th></tr>
{{range .Rows}}
<tr><td class="num">{{.Rank}}</td><td>{{.Name}}</td><td class="num">{{.Value}}</td></tr>
{{end}}
</table>
{{else}}
<p class="empty">no machines matched</p>
{{end}}
{{end}}
</body>
</html>
`

var tmpl = template.Must(template.New("report").Parse(reportTemplate))

// Render writes the report as a single self-contained HTML document.
func Render(w io.Writer, rep Report) error {
	view := reportView{
		Host:        rep.Host,
		GeneratedAt: rep.GeneratedAt.Format(time.RFC1123),
		MatchedVMs:  rep.MatchedVMs,
		Tables:      make([]tableView, 0, len(rep.Tables)),
	}
	for _, t := range rep.Tables {
		tv := tableView{
			Title: t.Metric.Label(),
			Unit:  t.Metric.Unit(),
			Rows:  make([]rowView, 0, len(t.Rows)),
		}
		for i, r := range t.Rows {
			tv.Rows = append(tv.Rows, rowView{Rank: i + 1, Name: r.Name, Value: r.Value(t.Metric)})
		}
		view.Tables = append(view.Tables, tv)
	}
	if err := tmpl.Execute(w, view); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// WriteFile renders the report to path, truncating any existing file.
func WriteFile(path string, rep Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	if err := Render(f, rep); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report file: %w", err)
	}
	return nil
}
