// Package generator renders the storage functions, HTTP resource, test
// scaffolding, browser module and Go client for one table description.
package generator

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"

	"github.com/kalbasit/sql2fnc/definition"
)

//go:embed templates
var templateFS embed.FS

var templates = template.Must(template.New("sql2fnc").Funcs(template.FuncMap{
	"pascal":      pascal,
	"camel":       camel,
	"dash":        dash,
	"literal":     pq.QuoteLiteral,
	"tsLiteral":   tsLiteral,
	"sqlValue":    sqlValue,
	"tsType":      tsType,
	"testValue":   testValue,
	"formDefault": formDefault,
	"rest":        rest,
	"lower":       strings.ToLower,
}).ParseFS(templateFS, "templates/*/*.tmpl"))

// Run writes every artifact for table below opts.OutputDir. Emitters run in
// a fixed order and the first error stops the run.
func Run(opts Options, table *definition.Table) error {
	if table == nil || len(table.Fields) == 0 {
		return ErrNoTable
	}

	v := newView(opts, table)

	if v.Sequence == "" {
		log.WithField("table", table.QualifiedName()).
			Warn("no nextval() default found, save function falls back to pg_get_serial_sequence")
	}

	for _, e := range emitters(opts) {
		log.WithField("emitter", e.name).Debug("running emitter")

		if err := e.emit(opts.OutputDir, v); err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}
	}

	return nil
}

func newView(opts Options, table *definition.Table) *view {
	return &view{
		Schema:          table.Schema,
		Table:           table.Name,
		Sequence:        table.Sequence,
		Fields:          table.Fields,
		Key:             table.Key(),
		Search:          table.SearchField(),
		Pascal:          pascal(table.Name),
		Camel:           camel(table.Name),
		Dash:            dash(table.Name),
		Package:         packageName(table.Name),
		Model:           modelName(table.Name),
		Title:           listTitle(table.Name),
		Owner:           opts.Owner,
		Grantee:         opts.Grantee,
		DatePlaceholder: opts.DatePlaceholder,
	}
}

func emitters(opts Options) []emitter {
	list := []emitter{sqlEmitter(), apiEmitter(), testsEmitter(), wwwEmitter()}
	if opts.GoClient {
		list = append(list, goEmitter())
	}

	return list
}

func (e emitter) emit(outDir string, v *view) error {
	for _, a := range e.artifacts {
		content, err := a.content(v)
		if err != nil {
			return err
		}

		path := filepath.Join(outDir, a.path(v))

		if strings.HasSuffix(path, ".go") {
			err = writeGoFile(path, content)
		} else {
			err = writeFile(path, content)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (a artifact) content(v *view) ([]byte, error) {
	if a.render != nil {
		return a.render(v)
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, a.template, v); err != nil {
		return nil, errRender(a.template, err)
	}

	return buf.Bytes(), nil
}

func fixed(parts ...string) func(*view) string {
	return func(*view) string { return filepath.Join(parts...) }
}

func sqlEmitter() emitter {
	fnc := func(op string) func(*view) string {
		return func(v *view) string {
			return filepath.Join(dirSQL, fmt.Sprintf("fnc_%s.%s_%s.sql", v.Schema, v.Table, op))
		}
	}

	return emitter{
		name: "sql",
		artifacts: []artifact{
			{template: "fnc_get.sql.tmpl", path: fnc("get")},
			{template: "fnc_delete.sql.tmpl", path: fnc("delete")},
			{template: "fnc_list.sql.tmpl", path: fnc("list")},
			{template: "fnc_save.sql.tmpl", path: fnc("save")},
		},
	}
}

func apiEmitter() emitter {
	in := func(name func(v *view) string) func(*view) string {
		return func(v *view) string { return filepath.Join(dirAPI, v.Dash, name(v)) }
	}

	return emitter{
		name: "api",
		artifacts: []artifact{
			{template: "dto.ts.tmpl", path: in(func(v *view) string { return filepath.Join("dto", v.Pascal+".dto.ts") })},
			{template: "list_filter_request.dto.ts.tmpl", path: in(func(*view) string { return filepath.Join("dto", "ListFilterRequest.dto.ts") })},
			{template: "list_response.dto.ts.tmpl", path: in(func(v *view) string { return filepath.Join("dto", v.Pascal+"ListResponse.dto.ts") })},
			{template: "controller.ts.tmpl", path: in(func(v *view) string { return v.Dash + ".controller.ts" })},
			{template: "api_service.ts.tmpl", path: in(func(v *view) string { return v.Dash + ".service.ts" })},
			{template: "api_module.ts.tmpl", path: in(func(v *view) string { return v.Dash + ".module.ts" })},
		},
	}
}

func testsEmitter() emitter {
	return emitter{
		name: "tests",
		artifacts: []artifact{
			{template: "e2e_spec.ts.tmpl", path: func(v *view) string { return filepath.Join(dirTests, v.Dash+".e2e-spec.ts") }},
			{template: "e2e_data.ts.tmpl", path: func(v *view) string { return filepath.Join(dirTests, "data", v.Dash+".data.ts") }},
		},
	}
}

func wwwEmitter() emitter {
	in := func(name func(v *view) string) func(*view) string {
		return func(v *view) string { return filepath.Join(dirWWW, v.Dash, name(v)) }
	}
	named := func(suffix string) func(*view) string {
		return in(func(v *view) string { return v.Dash + suffix })
	}

	return emitter{
		name: "www",
		artifacts: []artifact{
			{template: "feature_module.ts.tmpl", path: named(".module.ts")},
			{template: "routing_module.ts.tmpl", path: named("-routing.module.ts")},
			{template: "www_service.ts.tmpl", path: named(".service.ts")},
			{template: "datasource.ts.tmpl", path: named(".datasource.ts")},
			{template: "edit_component.ts.tmpl", path: in(fixed("edit", "edit.component.ts"))},
			{template: "edit_component.scss.tmpl", path: in(fixed("edit", "edit.component.scss"))},
			{template: "edit_component.html.tmpl", path: in(fixed("edit", "edit.component.html"))},
			{template: "list_component.ts.tmpl", path: in(fixed("list", "list.component.ts"))},
			{template: "list_component.scss.tmpl", path: in(fixed("list", "list.component.scss"))},
			{template: "list_component.html.tmpl", path: in(fixed("list", "list.component.html"))},
		},
	}
}

func goEmitter() emitter {
	in := func(name string) func(*view) string {
		return func(v *view) string { return filepath.Join(dirGo, v.Package, name) }
	}

	return emitter{
		name: "go",
		artifacts: []artifact{
			{path: in("model.go"), render: renderGoModel},
			{template: "store.go.tmpl", path: in("store.go")},
		},
	}
}
