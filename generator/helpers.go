package generator

import (
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-openapi/inflect"
	"github.com/jinzhu/inflection"
	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
	"mvdan.cc/gofumpt/format"

	"github.com/kalbasit/sql2fnc/definition"
)

func pascal(s string) string { return inflect.Camelize(s) }

func camel(s string) string { return inflect.CamelizeDownFirst(s) }

func dash(s string) string { return inflect.Dasherize(s) }

// goName is pascal with Go initialisms for id columns: user_id -> UserID.
func goName(s string) string {
	name := pascal(s)
	if name == "Id" || (strings.HasSuffix(name, "Id") && strings.HasSuffix(strings.ToLower(s), "_id")) {
		name = strings.TrimSuffix(name, "Id") + "ID"
	}

	return name
}

// packageName lowercases and drops separators; invalid identifiers get a
// prefix so the result always compiles.
func packageName(table string) string {
	pkg := strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(table))
	if !token.IsIdentifier(pkg) {
		pkg = "db" + pkg
	}

	return pkg
}

// storeIdentifiers are the package-level names declared by the Go client
// store.
var storeIdentifiers = map[string]bool{
	"DefaultListRequest": true,
	"ErrNotFound":        true,
	"Error":              true,
	"Filter":             true,
	"ListRequest":        true,
	"ListResponse":       true,
	"NewStore":           true,
	"Querier":            true,
	"Store":              true,
}

// modelName is the row type of the Go client. It never collides with the
// store identifiers: a table named store gets StoreRow.
func modelName(table string) string {
	name := pascal(table)
	if !token.IsIdentifier(name) {
		name = "T" + name
	}

	if storeIdentifiers[name] {
		name += "Row"
	}

	return name
}

func listTitle(table string) string {
	plural := inflection.Plural(table)

	return cases.Title(language.English).String(strings.ReplaceAll(plural, "_", " "))
}

// sqlValue extracts a field from the f_data payload of a save function.
func sqlValue(f definition.Field) string {
	value := "f_data->>" + pq.QuoteLiteral(f.Name)

	switch f.Category() {
	case definition.Boolean:
		return fmt.Sprintf("COALESCE(cast(%s as boolean), true)", value)
	case definition.Numeric, definition.Temporal:
		return fmt.Sprintf("CAST(%s as %s)", value, f.CastType())
	default:
		return value
	}
}

func tsType(f definition.Field) string {
	switch f.Category() {
	case definition.Numeric:
		return tsNumber
	case definition.Boolean:
		return tsBoolean
	default:
		return tsString
	}
}

// testValue is the fixture placeholder for a field.
func testValue(f definition.Field) string {
	switch f.Category() {
	case definition.Boolean:
		return "true"
	case definition.Numeric, definition.Temporal:
		return "0"
	default:
		return "''"
	}
}

// formDefault is the initial value of an edit form control.
func formDefault(f definition.Field) string {
	switch f.Category() {
	case definition.Numeric:
		return "0"
	case definition.Boolean:
		return "true"
	default:
		return "''"
	}
}

func goType(f definition.Field) string {
	switch f.Category() {
	case definition.Numeric:
		return goInt64
	case definition.Boolean:
		return goBool
	default:
		return goString
	}
}

// tsLiteral quotes s as a single-quoted TypeScript string.
func tsLiteral(s string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`).Replace(s) + "'"
}

func rest(fields []definition.Field) []definition.Field {
	if len(fields) == 0 {
		return nil
	}

	return fields[1:]
}

func writeFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}

	if err := os.WriteFile(path, content, filePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	log.Infof("Generated %s", path)

	return nil
}

// writeGoFile fixes imports with goimports and formats with gofumpt before
// writing.
func writeGoFile(path string, content []byte) error {
	withImports, err := imports.Process(path, content, nil)
	if err != nil {
		log.Debugln(string(content))

		return fmt.Errorf("imports.Process %s: %w", path, err)
	}

	formatted, err := format.Source(withImports, format.Options{
		LangVersion: "",
		ExtraRules:  true,
	})
	if err != nil {
		log.Debugln(string(withImports))

		return fmt.Errorf("formatting %s: %w", path, err)
	}

	return writeFile(path, formatted)
}
