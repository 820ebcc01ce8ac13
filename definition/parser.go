package definition

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
)

var (
	nextvalRe = regexp.MustCompile(`(?i)nextval\(\s*'([^']*)'`)
	notNullRe = regexp.MustCompile(`(?i)\bNOT\s+NULL\b`)
	commentRe = regexp.MustCompile(`(?i)^comment\s+on\s+column\s+(\S+)\s+is\s+'((?:[^']|'')*)'`)
)

// Lines starting with one of these never declare a column.
var skipKeywords = map[string]bool{
	"COMMENT":    true,
	"CONSTRAINT": true,
	"PRIMARY":    true,
	"UNIQUE":     true,
	"FOREIGN":    true,
	"CHECK":      true,
	"EXCLUDE":    true,
	"ALTER":      true,
	"DROP":       true,
	"GRANT":      true,
	"REVOKE":     true,
}

var tableModifiers = map[string]bool{
	"TEMP":      true,
	"TEMPORARY": true,
	"UNLOGGED":  true,
	"GLOBAL":    true,
	"LOCAL":     true,
}

// Load checks that path names an existing .sql file and parses it.
func Load(path, defaultSchema string) (*Table, error) {
	if path == "" {
		return nil, ErrNoInput
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotExist, err)
	}

	if !strings.EqualFold(filepath.Ext(path), ".sql") {
		return nil, fmt.Errorf("%w: %s", ErrNotSQL, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return Parse(string(data), defaultSchema)
}

// Parse extracts the table description from definition text. Lines are
// handled one at a time; a CREATE TABLE line may carry column declarations
// after its opening parenthesis.
func Parse(src, defaultSchema string) (*Table, error) {
	lines := strings.Split(src, "\n")
	descriptions := collectDescriptions(lines)

	t := &Table{}

	for i, raw := range lines {
		line := strings.TrimSpace(raw)

		tokens := strings.Fields(line)
		if len(tokens) == 0 || strings.HasPrefix(line, "--") {
			continue
		}

		if strings.EqualFold(tokens[0], "CREATE") {
			if !isCreateTable(tokens) {
				continue
			}

			schema, name, body := splitCreateTable(cutComment(line), defaultSchema)
			t.Schema, t.Name = schema, name

			if err := t.declareAll(body, i+1); err != nil {
				return nil, err
			}

			continue
		}

		if strings.HasPrefix(tokens[0], "(") || strings.HasPrefix(tokens[0], ")") {
			continue
		}

		if err := t.declare(cutComment(line), i+1); err != nil {
			return nil, err
		}
	}

	if t.Schema == "" || t.Name == "" {
		return nil, ErrNoSchema
	}

	if len(t.Fields) == 0 {
		return nil, ErrNoFields
	}

	for i := range t.Fields {
		f := &t.Fields[i]
		f.Description = f.Name

		if desc, ok := descriptions[descriptionKey(t.Name, f.Name)]; ok {
			f.Description = desc
		}
	}

	log.WithFields(log.Fields{
		"table":    t.QualifiedName(),
		"fields":   len(t.Fields),
		"sequence": t.Sequence,
	}).Debug("parsed table definition")

	return t, nil
}

func (t *Table) declareAll(text string, lineNo int) error {
	for _, decl := range splitDeclarations(text) {
		if err := t.declare(decl, lineNo); err != nil {
			return err
		}
	}

	return nil
}

func (t *Table) declare(decl string, lineNo int) error {
	tokens := strings.Fields(decl)
	if len(tokens) == 0 || skipKeywords[strings.ToUpper(tokens[0])] {
		return nil
	}

	if len(tokens) < 2 {
		return &LineError{Line: lineNo, Text: decl, Err: ErrNoType}
	}

	f := Field{
		Name:    unquote(strings.TrimRight(tokens[0], ",")),
		Type:    typeTag(tokens[1]),
		NotNull: notNullRe.MatchString(decl),
	}
	t.Fields = append(t.Fields, f)

	if m := nextvalRe.FindAllStringSubmatch(decl, -1); len(m) > 0 {
		t.Sequence = m[len(m)-1][1]
	}

	log.WithFields(log.Fields{
		"line":    lineNo,
		"field":   f.Name,
		"type":    f.Type,
		"notNull": f.NotNull,
	}).Debug("field")

	return nil
}

// typeTag uppercases a type token and drops punctuation that belongs to the
// surrounding statement: a trailing comma, the closing parenthesis of the
// column list and an argument list cut short by whitespace ("numeric(10,").
func typeTag(tok string) string {
	tag := strings.ToUpper(strings.TrimRight(tok, ",;"))

	for strings.HasSuffix(tag, ")") && strings.Count(tag, ")") > strings.Count(tag, "(") {
		tag = strings.TrimRight(strings.TrimSuffix(tag, ")"), ",;")
	}

	if strings.Count(tag, "(") > strings.Count(tag, ")") {
		tag = tag[:strings.LastIndex(tag, "(")]
	}

	return tag
}

// cutComment drops a -- comment that is not inside a quoted literal.
func cutComment(line string) string {
	inQuote := false

	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == '\'':
			inQuote = !inQuote
		case !inQuote && strings.HasPrefix(line[i:], "--"):
			return strings.TrimSpace(line[:i])
		}
	}

	return line
}

func isCreateTable(tokens []string) bool {
	for _, tok := range tokens[1:] {
		upper := strings.ToUpper(tok)
		if tableModifiers[upper] {
			continue
		}

		return upper == "TABLE"
	}

	return false
}

// splitCreateTable returns the schema and table named on a CREATE TABLE line
// and whatever follows the opening parenthesis.
func splitCreateTable(line, defaultSchema string) (schema, name, body string) {
	head := line
	if idx := strings.Index(line, "("); idx != -1 {
		head, body = line[:idx], line[idx+1:]
	}

	tokens := strings.Fields(head)
	qualifier := tokens[len(tokens)-1]

	switch strings.ToUpper(qualifier) {
	case "TABLE", "EXISTS":
		return "", "", body
	}

	parts := strings.Split(unquote(qualifier), ".")
	if len(parts) == 1 {
		return defaultSchema, parts[0], body
	}

	return parts[len(parts)-2], parts[len(parts)-1], body
}

// splitDeclarations cuts text at top-level commas and stops at the
// parenthesis closing the column list. Quoted literals are kept intact.
func splitDeclarations(text string) []string {
	var (
		out     []string
		depth   int
		inQuote bool
		start   int
	)

	flush := func(end int) {
		if piece := strings.TrimSpace(text[start:end]); piece != "" {
			out = append(out, piece)
		}
	}

	for i := 0; i < len(text); i++ {
		c := text[i]

		if inQuote {
			if c == '\'' {
				inQuote = false
			}

			continue
		}

		switch c {
		case '\'':
			inQuote = true
		case '(':
			depth++
		case ')':
			if depth == 0 {
				flush(i)

				return out
			}

			depth--
		case ',':
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}

	flush(len(text))

	return out
}

func collectDescriptions(lines []string) map[string]string {
	descriptions := make(map[string]string)

	for _, raw := range lines {
		m := commentRe.FindStringSubmatch(strings.TrimSpace(raw))
		if m == nil {
			continue
		}

		parts := strings.Split(unquote(m[1]), ".")
		if len(parts) < 2 {
			continue
		}

		key := descriptionKey(parts[len(parts)-2], parts[len(parts)-1])
		descriptions[key] = strings.ReplaceAll(m[2], "''", "'")
	}

	return descriptions
}

func descriptionKey(table, field string) string {
	return strings.ToLower(table) + "." + strings.ToLower(field)
}

func unquote(ident string) string { return strings.ReplaceAll(ident, `"`, "") }
