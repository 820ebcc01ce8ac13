package generator

import "github.com/kalbasit/sql2fnc/definition"

// Options configures a generation run.
type Options struct {
	OutputDir       string
	Owner           string // owner of the storage functions
	Grantee         string // role granted EXECUTE on them
	DatePlaceholder string
	GoClient        bool
}

// view is what every template renders.
type view struct {
	Schema   string
	Table    string
	Sequence string
	Fields   []definition.Field
	Key      definition.Field
	Search   definition.Field

	Pascal  string // UserRole
	Camel   string // userRole
	Dash    string // user-role
	Package string // userrole
	Model   string // Go client row type, UserRole
	Title   string // User Roles

	Owner           string
	Grantee         string
	DatePlaceholder string
}

// artifact is one generated file. render replaces the template when set.
type artifact struct {
	template string
	path     func(v *view) string
	render   func(v *view) ([]byte, error)
}

// emitter produces one output subtree.
type emitter struct {
	name      string
	artifacts []artifact
}

// Function is the qualified name of the storage function for op.
func (v *view) Function(op string) string {
	return v.Schema + "." + v.Table + "_" + op
}

// call is the argument of the apiCall template.
type call struct {
	Query string
	Arg   string
}

// Call describes the storage function query issued by the resource service
// for op, with arg as its single parameter.
func (v *view) Call(op, arg string) call {
	return call{Query: tsLiteral("SELECT " + v.Function(op) + "($1)"), Arg: arg}
}

// Header marks generated Go sources.
func (v *view) Header() string { return generatedHeader }
