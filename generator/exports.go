package generator

import "github.com/kalbasit/sql2fnc/definition"

// This file exports internal functions for use in tests.

// Pascal converts a snake_case identifier to PascalCase.
func Pascal(s string) string { return pascal(s) }

// Camel converts a snake_case identifier to camelCase.
func Camel(s string) string { return camel(s) }

// Dash converts a snake_case identifier to dash-case.
func Dash(s string) string { return dash(s) }

// GoName converts a column name to an exported Go identifier.
func GoName(s string) string { return goName(s) }

// PackageName derives the Go client package name of a table.
func PackageName(table string) string { return packageName(table) }

// ModelName is the Go client row type of a table.
func ModelName(table string) string { return modelName(table) }

// ListTitle is the heading of the list view of a table.
func ListTitle(table string) string { return listTitle(table) }

// SQLValue extracts a field from the save function payload.
func SQLValue(f definition.Field) string { return sqlValue(f) }

// TSType is the TypeScript type of a field.
func TSType(f definition.Field) string { return tsType(f) }

// TestValue is the fixture placeholder of a field.
func TestValue(f definition.Field) string { return testValue(f) }

// FormDefault is the initial edit form value of a field.
func FormDefault(f definition.Field) string { return formDefault(f) }

// GoType is the Go client type of a field.
func GoType(f definition.Field) string { return goType(f) }

// TSLiteral quotes a TypeScript string.
func TSLiteral(s string) string { return tsLiteral(s) }
