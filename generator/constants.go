package generator

const (
	generatedHeader = "Code generated by sql2fnc. DO NOT EDIT."

	dirSQL   = "sql"
	dirAPI   = "api"
	dirTests = "tests"
	dirWWW   = "www"
	dirGo    = "go"

	dirPerm  = 0o755
	filePerm = 0o644

	tsNumber  = "number"
	tsBoolean = "boolean"
	tsString  = "string"

	goInt64  = "int64"
	goBool   = "bool"
	goString = "string"
)
