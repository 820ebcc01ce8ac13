package definition_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalbasit/sql2fnc/definition"
)

func TestParseSingleLineTable(t *testing.T) {
	t.Parallel()

	table, err := definition.Parse("CREATE TABLE public.user (id INT4 NOT NULL, name VARCHAR NOT NULL)", "public")
	require.NoError(t, err)

	assert.Equal(t, "public", table.Schema)
	assert.Equal(t, "user", table.Name)
	assert.Empty(t, table.Sequence)
	assert.Equal(t, []definition.Field{
		{Name: "id", Type: "INT4", NotNull: true, Description: "id"},
		{Name: "name", Type: "VARCHAR", NotNull: true, Description: "name"},
	}, table.Fields)
}

func TestParseDefaultSchema(t *testing.T) {
	t.Parallel()

	src := "CREATE TABLE user (\n  id int4 NOT NULL,\n  name varchar\n);\n"

	table, err := definition.Parse(src, "public")
	require.NoError(t, err)

	assert.Equal(t, "public", table.Schema)
	assert.Equal(t, "user", table.Name)
	require.Len(t, table.Fields, 2)
	assert.False(t, table.Fields[1].NotNull)
}

func TestParseSequence(t *testing.T) {
	t.Parallel()

	src := "CREATE TABLE app.user (\n" +
		"  id INT4 DEFAULT nextval('user_id_seq'::regclass) NOT NULL,\n" +
		"  name VARCHAR\n" +
		");"

	table, err := definition.Parse(src, "public")
	require.NoError(t, err)

	assert.Equal(t, "app", table.Schema)
	assert.Equal(t, "user_id_seq", table.Sequence)
	assert.True(t, table.Key().NotNull)
	assert.Equal(t, "INT4", table.Key().Type)
}

func TestParseLastSequenceWins(t *testing.T) {
	t.Parallel()

	src := "CREATE TABLE t (\n" +
		"  id int4 DEFAULT NEXTVAL('first_seq'::regclass),\n" +
		"  other int4 DEFAULT nextval('second_seq'::regclass)\n" +
		");"

	table, err := definition.Parse(src, "public")
	require.NoError(t, err)
	assert.Equal(t, "second_seq", table.Sequence)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want error
	}{
		{
			name: "no create table",
			src:  "id int4 NOT NULL,\nname varchar NOT NULL\n",
			want: definition.ErrNoSchema,
		},
		{
			name: "create index only",
			src:  "CREATE INDEX user_name_idx ON public.user (name);\n",
			want: definition.ErrNoSchema,
		},
		{
			name: "no fields",
			src:  "CREATE TABLE public.empty (\n);\n",
			want: definition.ErrNoFields,
		},
		{
			name: "field without type",
			src:  "CREATE TABLE public.t (\n  id\n);\n",
			want: definition.ErrNoType,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := definition.Parse(tt.src, "public")
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseLineErrorPosition(t *testing.T) {
	t.Parallel()

	_, err := definition.Parse("CREATE TABLE public.t (\n  id int4,\n  broken\n);", "public")

	var lineErr *definition.LineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, 3, lineErr.Line)
	assert.Equal(t, "broken", lineErr.Text)
}

func TestParseDescriptions(t *testing.T) {
	t.Parallel()

	src := "CREATE TABLE public.user (\n" +
		"  id int4 NOT NULL,\n" +
		"  name varchar NOT NULL\n" +
		");\n" +
		"comment on column user.name is 'Full name';\n" +
		"COMMENT ON COLUMN other.id IS 'Not ours';\n"

	table, err := definition.Parse(src, "public")
	require.NoError(t, err)

	assert.Equal(t, "id", table.Fields[0].Description)
	assert.Equal(t, "Full name", table.Fields[1].Description)
}

func TestParseSkipsConstraintsAndComments(t *testing.T) {
	t.Parallel()

	src := "-- a comment, with a comma\n" +
		"CREATE TABLE IF NOT EXISTS public.t (\n" +
		"  id int4 NOT NULL,\n" +
		"  CONSTRAINT t_pkey PRIMARY KEY (id),\n" +
		"  UNIQUE (id)\n" +
		");\n" +
		"ALTER TABLE public.t OWNER TO postgres;\n" +
		"GRANT ALL ON TABLE public.t TO postgres;\n"

	table, err := definition.Parse(src, "public")
	require.NoError(t, err)

	assert.Equal(t, "t", table.Name)
	require.Len(t, table.Fields, 1)
	assert.Equal(t, "id", table.Fields[0].Name)
}

func TestParseClosingParenOnFieldLine(t *testing.T) {
	t.Parallel()

	src := "CREATE TABLE public.t (\n  id int4 NOT NULL,\n  price numeric(10, 2) NOT NULL);\n"

	table, err := definition.Parse(src, "public")
	require.NoError(t, err)

	require.Len(t, table.Fields, 2)
	assert.Equal(t, "NUMERIC", table.Fields[1].Type)
	assert.True(t, table.Fields[1].NotNull)
}

func TestParseTypeTags(t *testing.T) {
	t.Parallel()

	src := "CREATE TABLE public.t (\n" +
		"  id int4,\n" +
		"  code varchar(64) NOT NULL,\n" +
		"  last text);\n"

	table, err := definition.Parse(src, "public")
	require.NoError(t, err)

	require.Len(t, table.Fields, 3)
	assert.Equal(t, "INT4", table.Fields[0].Type)
	assert.Equal(t, "VARCHAR(64)", table.Fields[1].Type)
	assert.Equal(t, "TEXT", table.Fields[2].Type)
}

func TestParseTrailingLineComments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{
			name: "comment after comma",
			src:  "CREATE TABLE public.user (\n  id int4 NOT NULL, -- primary key\n  name varchar NOT NULL --pk\n);",
		},
		{
			name: "comment without space",
			src:  "CREATE TABLE public.user (\n  id int4 NOT NULL, --pk\n  name varchar NOT NULL\n);",
		},
		{
			name: "comment on create line",
			src:  "CREATE TABLE public.user ( -- users, one per login\n  id int4 NOT NULL,\n  name varchar NOT NULL\n);",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			table, err := definition.Parse(tt.src, "public")
			require.NoError(t, err)

			assert.Equal(t, []definition.Field{
				{Name: "id", Type: "INT4", NotNull: true, Description: "id"},
				{Name: "name", Type: "VARCHAR", NotNull: true, Description: "name"},
			}, table.Fields)
		})
	}
}

func TestParseFieldLineIsOneDeclaration(t *testing.T) {
	t.Parallel()

	src := "CREATE TABLE public.t (\n  id int4 NOT NULL, note text DEFAULT 'a -- b'\n);"

	table, err := definition.Parse(src, "public")
	require.NoError(t, err)

	require.Len(t, table.Fields, 1)
	assert.Equal(t, "id", table.Fields[0].Name)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	table, err := definition.Load(filepath.Join("testdata", "user.sql"), "public")
	require.NoError(t, err)

	assert.Equal(t, "public", table.Schema)
	assert.Equal(t, "user", table.Name)
	assert.Equal(t, "user_id_seq", table.Sequence)

	names := make([]string, 0, len(table.Fields))
	for _, f := range table.Fields {
		names = append(names, f.Name)
	}

	assert.Equal(t, []string{"id", "name", "email", "active", "created_at"}, names)
	assert.Equal(t, "VARCHAR(64)", table.Fields[1].Type)
	assert.Equal(t, "User name", table.Fields[1].Description)
	assert.Equal(t, "Contact e-mail, it's optional", table.Fields[2].Description)
	assert.Equal(t, "active", table.Fields[3].Description)
	assert.Equal(t, "name", table.SearchField().Name)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want error
	}{
		{name: "empty path", path: "", want: definition.ErrNoInput},
		{name: "missing file", path: filepath.Join("testdata", "missing.sql"), want: definition.ErrNotExist},
		{name: "wrong extension", path: filepath.Join("testdata", "user.txt"), want: definition.ErrNotSQL},
		{name: "no table", path: filepath.Join("testdata", "no_table.sql"), want: definition.ErrNoSchema},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := definition.Load(tt.path, "public")
			require.ErrorIs(t, err, tt.want)
		})
	}
}
