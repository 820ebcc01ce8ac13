package generator

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"
)

// renderGoModel builds the row struct of the Go client. Nullable columns
// become pointers so that SQL NULL survives a round trip.
func renderGoModel(v *view) ([]byte, error) {
	f := jen.NewFile(v.Package)
	f.HeaderComment(generatedHeader)

	fields := make([]jen.Code, 0, len(v.Fields))

	for _, field := range v.Fields {
		typ := jen.Id(goType(field))
		if !field.NotNull {
			typ = jen.Op("*").Id(goType(field))
		}

		stmt := jen.Id(goName(field.Name)).Add(typ).Tag(map[string]string{"json": field.Name})
		if field.Description != field.Name {
			stmt = stmt.Comment(field.Description)
		}

		fields = append(fields, stmt)
	}

	f.Commentf("%s is a row of %s.%s.", v.Model, v.Schema, v.Table)
	f.Type().Id(v.Model).Struct(fields...)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("error rendering the %s model: %w", v.Table, err)
	}

	return buf.Bytes(), nil
}
