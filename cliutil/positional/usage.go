package positional

import (
	"reflect"
	"strings"
)

func meta(field reflect.StructField) string {
	name := strings.ToUpper(field.Name)
	if field.Type.Kind() == reflect.Slice {
		name += ".."
	}
	return name
}

// Usage returns a one-line synopsis of the arguments struct, with
// field names upcased and optional fields bracketed.
func Usage(args interface{}) string {
	value := reflect.Indirect(reflect.ValueOf(args))

	var metas []string
	nest := 0
	optional := false
	for i := 0; i < value.NumField(); i++ {
		field := value.Type().Field(i)
		if field.Type == optionalType {
			optional = true
			continue
		}
		m := meta(field)
		if optional {
			m = "[" + m
			nest++
		}
		metas = append(metas, m)
	}
	if nest > 0 {
		metas[len(metas)-1] += strings.Repeat("]", nest)
	}
	return strings.Join(metas, " ")
}
