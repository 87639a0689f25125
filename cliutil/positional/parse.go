// Package positional parses positional command line arguments into
// the fields of a struct, in order.
package positional

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrTooManyArgs indicates that there were more arguments than
// fields to fill.
type ErrTooManyArgs struct{}

func (ErrTooManyArgs) Error() string {
	return "too many arguments"
}

// ErrMissingMandatoryArg indicates that a mandatory argument is
// missing.
type ErrMissingMandatoryArg struct {
	Name string
}

func (e ErrMissingMandatoryArg) Error() string {
	return "missing mandatory argument: " + e.Name
}

// Setter can be implemented by a field to control its conversion
// from string. The interface is compatible with flag.Value.
type Setter interface {
	Set(string) error
}

// Optional marks the point in an arguments struct where the
// remaining fields are optional.
type Optional struct{}

var optionalType = reflect.TypeOf(Optional{})

// Parse fills the fields of the struct pointed to by args from list,
// in field order.
//
// Fields must be strings, implement Setter, or be a []string in the
// last position to consume all remaining arguments. Fields after an
// Optional marker may be left unfilled.
//
// Returns ErrMissingMandatoryArg if the list runs out before the
// mandatory fields do, and ErrTooManyArgs if arguments are left over
// after the last field.
func Parse(args interface{}, list []string) error {
	pointer := reflect.ValueOf(args)
	if pointer.Kind() != reflect.Ptr || !pointer.Elem().CanSet() {
		return errors.New("must pass a pointer to positional.Parse")
	}
	value := pointer.Elem()

	mandatory := true
	for idx := 0; idx < value.NumField(); idx++ {
		if value.Type().Field(idx).Type == optionalType {
			mandatory = false
			continue
		}
		field := value.Field(idx)

		if field.Kind() == reflect.Slice {
			if idx != value.NumField()-1 {
				return errors.New("slice must be the last field in an arguments struct")
			}
			field.Set(reflect.AppendSlice(field, reflect.ValueOf(list)))
			return nil
		}

		if len(list) == 0 {
			if mandatory {
				return ErrMissingMandatoryArg{Name: meta(value.Type().Field(idx))}
			}
			break
		}
		arg := list[0]
		list = list[1:]

		if s, ok := field.Addr().Interface().(Setter); ok {
			if err := s.Set(arg); err != nil {
				return err
			}
			continue
		}
		if field.Kind() != reflect.String {
			return fmt.Errorf("cannot parse into %v", field.Type())
		}
		field.SetString(arg)
	}

	if len(list) > 0 {
		return ErrTooManyArgs{}
	}
	return nil
}
