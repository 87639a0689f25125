package positional_test

import (
	"errors"
	"fmt"
	"testing"

	"pngstash.org/pngstash/cliutil/positional"
)

func Example() {
	type Inventory struct {
		Item string
		positional.Optional
		Location string
	}

	porch := Inventory{}
	err := positional.Parse(&porch, []string{"cat", "porch"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("a %s at the %s\n", porch.Item, porch.Location)
	// Output:
	// a cat at the porch
}

func TestMandatory(t *testing.T) {
	type Args struct {
		Path string
		Name string
	}
	var a Args
	if err := positional.Parse(&a, []string{"foo.png", "ruSt"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g, e := a.Path, "foo.png"; g != e {
		t.Errorf("bad Path: %q != %q", g, e)
	}
	if g, e := a.Name, "ruSt"; g != e {
		t.Errorf("bad Name: %q != %q", g, e)
	}
}

func TestMissingMandatory(t *testing.T) {
	type Args struct {
		Path string
		Name string
	}
	var a Args
	err := positional.Parse(&a, []string{"foo.png"})
	var missing positional.ErrMissingMandatoryArg
	if !errors.As(err, &missing) {
		t.Fatalf("expected ErrMissingMandatoryArg, got %v", err)
	}
	if g, e := missing.Name, "NAME"; g != e {
		t.Errorf("bad arg name: %q != %q", g, e)
	}
}

func TestOptionalOmitted(t *testing.T) {
	type Args struct {
		Path string
		positional.Optional
		Output string
	}
	var a Args
	if err := positional.Parse(&a, []string{"foo.png"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g, e := a.Output, ""; g != e {
		t.Errorf("bad Output: %q != %q", g, e)
	}
}

func TestTooMany(t *testing.T) {
	type Args struct {
		Path string
	}
	var a Args
	err := positional.Parse(&a, []string{"foo.png", "bar.png"})
	var tooMany positional.ErrTooManyArgs
	if !errors.As(err, &tooMany) {
		t.Fatalf("expected ErrTooManyArgs, got %v", err)
	}
}

type upper string

func (u *upper) Set(s string) error {
	if s == "" {
		return errors.New("empty")
	}
	*u = upper(s)
	return nil
}

func TestSetter(t *testing.T) {
	type Args struct {
		Name upper
	}
	var a Args
	if err := positional.Parse(&a, []string{"hi"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g, e := a.Name, upper("hi"); g != e {
		t.Errorf("bad Name: %q != %q", g, e)
	}
	err := positional.Parse(&a, []string{""})
	if err == nil || err.Error() != "empty" {
		t.Fatalf("expected setter error, got %v", err)
	}
}

func TestRest(t *testing.T) {
	type Args struct {
		First string
		Rest  []string
	}
	var a Args
	if err := positional.Parse(&a, []string{"one", "two", "three"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g, e := a.First, "one"; g != e {
		t.Errorf("bad First: %q != %q", g, e)
	}
	if g, e := len(a.Rest), 2; g != e {
		t.Fatalf("bad Rest length: %d != %d", g, e)
	}
}

func TestUsage(t *testing.T) {
	type Args struct {
		Path string
		Name string
		positional.Optional
		Output string
	}
	if g, e := positional.Usage(&Args{}), "PATH NAME [OUTPUT]"; g != e {
		t.Errorf("bad usage: %q != %q", g, e)
	}
}
