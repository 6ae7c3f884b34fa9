package fluentmapper_test

import (
	"errors"
	"fmt"

	fluentmapper "github.com/waratah/fluent-mapper"
)

type customerRecord struct {
	Name string
	Age  int
}

type customerView struct {
	Name string
	Age  int
}

func Example() {
	mapper, err := fluentmapper.NewSpec[customerView, customerRecord]().Create()
	if err != nil {
		panic(err)
	}

	fmt.Println(mapper.Map(customerRecord{Name: "Ann", Age: 30}))
	// Output:
	// {Ann 30}
}

func Example_unmatchedSource() {
	type view struct {
		Name string
	}

	_, err := fluentmapper.NewSpec[view, customerRecord]().Create()
	fmt.Println(errors.Is(err, fluentmapper.ErrUnmatchedSourceProperty))
	// Output:
	// true
}

func Example_incompatibleTypes() {
	type record struct {
		Name string
		Age  string
	}

	_, err := fluentmapper.NewSpec[customerView, record]().Create()
	fmt.Println(errors.Is(err, fluentmapper.ErrIncompatibleTypes))
	// Output:
	// true
}

func ExampleSpec_For() {
	mapper, err := fluentmapper.NewSpec[customerView, customerRecord]().
		For("Name", func(source customerRecord) any { return "dr. " + source.Name }).
		Create()
	if err != nil {
		panic(err)
	}

	fmt.Println(mapper.Map(customerRecord{Name: "Ann", Age: 30}))
	// Output:
	// {dr. Ann 30}
}
