package streamjson_test

import (
	"fmt"
	"testing"

	"github.com/mcvoid/streamjson"
)

func TestUsage(t *testing.T) {
	// Use one of the ParseXXX functions to get a JSON value from text.
	// You can pass in strings, []byte, or an io.Reader.
	val, err := streamjson.ParseString(`
	{
		"null": null,
		"integer": 5,
		"number": 5.0,
		"boolean": true,
		"array": [null, 5, 5.0, true],
		"object": {}
	}
	`)
	if err != nil {
		t.Fatal(err)
	}

	// To inspect the type, use the Type method.
	if val.Type() != streamjson.Object {
		t.Error("JSON object is wrong type!")
	}

	// Objects can be extracted as maps of values.
	m, _ := val.AsObject()
	if m["null"].Type() != streamjson.Null {
		t.Error("JSON null is wrong type!")
	}

	// We differentiate integers and numbers, but integers count as
	// numbers too.
	i, _ := m["integer"].AsNumber()
	n, _ := m["number"].AsNumber()
	if i != n {
		t.Error("5 and 5.0 should compare equal as numbers")
	}

	// Arrays are represented as slices of values.
	a, _ := m["array"].AsArray()
	b, _ := a[3].AsBoolean()
	if !b {
		t.Error("true... isn't?")
	}

	// Comments are accepted as a lenient extension.
	commented, err := streamjson.ParseString(`/* config */ {"list": [1, 2, 3]} // trailing`)
	if err != nil {
		t.Fatal(err)
	}
	fmt.Println(commented) // {"list": [1, 2, 3]}

	// Key and Index give a fluent interface to drill down to values.
	beatles, _ := streamjson.ParseString(`{
		"name": "The Beatles",
		"members": [
			{"name": "John", "role": "guitar"},
			{"name": "Paul", "role": "bass"},
			{"name": "George", "role": "guitar"},
			{"name": "Ringo", "role": "drums"}
		]
	}`)

	name, _ := beatles.Key("members").Index(2).Key("name").AsString()
	fmt.Println(name) // George

	// Drilling down through invalid values or missing keys just
	// propagates a null value rather than panicking.
	null := beatles.Key("something").Index(-1).Key("")
	fmt.Println(null) // null

	// A number too large or precise for int64/float64 escalates to an
	// arbitrary-precision value instead of losing digits.
	big, _ := streamjson.ParseString(`99999999999999999999`)
	if big.Type() != streamjson.BigInteger {
		t.Error("expected escalation to BigInteger")
	}
	bi, _ := big.AsBigInt()
	fmt.Println(bi) // 99999999999999999999
}
