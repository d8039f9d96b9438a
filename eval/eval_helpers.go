/*
File    : interp/eval/eval_helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/interp/ierrors"
	"github.com/akashmaji946/interp/objects"
)

var nullValue = objects.Null{}

// truthOf coerces a condition value to bool per the If/While rule:
// Bool uses its own value, Null is always falsy, anything else is
// UnexpectedType.
func truthOf(pos ierrors.Position, v objects.Value) (bool, error) {
	switch val := v.(type) {
	case objects.Bool:
		return val.Value, nil
	case objects.Null:
		return false, nil
	default:
		return false, ierrors.UnexpectedType(pos, "expected bool, got "+objects.TypeOf(v).String())
	}
}

// asNumeric extracts a float64 view of an Integer or Float value plus
// whether the original was an Integer, for widening decisions.
func asNumeric(v objects.Value) (f float64, isInt bool, ok bool) {
	switch val := v.(type) {
	case objects.Integer:
		return float64(val.Value), true, true
	case objects.Float:
		return val.Value, false, true
	default:
		return 0, false, false
	}
}

// kindName reports the type name used in UnexpectedType messages.
func kindName(v objects.Value) string {
	return objects.TypeOf(v).String()
}
