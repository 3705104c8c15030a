package table

import (
	"fmt"
	"math"
	"math/big"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Condition limits an action to the rows where Key holds a value strictly equal to Is. A key the row doesn't have,
// the empty key included, hides the action.
type Condition struct {
	Key string      `json:"key" mapstructure:"key"`
	Is  interface{} `json:"is" mapstructure:"is"`
}

type Action struct {
	Name   string     `json:"name" mapstructure:"name" validate:"required"`
	ShowIf *Condition `json:"showIf,omitempty" mapstructure:"showIf"`
}

type Button struct {
	Name string `json:"name"`
}

// Actions builds unconditional actions from their names.
func Actions(names ...string) []Action {
	actions := make([]Action, 0, len(names))
	for _, name := range names {
		actions = append(actions, Action{Name: name})
	}
	return actions
}

// ParseAction accepts either a bare action name or a map with "name" and an optional "showIf" condition.
func ParseAction(raw interface{}) (Action, error) {
	switch raw := raw.(type) {
	case string:
		return Action{Name: raw}, nil
	case Action:
		return raw, nil
	case map[string]interface{}, map[interface{}]interface{}:
		var action Action
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			ErrorUnused: true,
			Result:      &action,
		})
		if err != nil {
			return Action{}, err
		}
		if err := decoder.Decode(raw); err != nil {
			return Action{}, fmt.Errorf("unable to decode action: %w", err)
		}
		return action, nil
	default:
		return Action{}, fmt.Errorf("action must be a name or an object, got %T", raw)
	}
}

func ParseActions(raw []interface{}) ([]Action, error) {
	actions := make([]Action, 0, len(raw))
	for i, item := range raw {
		action, err := ParseAction(item)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
		actions = append(actions, action)
	}
	return actions, nil
}

// StrictEqual reports whether a and b have the same dynamic type and the same value. Numbers of the builtin numeric
// types count as one type and compare by value, so int(3) from a definition file equals int64(3) from a database
// row, and NaN equals nothing. Values that can't be compared with == (slices, maps, funcs, or structs holding them)
// are never equal, there is no deep comparison.
func StrictEqual(a, b interface{}) (equal bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if x, ok := number(a); ok {
		y, ok := number(b)
		return ok && x != nil && y != nil && x.Cmp(y) == 0
	}

	typeA := reflect.TypeOf(a)
	if typeA != reflect.TypeOf(b) || !typeA.Comparable() {
		return false
	}

	// A comparable static type can still hold an uncomparable value in an interface field.
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()
	return a == b
}

// number returns the exact value of a builtin number, nil for NaN. Named numeric types such as time.Duration are
// not numbers here.
func number(value interface{}) (*big.Float, bool) {
	switch value := value.(type) {
	case int:
		return new(big.Float).SetInt64(int64(value)), true
	case int8:
		return new(big.Float).SetInt64(int64(value)), true
	case int16:
		return new(big.Float).SetInt64(int64(value)), true
	case int32:
		return new(big.Float).SetInt64(int64(value)), true
	case int64:
		return new(big.Float).SetInt64(value), true
	case uint:
		return new(big.Float).SetUint64(uint64(value)), true
	case uint8:
		return new(big.Float).SetUint64(uint64(value)), true
	case uint16:
		return new(big.Float).SetUint64(uint64(value)), true
	case uint32:
		return new(big.Float).SetUint64(uint64(value)), true
	case uint64:
		return new(big.Float).SetUint64(value), true
	case float32:
		return floatNumber(float64(value)), true
	case float64:
		return floatNumber(value), true
	}
	return nil, false
}

func floatNumber(f float64) *big.Float {
	if math.IsNaN(f) {
		return nil
	}
	return new(big.Float).SetFloat64(f)
}

// Eligible reports whether the action is shown for row. A condition on a key the row doesn't have is never met.
func (a Action) Eligible(row Row) bool {
	if a.ShowIf == nil {
		return true
	}

	value, ok := row.Get(a.ShowIf.Key)
	if !ok {
		return false
	}

	return StrictEqual(value, a.ShowIf.Is)
}

// ResolveActions returns a button per eligible action, in declared order.
func ResolveActions(row Row, actions []Action) []Button {
	buttons := make([]Button, 0, len(actions))
	for _, action := range actions {
		if action.Eligible(row) {
			buttons = append(buttons, Button{Name: action.Name})
		}
	}
	return buttons
}
