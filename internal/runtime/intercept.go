package runtime

import (
	"github.com/aretw0/objwatch/pkg/domain"
	"github.com/aretw0/objwatch/pkg/object"
)

// cell tracks the committed value of an intercepted property and the value before it.
type cell struct {
	current  any
	previous any
}

// Install replaces the data property key of c with an accessor pair that
// reports changes to onChange.
//
// Writes equal to the committed value (object.Equal) are dropped without
// notification. Otherwise the incoming value is committed, then onChange runs;
// if it asks to replace, its override becomes the committed value.
// Non-configurable properties are left untouched.
func Install(c object.Container, key object.Key, onChange domain.ChangeFunc) domain.Result {
	desc, ok := c.Describe(key)
	if !ok {
		return domain.ResultSkippedMissing
	}
	if !desc.Configurable {
		return domain.ResultSkippedNotConfigurable
	}

	value, _ := c.Lookup(key)
	state := &cell{current: value, previous: value}

	getter := func() any {
		return state.current
	}
	setter := func(v any) {
		if object.Equal(v, state.current) {
			return
		}
		state.previous = state.current
		state.current = v
		if override, replace := onChange(c, key, v, state.previous); replace {
			state.current = override
		}
	}

	if !c.Define(key, object.Descriptor{
		Get:          getter,
		Set:          setter,
		Enumerable:   true,
		Configurable: true,
	}) {
		return domain.ResultSkippedNotConfigurable
	}
	return domain.ResultInstalled
}

// Remove restores key of c as a plain data property holding its current value.
// It is a no-op rewrite on properties that are not intercepted.
func Remove(c object.Container, key object.Key) domain.Result {
	desc, ok := c.Describe(key)
	if !ok {
		return domain.ResultSkippedMissing
	}
	if !desc.Configurable {
		return domain.ResultSkippedNotConfigurable
	}

	value, _ := c.Lookup(key)
	if !c.Define(key, object.DataProperty(value)) {
		return domain.ResultSkippedNotConfigurable
	}
	return domain.ResultRestored
}
