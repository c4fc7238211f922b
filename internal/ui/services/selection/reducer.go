package selection

import (
	"fmt"

	"buttongroup/internal/domain"
	"buttongroup/internal/ui/logic"
)

// Reduce computes the transition for ev without touching anything outside its arguments.
// Clicks and resets always request a UI-originated push. Init and external pushes never
// push, which keeps a pushed value from being echoed back to the store.
// On error the returned state equals s.
func Reduce(el domain.Element, s State, ev Event) (Transition, error) {
	switch e := ev.(type) {
	case InitEvent:
		seed := el.Default
		if e.HasStored {
			seed = e.Stored
		}
		if err := validate(el, seed); err != nil {
			return Transition{State: s}, fmt.Errorf("init %s: %w", el.ID, err)
		}
		return Transition{State: State{Selection: clone(seed)}}, nil

	case ClickEvent:
		if e.Index < 0 || e.Index >= len(el.Options) {
			return Transition{State: s}, fmt.Errorf("click %s: %w: option %d of %d",
				el.ID, logic.ErrInvalidSelection, e.Index, len(el.Options))
		}
		next := logic.NextSelection(el.ClickMode, e.Index, s.Selection)
		return Transition{
			State: State{Selection: next},
			Push:  &PushEffect{Selection: clone(next), FromUI: true},
		}, nil

	case ExternalPushEvent:
		if err := validate(el, e.Value); err != nil {
			return Transition{State: s, ConsumeSetValue: true}, fmt.Errorf("push %s: %w", el.ID, err)
		}
		return Transition{
			State:           State{Selection: clone(e.Value)},
			ConsumeSetValue: true,
		}, nil

	case ResetEvent:
		if err := validate(el, el.Default); err != nil {
			return Transition{State: s}, fmt.Errorf("reset %s: %w", el.ID, err)
		}
		return Transition{
			State: State{Selection: clone(el.Default)},
			Push:  &PushEffect{Selection: clone(el.Default), FromUI: true},
		}, nil
	}

	return Transition{State: s}, fmt.Errorf("unknown event %T", ev)
}

func validate(el domain.Element, selection []int) error {
	return logic.ValidateSelection(el.ClickMode, len(el.Options), selection)
}

func clone(s []int) []int {
	return append(make([]int, 0, len(s)), s...)
}
