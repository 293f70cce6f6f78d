package input

import (
	"fmt"
	"maps"
	"slices"
)

// Key is a host-independent key name: a lower-case letter or digit, or one of
// the named keys below.
type Key string

const (
	KeySpace  Key = "space"
	KeyEscape Key = "escape"
	KeyUp     Key = "up"
	KeyDown   Key = "down"
	KeyLeft   Key = "left"
	KeyRight  Key = "right"
)

// KeyTable maps keys to actions.
type KeyTable map[Key]Action

// DefaultKeyTable returns the stock bindings.
func DefaultKeyTable() KeyTable {
	return KeyTable{
		"w": ActionCameraUp,
		"s": ActionCameraDown,
		"a": ActionCameraLeft,
		"d": ActionCameraRight,
		"q": ActionCameraForward,
		"e": ActionCameraBack,
		"i": ActionPitchUp,
		"k": ActionPitchDown,
		"j": ActionYawLeft,
		"l": ActionYawRight,

		KeyUp:    ActionWalkForward,
		KeyDown:  ActionWalkBack,
		KeyLeft:  ActionWalkLeft,
		KeyRight: ActionWalkRight,

		"1": ActionPresetTop,
		"2": ActionPresetSide,
		"3": ActionPresetFront,

		KeySpace:  ActionFire,
		"5":       ActionToggleBounce,
		"6":       ActionTogglePodium,
		"7":       ActionToggleChair,
		"8":       ActionToggleTable,
		"9":       ActionToggleShelf,
		"r":       ActionRestart,
		"f":       ActionFullscreen,
		KeyEscape: ActionQuit,
	}
}

// Rebind moves action a onto key k, dropping its previous keys. Whatever k
// was bound to before loses that binding.
func (t KeyTable) Rebind(a Action, k Key) error {
	if a == ActionNone || a >= actionCount {
		return fmt.Errorf("cannot bind %v", a)
	}
	if k == "" {
		return fmt.Errorf("empty key for %v", a)
	}
	for key, bound := range t {
		if bound == a {
			delete(t, key)
		}
	}
	t[k] = a
	return nil
}

// Apply rebinds every action named in bindings (action name to key), in
// action name order. Two actions naming the same key is an error and leaves
// the table untouched.
func (t KeyTable) Apply(bindings map[string]string) error {
	names := slices.Sorted(maps.Keys(bindings))
	owner := make(map[string]string, len(names))
	for _, name := range names {
		key := bindings[name]
		if prev, dup := owner[key]; dup {
			return fmt.Errorf("key %q bound to both %s and %s", key, prev, name)
		}
		owner[key] = name
	}

	for _, name := range names {
		a, err := ParseAction(name)
		if err != nil {
			return err
		}
		if err := t.Rebind(a, Key(bindings[name])); err != nil {
			return err
		}
	}
	return nil
}

// Keys returns the keys bound to a.
func (t KeyTable) Keys(a Action) []Key {
	var keys []Key
	for k, bound := range t {
		if bound == a {
			keys = append(keys, k)
		}
	}
	return keys
}
