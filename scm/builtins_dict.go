/*
Copyright (C) 2026  The goscm Authors

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scm

import "github.com/google/btree"

// dictEntry is one key/value slot in a schemeDict's backing tree, ordered
// by key the same way < compares numbers and strings compare byte-wise.
type dictEntry struct {
	key   Scmer
	value Scmer
}

func dictEntryLess(a, b dictEntry) bool {
	return dictKeyLess(a.key, b.key)
}

// dictKeyLess orders dict keys: numbers before strings before symbols,
// and within a kind by the natural Go ordering of the payload.
func dictKeyLess(a, b Scmer) bool {
	if a.Kind() != b.Kind() {
		return a.Kind() < b.Kind()
	}
	switch a.Kind() {
	case KindNumber:
		return a.Number() < b.Number()
	case KindString:
		return a.Str() < b.Str()
	case KindSymbol:
		return a.Symbol() < b.Symbol()
	default:
		panic(newEvalError("dict: unorderable key of kind " + a.Kind().String()))
	}
}

// schemeDict is an ordered associative container, backed by the same
// generic copy-on-write B-tree the storage engine uses for its delta
// indexes: balanced lookup/insert instead of a linear assoc-list scan.
type schemeDict struct {
	tree *btree.BTreeG[dictEntry]
}

func newSchemeDict() *schemeDict {
	return &schemeDict{tree: btree.NewG[dictEntry](32, dictEntryLess)}
}

func (d *schemeDict) clone() *schemeDict {
	return &schemeDict{tree: d.tree.Clone()}
}

func (d *schemeDict) set(key, value Scmer) *schemeDict {
	next := d.clone()
	next.tree.ReplaceOrInsert(dictEntry{key: key, value: value})
	return next
}

func (d *schemeDict) get(key Scmer) (Scmer, bool) {
	entry, ok := d.tree.Get(dictEntry{key: key})
	if !ok {
		return Nil, false
	}
	return entry.value, true
}

func (d *schemeDict) delete(key Scmer) *schemeDict {
	next := d.clone()
	next.tree.Delete(dictEntry{key: key})
	return next
}

func (d *schemeDict) len() int { return d.tree.Len() }

// keys returns the dict's keys in ascending order.
func (d *schemeDict) keys() []Scmer {
	out := make([]Scmer, 0, d.tree.Len())
	d.tree.Ascend(func(e dictEntry) bool {
		out = append(out, e.key)
		return true
	})
	return out
}

func installDictBuiltins(ip *Interpreter) {
	Declare(ip, &Declaration{"make-dict", "builds an empty ordered dictionary", 0, 0,
		nil, "dict",
		func(args []Scmer) Scmer { return newDictValue(newSchemeDict()) }})

	Declare(ip, &Declaration{"dict-set", "returns a new dict with key bound to value", 3, 3,
		[]DeclarationParameter{
			{"d", "dict", "the dictionary"},
			{"key", "any", "a number, string or symbol"},
			{"value", "any", "the value to bind"},
		}, "dict",
		func(args []Scmer) Scmer {
			return newDictValue(args[0].Dict().set(args[1], args[2]))
		}})

	Declare(ip, &Declaration{"dict-ref", "looks up key, or returns fallback when absent", 2, 3,
		[]DeclarationParameter{
			{"d", "dict", "the dictionary"},
			{"key", "any", "the key to look up"},
			{"fallback", "any", "returned when key is absent; defaults to ()"},
		}, "any",
		func(args []Scmer) Scmer {
			if v, ok := args[0].Dict().get(args[1]); ok {
				return v
			}
			if len(args) == 3 {
				return args[2]
			}
			return Nil
		}})

	Declare(ip, &Declaration{"dict-has?", "true iff key is bound in the dict", 2, 2,
		[]DeclarationParameter{{"d", "dict", "the dictionary"}, {"key", "any", "the key"}}, "boolean",
		func(args []Scmer) Scmer {
			_, ok := args[0].Dict().get(args[1])
			return NewBool(ok)
		}})

	Declare(ip, &Declaration{"dict-delete", "returns a new dict with key removed", 2, 2,
		[]DeclarationParameter{{"d", "dict", "the dictionary"}, {"key", "any", "the key to remove"}}, "dict",
		func(args []Scmer) Scmer {
			return newDictValue(args[0].Dict().delete(args[1]))
		}})

	Declare(ip, &Declaration{"dict-keys", "the dict's keys as a list, ascending", 1, 1,
		[]DeclarationParameter{{"d", "dict", "the dictionary"}}, "list",
		func(args []Scmer) Scmer { return SliceToList(args[0].Dict().keys()) }})

	Declare(ip, &Declaration{"dict-size", "the number of bindings in the dict", 1, 1,
		[]DeclarationParameter{{"d", "dict", "the dictionary"}}, "number",
		func(args []Scmer) Scmer { return NewNumber(float64(args[0].Dict().len())) }})

	Declare(ip, &Declaration{"dict?", "true iff the value is a dictionary", 1, 1,
		[]DeclarationParameter{{"v", "any", "value"}}, "boolean",
		func(args []Scmer) Scmer { return NewBool(args[0].IsDict()) }})
}
