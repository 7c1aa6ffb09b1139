package script

import (
	"errors"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/subword/internal/engine/subword"
)

// Engine wraps a Lua state with the subword module registered.
type Engine struct {
	L *lua.LState
}

// New creates a new scripting engine with the subword module installed
// as a global table.
func New() *Engine {
	e := &Engine{L: lua.NewState()}
	e.register()
	return e
}

// Close releases the Lua state.
func (e *Engine) Close() {
	e.L.Close()
}

// Run executes a Lua chunk.
func (e *Engine) Run(code string) error {
	return e.L.DoString(code)
}

// register installs the subword module into the Lua state.
func (e *Engine) register() {
	mod := e.L.NewTable()

	e.L.SetField(mod, "next_start", e.L.NewFunction(e.scanFn(subword.NextStart)))
	e.L.SetField(mod, "prev_start", e.L.NewFunction(e.scanFn(subword.PrevStart)))
	e.L.SetField(mod, "next_end", e.L.NewFunction(e.scanFn(subword.NextEnd)))
	e.L.SetField(mod, "subwords", e.L.NewFunction(e.subwords))

	e.L.SetGlobal("subword", mod)
}

// scanFn adapts a scanner operation to a Lua function with signature
// (text, offset [, count]) -> offset, clamped.
func (e *Engine) scanFn(scan func(string, int64, int) (subword.Result, error)) lua.LGFunction {
	return func(L *lua.LState) int {
		text := L.CheckString(1)
		offset := int64(L.CheckInt(2))
		count := L.OptInt(3, 1)

		res, err := scan(text, offset, count)
		if err != nil {
			if errors.Is(err, subword.ErrInvalidCount) {
				L.ArgError(3, "count must be >= 1")
				return 0
			}
			L.RaiseError("%s", err.Error())
			return 0
		}

		L.Push(lua.LNumber(res.Offset))
		L.Push(lua.LBool(res.Clamped))
		return 2
	}
}

// subwords(text) -> { {start=, finish=}, ... }
// Returns the half-open ranges of every sub-word in the text.
func (e *Engine) subwords(L *lua.LState) int {
	text := L.CheckString(1)

	ranges := subword.Subwords(text)
	tbl := L.NewTable()
	for i, r := range ranges {
		entry := L.NewTable()
		L.SetField(entry, "start", lua.LNumber(r.Start))
		L.SetField(entry, "finish", lua.LNumber(r.End))
		tbl.RawSetInt(i+1, entry)
	}

	L.Push(tbl)
	return 1
}
