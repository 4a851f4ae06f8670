// Package script provides Lua scripting over the circuit core.
//
// Scripts see a global `circuit` table with functions for building,
// querying, and undoing the circuit. It exists for automation and for
// exercising the core without a presentation layer.
//
// IMPORTANT: gopher-lua's LState is not goroutine-safe. Each Run creates
// a fresh state, executes on the calling goroutine, and closes it; do
// not share a Runner call across goroutines mid-execution.
package script

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/circuitstorm/internal/engine"
	"github.com/dshills/circuitstorm/internal/engine/circuit"
)

// Runner executes Lua scripts against an engine.
type Runner struct {
	eng    *engine.Engine
	freqHz float64
}

// NewRunner creates a Runner bound to the given engine. freqHz is the
// default analysis frequency used when a script calls analyze() without
// an argument.
func NewRunner(eng *engine.Engine, freqHz float64) *Runner {
	if freqHz <= 0 {
		freqHz = 50
	}
	return &Runner{eng: eng, freqHz: freqHz}
}

// Run executes Lua source against the engine.
func (r *Runner) Run(source string) error {
	L := lua.NewState()
	defer L.Close()

	r.register(L)
	if err := L.DoString(source); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// RunFile executes the Lua file at path against the engine.
func (r *Runner) RunFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return r.Run(string(src))
}

// register installs the global `circuit` table.
func (r *Runner) register(L *lua.LState) {
	tbl := L.NewTable()
	L.SetFuncs(tbl, map[string]lua.LGFunction{
		"add":     r.luaAdd,
		"remove":  r.luaRemove,
		"undo":    r.luaUndo,
		"find":    r.luaFind,
		"list":    r.luaList,
		"analyze": r.luaAnalyze,
		"log":     r.luaLog,
		"count":   r.luaCount,
	})
	L.SetGlobal("circuit", tbl)
}

// luaAdd implements circuit.add(type, value, group) -> id.
// Type and group are strings ("resistor"/"r", "series"/"s", ...).
func (r *Runner) luaAdd(L *lua.LState) int {
	typeName := L.CheckString(1)
	value := float64(L.CheckNumber(2))
	groupName := L.CheckString(3)

	t, ok := circuit.ParseType(typeName)
	if !ok {
		L.ArgError(1, fmt.Sprintf("unknown component type %q", typeName))
		return 0
	}
	g, ok := circuit.ParseGroup(groupName)
	if !ok {
		L.ArgError(3, fmt.Sprintf("unknown group %q", groupName))
		return 0
	}

	id, err := r.eng.Add(t, value, g)
	if err != nil {
		L.RaiseError("add: %v", err)
		return 0
	}
	L.Push(lua.LNumber(id))
	return 1
}

// luaRemove implements circuit.remove(id) -> bool.
func (r *Runner) luaRemove(L *lua.LState) int {
	id := engine.ID(L.CheckInt(1))
	L.Push(lua.LBool(r.eng.Remove(id)))
	return 1
}

// luaUndo implements circuit.undo() -> bool.
func (r *Runner) luaUndo(L *lua.LState) int {
	L.Push(lua.LBool(r.eng.Undo() == nil))
	return 1
}

// luaFind implements circuit.find(id) -> table | nil.
func (r *Runner) luaFind(L *lua.LState) int {
	id := engine.ID(L.CheckInt(1))
	c, ok := r.eng.Find(id)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(componentToTable(L, c))
	return 1
}

// luaList implements circuit.list() -> {series={...}, parallel={...}}.
func (r *Runner) luaList(L *lua.LState) int {
	series, parallel := r.eng.Groups()

	out := L.NewTable()
	out.RawSetString("series", idsToTable(L, series))
	out.RawSetString("parallel", idsToTable(L, parallel))
	L.Push(out)
	return 1
}

// luaAnalyze implements circuit.analyze([freq_hz]) -> table.
func (r *Runner) luaAnalyze(L *lua.LState) int {
	freq := r.freqHz
	if L.GetTop() >= 1 {
		freq = float64(L.CheckNumber(1))
		if freq <= 0 {
			L.ArgError(1, "frequency must be positive")
			return 0
		}
	}

	report := r.eng.Analyze(freq)

	out := L.NewTable()
	out.RawSetString("frequency_hz", lua.LNumber(report.FrequencyHz))
	out.RawSetString("component_count", lua.LNumber(report.ComponentCount))
	out.RawSetString("series_count", lua.LNumber(report.SeriesCount))
	out.RawSetString("parallel_count", lua.LNumber(report.ParallelCount))
	out.RawSetString("series_resistance", lua.LNumber(report.SeriesResistance))
	out.RawSetString("series_impedance", lua.LNumber(report.SeriesMagnitude))
	out.RawSetString("parallel_resistance", lua.LNumber(report.ParallelResistance))
	out.RawSetString("parallel_impedance", lua.LNumber(report.ParallelMagnitude))
	if report.Combined {
		out.RawSetString("combined_resistance", lua.LNumber(report.CombinedResistance))
		out.RawSetString("combined_impedance", lua.LNumber(report.CombinedMagnitude))
	}
	L.Push(out)
	return 1
}

// luaLog implements circuit.log() -> {descriptions}.
func (r *Runner) luaLog(L *lua.LState) int {
	entries := r.eng.OperationLog()
	out := L.NewTable()
	for _, e := range entries {
		out.Append(lua.LString(e))
	}
	L.Push(out)
	return 1
}

// luaCount implements circuit.count() -> n.
func (r *Runner) luaCount(L *lua.LState) int {
	L.Push(lua.LNumber(r.eng.Len()))
	return 1
}

func componentToTable(L *lua.LState, c engine.Component) *lua.LTable {
	tbl := L.NewTable()
	tbl.RawSetString("id", lua.LNumber(c.ID))
	tbl.RawSetString("type", lua.LString(c.Type.String()))
	tbl.RawSetString("value", lua.LNumber(c.Value))
	tbl.RawSetString("group", lua.LString(c.Group.String()))
	return tbl
}

func idsToTable(L *lua.LState, ids []engine.ID) *lua.LTable {
	tbl := L.NewTable()
	for _, id := range ids {
		tbl.Append(lua.LNumber(id))
	}
	return tbl
}
