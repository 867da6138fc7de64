package samples

import (
	"context"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/regexplore/internal/match"
)

// loadTimeout bounds script execution. A samples script that loops
// forever must not hang startup.
const loadTimeout = 2 * time.Second

// LoadLua executes a user samples script in a sandboxed Lua state and
// returns the samples it defines. The script must return a list of
// tables with "description", "pattern" and optional "flags" fields:
//
//	return {
//	    { description = "Hex color", pattern = "#%x6", flags = "gi" },
//	}
//
// Entries missing a pattern are skipped. Only the base, table and
// string libraries are opened; the script has no io, os or network
// access.
func LoadLua(path string) ([]Sample, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
	} {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			return nil, fmt.Errorf("opening lua library %s: %w", lib.name, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()
	L.SetContext(ctx)

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("running samples script %s: %w", path, err)
	}

	ret := L.Get(-1)
	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("samples script %s: expected a table return, got %s", path, ret.Type())
	}

	var out []Sample
	tbl.ForEach(func(_, value lua.LValue) {
		entry, ok := value.(*lua.LTable)
		if !ok {
			return
		}
		pattern := lua.LVAsString(entry.RawGetString("pattern"))
		if pattern == "" {
			return
		}
		out = append(out, Sample{
			Description: lua.LVAsString(entry.RawGetString("description")),
			Pattern:     pattern,
			Flags:       match.ParseFlags(lua.LVAsString(entry.RawGetString("flags"))),
		})
	})
	return out, nil
}
