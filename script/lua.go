package script

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	libs "github.com/metafates/mangal-lua-libs"
	"github.com/spf13/viper"
	"github.com/stackq/stackq/constant"
	"github.com/stackq/stackq/filesystem"
	"github.com/stackq/stackq/key"
	"github.com/stackq/stackq/stack"
	"github.com/stackq/stackq/util"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

type compiled struct {
	source string
	proto  *lua.FunctionProto
}

// protoCache maps a script path to its last compiled prototype.
var protoCache sync.Map

// compile returns the bytecode prototype of the script at path, reusing the cached one while the source is unchanged.
func compile(path string) (*lua.FunctionProto, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, err
	}

	if cached, ok := protoCache.Load(path); ok && cached.(compiled).source == string(data) {
		return cached.(compiled).proto, nil
	}

	chunk, err := parse.Parse(bytes.NewReader(data), path)
	if err != nil {
		return nil, err
	}

	proto, err := lua.Compile(chunk, path)
	if err != nil {
		return nil, err
	}

	protoCache.Store(path, compiled{source: string(data), proto: proto})
	return proto, nil
}

// RunLua executes the Lua script at path against s.
// The script reaches the stack through require("stack"); every call is recorded as a Step.
// Output of print is written to out.
func RunLua(s stack.Interface[string], path string, out io.Writer) ([]Step, error) {
	proto, err := compile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", util.FileStem(path), err)
	}

	L := lua.NewState()
	defer L.Close()

	if viper.GetBool(key.ScriptsLuaLibs) {
		libs.Preload(L)
	}

	var steps []Step
	L.PreloadModule(constant.LuaModule, stackModule(s, &steps))
	L.SetGlobal("print", L.NewFunction(printTo(out)))

	L.Push(L.NewFunctionFromProto(proto))
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return steps, fmt.Errorf("run %s: %w", util.FileStem(path), err)
	}

	return steps, nil
}

func stackModule(s stack.Interface[string], steps *[]Step) lua.LGFunction {
	exec := func(in Instruction) Step {
		step := Exec(s, in)
		*steps = append(*steps, step)
		return step
	}

	// top returns value, nil or nil, err in the usual Lua convention.
	top := func(op Op) lua.LGFunction {
		return func(L *lua.LState) int {
			step := exec(Instruction{Op: op})
			if err := step.Result.Error(); err != nil {
				L.Push(lua.LNil)
				L.Push(lua.LString(err.Error()))
				return 2
			}
			L.Push(lua.LString(step.Result.MustGet()))
			L.Push(lua.LNil)
			return 2
		}
	}

	functions := map[string]lua.LGFunction{
		constant.LuaPushFn: func(L *lua.LState) int {
			if L.Get(1) == lua.LNil {
				L.ArgError(1, "value expected")
				return 0
			}
			exec(Instruction{Op: OpPush, Arg: L.ToString(1)})
			return 0
		},
		constant.LuaPopFn:  top(OpPop),
		constant.LuaPeekFn: top(OpPeek),
		constant.LuaSizeFn: func(L *lua.LState) int {
			exec(Instruction{Op: OpSize})
			L.Push(lua.LNumber(s.Len()))
			return 1
		},
		constant.LuaEmptyFn: func(L *lua.LState) int {
			exec(Instruction{Op: OpEmpty})
			L.Push(lua.LBool(s.IsEmpty()))
			return 1
		},
		constant.LuaClearFn: func(L *lua.LState) int {
			exec(Instruction{Op: OpClear})
			return 0
		},
	}

	return func(L *lua.LState) int {
		L.Push(L.SetFuncs(L.NewTable(), functions))
		return 1
	}
}

func printTo(out io.Writer) lua.LGFunction {
	return func(L *lua.LState) int {
		args := make([]string, L.GetTop())
		for i := range args {
			args[i] = L.ToStringMeta(L.Get(i + 1)).String()
		}
		fmt.Fprintln(out, strings.Join(args, "\t"))
		return 0
	}
}
