package constant

// LuaModule is the name under which the stack is exposed to Lua scripts.
const LuaModule = "stack"

// Lua Module Functions - these constants define the functions available on the Lua stack module.
const (
	LuaPushFn  = "push"
	LuaPopFn   = "pop"
	LuaPeekFn  = "peek"
	LuaSizeFn  = "size"
	LuaEmptyFn = "empty"
	LuaClearFn = "clear"
)

// ScriptTemplate is a starter Lua script printed by "stackq run template".
const ScriptTemplate = `-- {{ .Name }}
-- Drives the {{ .App }} stack from Lua. pop and peek return value, nil or nil, err.

local stack = require("{{ .Module }}")

for i = 1, 3 do
  stack.push(tostring(i))
end

local top, err = stack.pop()
if err ~= nil then
  error(err)
end

print("popped " .. top .. ", " .. stack.size() .. " left")
`
