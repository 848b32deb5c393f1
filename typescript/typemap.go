package typescript

// builtinTypes maps CLR full names to the TypeScript types they lower
// to. Generic entries name the TS base; the printer appends mapped type
// arguments. Anything absent here and absent from the emitted set is a
// hole the validation gate reports.
var builtinTypes = map[string]string{
	"System.Void":    "void",
	"System.Object":  "unknown",
	"System.String":  "string",
	"System.Char":    "string",
	"System.Boolean": "boolean",

	"System.SByte":   "number",
	"System.Byte":    "number",
	"System.Int16":   "number",
	"System.UInt16":  "number",
	"System.Int32":   "number",
	"System.UInt32":  "number",
	"System.Single":  "number",
	"System.Double":  "number",
	"System.Decimal": "number",

	"System.Int64":   "bigint",
	"System.UInt64":  "bigint",
	"System.IntPtr":  "bigint",
	"System.UIntPtr": "bigint",

	"System.DateTime":       "Date",
	"System.DateTimeOffset": "Date",
	"System.TimeSpan":       "number",
	"System.Guid":           "string",
	"System.Uri":            "string",

	"System.Nullable`1": "Nullable",

	"System.Collections.IEnumerable":                   "Iterable",
	"System.Collections.Generic.IEnumerable`1":         "Iterable",
	"System.Collections.Generic.List`1":                "Array",
	"System.Collections.Generic.IList`1":               "Array",
	"System.Collections.Generic.IReadOnlyList`1":       "ReadonlyArray",
	"System.Collections.Generic.ICollection`1":         "Array",
	"System.Collections.Generic.IReadOnlyCollection`1": "ReadonlyArray",
	"System.Collections.Generic.Dictionary`2":          "Map",
	"System.Collections.Generic.IDictionary`2":         "Map",
	"System.Collections.Generic.IReadOnlyDictionary`2": "ReadonlyMap",
	"System.Collections.Generic.HashSet`1":             "Set",
	"System.Collections.Generic.ISet`1":                "Set",
	"System.Collections.Generic.KeyValuePair`2":        "KeyValuePair",

	"System.Threading.Tasks.Task":        "Promise",
	"System.Threading.Tasks.Task`1":      "Promise",
	"System.Threading.Tasks.ValueTask":   "Promise",
	"System.Threading.Tasks.ValueTask`1": "Promise",

	"System.Exception": "Error",
}

// BuiltinType returns the TypeScript lowering for a well-known CLR type
// full name, if one exists.
func BuiltinType(clrFullName string) (string, bool) {
	ts, ok := builtinTypes[clrFullName]
	return ts, ok
}
