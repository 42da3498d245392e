package config

const SourceFileExt = ".jot"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".jot", ".js", ".mjs"}

// ManifestFileName is the optional project manifest looked up from the
// working directory (entry point, module roots, aliases).
const ManifestFileName = "jot.yaml"

// HistoryFileName is the REPL history file, stored in the user's home
// directory.
const HistoryFileName = ".jot_history"

// MaxCallDepth bounds user-level recursion before the evaluator bails
// out instead of exhausting the Go stack.
const MaxCallDepth = 10000

// MaxParseDepth bounds expression nesting in the parser.
const MaxParseDepth = 500

// DefaultExportName is the export-table key used by `export default`.
const DefaultExportName = "default"

// Reserved global names registered before user code runs
const (
	ConsoleGlobalName = "console"
	MathGlobalName    = "Math"
	JSONGlobalName    = "JSON"
	YAMLGlobalName    = "yaml"
	CryptoGlobalName  = "crypto"
	DBGlobalName      = "db"
	TimeGlobalName    = "time"
	PromiseGlobalName = "Promise"
	ErrorGlobalName   = "Error"
	ObjectGlobalName  = "Object"
	ArrayGlobalName   = "Array"
	PrintFuncName     = "print"
)
