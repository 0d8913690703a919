package filetype

// codeExtensions lists source, markup, build and config formats.
var codeExtensions = map[string]bool{
	".py": true, ".pyw": true, ".ipynb": true,
	".js": true, ".jsx": true, ".mjs": true, ".cjs": true,
	".ts": true, ".tsx": true,
	".java": true, ".kt": true, ".kts": true, ".scala": true, ".groovy": true, ".gradle": true,
	".c": true, ".h": true, ".cc": true, ".cpp": true, ".cxx": true, ".hpp": true, ".hh": true,
	".cs": true, ".fs": true, ".vb": true,
	".go": true, ".rs": true, ".rb": true, ".php": true, ".swift": true,
	".m": true, ".mm": true,
	".r": true, ".jl": true, ".lua": true, ".pl": true, ".pm": true,
	".dart": true, ".ex": true, ".exs": true, ".erl": true, ".hs": true, ".clj": true,
	".ml": true, ".elm": true, ".nim": true, ".zig": true, ".sol": true,
	".sh": true, ".bash": true, ".zsh": true, ".fish": true, ".ps1": true, ".bat": true,
	".sql": true, ".asm": true, ".s": true, ".f90": true, ".v": true, ".vhd": true,
	".glsl": true, ".hlsl": true, ".shader": true, ".gd": true,
	".html": true, ".htm": true, ".css": true, ".scss": true, ".sass": true, ".less": true,
	".vue": true, ".svelte": true,
	".json": true, ".yaml": true, ".yml": true, ".toml": true, ".xml": true,
	".ini": true, ".cfg": true, ".conf": true, ".env": true,
	".tf": true, ".proto": true, ".graphql": true, ".gql": true,
	".csproj": true, ".sln": true, ".cmake": true, ".mk": true,
}

// contentExtensions lists prose and document formats.
var contentExtensions = map[string]bool{
	".txt": true, ".md": true, ".markdown": true, ".rst": true, ".adoc": true, ".org": true,
	".tex": true, ".bib": true, ".doc": true, ".docx": true, ".odt": true, ".rtf": true,
	".pdf": true, ".pages": true, ".epub": true, ".wiki": true,
}

// imageExtensions lists raster, vector, raw photo and layered design formats.
var imageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true, ".webp": true,
	".tif": true, ".tiff": true, ".ico": true, ".heic": true, ".svg": true,
	".psd": true, ".ai": true, ".xcf": true, ".sketch": true, ".fig": true, ".xd": true,
	".raw": true, ".cr2": true, ".cr3": true, ".nef": true, ".arw": true, ".dng": true,
	".orf": true, ".rw2": true,
}

// languageExtensions maps an extension to the language it is written in.
// Config and document formats are left out on purpose: they do not count
// as languages a project demonstrates.
var languageExtensions = map[string]string{
	".py":     "Python",
	".pyw":    "Python",
	".ipynb":  "Python",
	".js":     "JavaScript",
	".jsx":    "JavaScript",
	".mjs":    "JavaScript",
	".cjs":    "JavaScript",
	".ts":     "TypeScript",
	".tsx":    "TypeScript",
	".java":   "Java",
	".kt":     "Kotlin",
	".kts":    "Kotlin",
	".scala":  "Scala",
	".groovy": "Groovy",
	".c":      "C",
	".h":      "C",
	".cc":     "C++",
	".cpp":    "C++",
	".cxx":    "C++",
	".hpp":    "C++",
	".hh":     "C++",
	".cs":     "C#",
	".fs":     "F#",
	".vb":     "Visual Basic",
	".go":     "Go",
	".rs":     "Rust",
	".rb":     "Ruby",
	".php":    "PHP",
	".swift":  "Swift",
	".m":      "Objective-C",
	".mm":     "Objective-C",
	".r":      "R",
	".jl":     "Julia",
	".lua":    "Lua",
	".pl":     "Perl",
	".pm":     "Perl",
	".dart":   "Dart",
	".ex":     "Elixir",
	".exs":    "Elixir",
	".erl":    "Erlang",
	".hs":     "Haskell",
	".clj":    "Clojure",
	".ml":     "OCaml",
	".elm":    "Elm",
	".nim":    "Nim",
	".zig":    "Zig",
	".sol":    "Solidity",
	".sh":     "Shell",
	".bash":   "Shell",
	".zsh":    "Shell",
	".fish":   "Shell",
	".ps1":    "PowerShell",
	".bat":    "Batch",
	".sql":    "SQL",
	".asm":    "Assembly",
	".s":      "Assembly",
	".f90":    "Fortran",
	".v":      "Verilog",
	".vhd":    "VHDL",
	".glsl":   "GLSL",
	".hlsl":   "HLSL",
	".shader": "HLSL",
	".gd":     "GDScript",
	".html":   "HTML",
	".htm":    "HTML",
	".css":    "CSS",
	".scss":   "SCSS",
	".sass":   "Sass",
	".less":   "Less",
	".vue":    "Vue",
	".svelte": "Svelte",
}

// ignoreNames holds directory and file names that are never analyzed:
// version control metadata, dependency caches and build output.
var ignoreNames = map[string]bool{
	".git":               true,
	".svn":               true,
	".hg":                true,
	"node_modules":       true,
	"__pycache__":        true,
	".venv":              true,
	"venv":               true,
	"build":              true,
	"dist":               true,
	"target":             true,
	".idea":              true,
	".vscode":            true,
	".next":              true,
	".nuxt":              true,
	".pytest_cache":      true,
	".mypy_cache":        true,
	".tox":               true,
	".gradle":            true,
	".cache":             true,
	"coverage":           true,
	"bin":                true,
	"obj":                true,
	"Pods":               true,
	"vendor":             true,
	"site-packages":      true,
	"__MACOSX":           true,
	".ipynb_checkpoints": true,
	".DS_Store":          true,
	"Thumbs.db":          true,
}
