package detect

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"log"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/tidwall/gjson"
	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"

	"github.com/julianshen/projinsight/internal/scan"
)

var errInvalidJSON = errors.New("invalid JSON")

// dependency is one entry parsed out of a manifest.
type dependency struct {
	Name    string
	Version string
}

// manifestParser turns one kind of manifest into dependencies and maps
// each dependency name to a framework.
type manifestParser struct {
	name    string
	match   func(lower string) bool
	parse   func(data []byte) ([]dependency, error)
	resolve func(dep string) string
}

var manifestParsers = []manifestParser{
	{name: "package.json", match: exact("package.json"), parse: parsePackageJSON, resolve: lookup(npmPackages)},
	{name: "composer.json", match: exact("composer.json"), parse: parseComposerJSON, resolve: lookup(phpPackages)},
	{name: "yarn.lock", match: exact("yarn.lock"), parse: parseYarnLock, resolve: lookup(npmPackages)},
	{name: "requirements.txt", match: requirementsFile, parse: parseRequirements, resolve: pythonLookup},
	{name: "Pipfile", match: exact("pipfile"), parse: parsePipfile, resolve: pythonLookup},
	{name: "setup.py", match: exact("setup.py"), parse: parseSetupPy, resolve: pythonLookup},
	{name: "pyproject.toml", match: exact("pyproject.toml"), parse: parsePyproject, resolve: pythonLookup},
	{name: "poetry.lock", match: exact("poetry.lock"), parse: parseTOMLLock, resolve: pythonLookup},
	{name: "Cargo.toml", match: exact("cargo.toml"), parse: parseCargoToml, resolve: rustLookup},
	{name: "Cargo.lock", match: exact("cargo.lock"), parse: parseTOMLLock, resolve: rustLookup},
	{name: "go.mod", match: exact("go.mod"), parse: parseGoMod, resolve: prefixLookup(goModules, "/")},
	{name: "Gemfile", match: exact("gemfile"), parse: parseGemfile, resolve: lookup(rubyGems)},
	{name: "pom.xml", match: exact("pom.xml"), parse: parsePom, resolve: mavenLookup},
	{name: "build.gradle", match: oneOf("build.gradle", "build.gradle.kts"), parse: keywords(jvmKeywords), resolve: identity},
	{name: "build.sbt", match: exact("build.sbt"), parse: keywords(jvmKeywords), resolve: identity},
	{name: "csproj", match: suffix(".csproj"), parse: parseCsproj, resolve: prefixLookup(dotnetPackages, ".")},
	{name: "pubspec.yaml", match: exact("pubspec.yaml"), parse: parsePubspec, resolve: lookup(dartPackages)},
	{name: "Podfile", match: exact("podfile"), parse: parsePodfile, resolve: swiftLookup},
	{name: "Package.swift", match: exact("package.swift"), parse: parsePackageSwift, resolve: swiftLookup},
	{name: "CMakeLists.txt", match: exact("cmakelists.txt"), parse: keywords(cmakeKeywords), resolve: identity},
	{name: "compose", match: composeFile, parse: parseCompose, resolve: dockerLookup},
	{name: "Chart.yaml", match: exact("chart.yaml"), parse: parseChart, resolve: fixed("Helm")},
}

func findManifest(lower string) (manifestParser, bool) {
	for _, m := range manifestParsers {
		if m.match(lower) {
			return m, true
		}
	}
	return manifestParser{}, false
}

// detect reads and parses f. Read and parse failures are logged and yield
// no signals.
func (m manifestParser) detect(f scan.FileRecord) []FrameworkSignal {
	data, err := readCapped(f.Path)
	if err != nil {
		log.Printf("detect: skipping unreadable %s %q: %v", m.name, f.RelPath, err)
		return nil
	}
	deps, err := m.parse(data)
	if err != nil {
		log.Printf("detect: skipping malformed %s %q: %v", m.name, f.RelPath, err)
		return nil
	}

	var out []FrameworkSignal
	for _, d := range deps {
		fw := m.resolve(d.Name)
		if fw == "" {
			continue
		}
		out = append(out, FrameworkSignal{
			Name:    fw,
			Source:  SourceManifest,
			File:    f.RelPath,
			Version: normalizeVersion(d.Version),
		})
	}
	return out
}

// normalizeVersion reduces a version constraint such as "^18.2.0",
// ">=4.2,<5" or "v1.9.1" to the semantic version it starts from, or "" when
// no version can be read from it.
func normalizeVersion(constraint string) string {
	s := strings.TrimSpace(constraint)
	s = strings.TrimLeft(s, "^~=<>! ")
	if i := strings.IndexAny(s, ", ;|"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSuffix(s, ".*")
	if s == "" || s == "*" {
		return ""
	}
	v, err := semver.NewVersion(s)
	if err != nil {
		return ""
	}
	return v.String()
}

// Matchers.

func exact(name string) func(string) bool {
	return func(lower string) bool { return lower == name }
}

func oneOf(names ...string) func(string) bool {
	return func(lower string) bool {
		for _, n := range names {
			if lower == n {
				return true
			}
		}
		return false
	}
}

func suffix(ext string) func(string) bool {
	return func(lower string) bool { return strings.HasSuffix(lower, ext) }
}

// requirementsFile matches requirements.txt, requirements-dev.txt and the like.
func requirementsFile(lower string) bool {
	return strings.HasPrefix(lower, "requirements") && strings.HasSuffix(lower, ".txt")
}

func composeFile(lower string) bool {
	switch lower {
	case "docker-compose.yml", "docker-compose.yaml", "compose.yml", "compose.yaml":
		return true
	}
	return false
}

// Resolvers.

func lookup(table map[string]string) func(string) string {
	return func(dep string) string { return table[strings.ToLower(dep)] }
}

func identity(dep string) string { return dep }

func fixed(name string) func(string) string {
	return func(string) string { return name }
}

// prefixLookup returns the framework of the longest table key that equals
// dep or is a sep-delimited prefix of it.
func prefixLookup(table map[string]string, sep string) func(string) string {
	return func(dep string) string {
		dep = strings.ToLower(dep)
		best, fw := 0, ""
		for key, name := range table {
			if (dep == key || strings.HasPrefix(dep, key+sep)) && len(key) > best {
				best, fw = len(key), name
			}
		}
		return fw
	}
}

// mavenLookup resolves "groupId:artifactId" coordinates by group prefix
// first and by keyword second, so spring-boot starters map to Spring Boot
// and junit:junit still maps to JUnit.
func mavenLookup(coord string) string {
	coord = strings.ToLower(coord)
	group, _, _ := strings.Cut(coord, ":")
	if fw := prefixLookup(jvmPackages, ".")(group); fw != "" {
		return fw
	}
	best, fw := 0, ""
	for key, name := range jvmKeywords {
		if strings.Contains(coord, key) && len(key) > best {
			best, fw = len(key), name
		}
	}
	return fw
}

// pythonLookup normalizes a distribution or module name the way PyPI does
// before consulting the table.
func pythonLookup(dep string) string {
	name := strings.ToLower(dep)
	name = strings.NewReplacer("_", "-", ".", "-").Replace(name)
	return pythonPackages[name]
}

func rustLookup(dep string) string {
	return rustCrates[strings.ReplaceAll(strings.ToLower(dep), "_", "-")]
}

func swiftLookup(dep string) string {
	name := strings.ToLower(dep)
	if fw, ok := swiftModules[name]; ok {
		return fw
	}
	if strings.HasPrefix(name, "firebase") {
		return "Firebase"
	}
	return ""
}

// dockerLookup maps an image reference such as "library/postgres:16" to the
// service it runs.
func dockerLookup(image string) string {
	name := strings.ToLower(image)
	if i := strings.IndexAny(name, ":@"); i >= 0 {
		name = name[:i]
	}
	return dockerImages[path.Base(name)]
}

// Parsers.

func parsePackageJSON(data []byte) ([]dependency, error) {
	return jsonDependencies(data, "dependencies", "devDependencies", "peerDependencies", "optionalDependencies")
}

func parseComposerJSON(data []byte) ([]dependency, error) {
	return jsonDependencies(data, "require", "require-dev")
}

func jsonDependencies(data []byte, sections ...string) ([]dependency, error) {
	if !gjson.ValidBytes(data) {
		return nil, errInvalidJSON
	}
	var deps []dependency
	for _, section := range sections {
		gjson.GetBytes(data, gjsonEscape(section)).ForEach(func(key, value gjson.Result) bool {
			deps = append(deps, dependency{Name: key.String(), Version: value.String()})
			return true
		})
	}
	return deps, nil
}

func gjsonEscape(key string) string {
	return strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`).Replace(key)
}

// parseYarnLock reads the package names from the entry headers of a yarn
// v1 or berry lockfile, e.g. `"@babel/core@^7.0.0", "@babel/core@^7.1.0":`.
func parseYarnLock(data []byte) ([]dependency, error) {
	var deps []dependency
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || line[0] == ' ' || line[0] == '#' || !strings.HasSuffix(line, ":") {
			continue
		}
		first := strings.TrimSuffix(line, ":")
		if i := strings.Index(first, ", "); i >= 0 {
			first = first[:i]
		}
		first = strings.Trim(first, `"`)
		at := strings.LastIndex(first, "@")
		if at <= 0 {
			continue
		}
		deps = append(deps, dependency{Name: first[:at], Version: first[at+1:]})
	}
	return deps, sc.Err()
}

var requirementRe = regexp.MustCompile(`^([A-Za-z0-9][A-Za-z0-9._-]*)(?:\[[^\]]*\])?\s*(.*)$`)

func parseRequirements(data []byte) ([]dependency, error) {
	var deps []dependency
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := sc.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "-") {
			continue
		}
		if d, ok := parseRequirement(line); ok {
			deps = append(deps, d)
		}
	}
	return deps, sc.Err()
}

// parseRequirement reads a PEP 508 style specifier such as
// "django[argon2]>=4.2; python_version>'3.8'".
func parseRequirement(spec string) (dependency, bool) {
	if i := strings.Index(spec, ";"); i >= 0 {
		spec = spec[:i]
	}
	m := requirementRe.FindStringSubmatch(strings.TrimSpace(spec))
	if m == nil {
		return dependency{}, false
	}
	return dependency{Name: m[1], Version: strings.TrimSpace(m[2])}, true
}

type pipfile struct {
	Packages    map[string]any `toml:"packages"`
	DevPackages map[string]any `toml:"dev-packages"`
}

func parsePipfile(data []byte) ([]dependency, error) {
	var pf pipfile
	if err := toml.Unmarshal(data, &pf); err != nil {
		return nil, err
	}
	return append(tableDependencies(pf.Packages), tableDependencies(pf.DevPackages)...), nil
}

// tableDependencies flattens a TOML or YAML dependency table whose values
// are either a version string or a table with a "version" key.
func tableDependencies(table map[string]any) []dependency {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	deps := make([]dependency, 0, len(names))
	for _, name := range names {
		d := dependency{Name: name}
		switch v := table[name].(type) {
		case string:
			d.Version = v
		case map[string]any:
			if s, ok := v["version"].(string); ok {
				d.Version = s
			}
		}
		deps = append(deps, d)
	}
	return deps
}

var quotedSpecRe = regexp.MustCompile(`['"]([A-Za-z0-9][A-Za-z0-9._-]*(?:\[[^\]]*\])?\s*(?:[<>=!~][^'"]*)?)['"]`)

// parseSetupPy picks requirement-looking string literals out of setup.py.
func parseSetupPy(data []byte) ([]dependency, error) {
	var deps []dependency
	for _, m := range quotedSpecRe.FindAllSubmatch(data, -1) {
		if d, ok := parseRequirement(string(m[1])); ok {
			deps = append(deps, d)
		}
	}
	return deps, nil
}

type pyproject struct {
	Project struct {
		Dependencies         []string            `toml:"dependencies"`
		OptionalDependencies map[string][]string `toml:"optional-dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Dependencies    map[string]any `toml:"dependencies"`
			DevDependencies map[string]any `toml:"dev-dependencies"`
			Group           map[string]struct {
				Dependencies map[string]any `toml:"dependencies"`
			} `toml:"group"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

func parsePyproject(data []byte) ([]dependency, error) {
	var pp pyproject
	if err := toml.Unmarshal(data, &pp); err != nil {
		return nil, err
	}

	var deps []dependency
	specs := append([]string(nil), pp.Project.Dependencies...)
	extras := make([]string, 0, len(pp.Project.OptionalDependencies))
	for extra := range pp.Project.OptionalDependencies {
		extras = append(extras, extra)
	}
	sort.Strings(extras)
	for _, extra := range extras {
		specs = append(specs, pp.Project.OptionalDependencies[extra]...)
	}
	for _, spec := range specs {
		if d, ok := parseRequirement(spec); ok {
			deps = append(deps, d)
		}
	}

	poetry := pp.Tool.Poetry
	deps = append(deps, tableDependencies(poetry.Dependencies)...)
	deps = append(deps, tableDependencies(poetry.DevDependencies)...)
	groups := make([]string, 0, len(poetry.Group))
	for g := range poetry.Group {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	for _, g := range groups {
		deps = append(deps, tableDependencies(poetry.Group[g].Dependencies)...)
	}
	return deps, nil
}

// tomlLock covers the [[package]] arrays of poetry.lock and Cargo.lock.
type tomlLock struct {
	Package []struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
}

func parseTOMLLock(data []byte) ([]dependency, error) {
	var lock tomlLock
	if err := toml.Unmarshal(data, &lock); err != nil {
		return nil, err
	}
	deps := make([]dependency, 0, len(lock.Package))
	for _, p := range lock.Package {
		deps = append(deps, dependency{Name: p.Name, Version: p.Version})
	}
	return deps, nil
}

type cargoManifest struct {
	Dependencies      map[string]any `toml:"dependencies"`
	DevDependencies   map[string]any `toml:"dev-dependencies"`
	BuildDependencies map[string]any `toml:"build-dependencies"`
	Workspace         struct {
		Dependencies map[string]any `toml:"dependencies"`
	} `toml:"workspace"`
}

func parseCargoToml(data []byte) ([]dependency, error) {
	var cm cargoManifest
	if err := toml.Unmarshal(data, &cm); err != nil {
		return nil, err
	}
	var deps []dependency
	for _, table := range []map[string]any{cm.Dependencies, cm.DevDependencies, cm.BuildDependencies, cm.Workspace.Dependencies} {
		deps = append(deps, tableDependencies(table)...)
	}
	return deps, nil
}

func parseGoMod(data []byte) ([]dependency, error) {
	f, err := modfile.Parse("go.mod", data, nil)
	if err != nil {
		return nil, err
	}
	deps := make([]dependency, 0, len(f.Require))
	for _, r := range f.Require {
		deps = append(deps, dependency{Name: r.Mod.Path, Version: r.Mod.Version})
	}
	return deps, nil
}

var gemRe = regexp.MustCompile(`^\s*gem\s+['"]([^'"]+)['"](?:\s*,\s*['"]([^'"]+)['"])?`)

func parseGemfile(data []byte) ([]dependency, error) {
	var deps []dependency
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if m := gemRe.FindStringSubmatch(sc.Text()); m != nil {
			deps = append(deps, dependency{Name: m[1], Version: m[2]})
		}
	}
	return deps, sc.Err()
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

type pomProject struct {
	XMLName             xml.Name        `xml:"project"`
	Parent              pomDependency   `xml:"parent"`
	Dependencies        []pomDependency `xml:"dependencies>dependency"`
	ManagedDependencies []pomDependency `xml:"dependencyManagement>dependencies>dependency"`
	Plugins             []pomDependency `xml:"build>plugins>plugin"`
}

func parsePom(data []byte) ([]dependency, error) {
	var p pomProject
	if err := xml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	var deps []dependency
	all := append([]pomDependency{p.Parent}, p.Dependencies...)
	all = append(all, p.ManagedDependencies...)
	all = append(all, p.Plugins...)
	for _, d := range all {
		if d.GroupID == "" && d.ArtifactID == "" {
			continue
		}
		deps = append(deps, dependency{Name: d.GroupID + ":" + d.ArtifactID, Version: d.Version})
	}
	return deps, nil
}

type csproj struct {
	XMLName    xml.Name `xml:"Project"`
	Sdk        string   `xml:"Sdk,attr"`
	References []struct {
		Include string `xml:"Include,attr"`
		Version string `xml:"Version,attr"`
	} `xml:"ItemGroup>PackageReference"`
}

func parseCsproj(data []byte) ([]dependency, error) {
	var p csproj
	if err := xml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	var deps []dependency
	if p.Sdk != "" {
		deps = append(deps, dependency{Name: p.Sdk})
	}
	for _, r := range p.References {
		deps = append(deps, dependency{Name: r.Include, Version: r.Version})
	}
	return deps, nil
}

type pubspec struct {
	Dependencies    map[string]any `yaml:"dependencies"`
	DevDependencies map[string]any `yaml:"dev_dependencies"`
}

func parsePubspec(data []byte) ([]dependency, error) {
	var ps pubspec
	if err := yaml.Unmarshal(data, &ps); err != nil {
		return nil, err
	}
	return append(tableDependencies(ps.Dependencies), tableDependencies(ps.DevDependencies)...), nil
}

var podRe = regexp.MustCompile(`^\s*pod\s+['"]([^'"/]+)`)

func parsePodfile(data []byte) ([]dependency, error) {
	var deps []dependency
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if m := podRe.FindStringSubmatch(sc.Text()); m != nil {
			deps = append(deps, dependency{Name: m[1]})
		}
	}
	return deps, sc.Err()
}

var swiftPackageRe = regexp.MustCompile(`\.package\(\s*(?:name:\s*"[^"]*",\s*)?url:\s*"([^"]+)"(?:,\s*(?:from|exact):\s*"([^"]+)")?`)

func parsePackageSwift(data []byte) ([]dependency, error) {
	var deps []dependency
	for _, m := range swiftPackageRe.FindAllSubmatch(data, -1) {
		name := strings.TrimSuffix(path.Base(string(m[1])), ".git")
		deps = append(deps, dependency{Name: name, Version: string(m[2])})
	}
	return deps, nil
}

type composeProject struct {
	Services map[string]struct {
		Image string `yaml:"image"`
	} `yaml:"services"`
}

// parseCompose reports Docker Compose itself plus the image of every
// service.
func parseCompose(data []byte) ([]dependency, error) {
	var cp composeProject
	if err := yaml.Unmarshal(data, &cp); err != nil {
		return nil, err
	}
	if len(cp.Services) == 0 {
		return nil, nil
	}
	deps := []dependency{{Name: "docker-compose"}}
	names := make([]string, 0, len(cp.Services))
	for name := range cp.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if img := cp.Services[name].Image; img != "" {
			deps = append(deps, dependency{Name: img})
		}
	}
	return deps, nil
}

type helmChart struct {
	APIVersion string `yaml:"apiVersion"`
	Name       string `yaml:"name"`
	Version    string `yaml:"version"`
}

func parseChart(data []byte) ([]dependency, error) {
	var c helmChart
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if c.APIVersion == "" || c.Name == "" {
		return nil, nil
	}
	return []dependency{{Name: c.Name, Version: c.Version}}, nil
}

// keywords builds a parser that reports the table value of every key found
// as a substring of the lowercased content.
func keywords(table map[string]string) func([]byte) ([]dependency, error) {
	return func(data []byte) ([]dependency, error) {
		content := strings.ToLower(string(data))
		var deps []dependency
		for key, fw := range table {
			if strings.Contains(content, key) {
				deps = append(deps, dependency{Name: fw})
			}
		}
		sort.Slice(deps, func(i, j int) bool { return deps[i].Name < deps[j].Name })
		return deps, nil
	}
}
