package solution

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// parserState tracks where in the solution file the parser currently
// is. Exactly one state is active at a time; the state a line is seen
// in decides how it is interpreted.
type parserState int

const (
	// stateOutside is between top-level blocks.
	stateOutside parserState = iota
	// stateInProject is inside a Project block, outside any
	// ProjectSection.
	stateInProject
	// stateInDependencies is inside a ProjectSection(ProjectDependencies).
	stateInDependencies
	// stateInSolutionItems is inside a ProjectSection(SolutionItems).
	stateInSolutionItems
	// stateInOtherSection is inside an unrecognized ProjectSection
	// whose lines are skipped.
	stateInOtherSection
	// stateInGlobalSection is inside a GlobalSection block; the
	// captured section name selects the line handler.
	stateInGlobalSection
)

// Project header line: Project("{TYPEGUID}") = "Name", "Path", "{GUID}"
var projectHeaderRegex = regexp.MustCompile(
	`^Project\("\{([^}]+)\}"\)\s*=\s*"([^"]+)",\s*"([^"]+)",\s*"\{([^}]+)\}"\s*$`,
)

// Parser parses text-based .sln files. Parsing is permissive:
// malformed or unrecognized lines inside a readable file are dropped,
// never reported as errors.
type Parser struct{}

// NewParser creates a new .sln parser.
func NewParser() *Parser {
	return &Parser{}
}

// CanParse checks if this parser supports the given file.
func (p *Parser) CanParse(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".sln"
}

// Parse reads and parses a .sln file.
func (p *Parser) Parse(path string) (*Solution, error) {
	if !p.CanParse(path) {
		return nil, &ParseError{
			FilePath: path,
			Message:  "not a .sln file",
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{
			FilePath: path,
			Message:  fmt.Sprintf("cannot open file: %v", err),
		}
	}
	defer file.Close()

	sol, err := p.ParseReader(file)
	if err != nil {
		return nil, &ParseError{
			FilePath: path,
			Message:  fmt.Sprintf("error reading file: %v", err),
		}
	}
	return sol, nil
}

// ParseReader parses solution text from r. The only possible error is
// a read failure.
func (p *Parser) ParseReader(r io.Reader) (*Solution, error) {
	sol := NewSolution()

	state := stateOutside
	globalSection := ""

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch state {
		case stateOutside:
			if strings.HasPrefix(line, "Project(") {
				if entry := parseProjectHeader(line); entry != nil {
					sol.addEntry(entry)
					state = stateInProject
				}
				continue
			}
			if strings.HasPrefix(line, "GlobalSection(") {
				globalSection = sectionName(line)
				state = stateInGlobalSection
			}

		case stateInProject, stateInDependencies, stateInSolutionItems, stateInOtherSection:
			current := sol.Projects[len(sol.Projects)-1]
			switch {
			case strings.HasPrefix(line, "ProjectSection("):
				switch {
				case strings.Contains(line, "ProjectDependencies"):
					state = stateInDependencies
				case strings.Contains(line, "SolutionItems"):
					state = stateInSolutionItems
				default:
					state = stateInOtherSection
				}
			case strings.HasPrefix(line, "EndProjectSection"):
				state = stateInProject
			case strings.HasPrefix(line, "EndProject"):
				state = stateOutside
			case state == stateInDependencies:
				if left, _, ok := splitOnce(line, '='); ok {
					if dep := strings.TrimSpace(left); dep != "" {
						current.Dependencies = append(current.Dependencies, dep)
					}
				}
			case state == stateInSolutionItems:
				if _, right, ok := splitOnce(line, '='); ok {
					if item := strings.TrimSpace(right); item != "" {
						current.SolutionItems = append(current.SolutionItems, item)
					}
				}
			}

		case stateInGlobalSection:
			if strings.HasPrefix(line, "EndGlobalSection") {
				globalSection = ""
				state = stateOutside
				continue
			}
			switch globalSection {
			case "SolutionConfigurationPlatforms":
				parseSolutionConfiguration(line, sol)
			case "ProjectConfigurationPlatforms":
				parseProjectConfiguration(line, sol)
			case "NestedProjects":
				parseNestedProject(line, sol)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	resolveConfigDefaults(sol)
	return sol, nil
}

// parseProjectHeader parses a project header line, returning nil when
// the line does not match the header grammar.
func parseProjectHeader(line string) *ProjectEntry {
	m := projectHeaderRegex.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	typeGUID := "{" + m[1] + "}"
	return &ProjectEntry{
		TypeGUID:         typeGUID,
		Name:             m[2],
		Path:             m[3],
		GUID:             "{" + m[4] + "}",
		IsSolutionFolder: typeGUID == TypeSolutionFolder,
	}
}

// sectionName extracts the parenthesized section name of a
// GlobalSection header, or "" when the parentheses are malformed.
func sectionName(line string) string {
	start := strings.IndexByte(line, '(')
	end := strings.IndexByte(line, ')')
	if start < 0 || end <= start+1 {
		return ""
	}
	return line[start+1 : end]
}

// parseSolutionConfiguration handles one line of a
// SolutionConfigurationPlatforms section, e.g. "Debug|x64 = Debug|x64".
func parseSolutionConfiguration(line string, sol *Solution) {
	left, _, _ := splitOnce(line, '=')
	config := strings.TrimSpace(left)
	if config == "" {
		return
	}
	sol.SolutionConfigs[config] = struct{}{}
	buildType, platform := splitConfig(config)
	if buildType != "" {
		sol.BuildTypes[buildType] = struct{}{}
	}
	if platform != "" {
		sol.Platforms[platform] = struct{}{}
	}
}

// parseProjectConfiguration handles one line of a
// ProjectConfigurationPlatforms section, e.g.
// "{GUID}.Debug|x64.ActiveCfg = Debug|x64".
func parseProjectConfiguration(line string, sol *Solution) {
	left, right, ok := splitOnce(line, '=')
	if !ok {
		return
	}
	left = strings.TrimSpace(left)
	right = strings.TrimSpace(right)

	if !strings.HasPrefix(left, "{") {
		return
	}
	guidEnd := strings.IndexByte(left, '}')
	if guidEnd < 0 {
		return
	}
	guid := left[:guidEnd+1]
	remainder := left[guidEnd+1:]
	if !strings.HasPrefix(remainder, ".") {
		return
	}
	remainder = remainder[1:]

	lastDot := strings.LastIndexByte(remainder, '.')
	if lastDot < 0 {
		return
	}
	solutionConfig := remainder[:lastDot]
	suffix := remainder[lastDot+1:]

	sol.SolutionConfigs[solutionConfig] = struct{}{}

	entry := sol.entryByGUID(guid)
	if entry == nil {
		return
	}
	if entry.ConfigMap == nil {
		entry.ConfigMap = map[string]*ConfigMapping{}
	}
	mapping := entry.ConfigMap[solutionConfig]
	if mapping == nil {
		mapping = &ConfigMapping{}
		entry.ConfigMap[solutionConfig] = mapping
	}

	switch {
	case suffix == "ActiveCfg":
		// ActiveCfg always wins, even over a value an earlier Build or
		// Deploy line already supplied.
		mapping.ProjectBuildType, mapping.ProjectPlatform = splitConfig(right)
		mapping.HasActive = true
	case strings.HasPrefix(suffix, "Build"):
		mapping.Build = true
		mapping.BuildSet = true
		if right != "" && !mapping.HasActive {
			mapping.ProjectBuildType, mapping.ProjectPlatform = splitConfig(right)
			mapping.HasActive = true
		}
	case strings.HasPrefix(suffix, "Deploy"):
		mapping.Deploy = true
		mapping.DeploySet = true
		if right != "" && !mapping.HasActive {
			mapping.ProjectBuildType, mapping.ProjectPlatform = splitConfig(right)
			mapping.HasActive = true
		}
	}
}

// parseNestedProject handles one line of a NestedProjects section,
// e.g. "{childGUID} = {parentGUID}". A repeated child keeps the last
// parent seen.
func parseNestedProject(line string, sol *Solution) {
	left, right, ok := splitOnce(line, '=')
	if !ok {
		return
	}
	child := strings.TrimSpace(left)
	parent := strings.TrimSpace(right)
	if child == "" || parent == "" {
		return
	}
	sol.NestedProjects[child] = parent
}

// resolveConfigDefaults gives every mapping with a resolved active
// configuration explicit build/deploy flags, defaulting both to false
// when the source never mentioned them.
func resolveConfigDefaults(sol *Solution) {
	for _, project := range sol.Projects {
		for _, mapping := range project.ConfigMap {
			if !mapping.HasActive {
				continue
			}
			if !mapping.BuildSet {
				mapping.Build = false
				mapping.BuildSet = true
			}
			if !mapping.DeploySet {
				mapping.Deploy = false
				mapping.DeploySet = true
			}
		}
	}
}
