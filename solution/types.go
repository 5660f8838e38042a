// Package solution parses Visual Studio text solution files (.sln)
// into an in-memory model of projects, solution folders, dependencies,
// and per-configuration build mappings.
package solution

import "fmt"

// TypeSolutionFolder identifies a solution folder entry in a project
// header line.
const TypeSolutionFolder = "{66A26720-8FB5-11D2-AA7E-00C04F688DDE}"

// ConfigMapping holds the mapping of one solution configuration to a
// project's own configuration, together with the build/deploy flags
// for that pairing.
type ConfigMapping struct {
	// ProjectBuildType is the project-side build type (e.g. "Debug").
	// May be empty when the source line carried no value.
	ProjectBuildType string

	// ProjectPlatform is the project-side platform (e.g. "x64").
	ProjectPlatform string

	// HasActive reports whether an active configuration was resolved,
	// either from an ActiveCfg line or from the value of a Build or
	// Deploy line seen before any ActiveCfg. Build and deploy flags
	// are meaningful only when HasActive is true.
	HasActive bool

	// Build and BuildSet carry the build flag and whether it was
	// resolved to a concrete value. After Parse returns, BuildSet is
	// always true when HasActive is true.
	Build    bool
	BuildSet bool

	// Deploy and DeploySet mirror Build/BuildSet for deployment.
	Deploy    bool
	DeploySet bool
}

// ProjectEntry is one Project(...) ... EndProject block of a solution:
// either a buildable project or a solution folder.
type ProjectEntry struct {
	// TypeGUID identifies the project type. Solution folders carry
	// TypeSolutionFolder.
	TypeGUID string

	// Name is the display name from the project header.
	Name string

	// Path is the project file path exactly as written in the
	// solution. Empty or meaningless for solution folders.
	Path string

	// GUID is the entry's unique identifier, braces included.
	GUID string

	// Dependencies lists referenced project GUIDs from a
	// ProjectDependencies section, in source order.
	Dependencies []string

	// SolutionItems lists file paths attached to a solution folder
	// through a SolutionItems section, in source order.
	SolutionItems []string

	// ConfigMap maps solution configuration strings to this project's
	// configuration mapping.
	ConfigMap map[string]*ConfigMapping

	// IsSolutionFolder reports whether TypeGUID is the well-known
	// solution folder type.
	IsSolutionFolder bool
}

// Solution is the parsed model of one .sln file. A Solution is built
// by a single Parse call and owns all of its entries and indexes; it
// is not shared across conversions.
type Solution struct {
	// Projects holds every parsed entry, projects and folders alike,
	// in source order.
	Projects []*ProjectEntry

	// GUIDToPath maps project GUIDs to project file paths. Solution
	// folders are not present.
	GUIDToPath map[string]string

	// GUIDToName maps every entry's GUID to its display name.
	GUIDToName map[string]string

	// NestedProjects maps a child GUID to its parent folder GUID. At
	// most one parent per child; a later edge for the same child
	// replaces the earlier one.
	NestedProjects map[string]string

	// SolutionConfigs, BuildTypes, and Platforms are the distinct
	// configuration strings discovered while parsing. Storage is
	// unordered; callers sort for output.
	SolutionConfigs map[string]struct{}
	BuildTypes      map[string]struct{}
	Platforms       map[string]struct{}

	// guidIndex maps GUIDs to positions in Projects so configuration
	// lines resolve their target without a linear scan.
	guidIndex map[string]int
}

// NewSolution returns an empty solution model.
func NewSolution() *Solution {
	return &Solution{
		GUIDToPath:      map[string]string{},
		GUIDToName:      map[string]string{},
		NestedProjects:  map[string]string{},
		SolutionConfigs: map[string]struct{}{},
		BuildTypes:      map[string]struct{}{},
		Platforms:       map[string]struct{}{},
		guidIndex:       map[string]int{},
	}
}

// addEntry appends a parsed project header and registers it in the
// lookup indexes.
func (s *Solution) addEntry(entry *ProjectEntry) {
	s.guidIndex[entry.GUID] = len(s.Projects)
	s.Projects = append(s.Projects, entry)
	s.GUIDToName[entry.GUID] = entry.Name
	if !entry.IsSolutionFolder {
		s.GUIDToPath[entry.GUID] = entry.Path
	}
}

// entryByGUID returns the entry registered under guid, or nil.
func (s *Solution) entryByGUID(guid string) *ProjectEntry {
	if i, ok := s.guidIndex[guid]; ok {
		return s.Projects[i]
	}
	return nil
}

// ParseError reports a failure to read a solution file. Malformed
// content never produces a ParseError; only the file itself being
// unusable does.
type ParseError struct {
	// FilePath is the path to the file being parsed
	FilePath string

	// Line is the line number where the error occurred, if known
	Line int

	// Message describes what went wrong
	Message string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.FilePath, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}
