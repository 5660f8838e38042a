package slnx

import (
	"encoding/xml"
	"sort"
	"strings"

	"github.com/komimoe/GotoSlnx/solution"
)

// Assemble builds the output document for a parsed solution. Assembly
// is deterministic: configuration declarations and folder nodes are
// ordered lexicographically, projects keep their parse order, and a
// project's configuration children follow the sorted solution
// configuration strings.
func Assemble(sol *solution.Solution) *Document {
	doc := &Document{
		Configurations: assembleConfigurations(sol),
	}

	resolver := solution.NewFolderResolver(sol)

	// Group projects under their resolved folder path, and index
	// folder entries by their own path to recover solution items.
	// When two folders resolve to the same path, the later entry's
	// items win.
	projectsByFolder := map[string][]*solution.ProjectEntry{}
	filesByFolder := map[string][]string{}
	for _, entry := range sol.Projects {
		if entry.IsSolutionFolder {
			filesByFolder[resolver.Resolve(entry.GUID)] = entry.SolutionItems
			continue
		}
		path := "/"
		if parent, ok := sol.NestedProjects[entry.GUID]; ok {
			path = resolver.Resolve(parent)
		}
		projectsByFolder[path] = append(projectsByFolder[path], entry)
	}

	folderPaths := make([]string, 0, len(filesByFolder))
	for path := range filesByFolder {
		folderPaths = append(folderPaths, path)
	}
	sort.Strings(folderPaths)

	for _, path := range folderPaths {
		folder := Folder{Name: path}
		for _, item := range filesByFolder[path] {
			folder.Files = append(folder.Files, File{Path: item})
		}
		for _, entry := range projectsByFolder[path] {
			folder.Projects = append(folder.Projects, assembleProject(entry, sol))
		}
		doc.Folders = append(doc.Folders, folder)
	}

	for _, entry := range projectsByFolder["/"] {
		doc.Projects = append(doc.Projects, assembleProject(entry, sol))
	}

	return doc
}

// assembleConfigurations returns the Configurations block, or nil when
// the solution declares no build types and no platforms.
func assembleConfigurations(sol *solution.Solution) *Configurations {
	if len(sol.BuildTypes) == 0 && len(sol.Platforms) == 0 {
		return nil
	}
	configs := &Configurations{}
	for _, buildType := range sortedKeys(sol.BuildTypes) {
		configs.BuildTypes = append(configs.BuildTypes, NamedElement{Name: buildType})
	}
	for _, platform := range sortedKeys(sol.Platforms) {
		configs.Platforms = append(configs.Platforms, NamedElement{Name: platform})
	}
	return configs
}

func assembleProject(entry *solution.ProjectEntry, sol *solution.Solution) Project {
	project := Project{
		Path: entry.Path,
		ID:   entry.GUID,
	}
	if entry.Name != "" && entry.Name != pathStem(entry.Path) {
		project.DisplayName = entry.Name
	}

	for _, depGUID := range entry.Dependencies {
		depPath, ok := sol.GUIDToPath[depGUID]
		if !ok {
			continue
		}
		project.Dependencies = append(project.Dependencies, BuildDependency{Project: depPath})
	}

	configs := make([]string, 0, len(entry.ConfigMap))
	for config := range entry.ConfigMap {
		configs = append(configs, config)
	}
	sort.Strings(configs)

	for _, config := range configs {
		mapping := entry.ConfigMap[config]
		if !mapping.HasActive {
			continue
		}
		if mapping.ProjectBuildType != "" {
			project.Configs = append(project.Configs, configElement("BuildType", config, mapping.ProjectBuildType))
		}
		if mapping.ProjectPlatform != "" {
			project.Configs = append(project.Configs, configElement("Platform", config, mapping.ProjectPlatform))
		}
		if mapping.BuildSet {
			project.Configs = append(project.Configs, configElement("Build", config, boolValue(mapping.Build)))
		}
		if mapping.DeploySet {
			project.Configs = append(project.Configs, configElement("Deploy", config, boolValue(mapping.Deploy)))
		}
	}

	return project
}

func configElement(name, solutionConfig, projectValue string) ConfigElement {
	return ConfigElement{
		XMLName:  xml.Name{Local: name},
		Solution: solutionConfig,
		Project:  projectValue,
	}
}

func boolValue(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// pathStem returns the file name of path without its extension,
// accepting both slash styles since solution paths are written with
// backslashes regardless of host platform.
func pathStem(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		path = path[i+1:]
	}
	if i := strings.LastIndexByte(path, '.'); i > 0 {
		path = path[:i]
	}
	return path
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
