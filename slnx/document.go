// Package slnx assembles and writes XML solution documents (.slnx)
// from a parsed text solution.
package slnx

import "encoding/xml"

// Document is the root <Solution> element of a .slnx file.
type Document struct {
	XMLName        xml.Name        `xml:"Solution"`
	Configurations *Configurations `xml:"Configurations,omitempty"`
	Folders        []Folder        `xml:"Folder,omitempty"`
	Projects       []Project       `xml:"Project,omitempty"`
}

// Configurations declares the solution-wide build types and platforms.
type Configurations struct {
	BuildTypes []NamedElement `xml:"BuildType"`
	Platforms  []NamedElement `xml:"Platform"`
}

// NamedElement is an element carrying only a Name attribute.
type NamedElement struct {
	Name string `xml:"Name,attr"`
}

// Folder is a solution folder, named by its full hierarchical path.
type Folder struct {
	Name     string    `xml:"Name,attr"`
	Files    []File    `xml:"File,omitempty"`
	Projects []Project `xml:"Project,omitempty"`
}

// File is a solution item attached to a folder.
type File struct {
	Path string `xml:"Path,attr"`
}

// Project is a project reference with its dependency and
// per-configuration children.
type Project struct {
	XMLName      xml.Name          `xml:"Project"`
	Path         string            `xml:"Path,attr"`
	ID           string            `xml:"Id,attr"`
	DisplayName  string            `xml:"DisplayName,attr,omitempty"`
	Dependencies []BuildDependency `xml:"BuildDependency,omitempty"`
	// Configs holds the BuildType/Platform/Build/Deploy children in
	// emission order; each element names itself through XMLName.
	Configs []ConfigElement
}

// BuildDependency references another project by its file path.
type BuildDependency struct {
	Project string `xml:"Project,attr"`
}

// ConfigElement maps one solution configuration to a project-side
// value. XMLName selects the element: BuildType, Platform, Build, or
// Deploy.
type ConfigElement struct {
	XMLName  xml.Name
	Solution string `xml:"Solution,attr"`
	Project  string `xml:"Project,attr"`
}
