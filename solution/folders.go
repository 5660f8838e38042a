package solution

import "strings"

// FolderResolver computes the hierarchical path of solution folders
// from the flat child→parent nesting edges. Paths always begin and end
// with "/"; the solution root is exactly "/". Results are memoized,
// and a folder that participates in a nesting cycle resolves to the
// root instead of recursing forever.
type FolderResolver struct {
	sol      *Solution
	cache    map[string]string
	visiting map[string]bool
}

// NewFolderResolver creates a resolver over one parsed solution.
func NewFolderResolver(sol *Solution) *FolderResolver {
	return &FolderResolver{
		sol:      sol,
		cache:    map[string]string{},
		visiting: map[string]bool{},
	}
}

// Resolve returns the normalized folder path for folderGUID. Unknown
// identifiers contribute no path segment of their own; an identifier
// with neither a name nor a parent resolves to "/".
func (r *FolderResolver) Resolve(folderGUID string) string {
	if cached, ok := r.cache[folderGUID]; ok {
		return cached
	}
	if r.visiting[folderGUID] {
		return "/"
	}
	r.visiting[folderGUID] = true

	var segments []string
	if name, ok := r.sol.GUIDToName[folderGUID]; ok {
		segments = append(segments, name)
	}
	if parent, ok := r.sol.NestedProjects[folderGUID]; ok {
		parentPath := r.Resolve(parent)
		if parentPath != "/" {
			trimmed := strings.Trim(parentPath, "/")
			if trimmed != "" {
				segments = append(strings.Split(trimmed, "/"), segments...)
			}
		}
	}

	path := normalizeFolderPath(segments)
	r.cache[folderGUID] = path
	r.visiting[folderGUID] = false
	return path
}

// normalizeFolderPath joins segments into a "/"-delimited path with
// leading and trailing slash. No segments yields the root path.
func normalizeFolderPath(segments []string) string {
	var b strings.Builder
	b.WriteByte('/')
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		b.WriteString(segment)
		if segment[len(segment)-1] != '/' {
			b.WriteByte('/')
		}
	}
	return b.String()
}
