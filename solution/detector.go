package solution

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IsSolutionFile checks if a file path has the .sln extension.
func IsSolutionFile(path string) bool {
	if path == "" {
		return false
	}
	return strings.ToLower(filepath.Ext(path)) == ".sln"
}

// DetectionResult contains the result of solution file detection.
type DetectionResult struct {
	// Found indicates if any solution file was found
	Found bool

	// Ambiguous indicates if multiple solution files were found
	Ambiguous bool

	// SolutionPath is the path to the found solution file
	SolutionPath string

	// FoundFiles lists all solution files found
	FoundFiles []string
}

// DetectSolution searches dir (non-recursively) for .sln files.
func DetectSolution(dir string) (*DetectionResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error searching for solution files: %w", err)
	}

	result := &DetectionResult{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsSolutionFile(entry.Name()) {
			result.FoundFiles = append(result.FoundFiles, filepath.Join(dir, entry.Name()))
		}
	}

	switch len(result.FoundFiles) {
	case 0:
	case 1:
		result.Found = true
		result.SolutionPath = result.FoundFiles[0]
	default:
		result.Found = true
		result.Ambiguous = true
	}
	return result, nil
}

// ResolveInput resolves a convert input to a concrete .sln path. A
// directory input must contain exactly one .sln file; a file input
// must carry the .sln extension.
func ResolveInput(input string) (string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return "", fmt.Errorf("cannot access input: %w", err)
	}

	if info.IsDir() {
		result, err := DetectSolution(input)
		if err != nil {
			return "", err
		}
		if !result.Found {
			return "", fmt.Errorf("no .sln file found in %s", input)
		}
		if result.Ambiguous {
			return "", fmt.Errorf("multiple .sln files found in %s: %s",
				input, strings.Join(result.FoundFiles, ", "))
		}
		return result.SolutionPath, nil
	}

	if !IsSolutionFile(input) {
		return "", fmt.Errorf("input file is not a .sln: %s", input)
	}
	return input, nil
}
