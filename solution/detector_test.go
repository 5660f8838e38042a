package solution

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))
}

func TestIsSolutionFile(t *testing.T) {
	assert.True(t, IsSolutionFile("App.sln"))
	assert.True(t, IsSolutionFile("App.SLN"))
	assert.False(t, IsSolutionFile("App.slnx"))
	assert.False(t, IsSolutionFile(""))
}

func TestResolveInput_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "App.sln")
	writeFile(t, path)

	resolved, err := ResolveInput(path)
	require.NoError(t, err)
	assert.Equal(t, path, resolved)
}

func TestResolveInput_WrongExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "App.slnx")
	writeFile(t, path)

	_, err := ResolveInput(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a .sln")
}

func TestResolveInput_DirectoryWithOneSolution(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "App.sln")
	writeFile(t, path)
	writeFile(t, filepath.Join(dir, "README.md"))

	resolved, err := ResolveInput(dir)
	require.NoError(t, err)
	assert.Equal(t, path, resolved)
}

func TestResolveInput_DirectoryWithoutSolution(t *testing.T) {
	_, err := ResolveInput(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .sln file found")
}

func TestResolveInput_DirectoryWithSeveralSolutions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "A.sln"))
	writeFile(t, filepath.Join(dir, "B.sln"))

	_, err := ResolveInput(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple .sln files")
}

func TestResolveInput_MissingPath(t *testing.T) {
	_, err := ResolveInput(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestDetectSolution_IgnoresSubdirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0755))
	writeFile(t, filepath.Join(sub, "Inner.sln"))
	writeFile(t, filepath.Join(dir, "Outer.sln"))

	result, err := DetectSolution(dir)
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.False(t, result.Ambiguous)
	assert.Equal(t, filepath.Join(dir, "Outer.sln"), result.SolutionPath)
}
