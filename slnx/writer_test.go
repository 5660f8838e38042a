package slnx

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *Document {
	return &Document{
		Configurations: &Configurations{
			BuildTypes: []NamedElement{{Name: "Debug"}},
			Platforms:  []NamedElement{{Name: "x64"}},
		},
		Folders: []Folder{
			{
				Name:  "/Src/",
				Files: []File{{Path: "README.md"}},
				Projects: []Project{
					{
						Path: `App\App.vcxproj`,
						ID:   "{AAAAAAAA-0000-0000-0000-000000000001}",
						Configs: []ConfigElement{
							{
								XMLName:  xml.Name{Local: "Build"},
								Solution: "Debug|x64",
								Project:  "true",
							},
						},
					},
				},
			},
		},
	}
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(sampleDocument())
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, xml.Header))
	assert.Contains(t, text, "<Solution>")
	assert.Contains(t, text, `<BuildType Name="Debug">`)
	assert.Contains(t, text, `<Platform Name="x64">`)
	assert.Contains(t, text, `<Folder Name="/Src/">`)
	assert.Contains(t, text, `<File Path="README.md">`)
	assert.Contains(t, text, `<Project Path="App\App.vcxproj" Id="{AAAAAAAA-0000-0000-0000-000000000001}">`)
	assert.Contains(t, text, `<Build Solution="Debug|x64" Project="true">`)
	assert.NotContains(t, text, "DisplayName")
}

func TestMarshal_RoundTripsThroughXML(t *testing.T) {
	data, err := Marshal(sampleDocument())
	require.NoError(t, err)

	var decoded Document
	require.NoError(t, xml.Unmarshal(data, &decoded))
	require.Len(t, decoded.Folders, 1)
	assert.Equal(t, "/Src/", decoded.Folders[0].Name)
	require.Len(t, decoded.Folders[0].Projects, 1)
	assert.Equal(t, `App\App.vcxproj`, decoded.Folders[0].Projects[0].Path)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "App.slnx")

	require.NoError(t, WriteFile(path, sampleDocument()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<Solution>")
}

func TestWriteFile_UnwritableDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "App.slnx")

	err := WriteFile(path, sampleDocument())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot write")
}
