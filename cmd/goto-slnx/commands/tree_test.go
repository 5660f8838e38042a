package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/komimoe/GotoSlnx/cmd/goto-slnx/output"
)

const nestedSln = `Microsoft Visual Studio Solution File, Format Version 12.00
Project("{66A26720-8FB5-11D2-AA7E-00C04F688DDE}") = "Libs", "Libs", "{AAAAAAAA-AAAA-AAAA-AAAA-AAAAAAAAAAAA}"
	ProjectSection(SolutionItems) = preProject
		readme.md = readme.md
	EndProjectSection
EndProject
Project("{8BC9CEB8-8B4A-11D0-8D11-00A0C91BC942}") = "Core", "src\Core\Core.vcxproj", "{BBBBBBBB-BBBB-BBBB-BBBB-BBBBBBBBBBBB}"
EndProject
Project("{8BC9CEB8-8B4A-11D0-8D11-00A0C91BC942}") = "App", "src\App\App.vcxproj", "{CCCCCCCC-CCCC-CCCC-CCCC-CCCCCCCCCCCC}"
EndProject
Global
	GlobalSection(NestedProjects) = preSolution
		{BBBBBBBB-BBBB-BBBB-BBBB-BBBBBBBBBBBB} = {AAAAAAAA-AAAA-AAAA-AAAA-AAAAAAAAAAAA}
	EndGlobalSection
EndGlobal
`

func TestTreeCommand_PrintsHierarchy(t *testing.T) {
	dir := t.TempDir()
	slnPath := filepath.Join(dir, "Nested.sln")
	require.NoError(t, os.WriteFile(slnPath, []byte(nestedSln), 0644))

	var out, errBuf bytes.Buffer
	console := output.NewConsole(&out, &errBuf, output.VerbosityNormal)
	cmd := NewTreeCommand(console)
	cmd.SetArgs([]string{slnPath})
	cmd.SetOut(&out)
	cmd.SetErr(&errBuf)

	require.NoError(t, cmd.Execute())

	got := out.String()
	assert.Contains(t, got, "Nested.sln")
	assert.Contains(t, got, "Libs/")
	assert.Contains(t, got, "readme.md")
	assert.Contains(t, got, `src\Core\Core.vcxproj`)
	assert.Contains(t, got, `src\App\App.vcxproj`)
}

func TestTreeCommand_MissingInput(t *testing.T) {
	var out, errBuf bytes.Buffer
	console := output.NewConsole(&out, &errBuf, output.VerbosityNormal)
	cmd := NewTreeCommand(console)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.sln")})
	cmd.SetOut(&out)
	cmd.SetErr(&errBuf)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	assert.Error(t, cmd.Execute())
}
