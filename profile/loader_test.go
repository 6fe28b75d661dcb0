package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfileFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func profileNames(profiles []*Profile) []string {
	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.Name)
	}
	return names
}

func TestLoadEmbedded(t *testing.T) {
	profiles := LoadEmbedded()
	require.Len(t, profiles, 4)
	assert.Equal(t,
		[]string{"planner", "code_reviewer", "architect", "build_error_resolver"},
		profileNames(profiles))
}

func TestLoad_FallsBackToEmbedded(t *testing.T) {
	profiles := Load(t.TempDir(), nil)
	names := profileNames(profiles)
	assert.Contains(t, names, "planner")
	assert.Contains(t, names, "code_reviewer")
	assert.Contains(t, names, "architect")
	assert.Contains(t, names, "build_error_resolver")
}

func TestLoad_ProjectOverridesEmbedded(t *testing.T) {
	workingDir := t.TempDir()
	agentsDir := filepath.Join(workingDir, ".strata", "agents")
	writeProfileFile(t, agentsDir, "planner.md",
		"---\nname: planner\ndescription: Custom planner\ntools: []\nmodel: fast\n---\nCustom body")

	profiles := Load(workingDir, nil)

	var planner *Profile
	count := 0
	for _, p := range profiles {
		if p.Name == "planner" {
			planner = p
			count++
		}
	}
	require.Equal(t, 1, count)
	assert.Equal(t, "Custom planner", planner.Description)
	assert.Equal(t, "fast", planner.ModelPreference)
	assert.Equal(t, "Custom body", planner.SystemPrompt)
}

func TestLoad_SkipsOversizedFiles(t *testing.T) {
	workingDir := t.TempDir()
	agentsDir := filepath.Join(workingDir, ".strata", "agents")
	writeProfileFile(t, agentsDir, "valid.md",
		"---\nname: valid\ndescription: Valid planner\ntools: []\nmodel: default\n---\nbody")

	oversized := "---\nname: oversized\ndescription: Oversized profile\n---\n" +
		strings.Repeat("a", MaxProfileFileBytes+1)
	writeProfileFile(t, agentsDir, "oversized.md", oversized)

	names := profileNames(Load(workingDir, nil))
	assert.Contains(t, names, "valid")
	assert.NotContains(t, names, "oversized")
}

func TestLoad_SkipsNonMarkdownAndUnparsable(t *testing.T) {
	workingDir := t.TempDir()
	agentsDir := filepath.Join(workingDir, ".strata", "agents")
	writeProfileFile(t, agentsDir, "notes.txt", "---\nname: notes\n---\nbody")
	writeProfileFile(t, agentsDir, "broken.md", "no frontmatter at all")
	writeProfileFile(t, agentsDir, "good.md", "---\nname: good\n---\nbody")

	names := profileNames(Load(workingDir, nil))
	assert.Contains(t, names, "good")
	assert.NotContains(t, names, "notes")
}

func TestLoad_FirstSeenNameWins(t *testing.T) {
	workingDir := t.TempDir()
	agentsDir := filepath.Join(workingDir, ".strata", "agents")
	// Directory entries are read in lexical order.
	writeProfileFile(t, agentsDir, "a.md", "---\nname: dup\ndescription: first\n---\nA")
	writeProfileFile(t, agentsDir, "b.md", "---\nname: dup\ndescription: second\n---\nB")

	profiles := Load(workingDir, nil)
	for _, p := range profiles {
		if p.Name == "dup" {
			assert.Equal(t, "first", p.Description)
		}
	}
}
