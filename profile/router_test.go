package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractKeywords(t *testing.T) {
	kws := extractKeywords("Reviews the code for quality and security issues")
	assert.Equal(t, []string{"reviews", "code", "quality", "security", "issues"}, kws)
}

func TestExtractKeywords_Dedup(t *testing.T) {
	kws := extractKeywords("code code code review")
	assert.Equal(t, []string{"code", "review"}, kws)
}

func TestRouterSelect_Planner(t *testing.T) {
	router := NewRouter(LoadEmbedded())

	p, ok := router.Select("plan the implementation and identify dependencies for the new feature")
	require.True(t, ok)
	assert.Equal(t, "planner", p.Name)
}

func TestRouterSelect_Reviewer(t *testing.T) {
	router := NewRouter(LoadEmbedded())

	p, ok := router.Select("review this code for quality and security")
	require.True(t, ok)
	assert.Equal(t, "code_reviewer", p.Name)
}

func TestRouterSelect_Architect(t *testing.T) {
	router := NewRouter(LoadEmbedded())

	p, ok := router.Select("design the system architecture")
	require.True(t, ok)
	assert.Equal(t, "architect", p.Name)
}

func TestRouterSelect_BuildErrorResolver(t *testing.T) {
	router := NewRouter(LoadEmbedded())

	p, ok := router.Select("fix the build error compilation failure")
	require.True(t, ok)
	assert.Equal(t, "build_error_resolver", p.Name)
}

func TestRouterSelect_NoMatch(t *testing.T) {
	router := NewRouter(LoadEmbedded())

	_, ok := router.Select("hello world")
	assert.False(t, ok)
}

func TestRouterSelect_BelowThreshold(t *testing.T) {
	// A single keyword hit is not enough to select.
	router := NewRouter([]*Profile{
		{Name: "only", Description: "database migration helper"},
	})

	_, ok := router.Select("run the migration")
	assert.False(t, ok)
}

func TestRouterSelect_TieBreaksToFirst(t *testing.T) {
	router := NewRouter([]*Profile{
		{Name: "agent_a", Description: "review code quality"},
		{Name: "agent_b", Description: "review code quality"},
	})

	p, ok := router.Select("review code quality")
	require.True(t, ok)
	assert.Equal(t, "agent_a", p.Name)
}

func TestRouterSelect_DuplicateKeywordsCountOnce(t *testing.T) {
	// Repeated keywords in a description must not inflate the score past
	// the threshold.
	router := NewRouter([]*Profile{
		{Name: "spammy", Description: "deploy deploy deploy deploy"},
	})

	_, ok := router.Select("deploy it")
	assert.False(t, ok)
}

func TestRouterGet(t *testing.T) {
	router := NewRouter(LoadEmbedded())

	p, ok := router.Get("planner")
	require.True(t, ok)
	assert.Equal(t, "planner", p.Name)

	_, ok = router.Get("nonexistent")
	assert.False(t, ok)
}

func TestRouterProfiles_PreservesOrder(t *testing.T) {
	router := NewRouter(LoadEmbedded())

	var names []string
	for _, p := range router.Profiles() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"planner", "code_reviewer", "architect", "build_error_resolver"}, names)
}
