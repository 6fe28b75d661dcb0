package profile

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/strata-vcs/agentcore/logging"
)

// MaxProfileFileBytes caps the size of a profile file accepted from disk.
// Larger files are skipped with a warning.
const MaxProfileFileBytes = 1 << 20

// toolDirName is the directory name used for both the project-local dot
// directory and the user config subdirectory.
const toolDirName = "strata"

//go:embed embedded/planner.md
var plannerMD string

//go:embed embedded/code_reviewer.md
var codeReviewerMD string

//go:embed embedded/architect.md
var architectMD string

//go:embed embedded/build_error_resolver.md
var buildErrorResolverMD string

// LoadEmbedded parses the compiled-in default profiles, in their fixed
// registration order.
func LoadEmbedded() []*Profile {
	sources := []string{plannerMD, codeReviewerMD, architectMD, buildErrorResolverMD}

	profiles := make([]*Profile, 0, len(sources))
	for _, src := range sources {
		if p, err := Parse(src); err == nil {
			profiles = append(profiles, p)
		}
	}
	return profiles
}

// Load collects profiles from the three tiers, earlier tiers winning on
// name collisions:
//
//  1. {workingDir}/.strata/agents/*.md
//  2. {user config dir}/strata/agents/*.md
//  3. compiled-in defaults
//
// Load never fails; unreadable directories and unparsable files are skipped
// with a warning. A nil logger suppresses the warnings.
func Load(workingDir string, logger logging.Logger) []*Profile {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}

	var profiles []*Profile
	seen := make(map[string]struct{})

	projectDir := filepath.Join(workingDir, "."+toolDirName, "agents")
	profiles = loadDir(projectDir, profiles, seen, logger)

	if configDir, err := os.UserConfigDir(); err == nil {
		userDir := filepath.Join(configDir, toolDirName, "agents")
		profiles = loadDir(userDir, profiles, seen, logger)
	}

	for _, p := range LoadEmbedded() {
		if _, dup := seen[p.Name]; dup {
			continue
		}
		seen[p.Name] = struct{}{}
		profiles = append(profiles, p)
	}

	return profiles
}

func loadDir(dir string, profiles []*Profile, seen map[string]struct{}, logger logging.Logger) []*Profile {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// Absent tiers are the common case, not an error.
		return profiles
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		info, err := entry.Info()
		if err != nil {
			logger.Warn("failed to read profile file metadata", "path", path, "error", err)
			continue
		}
		if info.Size() > MaxProfileFileBytes {
			logger.Warn("skipped oversized profile file",
				"path", path,
				"size", info.Size(),
				"max_bytes", int64(MaxProfileFileBytes),
			)
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("failed to read profile file", "path", path, "error", err)
			continue
		}

		p, err := Parse(string(content))
		if err != nil {
			logger.Warn("failed to parse profile file", "path", path, "error", err)
			continue
		}

		if _, dup := seen[p.Name]; dup {
			continue
		}
		seen[p.Name] = struct{}{}
		profiles = append(profiles, p)
	}
	return profiles
}
