package tui

import (
	"os"

	"golang.org/x/term"
)

// ciEnvs are environment variables set by common CI providers.
var ciEnvs = []string{
	"CI",                     // Generic CI indicator
	"CONTINUOUS_INTEGRATION", // Generic CI indicator
	"GITHUB_ACTIONS",         // GitHub Actions
	"GITLAB_CI",              // GitLab CI
	"CIRCLECI",               // CircleCI
	"TRAVIS",                 // Travis CI
	"JENKINS_HOME",           // Jenkins
	"BUILDKITE",              // Buildkite
	"BITBUCKET_BUILD_NUMBER", // Bitbucket Pipelines
	"DRONE",                  // Drone CI
	"SEMAPHORE",              // Semaphore CI
	"APPVEYOR",               // AppVeyor
	"CODEBUILD_BUILD_ID",     // AWS CodeBuild
	"TF_BUILD",               // Azure Pipelines
}

// IsInteractive determines if the current environment supports interactive prompts.
// It returns false when stdout is not a terminal or when a CI environment is detected.
func IsInteractive() bool {
	return IsTTY() && !IsCI()
}

// IsCI reports whether any known CI environment variable is set.
func IsCI() bool {
	for _, env := range ciEnvs {
		if os.Getenv(env) != "" {
			return true
		}
	}
	return false
}

// IsGitHubActions reports whether nodever runs inside a GitHub Actions job.
func IsGitHubActions() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

// IsTTY checks if stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // G115: fd is a small value, no overflow risk
}
