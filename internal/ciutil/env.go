package ciutil

import "os"

// Environment variables set by common CI providers.
const (
	EnvCI            = "CI"
	EnvGitHubActions = "GITHUB_ACTIONS"
	EnvGitLabCI      = "GITLAB_CI"
	EnvJenkinsURL    = "JENKINS_URL"
	EnvTravisCI      = "TRAVIS"
	EnvCircleCI      = "CIRCLECI"
)

var ciVariables = []string{
	EnvCI,
	EnvGitHubActions,
	EnvGitLabCI,
	EnvJenkinsURL,
	EnvTravisCI,
	EnvCircleCI,
}

// IsCI returns true if any known CI provider variable is set.
func IsCI() bool {
	for _, name := range ciVariables {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}
