package dataset

// GitHubSeed covers the GitHub REST API placeholder set. These rows carry
// curated links, categories and tags, so normalization only fills the gaps.
var GitHubSeed = []SeedRow{
	{
		API:                 APIGitHub,
		Resource:            "authentication",
		ErrorType:           TypeAuthentication,
		ErrorCode:           "bad_credentials",
		ErrorMessage:        "Bad credentials",
		SolutionTitle:       "Check your access token",
		SolutionDescription: "Verify the token is valid, not expired, and carries the scopes the endpoint requires.",
		Severity:            PipelineBlocking,
		SourceURL:           "https://docs.github.com/en/rest/overview/other-authentication-methods",
		Category:            "Authentication",
		Tags:                []string{"github", "api", "authentication", "security"},
	},
	{
		API:                 APIGitHub,
		Resource:            "any",
		ErrorType:           TypeRateLimit,
		ErrorCode:           "rate_limit_exceeded",
		ErrorMessage:        "API rate limit exceeded",
		SolutionTitle:       "Respect rate limit headers",
		SolutionDescription: "Watch X-RateLimit-Remaining and retry after X-RateLimit-Reset; authenticate to raise the limit.",
		Severity:            PipelineTransient,
		SourceURL:           "https://docs.github.com/en/rest/overview/resources-in-the-rest-api#rate-limiting",
		Category:            "Rate Limiting",
		Tags:                []string{"github", "api", "rate_limiting"},
	},
	{
		API:                 APIGitHub,
		Resource:            "repository",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "not_found",
		ErrorMessage:        "Not Found",
		SolutionTitle:       "Verify the repository path",
		SolutionDescription: "Check owner/name spelling and that the token can see the repository (private repos 404 without access).",
		Severity:            PipelineBlocking,
		SourceURL:           "https://docs.github.com/en/rest/repos/repos#get-a-repository",
		Category:            "Resources",
		Tags:                []string{"github", "api", "repository"},
	},
	{
		API:                 APIGitHub,
		Resource:            "any",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "validation_failed",
		ErrorMessage:        "Validation Failed",
		SolutionTitle:       "Fix the request body",
		SolutionDescription: "Inspect the errors array in the response and correct the offending fields.",
		Severity:            PipelineBlocking,
		SourceURL:           "https://docs.github.com/en/rest/overview/other-authentication-methods",
		Category:            "Validation",
		Tags:                []string{"github", "api", "validation"},
	},
}
