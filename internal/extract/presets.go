package extract

// Degraded record messages.
const (
	RecommendationsMessage = "Could not generate proper recommendations. Please try again."
	ProjectsMessage        = "Could not generate proper project recommendations. Please try again."
	ProfileDataMessage     = "Could not extract data. Please try again."
)

// ForRecommendations is the chain used for course plans and skills course paths.
func ForRecommendations() *Extractor {
	return New(RecommendationsMessage, DirectParse{}, FencedBlock{})
}

// ForProjects is the chain used for portfolio project plans.
func ForProjects() *Extractor {
	return New(ProjectsMessage, DirectParse{}, FencedBlock{})
}

// ForProfileData is the chain used when extracting skills from a profile.
// It adds the brace-span strategy after the fenced block.
func ForProfileData() *Extractor {
	return New(ProfileDataMessage, DirectParse{}, FencedBlock{}, BraceSpan{})
}
