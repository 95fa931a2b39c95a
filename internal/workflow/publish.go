package workflow

import (
	"fmt"

	"github.com/kayamedia/newsroom-backend/internal/domain"
)

// PublishReadiness computes every reason the story cannot be published
// right now. plainText is the story content stripped of markup; the caller
// derives it so this package stays free of HTML concerns.
//
// A "not ready" story is a normal outcome, not an error: the result lists
// all blockers at once so the editor can fix them in one pass.
func PublishReadiness(
	story *domain.Story,
	translations []domain.Translation,
	checklist domain.PublishChecklist,
	plainText string,
) domain.PublishReadiness {
	var issues []string

	switch story.Status {
	case domain.StoryStatusApproved:
		// ready for publish checks
	case domain.StoryStatusPublished:
		issues = append(issues, "story is already published")
	case domain.StoryStatusArchived:
		issues = append(issues, "story is archived")
	default:
		issues = append(issues, fmt.Sprintf("story is not approved yet (current status: %s)", story.Status))
	}

	if plainText == "" {
		issues = append(issues, "story content is empty")
	}

	issues = append(issues, translationIssues(story, translations)...)

	if !checklist.ContentReviewed {
		issues = append(issues, "content review checklist is not confirmed")
	}
	if !checklist.AudioQualityChecked {
		issues = append(issues, "audio quality check is not confirmed")
	}

	return domain.PublishReadiness{
		CanPublish: len(issues) == 0,
		Issues:     issues,
	}
}

// translationIssues checks the translation aggregation rules: all
// non-skipped translations must be APPROVED, and a story with zero
// translations is blocked unless explicitly marked skipped.
func translationIssues(story *domain.Story, translations []domain.Translation) []string {
	if story.TranslationsSkipped {
		return nil
	}

	if len(translations) == 0 {
		return []string{"story has no translations (mark them as skipped to publish without translations)"}
	}

	var issues []string
	for _, tr := range translations {
		if tr.Status != domain.TranslationStatusApproved {
			issues = append(issues, fmt.Sprintf(
				"translation to %s is not approved (current status: %s)",
				tr.TargetLanguage, tr.Status,
			))
		}
	}
	return issues
}
