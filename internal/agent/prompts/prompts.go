// Package prompts builds the LLM prompts for narrative summary generation.
package prompts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maxbolgarin/gitpulse/internal/model"
	"github.com/maxbolgarin/lang"
)

var narrativeSystemPromptTemplate = `
You are an expert engineering analyst writing activity summaries for a development dashboard.

Your task is to turn aggregated commit statistics into a short narrative paragraph for the team.

CORE PRINCIPLES:
- Describe the overall activity level, the busiest areas and notable contributors
- Use clear, concise language that non-technical stakeholders can understand
- Stay strictly within the provided numbers, never invent data
- Keep the narrative to one short paragraph of 3-5 sentences
- Do not use markdown formatting, headings or bullet points

LANGUAGE INSTRUCTIONS:
%s
`

var narrativeUserPromptTemplate = `
Write a narrative summary of the following development activity.

Period: %s to %s
%s
Statistics:
%s
`

var languageInstructions = map[model.Language]string{
	model.LanguageEnglish: "Write the summary in English.",
	model.LanguageRussian: "Write the summary in Russian.",
	model.LanguageSpanish: "Write the summary in Spanish.",
	model.LanguageGerman:  "Write the summary in German.",
	model.LanguageFrench:  "Write the summary in French.",
}

// Builder builds narrative prompts in the configured language.
type Builder struct {
	language model.Language
}

// NewBuilder creates a prompt builder.
func NewBuilder(language model.Language) *Builder {
	return &Builder{language: lang.Check(language, model.LanguageEnglish)}
}

// BuildNarrativePrompt renders the prompt pair for one statistics object.
func (b *Builder) BuildNarrativePrompt(stats model.SummaryStats, request model.SummaryRequest) model.Prompt {
	instruction, ok := languageInstructions[b.language]
	if !ok {
		instruction = languageInstructions[model.LanguageEnglish]
	}

	var note string
	if stats.Partial {
		note = "Note: some repositories could not be fetched, the numbers below are a lower bound.\n"
	}

	return model.Prompt{
		SystemPrompt: fmt.Sprintf(narrativeSystemPromptTemplate, instruction),
		UserPrompt: fmt.Sprintf(narrativeUserPromptTemplate,
			request.DateRange.Start.Format("2006-01-02"),
			request.DateRange.End.Format("2006-01-02"),
			note,
			renderStats(stats),
		),
		Language: b.language,
	}
}

func renderStats(stats model.SummaryStats) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "- Total commits: %d\n", stats.TotalCommits)
	fmt.Fprintf(&sb, "- Unique authors: %d\n", stats.UniqueAuthors)
	fmt.Fprintf(&sb, "- Repositories: %s\n", strings.Join(stats.Repositories, ", "))
	if stats.MostActiveDay != "" {
		fmt.Fprintf(&sb, "- Most active day: %s\n", stats.MostActiveDay)
	}
	fmt.Fprintf(&sb, "- Average commits per day: %.1f\n", stats.AverageCommitsPerDay)
	if stats.TotalAdditions > 0 || stats.TotalDeletions > 0 {
		fmt.Fprintf(&sb, "- Lines added/removed: +%d/-%d\n", stats.TotalAdditions, stats.TotalDeletions)
	}
	for _, repo := range stats.TopRepositories {
		fmt.Fprintf(&sb, "- %s: %d commits\n", repo.Name, repo.Commits)
	}

	authors := make([]string, 0, len(stats.CommitsByAuthor))
	for author := range stats.CommitsByAuthor {
		authors = append(authors, author)
	}
	sort.Slice(authors, func(i, j int) bool {
		return stats.CommitsByAuthor[authors[i]] > stats.CommitsByAuthor[authors[j]]
	})
	for _, author := range authors {
		fmt.Fprintf(&sb, "- Author %s: %d commits\n", author, stats.CommitsByAuthor[author])
	}
	return sb.String()
}
