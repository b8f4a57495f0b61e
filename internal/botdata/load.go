package botdata

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Load returns the compiled-in defaults with any sections present in the
// YAML file at path replacing their default counterparts wholesale. An empty
// path returns the defaults unchanged.
//
// Content is immutable after Load; updating the file requires a restart.
func Load(path string) (*Content, error) {
	content := Default()
	if path == "" {
		return content, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %q: %w", path, err)
	}

	var override Content
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("failed to parse content file %q: %w", path, err)
	}

	merge(content, &override)
	slog.Debug("Loaded content overrides", "path", path)
	return content, nil
}

// merge replaces each non-empty section of dst with the override's section.
// Sections are replaced as a whole, never element-merged: partial lists
// would silently change the tie-break order the matchers rely on.
func merge(dst, override *Content) {
	if len(override.KeywordTags) > 0 {
		dst.KeywordTags = override.KeywordTags
	}
	if len(override.QuestionWords) > 0 {
		dst.QuestionWords = override.QuestionWords
	}
	if len(override.YesWords) > 0 {
		dst.YesWords = override.YesWords
	}
	if len(override.NoWords) > 0 {
		dst.NoWords = override.NoWords
	}
	if len(override.ThankWords) > 0 {
		dst.ThankWords = override.ThankWords
	}
	if len(override.GreetWords) > 0 {
		dst.GreetWords = override.GreetWords
	}
	if len(override.FarewellWords) > 0 {
		dst.FarewellWords = override.FarewellWords
	}
	if len(override.AdminWords) > 0 {
		dst.AdminWords = override.AdminWords
	}
	if len(override.ReleaseWords) > 0 {
		dst.ReleaseWords = override.ReleaseWords
	}
	if len(override.ReleaseQuestionWords) > 0 {
		dst.ReleaseQuestionWords = override.ReleaseQuestionWords
	}
	if len(override.GameplayWords) > 0 {
		dst.GameplayWords = override.GameplayWords
	}
	if len(override.DomainWords) > 0 {
		dst.DomainWords = override.DomainWords
	}
	if len(override.AmbiguousGreetings) > 0 {
		dst.AmbiguousGreetings = override.AmbiguousGreetings
	}
	if len(override.AutocorrectExtra) > 0 {
		dst.AutocorrectExtra = override.AutocorrectExtra
	}
	if len(override.Examples) > 0 {
		dst.Examples = override.Examples
	}
	if len(override.Templates) > 0 {
		dst.Templates = override.Templates
	}
}
