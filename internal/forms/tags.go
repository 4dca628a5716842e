package forms

import "strings"

// TextToTags splits comma-separated text into trimmed, non-empty tags.
// The result is never nil.
func TextToTags(text string) []string {
	tags := []string{}
	for _, part := range strings.Split(text, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// TagsToText joins tags for editing.
func TagsToText(tags []string) string {
	return strings.Join(tags, ", ")
}
