package html

import (
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	bodyPolicyOnce sync.Once
	bodyPolicy     *bluemonday.Policy

	classPattern = regexp.MustCompile(`^[a-z0-9 _-]+$`)
)

// sanitizeBody runs the generated markup through an allowlist so document
// text and photo URLs can never smuggle markup or script URLs into the page.
func sanitizeBody(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(bodySanitizer().Sanitize(trimmed))
}

func bodySanitizer() *bluemonday.Policy {
	bodyPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"div", "header", "section", "article", "aside", "main",
			"h1", "h2", "h3", "p", "span", "ul", "li", "time",
		)
		policy.AllowAttrs("class").Matching(classPattern).Globally()
		policy.AllowDataAttributes()
		policy.AllowImages()
		policy.AllowAttrs("loading").Matching(regexp.MustCompile(`^lazy$`)).OnElements("img")

		bodyPolicy = policy
	})
	return bodyPolicy
}
