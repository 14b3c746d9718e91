// Package sanitize strips unsafe markup from user-authored text before it
// is persisted or embedded into notification emails.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugcPolicy    *bluemonday.Policy
	strictPolicy *bluemonday.Policy
	policyOnce   sync.Once
)

func initPolicies() {
	ugcPolicy = bluemonday.UGCPolicy()
	strictPolicy = bluemonday.StrictPolicy()
}

// UserContent sanitizes rich user content, keeping basic formatting tags.
func UserContent(s string) string {
	policyOnce.Do(initPolicies)
	return strings.TrimSpace(ugcPolicy.Sanitize(s))
}

// PlainText strips all markup. Used for subjects and chat messages.
func PlainText(s string) string {
	policyOnce.Do(initPolicies)
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
