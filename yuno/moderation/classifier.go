package moderation

import (
	"regexp"
	"strings"
)

// Verdict is the outcome of inspecting one message's content.
type Verdict int

const (
	VerdictClean Verdict = iota
	VerdictBroadcastMention
	VerdictInviteLink
	VerdictGenericLink
)

// Reason returns the human-readable violation reason used in warnings, ban
// reasons and audit records.
func (v Verdict) Reason() string {
	switch v {
	case VerdictBroadcastMention:
		return "Usage of @everyone/@here"
	case VerdictInviteLink:
		return "Discord invitation link"
	case VerdictGenericLink:
		return "Link sent"
	default:
		return ""
	}
}

func (v Verdict) String() string {
	switch v {
	case VerdictClean:
		return "clean"
	case VerdictBroadcastMention:
		return "broadcast_mention"
	case VerdictInviteLink:
		return "invite_link"
	case VerdictGenericLink:
		return "generic_link"
	default:
		return "unknown"
	}
}

// Classifier inspects message content for spam-filter violations. It is
// stateless apart from its precompiled patterns and safe for concurrent use.
type Classifier struct {
	invitePattern *regexp.Regexp
	linkPattern   *regexp.Regexp
}

func NewClassifier() *Classifier {
	return &Classifier{
		invitePattern: regexp.MustCompile(`(?i)(https)*(http)*:*(//)*(discord(\.gg|app\.com/invite)/[a-zA-Z0-9]+)`),
		linkPattern:   regexp.MustCompile(`(?i)(ftp|http|https)://[^\s]+`),
	}
}

// Classify returns the first matching verdict. Order matters: invite links
// also match the generic link pattern, so the more specific check runs first.
func (c *Classifier) Classify(content string) Verdict {
	if strings.Contains(content, "@everyone") || strings.Contains(content, "@here") {
		return VerdictBroadcastMention
	}
	if c.invitePattern.MatchString(content) {
		return VerdictInviteLink
	}
	if c.linkPattern.MatchString(content) {
		return VerdictGenericLink
	}
	return VerdictClean
}
