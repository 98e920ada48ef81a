package moderation

import "testing"

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name    string
		content string
		want    Verdict
	}{
		{
			name:    "plain message",
			content: "hello everyone, how are you",
			want:    VerdictClean,
		},
		{
			name:    "empty message",
			content: "",
			want:    VerdictClean,
		},
		{
			name:    "everyone mention",
			content: "free nitro @everyone",
			want:    VerdictBroadcastMention,
		},
		{
			name:    "here mention",
			content: "@here look at this",
			want:    VerdictBroadcastMention,
		},
		{
			name:    "invite link",
			content: "join us https://discord.gg/abc123",
			want:    VerdictInviteLink,
		},
		{
			name:    "invite link without scheme",
			content: "discord.gg/xyz789",
			want:    VerdictInviteLink,
		},
		{
			name:    "app invite link",
			content: "https://discordapp.com/invite/abc123",
			want:    VerdictInviteLink,
		},
		{
			name:    "generic link",
			content: "check out https://example.com/page",
			want:    VerdictGenericLink,
		},
		{
			name:    "ftp link",
			content: "ftp://files.example.com/stuff",
			want:    VerdictGenericLink,
		},
		{
			name:    "broadcast beats invite",
			content: "@everyone https://discord.gg/abc123",
			want:    VerdictBroadcastMention,
		},
		{
			name:    "invite beats generic link",
			content: "https://discord.gg/abc123 and https://example.com",
			want:    VerdictInviteLink,
		},
		{
			name:    "uppercase invite",
			content: "HTTPS://DISCORD.GG/ABC123",
			want:    VerdictInviteLink,
		},
		{
			name:    "bare domain without scheme is clean",
			content: "example.com is a nice site",
			want:    VerdictClean,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.content); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func TestVerdict_Reason(t *testing.T) {
	tests := []struct {
		verdict Verdict
		want    string
	}{
		{VerdictBroadcastMention, "Usage of @everyone/@here"},
		{VerdictInviteLink, "Discord invitation link"},
		{VerdictGenericLink, "Link sent"},
	}
	for _, tt := range tests {
		if got := tt.verdict.Reason(); got != tt.want {
			t.Errorf("Reason() = %q, want %q", got, tt.want)
		}
	}
}
