package moderation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/blubskye/yuno-go/yuno/config"
	"github.com/blubskye/yuno-go/yuno/database/models"
	"github.com/blubskye/yuno-go/yuno/database/repositories"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
)

// Gateway is the slice of the chat platform the spam filter acts on.
// DeleteMessage and SendDirectEmbed are advisory: their failure is logged and
// never blocks the escalation. BanMember is required.
type Gateway interface {
	DeleteMessage(ctx context.Context, channelID, messageID snowflake.ID) error
	SendDirectEmbed(ctx context.Context, userID snowflake.ID, embed discord.Embed) error
	BanMember(ctx context.Context, guildID, userID snowflake.ID, reason string) error
}

// SpamFilter applies the per-user escalation policy to classifier verdicts:
// warn on each violation, ban when the warning ceiling is reached.
type SpamFilter struct {
	classifier  *Classifier
	ledger      *WarningLedger
	gateway     Gateway
	actions     repositories.ModActionRepository
	maxWarnings int
	selfID      snowflake.ID
}

func NewSpamFilter(
	gateway Gateway,
	actions repositories.ModActionRepository,
	maxWarnings int,
	selfID snowflake.ID,
) *SpamFilter {
	if maxWarnings <= 0 {
		maxWarnings = config.DefaultMaxWarnings
	}
	return &SpamFilter{
		classifier:  NewClassifier(),
		ledger:      NewWarningLedger(),
		gateway:     gateway,
		actions:     actions,
		maxWarnings: maxWarnings,
		selfID:      selfID,
	}
}

// Ledger exposes the warning ledger for inspection (terminal status, tests).
func (f *SpamFilter) Ledger() *WarningLedger {
	return f.ledger
}

// Process classifies one guild message and, on a violation, runs the full
// escalation transition. The returned error covers only the required
// consequences (ban, audit append); advisory failures are logged and dropped.
func (f *SpamFilter) Process(ctx context.Context, guildID, channelID, messageID, userID snowflake.ID, content string) (Verdict, error) {
	verdict := f.classifier.Classify(content)
	if verdict == VerdictClean {
		return verdict, nil
	}
	return verdict, f.handleViolation(ctx, guildID, channelID, messageID, userID, verdict.Reason())
}

func (f *SpamFilter) handleViolation(ctx context.Context, guildID, channelID, messageID, userID snowflake.ID, reason string) error {
	if err := f.gateway.DeleteMessage(ctx, channelID, messageID); err != nil {
		slog.Warn("Failed to delete offending message",
			slog.String("type", "mod"),
			slog.String("channel_id", channelID.String()),
			slog.String("message_id", messageID.String()),
			slog.Any("error", err))
	}

	count, banned := f.ledger.Escalate(userID, f.maxWarnings)
	if !banned {
		f.sendWarning(ctx, userID, reason, count)
		slog.Info("User warned by spam filter",
			slog.String("type", "mod"),
			slog.String("guild_id", guildID.String()),
			slog.String("user_id", userID.String()),
			slog.String("reason", reason),
			slog.Int("warnings", count))
		return nil
	}

	// The ledger entry is already gone; the ban is not rolled back on
	// failure because re-attempting a ban is idempotent-safe while
	// re-incrementing the count is not.
	f.sendBanNotice(ctx, userID, reason)

	banReason := fmt.Sprintf("Autobanned by spam filter: %s. Used all warnings.", reason)
	if err := f.gateway.BanMember(ctx, guildID, userID, banReason); err != nil {
		return fmt.Errorf("failed to ban %s: %w", userID, err)
	}

	action := &models.ModAction{
		GuildID:     guildID.String(),
		ModeratorID: f.selfID.String(),
		TargetID:    userID.String(),
		Action:      models.ActionBan,
		Reason:      fmt.Sprintf("Autobanned: %s", reason),
		Timestamp:   time.Now(),
	}
	if err := f.actions.Add(ctx, action); err != nil {
		return fmt.Errorf("failed to record autoban for %s: %w", userID, err)
	}

	slog.Info("User autobanned by spam filter",
		slog.String("type", "mod"),
		slog.String("guild_id", guildID.String()),
		slog.String("user_id", userID.String()),
		slog.String("reason", reason))
	return nil
}

func (f *SpamFilter) sendWarning(ctx context.Context, userID snowflake.ID, reason string, count int) {
	embed := discord.NewEmbedBuilder().
		SetTitle("Be careful! You're getting warned!").
		SetDescription(fmt.Sprintf("%s\nYou have %d warning(s). You'll be banned at %d warning(s).",
			reason, count, f.maxWarnings)).
		SetColor(config.WarningColor).
		Build()
	if err := f.gateway.SendDirectEmbed(ctx, userID, embed); err != nil {
		slog.Warn("Failed to DM warning",
			slog.String("type", "mod"),
			slog.String("user_id", userID.String()),
			slog.Any("error", err))
	}
}

func (f *SpamFilter) sendBanNotice(ctx context.Context, userID snowflake.ID, reason string) {
	embed := discord.NewEmbedBuilder().
		SetTitle("And here you go. You got banned!").
		SetDescription(fmt.Sprintf("Reason: %s", reason)).
		SetColor(config.BanColor).
		Build()
	if err := f.gateway.SendDirectEmbed(ctx, userID, embed); err != nil {
		slog.Warn("Failed to DM ban notice",
			slog.String("type", "mod"),
			slog.String("user_id", userID.String()),
			slog.Any("error", err))
	}
}
