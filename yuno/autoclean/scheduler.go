package autoclean

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

const doneCleaningImage = "https://vignette3.wikia.nocookie.net/futurediary/images/9/94/Mirai_Nikki_-_06_-_Large_05.jpg"

// ChannelGateway is the slice of the chat platform the scheduler needs:
// resolving channels by name and acting on them.
type ChannelGateway interface {
	// ResolveChannel finds a text channel by case-insensitive name within a
	// guild. found is false when the guild resolves but no channel matches.
	ResolveChannel(ctx context.Context, guildID snowflake.ID, name string) (channelID snowflake.ID, found bool, err error)
	SendEmbed(ctx context.Context, channelID snowflake.ID, embed discord.Embed) error
	// PurgeRecent deletes up to limit of the channel's most recent messages.
	PurgeRecent(ctx context.Context, channelID snowflake.ID, limit int) (int, error)
}

// Scheduler drives the per-channel auto-clean countdowns. Configs live only
// in the store and are re-read every tick, so admin commands can change them
// mid-cycle without coordination.
type Scheduler struct {
	repo     repositories.CleanRepository
	gateway  ChannelGateway
	interval time.Duration
}

func NewScheduler(repo repositories.CleanRepository, gateway ChannelGateway, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = config.AutoCleanTickInterval
	}
	return &Scheduler{
		repo:     repo,
		gateway:  gateway,
		interval: interval,
	}
}

// Run ticks until the context is cancelled. One tick decrements every config
// by one countdown unit.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("Auto-clean scheduler started",
		slog.Duration("interval", s.interval))

	for {
		select {
		case <-ctx.Done():
			slog.Info("Auto-clean scheduler stopped")
			return
		case <-ticker.C:
			if err := s.Tick(ctx); err != nil {
				slog.Error("Auto-clean tick failed",
					slog.Any("error", err))
			}
		}
	}
}

// Tick processes every clean config once. Failures are isolated per config:
// one broken entry never blocks its siblings.
func (s *Scheduler) Tick(ctx context.Context) error {
	cfgs, err := s.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list clean configs: %w", err)
	}

	for _, cfg := range cfgs {
		if err := s.processConfig(ctx, cfg); err != nil {
			slog.Error("Failed to process clean config",
				slog.String("guild_id", cfg.GuildID),
				slog.String("channel", cfg.ChannelName),
				slog.Any("error", err))
		}
	}
	return nil
}

func (s *Scheduler) processConfig(ctx context.Context, cfg *models.CleanConfig) error {
	guildID, err := snowflake.Parse(cfg.GuildID)
	if err != nil {
		// Unparseable guild reference; the config can never resolve again.
		slog.Warn("Removing clean config with malformed guild id",
			slog.String("guild_id", cfg.GuildID),
			slog.String("channel", cfg.ChannelName))
		return s.repo.Delete(ctx, cfg.GuildID, cfg.ChannelName)
	}

	channelID, found, err := s.gateway.ResolveChannel(ctx, guildID, cfg.ChannelName)
	if err != nil {
		return fmt.Errorf("failed to resolve channel %q: %w", cfg.ChannelName, err)
	}
	if !found {
		// Channel is gone; drop the config instead of erroring forever.
		slog.Info("Removing clean config for missing channel",
			slog.String("guild_id", cfg.GuildID),
			slog.String("channel", cfg.ChannelName))
		return s.repo.Delete(ctx, cfg.GuildID, cfg.ChannelName)
	}

	remaining := cfg.RemainingTime - 1

	if remaining == cfg.WarningTime {
		s.sendWarning(ctx, channelID, cfg.WarningTime)
	} else if cfg.WarningTime >= cfg.CycleMinutes() {
		// The countdown can never pass through this warning point. Left
		// as-is rather than clamped; /autoclean add rejects such values.
		slog.Debug("Clean config warning time exceeds cycle length, warning will never fire",
			slog.String("guild_id", cfg.GuildID),
			slog.String("channel", cfg.ChannelName),
			slog.Int64("warning_time", cfg.WarningTime),
			slog.Int64("cycle_minutes", cfg.CycleMinutes()))
	}

	if remaining <= 0 {
		deleted, err := s.gateway.PurgeRecent(ctx, channelID, config.PurgeMessageLimit)
		if err != nil {
			return fmt.Errorf("failed to purge channel %q: %w", cfg.ChannelName, err)
		}
		s.sendDone(ctx, channelID)

		slog.Info("Channel auto-cleaned",
			slog.String("guild_id", cfg.GuildID),
			slog.String("channel", cfg.ChannelName),
			slog.Int("deleted", deleted))

		cfg.RemainingTime = cfg.CycleMinutes()
		return s.repo.Set(ctx, cfg)
	}

	cfg.RemainingTime = remaining
	return s.repo.Set(ctx, cfg)
}

func (s *Scheduler) sendWarning(ctx context.Context, channelID snowflake.ID, warningMinutes int64) {
	embed := discord.NewEmbedBuilder().
		SetAuthorName(fmt.Sprintf(
			"Yuno is going to clean this channel in %d minutes. Speak now or forever hold your peace.",
			warningMinutes)).
		SetColor(config.WarningColor).
		Build()
	if err := s.gateway.SendEmbed(ctx, channelID, embed); err != nil {
		slog.Warn("Failed to send clean warning",
			slog.String("channel_id", channelID.String()),
			slog.Any("error", err))
	}
}

func (s *Scheduler) sendDone(ctx context.Context, channelID snowflake.ID) {
	embed := discord.NewEmbedBuilder().
		SetAuthorName("Auto-clean: Yuno is done cleaning.").
		SetImage(doneCleaningImage).
		SetColor(config.CleanColor).
		Build()
	if err := s.gateway.SendEmbed(ctx, channelID, embed); err != nil {
		slog.Warn("Failed to send clean completion message",
			slog.String("channel_id", channelID.String()),
			slog.Any("error", err))
	}
}
