package yuno

import (
	"context"
	"log/slog"
	"time"

	"github.com/blubskye/yuno-go/yuno/autoclean"
	"github.com/blubskye/yuno-go/yuno/database"
	"github.com/blubskye/yuno-go/yuno/database/repositories"
	"github.com/blubskye/yuno-go/yuno/leveling"
	"github.com/blubskye/yuno-go/yuno/moderation"
	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/paginator"
)

func New(cfg Config, version string, commit string) *Bot {
	return &Bot{
		Cfg:       cfg,
		Paginator: paginator.New(),
		Version:   version,
		Commit:    commit,
		StartedAt: time.Now(),
	}
}

type Bot struct {
	Cfg       Config
	Client    bot.Client
	Paginator *paginator.Manager
	Version   string
	Commit    string
	StartedAt time.Time

	DB            *database.DB
	GuildRepo     repositories.GuildRepository
	ExpRepo       repositories.ExperienceRepository
	CleanRepo     repositories.CleanRepository
	ModActionRepo repositories.ModActionRepository
	BotBanRepo    repositories.BotBanRepository
	InboxRepo     repositories.InboxRepository

	SpamFilter *moderation.SpamFilter
	Aggregator *leveling.Aggregator
	Scheduler  *autoclean.Scheduler
}

func (b *Bot) SetupBot(listeners ...bot.EventListener) error {
	client, err := disgo.New(b.Cfg.Bot.Token,
		bot.WithGatewayConfigOpts(gateway.WithIntents(
			gateway.IntentGuilds,
			gateway.IntentGuildMessages,
			gateway.IntentDirectMessages,
			gateway.IntentGuildModeration,
			gateway.IntentMessageContent,
		)),
		bot.WithCacheConfigOpts(cache.WithCaches(
			cache.FlagGuilds,
			cache.FlagChannels,
			cache.FlagRoles,
			cache.FlagMembers,
		)),
		bot.WithEventListeners(b.Paginator),
		bot.WithEventListeners(listeners...),
	)
	if err != nil {
		return err
	}

	b.Client = client
	return nil
}

func (b *Bot) OnReady(_ *events.Ready) {
	slog.Info("Yuno is now ready",
		slog.String("version", b.Version),
		slog.String("commit", b.Commit))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := b.Client.SetPresence(ctx,
		gateway.WithWatchingActivity("over this server"),
		gateway.WithOnlineStatus(discord.OnlineStatusOnline)); err != nil {
		slog.Error("Failed to set presence", slog.Any("error", err))
	}
}
