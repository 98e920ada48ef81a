package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blubskye/yuno-go/yuno"
	"github.com/blubskye/yuno-go/yuno/autoclean"
	"github.com/blubskye/yuno-go/yuno/commands"
	"github.com/blubskye/yuno-go/yuno/commands/admin"
	"github.com/blubskye/yuno-go/yuno/commands/social"
	"github.com/blubskye/yuno-go/yuno/commands/system"
	"github.com/blubskye/yuno-go/yuno/config"
	"github.com/blubskye/yuno-go/yuno/database"
	"github.com/blubskye/yuno-go/yuno/database/repositories"
	"github.com/blubskye/yuno-go/yuno/handlers"
	"github.com/blubskye/yuno-go/yuno/leveling"
	"github.com/blubskye/yuno-go/yuno/logger"
	"github.com/blubskye/yuno-go/yuno/moderation"
	"github.com/blubskye/yuno-go/yuno/terminal"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/handler"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	shouldSyncCommands := flag.Bool("sync-commands", false, "Whether to sync commands to discord")
	noTerminal := flag.Bool("no-terminal", false, "Disable the stdin operator console")
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := yuno.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}

	customHandler := logger.NewHandler(cfg.Log.Level)
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting Yuno",
		slog.String("version", version),
		slog.String("commit", commit))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dbStartTime := time.Now()
	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Database connection failed",
			slog.Any("error", err),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	defer db.Close()

	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize database schema", slog.Any("error", err))
		os.Exit(-1)
	}
	slog.Info("Database ready",
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStartTime)))

	b := yuno.New(*cfg, version, commit)
	b.DB = db

	b.GuildRepo = repositories.NewGuildRepository(db.BunDB())
	b.ExpRepo = repositories.NewExperienceRepository(db.BunDB())
	b.CleanRepo = repositories.NewCleanRepository(db.BunDB())
	b.ModActionRepo = repositories.NewModActionRepository(db.BunDB())
	b.InboxRepo = repositories.NewInboxRepository(db.BunDB())

	b.BotBanRepo, err = repositories.NewBotBanRepository(db.BunDB(), config.BotBanCacheSize)
	if err != nil {
		slog.Error("Failed to initialize bot ban repository", slog.Any("error", err))
		os.Exit(-1)
	}

	h := handler.New()

	// Moderation commands
	h.Command("/ban", handlers.WrapWithLogging("ban", admin.BanHandler(b)))
	h.Command("/kick", handlers.WrapWithLogging("kick", admin.KickHandler(b)))
	h.Command("/unban", handlers.WrapWithLogging("unban", admin.UnbanHandler(b)))
	h.Command("/timeout", handlers.WrapWithLogging("timeout", admin.TimeoutHandler(b)))
	h.Command("/clean", handlers.WrapWithLogging("clean", admin.CleanHandler(b)))
	h.Command("/modstats", handlers.WrapWithLogging("modstats", admin.ModStatsHandler(b)))
	h.Command("/scanbans", handlers.WrapWithLogging("scanbans", admin.ScanBansHandler(b)))
	h.Command("/autoclean", handlers.WrapWithLogging("autoclean", admin.AutoCleanHandler(b)))

	// Social commands
	h.Command("/xp", handlers.WrapWithLogging("xp", social.XPHandler(b)))
	h.Command("/8ball", handlers.WrapWithLogging("8ball", social.EightBallHandler(b)))

	// System commands
	h.Command("/ping", system.PingHandler(b))
	h.Command("/prefix", handlers.WrapWithLogging("prefix", system.PrefixHandler(b)))
	h.Command("/delay", handlers.WrapWithLogging("delay", system.DelayHandler(b)))
	h.Command("/source", system.SourceHandler(b))

	if err = b.SetupBot(h, bot.NewListenerFunc(b.OnReady)); err != nil {
		slog.Error("Failed to setup bot",
			slog.String("type", "sys"),
			slog.Any("error", err))
		os.Exit(-1)
	}

	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer closeCancel()
		b.Client.Close(closeCtx)
	}()

	b.SpamFilter = moderation.NewSpamFilter(
		moderation.NewDiscordGateway(b.Client),
		b.ModActionRepo,
		cfg.Moderation.MaxWarnings,
		b.Client.ApplicationID(),
	)

	flushInterval := time.Duration(cfg.Leveling.FlushSeconds) * time.Second
	b.Aggregator = leveling.NewAggregator(b.ExpRepo, leveling.NewDiscordNotifier(b.Client), flushInterval)
	b.Scheduler = autoclean.NewScheduler(b.CleanRepo, autoclean.NewDiscordGateway(b.Client), 0)

	messageHandler := handlers.NewMessageHandler(b.SpamFilter, b.Aggregator, b.BotBanRepo, b.InboxRepo, cfg.Bot.MasterID, cfg.Bot.DMAckMessage)
	b.Client.AddEventListeners(bot.NewListenerFunc(func(e *events.MessageCreate) {
		messageHandler.OnMessageCreate(e)
	}))

	if *shouldSyncCommands {
		slog.Info("Syncing commands",
			slog.String("type", "sys"),
			slog.Any("guild_ids", cfg.Bot.DevGuilds))
		if err = handler.SyncCommands(b.Client, commands.Commands, cfg.Bot.DevGuilds); err != nil {
			slog.Error("Failed to sync commands",
				slog.String("type", "sys"),
				slog.Any("error", err))
		}
	}

	runCtx, runCancel := context.WithCancel(context.Background())
	defer runCancel()
	go b.Aggregator.Run(runCtx)
	go b.Scheduler.Run(runCtx)

	gatewayCtx, gatewayCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer gatewayCancel()
	if err = b.Client.OpenGateway(gatewayCtx); err != nil {
		slog.Error("Failed to open gateway",
			slog.String("type", "sys"),
			slog.Any("error", err))
		os.Exit(-1)
	}

	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)

	if !*noTerminal {
		term := terminal.New(b, func() {
			s <- syscall.SIGTERM
		})
		go term.Run(runCtx)
	}

	slog.Info("Yuno is running. Press CTRL-C to exit.")
	<-s
	slog.Info("Shutting down...")
	runCancel()
	// Give the aggregator a moment to finish its final flush.
	time.Sleep(time.Second)
}
