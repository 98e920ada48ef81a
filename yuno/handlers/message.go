package handlers

import (
	"context"
	"log/slog"

	"github.com/blubskye/yuno-go/yuno/config"
	"github.com/blubskye/yuno-go/yuno/database/models"
	"github.com/blubskye/yuno-go/yuno/database/repositories"
	"github.com/blubskye/yuno-go/yuno/leveling"
	"github.com/blubskye/yuno-go/yuno/moderation"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
)

// MessageHandler routes every incoming message to the right reaction:
// DMs to the inbox, guild messages through the spam filter and XP pipeline.
type MessageHandler struct {
	filter     *moderation.SpamFilter
	aggregator *leveling.Aggregator
	botBans    repositories.BotBanRepository
	inbox      repositories.InboxRepository
	// masterID, when set, gets a DM for every new inbox message.
	masterID snowflake.ID
	dmAck    string
}

func NewMessageHandler(
	filter *moderation.SpamFilter,
	aggregator *leveling.Aggregator,
	botBans repositories.BotBanRepository,
	inbox repositories.InboxRepository,
	masterID snowflake.ID,
	dmAck string,
) *MessageHandler {
	if dmAck == "" {
		dmAck = config.DefaultDMAckMessage
	}
	return &MessageHandler{
		filter:     filter,
		aggregator: aggregator,
		botBans:    botBans,
		inbox:      inbox,
		masterID:   masterID,
		dmAck:      dmAck,
	}
}

// OnMessageCreate dispatches a single message event. Work happens on a
// separate goroutine so a slow store call never stalls the gateway reader.
func (h *MessageHandler) OnMessageCreate(e *events.MessageCreate) {
	if e.Message.Author.Bot || e.Message.Author.System {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		if e.GuildID == nil {
			h.handleDirectMessage(ctx, e)
			return
		}
		h.handleGuildMessage(ctx, e)
	}()
}

func (h *MessageHandler) handleDirectMessage(ctx context.Context, e *events.MessageCreate) {
	userID := e.Message.Author.ID

	banned, err := h.botBans.IsBanned(ctx, userID.String())
	if err != nil {
		slog.Error("Failed to check bot ban for DM",
			slog.String("type", "db"),
			slog.String("user_id", userID.String()),
			slog.Any("error", err))
		return
	}
	if banned {
		return
	}

	msg := &models.InboxMessage{
		UserID:   userID.String(),
		Username: e.Message.Author.Username,
		Content:  e.Message.Content,
	}
	if err := h.inbox.Save(ctx, msg); err != nil {
		slog.Error("Failed to save inbox message",
			slog.String("type", "db"),
			slog.String("user_id", userID.String()),
			slog.Any("error", err))
		return
	}

	slog.Info("DM received",
		slog.String("type", "sys"),
		slog.String("from", e.Message.Author.Username))

	h.forwardToMaster(ctx, e, msg)

	embed := discord.NewEmbedBuilder().
		SetDescription(h.dmAck).
		SetColor(config.SuccessColor).
		Build()
	if _, err := e.Client().Rest().CreateMessage(e.ChannelID,
		discord.NewMessageCreateBuilder().SetEmbeds(embed).Build(),
		rest.WithCtx(ctx)); err != nil {
		slog.Warn("Failed to acknowledge DM",
			slog.String("user_id", userID.String()),
			slog.Any("error", err))
	}
}

// forwardToMaster mirrors a fresh inbox message into the master's DMs.
// Delivery is advisory, the message already sits in the inbox either way.
func (h *MessageHandler) forwardToMaster(ctx context.Context, e *events.MessageCreate, msg *models.InboxMessage) {
	if h.masterID == 0 {
		return
	}

	channel, err := e.Client().Rest().CreateDMChannel(h.masterID, rest.WithCtx(ctx))
	if err != nil {
		slog.Warn("Failed to open DM channel to master",
			slog.Any("error", err))
		return
	}

	embed := discord.NewEmbedBuilder().
		SetTitlef("Inbox: %s", msg.Username).
		SetDescription(msg.Content).
		SetColor(config.InfoColor).
		SetFooterTextf("User ID: %s", msg.UserID).
		Build()
	if _, err := e.Client().Rest().CreateMessage(channel.ID(),
		discord.NewMessageCreateBuilder().SetEmbeds(embed).Build(),
		rest.WithCtx(ctx)); err != nil {
		slog.Warn("Failed to forward inbox message to master",
			slog.Any("error", err))
	}
}

func (h *MessageHandler) handleGuildMessage(ctx context.Context, e *events.MessageCreate) {
	userID := e.Message.Author.ID

	banned, err := h.botBans.IsBanned(ctx, userID.String())
	if err != nil {
		slog.Error("Failed to check bot ban",
			slog.String("type", "db"),
			slog.String("user_id", userID.String()),
			slog.Any("error", err))
	} else if banned {
		return
	}

	if !h.isModerator(e) {
		verdict, err := h.filter.Process(ctx, *e.GuildID, e.ChannelID, e.MessageID, userID, e.Message.Content)
		if err != nil {
			slog.Error("Spam filter failed",
				slog.String("type", "mod"),
				slog.String("user_id", userID.String()),
				slog.Any("error", err))
			return
		}
		if verdict != moderation.VerdictClean {
			return
		}
	}

	h.aggregator.Record(*e.GuildID, userID, e.ChannelID)
}

// isModerator reports whether the author may manage messages in the guild.
// Moderators are exempt from the spam filter.
func (h *MessageHandler) isModerator(e *events.MessageCreate) bool {
	member := e.Message.Member
	if member == nil {
		return false
	}
	perms := e.Client().Caches().MemberPermissions(*member)
	return perms.Has(discord.PermissionManageMessages)
}
