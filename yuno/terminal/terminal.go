package terminal

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/blubskye/yuno-go/yuno"
	"github.com/blubskye/yuno-go/yuno/config"
	"github.com/blubskye/yuno-go/yuno/database/models"
	"github.com/blubskye/yuno-go/yuno/utils"
	"github.com/disgoorg/disgo/discord"
	"github.com/sahilm/fuzzy"
)

const defaultInboxLimit = 10

var commandNames = []string{
	"help", "servers", "inbox", "botban", "botunban", "botbanlist", "status", "quit",
}

// Terminal is an operator console on stdin. It runs alongside the gateway so
// the bot owner can inspect and administer the bot without Discord.
type Terminal struct {
	bot      *yuno.Bot
	in       io.Reader
	out      io.Writer
	shutdown func()
}

func New(b *yuno.Bot, shutdown func()) *Terminal {
	return &Terminal{
		bot:      b,
		in:       os.Stdin,
		out:      os.Stdout,
		shutdown: shutdown,
	}
}

// Run reads commands until stdin closes, the context is cancelled, or quit
// is entered.
func (t *Terminal) Run(ctx context.Context) {
	scanner := bufio.NewScanner(t.in)
	fmt.Fprintln(t.out, "Yuno terminal ready. Type 'help' for commands.")

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := strings.ToLower(fields[0]), fields[1:]

		if cmd == "quit" || cmd == "exit" {
			fmt.Fprintln(t.out, "Shutting down...")
			t.shutdown()
			return
		}
		t.dispatch(ctx, cmd, args)
	}
}

func (t *Terminal) dispatch(ctx context.Context, cmd string, args []string) {
	cmdCtx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	switch cmd {
	case "help":
		t.printHelp()
	case "servers":
		t.printServers()
	case "inbox":
		t.printInbox(cmdCtx, args)
	case "botban":
		t.botBan(cmdCtx, args)
	case "botunban":
		t.botUnban(cmdCtx, args)
	case "botbanlist":
		t.printBotBans(cmdCtx)
	case "status":
		t.printStatus(cmdCtx)
	default:
		t.suggest(cmd)
	}
}

func (t *Terminal) printHelp() {
	fmt.Fprintln(t.out, `Commands:
  help               show this help
  servers            list the servers the bot is in
  inbox [n]          show the latest n inbox messages (default 10)
  botban <id> [why]  ban a user from using the bot
  botunban <id>      lift a bot ban
  botbanlist         list bot-banned users
  status             show runtime status
  quit               shut the bot down`)
}

func (t *Terminal) printServers() {
	count := 0
	t.bot.Client.Caches().GuildsForEach(func(g discord.Guild) {
		count++
		fmt.Fprintf(t.out, "  %s (%s) — %d members\n", g.Name, g.ID, g.MemberCount)
	})
	fmt.Fprintf(t.out, "%d servers\n", count)
}

func (t *Terminal) printInbox(ctx context.Context, args []string) {
	limit := defaultInboxLimit
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Fprintln(t.out, "usage: inbox [n]")
			return
		}
		limit = n
	}

	msgs, err := t.bot.InboxRepo.List(ctx, limit)
	if err != nil {
		fmt.Fprintf(t.out, "failed to load inbox: %s\n", err)
		return
	}
	if len(msgs) == 0 {
		fmt.Fprintln(t.out, "Inbox is empty.")
		return
	}

	for _, msg := range msgs {
		marker := " "
		if !msg.ReadStatus {
			marker = "*"
		}
		fmt.Fprintf(t.out, "%s [%s] %s (%s): %s\n",
			marker, msg.ReceivedAt.Format("2006-01-02 15:04"),
			msg.Username, msg.UserID, utils.Truncate(msg.Content, 200))
		if !msg.ReadStatus {
			if err := t.bot.InboxRepo.MarkRead(ctx, msg.ID); err != nil {
				fmt.Fprintf(t.out, "failed to mark message %d read: %s\n", msg.ID, err)
			}
		}
	}
}

func (t *Terminal) botBan(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(t.out, "usage: botban <user id> [reason]")
		return
	}
	reason := "No reason provided"
	if len(args) > 1 {
		reason = strings.Join(args[1:], " ")
	}

	ban := &models.BotBan{
		UserID:   args[0],
		BannedBy: "terminal",
		Reason:   reason,
	}
	if err := t.bot.BotBanRepo.Add(ctx, ban); err != nil {
		fmt.Fprintf(t.out, "failed to ban %s: %s\n", args[0], err)
		return
	}
	fmt.Fprintf(t.out, "%s is now banned from using the bot.\n", args[0])
}

func (t *Terminal) botUnban(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(t.out, "usage: botunban <user id>")
		return
	}

	err := t.bot.BotBanRepo.Remove(ctx, args[0])
	if errors.Is(err, sql.ErrNoRows) {
		fmt.Fprintf(t.out, "%s is not banned.\n", args[0])
		return
	}
	if err != nil {
		fmt.Fprintf(t.out, "failed to unban %s: %s\n", args[0], err)
		return
	}
	fmt.Fprintf(t.out, "%s can use the bot again.\n", args[0])
}

func (t *Terminal) printBotBans(ctx context.Context) {
	bans, err := t.bot.BotBanRepo.List(ctx, 100)
	if err != nil {
		fmt.Fprintf(t.out, "failed to load bot bans: %s\n", err)
		return
	}
	if len(bans) == 0 {
		fmt.Fprintln(t.out, "Nobody is bot-banned.")
		return
	}
	for _, ban := range bans {
		fmt.Fprintf(t.out, "  %s — %s (by %s, %s)\n",
			ban.UserID, ban.Reason, ban.BannedBy, ban.BannedAt.Format("2006-01-02"))
	}
}

func (t *Terminal) printStatus(ctx context.Context) {
	guilds := 0
	t.bot.Client.Caches().GuildsForEach(func(discord.Guild) { guilds++ })

	unread, err := t.bot.InboxRepo.UnreadCount(ctx)
	if err != nil {
		unread = -1
	}

	fmt.Fprintf(t.out, "version:     %s (%s)\n", t.bot.Version, t.bot.Commit)
	fmt.Fprintf(t.out, "uptime:      %s\n", utils.FormatDuration(time.Since(t.bot.StartedAt)))
	fmt.Fprintf(t.out, "servers:     %d\n", guilds)
	fmt.Fprintf(t.out, "latency:     %dms\n", t.bot.Client.Gateway().Latency().Milliseconds())
	fmt.Fprintf(t.out, "pending xp:  %d users\n", t.bot.Aggregator.PendingCount())
	fmt.Fprintf(t.out, "unread mail: %d\n", unread)
	fmt.Fprintf(t.out, "goroutines:  %d\n", runtime.NumGoroutine())
}

// suggest offers the closest known commands for a typo.
func (t *Terminal) suggest(cmd string) {
	matches := fuzzy.Find(cmd, commandNames)
	if len(matches) == 0 {
		fmt.Fprintf(t.out, "unknown command %q, type 'help'\n", cmd)
		return
	}

	names := make([]string, 0, len(matches))
	for i, m := range matches {
		if i >= 3 {
			break
		}
		names = append(names, m.Str)
	}
	fmt.Fprintf(t.out, "unknown command %q, did you mean: %s?\n", cmd, strings.Join(names, ", "))
}
