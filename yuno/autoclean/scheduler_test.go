package autoclean

import (
	"context"
	"errors"
	"testing"

	"github.com/blubskye/yuno-go/yuno/database/models"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
)

type fakeCleanRepo struct {
	configs []*models.CleanConfig
	saved   []*models.CleanConfig
	deleted []string
}

func (r *fakeCleanRepo) Get(_ context.Context, guildID, channelName string) (*models.CleanConfig, error) {
	for _, cfg := range r.configs {
		if cfg.GuildID == guildID && cfg.ChannelName == channelName {
			return cfg, nil
		}
	}
	return nil, nil
}

func (r *fakeCleanRepo) Set(_ context.Context, cfg *models.CleanConfig) error {
	cp := *cfg
	r.saved = append(r.saved, &cp)
	return nil
}

func (r *fakeCleanRepo) Delete(_ context.Context, guildID, channelName string) error {
	r.deleted = append(r.deleted, guildID+"/"+channelName)
	return nil
}

func (r *fakeCleanRepo) GetAll(_ context.Context) ([]*models.CleanConfig, error) {
	return r.configs, nil
}

func (r *fakeCleanRepo) GetByGuild(_ context.Context, guildID string) ([]*models.CleanConfig, error) {
	var out []*models.CleanConfig
	for _, cfg := range r.configs {
		if cfg.GuildID == guildID {
			out = append(out, cfg)
		}
	}
	return out, nil
}

type fakeChannelGateway struct {
	channels   map[string]snowflake.ID
	resolveErr error
	embeds     []snowflake.ID
	purged     []snowflake.ID
	purgeErr   error
}

func (g *fakeChannelGateway) ResolveChannel(_ context.Context, _ snowflake.ID, name string) (snowflake.ID, bool, error) {
	if g.resolveErr != nil {
		return 0, false, g.resolveErr
	}
	id, ok := g.channels[name]
	return id, ok, nil
}

func (g *fakeChannelGateway) SendEmbed(_ context.Context, channelID snowflake.ID, _ discord.Embed) error {
	g.embeds = append(g.embeds, channelID)
	return nil
}

func (g *fakeChannelGateway) PurgeRecent(_ context.Context, channelID snowflake.ID, _ int) (int, error) {
	if g.purgeErr != nil {
		return 0, g.purgeErr
	}
	g.purged = append(g.purged, channelID)
	return 42, nil
}

func testConfig(remaining int64) *models.CleanConfig {
	return &models.CleanConfig{
		GuildID:           "100",
		ChannelName:       "general",
		TimeBetweenCleans: 1,
		WarningTime:       10,
		RemainingTime:     remaining,
	}
}

func TestScheduler_TickDecrements(t *testing.T) {
	repo := &fakeCleanRepo{configs: []*models.CleanConfig{testConfig(30)}}
	gateway := &fakeChannelGateway{channels: map[string]snowflake.ID{"general": 5}}
	s := NewScheduler(repo, gateway, 0)

	if err := s.Tick(context.Background()); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}

	if len(repo.saved) != 1 {
		t.Fatalf("saved %d configs, want 1", len(repo.saved))
	}
	if got := repo.saved[0].RemainingTime; got != 29 {
		t.Errorf("remaining = %d, want 29", got)
	}
	if len(gateway.embeds) != 0 {
		t.Errorf("sent %d embeds, want 0", len(gateway.embeds))
	}
}

func TestScheduler_WarningFiresAtWarningTime(t *testing.T) {
	// remaining 11 with warning at 10 means the next tick hits it exactly.
	repo := &fakeCleanRepo{configs: []*models.CleanConfig{testConfig(11)}}
	gateway := &fakeChannelGateway{channels: map[string]snowflake.ID{"general": 5}}
	s := NewScheduler(repo, gateway, 0)

	if err := s.Tick(context.Background()); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}

	if len(gateway.embeds) != 1 {
		t.Fatalf("sent %d embeds, want 1 warning", len(gateway.embeds))
	}
	if len(gateway.purged) != 0 {
		t.Errorf("purged %d channels, want 0", len(gateway.purged))
	}
	if got := repo.saved[0].RemainingTime; got != 10 {
		t.Errorf("remaining = %d, want 10", got)
	}
}

func TestScheduler_WarningDoesNotRepeat(t *testing.T) {
	repo := &fakeCleanRepo{configs: []*models.CleanConfig{testConfig(10)}}
	gateway := &fakeChannelGateway{channels: map[string]snowflake.ID{"general": 5}}
	s := NewScheduler(repo, gateway, 0)

	if err := s.Tick(context.Background()); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}

	if len(gateway.embeds) != 0 {
		t.Errorf("sent %d embeds, want 0", len(gateway.embeds))
	}
}

func TestScheduler_PurgeAndResetAtZero(t *testing.T) {
	repo := &fakeCleanRepo{configs: []*models.CleanConfig{testConfig(1)}}
	gateway := &fakeChannelGateway{channels: map[string]snowflake.ID{"general": 5}}
	s := NewScheduler(repo, gateway, 0)

	if err := s.Tick(context.Background()); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}

	if len(gateway.purged) != 1 || gateway.purged[0] != 5 {
		t.Fatalf("purged = %v, want [5]", gateway.purged)
	}
	// One completion embed after the purge.
	if len(gateway.embeds) != 1 {
		t.Errorf("sent %d embeds, want 1", len(gateway.embeds))
	}
	if got := repo.saved[0].RemainingTime; got != 60 {
		t.Errorf("remaining after reset = %d, want full cycle of 60", got)
	}
}

func TestScheduler_MissingChannelDeletesConfig(t *testing.T) {
	repo := &fakeCleanRepo{configs: []*models.CleanConfig{testConfig(30)}}
	gateway := &fakeChannelGateway{channels: map[string]snowflake.ID{}}
	s := NewScheduler(repo, gateway, 0)

	if err := s.Tick(context.Background()); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}

	if len(repo.deleted) != 1 || repo.deleted[0] != "100/general" {
		t.Errorf("deleted = %v, want [100/general]", repo.deleted)
	}
	if len(repo.saved) != 0 {
		t.Errorf("saved %d configs, want 0", len(repo.saved))
	}
}

func TestScheduler_ResolveErrorKeepsConfig(t *testing.T) {
	repo := &fakeCleanRepo{configs: []*models.CleanConfig{testConfig(30)}}
	gateway := &fakeChannelGateway{resolveErr: errors.New("gateway down")}
	s := NewScheduler(repo, gateway, 0)

	if err := s.Tick(context.Background()); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}

	// Transient failures must not destroy the schedule.
	if len(repo.deleted) != 0 {
		t.Errorf("deleted = %v, want none", repo.deleted)
	}
	if len(repo.saved) != 0 {
		t.Errorf("saved %d configs, want 0", len(repo.saved))
	}
}

func TestScheduler_MalformedGuildIDDeletesConfig(t *testing.T) {
	cfg := testConfig(30)
	cfg.GuildID = "not-a-snowflake"
	repo := &fakeCleanRepo{configs: []*models.CleanConfig{cfg}}
	gateway := &fakeChannelGateway{channels: map[string]snowflake.ID{"general": 5}}
	s := NewScheduler(repo, gateway, 0)

	if err := s.Tick(context.Background()); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}

	if len(repo.deleted) != 1 {
		t.Errorf("deleted %d configs, want 1", len(repo.deleted))
	}
}

func TestScheduler_FailuresAreIsolatedPerConfig(t *testing.T) {
	broken := testConfig(30)
	broken.ChannelName = "gone"
	healthy := testConfig(30)
	repo := &fakeCleanRepo{configs: []*models.CleanConfig{broken, healthy}}
	gateway := &fakeChannelGateway{channels: map[string]snowflake.ID{"general": 5}}
	s := NewScheduler(repo, gateway, 0)

	if err := s.Tick(context.Background()); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}

	if len(repo.deleted) != 1 {
		t.Errorf("deleted %d configs, want 1 (the missing channel)", len(repo.deleted))
	}
	if len(repo.saved) != 1 || repo.saved[0].RemainingTime != 29 {
		t.Errorf("healthy config was not processed: saved = %+v", repo.saved)
	}
}

func TestScheduler_PurgeErrorKeepsCountdownAtZero(t *testing.T) {
	repo := &fakeCleanRepo{configs: []*models.CleanConfig{testConfig(1)}}
	gateway := &fakeChannelGateway{
		channels: map[string]snowflake.ID{"general": 5},
		purgeErr: errors.New("missing permissions"),
	}
	s := NewScheduler(repo, gateway, 0)

	if err := s.Tick(context.Background()); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}

	// The failed purge is retried next tick instead of silently resetting.
	if len(repo.saved) != 0 {
		t.Errorf("saved %d configs, want 0", len(repo.saved))
	}
}
