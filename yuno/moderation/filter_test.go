package moderation

import (
	"context"
	"errors"
	"testing"

	"github.com/blubskye/yuno-go/yuno/database/models"
	"github.com/blubskye/yuno-go/yuno/moderation/mock"
	"github.com/disgoorg/snowflake/v2"
	"go.uber.org/mock/gomock"
)

const (
	testGuildID   = snowflake.ID(100)
	testChannelID = snowflake.ID(200)
	testMessageID = snowflake.ID(300)
	testUserID    = snowflake.ID(400)
	testSelfID    = snowflake.ID(500)
)

func TestSpamFilter_ProcessCleanMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockGateway(ctrl)
	actions := mock.NewMockModActionRepository(ctrl)

	f := NewSpamFilter(gateway, actions, 3, testSelfID)

	verdict, err := f.Process(context.Background(), testGuildID, testChannelID, testMessageID, testUserID, "just chatting")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if verdict != VerdictClean {
		t.Errorf("verdict = %v, want VerdictClean", verdict)
	}
	if got := f.Ledger().Count(testUserID); got != 0 {
		t.Errorf("warning count = %d, want 0", got)
	}
}

func TestSpamFilter_ProcessViolationWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockGateway(ctrl)
	actions := mock.NewMockModActionRepository(ctrl)

	gateway.EXPECT().
		DeleteMessage(gomock.Any(), testChannelID, testMessageID).
		Return(nil)
	gateway.EXPECT().
		SendDirectEmbed(gomock.Any(), testUserID, gomock.Any()).
		Return(nil)

	f := NewSpamFilter(gateway, actions, 3, testSelfID)

	verdict, err := f.Process(context.Background(), testGuildID, testChannelID, testMessageID, testUserID, "https://example.com")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if verdict != VerdictGenericLink {
		t.Errorf("verdict = %v, want VerdictGenericLink", verdict)
	}
	if got := f.Ledger().Count(testUserID); got != 1 {
		t.Errorf("warning count = %d, want 1", got)
	}
}

func TestSpamFilter_ProcessThirdViolationBans(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockGateway(ctrl)
	actions := mock.NewMockModActionRepository(ctrl)

	gateway.EXPECT().
		DeleteMessage(gomock.Any(), testChannelID, testMessageID).
		Return(nil).
		Times(3)
	gateway.EXPECT().
		SendDirectEmbed(gomock.Any(), testUserID, gomock.Any()).
		Return(nil).
		Times(3)
	gateway.EXPECT().
		BanMember(gomock.Any(), testGuildID, testUserID, gomock.Any()).
		Return(nil)
	actions.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, action *models.ModAction) error {
			if action.Action != models.ActionBan {
				t.Errorf("audit action = %q, want %q", action.Action, models.ActionBan)
			}
			if action.ModeratorID != testSelfID.String() {
				t.Errorf("audit moderator = %q, want %q", action.ModeratorID, testSelfID.String())
			}
			if action.TargetID != testUserID.String() {
				t.Errorf("audit target = %q, want %q", action.TargetID, testUserID.String())
			}
			return nil
		})

	f := NewSpamFilter(gateway, actions, 3, testSelfID)

	for i := 0; i < 3; i++ {
		if _, err := f.Process(context.Background(), testGuildID, testChannelID, testMessageID, testUserID, "@everyone hi"); err != nil {
			t.Fatalf("Process() violation %d error = %v", i+1, err)
		}
	}

	if got := f.Ledger().Count(testUserID); got != 0 {
		t.Errorf("warning count after ban = %d, want 0", got)
	}
}

func TestSpamFilter_AdvisoryFailuresDoNotBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockGateway(ctrl)
	actions := mock.NewMockModActionRepository(ctrl)

	// Delete and DM fail but the warning still lands.
	gateway.EXPECT().
		DeleteMessage(gomock.Any(), testChannelID, testMessageID).
		Return(errors.New("missing permissions"))
	gateway.EXPECT().
		SendDirectEmbed(gomock.Any(), testUserID, gomock.Any()).
		Return(errors.New("dms closed"))

	f := NewSpamFilter(gateway, actions, 3, testSelfID)

	if _, err := f.Process(context.Background(), testGuildID, testChannelID, testMessageID, testUserID, "discord.gg/abc"); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got := f.Ledger().Count(testUserID); got != 1 {
		t.Errorf("warning count = %d, want 1", got)
	}
}

func TestSpamFilter_BanFailureIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockGateway(ctrl)
	actions := mock.NewMockModActionRepository(ctrl)

	gateway.EXPECT().
		DeleteMessage(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	gateway.EXPECT().
		SendDirectEmbed(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	gateway.EXPECT().
		BanMember(gomock.Any(), testGuildID, testUserID, gomock.Any()).
		Return(errors.New("missing ban permission"))

	f := NewSpamFilter(gateway, actions, 1, testSelfID)

	_, err := f.Process(context.Background(), testGuildID, testChannelID, testMessageID, testUserID, "@here free stuff")
	if err == nil {
		t.Fatal("Process() error = nil, want ban failure")
	}
}
