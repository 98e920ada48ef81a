package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/blubskye/yuno-go/yuno/database/models"
	discord "github.com/disgoorg/disgo/discord"
	snowflake "github.com/disgoorg/snowflake/v2"
	gomock "go.uber.org/mock/gomock"
)

// MockGateway is a mock of Gateway interface.
type MockGateway struct {
	ctrl     *gomock.Controller
	recorder *MockGatewayMockRecorder
	isgomock struct{}
}

// MockGatewayMockRecorder is the mock recorder for MockGateway.
type MockGatewayMockRecorder struct {
	mock *MockGateway
}

// NewMockGateway creates a new mock instance.
func NewMockGateway(ctrl *gomock.Controller) *MockGateway {
	mock := &MockGateway{ctrl: ctrl}
	mock.recorder = &MockGatewayMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGateway) EXPECT() *MockGatewayMockRecorder {
	return m.recorder
}

// BanMember mocks base method.
func (m *MockGateway) BanMember(ctx context.Context, guildID, userID snowflake.ID, reason string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BanMember", ctx, guildID, userID, reason)
	ret0, _ := ret[0].(error)
	return ret0
}

// BanMember indicates an expected call of BanMember.
func (mr *MockGatewayMockRecorder) BanMember(ctx, guildID, userID, reason any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BanMember", reflect.TypeOf((*MockGateway)(nil).BanMember), ctx, guildID, userID, reason)
}

// DeleteMessage mocks base method.
func (m *MockGateway) DeleteMessage(ctx context.Context, channelID, messageID snowflake.ID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteMessage", ctx, channelID, messageID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteMessage indicates an expected call of DeleteMessage.
func (mr *MockGatewayMockRecorder) DeleteMessage(ctx, channelID, messageID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteMessage", reflect.TypeOf((*MockGateway)(nil).DeleteMessage), ctx, channelID, messageID)
}

// SendDirectEmbed mocks base method.
func (m *MockGateway) SendDirectEmbed(ctx context.Context, userID snowflake.ID, embed discord.Embed) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendDirectEmbed", ctx, userID, embed)
	ret0, _ := ret[0].(error)
	return ret0
}

// SendDirectEmbed indicates an expected call of SendDirectEmbed.
func (mr *MockGatewayMockRecorder) SendDirectEmbed(ctx, userID, embed any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendDirectEmbed", reflect.TypeOf((*MockGateway)(nil).SendDirectEmbed), ctx, userID, embed)
}

// MockModActionRepository is a mock of ModActionRepository interface.
type MockModActionRepository struct {
	ctrl     *gomock.Controller
	recorder *MockModActionRepositoryMockRecorder
	isgomock struct{}
}

// MockModActionRepositoryMockRecorder is the mock recorder for MockModActionRepository.
type MockModActionRepositoryMockRecorder struct {
	mock *MockModActionRepository
}

// NewMockModActionRepository creates a new mock instance.
func NewMockModActionRepository(ctrl *gomock.Controller) *MockModActionRepository {
	mock := &MockModActionRepository{ctrl: ctrl}
	mock.recorder = &MockModActionRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockModActionRepository) EXPECT() *MockModActionRepositoryMockRecorder {
	return m.recorder
}

// Add mocks base method.
func (m *MockModActionRepository) Add(ctx context.Context, action *models.ModAction) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Add", ctx, action)
	ret0, _ := ret[0].(error)
	return ret0
}

// Add indicates an expected call of Add.
func (mr *MockModActionRepositoryMockRecorder) Add(ctx, action any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Add", reflect.TypeOf((*MockModActionRepository)(nil).Add), ctx, action)
}

// Stats mocks base method.
func (m *MockModActionRepository) Stats(ctx context.Context, guildID string) (*models.ModStats, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Stats", ctx, guildID)
	ret0, _ := ret[0].(*models.ModStats)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Stats indicates an expected call of Stats.
func (mr *MockModActionRepositoryMockRecorder) Stats(ctx, guildID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Stats", reflect.TypeOf((*MockModActionRepository)(nil).Stats), ctx, guildID)
}
