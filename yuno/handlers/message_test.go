package handlers

import (
	"testing"

	"github.com/blubskye/yuno-go/yuno/config"
)

func TestNewMessageHandler_AckMessage(t *testing.T) {
	h := NewMessageHandler(nil, nil, nil, nil, 0, "")
	if h.dmAck != config.DefaultDMAckMessage {
		t.Errorf("dmAck = %q, want default %q", h.dmAck, config.DefaultDMAckMessage)
	}

	h = NewMessageHandler(nil, nil, nil, nil, 0, "Noted. I will pass it on.")
	if h.dmAck != "Noted. I will pass it on." {
		t.Errorf("dmAck = %q, want the configured message", h.dmAck)
	}
}
