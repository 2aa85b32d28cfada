package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Devang1/BVCOE-TalkZone/internal/mocks"
)

func TestEmitPublishesEnvelope(t *testing.T) {
	publisher := new(mocks.PublisherMock)
	emitter := NewAuditEmitter(publisher, "audit_logs.talkzone", "talkzone", "test")

	room := "1st Year/CSE1"
	publisher.On("Publish", mock.Anything, "audit_logs.talkzone", mock.MatchedBy(func(event any) bool {
		envelope, ok := event.(AuditEnvelope)
		return ok &&
			envelope.EventType == "audit_log" &&
			envelope.Service == "talkzone" &&
			envelope.Environment == "test" &&
			envelope.RequestID == "req-1" &&
			envelope.Room != nil && *envelope.Room == room &&
			envelope.Payload.Level == "INFO" &&
			envelope.Payload.Text == "room login"
	})).Return(nil).Once()

	emitter.Emit(context.Background(), "INFO", "room login", "req-1", &room)

	publisher.AssertExpectations(t)
}

func TestEmitNilEmitterIsNoop(t *testing.T) {
	var emitter *AuditEmitter
	assert.NotPanics(t, func() {
		emitter.Emit(context.Background(), "INFO", "ignored", "req", nil)
	})
}
