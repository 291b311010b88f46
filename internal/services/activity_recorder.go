package services

import (
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/job-platform/internal/events"
	"github.com/maxaizer/job-platform/internal/metrics"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ActivityRecorder listens to domain events and turns them into
// prometheus counters and audit log lines.
type ActivityRecorder struct {
	bus EventBus.Bus
}

func NewActivityRecorder(bus EventBus.Bus) (*ActivityRecorder, error) {

	if bus == nil {
		return nil, errors.New("bus is nil")
	}

	ar := &ActivityRecorder{bus: bus}

	if err := bus.Subscribe(events.UserRegisteredTopic, ar.onUserRegistered); err != nil {
		return nil, err
	}
	if err := bus.Subscribe(events.ApplicationSubmittedTopic, ar.onApplicationSubmitted); err != nil {
		return nil, err
	}
	if err := bus.Subscribe(events.MessageSentTopic, ar.onMessageSent); err != nil {
		return nil, err
	}

	return ar, nil
}

func (ar *ActivityRecorder) Stop() {
	_ = ar.bus.Unsubscribe(events.UserRegisteredTopic, ar.onUserRegistered)
	_ = ar.bus.Unsubscribe(events.ApplicationSubmittedTopic, ar.onApplicationSubmitted)
	_ = ar.bus.Unsubscribe(events.MessageSentTopic, ar.onMessageSent)
}

func (ar *ActivityRecorder) onUserRegistered(event events.UserRegistered) {
	metrics.RegistrationsCounter.Inc()
	log.Infof("user %v registered with role %v", event.UserID, event.Role)
}

func (ar *ActivityRecorder) onApplicationSubmitted(event events.ApplicationSubmitted) {
	metrics.ApplicationsCounter.Inc()
	log.Infof("application %v submitted: resume %v applied to job %v",
		event.ApplicationID, event.ResumeID, event.JobID)
}

func (ar *ActivityRecorder) onMessageSent(event events.MessageSent) {
	metrics.MessagesCounter.Inc()
	log.Debugf("message %v sent in chat %v by user %v", event.MessageID, event.ChatID, event.SenderID)
}
