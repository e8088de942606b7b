package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
	livenotifier "github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/notifier"
)

const defaultHeartbeat = 25 * time.Second

// EventSource is where live subscriptions come from
type EventSource interface {
	Join(channel string) *livenotifier.Subscription
	Leave(sub *livenotifier.Subscription)
}

// EventHandler streams a creator's live events as Server-Sent Events
type EventHandler struct {
	source    EventSource
	logger    coreport.Logger
	heartbeat time.Duration
}

// NewEventHandler creates a stream handler sending a ping every heartbeat
func NewEventHandler(source EventSource, logger coreport.Logger, heartbeat time.Duration) *EventHandler {
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeat
	}
	return &EventHandler{source: source, logger: logger, heartbeat: heartbeat}
}

// Stream handles GET /creators/:creatorId/events
func (h *EventHandler) Stream(c *gin.Context) {
	creatorID, err := pathID(c, "creatorId", domainerr.ErrInvalidCreatorID)
	if err != nil {
		abortWith(c, err)
		return
	}

	sub := h.source.Join(entity.CreatorChannel(creatorID))
	defer h.source.Leave(sub)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	h.logger.Info("Live event stream opened", map[string]any{"creator_id": creatorID})

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case ev, ok := <-sub.Events():
			if !ok {
				return false
			}
			c.SSEvent(ev.Name, ev.Payload)
			return true
		case <-heartbeat.C:
			c.SSEvent("ping", gin.H{"time": time.Now().UTC()})
			return true
		}
	})

	h.logger.Info("Live event stream closed", map[string]any{"creator_id": creatorID})
}
