package discovery

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// In production, validate origin properly
		return true
	},
}

// Session is one live discovery connection. The client streams criteria
// changes as it types; the session debounces them and pushes ranked
// results back over the same socket.
type Session struct {
	ID       string
	UserUUID string

	conn      *websocket.Conn
	debouncer *Debouncer
	done      chan struct{}
}

// SessionHandler upgrades discovery websocket connections and runs their
// read/write loops.
type SessionHandler struct {
	pipeline *Pipeline
	window   time.Duration
	logger   interface {
		Printf(string, ...interface{})
	}
}

func NewSessionHandler(pipeline *Pipeline, window time.Duration) *SessionHandler {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &SessionHandler{
		pipeline: pipeline,
		window:   window,
		logger:   log.New(log.Writer(), "[discovery] ", log.LstdFlags),
	}
}

// HandleWebSocketGin validates the optional user_id query parameter and
// upgrades to a live discovery session. Anonymous sessions get
// unpersonalized results.
func (h *SessionHandler) HandleWebSocketGin(c *gin.Context) {
	userUUID := c.Query("user_id")
	if userUUID != "" {
		if _, err := uuid.Parse(userUUID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id, must be UUID"})
			return
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Printf("websocket upgrade error: %v", err)
		return
	}

	session := &Session{
		ID:       uuid.NewString(),
		UserUUID: userUUID,
		conn:     conn,
		done:     make(chan struct{}),
	}
	session.debouncer = NewDebouncer(h.window, func(ctx context.Context, criteria Criteria) (Result, error) {
		return h.pipeline.Discover(ctx, session.UserUUID, criteria)
	})

	h.logger.Printf("session %s connected (user %q)", session.ID, session.UserUUID)

	go h.readLoop(session)
	go h.writeLoop(session)
}

type resultEvent struct {
	EventType string   `json:"event_type"`
	SessionID string   `json:"session_id"`
	Criteria  Criteria `json:"criteria"`
	Result    *Result  `json:"result,omitempty"`
	Error     string   `json:"error,omitempty"`
}

func (h *SessionHandler) readLoop(s *Session) {
	defer func() {
		s.debouncer.Stop()
		close(s.done)
		s.conn.Close()
		h.logger.Printf("session %s disconnected", s.ID)
	}()

	s.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		var criteria Criteria
		if err := s.conn.ReadJSON(&criteria); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Printf("websocket error for session %s: %v", s.ID, err)
			}
			return
		}

		s.debouncer.Set(criteria)
	}
}

func (h *SessionHandler) writeLoop(s *Session) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return

		case outcome := <-s.debouncer.Results():
			s.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

			event := resultEvent{
				EventType: "discovery_results",
				SessionID: s.ID,
				Criteria:  outcome.Criteria,
			}
			if outcome.Err != nil {
				event.EventType = "discovery_error"
				event.Error = outcome.Err.Error()
			} else {
				event.Result = &outcome.Result
			}

			if err := s.conn.WriteJSON(event); err != nil {
				h.logger.Printf("write error for session %s: %v", s.ID, err)
				return
			}

		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.logger.Printf("ping error for session %s: %v", s.ID, err)
				return
			}
		}
	}
}
