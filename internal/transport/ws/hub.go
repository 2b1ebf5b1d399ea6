package ws

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgResultsUpdate MessageType = "results_update"
	MsgError         MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages the dashboard connections watching each survey
type Hub struct {
	// surveyID -> connections
	watchers map[string]map[*Connection]bool

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage

	log *zap.Logger
}

// Connection represents one dashboard WebSocket connection
type Connection struct {
	SurveyID   string
	OperatorID string
	Send       chan []byte
	Hub        *Hub
}

// BroadcastMessage is a message to broadcast to a survey's watchers
type BroadcastMessage struct {
	SurveyID string
	Message  *Message
}

// NewHub creates a new WebSocket hub
func NewHub(log *zap.Logger) *Hub {
	h := &Hub{
		watchers:   make(map[string]map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
		log:        log,
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.watchers[conn.SurveyID] == nil {
				h.watchers[conn.SurveyID] = make(map[*Connection]bool)
			}
			h.watchers[conn.SurveyID][conn] = true
			h.mu.Unlock()
			h.log.Debug("dashboard connected",
				zap.String("surveyId", conn.SurveyID),
				zap.String("operatorId", conn.OperatorID))

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.watchers[conn.SurveyID]; ok {
				if conns[conn] {
					delete(conns, conn)
					close(conn.Send)
					if len(conns) == 0 {
						delete(h.watchers, conn.SurveyID)
					}
				}
			}
			h.mu.Unlock()
			h.log.Debug("dashboard disconnected",
				zap.String("surveyId", conn.SurveyID),
				zap.String("operatorId", conn.OperatorID))

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)
			for conn := range h.watchers[msg.SurveyID] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastResults pushes a fresh tally to every dashboard watching the
// survey (implements service.Broadcaster)
func (h *Hub) BroadcastResults(surveyID string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.log.Warn("failed to marshal results payload", zap.Error(err))
		return
	}
	h.broadcast <- &BroadcastMessage{
		SurveyID: surveyID,
		Message: &Message{
			Type:    MsgResultsUpdate,
			Payload: data,
		},
	}
}
