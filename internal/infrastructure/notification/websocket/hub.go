package websocket

import (
	"sync"
	"time"

	"github.com/dreschagin/scrum-health-dashboard/pkg/logger"
)

// HealthUpdate — сообщение о смене снимка здоровья команды.
// Клиент по нему перезапрашивает данные; сами метрики по сокету
// не передаются.
type HealthUpdate struct {
	TeamID       string    `json:"team_id"`
	SprintNumber string    `json:"sprint_number,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Hub управляет WebSocket клиентами и рассылает уведомления.
// Реализует интерфейс port.NotificationService
type Hub struct {
	// Зарегистрированные клиенты
	clients map[*Client]bool

	// Канал для broadcast уведомлений
	broadcast chan HealthUpdate

	// Канал для регистрации клиентов
	register chan *Client

	// Канал для удаления клиентов
	unregister chan *Client

	// Mutex для защиты clients map
	mu sync.RWMutex

	// Logger
	logger *logger.Logger
}

// NewHub создает новый WebSocket hub
func NewHub(logger *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan HealthUpdate, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Run запускает hub (должен быть запущен в отдельной goroutine)
func (h *Hub) Run() {
	h.logger.Info("WebSocket hub started")

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Debug("Client registered", "total_clients", len(h.clients))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.Debug("Client unregistered", "total_clients", len(h.clients))

		case update := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- Message{Type: "health_update", Data: update}:
					// Сообщение отправлено
				default:
					// Канал клиента заполнен, закрываем соединение
					close(client.send)
					delete(h.clients, client)
					h.logger.Warn("Client channel full, disconnected")
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register регистрирует нового клиента
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister удаляет клиента
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// BroadcastTeamHealthUpdate уведомляет клиентов об изменении снимка
// команды (реализация port.NotificationService)
func (h *Hub) BroadcastTeamHealthUpdate(teamID, sprintNumber string) {
	update := HealthUpdate{
		TeamID:       teamID,
		SprintNumber: sprintNumber,
		UpdatedAt:    time.Now(),
	}

	select {
	case h.broadcast <- update:
		// Уведомление отправлено в канал
	default:
		h.logger.Warn("Broadcast channel full, dropping update", "team_id", teamID)
	}
}

// ClientCount возвращает количество подключенных клиентов
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Message представляет сообщение для отправки клиенту
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}
