package cartControllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	"github.com/baqati-oman/storefront-api/cache"
	"github.com/baqati-oman/storefront-api/middleware"
	"github.com/baqati-oman/storefront-api/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const writeWait = 5 * time.Second

// badgeClient wraps a socket with its own write lock; gorilla permits only one
// concurrent writer per connection.
type badgeClient struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (cl *badgeClient) send(count int) {
	data, err := json.Marshal(gin.H{"count": count})
	if err != nil {
		return
	}
	cl.mu.Lock()
	defer cl.mu.Unlock()
	_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := cl.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Printf("cart badge: websocket write failed: %v", err)
	}
}

// Badge keeps cart-count indicators in sync. Every cart mutation notifies it;
// it invalidates the cached count and pushes the fresh one to any websocket
// subscribers of that session. The cart handlers themselves render nothing.
type Badge struct {
	db    *gorm.DB
	cache cache.CountCache

	mu      sync.Mutex
	clients map[string]map[*badgeClient]bool // session -> sockets
}

func NewBadge(db *gorm.DB, countCache cache.CountCache) *Badge {
	return &Badge{
		db:      db,
		cache:   countCache,
		clients: make(map[string]map[*badgeClient]bool),
	}
}

// Count returns the sum of quantities across the session's cart rows, 0 on any
// failure. Failures are logged, never surfaced: a wrong badge beats a broken
// page.
func (b *Badge) Count(ctx context.Context, sessionID string) int {
	if n, err := b.cache.GetCount(ctx, sessionID); err == nil {
		return n
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		log.Printf("cart badge: cache read failed: %v", err)
	}

	n, err := sumQuantities(b.db.WithContext(ctx), sessionID)
	if err != nil {
		log.Printf("cart badge: count query failed: %v", err)
		return 0
	}

	if err := b.cache.SetCount(ctx, sessionID, n); err != nil {
		log.Printf("cart badge: cache write failed: %v", err)
	}
	return n
}

// CartChanged is called after every successful cart mutation.
func (b *Badge) CartChanged(ctx context.Context, sessionID string) {
	if err := b.cache.Invalidate(ctx, sessionID); err != nil {
		log.Printf("cart badge: cache invalidate failed: %v", err)
	}
	b.broadcast(sessionID, b.Count(ctx, sessionID))
}

// GET /cart/stream
func (b *Badge) Stream(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	client := &badgeClient{conn: conn}
	b.register(sessionID, client)
	defer b.unregister(sessionID, client)

	// Push the current count immediately so new subscribers render the badge
	// without a separate poll.
	client.send(b.Count(c.Request.Context(), sessionID))

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (b *Badge) register(sessionID string, client *badgeClient) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.clients[sessionID] == nil {
		b.clients[sessionID] = make(map[*badgeClient]bool)
	}
	b.clients[sessionID][client] = true
}

func (b *Badge) unregister(sessionID string, client *badgeClient) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.clients[sessionID], client)
	if len(b.clients[sessionID]) == 0 {
		delete(b.clients, sessionID)
	}
}

// broadcast snapshots the session's subscribers under the registry lock and
// writes outside it, so one slow socket cannot stall cart mutations for the
// whole session.
func (b *Badge) broadcast(sessionID string, count int) {
	b.mu.Lock()
	targets := make([]*badgeClient, 0, len(b.clients[sessionID]))
	for client := range b.clients[sessionID] {
		targets = append(targets, client)
	}
	b.mu.Unlock()

	for _, client := range targets {
		client.send(count)
	}
}

func sumQuantities(db *gorm.DB, sessionID string) (int, error) {
	var count int
	err := db.Model(&models.CartItem{}).
		Where("session_id = ?", sessionID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&count).Error
	return count, err
}
