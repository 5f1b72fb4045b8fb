// Package bridge 通过 WebSocket 把场景帧推送给浏览器渲染端
//
// 浏览器负责真正的 3D 渲染，每帧把滚动采样发给服务端；
// 服务端为每个连接维护一个独立的 Experience，返回计算好的 Frame。
package bridge

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gonewx/scrollscene/pkg/config"
	"github.com/gonewx/scrollscene/pkg/game"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// SessionHeader 握手响应中携带会话 ID 的头
const SessionHeader = "X-Scene-Session"

// readTimeout 客户端停止发送采样后多久断开
const readTimeout = 60 * time.Second

// ClientMessage 客户端每帧发送的滚动采样
type ClientMessage struct {
	// Offset 归一化滚动偏移 [0,1]
	// JSON 无法表示 NaN/Inf，浏览器会把它们序列化成 null，
	// 因此 null 或缺省按非有限值处理，由核心沿用上一次的有效偏移
	Offset *float64 `json:"offset"`
	// Delta 距上一帧的时间（秒）
	Delta float64 `json:"delta"`
	// Elapsed 场景时钟（秒）
	Elapsed float64 `json:"elapsed"`
	// Width, Height 视口像素尺寸，为 0 表示不变
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// PixelRatio 设备像素比，为 0 表示不变
	PixelRatio float64 `json:"pixelRatio,omitempty"`
	// Hovered 悬停的服务卡片，缺省为 -1
	Hovered *int `json:"hovered,omitempty"`
}

// session 单个连接的状态，只在该连接的读循环中访问
type session struct {
	id         string
	exp        *game.Experience
	width      float64
	height     float64
	pixelRatio float64
}

// Server WebSocket 帧服务
type Server struct {
	cfg      *config.SceneConfig
	upgrader websocket.Upgrader

	mu       sync.Mutex
	sessions map[string]*session
}

// NewServer 创建帧服务
//
// 参数:
//   - cfg: 所有会话共用的场景配置（只读）
func NewServer(cfg *config.SceneConfig) *Server {
	return &Server{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 16 * 1024,
			// 渲染端通常由独立的开发服务器提供
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		sessions: make(map[string]*session),
	}
}

// Handler 返回 HTTP 路由：/ws 帧流，/healthz 健康检查
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "ok")
	})
	return mux
}

// Sessions 当前连接数
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Server) newSession() (*session, error) {
	exp, err := game.NewExperience(s.cfg, game.DefaultOptions(s.cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create experience: %w", err)
	}
	sess := &session{id: uuid.NewString(), exp: exp, pixelRatio: 1}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()
	return sess, nil
}

func (s *Server) removeSession(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	sess, err := s.newSession()
	if err != nil {
		log.Printf("[Bridge] %v", err)
		http.Error(w, "failed to create session", http.StatusInternalServerError)
		return
	}
	defer s.removeSession(sess.id)

	conn, err := s.upgrader.Upgrade(w, r, http.Header{SessionHeader: []string{sess.id}})
	if err != nil {
		// Upgrade 已经写了错误响应
		log.Printf("[Bridge] Upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	log.Printf("[Bridge] Session %s connected from %s", sess.id, r.RemoteAddr)
	if err := s.serve(conn, sess); err != nil {
		log.Printf("[Bridge] Session %s closed: %v", sess.id, err)
		return
	}
	log.Printf("[Bridge] Session %s closed", sess.id)
}

// serve 读取采样、推进一帧、回写 Frame，直到连接关闭
func (s *Server) serve(conn *websocket.Conn, sess *session) error {
	for {
		conn.SetReadDeadline(time.Now().Add(readTimeout))

		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("failed to read sample: %w", err)
		}

		frame := s.step(sess, msg)
		if err := conn.WriteJSON(frame); err != nil {
			return fmt.Errorf("failed to write frame: %w", err)
		}
	}
}

// step 应用一条采样
func (s *Server) step(sess *session, msg ClientMessage) game.Frame {
	resized := false
	if msg.Width > 0 && msg.Height > 0 && (msg.Width != sess.width || msg.Height != sess.height) {
		sess.width, sess.height = msg.Width, msg.Height
		resized = true
	}
	if msg.PixelRatio > 0 && msg.PixelRatio != sess.pixelRatio {
		sess.pixelRatio = msg.PixelRatio
		resized = true
	}
	if resized && sess.width > 0 {
		sess.exp.Resize(game.OptionsFor(s.cfg, sess.width, sess.height, sess.pixelRatio))
	}

	hovered := -1
	if msg.Hovered != nil {
		hovered = *msg.Hovered
	}
	sess.exp.SetHovered(hovered)

	offset := math.NaN()
	if msg.Offset != nil {
		offset = *msg.Offset
	}
	return sess.exp.Update(msg.Delta, msg.Elapsed, offset)
}
