package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lorenzhs/gpn17-snake/pkg/badge"
	"github.com/lorenzhs/gpn17-snake/pkg/config"
	"github.com/lorenzhs/gpn17-snake/pkg/game"
	"github.com/lorenzhs/gpn17-snake/pkg/proto"
	"github.com/lorenzhs/gpn17-snake/pkg/sensor"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// Global map to track active IP connections
var activeIPs sync.Map

// Server runs one emulated badge per websocket connection.
type Server struct {
	settings *config.Settings
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	defer conn.Close()

	id := uuid.NewString()
	log.Printf("New WebSocket connection %s from: %s", id, r.RemoteAddr)

	// Get base IP address (remove port)
	ip := r.RemoteAddr
	for i := len(r.RemoteAddr) - 1; i >= 0; i-- {
		if r.RemoteAddr[i] == ':' {
			ip = r.RemoteAddr[:i]
			break
		}
	}

	// Double check if this IP is already connected
	if _, loaded := activeIPs.LoadOrStore(ip, true); loaded {
		log.Printf("Connection rejected: IP %s is already connected\n", ip)
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "Already connected"))
		return
	}

	// Defer removal of IP from active list when connection closes
	defer activeIPs.Delete(ip)

	// Mutex to protect concurrent writes to the WebSocket connection
	var writeMu sync.Mutex
	safeWriteJSON := func(v interface{}) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		return conn.WriteJSON(v)
	}

	if err := safeWriteJSON(proto.NewConfigMessage()); err != nil {
		log.Println("Write error:", err)
		return
	}

	tilt := &sensor.Manual{}
	sink := newWebSink(func(m proto.ServerMessage) error { return safeWriteJSON(m) })
	session, err := badge.NewSession(s.settings, tilt, game.Outputs{
		Pixels:     sink,
		Indicators: sink,
		Haptic:     sink,
	})
	if err != nil {
		log.Printf("[%s] Session error: %v", id, err)
		return
	}
	defer session.Close()
	sink.engine = session.Loop.Engine()
	sink.classifier = session.Classifier

	// Input handling goroutine. Tilt goes straight to the sensor; anything
	// touching the game is handed to the loop goroutine.
	messages := make(chan proto.ClientMessage, 16)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var msg proto.ClientMessage
			if err := conn.ReadJSON(&msg); err != nil {
				log.Printf("[%s] Read error: %v", id, err)
				return
			}
			if msg.Type == proto.TypeTilt && msg.Reading != nil {
				tilt.Set(*msg.Reading)
				continue
			}
			select {
			case messages <- msg:
			default: // loop is behind, drop the key
			}
		}
	}()

	ticker := time.NewTicker(config.FramePeriod)
	defer ticker.Stop()

	session.Loop.Start()

	// Game loop
	for {
		select {
		case <-done:
			log.Printf("[%s] Disconnected after %d ticks (seed %d)", id, session.Loop.Ticks(), session.Seed)
			return
		case msg := <-messages:
			switch msg.Type {
			case proto.TypeCalibrate:
				session.Calibrate()
			case proto.TypeAction:
				if cmd, ok := proto.ToCommand(msg.Action); ok {
					session.Keys.Push(cmd)
				}
			}
		case <-ticker.C:
			session.Loop.Frame()
			if sink.err != nil {
				log.Printf("[%s] Write error: %v", id, sink.err)
				return
			}
		}
	}
}

func main() {
	configPath := flag.String("config", "badge.yaml", "settings file")
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Fatalf("Error loading settings: %v", err)
	}
	srv := &Server{settings: settings}

	// Serve static files
	fs := http.FileServer(http.Dir(settings.Web.Static))
	http.Handle("/", fs)

	// WebSocket endpoint
	http.HandleFunc("/ws", srv.handleWebSocket)

	fmt.Printf("🚀 Badge Snake emulator starting on %s\n", settings.Web.Addr)
	fmt.Println("📱 Open the page on a phone and tilt it to steer")

	log.Fatal(http.ListenAndServe(settings.Web.Addr, nil))
}
