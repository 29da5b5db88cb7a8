package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lorenzhs/gpn17-snake/pkg/config"
	"github.com/lorenzhs/gpn17-snake/pkg/game"
	"github.com/lorenzhs/gpn17-snake/pkg/hal"
	"github.com/lorenzhs/gpn17-snake/pkg/proto"
	"github.com/lorenzhs/gpn17-snake/pkg/renderer"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ReplayServer handles serving replay UI and data
type ReplayServer struct {
	addr      string
	recordDir string
	static    string
}

func main() {
	addr := flag.String("addr", ":8081", "listen address")
	dir := flag.String("dir", "records", "recording directory")
	static := flag.String("static", "web/static", "static files")
	verify := flag.String("verify", "", "re-simulate one recording and exit")
	flag.Parse()

	if *verify != "" {
		os.Exit(verifyFile(*verify))
	}

	server := &ReplayServer{
		addr:      *addr,
		recordDir: *dir,
		static:    *static,
	}

	// Serve static files (REUSE the emulator page)
	fs := http.FileServer(http.Dir(server.static))
	http.Handle("/static/", http.StripPrefix("/static/", fs))

	http.HandleFunc("/", server.handleIndex)
	http.HandleFunc("/view", server.handleView)

	// WebSocket for replay data
	http.HandleFunc("/ws/replay", server.handleReplayWS)

	fmt.Printf("📼 Snake Replay Tool starting on http://localhost%s\n", server.addr)
	log.Fatal(http.ListenAndServe(server.addr, nil))
}

// verifyFile prints a replay report and returns the exit code.
func verifyFile(path string) int {
	hdr, ticks, err := loadRecording(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		return 1
	}
	rep, err := game.Replay(hdr, ticks)
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		return 1
	}

	fmt.Printf("📼 Session %s (seed %d, started %s)\n", hdr.Session, hdr.Seed, hdr.Started.Format("2006-01-02 15:04:05"))
	fmt.Printf("   ticks: %d  resets: %d  longest snake: %d\n", rep.Ticks, rep.Resets, rep.MaxLength)
	if rep.DivergedAt != 0 {
		fmt.Printf("⚠️  Diverged at tick %d: %s\n", rep.DivergedAt, rep.Reason)
		return 2
	}
	fmt.Println("✅ Replay matches the recording")
	return 0
}

func loadRecording(path string) (game.RecordHeader, []game.TickRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return game.RecordHeader{}, nil, err
	}
	defer f.Close()
	return game.ReadRecording(f)
}

type RecordFile struct {
	Name      string
	Size      int64
	Time      time.Time
	SessionID string
}

func (s *ReplayServer) listRecordings() []RecordFile {
	files, err := os.ReadDir(s.recordDir)
	if err != nil {
		return nil
	}

	var records []RecordFile
	for _, f := range files {
		if filepath.Ext(f.Name()) != ".jsonl" {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		// expecting format: game_{sessionID}_{timestamp}.jsonl
		parts := strings.Split(f.Name(), "_")
		sessID := ""
		if len(parts) >= 2 {
			sessID = parts[1]
		}
		records = append(records, RecordFile{
			Name:      f.Name(),
			Size:      info.Size(),
			Time:      info.ModTime(),
			SessionID: sessID,
		})
	}

	// Sort by time desc
	sort.Slice(records, func(i, j int) bool {
		return records[i].Time.After(records[j].Time)
	})
	return records
}

var indexTmpl = template.Must(template.New("index").Parse(`
<!DOCTYPE html>
<html>
<head>
    <title>Badge Snake Replays</title>
    <style>
        body { font-family: monospace; background: #1a202c; color: #fff; padding: 2rem; }
        h1 { color: #48bb78; }
        .file-list { display: grid; gap: 1rem; }
        .file-item {
            background: #2d3748; padding: 1rem; border-radius: 8px;
            display: flex; justify-content: space-between; align-items: center;
        }
        .file-item:hover { background: #4a5568; }
        a { color: #63b3ed; text-decoration: none; font-weight: bold; }
        .meta { color: #a0aec0; font-size: 0.9em; }
    </style>
</head>
<body>
    <h1>📼 Replay Library</h1>
    <div class="file-list">
        {{range .}}
        <div class="file-item">
            <div>
                <div class="name">{{.Name}}</div>
                <div class="meta">Session: {{.SessionID}} | Size: {{.Size}} bytes | {{.Time.Format "2006-01-02 15:04:05"}}</div>
            </div>
            <a href="/view?file={{.Name}}">WATCH REPLAY ▶</a>
        </div>
        {{else}}
        <p>No recordings found.</p>
        {{end}}
    </div>
</body>
</html>`))

func (s *ReplayServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if err := indexTmpl.Execute(w, s.listRecordings()); err != nil {
		log.Println("Template error:", err)
	}
}

func (s *ReplayServer) handleView(w http.ResponseWriter, r *http.Request) {
	filename := r.URL.Query().Get("file")
	if filename == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/static/index.html?replay="+url.QueryEscape(filename), http.StatusFound)
}

// recordPath resolves a client supplied name inside the recording directory.
func (s *ReplayServer) recordPath(name string) (string, bool) {
	if name == "" || name != filepath.Base(name) || filepath.Ext(name) != ".jsonl" {
		return "", false
	}
	return filepath.Join(s.recordDir, name), true
}

// Websocket logic
func (s *ReplayServer) handleReplayWS(w http.ResponseWriter, r *http.Request) {
	path, ok := s.recordPath(r.URL.Query().Get("file"))
	if !ok {
		http.Error(w, "bad file", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	hdr, ticks, err := loadRecording(path)
	if err != nil {
		log.Println("Failed to open record:", err)
		return
	}

	if err := conn.WriteJSON(proto.NewConfigMessage()); err != nil {
		return
	}

	// Control vars
	var paused atomic.Bool

	// Read Loop for controls
	go func() {
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}

			var cmd struct {
				Command string `json:"command"`
			}
			if json.Unmarshal(msg, &cmd) != nil {
				continue
			}
			switch cmd.Command {
			case "pause":
				paused.Store(true)
			case "resume":
				paused.Store(false)
			}
		}
	}()

	fb := renderer.NewFramebuffer()
	p := game.NewPlayback(hdr, ticks, fb)

	// Stream Loop, paced like the original game
	for {
		rec, _, ok, err := p.Next()
		if err != nil {
			log.Println("Replay error:", err)
			return
		}
		if !ok {
			return
		}

		for paused.Load() {
			time.Sleep(100 * time.Millisecond)
		}
		delay := time.Duration(rec.FrameDelay) * time.Microsecond
		if delay <= 0 {
			delay = config.InitialFrameDelay
		}
		time.Sleep(delay)

		if !fb.Dirty() {
			continue
		}
		fb.CommitFrame()
		if err := conn.WriteJSON(proto.NewFrameMessage(fb.Bytes(), p.Engine().Len(), hal.Reading{})); err != nil {
			break
		}
	}
}
