package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/df07/go-voxel-raytracer/pkg/config"
	"github.com/df07/go-voxel-raytracer/pkg/renderer"
	"github.com/df07/go-voxel-raytracer/pkg/scene"
)

// framesPerSecond is the target stream rate per connection
const framesPerSecond = 30

// Server renders frames on demand and streams them to browser clients over
// a websocket. Each connection gets its own renderer and scene clock, so
// clients can freeze or switch scenes independently.
type Server struct {
	port     int
	settings config.Settings
	upgrader websocket.Upgrader
}

// NewServer creates a web server with the given render settings
func NewServer(port int, settings config.Settings) *Server {
	return &Server{
		port:     port,
		settings: settings,
		upgrader: websocket.Upgrader{
			// The viewer page may be served from elsewhere during development
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// FrameUpdate is one streamed frame: an encoded image plus its stats
type FrameUpdate struct {
	ImageData string  `json:"imageData"` // Base64 encoded PNG
	Stats     Stats   `json:"stats"`
	SceneTime float64 `json:"sceneTime"`
	Frozen    bool    `json:"frozen"`
}

// Stats mirrors renderer.FrameStats for the client
type Stats struct {
	Rays            int     `json:"rays"`
	RaysEnteredGrid int     `json:"raysEnteredGrid"`
	Hits            int     `json:"hits"`
	TotalSteps      int     `json:"totalSteps"`
	MaxSteps        int     `json:"maxSteps"`
	AvgStepsPerRay  float64 `json:"avgStepsPerRay"`
	HitRatio        float64 `json:"hitRatio"`
	RaysPerSec      float64 `json:"raysPerSec"`
	StepsPerSec     float64 `json:"stepsPerSec"`
}

// ControlMessage is sent by the client to adjust the stream
type ControlMessage struct {
	Freeze *bool   `json:"freeze,omitempty"`
	Scene  *string `json:"scene,omitempty"`
}

// Start starts the web server
func (s *Server) Start() error {
	http.Handle("/", http.FileServer(http.Dir("static/")))
	http.HandleFunc("/ws", s.handleStream)
	http.HandleFunc("/api/health", s.handleHealth)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleStream upgrades the connection and streams rendered frames until the
// client disconnects
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	grid, err := scene.Create(s.settings.Render.Scene)
	if err != nil {
		log.Printf("Scene error: %v", err)
		return
	}
	rend := renderer.NewRenderer(grid, s.settings.CameraConfig(grid))
	rend.SetWorkers(s.settings.Render.Workers)

	// Control messages arrive on a channel so the render loop never blocks
	// on the socket read. done releases the reader if the render loop exits
	// with a send still pending.
	controls := make(chan ControlMessage)
	done := make(chan struct{})
	defer close(done)
	go s.readControls(conn, controls, done)

	ticker := time.NewTicker(time.Second / framesPerSecond)
	defer ticker.Stop()

	sceneTime := 0.0
	frozen := false
	lastFrame := time.Now()

	for {
		select {
		case msg, ok := <-controls:
			if !ok {
				return // client disconnected
			}
			if msg.Freeze != nil {
				frozen = *msg.Freeze
			}
			if msg.Scene != nil {
				newGrid, err := scene.Create(*msg.Scene)
				if err != nil {
					log.Printf("Ignoring scene switch: %v", err)
					continue
				}
				grid = newGrid
				rend = renderer.NewRenderer(grid, s.settings.CameraConfig(grid))
				rend.SetWorkers(s.settings.Render.Workers)
				sceneTime = 0
			}
		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(lastFrame).Seconds()
			lastFrame = now
			if !frozen {
				sceneTime += dt
			}

			img, stats := rend.RenderFrame(sceneTime, frozen)
			stats.Finalize(dt)

			update, err := encodeFrame(img, stats, sceneTime, frozen)
			if err != nil {
				log.Printf("Frame encode error: %v", err)
				return
			}
			if err := conn.WriteJSON(update); err != nil {
				return // client went away
			}
		}
	}
}

// readControls forwards client control messages and closes the channel when
// the connection drops. It returns once done is closed, even with a message
// still waiting for the render loop.
func (s *Server) readControls(conn *websocket.Conn, controls chan<- ControlMessage, done <-chan struct{}) {
	defer close(controls)
	for {
		var msg ControlMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		select {
		case controls <- msg:
		case <-done:
			return
		}
	}
}

// encodeFrame packs a rendered frame into the wire format
func encodeFrame(img image.Image, stats renderer.FrameStats, sceneTime float64, frozen bool) (FrameUpdate, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return FrameUpdate{}, err
	}

	return FrameUpdate{
		ImageData: base64.StdEncoding.EncodeToString(buf.Bytes()),
		Stats: Stats{
			Rays:            stats.Rays,
			RaysEnteredGrid: stats.RaysEnteredGrid,
			Hits:            stats.Hits,
			TotalSteps:      stats.TotalSteps,
			MaxSteps:        stats.MaxSteps,
			AvgStepsPerRay:  stats.AvgStepsPerRay,
			HitRatio:        stats.HitRatio,
			RaysPerSec:      stats.RaysPerSec,
			StepsPerSec:     stats.StepsPerSec,
		},
		SceneTime: sceneTime,
		Frozen:    frozen,
	}, nil
}
