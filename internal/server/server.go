package server

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/cricklet/minimaxgo/internal/engine"
	. "github.com/cricklet/minimaxgo/internal/helpers"
	"github.com/cricklet/minimaxgo/internal/uci"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

//go:embed static/index.html
var indexHtml []byte

type Server struct {
	Config Config
	Log    zerolog.Logger

	upgrader websocket.Upgrader
}

func NewServer(config Config, log zerolog.Logger) (*Server, Error) {
	err := Validate(config)
	if !IsNil(err) {
		return nil, err
	}
	return &Server{
		Config: config,
		Log:    log,
	}, NilError
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/ws", s.handleWebsocket)
	router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	return router
}

func (s *Server) ListenAndServe() Error {
	s.Log.Info().Int("port", s.Config.Port).Msg("serving")
	return Wrap(http.ListenAndServe(fmt.Sprintf(":%v", s.Config.Port), s.Router()))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := w.Write(indexHtml)
	if err != nil {
		s.Log.Error().Err(err).Msg("index")
	}
}

// socket serializes writes onto one websocket connection. Output lines come
// from both the read loop and the engine's worker.
type socket struct {
	lock sync.Mutex
	conn *websocket.Conn
}

func (c *socket) send(update UpdateToWeb) error {
	bytes, err := json.Marshal(update)
	if err != nil {
		return err
	}

	c.lock.Lock()
	defer c.lock.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, bytes)
}

// Write sends each line of p as its own message, so a LineWriter can write
// UCI output straight to the browser.
func (c *socket) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimSuffix(string(p), "\n"), "\n") {
		if err := c.send(LineUpdate(line)); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.Log.Error().Err(err).Msg("upgrade")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(s.Config.ReadLimit)

	log := s.Log.With().Str("remote", r.RemoteAddr).Logger()
	logger := NewZeroLogger(log)
	logger.Level = zerolog.DebugLevel

	ws := &socket{conn: conn}
	output := NewLineWriter(ws)

	e := engine.NewEngine(output, engine.WithLogger(logger))
	defer e.Close()
	runner := uci.NewUciRunner(e, output, logger)

	log.Info().Msg("connected")
	for !runner.Done() {
		_, bytes, err := conn.ReadMessage()
		if err != nil {
			log.Info().Err(err).Msg("disconnected")
			return
		}

		var message MessageFromWeb
		if err := json.Unmarshal(bytes, &message); err != nil || message.Input == nil {
			log.Warn().Str("message", string(bytes)).Msg("unexpected message")
			continue
		}
		log.Debug().Stringer("message", message).Msg("received")

		lines, handleErr := runner.HandleInput(*message.Input)
		if !IsNil(handleErr) {
			if !uci.IsRecoverable(handleErr) {
				log.Error().Str("error", handleErr.Message()).Msg("input")
				return
			}
			lines = append(lines, uci.Diagnostic(handleErr))
		}

		writeErr := output.WriteLines(lines...)
		if IsNil(writeErr) {
			writeErr = Wrap(ws.send(StateUpdate(e)))
		}
		if !IsNil(writeErr) {
			log.Info().Str("error", writeErr.Message()).Msg("write failed")
			return
		}
	}
}
