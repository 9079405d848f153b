// Command fftwsd serves the streaming FFT engine over WebSocket.
//
// Clients connect to /fft and send binary messages of exactly 2048
// bytes: 256 big-endian packed words (Q16.16 real in the upper 32 bits,
// imaginary in the lower 32). The server answers each frame with 1024
// bytes: 256 big-endian float32 bin magnitudes. Malformed frames get a
// JSON error message and the connection survives, so clients can
// re-synchronize and retry.
//
// Prometheus metrics are exposed on /metrics.
package main

import (
	"encoding/binary"
	"encoding/json"
	"flag"
	"log/slog"
	"math"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cwbudde/streamfft"
	"github.com/cwbudde/streamfft/internal/fixed"
)

const frameBytes = streamfft.FrameSize * 8

var upgrader = websocket.Upgrader{
	ReadBufferSize:  frameBytes,
	WriteBufferSize: frameBytes,
	CheckOrigin:     func(*http.Request) bool { return true },
}

type server struct {
	log     *slog.Logger
	metrics *streamfft.Metrics
}

type errorMessage struct {
	Error string `json:"error"`
}

func main() {
	var (
		listen = flag.String("listen", ":8080", "listen address")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	streamfft.SetLogger(log)

	reg := prometheus.NewRegistry()

	srv := &server{
		log:     log,
		metrics: streamfft.NewMetrics(reg),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/fft", srv.handleFFT)
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	log.Info("listening", "addr", *listen)

	httpSrv := &http.Server{
		Addr:              *listen,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err := httpSrv.ListenAndServe(); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func (s *server) handleFFT(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	id := uuid.NewString()
	log := s.log.With("conn", id, "remote", r.RemoteAddr)
	log.Info("client connected")

	eng := streamfft.NewEngine()
	eng.SetMetrics(s.metrics)

	for {
		msgType, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("client dropped", "err", err)
			} else {
				log.Info("client disconnected")
			}

			return
		}

		if msgType != websocket.BinaryMessage || len(payload) != frameBytes {
			if err := sendError(conn, "expected a 2048-byte binary frame"); err != nil {
				return
			}

			continue
		}

		mags, err := transformFrame(eng, payload)
		if err != nil {
			log.Warn("frame rejected", "err", err)

			if err := sendError(conn, err.Error()); err != nil {
				return
			}

			continue
		}

		if err := conn.WriteMessage(websocket.BinaryMessage, mags); err != nil {
			log.Warn("write failed", "err", err)
			return
		}
	}
}

// transformFrame runs one packed frame through the engine and encodes
// the magnitude spectrum as big-endian float32s.
func transformFrame(eng *streamfft.Engine, payload []byte) ([]byte, error) {
	words := make([]streamfft.Word, streamfft.FrameSize)
	for n := range words {
		words[n] = streamfft.Word{
			Data: binary.BigEndian.Uint64(payload[n*8:]),
			Keep: streamfft.KeepAll,
			Strb: streamfft.KeepAll,
			Last: n == streamfft.FrameSize-1,
		}
	}

	sink := streamfft.SliceSink{Words: make([]streamfft.Word, 0, streamfft.FrameSize)}
	if err := eng.Transform(streamfft.NewSliceSource(words), &sink); err != nil {
		return nil, err
	}

	out := make([]byte, streamfft.FrameSize*4)
	for n, word := range sink.Words {
		re, im := streamfft.UnpackSample(word.Data)
		mag := float32(math.Hypot(fixed.Float64(re), fixed.Float64(im)))
		binary.BigEndian.PutUint32(out[n*4:], math.Float32bits(mag))
	}

	return out, nil
}

func sendError(conn *websocket.Conn, msg string) error {
	payload, err := json.Marshal(errorMessage{Error: msg})
	if err != nil {
		return err
	}

	return conn.WriteMessage(websocket.TextMessage, payload)
}
