package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/SebastianGomezdv/control-asistencia-go/internal/handler/http/response"
)

// FrameSource supplies encoded JPEG frames. Capture itself (camera,
// decoding) lives outside this service; anything that can hand over
// JPEG bytes can back the video feed.
type FrameSource interface {
	// NextFrame blocks until a frame is available. io.EOF ends the
	// stream cleanly.
	NextFrame(ctx context.Context) ([]byte, error)
}

type StreamHandler interface {
	VideoFeed(w http.ResponseWriter, r *http.Request)
}

type streamHandlerImpl struct {
	source FrameSource
}

func NewStreamHandler(source FrameSource) StreamHandler {
	return &streamHandlerImpl{source: source}
}

// VideoFeed implements StreamHandler as an MJPEG multipart stream, one
// part per frame, until the source ends or the client goes away.
func (h *streamHandlerImpl) VideoFeed(w http.ResponseWriter, r *http.Request) {
	if h.source == nil {
		response.ServiceUnavailable(w, "No camera configured")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "multipart/x-mixed-replace; boundary=frame")
	w.WriteHeader(http.StatusOK)

	ctx := r.Context()
	for {
		frame, err := h.source.NextFrame(ctx)
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
				slog.Error("Frame source failed", "error", err)
			}
			return
		}

		if _, err := fmt.Fprintf(w, "--frame\r\nContent-Type: image/jpeg\r\nContent-Length: %d\r\n\r\n", len(frame)); err != nil {
			return
		}
		if _, err := w.Write(frame); err != nil {
			return
		}
		if _, err := io.WriteString(w, "\r\n"); err != nil {
			return
		}
		flusher.Flush()

		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}
