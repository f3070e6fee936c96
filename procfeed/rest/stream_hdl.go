package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Gthulhu/procfeed/pkg/logger"
	"github.com/Gthulhu/procfeed/procfeed/broadcast"
)

const defaultKeepAlive = 15 * time.Second

type lagEvent struct {
	Missed uint64 `json:"missed"`
}

// StreamProcesses godoc
// @Summary Live feed of newly observed processes
// @Description Server-sent events. Each newly observed process is sent as a data event with a JSON ProcessEntry. A subscriber that falls behind receives a "lagged" event with the number of missed entries, then the stream continues. Comment lines are sent as keep-alive.
// @Tags Processes
// @Produce text/event-stream
// @Success 200 {object} domain.ProcessEntry
// @Failure 503 {object} ErrorResponse
// @Router /data [get]
func (h *Handler) StreamProcesses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	flusher, ok := w.(http.Flusher)
	if !ok {
		h.ErrorResponse(ctx, w, http.StatusInternalServerError, "Streaming unsupported", nil)
		return
	}

	sub, err := h.Svc.Subscribe(ctx)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	defer sub.Close()
	log := logger.Logger(ctx).With().Str("subscription_id", sub.ID()).Logger()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		nextCtx, cancel := context.WithTimeout(ctx, h.keepAlive)
		entry, err := sub.Next(nextCtx)
		cancel()

		var writeErr error
		var lag *broadcast.LagError
		switch {
		case err == nil:
			data, marshalErr := json.Marshal(entry)
			if marshalErr != nil {
				log.Error().Err(marshalErr).Msgf("skipping unserializable entry for pid %d", entry.PID)
				continue
			}
			writeErr = writeEvent(w, "", data)
		case errors.As(err, &lag):
			log.Warn().Uint64("missed", lag.Missed).Msg("subscriber lagged")
			data, _ := json.Marshal(lagEvent{Missed: lag.Missed})
			writeErr = writeEvent(w, "lagged", data)
		case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
			_, writeErr = fmt.Fprint(w, ":\n\n")
		default:
			log.Debug().Err(err).Msg("stream closed")
			return
		}
		if writeErr != nil {
			log.Debug().Err(writeErr).Msg("stream write failed")
			return
		}
		flusher.Flush()
	}
}

func writeEvent(w http.ResponseWriter, event string, data []byte) error {
	if event != "" {
		if _, err := fmt.Fprintf(w, "event: %s\n", event); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "data: %s\n\n", data)
	return err
}
