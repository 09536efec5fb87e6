package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minefield-annotator/internal/config"
	"github.com/vancomm/minefield-annotator/internal/mines"
)

const maxBodySize = 1 << 20

type AnnotateHandler struct {
	log       logrus.FieldLogger
	ws        *config.WebSocket
	readLimit int64 /* bytes per request body or ws message */
}

func NewAnnotateHandler(log logrus.FieldLogger, ws *config.WebSocket) *AnnotateHandler {
	return &AnnotateHandler{log: log, ws: ws, readLimit: maxBodySize}
}

func isPlainText(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "text/plain"
}

func statusFor(err error) int {
	if mines.IsInvalidInput(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Annotate accepts either {"rows": [...]} or newline-separated rows as
// text/plain and replies in the same format.
func (h AnnotateHandler) Annotate(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseAnnotateParamsDTO(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}
	annotator, err := dto.Annotator()
	if err != nil {
		sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.readLimit))
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			sendErrorOrLog(w, h.log, http.StatusRequestEntityTooLarge, err)
			return
		}
		sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}

	plain := isPlainText(r)
	var rows []string
	if plain {
		rows = mines.SplitRows(string(body))
	} else {
		var in MinefieldDTO
		if err := json.Unmarshal(body, &in); err != nil {
			sendErrorOrLog(w, h.log, http.StatusBadRequest, fmt.Errorf("malformed body: %w", err))
			return
		}
		rows = in.Rows
	}

	field, err := annotator.Minefield(rows)
	if err != nil {
		h.log.WithError(err).Debug("unable to annotate minefield")
		sendErrorOrLog(w, h.log, statusFor(err), err)
		return
	}

	if plain {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := io.WriteString(w, mines.JoinRows(field.Render())); err != nil {
			h.log.WithError(err).Error("unable to send response")
		}
		return
	}
	sendJSONOrLog(w, h.log, http.StatusOK, NewAnnotatedDTO(field))
}

// ConnectWS annotates every text message as a newline-separated
// minefield until the client disconnects.
func (h AnnotateHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseAnnotateParamsDTO(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}
	annotator, err := dto.Annotator()
	if err != nil {
		sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}

	c, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Error("unable to upgrade connection")
		return
	}
	defer c.Close()
	c.SetReadLimit(h.readLimit)

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.WithError(err).Warn("unable to read ws message")
			}
			return
		}
		if mt != websocket.TextMessage {
			c.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseUnsupportedData, "text only"),
				time.Now().Add(time.Second),
			)
			return
		}

		var reply any
		field, err := annotator.Minefield(mines.SplitRows(string(message)))
		if err != nil {
			reply = wrapError(err)
		} else {
			reply = NewAnnotatedDTO(field)
		}
		if err := c.WriteJSON(reply); err != nil {
			h.log.WithError(err).Error("unable to write ws message")
			return
		}
	}
}

func (h AnnotateHandler) Health(w http.ResponseWriter, r *http.Request) {
	sendJSONOrLog(w, h.log, http.StatusOK, map[string]string{"status": "ok"})
}
