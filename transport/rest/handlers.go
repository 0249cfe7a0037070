package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/siddh-art-codes/tictactoeisfun-public/internal/apperror"
	"github.com/siddh-art-codes/tictactoeisfun-public/internal/pkg"
	"github.com/siddh-art-codes/tictactoeisfun-public/internal/roomstore"
	"github.com/siddh-art-codes/tictactoeisfun-public/internal/theme"
)

const qrSize = 256

type handlers struct {
	logger    *slog.Logger
	store     roomstore.Store
	publicURL string
}

type roomStatusResponse struct {
	Code   string `json:"code"`
	Exists bool   `json:"exists"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *handlers) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// RoomStatus lets a joining client check a code before opening the socket.
func (that *handlers) RoomStatus(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	code := params.ByName("code")

	if !pkg.ValidRoomCode(code) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: apperror.ErrInvalidRoomCode.Error()})
		return
	}

	if that.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: apperror.ErrUnavailable.Error()})
		return
	}

	exists, err := that.store.Exists(r.Context(), code)
	if err != nil {
		that.logger.Error("failed to check room", "code", code, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to check room"})
		return
	}

	status := http.StatusOK
	if !exists {
		status = http.StatusNotFound
	}

	writeJSON(w, status, roomStatusResponse{Code: code, Exists: exists})
}

// RoomQR renders the share link as a PNG so the host can show it on screen
// instead of dictating five digits.
func (that *handlers) RoomQR(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	code := params.ByName("code")

	if !pkg.ValidRoomCode(code) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: apperror.ErrInvalidRoomCode.Error()})
		return
	}

	if that.store != nil {
		exists, err := that.store.Exists(r.Context(), code)
		if err != nil {
			that.logger.Error("failed to check room", "code", code, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to check room"})
			return
		}

		if !exists {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: apperror.ErrRoomNotFound.Error()})
			return
		}
	}

	link := fmt.Sprintf("%s/?room=%s", that.publicURL, code)

	png, err := qrcode.Encode(link, qrcode.Medium, qrSize)
	if err != nil {
		that.logger.Error("failed to encode qr", "code", code, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to encode qr"})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(png); err != nil {
		that.logger.Error("failed to write qr", "error", err)
	}
}

func (that *handlers) Themes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, theme.All())
}

// ThemeByID serves one preset; ?variant=grayscale returns the endgame
// monochrome derivation the rendering layer switches to when the banner shows.
func (that *handlers) ThemeByID(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	cfg, err := theme.ByID(params.ByName("id"))
	if errors.Is(err, apperror.ErrThemeNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	switch variant := r.URL.Query().Get("variant"); variant {
	case "", "color":
	case "grayscale":
		cfg = theme.Grayscale(cfg)
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("unknown variant %q", variant)})
		return
	}

	writeJSON(w, http.StatusOK, cfg)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
