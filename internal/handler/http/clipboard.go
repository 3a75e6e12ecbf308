// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-clip-relay/internal/logger"
	"github.com/MKhiriev/go-clip-relay/internal/utils"
	"github.com/MKhiriev/go-clip-relay/models"
)

const cursorParam = "last_sync_time"

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.UploadRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		err = classifyReadError(err)
		log.Err(err).Str("func", "*Handler.upload").Msg("invalid upload body")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	resp, err := h.services.ClipboardService.Upload(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("error storing clipboard")
		http.Error(w, "error storing clipboard", statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) fetch(w http.ResponseWriter, r *http.Request) {
	resp := h.services.ClipboardService.Fetch(r.Context(), r.URL.Query().Get(cursorParam))

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	resp := h.services.ClipboardService.Status(r.Context())

	utils.WriteJSON(w, resp, http.StatusOK)
}
