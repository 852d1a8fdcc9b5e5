// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-catalog-admin/internal/logger"
	"github.com/MKhiriev/go-catalog-admin/internal/resource"
	"github.com/MKhiriev/go-catalog-admin/internal/utils"
	"github.com/go-chi/chi/v5"
)

// listRecords returns a handler answering GET /{collection} with every
// record of the mutator's entity. An empty collection is encoded as [].
func (h *Handler) listRecords(mutator resource.Mutator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := mutator.List(r.Context())
		if err != nil {
			writeError(w, r, mutator.Entity(), err)
			return
		}
		if records == nil {
			records = []resource.Record{}
		}

		utils.WriteJSON(w, records, http.StatusOK)
	}
}

func (h *Handler) getRecord(mutator resource.Mutator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := recordID(r)
		if !ok {
			writeError(w, r, mutator.Entity(), resource.ErrNotFound)
			return
		}

		record, err := mutator.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, mutator.Entity(), err)
			return
		}

		utils.WriteJSON(w, record, http.StatusOK)
	}
}

// createRecord returns a handler answering POST /{collection}. An empty body
// is treated as an empty object so that the first required field is the one
// reported.
func (h *Handler) createRecord(mutator resource.Mutator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := decodePayload(w, r)
		if !ok {
			return
		}

		record, err := mutator.Create(r.Context(), payload)
		if err != nil {
			writeError(w, r, mutator.Entity(), err)
			return
		}

		utils.WriteJSON(w, record, http.StatusCreated)
	}
}

func (h *Handler) updateRecord(mutator resource.Mutator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := recordID(r)
		if !ok {
			writeError(w, r, mutator.Entity(), resource.ErrNotFound)
			return
		}

		payload, ok := decodePayload(w, r)
		if !ok {
			return
		}

		record, err := mutator.Update(r.Context(), id, payload)
		if err != nil {
			writeError(w, r, mutator.Entity(), err)
			return
		}

		utils.WriteJSON(w, record, http.StatusOK)
	}
}

func (h *Handler) deleteRecord(mutator resource.Mutator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := recordID(r)
		if !ok {
			writeError(w, r, mutator.Entity(), resource.ErrNotFound)
			return
		}

		if err := mutator.Remove(r.Context(), id); err != nil {
			writeError(w, r, mutator.Entity(), err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// recordID parses the {id} path parameter. Only positive integers name a
// record; anything else cannot exist.
func recordID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// decodePayload reads the request body as a JSON object. On failure it has
// already written the 400 or 413 response and reports false.
func decodePayload(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	payload := map[string]any{}
	if err := utils.DecodeJSON(w, r, &payload); err != nil {
		if errors.Is(err, utils.ErrEmptyBody) {
			return map[string]any{}, true
		}
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		writeError(w, r, "", invalidBody(err))
		return nil, false
	}
	if payload == nil {
		// a literal null body
		payload = map[string]any{}
	}
	return payload, true
}

// invalidBody keeps an oversized body distinguishable from malformed JSON.
func invalidBody(err error) error {
	if errors.Is(err, utils.ErrBodyTooLarge) {
		return err
	}
	return ErrInvalidJSON
}
