package handler

import (
	"pixelmeet/backend/internal/signalhub"
	"pixelmeet/backend/internal/storage"
)

// Handler carries the dependencies shared by the HTTP endpoints.
type Handler struct {
	Hub     *signalhub.Hub
	Storage storage.Storage
}

func NewHandler(hub *signalhub.Hub, s storage.Storage) *Handler {
	return &Handler{Hub: hub, Storage: s}
}
