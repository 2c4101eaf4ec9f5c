package entry

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	entries, err := h.service.List(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to list entries")
	}

	return &listOutput{
		Body: listResponse{
			Entries: entries,
			Total:   len(entries),
		},
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	e, err := h.service.Create(ctx, input.Body)
	if err != nil {
		if errors.Is(err, ErrInvalidFields) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, huma.Error500InternalServerError("failed to create entry")
	}

	return &createOutput{Body: *e}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*statusOutput, error) {
	err := h.service.Update(ctx, input.ID, input.Body)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, huma.Error404NotFound(err.Error())
		case errors.Is(err, ErrInvalidFields):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, huma.Error500InternalServerError("failed to update entry")
	}

	return &statusOutput{
		Body: statusResponse{
			ID:     input.ID,
			Status: "Ok",
		},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*statusOutput, error) {
	err := h.service.Delete(ctx, input.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, huma.Error404NotFound(err.Error())
		}
		return nil, huma.Error500InternalServerError("failed to delete entry")
	}

	return &statusOutput{
		Body: statusResponse{
			ID:     input.ID,
			Status: "Ok",
		},
	}, nil
}
