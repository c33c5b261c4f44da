package handler // handler package contains the HTTP handlers for the items API

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/alicemeyer/items-api/internal/model"
	"github.com/alicemeyer/items-api/internal/queue"
	"github.com/alicemeyer/items-api/internal/service"
)

// ItemHandler exposes the item service operations as echo handlers. The
// Publisher is optional; when nil or disabled, item events are simply not
// emitted.
type ItemHandler struct {
	Service   *service.ItemService
	Publisher *queue.Publisher
	Log       logrus.FieldLogger
}

// NewItemHandler wires the handler with its collaborators.
func NewItemHandler(svc *service.ItemService, pub *queue.Publisher, log logrus.FieldLogger) *ItemHandler {
	return &ItemHandler{Service: svc, Publisher: pub, Log: log}
}

// CreateItem handles POST /items and stores a new item.
func (h *ItemHandler) CreateItem(c echo.Context) error {
	var in model.ItemCreate
	if err := c.Bind(&in); err != nil {
		return err // echo's bind error carries the failing field; the error handler formats it
	}
	it, err := h.Service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	h.publish(c, queue.ActionCreated, it.ID, it)
	return c.JSON(http.StatusOK, it)
}

// GetItems handles GET /items and returns every stored item.
func (h *ItemHandler) GetItems(c echo.Context) error {
	items, err := h.Service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// GetItem handles GET /items/:id.
func (h *ItemHandler) GetItem(c echo.Context) error {
	it, err := h.Service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, it)
}

// UpdateItem handles both PUT and PATCH on /items/:id. Either verb applies
// a partial merge: only the fields present in the body change.
func (h *ItemHandler) UpdateItem(c echo.Context) error {
	var patch model.ItemUpdate
	if err := c.Bind(&patch); err != nil {
		return err
	}
	it, err := h.Service.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	h.publish(c, queue.ActionUpdated, it.ID, it)
	return c.JSON(http.StatusOK, it)
}

// DeleteItem handles DELETE /items/:id and returns a confirmation message
// rather than the deleted payload.
func (h *ItemHandler) DeleteItem(c echo.Context) error {
	id := c.Param("id")
	if err := h.Service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	h.publish(c, queue.ActionDeleted, id, nil)
	return c.JSON(http.StatusOK, map[string]string{"message": "Item deleted successfully"})
}

// publish emits a best-effort item event after a successful write. Failures
// are logged by the publisher and never affect the response.
func (h *ItemHandler) publish(c echo.Context, action, id string, it *model.Item) {
	if h.Publisher == nil {
		return
	}
	ev := queue.ItemEvent{
		Action:     action,
		ItemID:     id,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	if it != nil {
		ev.UserID = it.UserID
		ev.Name = it.Name
		ev.Price = it.Price
	}
	_ = h.Publisher.PublishItemEvent(c.Request().Context(), ev)
}
