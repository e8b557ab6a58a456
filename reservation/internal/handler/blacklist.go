package handler

import (
	"net/http"

	"github.com/Astemirdum/restaurant-reservation/reservation/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) ListBlacklist(c echo.Context) error {
	items, err := h.blacklistSvc.ListBlacklist(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	if len(items) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, map[string][]model.BlacklistEntry{"blacklist": items})
}

// ListFilteredBlacklist godoc
// @Summary      Find blacklist entries
// @Tags         blacklist
// @Produce      json
// @Param        email            query  string  false  "exact email"
// @Param        phoneNumber      query  string  false  "exact phone number"
// @Param        dateBlacklisted  query  int     false  "epoch milliseconds"
// @Success      200  {object}  model.ListBlacklist
// @Failure      400  {object}  messageResponse
// @Router       /api/blacklist/fetch [get]
func (h *Handler) ListFilteredBlacklist(c echo.Context) error {
	var q model.BlacklistQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return bindError(err)
	}
	list, err := h.blacklistSvc.ListFilteredBlacklist(c.Request().Context(), q)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetBlacklistEntry(c echo.Context) error {
	entry, err := h.blacklistSvc.GetBlacklistEntry(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, entry)
}

// CreateBlacklistEntry godoc
// @Summary      Blacklist a contact
// @Tags         blacklist
// @Accept       json
// @Produce      json
// @Param        request  body  model.CreateBlacklistRequest  true  "contact"
// @Success      201  {object}  model.BlacklistEntry
// @Failure      400  {object}  messageResponse
// @Failure      409  {object}  messageResponse
// @Router       /api/blacklist/create [post]
func (h *Handler) CreateBlacklistEntry(c echo.Context) error {
	var req model.CreateBlacklistRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	entry, err := h.blacklistSvc.CreateBlacklistEntry(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, entry)
}

func (h *Handler) PatchBlacklistField(c echo.Context) error {
	var req model.PatchFieldRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	entry, err := h.blacklistSvc.PatchBlacklistField(c.Request().Context(), c.Param("id"), c.Param("field"), req.Value)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *Handler) DeleteBlacklistEntry(c echo.Context) error {
	if err := h.blacklistSvc.DeleteBlacklistEntry(c.Request().Context(), c.Param("id")); err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, deletedResponse)
}
