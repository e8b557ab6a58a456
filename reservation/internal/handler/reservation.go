package handler

import (
	"net/http"

	"github.com/Astemirdum/restaurant-reservation/reservation/internal/model"
	"github.com/labstack/echo/v4"
)

// ListReservations godoc
// @Summary      List all reservations
// @Tags         reservations
// @Produce      json
// @Success      200  {object}  map[string][]model.Reservation
// @Success      204
// @Router       /api/reservations/fetch/all [get]
func (h *Handler) ListReservations(c echo.Context) error {
	items, err := h.reservationSvc.ListReservations(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	if len(items) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, map[string][]model.Reservation{"reservations": items})
}

// ListFilteredReservations godoc
// @Summary      List reservations by status and date range
// @Tags         reservations
// @Produce      json
// @Param        startDate  query  int     false  "epoch milliseconds"
// @Param        endDate    query  int     false  "epoch milliseconds, used with startDate"
// @Param        status     query  string  false  "defaults to reserved"
// @Success      200  {object}  model.ListReservations
// @Failure      400  {object}  messageResponse
// @Router       /api/reservations/fetch [get]
func (h *Handler) ListFilteredReservations(c echo.Context) error {
	var q model.ReservationQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return bindError(err)
	}
	list, err := h.reservationSvc.ListFilteredReservations(c.Request().Context(), q)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetReservation(c echo.Context) error {
	rsv, err := h.reservationSvc.GetReservation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, rsv)
}

// CreateReservation godoc
// @Summary      Create a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        request  body  model.CreateReservationRequest  true  "reservation"
// @Success      201  {object}  model.Reservation
// @Failure      400  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /api/reservations/create [post]
func (h *Handler) CreateReservation(c echo.Context) error {
	var req model.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	rsv, err := h.reservationSvc.CreateReservation(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, rsv)
}

// RequestReservation godoc
// @Summary      Request a reservation awaiting approval
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        request  body  model.CreateReservationRequest  true  "reservation"
// @Success      201  {object}  model.Reservation
// @Failure      400  {object}  messageResponse
// @Router       /api/reservations/request [post]
func (h *Handler) RequestReservation(c echo.Context) error {
	var req model.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	rsv, err := h.reservationSvc.RequestReservation(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, rsv)
}

// PatchReservationField godoc
// @Summary      Update one reservation field
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        id       path  string                   true  "reservation id"
// @Param        field    path  string                   true  "field name"
// @Param        request  body  model.PatchFieldRequest  true  "new value"
// @Success      200  {object}  model.Reservation
// @Failure      400  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/reservations/{id}/{field} [put]
func (h *Handler) PatchReservationField(c echo.Context) error {
	var req model.PatchFieldRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	rsv, err := h.reservationSvc.PatchReservationField(c.Request().Context(), c.Param("id"), c.Param("field"), req.Value)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, rsv)
}

// DeleteReservation godoc
// @Summary      Soft delete a reservation
// @Tags         reservations
// @Produce      json
// @Param        id  path  string  true  "reservation id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/reservations/{id} [delete]
func (h *Handler) DeleteReservation(c echo.Context) error {
	if err := h.reservationSvc.DeleteReservation(c.Request().Context(), c.Param("id")); err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, deletedResponse)
}
