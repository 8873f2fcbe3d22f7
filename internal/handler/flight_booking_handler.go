package handler

import (
	"net/http"

	"github.com/Eursukkul/travel-booking/internal/dto"
	"github.com/Eursukkul/travel-booking/internal/models"
	"github.com/Eursukkul/travel-booking/internal/service"
	"github.com/labstack/echo/v4"
)

type FlightBookingHandler struct {
	svc service.FlightBookingService
}

func NewFlightBookingHandler(svc service.FlightBookingService) *FlightBookingHandler {
	return &FlightBookingHandler{svc: svc}
}

func (h *FlightBookingHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListBookings)
	g.POST("", h.CreateBooking)
	g.GET("/user/:email", h.ListBookingsByEmail)
	g.GET("/:id", h.GetBooking)
	g.PUT("/:id", h.UpdateBooking)
	g.DELETE("/:id", h.DeleteBooking)
	g.POST("/:id/cancel", h.CancelBooking)
}

func (h *FlightBookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateFlightBookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	booking, err := h.svc.Create(c.Request().Context(), req.ToModel())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, dto.OK("Flight booking created", booking))
}

func (h *FlightBookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	if bookings == nil {
		bookings = []models.FlightBooking{}
	}

	return c.JSON(http.StatusOK, dto.OK("Flight bookings retrieved", bookings))
}

func (h *FlightBookingHandler) ListBookingsByEmail(c echo.Context) error {
	bookings, err := h.svc.ListByContactEmail(c.Request().Context(), pathParam(c, "email"))
	if err != nil {
		return httpError(err)
	}
	if len(bookings) == 0 {
		return c.JSON(http.StatusNotFound, dto.NotFoundList("No flight bookings found for this email"))
	}

	return c.JSON(http.StatusOK, dto.OK("Flight bookings retrieved", bookings))
}

func (h *FlightBookingHandler) GetBooking(c echo.Context) error {
	booking, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.OK("Flight booking retrieved", booking))
}

func (h *FlightBookingHandler) UpdateBooking(c echo.Context) error {
	var req dto.UpdateFlightBookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	booking, err := h.svc.Update(c.Request().Context(), c.Param("id"), req.ToPatch())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.OK("Flight booking updated", booking))
}

func (h *FlightBookingHandler) CancelBooking(c echo.Context) error {
	var req dto.CancelBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	booking, err := h.svc.Cancel(c.Request().Context(), c.Param("id"), req.Reason)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.OK("Flight booking cancelled", booking))
}

func (h *FlightBookingHandler) DeleteBooking(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.OK("Flight booking deleted", nil))
}
