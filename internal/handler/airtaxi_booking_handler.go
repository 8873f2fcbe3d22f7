package handler

import (
	"net/http"

	"github.com/Eursukkul/travel-booking/internal/dto"
	"github.com/Eursukkul/travel-booking/internal/models"
	"github.com/Eursukkul/travel-booking/internal/service"
	"github.com/labstack/echo/v4"
)

type AirTaxiBookingHandler struct {
	svc service.AirTaxiBookingService
}

func NewAirTaxiBookingHandler(svc service.AirTaxiBookingService) *AirTaxiBookingHandler {
	return &AirTaxiBookingHandler{svc: svc}
}

func (h *AirTaxiBookingHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListBookings)
	g.POST("", h.CreateBooking)
	g.GET("/user/:email", h.ListBookingsByEmail)
	g.GET("/:id", h.GetBooking)
	g.PUT("/:id", h.UpdateBooking)
	g.DELETE("/:id", h.DeleteBooking)
	g.POST("/:id/cancel", h.CancelBooking)
}

func (h *AirTaxiBookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateAirTaxiBookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	draft, err := req.ToModel()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.svc.Create(c.Request().Context(), draft)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, dto.OK("Air-taxi booking created", booking))
}

func (h *AirTaxiBookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	if bookings == nil {
		bookings = []models.AirTaxiBooking{}
	}

	return c.JSON(http.StatusOK, dto.OK("Air-taxi bookings retrieved", bookings))
}

func (h *AirTaxiBookingHandler) ListBookingsByEmail(c echo.Context) error {
	bookings, err := h.svc.ListByContactEmail(c.Request().Context(), pathParam(c, "email"))
	if err != nil {
		return httpError(err)
	}
	if len(bookings) == 0 {
		return c.JSON(http.StatusNotFound, dto.NotFoundList("No air-taxi bookings found for this email"))
	}

	return c.JSON(http.StatusOK, dto.OK("Air-taxi bookings retrieved", bookings))
}

func (h *AirTaxiBookingHandler) GetBooking(c echo.Context) error {
	booking, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.OK("Air-taxi booking retrieved", booking))
}

func (h *AirTaxiBookingHandler) UpdateBooking(c echo.Context) error {
	var req dto.UpdateAirTaxiBookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	booking, err := h.svc.Update(c.Request().Context(), c.Param("id"), req.ToPatch())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.OK("Air-taxi booking updated", booking))
}

func (h *AirTaxiBookingHandler) CancelBooking(c echo.Context) error {
	var req dto.CancelBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	booking, err := h.svc.Cancel(c.Request().Context(), c.Param("id"), req.Reason)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.OK("Air-taxi booking cancelled", booking))
}

func (h *AirTaxiBookingHandler) DeleteBooking(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.OK("Air-taxi booking deleted", nil))
}
