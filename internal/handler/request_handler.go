package handler

import (
	"net/http"

	"github.com/Eursukkul/travel-booking/internal/dto"
	"github.com/Eursukkul/travel-booking/internal/models"
	"github.com/Eursukkul/travel-booking/internal/service"
	"github.com/labstack/echo/v4"
)

type RequestHandler struct {
	svc service.RequestService
}

func NewRequestHandler(svc service.RequestService) *RequestHandler {
	return &RequestHandler{svc: svc}
}

func (h *RequestHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateRequest)
	g.GET("", h.ListRequests)
	g.GET("/user/email/:email", h.ListRequestsByEmail)
	g.GET("/user/:userId", h.ListRequestsByUser)
	g.GET("/:id", h.GetRequest)
	g.PATCH("/:id", h.ResolveRequest)
	g.DELETE("/:id", h.DeleteRequest)
}

func (h *RequestHandler) CreateRequest(c echo.Context) error {
	var req dto.CreateRequestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.svc.Create(c.Request().Context(), req.ToModel())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, dto.OK("Request submitted", created))
}

func (h *RequestHandler) ListRequests(c echo.Context) error {
	requests, err := h.svc.ListAll(c.Request().Context(), statusFilter(c))
	if err != nil {
		return httpError(err)
	}
	if requests == nil {
		requests = []models.Request{}
	}

	return c.JSON(http.StatusOK, dto.OK("Requests retrieved", requests))
}

func (h *RequestHandler) ListRequestsByUser(c echo.Context) error {
	requests, err := h.svc.ListByUser(c.Request().Context(), pathParam(c, "userId"), statusFilter(c))
	if err != nil {
		return httpError(err)
	}
	if len(requests) == 0 {
		return c.JSON(http.StatusNotFound, dto.NotFoundList("No requests found for this user"))
	}

	return c.JSON(http.StatusOK, dto.OK("Requests retrieved", requests))
}

func (h *RequestHandler) ListRequestsByEmail(c echo.Context) error {
	requests, err := h.svc.ListByEmail(c.Request().Context(), pathParam(c, "email"), statusFilter(c))
	if err != nil {
		return httpError(err)
	}
	if len(requests) == 0 {
		return c.JSON(http.StatusNotFound, dto.NotFoundList("No requests found for this email"))
	}

	return c.JSON(http.StatusOK, dto.OK("Requests retrieved", requests))
}

func (h *RequestHandler) GetRequest(c echo.Context) error {
	req, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.OK("Request retrieved", req))
}

func (h *RequestHandler) ResolveRequest(c echo.Context) error {
	var body dto.ResolveRequestRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	resolved, err := h.svc.Resolve(c.Request().Context(), c.Param("id"), models.RequestStatus(body.Status), body.AdminNotes, body.AdminID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.OK("Request "+string(resolved.Status), resolved))
}

func (h *RequestHandler) DeleteRequest(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.OK("Request deleted", nil))
}

func statusFilter(c echo.Context) models.RequestStatus {
	return models.RequestStatus(c.QueryParam("status"))
}
