package controller

import (
	"net/http"
	"time"

	"bid-tracking-api/internal/entity"
	"bid-tracking-api/internal/repo/rowcodec"
	"bid-tracking-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type bidRoutesHandler struct {
	bidService service.Bid
	validate   *validator.Validate
}

func newBidRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *bidRoutesHandler {
	h := &bidRoutesHandler{bidService: services.Bid, validate: v}
	outer.GET("/bids", h.GetBids)
	outer.GET("/bids/:bidId", h.GetBid)
	outer.POST("/bids/new", h.PostBid)
	outer.PATCH("/bids/:bidId/edit", h.EditBid)

	return h
}

// /bids
func (h *bidRoutesHandler) GetBids(c echo.Context) error {
	bids, err := h.bidService.ListBids(c.Request().Context())
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}

	return c.JSON(http.StatusOK, bids)
}

// /bids/:bidId
func (h *bidRoutesHandler) GetBid(c echo.Context) error {
	bid, err := h.bidService.GetBid(c.Request().Context(), c.Param("bidId"))
	if err == nil {
		return c.JSON(http.StatusOK, bid)
	}

	switch err {
	case service.ErrBidNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no bid with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type postBidInput struct {
	Name         string `json:"name" validate:"required,max=200"`
	Client       string `json:"client" validate:"max=200"`
	PostingUrl   string `json:"postingUrl" validate:"omitempty,url"`
	DueDate      string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	WalkDateTime string `json:"walkDateTime" validate:"max=50"`
	WalkLocation string `json:"walkLocation" validate:"max=300"`
	OwnerName    string `json:"ownerName" validate:"max=100"`
	OwnerEmail   string `json:"ownerEmail" validate:"omitempty,email"`
	RfpSourceRef string `json:"rfpSourceRef" validate:"max=200"`
	RfpAttach    bool   `json:"rfpAttach"`
	Notes        string `json:"notes"`
}

// /bids/new
func (h *bidRoutesHandler) PostBid(c echo.Context) error {
	var input postBidInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.CreateBidInput{
		Name: input.Name, Client: input.Client, PostingUrl: input.PostingUrl,
		DueDate:      parseOptionalDate(input.DueDate, rowcodec.DateFormat),
		WalkDateTime: parseOptionalDate(input.WalkDateTime, rowcodec.DateTimeFormat),
		WalkLocation: input.WalkLocation,
		OwnerName:    input.OwnerName, OwnerEmail: input.OwnerEmail,
		RfpSourceRef: input.RfpSourceRef, RfpAttach: input.RfpAttach,
		Notes: input.Notes,
	}

	bid, err := h.bidService.CreateBid(c.Request().Context(), model)
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}

	return c.JSON(http.StatusOK, bid)
}

type editBidInput struct {
	Status   *string `json:"status" validate:"omitempty,oneof=New Reviewing Submitted Won Lost Archived"`
	Notes    *string `json:"notes"`
	Archived *bool   `json:"archived"`
}

// /bids/:bidId/edit
func (h *bidRoutesHandler) EditBid(c echo.Context) error {
	var input editBidInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.UpdateBidInput{Status: input.Status, Notes: input.Notes, Archived: input.Archived}
	bid, err := h.bidService.UpdateBid(c.Request().Context(), c.Param("bidId"), model)
	if err == nil {
		return c.JSON(http.StatusOK, bid)
	}

	switch err {
	case service.ErrBidNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no bid with given id"}); e != nil {
			return e
		}
	case service.ErrInvalidStatus:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Unknown status value"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

func parseOptionalDate(raw string, layout string) *time.Time {
	if raw == "" {
		return nil
	}

	t, err := time.Parse(layout, raw)
	if err != nil {
		return nil
	}

	return &t
}
