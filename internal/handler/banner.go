package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-backend/internal/dto"
	"storefront-backend/internal/service"
)

type BannerHandler struct {
	bannerService service.BannerService
}

func NewBannerHandler(bannerService service.BannerService) *BannerHandler {
	return &BannerHandler{
		bannerService: bannerService,
	}
}

func (h *BannerHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	banners, err := h.bannerService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, banners)
}

func (h *BannerHandler) Put(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.BannerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	banner, err := h.bannerService.Put(ctx, c.Param("slot"), &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, banner)
}

func (h *BannerHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	err := h.bannerService.Delete(ctx, c.Param("slot"))
	if err != nil {
		if errors.Is(err, service.ErrBannerNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
