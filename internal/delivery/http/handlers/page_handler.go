package handlers

import (
	"net/http"

	"github.com/LavaJover/shvark-storefront-bot/internal/usecase/page"
	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	pageUsecase page.PageUsecase
}

func NewPageHandler(pageUsecase page.PageUsecase) *PageHandler {
	return &PageHandler{pageUsecase: pageUsecase}
}

func (h *PageHandler) Entry(c *gin.Context) {
	view, err := h.pageUsecase.RenderEntry(c.Request.Context(), c.Param("orderId"), metaFrom(c))
	if err != nil {
		abortHTML(c, err)
		return
	}
	c.HTML(http.StatusOK, templateFor(view), view)
}

func (h *PageHandler) Pickup(c *gin.Context) {
	view, err := h.pageUsecase.RenderPickup(c.Request.Context(), c.Param("orderId"), c.PostForm("point"), metaFrom(c))
	if err != nil {
		abortHTML(c, err)
		return
	}
	c.HTML(http.StatusOK, templateFor(view), view)
}

func metaFrom(c *gin.Context) page.RequestMeta {
	return page.RequestMeta{UserAgent: c.Request.UserAgent()}
}

func templateFor(view *page.View) string {
	return string(view.Kind) + ".html"
}
