package api

import (
	"net/http"

	reqdto "resort-booking/internal/handler/dto/request"
	resdto "resort-booking/internal/handler/dto/response"
	"resort-booking/internal/handler/httperr"
	"resort-booking/internal/pkg/config"
	"resort-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	rooms     queries.RoomQueries
	datastore config.DatastoreConfig
}

func NewCatalogHandler(rooms queries.RoomQueries, cfg config.Config) *CatalogHandler {
	return &CatalogHandler{rooms: rooms, datastore: cfg.Datastore}
}

// @Summary List rooms
// @Description Visible rooms ordered by nightly price; with ?id= returns one room
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Failure 404 {object} map[string]string
// @Router /api/rooms [get]
func (h *CatalogHandler) ListRooms(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		h.getRoom(c, id)
		return
	}

	rooms, err := h.rooms.ListRooms(c.Request.Context())
	if err != nil {
		httperr.Abort(c, httperr.KeyError, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRooms(rooms))
}

// @Summary Get room
// @Description Look up a room by id or slug
// @Tags rooms
// @Produce json
// @Param id path string true "Room id or slug"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} map[string]string
// @Router /api/rooms/{id} [get]
func (h *CatalogHandler) GetRoom(c *gin.Context) {
	h.getRoom(c, c.Param("id"))
}

func (h *CatalogHandler) getRoom(c *gin.Context, ref string) {
	rm, err := h.rooms.GetRoom(c.Request.Context(), ref)
	if err != nil {
		httperr.Abort(c, httperr.KeyError, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoom(*rm))
}

// @Summary List room types
// @Tags rooms
// @Produce json
// @Success 200 {object} resdto.RoomTypesResponse
// @Router /api/room-types [get]
func (h *CatalogHandler) RoomTypes(c *gin.Context) {
	types, err := h.rooms.RoomTypes(c.Request.Context())
	if err != nil {
		httperr.Abort(c, httperr.KeyError, err)
		return
	}
	if types == nil {
		types = []string{}
	}
	c.JSON(http.StatusOK, resdto.RoomTypesResponse{Types: types})
}

// @Summary Cheapest rates per board tier
// @Tags rooms
// @Produce json
// @Param type query string true "Room type"
// @Success 200 {object} resdto.RatesResponse
// @Failure 400 {object} map[string]string
// @Router /api/rates [get]
func (h *CatalogHandler) Rates(c *gin.Context) {
	roomType := reqdto.BodyFromQuery(c.Request).String("type", "room_type")

	rates, err := h.rooms.Rates(c.Request.Context(), roomType)
	if err != nil {
		httperr.Abort(c, httperr.KeyError, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRates(roomType, rates))
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Router /api/health [get]
func (h *CatalogHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.HealthResponse{
		OK:                  true,
		DatastoreConfigured: h.datastore.IsConfigured(),
	})
}
