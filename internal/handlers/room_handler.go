package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"roomstay/internal/helpers"
	"roomstay/internal/models"
	"roomstay/internal/services"
)

func ListRooms(r *services.RoomsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rooms, err := r.ListRooms(c.Request.Context())
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(rooms, ""))
	}
}

func GetRoomByID(r *services.RoomsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID := helpers.StringTrim(c.Param("id"))
		if roomID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("room ID is required"))
			return
		}

		parsedId, err := primitive.ObjectIDFromHex(roomID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid room ID format"))
			return
		}

		room, err := r.GetRoomByID(c.Request.Context(), parsedId)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(room, ""))
	}
}

func CreateRoom(r *services.RoomsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _, ok := userFromContext(c)
		if !ok {
			return
		}

		if !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, models.ErrorResponse("only admins can create rooms"))
			return
		}

		var room models.Room
		if err := c.ShouldBindJSON(&room); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		createdRoom, err := r.CreateRoom(c.Request.Context(), &room)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(createdRoom, "Room created successfully"))
	}
}

func DeleteRoom(r *services.RoomsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _, ok := userFromContext(c)
		if !ok {
			return
		}

		if !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, models.ErrorResponse("only admins can delete rooms"))
			return
		}

		roomID := helpers.StringTrim(c.Param("id"))
		parsedId, err := primitive.ObjectIDFromHex(roomID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid room ID format"))
			return
		}

		if err := r.DeleteRoom(c.Request.Context(), parsedId); err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "room deleted successfully"))
	}
}
