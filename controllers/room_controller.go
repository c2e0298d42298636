package controllers

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"frontdesk-backend/config"
	"frontdesk-backend/models"
	"frontdesk-backend/services"

	"github.com/gin-gonic/gin"
)

var roomService services.RoomService

// ----------------------------------------------------
// 1. Get Rooms (GET /api/rooms/all)
// ----------------------------------------------------

func GetRooms(c *gin.Context) {
	rooms, err := roomService.GetAll()
	if err != nil {
		log.Printf("GetRooms error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.fetchRooms", "message": "failed to fetch rooms"}})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// ----------------------------------------------------
// 2. Create Room (POST /api/rooms)
// ----------------------------------------------------

func CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		log.Printf("CreateRoom bind error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Room Number is required."})
		return
	}

	// A zero category FK would fail the constraint; treat it as unset.
	if room.RoomCategoryID != nil && *room.RoomCategoryID == 0 {
		room.RoomCategoryID = nil
	}
	if room.RoomCategoryID != nil {
		var cat models.RoomCategory
		if err := config.DB.First(&cat, *room.RoomCategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "category not found"})
			return
		}
		if room.Price == 0 {
			room.Price = cat.BasePrice
		}
	}

	if err := roomService.Create(room); err != nil {
		log.Printf("CreateRoom error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "failed to create room", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "message": "Room created"})
}

// ----------------------------------------------------
// 3. Update Room (PUT/PATCH /api/rooms/:id)
// ----------------------------------------------------

func UpdateRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid room id"})
		return
	}

	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}
	room.ID = uint(id)

	if err := roomService.Update(room); err != nil {
		log.Printf("UpdateRoom error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "failed to update room"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Room updated"})
}

// ----------------------------------------------------
// 4. Delete Room (DELETE /api/rooms/:id)
// ----------------------------------------------------

func DeleteRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid room id"})
		return
	}
	if err := roomService.Delete(id); err != nil {
		log.Printf("DeleteRoom error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "failed to delete room"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Room deleted"})
}

// ----------------------------------------------------
// 5. Availability (GET /api/rooms/available)
// ----------------------------------------------------

// AvailabilityController wraps the availability service so the date-range
// query has an HTTP surface.
type AvailabilityController struct {
	Avail *services.AvailabilityService
}

func NewAvailabilityController(avail *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{Avail: avail}
}

// GetAvailableRooms answers checkInDate/checkOutDate queries with rooms
// grouped per category. An invalid range never reaches the service; the
// caller is told to fix the dates.
func (ctrl *AvailabilityController) GetAvailableRooms(c *gin.Context) {
	checkInRaw := c.Query("checkInDate")
	checkOutRaw := c.Query("checkOutDate")
	if checkInRaw == "" || checkOutRaw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.missingDates", "message": "checkInDate and checkOutDate are required"}})
		return
	}

	checkIn, err1 := time.Parse("2006-01-02", checkInRaw)
	checkOut, err2 := time.Parse("2006-01-02", checkOutRaw)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidDates", "message": "dates must be YYYY-MM-DD"}})
		return
	}
	if !checkOut.After(checkIn) {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidDateRange", "message": "check-out must be after check-in"}})
		return
	}

	groups, err := ctrl.Avail.AvailableRooms(checkIn, checkOut)
	if err != nil {
		log.Printf("GetAvailableRooms error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.availabilityFailed", "message": "failed to check availability"}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"availableRooms": groups})
}
