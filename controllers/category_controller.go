package controllers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"frontdesk-backend/models"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

var categoryService services.CategoryService

func GetCategories(c *gin.Context) {
	categories, err := categoryService.GetAll()
	if err != nil {
		log.Printf("GetCategories error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func CreateCategory(c *gin.Context) {
	var category models.RoomCategory
	if err := c.ShouldBindJSON(&category); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "category name is required")
		return
	}

	if err := categoryService.Create(category); err != nil {
		log.Printf("CreateCategory error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to create category")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, category)
}

func UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid category id")
		return
	}

	var category models.RoomCategory
	if err := c.ShouldBindJSON(&category); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	category.ID = uint(id)

	if err := categoryService.Update(category); err != nil {
		log.Printf("UpdateCategory error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to update category")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, category)
}

func DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid category id")
		return
	}
	if err := categoryService.Delete(id); err != nil {
		log.Printf("DeleteCategory error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete category")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "category deleted")
}
