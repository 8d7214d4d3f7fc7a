package controllers

import (
	"errors"
	"net/http"

	"itemsapi/models"

	"github.com/gin-gonic/gin"
)

func itemID(context *gin.Context) (uint, bool) {
	id, ok := context.Get("item_id")
	if !ok {
		context.JSON(http.StatusNotFound, ErrorResponse{Error: "Item not found"})
		context.Abort()
		return 0, false
	}
	return id.(uint), true
}

func CreateItem(context *gin.Context) {
	var payload CreateItemPayload

	if err := context.ShouldBindJSON(&payload); err != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: "Does not bind schema"})
		context.Abort()
		return
	}

	item, err := payload.Validate()
	if err != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		context.Abort()
		return
	}

	if err := item.CreateItem(); err != nil {
		if errors.Is(err, models.ErrIntegrity) {
			context.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			context.Abort()
			return
		}
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not create item"})
		context.Abort()
		return
	}
	context.JSON(http.StatusCreated, NewItemSchema(item))
}

func ListItems(context *gin.Context) {
	var query ListItemsQuery

	if err := context.ShouldBindQuery(&query); err != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: "Does not bind schema"})
		context.Abort()
		return
	}

	filter, err := query.Filter()
	if err != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		context.Abort()
		return
	}

	items, err := models.ListItems(filter)
	if err != nil {
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not list items"})
		context.Abort()
		return
	}

	schemas := make([]ItemSchema, 0, len(items))
	for _, item := range items {
		schemas = append(schemas, NewItemSchema(item))
	}
	context.JSON(http.StatusOK, schemas)
}

func GetItem(context *gin.Context) {
	id, ok := itemID(context)
	if !ok {
		return
	}

	item, err := models.GetItemByID(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			context.JSON(http.StatusNotFound, ErrorResponse{Error: "Item not found"})
			context.Abort()
			return
		}
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not get item"})
		context.Abort()
		return
	}
	context.JSON(http.StatusOK, NewItemSchema(item))
}

func UpdateItem(context *gin.Context) {
	id, ok := itemID(context)
	if !ok {
		return
	}

	var payload UpdateItemPayload
	if err := context.ShouldBindJSON(&payload); err != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: "Does not bind schema"})
		context.Abort()
		return
	}

	fields, err := payload.Fields()
	if err != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		context.Abort()
		return
	}

	item, err := models.UpdateItem(id, fields)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			context.JSON(http.StatusNotFound, ErrorResponse{Error: "Item not found"})
		case errors.Is(err, models.ErrNoFields), errors.Is(err, models.ErrIntegrity):
			context.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, models.ErrBusy):
			context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Database is busy, please try again later"})
		default:
			context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not update item"})
		}
		context.Abort()
		return
	}
	context.JSON(http.StatusOK, NewItemSchema(item))
}

func DeleteItem(context *gin.Context) {
	id, ok := itemID(context)
	if !ok {
		return
	}

	if err := models.DeleteItem(id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			context.JSON(http.StatusNotFound, ErrorResponse{Error: "Item not found"})
			context.Abort()
			return
		}
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not delete item"})
		context.Abort()
		return
	}
	context.JSON(http.StatusOK, MessageResponse{Message: "Item deleted successfully"})
}
