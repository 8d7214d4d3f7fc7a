package main

import (
	"fmt"

	"itemsapi/config"
	"itemsapi/controllers"
	"itemsapi/database"
	"itemsapi/middleware"
	"itemsapi/models"

	"github.com/gin-gonic/gin"
)

func initRouter(api *gin.RouterGroup) {

	api.GET("/healthcheck", func(c *gin.Context) {})
	api.POST("/items/", controllers.CreateItem)
	api.GET("/items/", controllers.ListItems)

	items := api.Group("/items")
	items.Use(middleware.ItemID)
	{
		items.GET("/:id", controllers.GetItem)
		items.PUT("/:id", controllers.UpdateItem)
		items.DELETE("/:id", controllers.DeleteItem)
	}
}

func MigrateDB() error {
	if err := database.PostgresDB.AutoMigrate(&models.Item{}); err != nil {
		return err
	}
	return nil
}

func main() {
	config.Cfg.Init()
	if err := database.InitDatabase(); err != nil {
		panic(err)
	}
	if err := MigrateDB(); err != nil {
		panic(err)
	}
	r := gin.Default()
	api := r.Group("")
	initRouter(api)

	if err := r.Run(fmt.Sprintf(":%s", config.Cfg.Server.Port)); err != nil {
		panic("[Error] failed to start Gin server due to: " + err.Error())
	}
}
