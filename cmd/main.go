package main

import (
	"github.com/Jared-RS3/food-app-sub002/config"
	"github.com/Jared-RS3/food-app-sub002/logger"
	"github.com/Jared-RS3/food-app-sub002/routes"
	"github.com/Jared-RS3/food-app-sub002/utils"
)

func main() {
	logger.InitializeLogger()
	defer logger.Close()

	config.InitDB()
	config.InitRedis()
	utils.InitS3()

	r := routes.SetupRouter()
	r.Run(":8080")
}
