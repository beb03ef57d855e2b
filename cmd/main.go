package main

import (
	"nutrisnap/config"
	"nutrisnap/routes"
	"nutrisnap/services"
	"nutrisnap/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitSES()

	rt := services.NewRealtimeHub()
	services.InitAlertDeps(config.DB, rt)

	r := routes.SetupRouter(rt)
	r.Run(":8080")
}
